package token

import (
	"testing"
	"time"
)

func TestGenerateAndVerify(t *testing.T) {
	manager := NewManager("test-signing-secret")

	signed, err := manager.Generate("user@example.com")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	identity, err := manager.Verify(signed, time.Hour)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if identity != "user@example.com" {
		t.Errorf("identity = %q, want %q", identity, "user@example.com")
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	manager := NewManager("test-signing-secret")

	signed, err := manager.Generate("user@example.com")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if _, err := manager.Verify(signed, -time.Second); err != ErrInvalidToken {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyRejectsTampered(t *testing.T) {
	manager := NewManager("test-signing-secret")

	signed, err := manager.Generate("user@example.com")
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	t.Run("wrong secret", func(t *testing.T) {
		other := NewManager("another-secret")
		if _, err := other.Verify(signed, time.Hour); err != ErrInvalidToken {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("mangled token", func(t *testing.T) {
		if _, err := manager.Verify(signed+"x", time.Hour); err != ErrInvalidToken {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})

	t.Run("garbage", func(t *testing.T) {
		if _, err := manager.Verify("not.a.token", time.Hour); err != ErrInvalidToken {
			t.Errorf("err = %v, want ErrInvalidToken", err)
		}
	})
}
