package password

import (
	"strings"
	"testing"
)

func TestHashAndVerify(t *testing.T) {
	hasher := NewHasher(DefaultParams)

	encoded, err := hasher.Hash("s3cret-passphrase")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}
	if !strings.HasPrefix(encoded, "$argon2id$v=19$") {
		t.Fatalf("unexpected hash prefix: %s", encoded)
	}

	t.Run("correct password", func(t *testing.T) {
		ok, rehash, err := hasher.Verify(encoded, "s3cret-passphrase")
		if err != nil {
			t.Fatalf("Verify returned error: %v", err)
		}
		if !ok {
			t.Error("expected match for correct password")
		}
		if rehash {
			t.Error("fresh hash should not need rehash")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ok, _, err := hasher.Verify(encoded, "not-the-password")
		if err != nil {
			t.Fatalf("Verify returned error: %v", err)
		}
		if ok {
			t.Error("expected mismatch for wrong password")
		}
	})
}

func TestVerifyRehashOnOutdatedParams(t *testing.T) {
	oldParams := Params{Memory: 16 * 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
	oldHasher := NewHasher(oldParams)

	encoded, err := oldHasher.Hash("migrate-me")
	if err != nil {
		t.Fatalf("Hash returned error: %v", err)
	}

	current := NewHasher(DefaultParams)
	ok, rehash, err := current.Verify(encoded, "migrate-me")
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if !ok {
		t.Fatal("expected match against hash with older parameters")
	}
	if !rehash {
		t.Error("expected rehash signal for outdated parameters")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	hasher := NewHasher(DefaultParams)

	cases := map[string]string{
		"empty":          "",
		"not a hash":     "plainly-not-a-hash",
		"wrong variant":  "$argon2i$v=19$m=65536,t=3,p=2$c2FsdA$aGFzaA",
		"missing fields": "$argon2id$v=19$m=65536,t=3$c2FsdA$aGFzaA",
		"bad base64":     "$argon2id$v=19$m=65536,t=3,p=2$!!!$aGFzaA",
	}
	for name, encoded := range cases {
		t.Run(name, func(t *testing.T) {
			if _, _, err := hasher.Verify(encoded, "whatever"); err == nil {
				t.Error("expected error for malformed hash")
			}
		})
	}
}
