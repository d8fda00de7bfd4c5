package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vertex-leisure/internal/data/entity"
	"vertex-leisure/internal/data/repository"
	"vertex-leisure/internal/dto/request"

	"github.com/google/uuid"
)

func seedClassBookings(t *testing.T, repo *repository.Repository, userID uuid.UUID, count int) {
	t.Helper()
	for i := 0; i < count; i++ {
		booking := &entity.ClassBooking{
			BaseSimple: entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			UserID:     userID,
			ClassID:    uuid.New(),
		}
		if err := repo.ClassBooking.Create(context.Background(), booking); err != nil {
			t.Fatalf("seed booking: %v", err)
		}
	}
}

func seedScheme(t *testing.T, repo *repository.Repository, threshold, value int) {
	t.Helper()
	scheme := &entity.DiscountScheme{Name: "Loyalty", Threshold: threshold, Value: value}
	if err := repo.Discount.Create(context.Background(), scheme); err != nil {
		t.Fatalf("seed scheme: %v", err)
	}
}

func TestPricingQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("no qualifying scheme leaves amount unchanged", func(t *testing.T) {
		repo := testRepository(t)
		seedScheme(t, repo, 3, 35)
		svc := NewPricingService(repo, testLogger())

		quote, err := svc.Quote(ctx, uuid.New(), 2000)
		if err != nil {
			t.Fatalf("Quote: %v", err)
		}
		if quote.AmountPence != 2000 {
			t.Errorf("AmountPence = %d, want 2000", quote.AmountPence)
		}
		if quote.DiscountPence != 0 {
			t.Errorf("DiscountPence = %d, want 0", quote.DiscountPence)
		}
	})

	t.Run("qualifying scheme applies with half-up rounding", func(t *testing.T) {
		repo := testRepository(t)
		seedScheme(t, repo, 3, 35)
		svc := NewPricingService(repo, testLogger())

		userID := uuid.New()
		seedClassBookings(t, repo, userID, 3)

		quote, err := svc.Quote(ctx, userID, 2000)
		if err != nil {
			t.Fatalf("Quote: %v", err)
		}
		if quote.AmountPence != 1300 {
			t.Errorf("AmountPence = %d, want 1300", quote.AmountPence)
		}
		if quote.OriginalPence != 2000 {
			t.Errorf("OriginalPence = %d, want 2000", quote.OriginalPence)
		}
		if quote.DiscountPence != 700 {
			t.Errorf("DiscountPence = %d, want 700", quote.DiscountPence)
		}
	})

	t.Run("multiple schemes stack sequentially", func(t *testing.T) {
		repo := testRepository(t)
		seedScheme(t, repo, 1, 10)
		seedScheme(t, repo, 3, 25)
		svc := NewPricingService(repo, testLogger())

		userID := uuid.New()
		seedClassBookings(t, repo, userID, 3)

		quote, err := svc.Quote(ctx, userID, 2000)
		if err != nil {
			t.Fatalf("Quote: %v", err)
		}
		// 2000 -> 1800 after 10%, then 1350 after 25%.
		if quote.AmountPence != 1350 {
			t.Errorf("AmountPence = %d, want 1350", quote.AmountPence)
		}
	})

	t.Run("facility bookings count toward the threshold", func(t *testing.T) {
		repo := testRepository(t)
		seedScheme(t, repo, 2, 50)
		svc := NewPricingService(repo, testLogger())

		userID := uuid.New()
		seedClassBookings(t, repo, userID, 1)
		booking := &entity.FacilityBooking{
			BaseSimple:   entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
			UserID:       userID,
			FacilityID:   uuid.New(),
			Activity:     "squash",
			BookingDate:  time.Now(),
			StartMinutes: 600,
			EndMinutes:   660,
		}
		if err := repo.FacilityBooking.Create(ctx, booking); err != nil {
			t.Fatalf("seed facility booking: %v", err)
		}

		quote, err := svc.Quote(ctx, userID, 1000)
		if err != nil {
			t.Fatalf("Quote: %v", err)
		}
		if quote.AmountPence != 500 {
			t.Errorf("AmountPence = %d, want 500", quote.AmountPence)
		}
	})
}

func TestDiscountSchemeManagement(t *testing.T) {
	ctx := context.Background()

	t.Run("create and list", func(t *testing.T) {
		repo := testRepository(t)
		svc := NewPricingService(repo, testLogger())

		created, err := svc.CreateScheme(ctx, &request.DiscountRequest{Name: "Five Sessions, 20 Off", Threshold: 5, Value: 20})
		if err != nil {
			t.Fatalf("CreateScheme: %v", err)
		}
		if created.Threshold != 5 || created.Value != 20 {
			t.Errorf("created = %+v, want threshold 5 value 20", created)
		}
		if created.Name != "Five Sessions, 20 Off" {
			t.Errorf("Name = %q, want Five Sessions, 20 Off", created.Name)
		}

		schemes, err := svc.ListSchemes(ctx)
		if err != nil {
			t.Fatalf("ListSchemes: %v", err)
		}
		if len(schemes) != 1 {
			t.Fatalf("len(schemes) = %d, want 1", len(schemes))
		}
	})

	t.Run("rejects value over 100", func(t *testing.T) {
		repo := testRepository(t)
		svc := NewPricingService(repo, testLogger())

		_, err := svc.CreateScheme(ctx, &request.DiscountRequest{Name: "Too Generous", Threshold: 5, Value: 150})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("err = %v, want ValidationError", err)
		}
	})

	t.Run("update and delete", func(t *testing.T) {
		repo := testRepository(t)
		svc := NewPricingService(repo, testLogger())

		created, err := svc.CreateScheme(ctx, &request.DiscountRequest{Name: "Five Sessions, 20 Off", Threshold: 5, Value: 20})
		if err != nil {
			t.Fatalf("CreateScheme: %v", err)
		}

		newValue := 30
		updated, err := svc.UpdateScheme(ctx, created.ID, &request.DiscountUpdateRequest{Value: &newValue})
		if err != nil {
			t.Fatalf("UpdateScheme: %v", err)
		}
		if updated.Value != 30 {
			t.Errorf("Value = %d, want 30", updated.Value)
		}
		if updated.Threshold != 5 {
			t.Errorf("Threshold = %d, want 5 (unchanged)", updated.Threshold)
		}

		if err := svc.DeleteScheme(ctx, created.ID); err != nil {
			t.Fatalf("DeleteScheme: %v", err)
		}
		if err := svc.DeleteScheme(ctx, created.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("second delete err = %v, want ErrNotFound", err)
		}
	})
}
