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

func seedPlan(t *testing.T, repo *repository.Repository, months int, pricePence int64) *entity.MembershipPlan {
	t.Helper()
	plan := &entity.MembershipPlan{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		Name:         "Annual",
		Months:       months,
		PricePence:   pricePence,
	}
	if err := repo.Plan.Create(context.Background(), plan); err != nil {
		t.Fatalf("seed plan: %v", err)
	}
	return plan
}

func seedCustomer(t *testing.T, repo *repository.Repository) *entity.User {
	t.Helper()
	user := &entity.User{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		FirstName:    "Jess",
		LastName:     "Archer",
		Email:        uuid.NewString() + "@example.com",
		Role:         entity.RoleCustomer,
		BirthDate:    time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.User.Create(context.Background(), user); err != nil {
		t.Fatalf("seed customer: %v", err)
	}
	return user
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("runs from today for the plan's months at full price", func(t *testing.T) {
		repo := testRepository(t)
		plan := seedPlan(t, repo, 12, 30000)
		user := seedCustomer(t, repo)
		svc := NewMembershipService(repo, testLogger())

		membership, err := svc.Subscribe(ctx, user.ID, &request.SubscribeRequest{PlanID: plan.ID.String()})
		if err != nil {
			t.Fatalf("Subscribe: %v", err)
		}
		if membership.AmountPence != 30000 {
			t.Errorf("AmountPence = %d, want 30000", membership.AmountPence)
		}

		since, err := time.Parse("2006-01-02", membership.MemberSince)
		if err != nil {
			t.Fatalf("parse MemberSince: %v", err)
		}
		if membership.MemberSince != time.Now().Format("2006-01-02") {
			t.Errorf("MemberSince = %s, want the local calendar day %s",
				membership.MemberSince, time.Now().Format("2006-01-02"))
		}
		till, err := time.Parse("2006-01-02", membership.MemberTill)
		if err != nil {
			t.Fatalf("parse MemberTill: %v", err)
		}
		if want := since.AddDate(0, 12, 0); !till.Equal(want) {
			t.Errorf("MemberTill = %s, want %s", till, want)
		}

		stored, err := repo.User.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if !stored.IsMember {
			t.Error("IsMember = false after subscribe, want true")
		}
	})

	t.Run("rejects a second active membership", func(t *testing.T) {
		repo := testRepository(t)
		plan := seedPlan(t, repo, 1, 5000)
		user := seedCustomer(t, repo)
		svc := NewMembershipService(repo, testLogger())

		if _, err := svc.Subscribe(ctx, user.ID, &request.SubscribeRequest{PlanID: plan.ID.String()}); err != nil {
			t.Fatalf("first Subscribe: %v", err)
		}

		_, err := svc.Subscribe(ctx, user.ID, &request.SubscribeRequest{PlanID: plan.ID.String()})
		if !errors.Is(err, ErrConflict) {
			t.Errorf("err = %v, want ErrConflict", err)
		}
	})

	t.Run("unknown plan is not found", func(t *testing.T) {
		repo := testRepository(t)
		user := seedCustomer(t, repo)
		svc := NewMembershipService(repo, testLogger())

		_, err := svc.Subscribe(ctx, user.ID, &request.SubscribeRequest{PlanID: uuid.NewString()})
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}

func TestMembershipCurrentAndCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("current includes the plan name", func(t *testing.T) {
		repo := testRepository(t)
		plan := seedPlan(t, repo, 12, 30000)
		user := seedCustomer(t, repo)
		svc := NewMembershipService(repo, testLogger())

		if _, err := svc.Subscribe(ctx, user.ID, &request.SubscribeRequest{PlanID: plan.ID.String()}); err != nil {
			t.Fatalf("Subscribe: %v", err)
		}

		current, err := svc.Current(ctx, user.ID)
		if err != nil {
			t.Fatalf("Current: %v", err)
		}
		if current.PlanName != "Annual" {
			t.Errorf("PlanName = %q, want Annual", current.PlanName)
		}
	})

	t.Run("cancel removes the membership and clears the flag", func(t *testing.T) {
		repo := testRepository(t)
		plan := seedPlan(t, repo, 12, 30000)
		user := seedCustomer(t, repo)
		svc := NewMembershipService(repo, testLogger())

		if _, err := svc.Subscribe(ctx, user.ID, &request.SubscribeRequest{PlanID: plan.ID.String()}); err != nil {
			t.Fatalf("Subscribe: %v", err)
		}
		if err := svc.Cancel(ctx, user.ID); err != nil {
			t.Fatalf("Cancel: %v", err)
		}

		if _, err := svc.Current(ctx, user.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("Current after cancel err = %v, want ErrNotFound", err)
		}

		stored, err := repo.User.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if stored.IsMember {
			t.Error("IsMember = true after cancel, want false")
		}
	})

	t.Run("cancel without a membership is not found", func(t *testing.T) {
		repo := testRepository(t)
		user := seedCustomer(t, repo)
		svc := NewMembershipService(repo, testLogger())

		if err := svc.Cancel(ctx, user.ID); !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}
