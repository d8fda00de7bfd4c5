package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vertex-leisure/internal/data/entity"
	"vertex-leisure/internal/data/repository"
	"vertex-leisure/internal/dto/request"
	"vertex-leisure/pkg/utils"

	"github.com/google/uuid"
)

func newTestPaymentService(repo *repository.Repository, gw *fakeGateway) PaymentService {
	deps := Deps{
		Repo:    repo,
		Config:  &utils.Config{Gateway: utils.GatewayConfig{Currency: "gbp"}},
		Gateway: gw,
	}
	return NewPaymentService(deps, testLogger())
}

func seedClassBookingFor(t *testing.T, repo *repository.Repository, userID uuid.UUID, amount int64) *entity.ClassBooking {
	t.Helper()
	booking := &entity.ClassBooking{
		BaseSimple:  entity.BaseSimple{ID: uuid.New(), CreatedAt: time.Now()},
		UserID:      userID,
		ClassID:     uuid.New(),
		AmountPence: amount,
	}
	if err := repo.ClassBooking.Create(context.Background(), booking); err != nil {
		t.Fatalf("seed class booking: %v", err)
	}
	return booking
}

func cardToken(token string) *string {
	return &token
}

func TestCharge(t *testing.T) {
	ctx := context.Background()

	t.Run("first payment registers the card and settles", func(t *testing.T) {
		repo := testRepository(t)
		gw := newFakeGateway()
		svc := newTestPaymentService(repo, gw)

		user := seedCustomer(t, repo)
		booking := seedClassBookingFor(t, repo, user.ID, 2000)

		charge, err := svc.Charge(ctx, user.ID, &request.ChargeRequest{
			Purpose:   "class_booking",
			RefID:     booking.ID.String(),
			CardToken: cardToken("tokn_test"),
		})
		if err != nil {
			t.Fatalf("Charge: %v", err)
		}
		if charge.ChargeID == "" {
			t.Error("ChargeID empty, want settled charge")
		}
		if charge.AmountPence != 2000 {
			t.Errorf("AmountPence = %d, want 2000", charge.AmountPence)
		}

		stored, err := repo.User.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if !stored.HasStoredCard() {
			t.Error("gateway customer not persisted on the user")
		}
	})

	t.Run("stored card needs confirmation before charging", func(t *testing.T) {
		repo := testRepository(t)
		gw := newFakeGateway()
		svc := newTestPaymentService(repo, gw)

		user := seedCustomer(t, repo)
		first := seedClassBookingFor(t, repo, user.ID, 2000)
		if _, err := svc.Charge(ctx, user.ID, &request.ChargeRequest{
			Purpose:   "class_booking",
			RefID:     first.ID.String(),
			CardToken: cardToken("tokn_test"),
		}); err != nil {
			t.Fatalf("first charge: %v", err)
		}

		second := seedClassBookingFor(t, repo, user.ID, 1500)
		charge, err := svc.Charge(ctx, user.ID, &request.ChargeRequest{
			Purpose: "class_booking",
			RefID:   second.ID.String(),
		})
		if err != nil {
			t.Fatalf("Charge: %v", err)
		}
		if !charge.RequiresConfirmation {
			t.Fatal("RequiresConfirmation = false, want true")
		}
		if charge.CardID == "" {
			t.Error("CardID empty, want the stored card")
		}
		if len(gw.charges) != 1 {
			t.Errorf("gateway charges = %d, want 1 (unconfirmed charge must not settle)", len(gw.charges))
		}

		confirmed, err := svc.Charge(ctx, user.ID, &request.ChargeRequest{
			Purpose: "class_booking",
			RefID:   second.ID.String(),
			Confirm: true,
		})
		if err != nil {
			t.Fatalf("confirmed Charge: %v", err)
		}
		if confirmed.ChargeID == "" {
			t.Error("ChargeID empty after confirmation")
		}
	})

	t.Run("no stored card and no token is a validation error", func(t *testing.T) {
		repo := testRepository(t)
		svc := newTestPaymentService(repo, newFakeGateway())

		user := seedCustomer(t, repo)
		booking := seedClassBookingFor(t, repo, user.ID, 2000)

		_, err := svc.Charge(ctx, user.ID, &request.ChargeRequest{
			Purpose: "class_booking",
			RefID:   booking.ID.String(),
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("err = %v, want ValidationError", err)
		}
	})

	t.Run("declined charge rolls the booking back", func(t *testing.T) {
		repo := testRepository(t)
		gw := newFakeGateway()
		svc := newTestPaymentService(repo, gw)

		user := seedCustomer(t, repo)
		booking := seedClassBookingFor(t, repo, user.ID, 2000)

		gw.declineNext = true
		_, err := svc.Charge(ctx, user.ID, &request.ChargeRequest{
			Purpose:   "class_booking",
			RefID:     booking.ID.String(),
			CardToken: cardToken("tokn_test"),
		})
		if !errors.Is(err, ErrPaymentFailed) {
			t.Fatalf("err = %v, want ErrPaymentFailed", err)
		}

		remaining, err := repo.ClassBooking.FindByID(ctx, booking.ID)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if remaining != nil {
			t.Error("booking still present after declined charge, want it removed")
		}
	})

	t.Run("rejected card registration rolls the booking back", func(t *testing.T) {
		repo := testRepository(t)
		gw := newFakeGateway()
		svc := newTestPaymentService(repo, gw)

		user := seedCustomer(t, repo)
		booking := seedClassBookingFor(t, repo, user.ID, 2000)

		gw.rejectCards = true
		_, err := svc.Charge(ctx, user.ID, &request.ChargeRequest{
			Purpose:   "class_booking",
			RefID:     booking.ID.String(),
			CardToken: cardToken("tokn_test"),
		})
		if !errors.Is(err, ErrPaymentFailed) {
			t.Fatalf("err = %v, want ErrPaymentFailed", err)
		}

		remaining, err := repo.ClassBooking.FindByID(ctx, booking.ID)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if remaining != nil {
			t.Error("booking still present after card registration failed, want it removed")
		}
	})

	t.Run("declined membership charge clears the member flag", func(t *testing.T) {
		repo := testRepository(t)
		gw := newFakeGateway()
		svc := newTestPaymentService(repo, gw)

		plan := seedPlan(t, repo, 12, 30000)
		user := seedCustomer(t, repo)
		memberships := NewMembershipService(repo, testLogger())
		membership, err := memberships.Subscribe(ctx, user.ID, &request.SubscribeRequest{PlanID: plan.ID.String()})
		if err != nil {
			t.Fatalf("Subscribe: %v", err)
		}

		gw.declineNext = true
		_, err = svc.Charge(ctx, user.ID, &request.ChargeRequest{
			Purpose:   "membership",
			RefID:     membership.ID,
			CardToken: cardToken("tokn_test"),
		})
		if !errors.Is(err, ErrPaymentFailed) {
			t.Fatalf("err = %v, want ErrPaymentFailed", err)
		}

		stored, err := repo.User.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("FindByID: %v", err)
		}
		if stored.IsMember {
			t.Error("IsMember = true after rolled-back membership, want false")
		}
		if m, _ := repo.ActiveMembership.FindByUserID(ctx, user.ID); m != nil {
			t.Error("membership still present after declined charge")
		}
	})

	t.Run("another user's booking is forbidden", func(t *testing.T) {
		repo := testRepository(t)
		svc := newTestPaymentService(repo, newFakeGateway())

		owner := seedCustomer(t, repo)
		payer := seedCustomer(t, repo)
		booking := seedClassBookingFor(t, repo, owner.ID, 2000)

		_, err := svc.Charge(ctx, payer.ID, &request.ChargeRequest{
			Purpose:   "class_booking",
			RefID:     booking.ID.String(),
			CardToken: cardToken("tokn_test"),
		})
		if !errors.Is(err, ErrForbidden) {
			t.Errorf("err = %v, want ErrForbidden", err)
		}
	})

	t.Run("a fully discounted amount skips the gateway", func(t *testing.T) {
		repo := testRepository(t)
		gw := newFakeGateway()
		svc := newTestPaymentService(repo, gw)

		user := seedCustomer(t, repo)
		booking := seedClassBookingFor(t, repo, user.ID, 0)

		charge, err := svc.Charge(ctx, user.ID, &request.ChargeRequest{
			Purpose: "class_booking",
			RefID:   booking.ID.String(),
		})
		if err != nil {
			t.Fatalf("Charge: %v", err)
		}
		if charge.AmountPence != 0 || charge.ChargeID != "" {
			t.Errorf("charge = %+v, want zero amount with no gateway charge", charge)
		}
		if len(gw.charges) != 0 {
			t.Errorf("gateway charges = %d, want 0", len(gw.charges))
		}
	})

	t.Run("unknown purpose is a validation error", func(t *testing.T) {
		repo := testRepository(t)
		svc := newTestPaymentService(repo, newFakeGateway())
		user := seedCustomer(t, repo)

		_, err := svc.Charge(ctx, user.ID, &request.ChargeRequest{
			Purpose: "raffle",
			RefID:   uuid.NewString(),
		})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("err = %v, want ValidationError", err)
		}
	})
}
