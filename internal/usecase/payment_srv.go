package usecase

import (
	"context"
	"errors"
	"fmt"

	"vertex-leisure/internal/data/entity"
	"vertex-leisure/internal/data/repository"
	"vertex-leisure/internal/dto/request"
	"vertex-leisure/internal/dto/response"
	"vertex-leisure/pkg/gateway"
	"vertex-leisure/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	// Charge settles an already-recorded booking or membership against the
	// card gateway. If the charge is declined the record it was meant to pay
	// for is removed again.
	Charge(ctx context.Context, userID uuid.UUID, req *request.ChargeRequest) (*response.ChargeResponse, error)
}

type paymentService struct {
	repo    *repository.Repository
	config  *utils.Config
	gateway gateway.Gateway
	log     *zap.Logger
}

func NewPaymentService(deps Deps, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:    deps.Repo,
		config:  deps.Config,
		gateway: deps.Gateway,
		log:     log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) Charge(ctx context.Context, userID uuid.UUID, req *request.ChargeRequest) (*response.ChargeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	refID, err := uuid.Parse(req.RefID)
	if err != nil {
		return nil, newValidationError(map[string]string{"ref_id": "must be a valid UUID"})
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to process payment")
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	amount, description, compensate, err := s.resolvePurpose(ctx, userID, req.Purpose, refID)
	if err != nil {
		return nil, err
	}

	currency := s.config.Gateway.Currency

	// A fully discounted amount has nothing to settle.
	if amount <= 0 {
		return &response.ChargeResponse{AmountPence: 0, Currency: currency}, nil
	}

	cardID, resp, err := s.resolveCard(ctx, user, req, amount, currency)
	if err != nil {
		// Gateway failures roll the record back like a declined charge.
		// A missing card token keeps it, awaiting a retry with a card.
		if errors.Is(err, ErrPaymentFailed) {
			if rollbackErr := compensate(ctx); rollbackErr != nil {
				s.log.Error("Failed to roll back after gateway failure",
					zap.Error(rollbackErr),
					zap.String("purpose", req.Purpose),
					zap.String("ref_id", refID.String()))
			}
		}
		return nil, err
	}
	if resp != nil {
		return resp, nil
	}

	chargeID, err := s.gateway.CreateCharge(ctx, user.GatewayCustomerID, cardID, amount, currency, description)
	if err != nil {
		s.log.Warn("Charge declined, rolling back record",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("purpose", req.Purpose),
			zap.String("ref_id", refID.String()))

		if rollbackErr := compensate(ctx); rollbackErr != nil {
			s.log.Error("Failed to roll back after declined charge",
				zap.Error(rollbackErr),
				zap.String("purpose", req.Purpose),
				zap.String("ref_id", refID.String()))
		}

		return nil, fmt.Errorf("%w: %v", ErrPaymentFailed, err)
	}

	s.log.Info("Charge settled",
		zap.String("charge_id", chargeID),
		zap.String("user_id", userID.String()),
		zap.String("purpose", req.Purpose),
		zap.Int64("amount_pence", amount))

	return &response.ChargeResponse{
		ChargeID:    chargeID,
		AmountPence: amount,
		Currency:    currency,
	}, nil
}

// resolvePurpose loads the record being paid for, checks it belongs to the
// payer, and returns its amount together with the rollback to run if the
// charge is declined.
func (s *paymentService) resolvePurpose(ctx context.Context, userID uuid.UUID, purpose string, refID uuid.UUID) (int64, string, func(context.Context) error, error) {
	switch purpose {
	case "class_booking":
		booking, err := s.repo.ClassBooking.FindByID(ctx, refID)
		if err != nil {
			s.log.Error("Failed to find class booking", zap.Error(err), zap.String("ref_id", refID.String()))
			return 0, "", nil, fmt.Errorf("failed to process payment")
		}
		if booking == nil {
			return 0, "", nil, fmt.Errorf("%w: class booking", ErrNotFound)
		}
		if booking.UserID != userID {
			return 0, "", nil, fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
		}
		compensate := func(ctx context.Context) error {
			return s.repo.ClassBooking.Delete(ctx, refID)
		}
		return booking.AmountPence, "Class booking " + refID.String(), compensate, nil

	case "facility_booking":
		booking, err := s.repo.FacilityBooking.FindByID(ctx, refID)
		if err != nil {
			s.log.Error("Failed to find facility booking", zap.Error(err), zap.String("ref_id", refID.String()))
			return 0, "", nil, fmt.Errorf("failed to process payment")
		}
		if booking == nil {
			return 0, "", nil, fmt.Errorf("%w: facility booking", ErrNotFound)
		}
		if booking.UserID != userID {
			return 0, "", nil, fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
		}
		compensate := func(ctx context.Context) error {
			return s.repo.FacilityBooking.Delete(ctx, refID)
		}
		return booking.AmountPence, "Facility booking " + refID.String(), compensate, nil

	case "membership":
		membership, err := s.repo.ActiveMembership.FindByID(ctx, refID)
		if err != nil {
			s.log.Error("Failed to find membership", zap.Error(err), zap.String("ref_id", refID.String()))
			return 0, "", nil, fmt.Errorf("failed to process payment")
		}
		if membership == nil {
			return 0, "", nil, fmt.Errorf("%w: membership", ErrNotFound)
		}
		if membership.UserID != userID {
			return 0, "", nil, fmt.Errorf("%w: membership belongs to another user", ErrForbidden)
		}
		compensate := func(ctx context.Context) error {
			if err := s.repo.ActiveMembership.Delete(ctx, refID); err != nil {
				return err
			}
			return s.clearMemberFlag(ctx, userID)
		}
		return membership.AmountPence, "Membership " + refID.String(), compensate, nil

	default:
		return 0, "", nil, newValidationError(map[string]string{"purpose": "unknown purpose"})
	}
}

// resolveCard picks the card to charge. A stored card is only used once the
// caller has confirmed it; a fresh card token registers (or replaces) the
// gateway customer and is persisted for next time.
func (s *paymentService) resolveCard(ctx context.Context, user *entity.User, req *request.ChargeRequest, amount int64, currency string) (string, *response.ChargeResponse, error) {
	if req.CardToken != nil && *req.CardToken != "" {
		customerID, cardID, err := s.gateway.CreateCustomer(ctx, user.Email, user.FullName(), *req.CardToken)
		if err != nil {
			s.log.Error("Failed to register card with gateway",
				zap.Error(err), zap.String("user_id", user.ID.String()))
			return "", nil, fmt.Errorf("%w: card could not be registered", ErrPaymentFailed)
		}

		user.GatewayCustomerID = customerID
		user.GatewayCardID = cardID
		user.Touch()
		if err := s.repo.User.Update(ctx, user); err != nil {
			s.log.Warn("Failed to persist gateway identifiers",
				zap.Error(err), zap.String("user_id", user.ID.String()))
		}

		return cardID, nil, nil
	}

	if !user.HasStoredCard() {
		return "", nil, newValidationError(map[string]string{"card_token": "required for first payment"})
	}

	cardID, err := s.gateway.RetrieveCustomer(ctx, user.GatewayCustomerID)
	if err != nil {
		s.log.Error("Failed to retrieve gateway customer",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return "", nil, fmt.Errorf("%w: stored card unavailable", ErrPaymentFailed)
	}

	if !req.Confirm {
		return "", &response.ChargeResponse{
			AmountPence:          amount,
			Currency:             currency,
			RequiresConfirmation: true,
			CardID:               cardID,
		}, nil
	}

	return cardID, nil, nil
}

func (s *paymentService) clearMemberFlag(ctx context.Context, userID uuid.UUID) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil || user == nil {
		return err
	}
	user.IsMember = false
	user.Touch()
	return s.repo.User.Update(ctx, user)
}
