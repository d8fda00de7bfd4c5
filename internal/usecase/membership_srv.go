package usecase

import (
	"context"
	"fmt"
	"time"

	"vertex-leisure/internal/data/entity"
	"vertex-leisure/internal/data/repository"
	"vertex-leisure/internal/dto/request"
	"vertex-leisure/internal/dto/response"
	"vertex-leisure/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type MembershipService interface {
	// Subscribe puts the user on a plan at the plan's full price. Membership
	// runs from today for the plan's number of months.
	Subscribe(ctx context.Context, userID uuid.UUID, req *request.SubscribeRequest) (*response.MembershipResponse, error)
	Current(ctx context.Context, userID uuid.UUID) (*response.MembershipResponse, error)
	Cancel(ctx context.Context, userID uuid.UUID) error
}

type membershipService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewMembershipService(repo *repository.Repository, log *zap.Logger) MembershipService {
	return &membershipService{
		repo: repo,
		log:  log.With(zap.String("service", "membership")),
	}
}

func (s *membershipService) Subscribe(ctx context.Context, userID uuid.UUID, req *request.SubscribeRequest) (*response.MembershipResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	planID, err := uuid.Parse(req.PlanID)
	if err != nil {
		return nil, newValidationError(map[string]string{"plan_id": "must be a valid UUID"})
	}

	plan, err := s.repo.Plan.FindByID(ctx, planID)
	if err != nil {
		s.log.Error("Failed to find membership plan", zap.Error(err), zap.String("plan_id", planID.String()))
		return nil, fmt.Errorf("failed to find membership plan")
	}
	if plan == nil {
		return nil, fmt.Errorf("%w: membership plan", ErrNotFound)
	}

	existing, err := s.repo.ActiveMembership.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to check existing membership", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to subscribe")
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: membership already active", ErrConflict)
	}

	// Midnight on the local calendar day, not a UTC-epoch truncation.
	year, month, day := time.Now().Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.Local)
	membership := &entity.ActiveMembership{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:      userID,
		PlanID:      planID,
		AmountPence: plan.PricePence,
		MemberSince: today,
		MemberTill:  today.AddDate(0, plan.Months, 0),
	}

	if err := s.repo.ActiveMembership.Create(ctx, membership); err != nil {
		s.log.Error("Failed to create membership",
			zap.Error(err), zap.String("user_id", userID.String()))
		return nil, conflictError(err)
	}

	if err := s.setMemberFlag(ctx, userID, true); err != nil {
		s.log.Warn("Failed to set member flag",
			zap.Error(err), zap.String("user_id", userID.String()))
	}

	s.log.Info("Membership started",
		zap.String("membership_id", membership.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("plan_id", planID.String()),
		zap.Time("member_till", membership.MemberTill))

	resp := response.MembershipToResponse(membership, plan)
	return &resp, nil
}

func (s *membershipService) Current(ctx context.Context, userID uuid.UUID) (*response.MembershipResponse, error) {
	membership, err := s.repo.ActiveMembership.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find membership", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load membership")
	}
	if membership == nil {
		return nil, fmt.Errorf("%w: membership", ErrNotFound)
	}

	plan, err := s.repo.Plan.FindByID(ctx, membership.PlanID)
	if err != nil {
		s.log.Warn("Failed to load plan for membership",
			zap.Error(err), zap.String("plan_id", membership.PlanID.String()))
	}

	resp := response.MembershipToResponse(membership, plan)
	return &resp, nil
}

func (s *membershipService) Cancel(ctx context.Context, userID uuid.UUID) error {
	membership, err := s.repo.ActiveMembership.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to find membership", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("failed to cancel membership")
	}
	if membership == nil {
		return fmt.Errorf("%w: membership", ErrNotFound)
	}

	if err := s.repo.ActiveMembership.DeleteByUserID(ctx, userID); err != nil {
		s.log.Error("Failed to delete membership", zap.Error(err), zap.String("user_id", userID.String()))
		return fmt.Errorf("failed to cancel membership")
	}

	if err := s.setMemberFlag(ctx, userID, false); err != nil {
		s.log.Warn("Failed to clear member flag",
			zap.Error(err), zap.String("user_id", userID.String()))
	}

	s.log.Info("Membership cancelled", zap.String("user_id", userID.String()))
	return nil
}

func (s *membershipService) setMemberFlag(ctx context.Context, userID uuid.UUID, isMember bool) error {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("user %s not found", userID.String())
	}

	user.IsMember = isMember
	user.Touch()
	return s.repo.User.Update(ctx, user)
}
