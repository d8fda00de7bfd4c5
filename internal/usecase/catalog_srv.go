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

type CatalogService interface {
	CreateFacility(ctx context.Context, req *request.FacilityRequest) (*response.FacilityResponse, error)
	GetFacility(ctx context.Context, id uuid.UUID) (*response.FacilityResponse, error)
	ListFacilities(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FacilityResponse], error)
	UpdateFacility(ctx context.Context, id uuid.UUID, req *request.FacilityUpdateRequest) (*response.FacilityResponse, error)
	DeleteFacility(ctx context.Context, id uuid.UUID) error

	CreatePlan(ctx context.Context, req *request.PlanRequest) (*response.PlanResponse, error)
	ListPlans(ctx context.Context) ([]response.PlanResponse, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, req *request.PlanUpdateRequest) (*response.PlanResponse, error)
	DeletePlan(ctx context.Context, id uuid.UUID) error
}

type catalogService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCatalogService(repo *repository.Repository, log *zap.Logger) CatalogService {
	return &catalogService{
		repo: repo,
		log:  log.With(zap.String("service", "catalog")),
	}
}

func (s *catalogService) CreateFacility(ctx context.Context, req *request.FacilityRequest) (*response.FacilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	openMinutes, err := utils.ParseClock(req.OpenTime)
	if err != nil {
		return nil, newValidationError(map[string]string{"open_time": err.Error()})
	}
	closeMinutes, err := utils.ParseClock(req.CloseTime)
	if err != nil {
		return nil, newValidationError(map[string]string{"close_time": err.Error()})
	}

	now := time.Now()
	facility := &entity.Facility{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:           req.Name,
		Capacity:       req.Capacity,
		OpenMinutes:    openMinutes,
		CloseMinutes:   closeMinutes,
		SessionMinutes: req.SessionMinutes,
		Activities:     req.Activities,
	}
	if req.Description != nil {
		facility.Description = *req.Description
	}

	if err := facility.Validate(); err != nil {
		return nil, newValidationError(map[string]string{"close_time": err.Error()})
	}

	if err := s.repo.Facility.Create(ctx, facility); err != nil {
		s.log.Error("Failed to create facility", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create facility")
	}

	s.log.Info("Facility created",
		zap.String("facility_id", facility.ID.String()),
		zap.String("name", facility.Name))

	resp := response.FacilityToResponse(facility)
	return &resp, nil
}

func (s *catalogService) GetFacility(ctx context.Context, id uuid.UUID) (*response.FacilityResponse, error) {
	facility, err := s.repo.Facility.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find facility", zap.Error(err), zap.String("facility_id", id.String()))
		return nil, fmt.Errorf("failed to find facility")
	}
	if facility == nil {
		return nil, fmt.Errorf("%w: facility", ErrNotFound)
	}

	resp := response.FacilityToResponse(facility)
	return &resp, nil
}

func (s *catalogService) ListFacilities(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.FacilityResponse], error) {
	facilities, err := s.repo.Facility.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list facilities", zap.Error(err))
		return nil, fmt.Errorf("failed to list facilities")
	}

	total, err := s.repo.Facility.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count facilities", zap.Error(err))
		return nil, fmt.Errorf("failed to list facilities")
	}

	data := make([]response.FacilityResponse, 0, len(facilities))
	for _, facility := range facilities {
		data = append(data, response.FacilityToResponse(facility))
	}

	return response.NewPaginatedResponse(data, req, total), nil
}

func (s *catalogService) UpdateFacility(ctx context.Context, id uuid.UUID, req *request.FacilityUpdateRequest) (*response.FacilityResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	facility, err := s.repo.Facility.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find facility", zap.Error(err), zap.String("facility_id", id.String()))
		return nil, fmt.Errorf("failed to find facility")
	}
	if facility == nil {
		return nil, fmt.Errorf("%w: facility", ErrNotFound)
	}

	if req.Name != nil {
		facility.Name = *req.Name
	}
	if req.Description != nil {
		facility.Description = *req.Description
	}
	if req.Capacity != nil {
		facility.Capacity = *req.Capacity
	}
	if req.OpenTime != nil {
		openMinutes, err := utils.ParseClock(*req.OpenTime)
		if err != nil {
			return nil, newValidationError(map[string]string{"open_time": err.Error()})
		}
		facility.OpenMinutes = openMinutes
	}
	if req.CloseTime != nil {
		closeMinutes, err := utils.ParseClock(*req.CloseTime)
		if err != nil {
			return nil, newValidationError(map[string]string{"close_time": err.Error()})
		}
		facility.CloseMinutes = closeMinutes
	}
	if req.SessionMinutes != nil {
		facility.SessionMinutes = *req.SessionMinutes
	}
	if req.Activities != nil {
		facility.Activities = req.Activities
	}

	if err := facility.Validate(); err != nil {
		return nil, newValidationError(map[string]string{"close_time": err.Error()})
	}

	facility.Touch()
	if err := s.repo.Facility.Update(ctx, facility); err != nil {
		s.log.Error("Failed to update facility", zap.Error(err), zap.String("facility_id", id.String()))
		return nil, fmt.Errorf("failed to update facility")
	}

	resp := response.FacilityToResponse(facility)
	return &resp, nil
}

// DeleteFacility removes the facility and, through cascading foreign keys,
// every booking held against it.
func (s *catalogService) DeleteFacility(ctx context.Context, id uuid.UUID) error {
	facility, err := s.repo.Facility.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find facility", zap.Error(err), zap.String("facility_id", id.String()))
		return fmt.Errorf("failed to find facility")
	}
	if facility == nil {
		return fmt.Errorf("%w: facility", ErrNotFound)
	}

	if err := s.repo.Facility.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete facility", zap.Error(err), zap.String("facility_id", id.String()))
		return fmt.Errorf("failed to delete facility")
	}

	return nil
}

func (s *catalogService) CreatePlan(ctx context.Context, req *request.PlanRequest) (*response.PlanResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	now := time.Now()
	plan := &entity.MembershipPlan{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:       req.Name,
		Months:     req.Months,
		PricePence: req.PricePence,
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}

	if err := s.repo.Plan.Create(ctx, plan); err != nil {
		s.log.Error("Failed to create membership plan", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create membership plan")
	}

	s.log.Info("Membership plan created",
		zap.String("plan_id", plan.ID.String()),
		zap.String("name", plan.Name))

	resp := response.PlanToResponse(plan)
	return &resp, nil
}

func (s *catalogService) ListPlans(ctx context.Context) ([]response.PlanResponse, error) {
	plans, err := s.repo.Plan.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list membership plans", zap.Error(err))
		return nil, fmt.Errorf("failed to list membership plans")
	}

	data := make([]response.PlanResponse, 0, len(plans))
	for _, plan := range plans {
		data = append(data, response.PlanToResponse(plan))
	}

	return data, nil
}

func (s *catalogService) UpdatePlan(ctx context.Context, id uuid.UUID, req *request.PlanUpdateRequest) (*response.PlanResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	plan, err := s.repo.Plan.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find membership plan", zap.Error(err), zap.String("plan_id", id.String()))
		return nil, fmt.Errorf("failed to find membership plan")
	}
	if plan == nil {
		return nil, fmt.Errorf("%w: membership plan", ErrNotFound)
	}

	if req.Name != nil {
		plan.Name = *req.Name
	}
	if req.Description != nil {
		plan.Description = *req.Description
	}
	if req.Months != nil {
		plan.Months = *req.Months
	}
	if req.PricePence != nil {
		plan.PricePence = *req.PricePence
	}

	plan.Touch()
	if err := s.repo.Plan.Update(ctx, plan); err != nil {
		s.log.Error("Failed to update membership plan", zap.Error(err), zap.String("plan_id", id.String()))
		return nil, fmt.Errorf("failed to update membership plan")
	}

	resp := response.PlanToResponse(plan)
	return &resp, nil
}

func (s *catalogService) DeletePlan(ctx context.Context, id uuid.UUID) error {
	plan, err := s.repo.Plan.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find membership plan", zap.Error(err), zap.String("plan_id", id.String()))
		return fmt.Errorf("failed to find membership plan")
	}
	if plan == nil {
		return fmt.Errorf("%w: membership plan", ErrNotFound)
	}

	if err := s.repo.Plan.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete membership plan", zap.Error(err), zap.String("plan_id", id.String()))
		return fmt.Errorf("failed to delete membership plan")
	}

	return nil
}
