package usecase

import (
	"context"
	"fmt"

	"vertex-leisure/internal/data/entity"
	"vertex-leisure/internal/data/repository"
	"vertex-leisure/internal/dto/request"
	"vertex-leisure/internal/dto/response"
	"vertex-leisure/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PricingService interface {
	// Quote prices a base amount for a user, applying every discount scheme
	// their booking history qualifies them for.
	Quote(ctx context.Context, userID uuid.UUID, basePence int64) (*response.QuoteResponse, error)

	CreateScheme(ctx context.Context, req *request.DiscountRequest) (*response.DiscountResponse, error)
	ListSchemes(ctx context.Context) ([]response.DiscountResponse, error)
	UpdateScheme(ctx context.Context, id int, req *request.DiscountUpdateRequest) (*response.DiscountResponse, error)
	DeleteScheme(ctx context.Context, id int) error
}

type pricingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPricingService(repo *repository.Repository, log *zap.Logger) PricingService {
	return &pricingService{
		repo: repo,
		log:  log.With(zap.String("service", "pricing")),
	}
}

func (s *pricingService) Quote(ctx context.Context, userID uuid.UUID, basePence int64) (*response.QuoteResponse, error) {
	classCount, err := s.repo.ClassBooking.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count class bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to price booking")
	}

	facilityCount, err := s.repo.FacilityBooking.CountByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count facility bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to price booking")
	}

	schemes, err := s.repo.Discount.FindQualifying(ctx, classCount+facilityCount)
	if err != nil {
		s.log.Error("Failed to load discount schemes", zap.Error(err))
		return nil, fmt.Errorf("failed to price booking")
	}

	amount := basePence
	for _, scheme := range schemes {
		amount = applyPercentage(amount, scheme.Value)
	}

	return &response.QuoteResponse{
		OriginalPence: basePence,
		AmountPence:   amount,
		DiscountPence: basePence - amount,
	}, nil
}

// applyPercentage reduces amount by value percent, rounding half up.
func applyPercentage(amount int64, value int) int64 {
	return (amount*int64(100-value) + 50) / 100
}

func (s *pricingService) CreateScheme(ctx context.Context, req *request.DiscountRequest) (*response.DiscountResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	scheme := &entity.DiscountScheme{
		Name:      req.Name,
		Threshold: req.Threshold,
		Value:     req.Value,
	}

	if err := s.repo.Discount.Create(ctx, scheme); err != nil {
		s.log.Error("Failed to create discount scheme", zap.Error(err))
		return nil, fmt.Errorf("failed to create discount scheme")
	}

	s.log.Info("Discount scheme created",
		zap.Int("scheme_id", scheme.ID),
		zap.String("name", scheme.Name),
		zap.Int("threshold", scheme.Threshold),
		zap.Int("value", scheme.Value))

	resp := response.DiscountToResponse(scheme)
	return &resp, nil
}

func (s *pricingService) ListSchemes(ctx context.Context) ([]response.DiscountResponse, error) {
	schemes, err := s.repo.Discount.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list discount schemes", zap.Error(err))
		return nil, fmt.Errorf("failed to list discount schemes")
	}

	data := make([]response.DiscountResponse, 0, len(schemes))
	for _, scheme := range schemes {
		data = append(data, response.DiscountToResponse(scheme))
	}

	return data, nil
}

func (s *pricingService) UpdateScheme(ctx context.Context, id int, req *request.DiscountUpdateRequest) (*response.DiscountResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	scheme, err := s.repo.Discount.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find discount scheme", zap.Error(err), zap.Int("scheme_id", id))
		return nil, fmt.Errorf("failed to find discount scheme")
	}
	if scheme == nil {
		return nil, fmt.Errorf("%w: discount scheme", ErrNotFound)
	}

	if req.Name != nil {
		scheme.Name = *req.Name
	}
	if req.Threshold != nil {
		scheme.Threshold = *req.Threshold
	}
	if req.Value != nil {
		scheme.Value = *req.Value
	}

	if err := s.repo.Discount.Update(ctx, scheme); err != nil {
		s.log.Error("Failed to update discount scheme", zap.Error(err), zap.Int("scheme_id", id))
		return nil, fmt.Errorf("failed to update discount scheme")
	}

	resp := response.DiscountToResponse(scheme)
	return &resp, nil
}

func (s *pricingService) DeleteScheme(ctx context.Context, id int) error {
	scheme, err := s.repo.Discount.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find discount scheme", zap.Error(err), zap.Int("scheme_id", id))
		return fmt.Errorf("failed to find discount scheme")
	}
	if scheme == nil {
		return fmt.Errorf("%w: discount scheme", ErrNotFound)
	}

	if err := s.repo.Discount.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete discount scheme", zap.Error(err), zap.Int("scheme_id", id))
		return fmt.Errorf("failed to delete discount scheme")
	}

	return nil
}
