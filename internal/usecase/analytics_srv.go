package usecase

import (
	"context"
	"fmt"
	"time"

	"vertex-leisure/internal/data/repository"
	"vertex-leisure/internal/dto/response"

	"go.uber.org/zap"
)

// Reporting window for the usage and sales aggregates.
const analyticsWindowDays = 7

type AnalyticsService interface {
	FacilityUsage(ctx context.Context) ([]response.FacilityUsageResponse, error)
	ClassSales(ctx context.Context) ([]response.ClassSalesResponse, error)
	MembershipCounts(ctx context.Context) ([]response.PlanCountResponse, error)
	SalesSummary(ctx context.Context) (*response.SalesSummaryResponse, error)
}

type analyticsService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAnalyticsService(repo *repository.Repository, log *zap.Logger) AnalyticsService {
	return &analyticsService{
		repo: repo,
		log:  log.With(zap.String("service", "analytics")),
	}
}

func windowStart() time.Time {
	return time.Now().AddDate(0, 0, -analyticsWindowDays)
}

func (s *analyticsService) FacilityUsage(ctx context.Context) ([]response.FacilityUsageResponse, error) {
	usage, err := s.repo.FacilityBooking.UsageSince(ctx, windowStart())
	if err != nil {
		s.log.Error("Failed to aggregate facility usage", zap.Error(err))
		return nil, fmt.Errorf("failed to load facility usage")
	}

	data := make([]response.FacilityUsageResponse, 0, len(usage))
	for _, row := range usage {
		data = append(data, response.FacilityUsageToResponse(row))
	}

	return data, nil
}

func (s *analyticsService) ClassSales(ctx context.Context) ([]response.ClassSalesResponse, error) {
	sales, err := s.repo.ClassBooking.SalesSince(ctx, windowStart())
	if err != nil {
		s.log.Error("Failed to aggregate class sales", zap.Error(err))
		return nil, fmt.Errorf("failed to load class sales")
	}

	data := make([]response.ClassSalesResponse, 0, len(sales))
	for _, row := range sales {
		data = append(data, response.ClassSalesToResponse(row))
	}

	return data, nil
}

func (s *analyticsService) MembershipCounts(ctx context.Context) ([]response.PlanCountResponse, error) {
	counts, err := s.repo.ActiveMembership.CountByPlan(ctx)
	if err != nil {
		s.log.Error("Failed to count memberships", zap.Error(err))
		return nil, fmt.Errorf("failed to load membership counts")
	}

	data := make([]response.PlanCountResponse, 0, len(counts))
	for _, row := range counts {
		data = append(data, response.PlanCountToResponse(row))
	}

	return data, nil
}

func (s *analyticsService) SalesSummary(ctx context.Context) (*response.SalesSummaryResponse, error) {
	since := windowStart()

	classSales, err := s.repo.ClassBooking.SalesSince(ctx, since)
	if err != nil {
		s.log.Error("Failed to aggregate class sales", zap.Error(err))
		return nil, fmt.Errorf("failed to load sales summary")
	}

	var classRevenue int64
	for _, row := range classSales {
		classRevenue += row.RevenuePence
	}

	facilityRevenue, err := s.repo.FacilityBooking.TotalRevenueSince(ctx, since)
	if err != nil {
		s.log.Error("Failed to sum facility revenue", zap.Error(err))
		return nil, fmt.Errorf("failed to load sales summary")
	}

	membershipRevenue, err := s.repo.ActiveMembership.RevenueSince(ctx, since)
	if err != nil {
		s.log.Error("Failed to sum membership revenue", zap.Error(err))
		return nil, fmt.Errorf("failed to load sales summary")
	}

	return &response.SalesSummaryResponse{
		WindowDays:             analyticsWindowDays,
		ClassRevenuePence:      classRevenue,
		FacilityRevenuePence:   facilityRevenue,
		MembershipRevenuePence: membershipRevenue,
		TotalRevenuePence:      classRevenue + facilityRevenue + membershipRevenue,
	}, nil
}
