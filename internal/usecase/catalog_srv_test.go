package usecase

import (
	"context"
	"errors"
	"testing"

	"vertex-leisure/internal/dto/request"

	"github.com/google/uuid"
)

func facilityRequest() *request.FacilityRequest {
	return &request.FacilityRequest{
		Name:           "Main Pool",
		Capacity:       30,
		OpenTime:       "06:30",
		CloseTime:      "21:00",
		SessionMinutes: 60,
		Activities:     map[string]int64{"lane swim": 550, "aqua aerobics": 700},
	}
}

func TestFacilityCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("create round-trips the opening hours", func(t *testing.T) {
		repo := testRepository(t)
		svc := NewCatalogService(repo, testLogger())

		facility, err := svc.CreateFacility(ctx, facilityRequest())
		if err != nil {
			t.Fatalf("CreateFacility: %v", err)
		}
		if facility.OpenTime != "06:30" || facility.CloseTime != "21:00" {
			t.Errorf("hours = %s-%s, want 06:30-21:00", facility.OpenTime, facility.CloseTime)
		}
		if facility.Activities["lane swim"] != 550 {
			t.Errorf("lane swim price = %d, want 550", facility.Activities["lane swim"])
		}
		if facility.SessionMinutes != 60 {
			t.Errorf("SessionMinutes = %d, want 60", facility.SessionMinutes)
		}
	})

	t.Run("a zero session length marks general use", func(t *testing.T) {
		repo := testRepository(t)
		svc := NewCatalogService(repo, testLogger())

		req := facilityRequest()
		req.SessionMinutes = 0
		facility, err := svc.CreateFacility(ctx, req)
		if err != nil {
			t.Fatalf("CreateFacility: %v", err)
		}
		if facility.SessionMinutes != 0 {
			t.Errorf("SessionMinutes = %d, want 0", facility.SessionMinutes)
		}
	})

	t.Run("accepts closing equal to opening", func(t *testing.T) {
		repo := testRepository(t)
		svc := NewCatalogService(repo, testLogger())

		req := facilityRequest()
		req.OpenTime = "08:00"
		req.CloseTime = "08:00"
		facility, err := svc.CreateFacility(ctx, req)
		if err != nil {
			t.Fatalf("CreateFacility: %v", err)
		}
		if facility.OpenTime != "08:00" || facility.CloseTime != "08:00" {
			t.Errorf("hours = %s-%s, want 08:00-08:00", facility.OpenTime, facility.CloseTime)
		}
	})

	t.Run("rejects closing before opening", func(t *testing.T) {
		repo := testRepository(t)
		svc := NewCatalogService(repo, testLogger())

		req := facilityRequest()
		req.OpenTime = "21:00"
		req.CloseTime = "06:30"
		_, err := svc.CreateFacility(ctx, req)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("err = %v, want ValidationError", err)
		}
	})

	t.Run("rejects a facility with no activities", func(t *testing.T) {
		repo := testRepository(t)
		svc := NewCatalogService(repo, testLogger())

		req := facilityRequest()
		req.Activities = nil
		_, err := svc.CreateFacility(ctx, req)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("err = %v, want ValidationError", err)
		}
	})

	t.Run("update patches only the provided fields", func(t *testing.T) {
		repo := testRepository(t)
		svc := NewCatalogService(repo, testLogger())

		created, err := svc.CreateFacility(ctx, facilityRequest())
		if err != nil {
			t.Fatalf("CreateFacility: %v", err)
		}

		closeTime := "22:00"
		updated, err := svc.UpdateFacility(ctx, uuid.MustParse(created.ID), &request.FacilityUpdateRequest{
			CloseTime: &closeTime,
		})
		if err != nil {
			t.Fatalf("UpdateFacility: %v", err)
		}
		if updated.CloseTime != "22:00" {
			t.Errorf("CloseTime = %s, want 22:00", updated.CloseTime)
		}
		if updated.OpenTime != "06:30" {
			t.Errorf("OpenTime = %s changed, want 06:30", updated.OpenTime)
		}
		if updated.Name != "Main Pool" {
			t.Errorf("Name = %q changed, want Main Pool", updated.Name)
		}
		if updated.SessionMinutes != 60 {
			t.Errorf("SessionMinutes = %d changed, want 60", updated.SessionMinutes)
		}
	})

	t.Run("delete removes the facility", func(t *testing.T) {
		repo := testRepository(t)
		svc := NewCatalogService(repo, testLogger())

		created, err := svc.CreateFacility(ctx, facilityRequest())
		if err != nil {
			t.Fatalf("CreateFacility: %v", err)
		}

		id := uuid.MustParse(created.ID)
		if err := svc.DeleteFacility(ctx, id); err != nil {
			t.Fatalf("DeleteFacility: %v", err)
		}
		if _, err := svc.GetFacility(ctx, id); !errors.Is(err, ErrNotFound) {
			t.Errorf("GetFacility after delete err = %v, want ErrNotFound", err)
		}
	})
}

func TestPlanCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("plans list cheapest first", func(t *testing.T) {
		repo := testRepository(t)
		svc := NewCatalogService(repo, testLogger())

		if _, err := svc.CreatePlan(ctx, &request.PlanRequest{Name: "Annual", Months: 12, PricePence: 30000}); err != nil {
			t.Fatalf("CreatePlan: %v", err)
		}
		if _, err := svc.CreatePlan(ctx, &request.PlanRequest{Name: "Monthly", Months: 1, PricePence: 3500}); err != nil {
			t.Fatalf("CreatePlan: %v", err)
		}

		plans, err := svc.ListPlans(ctx)
		if err != nil {
			t.Fatalf("ListPlans: %v", err)
		}
		if len(plans) != 2 {
			t.Fatalf("len(plans) = %d, want 2", len(plans))
		}
		if plans[0].Name != "Monthly" {
			t.Errorf("plans[0] = %q, want Monthly", plans[0].Name)
		}
	})

	t.Run("rejects a plan longer than ten years", func(t *testing.T) {
		repo := testRepository(t)
		svc := NewCatalogService(repo, testLogger())

		_, err := svc.CreatePlan(ctx, &request.PlanRequest{Name: "Forever", Months: 240, PricePence: 1})
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("err = %v, want ValidationError", err)
		}
	})

	t.Run("update and delete", func(t *testing.T) {
		repo := testRepository(t)
		svc := NewCatalogService(repo, testLogger())

		created, err := svc.CreatePlan(ctx, &request.PlanRequest{Name: "Monthly", Months: 1, PricePence: 3500})
		if err != nil {
			t.Fatalf("CreatePlan: %v", err)
		}

		price := int64(3900)
		updated, err := svc.UpdatePlan(ctx, uuid.MustParse(created.ID), &request.PlanUpdateRequest{PricePence: &price})
		if err != nil {
			t.Fatalf("UpdatePlan: %v", err)
		}
		if updated.PricePence != 3900 {
			t.Errorf("PricePence = %d, want 3900", updated.PricePence)
		}

		if err := svc.DeletePlan(ctx, uuid.MustParse(created.ID)); err != nil {
			t.Fatalf("DeletePlan: %v", err)
		}
		if err := svc.DeletePlan(ctx, uuid.MustParse(created.ID)); !errors.Is(err, ErrNotFound) {
			t.Errorf("second delete err = %v, want ErrNotFound", err)
		}
	})
}
