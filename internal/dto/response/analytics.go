package response

import "vertex-leisure/internal/data/entity"

type FacilityUsageResponse struct {
	FacilityID   string `json:"facility_id"`
	FacilityName string `json:"facility_name"`
	Activity     string `json:"activity"`
	Bookings     int    `json:"bookings"`
	RevenuePence int64  `json:"revenue_pence"`
}

type ClassSalesResponse struct {
	ClassID      string `json:"class_id"`
	ClassName    string `json:"class_name"`
	Bookings     int    `json:"bookings"`
	RevenuePence int64  `json:"revenue_pence"`
}

type PlanCountResponse struct {
	PlanID   string `json:"plan_id"`
	PlanName string `json:"plan_name"`
	Members  int    `json:"members"`
}

type SalesSummaryResponse struct {
	WindowDays             int   `json:"window_days"`
	ClassRevenuePence      int64 `json:"class_revenue_pence"`
	FacilityRevenuePence   int64 `json:"facility_revenue_pence"`
	MembershipRevenuePence int64 `json:"membership_revenue_pence"`
	TotalRevenuePence      int64 `json:"total_revenue_pence"`
}

func FacilityUsageToResponse(row *entity.FacilityUsage) FacilityUsageResponse {
	return FacilityUsageResponse{
		FacilityID:   row.FacilityID.String(),
		FacilityName: row.FacilityName,
		Activity:     row.Activity,
		Bookings:     row.Bookings,
		RevenuePence: row.RevenuePence,
	}
}

func ClassSalesToResponse(row *entity.ClassSales) ClassSalesResponse {
	return ClassSalesResponse{
		ClassID:      row.ClassID.String(),
		ClassName:    row.ClassName,
		Bookings:     row.Bookings,
		RevenuePence: row.RevenuePence,
	}
}

func PlanCountToResponse(row *entity.PlanCount) PlanCountResponse {
	return PlanCountResponse{
		PlanID:   row.PlanID.String(),
		PlanName: row.PlanName,
		Members:  row.Members,
	}
}
