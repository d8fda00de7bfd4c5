package response

import (
	"time"

	"vertex-leisure/internal/data/entity"
)

type PlanResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Months      int       `json:"months"`
	PricePence  int64     `json:"price_pence"`
	CreatedAt   time.Time `json:"created_at"`
}

type MembershipResponse struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	PlanID      string `json:"plan_id"`
	PlanName    string `json:"plan_name,omitempty"`
	AmountPence int64  `json:"amount_pence"`
	MemberSince string `json:"member_since"`
	MemberTill  string `json:"member_till"`
}

func PlanToResponse(plan *entity.MembershipPlan) PlanResponse {
	return PlanResponse{
		ID:          plan.ID.String(),
		Name:        plan.Name,
		Description: plan.Description,
		Months:      plan.Months,
		PricePence:  plan.PricePence,
		CreatedAt:   plan.CreatedAt,
	}
}

func MembershipToResponse(membership *entity.ActiveMembership, plan *entity.MembershipPlan) MembershipResponse {
	resp := MembershipResponse{
		ID:          membership.ID.String(),
		UserID:      membership.UserID.String(),
		PlanID:      membership.PlanID.String(),
		AmountPence: membership.AmountPence,
		MemberSince: membership.MemberSince.Format("2006-01-02"),
		MemberTill:  membership.MemberTill.Format("2006-01-02"),
	}
	if plan != nil {
		resp.PlanName = plan.Name
	}
	return resp
}
