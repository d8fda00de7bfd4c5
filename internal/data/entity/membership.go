package entity

import (
	"time"

	"github.com/google/uuid"
)

// MembershipPlan is a purchasable subscription tier. Months is the length
// of membership the plan grants.
type MembershipPlan struct {
	BaseNoDelete
	Name        string `db:"name"`
	Description string `db:"description"`
	Months      int    `db:"months"`
	PricePence  int64  `db:"price_pence"`
}

// ActiveMembership records the current subscription of a user. At most one
// row exists per user.
type ActiveMembership struct {
	BaseSimple
	UserID      uuid.UUID `db:"user_id"`
	PlanID      uuid.UUID `db:"plan_id"`
	AmountPence int64     `db:"amount_pence"`
	MemberSince time.Time `db:"member_since"`
	MemberTill  time.Time `db:"member_till"`
}
