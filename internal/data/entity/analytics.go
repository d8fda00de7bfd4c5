package entity

import "github.com/google/uuid"

// FacilityUsage is an aggregate of facility bookings over a reporting
// window, split per activity. Activity is empty for facilities with no
// bookings in the window.
type FacilityUsage struct {
	FacilityID   uuid.UUID `db:"facility_id"`
	FacilityName string    `db:"facility_name"`
	Activity     string    `db:"activity"`
	Bookings     int       `db:"bookings"`
	RevenuePence int64     `db:"revenue_pence"`
}

// ClassSales is an aggregate of class bookings over a reporting window.
type ClassSales struct {
	ClassID      uuid.UUID `db:"class_id"`
	ClassName    string    `db:"class_name"`
	Bookings     int       `db:"bookings"`
	RevenuePence int64     `db:"revenue_pence"`
}

// PlanCount is the number of active memberships held per plan.
type PlanCount struct {
	PlanID   uuid.UUID `db:"plan_id"`
	PlanName string    `db:"plan_name"`
	Members  int       `db:"members"`
}
