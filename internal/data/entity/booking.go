package entity

import (
	"time"

	"github.com/google/uuid"
)

// ClassBooking is one user's place in a class. A user holds at most one
// booking per class.
type ClassBooking struct {
	BaseSimple
	UserID      uuid.UUID `db:"user_id"`
	ClassID     uuid.UUID `db:"class_id"`
	AmountPence int64     `db:"amount_pence"`
}

// FacilityBooking is a reserved slot at a facility for one activity.
// Times are minutes since midnight on BookingDate.
type FacilityBooking struct {
	BaseSimple
	UserID       uuid.UUID `db:"user_id"`
	FacilityID   uuid.UUID `db:"facility_id"`
	Activity     string    `db:"activity"`
	BookingDate  time.Time `db:"booking_date"`
	StartMinutes int       `db:"start_minutes"`
	EndMinutes   int       `db:"end_minutes"`
	AmountPence  int64     `db:"amount_pence"`
}

func (b *FacilityBooking) Validate() error {
	if b.EndMinutes <= b.StartMinutes {
		return ErrEndBeforeStart
	}
	return nil
}
