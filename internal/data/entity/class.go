package entity

import (
	"errors"
	"time"
)

var ErrEndBeforeStart = errors.New("end time must be after start time")

// Class is a scheduled instructor-led session with a fixed price and
// capacity. Times are minutes since midnight on ClassDate.
type Class struct {
	BaseNoDelete
	Name         string    `db:"name"`
	Description  string    `db:"description"`
	ClassDate    time.Time `db:"class_date"`
	StartMinutes int       `db:"start_minutes"`
	EndMinutes   int       `db:"end_minutes"`
	Capacity     int       `db:"capacity"`
	PricePence   int64     `db:"price_pence"`
}

func (c *Class) Validate() error {
	if c.EndMinutes <= c.StartMinutes {
		return ErrEndBeforeStart
	}
	return nil
}
