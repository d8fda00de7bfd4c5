package entity

import "errors"

var ErrInvalidWeekday = errors.New("invalid weekday")

// Weekday names as stored, in schedule order.
var Weekdays = []string{
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
}

// WeekdayIndex returns a weekday's position in the week, or false for a
// name that is not a weekday.
func WeekdayIndex(day string) (int, bool) {
	for i, name := range Weekdays {
		if name == day {
			return i, true
		}
	}
	return 0, false
}

// TeamEvent is a recurring weekly group activity open to members. It has no
// date: it runs every week on Day at the same slot.
type TeamEvent struct {
	BaseNoDelete
	Name         string `db:"name"`
	Description  string `db:"description"`
	Day          string `db:"day"`
	StartMinutes int    `db:"start_minutes"`
	EndMinutes   int    `db:"end_minutes"`
	Capacity     int    `db:"capacity"`
}

func (e *TeamEvent) Validate() error {
	if _, ok := WeekdayIndex(e.Day); !ok {
		return ErrInvalidWeekday
	}
	if e.EndMinutes <= e.StartMinutes {
		return ErrEndBeforeStart
	}
	return nil
}
