package entity

import "errors"

var ErrCloseBeforeOpen = errors.New("closing time must not be before opening time")

// Facility is a bookable area of the centre. Activities maps an activity
// name to its hourly price in pence; opening hours are minutes since
// midnight. SessionMinutes is the default session length, 0 for
// unstructured general use.
type Facility struct {
	BaseNoDelete
	Name           string           `db:"name"`
	Description    string           `db:"description"`
	Capacity       int              `db:"capacity"`
	OpenMinutes    int              `db:"open_minutes"`
	CloseMinutes   int              `db:"close_minutes"`
	SessionMinutes int              `db:"session_minutes"`
	Activities     map[string]int64 `db:"activities"`
}

// Validate allows close == open: such a facility has no bookable hours but
// is a legal record.
func (f *Facility) Validate() error {
	if f.CloseMinutes < f.OpenMinutes {
		return ErrCloseBeforeOpen
	}
	return nil
}

// ActivityPrice returns the hourly price for an activity offered at this
// facility, or false when the activity is not offered.
func (f *Facility) ActivityPrice(activity string) (int64, bool) {
	price, ok := f.Activities[activity]
	return price, ok
}

// WithinHours reports whether the slot falls inside the opening hours.
func (f *Facility) WithinHours(startMinutes, endMinutes int) bool {
	return startMinutes >= f.OpenMinutes && endMinutes <= f.CloseMinutes && startMinutes < endMinutes
}
