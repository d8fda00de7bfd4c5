package response

import (
	"time"

	"vertex-leisure/internal/data/entity"
	"vertex-leisure/pkg/utils"
)

type ClassBookingResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ClassID     string    `json:"class_id"`
	ClassName   string    `json:"class_name,omitempty"`
	Date        string    `json:"date,omitempty"`
	StartTime   string    `json:"start_time,omitempty"`
	EndTime     string    `json:"end_time,omitempty"`
	AmountPence int64     `json:"amount_pence"`
	CreatedAt   time.Time `json:"created_at"`
}

type FacilityBookingResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	FacilityID   string    `json:"facility_id"`
	FacilityName string    `json:"facility_name,omitempty"`
	Activity     string    `json:"activity"`
	Date         string    `json:"date"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	AmountPence  int64     `json:"amount_pence"`
	CreatedAt    time.Time `json:"created_at"`
}

type BookingsResponse struct {
	Classes    []ClassBookingResponse    `json:"classes"`
	Facilities []FacilityBookingResponse `json:"facilities"`
}

func ClassBookingToResponse(booking *entity.ClassBooking, class *entity.Class) ClassBookingResponse {
	resp := ClassBookingResponse{
		ID:          booking.ID.String(),
		UserID:      booking.UserID.String(),
		ClassID:     booking.ClassID.String(),
		AmountPence: booking.AmountPence,
		CreatedAt:   booking.CreatedAt,
	}
	if class != nil {
		resp.ClassName = class.Name
		resp.Date = class.ClassDate.Format("2006-01-02")
		resp.StartTime = utils.FormatClock(class.StartMinutes)
		resp.EndTime = utils.FormatClock(class.EndMinutes)
	}
	return resp
}

func FacilityBookingToResponse(booking *entity.FacilityBooking, facility *entity.Facility) FacilityBookingResponse {
	resp := FacilityBookingResponse{
		ID:          booking.ID.String(),
		UserID:      booking.UserID.String(),
		FacilityID:  booking.FacilityID.String(),
		Activity:    booking.Activity,
		Date:        booking.BookingDate.Format("2006-01-02"),
		StartTime:   utils.FormatClock(booking.StartMinutes),
		EndTime:     utils.FormatClock(booking.EndMinutes),
		AmountPence: booking.AmountPence,
		CreatedAt:   booking.CreatedAt,
	}
	if facility != nil {
		resp.FacilityName = facility.Name
	}
	return resp
}
