package response

import (
	"time"

	"vertex-leisure/internal/data/entity"
	"vertex-leisure/pkg/utils"
)

type ClassResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Date        string    `json:"date"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Capacity    int       `json:"capacity"`
	PricePence  int64     `json:"price_pence"`
	SpacesLeft  *int64    `json:"spaces_left,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type TeamEventResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Day         string    `json:"day"`
	StartTime   string    `json:"start_time"`
	EndTime     string    `json:"end_time"`
	Capacity    int       `json:"capacity"`
	CreatedAt   time.Time `json:"created_at"`
}

func ClassToResponse(class *entity.Class) ClassResponse {
	return ClassResponse{
		ID:          class.ID.String(),
		Name:        class.Name,
		Description: class.Description,
		Date:        class.ClassDate.Format("2006-01-02"),
		StartTime:   utils.FormatClock(class.StartMinutes),
		EndTime:     utils.FormatClock(class.EndMinutes),
		Capacity:    class.Capacity,
		PricePence:  class.PricePence,
		CreatedAt:   class.CreatedAt,
	}
}

func TeamEventToResponse(event *entity.TeamEvent) TeamEventResponse {
	return TeamEventResponse{
		ID:          event.ID.String(),
		Name:        event.Name,
		Description: event.Description,
		Day:         event.Day,
		StartTime:   utils.FormatClock(event.StartMinutes),
		EndTime:     utils.FormatClock(event.EndMinutes),
		Capacity:    event.Capacity,
		CreatedAt:   event.CreatedAt,
	}
}
