package response

import (
	"time"

	"vertex-leisure/internal/data/entity"
	"vertex-leisure/pkg/utils"
)

type FacilityResponse struct {
	ID             string           `json:"id"`
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	Capacity       int              `json:"capacity"`
	OpenTime       string           `json:"open_time"`
	CloseTime      string           `json:"close_time"`
	SessionMinutes int              `json:"session_minutes"`
	Activities     map[string]int64 `json:"activities"`
	CreatedAt      time.Time        `json:"created_at"`
}

func FacilityToResponse(facility *entity.Facility) FacilityResponse {
	return FacilityResponse{
		ID:             facility.ID.String(),
		Name:           facility.Name,
		Description:    facility.Description,
		Capacity:       facility.Capacity,
		OpenTime:       utils.FormatClock(facility.OpenMinutes),
		CloseTime:      utils.FormatClock(facility.CloseMinutes),
		SessionMinutes: facility.SessionMinutes,
		Activities:     facility.Activities,
		CreatedAt:      facility.CreatedAt,
	}
}
