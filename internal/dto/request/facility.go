package request

type FacilityRequest struct {
	Name           string           `json:"name" validate:"required,min=1,max=200"`
	Description    *string          `json:"description,omitempty"`
	Capacity       int              `json:"capacity" validate:"required,min=1"`
	OpenTime       string           `json:"open_time" validate:"required,datetime=15:04"`
	CloseTime      string           `json:"close_time" validate:"required,datetime=15:04"`
	SessionMinutes int              `json:"session_minutes" validate:"min=0"`
	Activities     map[string]int64 `json:"activities" validate:"required,min=1"`
}

type FacilityUpdateRequest struct {
	Name           *string          `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description    *string          `json:"description,omitempty"`
	Capacity       *int             `json:"capacity,omitempty" validate:"omitempty,min=1"`
	OpenTime       *string          `json:"open_time,omitempty" validate:"omitempty,datetime=15:04"`
	CloseTime      *string          `json:"close_time,omitempty" validate:"omitempty,datetime=15:04"`
	SessionMinutes *int             `json:"session_minutes,omitempty" validate:"omitempty,min=0"`
	Activities     map[string]int64 `json:"activities,omitempty" validate:"omitempty,min=1"`
}
