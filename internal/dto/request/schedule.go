package request

type ClassRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Date        string  `json:"date" validate:"required,datetime=2006-01-02"`
	StartTime   string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string  `json:"end_time" validate:"required,datetime=15:04"`
	Capacity    int     `json:"capacity" validate:"required,min=1"`
	PricePence  int64   `json:"price_pence" validate:"gte=0"`
}

type ClassUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Date        *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	StartTime   *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime     *string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Capacity    *int    `json:"capacity,omitempty" validate:"omitempty,min=1"`
	PricePence  *int64  `json:"price_pence,omitempty" validate:"omitempty,gte=0"`
}

type TeamEventRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Day         string  `json:"day" validate:"required,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime   string  `json:"start_time" validate:"required,datetime=15:04"`
	EndTime     string  `json:"end_time" validate:"required,datetime=15:04"`
	Capacity    int     `json:"capacity" validate:"required,min=1"`
}

type TeamEventUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Day         *string `json:"day,omitempty" validate:"omitempty,oneof=monday tuesday wednesday thursday friday saturday sunday"`
	StartTime   *string `json:"start_time,omitempty" validate:"omitempty,datetime=15:04"`
	EndTime     *string `json:"end_time,omitempty" validate:"omitempty,datetime=15:04"`
	Capacity    *int    `json:"capacity,omitempty" validate:"omitempty,min=1"`
}
