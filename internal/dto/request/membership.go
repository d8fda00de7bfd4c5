package request

type PlanRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Months      int     `json:"months" validate:"required,min=1,max=120"`
	PricePence  int64   `json:"price_pence" validate:"gte=0"`
}

type PlanUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Months      *int    `json:"months,omitempty" validate:"omitempty,min=1,max=120"`
	PricePence  *int64  `json:"price_pence,omitempty" validate:"omitempty,gte=0"`
}

type SubscribeRequest struct {
	PlanID string `json:"plan_id" validate:"required,uuid4"`
}
