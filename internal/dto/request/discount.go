package request

type DiscountRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Threshold int    `json:"threshold" validate:"gte=0"`
	Value     int    `json:"value" validate:"required,gte=1,lte=100"`
}

type DiscountUpdateRequest struct {
	Name      *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Threshold *int    `json:"threshold,omitempty" validate:"omitempty,gte=0"`
	Value     *int    `json:"value,omitempty" validate:"omitempty,gte=1,lte=100"`
}
