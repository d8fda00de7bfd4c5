package response

import (
	"time"

	"vertex-leisure/internal/data/entity"
)

type DiscountResponse struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Threshold int       `json:"threshold"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"created_at"`
}

func DiscountToResponse(scheme *entity.DiscountScheme) DiscountResponse {
	return DiscountResponse{
		ID:        scheme.ID,
		Name:      scheme.Name,
		Threshold: scheme.Threshold,
		Value:     scheme.Value,
		CreatedAt: scheme.CreatedAt,
	}
}
