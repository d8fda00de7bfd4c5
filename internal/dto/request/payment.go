package request

type ChargeRequest struct {
	Purpose   string  `json:"purpose" validate:"required,oneof=class_booking facility_booking membership"`
	RefID     string  `json:"ref_id" validate:"required,uuid4"`
	CardToken *string `json:"card_token,omitempty"`
	Confirm   bool    `json:"confirm"`
}
