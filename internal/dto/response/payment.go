package response

type QuoteResponse struct {
	OriginalPence int64 `json:"original_pence"`
	AmountPence   int64 `json:"amount_pence"`
	DiscountPence int64 `json:"discount_pence"`
}

type ChargeResponse struct {
	ChargeID             string `json:"charge_id,omitempty"`
	AmountPence          int64  `json:"amount_pence"`
	Currency             string `json:"currency"`
	RequiresConfirmation bool   `json:"requires_confirmation,omitempty"`
	CardID               string `json:"card_id,omitempty"`
}
