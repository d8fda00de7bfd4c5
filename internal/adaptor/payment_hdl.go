package adaptor

import (
	"encoding/json"
	"net/http"

	"vertex-leisure/internal/dto/request"
	"vertex-leisure/internal/usecase"
	"vertex-leisure/pkg/utils"

	"go.uber.org/zap"
)

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// Charge handles POST /api/payments/charge
func (h *PaymentHandler) Charge(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.ChargeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	charge, err := h.service.Charge(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "charge")
		return
	}

	if charge.RequiresConfirmation {
		utils.ResponseSuccess(w, "confirmation required", charge)
		return
	}

	utils.ResponseCreated(w, "success", charge)
}
