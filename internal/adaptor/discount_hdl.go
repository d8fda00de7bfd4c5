package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"

	"vertex-leisure/internal/dto/request"
	"vertex-leisure/internal/usecase"
	"vertex-leisure/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DiscountHandler struct {
	service usecase.PricingService
	log     *zap.Logger
}

func NewDiscountHandler(service usecase.PricingService, log *zap.Logger) *DiscountHandler {
	return &DiscountHandler{
		service: service,
		log:     log.With(zap.String("handler", "discount")),
	}
}

// ListSchemes handles GET /api/admin/discounts (manager)
func (h *DiscountHandler) ListSchemes(w http.ResponseWriter, r *http.Request) {
	schemes, err := h.service.ListSchemes(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list discount schemes")
		return
	}

	utils.ResponseSuccess(w, "success", schemes)
}

// CreateScheme handles POST /api/admin/discounts (manager)
func (h *DiscountHandler) CreateScheme(w http.ResponseWriter, r *http.Request) {
	var req request.DiscountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	scheme, err := h.service.CreateScheme(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create discount scheme")
		return
	}

	utils.ResponseCreated(w, "success", scheme)
}

// UpdateScheme handles PATCH /api/admin/discounts/{id} (manager)
func (h *DiscountHandler) UpdateScheme(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid scheme ID", nil)
		return
	}

	var req request.DiscountUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	scheme, err := h.service.UpdateScheme(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update discount scheme")
		return
	}

	utils.ResponseSuccess(w, "success", scheme)
}

// DeleteScheme handles DELETE /api/admin/discounts/{id}?confirm=true (manager)
func (h *DiscountHandler) DeleteScheme(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid scheme ID", nil)
		return
	}

	if !utils.ParseBool(r.URL.Query().Get("confirm")) {
		utils.ResponseBadRequest(w, "Deletion requires confirm=true", nil)
		return
	}

	if err := h.service.DeleteScheme(r.Context(), id); err != nil {
		respondServiceError(w, h.log, err, "delete discount scheme")
		return
	}

	utils.ResponseSuccess(w, "discount scheme deleted", nil)
}

// Quote handles GET /api/discounts/quote?amount=<pence>
func (h *DiscountHandler) Quote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	amount, err := strconv.ParseInt(r.URL.Query().Get("amount"), 10, 64)
	if err != nil || amount < 0 {
		utils.ResponseBadRequest(w, "Invalid amount", nil)
		return
	}

	quote, err := h.service.Quote(r.Context(), userID, amount)
	if err != nil {
		respondServiceError(w, h.log, err, "quote")
		return
	}

	utils.ResponseSuccess(w, "success", quote)
}
