package adaptor

import (
	"encoding/json"
	"net/http"

	"vertex-leisure/internal/dto/request"
	"vertex-leisure/internal/usecase"
	"vertex-leisure/pkg/utils"

	"go.uber.org/zap"
)

type MembershipHandler struct {
	service usecase.MembershipService
	log     *zap.Logger
}

func NewMembershipHandler(service usecase.MembershipService, log *zap.Logger) *MembershipHandler {
	return &MembershipHandler{
		service: service,
		log:     log.With(zap.String("handler", "membership")),
	}
}

// Subscribe handles POST /api/memberships
func (h *MembershipHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	membership, err := h.service.Subscribe(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "subscribe")
		return
	}

	utils.ResponseCreated(w, "success", membership)
}

// Current handles GET /api/memberships/me
func (h *MembershipHandler) Current(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	membership, err := h.service.Current(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.log, err, "get membership")
		return
	}

	utils.ResponseSuccess(w, "success", membership)
}

// Cancel handles DELETE /api/memberships/me
func (h *MembershipHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	if err := h.service.Cancel(r.Context(), userID); err != nil {
		respondServiceError(w, h.log, err, "cancel membership")
		return
	}

	utils.ResponseSuccess(w, "membership cancelled", nil)
}
