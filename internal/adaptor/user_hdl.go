package adaptor

import (
	"encoding/json"
	"net/http"

	"vertex-leisure/internal/dto/request"
	"vertex-leisure/internal/usecase"
	"vertex-leisure/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// Profile handles GET /api/users/me (protected)
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	user, err := h.service.Profile(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.log, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// ListUsers handles GET /api/admin/users (manager)
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	req := request.PaginationFromQuery(r.URL.Query())

	users, err := h.service.ListUsers(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// CreateStaff handles POST /api/admin/users (manager)
func (h *UserHandler) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStaffRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.CreateStaff(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create staff")
		return
	}

	utils.ResponseCreated(w, "success", user)
}

// UpdateUser handles PATCH /api/admin/users/{id} (manager)
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	var req request.UserUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	user, err := h.service.UpdateUser(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// DeleteUser handles DELETE /api/admin/users/{id}?confirm=true (manager)
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid user ID", nil)
		return
	}

	if !utils.ParseBool(r.URL.Query().Get("confirm")) {
		utils.ResponseBadRequest(w, "Deletion requires confirm=true", nil)
		return
	}

	if err := h.service.DeleteUser(r.Context(), actorID, id); err != nil {
		respondServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, "user deleted", nil)
}
