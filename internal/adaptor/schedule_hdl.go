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

type ScheduleHandler struct {
	service usecase.ScheduleService
	log     *zap.Logger
}

func NewScheduleHandler(service usecase.ScheduleService, log *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		service: service,
		log:     log.With(zap.String("handler", "schedule")),
	}
}

// ListClasses handles GET /api/classes (public)
func (h *ScheduleHandler) ListClasses(w http.ResponseWriter, r *http.Request) {
	req := request.PaginationFromQuery(r.URL.Query())

	classes, err := h.service.ListUpcomingClasses(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "list classes")
		return
	}

	utils.ResponseSuccess(w, "success", classes)
}

// GetClass handles GET /api/classes/{id} (public)
func (h *ScheduleHandler) GetClass(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid class ID", nil)
		return
	}

	class, err := h.service.GetClass(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.log, err, "get class")
		return
	}

	utils.ResponseSuccess(w, "success", class)
}

// CreateClass handles POST /api/admin/classes (manager)
func (h *ScheduleHandler) CreateClass(w http.ResponseWriter, r *http.Request) {
	var req request.ClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	class, err := h.service.CreateClass(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create class")
		return
	}

	utils.ResponseCreated(w, "success", class)
}

// UpdateClass handles PATCH /api/admin/classes/{id} (manager)
func (h *ScheduleHandler) UpdateClass(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid class ID", nil)
		return
	}

	var req request.ClassUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	class, err := h.service.UpdateClass(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update class")
		return
	}

	utils.ResponseSuccess(w, "success", class)
}

// DeleteClass handles DELETE /api/admin/classes/{id}?confirm=true (manager)
func (h *ScheduleHandler) DeleteClass(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid class ID", nil)
		return
	}

	if !utils.ParseBool(r.URL.Query().Get("confirm")) {
		utils.ResponseBadRequest(w, "Deletion requires confirm=true", nil)
		return
	}

	if err := h.service.DeleteClass(r.Context(), id); err != nil {
		respondServiceError(w, h.log, err, "delete class")
		return
	}

	utils.ResponseSuccess(w, "class deleted", nil)
}

// ListTeamEvents handles GET /api/team-events (public)
func (h *ScheduleHandler) ListTeamEvents(w http.ResponseWriter, r *http.Request) {
	req := request.PaginationFromQuery(r.URL.Query())

	events, err := h.service.ListTeamEvents(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "list team events")
		return
	}

	utils.ResponseSuccess(w, "success", events)
}

// CreateTeamEvent handles POST /api/admin/team-events (manager)
func (h *ScheduleHandler) CreateTeamEvent(w http.ResponseWriter, r *http.Request) {
	var req request.TeamEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	event, err := h.service.CreateTeamEvent(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create team event")
		return
	}

	utils.ResponseCreated(w, "success", event)
}

// UpdateTeamEvent handles PATCH /api/admin/team-events/{id} (manager)
func (h *ScheduleHandler) UpdateTeamEvent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid team event ID", nil)
		return
	}

	var req request.TeamEventUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	event, err := h.service.UpdateTeamEvent(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update team event")
		return
	}

	utils.ResponseSuccess(w, "success", event)
}

// DeleteTeamEvent handles DELETE /api/admin/team-events/{id}?confirm=true (manager)
func (h *ScheduleHandler) DeleteTeamEvent(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid team event ID", nil)
		return
	}

	if !utils.ParseBool(r.URL.Query().Get("confirm")) {
		utils.ResponseBadRequest(w, "Deletion requires confirm=true", nil)
		return
	}

	if err := h.service.DeleteTeamEvent(r.Context(), id); err != nil {
		respondServiceError(w, h.log, err, "delete team event")
		return
	}

	utils.ResponseSuccess(w, "team event deleted", nil)
}
