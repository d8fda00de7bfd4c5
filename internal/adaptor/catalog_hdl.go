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

type CatalogHandler struct {
	service usecase.CatalogService
	log     *zap.Logger
}

func NewCatalogHandler(service usecase.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		log:     log.With(zap.String("handler", "catalog")),
	}
}

// ListFacilities handles GET /api/facilities (public)
func (h *CatalogHandler) ListFacilities(w http.ResponseWriter, r *http.Request) {
	req := request.PaginationFromQuery(r.URL.Query())

	facilities, err := h.service.ListFacilities(r.Context(), req)
	if err != nil {
		respondServiceError(w, h.log, err, "list facilities")
		return
	}

	utils.ResponseSuccess(w, "success", facilities)
}

// GetFacility handles GET /api/facilities/{id} (public)
func (h *CatalogHandler) GetFacility(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid facility ID", nil)
		return
	}

	facility, err := h.service.GetFacility(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.log, err, "get facility")
		return
	}

	utils.ResponseSuccess(w, "success", facility)
}

// CreateFacility handles POST /api/admin/facilities (manager)
func (h *CatalogHandler) CreateFacility(w http.ResponseWriter, r *http.Request) {
	var req request.FacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	facility, err := h.service.CreateFacility(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create facility")
		return
	}

	utils.ResponseCreated(w, "success", facility)
}

// UpdateFacility handles PATCH /api/admin/facilities/{id} (manager)
func (h *CatalogHandler) UpdateFacility(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid facility ID", nil)
		return
	}

	var req request.FacilityUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	facility, err := h.service.UpdateFacility(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update facility")
		return
	}

	utils.ResponseSuccess(w, "success", facility)
}

// DeleteFacility handles DELETE /api/admin/facilities/{id}?confirm=true (manager)
func (h *CatalogHandler) DeleteFacility(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid facility ID", nil)
		return
	}

	if !utils.ParseBool(r.URL.Query().Get("confirm")) {
		utils.ResponseBadRequest(w, "Deletion requires confirm=true", nil)
		return
	}

	if err := h.service.DeleteFacility(r.Context(), id); err != nil {
		respondServiceError(w, h.log, err, "delete facility")
		return
	}

	utils.ResponseSuccess(w, "facility deleted", nil)
}

// ListPlans handles GET /api/plans (public)
func (h *CatalogHandler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.service.ListPlans(r.Context())
	if err != nil {
		respondServiceError(w, h.log, err, "list plans")
		return
	}

	utils.ResponseSuccess(w, "success", plans)
}

// CreatePlan handles POST /api/admin/plans (manager)
func (h *CatalogHandler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req request.PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	plan, err := h.service.CreatePlan(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "create plan")
		return
	}

	utils.ResponseCreated(w, "success", plan)
}

// UpdatePlan handles PATCH /api/admin/plans/{id} (manager)
func (h *CatalogHandler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid plan ID", nil)
		return
	}

	var req request.PlanUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	plan, err := h.service.UpdatePlan(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "update plan")
		return
	}

	utils.ResponseSuccess(w, "success", plan)
}

// DeletePlan handles DELETE /api/admin/plans/{id}?confirm=true (manager)
func (h *CatalogHandler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid plan ID", nil)
		return
	}

	if !utils.ParseBool(r.URL.Query().Get("confirm")) {
		utils.ResponseBadRequest(w, "Deletion requires confirm=true", nil)
		return
	}

	if err := h.service.DeletePlan(r.Context(), id); err != nil {
		respondServiceError(w, h.log, err, "delete plan")
		return
	}

	utils.ResponseSuccess(w, "plan deleted", nil)
}
