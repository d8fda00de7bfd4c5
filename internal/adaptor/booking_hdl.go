package adaptor

import (
	"encoding/json"
	"net/http"

	"vertex-leisure/internal/data/entity"
	"vertex-leisure/internal/dto/request"
	"vertex-leisure/internal/usecase"
	"vertex-leisure/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service usecase.BookingService
	log     *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log.With(zap.String("handler", "booking")),
	}
}

// BookClass handles POST /api/bookings/classes
func (h *BookingHandler) BookClass(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.BookClassRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.BookClass(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "book class")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// BookClassFor handles POST /api/staff/bookings/classes (staff, manager)
func (h *BookingHandler) BookClassFor(w http.ResponseWriter, r *http.Request) {
	var req request.BookClassForRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.BookClassFor(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "book class for customer")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// BookFacility handles POST /api/bookings/facilities
func (h *BookingHandler) BookFacility(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.BookFacilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	booking, err := h.service.BookFacility(r.Context(), userID, &req)
	if err != nil {
		respondServiceError(w, h.log, err, "book facility")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// ListBookings handles GET /api/bookings
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	bookings, err := h.service.ListBookings(r.Context(), userID)
	if err != nil {
		respondServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// CancelClassBooking handles DELETE /api/bookings/classes/{id}
func (h *BookingHandler) CancelClassBooking(w http.ResponseWriter, r *http.Request) {
	actorID, role, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	if err := h.service.CancelClassBooking(r.Context(), actorID, role, id); err != nil {
		respondServiceError(w, h.log, err, "cancel class booking")
		return
	}

	utils.ResponseSuccess(w, "booking cancelled", nil)
}

// CancelFacilityBooking handles DELETE /api/bookings/facilities/{id}
func (h *BookingHandler) CancelFacilityBooking(w http.ResponseWriter, r *http.Request) {
	actorID, role, ok := actorFromContext(r)
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid booking ID", nil)
		return
	}

	if err := h.service.CancelFacilityBooking(r.Context(), actorID, role, id); err != nil {
		respondServiceError(w, h.log, err, "cancel facility booking")
		return
	}

	utils.ResponseSuccess(w, "booking cancelled", nil)
}

func actorFromContext(r *http.Request) (uuid.UUID, entity.UserRole, bool) {
	actorID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, "", false
	}

	role, ok := utils.GetRoleFromContext(r.Context())
	if !ok {
		return uuid.Nil, "", false
	}

	return actorID, entity.UserRole(role), true
}
