package wire

import (
	"vertex-leisure/internal/adaptor"
	"vertex-leisure/internal/data/entity"
	"vertex-leisure/internal/data/repository"
	"vertex-leisure/pkg/middleware"
	"vertex-leisure/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/bookings/classes - Reserve a class place
		r.Post("/api/bookings/classes", bookingHandler.BookClass)

		// POST /api/bookings/facilities - Reserve a facility slot
		r.Post("/api/bookings/facilities", bookingHandler.BookFacility)

		// GET /api/bookings - View own booking history
		r.Get("/api/bookings", bookingHandler.ListBookings)

		// DELETE /api/bookings/classes/{id} - Cancel own class booking
		r.Delete("/api/bookings/classes/{id}", bookingHandler.CancelClassBooking)

		// DELETE /api/bookings/facilities/{id} - Cancel own facility booking
		r.Delete("/api/bookings/facilities/{id}", bookingHandler.CancelFacilityBooking)
	})

	// ==================== STAFF ROUTES ====================
	// Front desk staff book classes on behalf of walk-in customers.
	r.Route("/api/staff/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleStaff, entity.RoleManager))

		r.Post("/classes", bookingHandler.BookClassFor)
	})
}
