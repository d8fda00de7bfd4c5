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

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Get("/api/users/me", userHandler.Profile)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleManager))

		// GET /api/admin/users - List all accounts (paginated)
		r.Get("/", userHandler.ListUsers)

		// POST /api/admin/users - Create a staff or manager account
		r.Post("/", userHandler.CreateStaff)

		// PATCH /api/admin/users/{id} - Update any account
		r.Patch("/{id}", userHandler.UpdateUser)

		// DELETE /api/admin/users/{id}?confirm=true - Remove an account
		r.Delete("/{id}", userHandler.DeleteUser)
	})
}
