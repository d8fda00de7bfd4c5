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

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/facilities", catalogHandler.ListFacilities)
	r.Get("/api/facilities/{id}", catalogHandler.GetFacility)
	r.Get("/api/plans", catalogHandler.ListPlans)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/facilities", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleManager))

		r.Post("/", catalogHandler.CreateFacility)
		r.Patch("/{id}", catalogHandler.UpdateFacility)
		r.Delete("/{id}", catalogHandler.DeleteFacility)
	})

	r.Route("/api/admin/plans", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleManager))

		r.Post("/", catalogHandler.CreatePlan)
		r.Patch("/{id}", catalogHandler.UpdatePlan)
		r.Delete("/{id}", catalogHandler.DeletePlan)
	})
}
