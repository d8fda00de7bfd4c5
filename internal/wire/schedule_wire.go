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

func wireSchedule(
	r chi.Router,
	scheduleHandler *adaptor.ScheduleHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Get("/api/classes", scheduleHandler.ListClasses)
	r.Get("/api/classes/{id}", scheduleHandler.GetClass)
	r.Get("/api/team-events", scheduleHandler.ListTeamEvents)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/classes", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleManager))

		r.Post("/", scheduleHandler.CreateClass)
		r.Patch("/{id}", scheduleHandler.UpdateClass)
		r.Delete("/{id}", scheduleHandler.DeleteClass)
	})

	r.Route("/api/admin/team-events", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleManager))

		r.Post("/", scheduleHandler.CreateTeamEvent)
		r.Patch("/{id}", scheduleHandler.UpdateTeamEvent)
		r.Delete("/{id}", scheduleHandler.DeleteTeamEvent)
	})
}
