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

func wireAnalytics(
	r chi.Router,
	analyticsHandler *adaptor.AnalyticsHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/analytics", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleManager))

		r.Get("/facility-usage", analyticsHandler.FacilityUsage)
		r.Get("/class-sales", analyticsHandler.ClassSales)
		r.Get("/memberships", analyticsHandler.MembershipCounts)
		r.Get("/sales-summary", analyticsHandler.SalesSummary)
	})
}
