package wire

import (
	"vertex-leisure/internal/adaptor"
	"vertex-leisure/internal/data/repository"
	"vertex-leisure/pkg/middleware"
	"vertex-leisure/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMembership(
	r chi.Router,
	membershipHandler *adaptor.MembershipHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Route("/api/memberships", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/memberships - Start a membership
		r.Post("/", membershipHandler.Subscribe)

		// GET /api/memberships/me - View current membership
		r.Get("/me", membershipHandler.Current)

		// DELETE /api/memberships/me - Cancel current membership
		r.Delete("/me", membershipHandler.Cancel)
	})
}
