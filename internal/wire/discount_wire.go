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

func wireDiscount(
	r chi.Router,
	discountHandler *adaptor.DiscountHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// Customers preview the discount they would get on an amount.
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Get("/api/discounts/quote", discountHandler.Quote)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/discounts", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleManager))

		r.Get("/", discountHandler.ListSchemes)
		r.Post("/", discountHandler.CreateScheme)
		r.Patch("/{id}", discountHandler.UpdateScheme)
		r.Delete("/{id}", discountHandler.DeleteScheme)
	})
}
