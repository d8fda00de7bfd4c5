package wire

import (
	"vertex-leisure/internal/adaptor"
	"vertex-leisure/internal/data/repository"
	"vertex-leisure/pkg/middleware"
	"vertex-leisure/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth/register", authHandler.Register)
	r.Post("/api/auth/login", authHandler.Login)
	r.Get("/api/auth/confirm/{token}", authHandler.ConfirmEmail)
	r.Post("/api/auth/resend-confirmation", authHandler.ResendConfirmation)
	r.Post("/api/auth/forgot-password", authHandler.ForgotPassword)
	r.Post("/api/auth/reset-password", authHandler.ResetPassword)

	// ==================== PROTECTED ROUTES ====================
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).
		Post("/api/auth/logout", authHandler.Logout)
}
