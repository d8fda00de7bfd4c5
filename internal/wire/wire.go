// internal/wire/wire.go
package wire

import (
	"net/http"

	"vertex-leisure/internal/adaptor"
	"vertex-leisure/internal/data/repository"
	"vertex-leisure/internal/usecase"
	"vertex-leisure/pkg/middleware"
	"vertex-leisure/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(deps usecase.Deps, logger *zap.Logger) *App {
	service := usecase.NewService(deps, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, deps.Repo, deps.Config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireCatalog(r, handler.Catalog, repo, config, logger)
	wireSchedule(r, handler.Schedule, repo, config, logger)
	wireBooking(r, handler.Booking, repo, config, logger)
	wireMembership(r, handler.Membership, repo, config, logger)
	wirePayment(r, handler.Payment, repo, config, logger)
	wireDiscount(r, handler.Discount, repo, config, logger)
	wireAnalytics(r, handler.Analytics, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
