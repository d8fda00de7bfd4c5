package usecase

import (
	"vertex-leisure/internal/data/repository"
	"vertex-leisure/pkg/gateway"
	"vertex-leisure/pkg/mailer"
	"vertex-leisure/pkg/password"
	"vertex-leisure/pkg/token"
	"vertex-leisure/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	User       UserService
	Catalog    CatalogService
	Schedule   ScheduleService
	Booking    BookingService
	Pricing    PricingService
	Membership MembershipService
	Payment    PaymentService
	Analytics  AnalyticsService
}

// Deps bundles the infrastructure the services share.
type Deps struct {
	Repo    *repository.Repository
	Config  *utils.Config
	Hasher  password.Hasher
	Tokens  token.Manager
	Mailer  mailer.Mailer
	Gateway gateway.Gateway
}

func NewService(deps Deps, log *zap.Logger) *Service {
	pricing := NewPricingService(deps.Repo, log)

	return &Service{
		Auth:       NewAuthService(deps, log),
		User:       NewUserService(deps, log),
		Catalog:    NewCatalogService(deps.Repo, log),
		Schedule:   NewScheduleService(deps.Repo, log),
		Booking:    NewBookingService(deps.Repo, pricing, log),
		Pricing:    pricing,
		Membership: NewMembershipService(deps.Repo, log),
		Payment:    NewPaymentService(deps, log),
		Analytics:  NewAnalyticsService(deps.Repo, log),
	}
}
