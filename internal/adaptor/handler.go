package adaptor

import (
	"vertex-leisure/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	User       *UserHandler
	Catalog    *CatalogHandler
	Schedule   *ScheduleHandler
	Booking    *BookingHandler
	Membership *MembershipHandler
	Payment    *PaymentHandler
	Discount   *DiscountHandler
	Analytics  *AnalyticsHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		User:       NewUserHandler(service.User, log),
		Catalog:    NewCatalogHandler(service.Catalog, log),
		Schedule:   NewScheduleHandler(service.Schedule, log),
		Booking:    NewBookingHandler(service.Booking, log),
		Membership: NewMembershipHandler(service.Membership, log),
		Payment:    NewPaymentHandler(service.Payment, log),
		Discount:   NewDiscountHandler(service.Pricing, log),
		Analytics:  NewAnalyticsHandler(service.Analytics, log),
	}
}
