package usecase

import (
	"context"
	"fmt"
	"time"

	"vertex-leisure/internal/data/entity"
	"vertex-leisure/internal/data/repository"
	"vertex-leisure/internal/dto/request"
	"vertex-leisure/internal/dto/response"
	"vertex-leisure/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	BookClass(ctx context.Context, userID uuid.UUID, req *request.BookClassRequest) (*response.ClassBookingResponse, error)
	BookClassFor(ctx context.Context, req *request.BookClassForRequest) (*response.ClassBookingResponse, error)
	BookFacility(ctx context.Context, userID uuid.UUID, req *request.BookFacilityRequest) (*response.FacilityBookingResponse, error)
	ListBookings(ctx context.Context, userID uuid.UUID) (*response.BookingsResponse, error)
	CancelClassBooking(ctx context.Context, actorID uuid.UUID, actorRole entity.UserRole, bookingID uuid.UUID) error
	CancelFacilityBooking(ctx context.Context, actorID uuid.UUID, actorRole entity.UserRole, bookingID uuid.UUID) error
}

type bookingService struct {
	repo    *repository.Repository
	pricing PricingService
	log     *zap.Logger
}

func NewBookingService(repo *repository.Repository, pricing PricingService, log *zap.Logger) BookingService {
	return &bookingService{
		repo:    repo,
		pricing: pricing,
		log:     log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) BookClass(ctx context.Context, userID uuid.UUID, req *request.BookClassRequest) (*response.ClassBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return nil, newValidationError(map[string]string{"class_id": "must be a valid UUID"})
	}

	return s.bookClass(ctx, userID, classID)
}

// BookClassFor books a class on behalf of a customer, looked up by email.
// Used by staff at the front desk.
func (s *bookingService) BookClassFor(ctx context.Context, req *request.BookClassForRequest) (*response.ClassBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return nil, newValidationError(map[string]string{"class_id": "must be a valid UUID"})
	}

	customer, err := s.repo.User.FindByEmail(ctx, req.CustomerEmail)
	if err != nil {
		s.log.Error("Failed to find customer", zap.Error(err), zap.String("email", req.CustomerEmail))
		return nil, fmt.Errorf("failed to find customer")
	}
	if customer == nil {
		return nil, fmt.Errorf("%w: customer", ErrNotFound)
	}

	return s.bookClass(ctx, customer.ID, classID)
}

func (s *bookingService) bookClass(ctx context.Context, userID, classID uuid.UUID) (*response.ClassBookingResponse, error) {
	class, err := s.repo.Class.FindByID(ctx, classID)
	if err != nil {
		s.log.Error("Failed to find class", zap.Error(err), zap.String("class_id", classID.String()))
		return nil, fmt.Errorf("failed to find class")
	}
	if class == nil {
		return nil, fmt.Errorf("%w: class", ErrNotFound)
	}

	booked, err := s.repo.Class.CountBookings(ctx, classID)
	if err != nil {
		s.log.Error("Failed to count class bookings", zap.Error(err), zap.String("class_id", classID.String()))
		return nil, fmt.Errorf("failed to book class")
	}
	if booked >= int64(class.Capacity) {
		return nil, fmt.Errorf("%w: class is full", ErrConflict)
	}

	// The discount is priced off the history before this booking.
	quote, err := s.pricing.Quote(ctx, userID, class.PricePence)
	if err != nil {
		return nil, err
	}

	booking := &entity.ClassBooking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:      userID,
		ClassID:     classID,
		AmountPence: quote.AmountPence,
	}

	if err := s.repo.ClassBooking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create class booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("class_id", classID.String()))
		return nil, conflictError(err)
	}

	s.log.Info("Class booked",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("class_id", classID.String()),
		zap.Int64("amount_pence", booking.AmountPence))

	resp := response.ClassBookingToResponse(booking, class)
	return &resp, nil
}

func (s *bookingService) BookFacility(ctx context.Context, userID uuid.UUID, req *request.BookFacilityRequest) (*response.FacilityBookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	facilityID, err := uuid.Parse(req.FacilityID)
	if err != nil {
		return nil, newValidationError(map[string]string{"facility_id": "must be a valid UUID"})
	}

	facility, err := s.repo.Facility.FindByID(ctx, facilityID)
	if err != nil {
		s.log.Error("Failed to find facility", zap.Error(err), zap.String("facility_id", facilityID.String()))
		return nil, fmt.Errorf("failed to find facility")
	}
	if facility == nil {
		return nil, fmt.Errorf("%w: facility", ErrNotFound)
	}

	hourlyPrice, offered := facility.ActivityPrice(req.Activity)
	if !offered {
		return nil, newValidationError(map[string]string{"activity": "not offered at this facility"})
	}

	bookingDate, startMinutes, endMinutes, err := parseSlot(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	if !facility.WithinHours(startMinutes, endMinutes) {
		return nil, newValidationError(map[string]string{"start_time": "slot is outside opening hours"})
	}

	overlapping, err := s.repo.FacilityBooking.CountOverlapping(ctx, facilityID, bookingDate, startMinutes, endMinutes)
	if err != nil {
		s.log.Error("Failed to count overlapping bookings",
			zap.Error(err), zap.String("facility_id", facilityID.String()))
		return nil, fmt.Errorf("failed to book facility")
	}
	if overlapping >= int64(facility.Capacity) {
		return nil, fmt.Errorf("%w: facility is fully booked for that slot", ErrConflict)
	}

	// Hourly rate pro-rated over the slot, rounding half up.
	duration := int64(endMinutes - startMinutes)
	basePence := (hourlyPrice*duration + 30) / 60

	quote, err := s.pricing.Quote(ctx, userID, basePence)
	if err != nil {
		return nil, err
	}

	booking := &entity.FacilityBooking{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:       userID,
		FacilityID:   facilityID,
		Activity:     req.Activity,
		BookingDate:  bookingDate,
		StartMinutes: startMinutes,
		EndMinutes:   endMinutes,
		AmountPence:  quote.AmountPence,
	}

	if err := s.repo.FacilityBooking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create facility booking",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("facility_id", facilityID.String()))
		return nil, fmt.Errorf("failed to book facility")
	}

	s.log.Info("Facility booked",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("facility_id", facilityID.String()),
		zap.String("activity", req.Activity),
		zap.Int64("amount_pence", booking.AmountPence))

	resp := response.FacilityBookingToResponse(booking, facility)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, userID uuid.UUID) (*response.BookingsResponse, error) {
	classBookings, err := s.repo.ClassBooking.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list class bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list bookings")
	}

	facilityBookings, err := s.repo.FacilityBooking.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to list facility bookings", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to list bookings")
	}

	result := &response.BookingsResponse{
		Classes:    make([]response.ClassBookingResponse, 0, len(classBookings)),
		Facilities: make([]response.FacilityBookingResponse, 0, len(facilityBookings)),
	}

	for _, booking := range classBookings {
		class, err := s.repo.Class.FindByID(ctx, booking.ClassID)
		if err != nil {
			s.log.Warn("Failed to load class for booking",
				zap.Error(err), zap.String("booking_id", booking.ID.String()))
		}
		result.Classes = append(result.Classes, response.ClassBookingToResponse(booking, class))
	}

	for _, booking := range facilityBookings {
		facility, err := s.repo.Facility.FindByID(ctx, booking.FacilityID)
		if err != nil {
			s.log.Warn("Failed to load facility for booking",
				zap.Error(err), zap.String("booking_id", booking.ID.String()))
		}
		result.Facilities = append(result.Facilities, response.FacilityBookingToResponse(booking, facility))
	}

	return result, nil
}

func (s *bookingService) CancelClassBooking(ctx context.Context, actorID uuid.UUID, actorRole entity.UserRole, bookingID uuid.UUID) error {
	booking, err := s.repo.ClassBooking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find class booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return fmt.Errorf("failed to find booking")
	}
	if booking == nil {
		return fmt.Errorf("%w: booking", ErrNotFound)
	}

	if booking.UserID != actorID && actorRole != entity.RoleManager {
		return fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
	}

	if err := s.repo.ClassBooking.Delete(ctx, bookingID); err != nil {
		s.log.Error("Failed to delete class booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return fmt.Errorf("failed to cancel booking")
	}

	s.log.Info("Class booking cancelled",
		zap.String("booking_id", bookingID.String()),
		zap.String("actor_id", actorID.String()))

	return nil
}

func (s *bookingService) CancelFacilityBooking(ctx context.Context, actorID uuid.UUID, actorRole entity.UserRole, bookingID uuid.UUID) error {
	booking, err := s.repo.FacilityBooking.FindByID(ctx, bookingID)
	if err != nil {
		s.log.Error("Failed to find facility booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return fmt.Errorf("failed to find booking")
	}
	if booking == nil {
		return fmt.Errorf("%w: booking", ErrNotFound)
	}

	if booking.UserID != actorID && actorRole != entity.RoleManager {
		return fmt.Errorf("%w: booking belongs to another user", ErrForbidden)
	}

	if err := s.repo.FacilityBooking.Delete(ctx, bookingID); err != nil {
		s.log.Error("Failed to delete facility booking", zap.Error(err), zap.String("booking_id", bookingID.String()))
		return fmt.Errorf("failed to cancel booking")
	}

	s.log.Info("Facility booking cancelled",
		zap.String("booking_id", bookingID.String()),
		zap.String("actor_id", actorID.String()))

	return nil
}
