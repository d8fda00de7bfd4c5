package usecase

import (
	"context"
	"errors"
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

type ScheduleService interface {
	CreateClass(ctx context.Context, req *request.ClassRequest) (*response.ClassResponse, error)
	GetClass(ctx context.Context, id uuid.UUID) (*response.ClassResponse, error)
	ListUpcomingClasses(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ClassResponse], error)
	UpdateClass(ctx context.Context, id uuid.UUID, req *request.ClassUpdateRequest) (*response.ClassResponse, error)
	DeleteClass(ctx context.Context, id uuid.UUID) error

	CreateTeamEvent(ctx context.Context, req *request.TeamEventRequest) (*response.TeamEventResponse, error)
	ListTeamEvents(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TeamEventResponse], error)
	UpdateTeamEvent(ctx context.Context, id uuid.UUID, req *request.TeamEventUpdateRequest) (*response.TeamEventResponse, error)
	DeleteTeamEvent(ctx context.Context, id uuid.UUID) error
}

type scheduleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewScheduleService(repo *repository.Repository, log *zap.Logger) ScheduleService {
	return &scheduleService{
		repo: repo,
		log:  log.With(zap.String("service", "schedule")),
	}
}

func (s *scheduleService) CreateClass(ctx context.Context, req *request.ClassRequest) (*response.ClassResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	classDate, startMinutes, endMinutes, err := parseSlot(req.Date, req.StartTime, req.EndTime)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	class := &entity.Class{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		ClassDate:    classDate,
		StartMinutes: startMinutes,
		EndMinutes:   endMinutes,
		Capacity:     req.Capacity,
		PricePence:   req.PricePence,
	}
	if req.Description != nil {
		class.Description = *req.Description
	}

	if err := class.Validate(); err != nil {
		return nil, newValidationError(map[string]string{"end_time": err.Error()})
	}

	if err := s.repo.Class.Create(ctx, class); err != nil {
		s.log.Error("Failed to create class", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create class")
	}

	s.log.Info("Class created",
		zap.String("class_id", class.ID.String()),
		zap.String("name", class.Name))

	resp := response.ClassToResponse(class)
	return &resp, nil
}

func (s *scheduleService) GetClass(ctx context.Context, id uuid.UUID) (*response.ClassResponse, error) {
	class, err := s.repo.Class.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find class", zap.Error(err), zap.String("class_id", id.String()))
		return nil, fmt.Errorf("failed to find class")
	}
	if class == nil {
		return nil, fmt.Errorf("%w: class", ErrNotFound)
	}

	resp := response.ClassToResponse(class)

	booked, err := s.repo.Class.CountBookings(ctx, id)
	if err == nil {
		spaces := int64(class.Capacity) - booked
		if spaces < 0 {
			spaces = 0
		}
		resp.SpacesLeft = &spaces
	}

	return &resp, nil
}

func (s *scheduleService) ListUpcomingClasses(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ClassResponse], error) {
	classes, err := s.repo.Class.FindUpcoming(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list classes", zap.Error(err))
		return nil, fmt.Errorf("failed to list classes")
	}

	total, err := s.repo.Class.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count classes", zap.Error(err))
		return nil, fmt.Errorf("failed to list classes")
	}

	data := make([]response.ClassResponse, 0, len(classes))
	for _, class := range classes {
		data = append(data, response.ClassToResponse(class))
	}

	return response.NewPaginatedResponse(data, req, total), nil
}

func (s *scheduleService) UpdateClass(ctx context.Context, id uuid.UUID, req *request.ClassUpdateRequest) (*response.ClassResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	class, err := s.repo.Class.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find class", zap.Error(err), zap.String("class_id", id.String()))
		return nil, fmt.Errorf("failed to find class")
	}
	if class == nil {
		return nil, fmt.Errorf("%w: class", ErrNotFound)
	}

	if req.Name != nil {
		class.Name = *req.Name
	}
	if req.Description != nil {
		class.Description = *req.Description
	}
	if req.Date != nil {
		classDate, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, newValidationError(map[string]string{"date": "must be a valid date"})
		}
		class.ClassDate = classDate
	}
	if req.StartTime != nil {
		startMinutes, err := utils.ParseClock(*req.StartTime)
		if err != nil {
			return nil, newValidationError(map[string]string{"start_time": err.Error()})
		}
		class.StartMinutes = startMinutes
	}
	if req.EndTime != nil {
		endMinutes, err := utils.ParseClock(*req.EndTime)
		if err != nil {
			return nil, newValidationError(map[string]string{"end_time": err.Error()})
		}
		class.EndMinutes = endMinutes
	}
	if req.Capacity != nil {
		class.Capacity = *req.Capacity
	}
	if req.PricePence != nil {
		class.PricePence = *req.PricePence
	}

	if err := class.Validate(); err != nil {
		return nil, newValidationError(map[string]string{"end_time": err.Error()})
	}

	class.Touch()
	if err := s.repo.Class.Update(ctx, class); err != nil {
		s.log.Error("Failed to update class", zap.Error(err), zap.String("class_id", id.String()))
		return nil, fmt.Errorf("failed to update class")
	}

	resp := response.ClassToResponse(class)
	return &resp, nil
}

func (s *scheduleService) DeleteClass(ctx context.Context, id uuid.UUID) error {
	class, err := s.repo.Class.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find class", zap.Error(err), zap.String("class_id", id.String()))
		return fmt.Errorf("failed to find class")
	}
	if class == nil {
		return fmt.Errorf("%w: class", ErrNotFound)
	}

	if err := s.repo.Class.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete class", zap.Error(err), zap.String("class_id", id.String()))
		return fmt.Errorf("failed to delete class")
	}

	return nil
}

func (s *scheduleService) CreateTeamEvent(ctx context.Context, req *request.TeamEventRequest) (*response.TeamEventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	startMinutes, err := utils.ParseClock(req.StartTime)
	if err != nil {
		return nil, newValidationError(map[string]string{"start_time": err.Error()})
	}
	endMinutes, err := utils.ParseClock(req.EndTime)
	if err != nil {
		return nil, newValidationError(map[string]string{"end_time": err.Error()})
	}

	now := time.Now()
	event := &entity.TeamEvent{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Day:          req.Day,
		StartMinutes: startMinutes,
		EndMinutes:   endMinutes,
		Capacity:     req.Capacity,
	}
	if req.Description != nil {
		event.Description = *req.Description
	}

	if err := event.Validate(); err != nil {
		field := "end_time"
		if errors.Is(err, entity.ErrInvalidWeekday) {
			field = "day"
		}
		return nil, newValidationError(map[string]string{field: err.Error()})
	}

	if err := s.repo.TeamEvent.Create(ctx, event); err != nil {
		s.log.Error("Failed to create team event", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create team event")
	}

	s.log.Info("Team event created",
		zap.String("event_id", event.ID.String()),
		zap.String("name", event.Name))

	resp := response.TeamEventToResponse(event)
	return &resp, nil
}

// ListTeamEvents returns the weekly slots in schedule order. They recur, so
// there is no upcoming filter.
func (s *scheduleService) ListTeamEvents(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.TeamEventResponse], error) {
	events, err := s.repo.TeamEvent.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list team events", zap.Error(err))
		return nil, fmt.Errorf("failed to list team events")
	}

	total, err := s.repo.TeamEvent.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count team events", zap.Error(err))
		return nil, fmt.Errorf("failed to list team events")
	}

	data := make([]response.TeamEventResponse, 0, len(events))
	for _, event := range events {
		data = append(data, response.TeamEventToResponse(event))
	}

	return response.NewPaginatedResponse(data, req, total), nil
}

func (s *scheduleService) UpdateTeamEvent(ctx context.Context, id uuid.UUID, req *request.TeamEventUpdateRequest) (*response.TeamEventResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	event, err := s.repo.TeamEvent.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find team event", zap.Error(err), zap.String("event_id", id.String()))
		return nil, fmt.Errorf("failed to find team event")
	}
	if event == nil {
		return nil, fmt.Errorf("%w: team event", ErrNotFound)
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Day != nil {
		event.Day = *req.Day
	}
	if req.StartTime != nil {
		startMinutes, err := utils.ParseClock(*req.StartTime)
		if err != nil {
			return nil, newValidationError(map[string]string{"start_time": err.Error()})
		}
		event.StartMinutes = startMinutes
	}
	if req.EndTime != nil {
		endMinutes, err := utils.ParseClock(*req.EndTime)
		if err != nil {
			return nil, newValidationError(map[string]string{"end_time": err.Error()})
		}
		event.EndMinutes = endMinutes
	}
	if req.Capacity != nil {
		event.Capacity = *req.Capacity
	}

	if err := event.Validate(); err != nil {
		field := "end_time"
		if errors.Is(err, entity.ErrInvalidWeekday) {
			field = "day"
		}
		return nil, newValidationError(map[string]string{field: err.Error()})
	}

	event.Touch()
	if err := s.repo.TeamEvent.Update(ctx, event); err != nil {
		s.log.Error("Failed to update team event", zap.Error(err), zap.String("event_id", id.String()))
		return nil, fmt.Errorf("failed to update team event")
	}

	resp := response.TeamEventToResponse(event)
	return &resp, nil
}

func (s *scheduleService) DeleteTeamEvent(ctx context.Context, id uuid.UUID) error {
	event, err := s.repo.TeamEvent.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find team event", zap.Error(err), zap.String("event_id", id.String()))
		return fmt.Errorf("failed to find team event")
	}
	if event == nil {
		return fmt.Errorf("%w: team event", ErrNotFound)
	}

	if err := s.repo.TeamEvent.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete team event", zap.Error(err), zap.String("event_id", id.String()))
		return fmt.Errorf("failed to delete team event")
	}

	return nil
}

// parseSlot turns a date plus two wall-clock strings into their storage
// representation.
func parseSlot(date, startTime, endTime string) (time.Time, int, int, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, 0, 0, newValidationError(map[string]string{"date": "must be a valid date"})
	}
	startMinutes, err := utils.ParseClock(startTime)
	if err != nil {
		return time.Time{}, 0, 0, newValidationError(map[string]string{"start_time": err.Error()})
	}
	endMinutes, err := utils.ParseClock(endTime)
	if err != nil {
		return time.Time{}, 0, 0, newValidationError(map[string]string{"end_time": err.Error()})
	}
	return day, startMinutes, endMinutes, nil
}
