package usecase

import (
	"context"
	"fmt"
	"time"

	"vertex-leisure/internal/data/entity"
	"vertex-leisure/internal/data/repository"
	"vertex-leisure/internal/dto/request"
	"vertex-leisure/internal/dto/response"
	"vertex-leisure/pkg/password"
	"vertex-leisure/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	Profile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error)
	ListUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error)
	CreateStaff(ctx context.Context, req *request.CreateStaffRequest) (*response.UserResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *request.UserUpdateRequest) (*response.UserResponse, error)
	DeleteUser(ctx context.Context, actorID, id uuid.UUID) error
}

type userService struct {
	repo   *repository.Repository
	hasher password.Hasher
	log    *zap.Logger
}

func NewUserService(deps Deps, log *zap.Logger) UserService {
	return &userService{
		repo:   deps.Repo,
		hasher: deps.Hasher,
		log:    log.With(zap.String("service", "user")),
	}
}

func (s *userService) Profile(ctx context.Context, userID uuid.UUID) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("user_id", userID.String()))
		return nil, fmt.Errorf("failed to load profile")
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) ListUsers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.UserResponse], error) {
	users, err := s.repo.User.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users")
	}

	total, err := s.repo.User.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users")
	}

	data := make([]response.UserResponse, 0, len(users))
	for _, user := range users {
		data = append(data, response.UserToResponse(user))
	}

	return response.NewPaginatedResponse(data, req, total), nil
}

func (s *userService) CreateStaff(ctx context.Context, req *request.CreateStaffRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, newValidationError(map[string]string{"birth_date": "must be a valid date"})
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		PasswordHash:   hashed,
		BirthDate:      birthDate,
		Role:           entity.UserRole(req.Role),
		EmailConfirmed: true,
	}

	if err := user.Validate(); err != nil {
		return nil, newValidationError(map[string]string{"role": err.Error()})
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create staff user", zap.Error(err), zap.String("email", req.Email))
		return nil, conflictError(err)
	}

	s.log.Info("Staff account created",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (s *userService) UpdateUser(ctx context.Context, id uuid.UUID, req *request.UserUpdateRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, newValidationError(errs)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user", ErrNotFound)
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse("2006-01-02", *req.BirthDate)
		if err != nil {
			return nil, newValidationError(map[string]string{"birth_date": "must be a valid date"})
		}
		user.BirthDate = birthDate
	}
	if req.Role != nil {
		user.Role = entity.UserRole(*req.Role)
	}
	if req.Password != nil {
		hashed, err := s.hasher.Hash(*req.Password)
		if err != nil {
			s.log.Error("Failed to hash password", zap.Error(err))
			return nil, fmt.Errorf("failed to process password")
		}
		user.PasswordHash = hashed
	}

	if err := user.Validate(); err != nil {
		return nil, newValidationError(map[string]string{"user": err.Error()})
	}

	user.Touch()
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update user", zap.Error(err), zap.String("user_id", id.String()))
		return nil, conflictError(err)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// DeleteUser removes an account and everything hanging off it. A manager
// cannot delete their own account, so there is always at least one manager
// left.
func (s *userService) DeleteUser(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return fmt.Errorf("%w: cannot delete your own account", ErrForbidden)
	}

	user, err := s.repo.User.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return fmt.Errorf("%w: user", ErrNotFound)
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", id.String()))
		return fmt.Errorf("failed to delete user")
	}

	return nil
}
