package usecase

import (
	"context"
	"fmt"
	"time"

	"vertex-leisure/internal/data/entity"
	"vertex-leisure/internal/data/repository"
	"vertex-leisure/internal/dto/request"
	"vertex-leisure/internal/dto/response"
	"vertex-leisure/pkg/mailer"
	"vertex-leisure/pkg/password"
	"vertex-leisure/pkg/token"
	"vertex-leisure/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, sessionToken string) error
	ConfirmEmail(ctx context.Context, confirmToken string) error
	ResendConfirmation(ctx context.Context, req *request.ResendConfirmationRequest) error
	ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	hasher password.Hasher
	tokens token.Manager
	mailer mailer.Mailer
	log    *zap.Logger
}

func NewAuthService(deps Deps, log *zap.Logger) AuthService {
	return &authService{
		repo:   deps.Repo,
		config: deps.Config,
		hasher: deps.Hasher,
		tokens: deps.Tokens,
		mailer: deps.Mailer,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	birthDate, err := time.Parse("2006-01-02", req.BirthDate)
	if err != nil {
		return nil, newValidationError(map[string]string{"birth_date": "must be a valid date"})
	}

	existing, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", ErrConflict)
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
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hashed,
		BirthDate:    birthDate,
		Role:         entity.RoleCustomer,
	}

	if err := user.Validate(); err != nil {
		return nil, newValidationError(map[string]string{"birth_date": err.Error()})
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, conflictError(err)
	}

	go s.sendConfirmationEmail(user.Email)

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Warn("Failed to create session after register",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, newValidationError(errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("failed to find user")
	}
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	ok, rehash, err := s.hasher.Verify(user.PasswordHash, req.Password)
	if err != nil {
		s.log.Error("Failed to verify password", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to verify credentials")
	}
	if !ok {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID.String()))
		return nil, ErrInvalidCredentials
	}

	// The stored hash predates the current parameters. Re-hash now while
	// the plaintext is available.
	if rehash {
		if newHash, err := s.hasher.Hash(req.Password); err == nil {
			user.PasswordHash = newHash
			user.Touch()
			if err := s.repo.User.Update(ctx, user); err != nil {
				s.log.Warn("Failed to persist re-hashed password",
					zap.Error(err), zap.String("user_id", user.ID.String()))
			}
		}
	}

	session, err := s.createSession(ctx, user.ID)
	if err != nil {
		s.log.Error("Failed to create session", zap.Error(err), zap.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("failed to create session")
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	resp := response.AuthToResponse(user, session)
	return &resp, nil
}

func (s *authService) Logout(ctx context.Context, sessionToken string) error {
	if err := s.repo.Session.DeleteByToken(ctx, sessionToken); err != nil {
		s.log.Error("Failed to delete session", zap.Error(err))
		return fmt.Errorf("failed to logout")
	}

	s.log.Info("User logged out")
	return nil
}

func (s *authService) ConfirmEmail(ctx context.Context, confirmToken string) error {
	maxAge := time.Duration(s.config.Token.MaxAgeMinutes) * time.Minute
	email, err := s.tokens.Verify(confirmToken, maxAge)
	if err != nil {
		s.log.Warn("Invalid confirmation token", zap.Error(err))
		return newValidationError(map[string]string{"token": "invalid or expired confirmation link"})
	}

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for confirmation", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("failed to confirm email")
	}
	if user == nil {
		return fmt.Errorf("%w: user", ErrNotFound)
	}

	if user.EmailConfirmed {
		return nil
	}

	now := time.Now()
	user.EmailConfirmed = true
	user.ConfirmedOn = &now
	user.Touch()
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update confirmation status",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to confirm email")
	}

	s.log.Info("Email confirmed",
		zap.String("email", email),
		zap.String("user_id", user.ID.String()))

	return nil
}

func (s *authService) ResendConfirmation(ctx context.Context, req *request.ResendConfirmationRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return newValidationError(errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return fmt.Errorf("failed to find user")
	}
	if user == nil {
		return fmt.Errorf("%w: user", ErrNotFound)
	}
	if user.EmailConfirmed {
		return fmt.Errorf("%w: email already confirmed", ErrConflict)
	}

	go s.sendConfirmationEmail(user.Email)
	return nil
}

// ForgotPassword always reports success to the caller so the endpoint does
// not reveal which emails are registered.
func (s *authService) ForgotPassword(ctx context.Context, req *request.ForgotPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return newValidationError(errs)
	}

	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user", zap.Error(err), zap.String("email", req.Email))
		return nil
	}
	if user == nil {
		return nil
	}

	go s.sendResetEmail(user.Email)
	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *request.ResetPasswordRequest) error {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return newValidationError(errs)
	}

	maxAge := time.Duration(s.config.Token.MaxAgeMinutes) * time.Minute
	email, err := s.tokens.Verify(req.Token, maxAge)
	if err != nil {
		s.log.Warn("Invalid reset token", zap.Error(err))
		return newValidationError(map[string]string{"token": "invalid or expired reset link"})
	}

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user for reset", zap.Error(err), zap.String("email", email))
		return fmt.Errorf("failed to reset password")
	}
	if user == nil {
		return fmt.Errorf("%w: user", ErrNotFound)
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to process password")
	}

	user.PasswordHash = hashed
	user.Touch()
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.log.Error("Failed to update password",
			zap.Error(err), zap.String("user_id", user.ID.String()))
		return fmt.Errorf("failed to reset password")
	}

	// Existing sessions stop working once the password changes.
	if err := s.repo.Session.DeleteAllUserSessions(ctx, user.ID); err != nil {
		s.log.Warn("Failed to clear sessions after reset",
			zap.Error(err), zap.String("user_id", user.ID.String()))
	}

	s.log.Info("Password reset", zap.String("user_id", user.ID.String()))
	return nil
}

func (s *authService) createSession(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	expiry := time.Duration(s.config.Session.ExpiryHours) * time.Hour
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:    userID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(expiry),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *authService) sendConfirmationEmail(email string) {
	confirmToken, err := s.tokens.Generate(email)
	if err != nil {
		s.log.Error("Failed to generate confirmation token", zap.Error(err), zap.String("email", email))
		return
	}

	link := fmt.Sprintf("%s/api/auth/confirm/%s", s.config.App.BaseURL, confirmToken)
	body := fmt.Sprintf(
		"<p>Welcome to %s.</p><p>Please confirm your email address by following <a href=%q>this link</a>.</p>",
		s.config.App.Name, link)

	if err := s.mailer.Send(email, "Confirm your email", body); err != nil {
		s.log.Error("Failed to send confirmation email", zap.Error(err), zap.String("email", email))
		return
	}

	s.log.Info("Confirmation email sent", zap.String("email", email))
}

func (s *authService) sendResetEmail(email string) {
	resetToken, err := s.tokens.Generate(email)
	if err != nil {
		s.log.Error("Failed to generate reset token", zap.Error(err), zap.String("email", email))
		return
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.config.App.BaseURL, resetToken)
	body := fmt.Sprintf(
		"<p>A password reset was requested for your account.</p><p>Follow <a href=%q>this link</a> to choose a new password. If you did not request this, ignore this message.</p>",
		link)

	if err := s.mailer.Send(email, "Reset your password", body); err != nil {
		s.log.Error("Failed to send reset email", zap.Error(err), zap.String("email", email))
		return
	}

	s.log.Info("Password reset email sent", zap.String("email", email))
}
