package adaptor

import (
	"encoding/json"
	"net/http"

	"vertex-leisure/internal/dto/request"
	"vertex-leisure/internal/usecase"
	"vertex-leisure/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Register handles POST /api/auth/register (public)
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auth, err := h.service.Register(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "register")
		return
	}

	utils.ResponseCreated(w, "success", auth)
}

// Login handles POST /api/auth/login (public)
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	auth, err := h.service.Login(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.log, err, "login")
		return
	}

	utils.ResponseSuccess(w, "success", auth)
}

// Logout handles POST /api/auth/logout (protected)
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := utils.GetTokenFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	if err := h.service.Logout(r.Context(), token); err != nil {
		respondServiceError(w, h.log, err, "logout")
		return
	}

	utils.ResponseSuccess(w, "logged out", nil)
}

// ConfirmEmail handles GET /api/auth/confirm/{token} (public)
func (h *AuthHandler) ConfirmEmail(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if token == "" {
		utils.ResponseBadRequest(w, "Missing confirmation token", nil)
		return
	}

	if err := h.service.ConfirmEmail(r.Context(), token); err != nil {
		respondServiceError(w, h.log, err, "confirm email")
		return
	}

	utils.ResponseSuccess(w, "email confirmed", nil)
}

// ResendConfirmation handles POST /api/auth/resend-confirmation (public)
func (h *AuthHandler) ResendConfirmation(w http.ResponseWriter, r *http.Request) {
	var req request.ResendConfirmationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ResendConfirmation(r.Context(), &req); err != nil {
		respondServiceError(w, h.log, err, "resend confirmation")
		return
	}

	utils.ResponseSuccess(w, "confirmation email sent", nil)
}

// ForgotPassword handles POST /api/auth/forgot-password (public)
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ForgotPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ForgotPassword(r.Context(), &req); err != nil {
		respondServiceError(w, h.log, err, "forgot password")
		return
	}

	utils.ResponseSuccess(w, "if the email is registered, a reset link has been sent", nil)
}

// ResetPassword handles POST /api/auth/reset-password (public)
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.service.ResetPassword(r.Context(), &req); err != nil {
		respondServiceError(w, h.log, err, "reset password")
		return
	}

	utils.ResponseSuccess(w, "password updated", nil)
}
