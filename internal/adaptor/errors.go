package adaptor

import (
	"errors"
	"net/http"

	"vertex-leisure/internal/usecase"
	"vertex-leisure/pkg/utils"

	"go.uber.org/zap"
)

// respondServiceError maps the service error taxonomy onto HTTP responses.
// Anything unrecognized is treated as an internal error and hidden from
// the client.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrForbidden):
		log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - invalid credentials")
		utils.ResponseUnauthorized(w, "Invalid email or password")

	case errors.Is(err, usecase.ErrPaymentFailed):
		log.Warn(operation+" failed - payment declined", zap.Error(err))
		utils.ResponsePaymentFailed(w, err.Error())

	default:
		log.Error(operation+" failed", zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
