package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/codebytes2/gamerec/internal/domain"
)

type errorResponse struct {
	Message string `json:"message"`
}

// statusForError maps domain sentinels to HTTP statuses. Anything unmapped
// is an internal failure.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrTournamentNotFound),
		errors.Is(err, domain.ErrRecommendationNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrDuplicateRating),
		errors.Is(err, domain.ErrProductHasRatings),
		errors.Is(err, domain.ErrRegistrationClosed),
		errors.Is(err, domain.ErrTournamentFull),
		errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrTournamentStarted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusForError(err)
	logger := domain.LoggerFromContext(ctx)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(ctx, "request failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	logger.InfoContext(ctx, "request rejected", "status", status, "error", err)

	writeJSON(ctx, w, status, errorResponse{Message: err.Error()})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}
