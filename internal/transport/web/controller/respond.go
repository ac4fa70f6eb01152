package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jbeshir/reading-queue/internal/command"
	"github.com/jbeshir/reading-queue/internal/datasources"
	"github.com/jbeshir/reading-queue/internal/domain"
)

// statusForError maps command errors onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, datasources.ErrArticleNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domain.ErrUnknownStatus), errors.Is(err, command.ErrInvalidURL):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeCommandError(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	status := statusForError(err)

	logger := domain.LoggerFromContext(ctx)
	if status == http.StatusInternalServerError {
		logger.ErrorContext(ctx, msg, "error", err)
	} else {
		logger.WarnContext(ctx, msg, "error", err)
	}

	w.WriteHeader(status)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}
