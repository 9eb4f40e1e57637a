package post

import (
	"errors"
	"log/slog"
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/core/posts"
)

// writeError writes a JSON error response
func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	handlers.WriteError(w, statusCode, errorType, message)
}

// handleServiceError maps service errors to HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case posts.IsNotFound(err):
		writeError(w, http.StatusNotFound, "NotFound", err.Error())

	case errors.Is(err, posts.ErrForbidden):
		writeError(w, http.StatusForbidden, "Forbidden",
			"Not authorized to perform requested action")

	case errors.Is(err, posts.ErrAuthRequired):
		writeError(w, http.StatusUnauthorized, "AuthenticationRequired",
			"Authentication required")

	case posts.IsValidationError(err):
		writeError(w, http.StatusUnprocessableEntity, "InvalidRequest", err.Error())

	default:
		// Don't leak internal error details to clients
		slog.Error("unexpected error in post handler", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "InternalServerError",
			"An internal error occurred")
	}
}
