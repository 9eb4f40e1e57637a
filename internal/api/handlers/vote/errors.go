package vote

import (
	"errors"
	"log/slog"
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/core/votes"
)

// handleServiceError converts service errors to appropriate HTTP responses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, votes.ErrPostNotFound):
		handlers.WriteError(w, http.StatusNotFound, "PostNotFound", err.Error())
	case errors.Is(err, votes.ErrVoteNotFound):
		handlers.WriteError(w, http.StatusNotFound, "VoteNotFound", "Vote does not exist")
	case errors.Is(err, votes.ErrVoteAlreadyExists):
		handlers.WriteError(w, http.StatusConflict, "AlreadyExists", "User has already voted on this post")
	case errors.Is(err, votes.ErrInvalidDirection):
		handlers.WriteError(w, http.StatusUnprocessableEntity, "InvalidRequest", "dir must be one of [0 1]")
	case errors.Is(err, votes.ErrAuthRequired):
		handlers.WriteError(w, http.StatusUnauthorized, "AuthenticationRequired", "Authentication required")
	default:
		// Internal server error - log the actual error for debugging
		slog.Error("vote handler error", slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
