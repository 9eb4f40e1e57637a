package routes

import (
	"Postboard/internal/api/handlers/vote"
	"Postboard/internal/api/middleware"
	"Postboard/internal/core/votes"

	"github.com/go-chi/chi/v5"
)

// RegisterVoteRoutes registers the vote endpoint on the router
func RegisterVoteRoutes(r chi.Router, service votes.Service, authMiddleware *middleware.AuthMiddleware) {
	voteHandler := vote.NewVoteHandler(service)

	r.With(authMiddleware.RequireAuth).Post("/vote/", voteHandler.HandleVote)
}
