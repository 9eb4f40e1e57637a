package vote

import (
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/api/middleware"
	"Postboard/internal/core/votes"
)

// VoteInput is the request body for POST /vote/
type VoteInput struct {
	PostID *int64 `json:"post_id" validate:"required"`
	Dir    *int   `json:"dir" validate:"required,oneof=0 1"`
}

// VoteHandler handles vote add and remove requests
type VoteHandler struct {
	service votes.Service
}

// NewVoteHandler creates a new vote handler
func NewVoteHandler(service votes.Service) *VoteHandler {
	return &VoteHandler{
		service: service,
	}
}

// HandleVote adds (dir 1) or removes (dir 0) the caller's vote
// POST /vote/
//
// Request body: { "post_id": 1, "dir": 0 | 1 }
func (h *VoteHandler) HandleVote(w http.ResponseWriter, r *http.Request) {
	var req VoteInput
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	userID := middleware.GetUserID(r)
	if userID == 0 {
		handlers.WriteError(w, http.StatusUnauthorized, "AuthenticationRequired", "Authentication required")
		return
	}

	if err := h.service.Vote(r.Context(), userID, votes.VoteRequest{PostID: *req.PostID, Dir: *req.Dir}); err != nil {
		handleServiceError(w, err)
		return
	}

	message := "Successfully added vote"
	if *req.Dir == votes.DirRemove {
		message = "Successfully deleted vote"
	}
	handlers.WriteJSON(w, http.StatusCreated, map[string]string{"message": message})
}
