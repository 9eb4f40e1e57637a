package post

import (
	"net/http"
	"strconv"

	"Postboard/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// PostRequest is the body accepted by create and update
// Published defaults to true when omitted
type PostRequest struct {
	Title     *string `json:"title" validate:"required,dbtext"`
	Content   *string `json:"content" validate:"required,dbtext"`
	Published *bool   `json:"published"`
}

// toInput converts a validated request into service input
func (req PostRequest) toInput() posts.PostInput {
	input := posts.PostInput{
		Title:     *req.Title,
		Content:   *req.Content,
		Published: true,
	}
	if req.Published != nil {
		input.Published = *req.Published
	}
	return input
}

// postIDParam parses the {post_id} path segment
// On failure it writes a 422 and returns false
func postIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "post_id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "InvalidRequest", "post_id must be an integer")
		return 0, false
	}
	return id, true
}
