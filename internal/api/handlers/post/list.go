package post

import (
	"net/http"
	"strconv"

	"Postboard/internal/api/handlers"
	"Postboard/internal/core/posts"
)

// ListHandler handles post listing requests
type ListHandler struct {
	service posts.Service
}

// NewListHandler creates a new list handler
func NewListHandler(service posts.Service) *ListHandler {
	return &ListHandler{
		service: service,
	}
}

// HandleList handles GET /posts/
// Query params: limit (optional), offset (default 0), search (default "")
func (h *ListHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	params, ok := parseListParams(w, r)
	if !ok {
		return
	}

	views, err := h.service.ListPosts(r.Context(), params)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, views)
}

func parseListParams(w http.ResponseWriter, r *http.Request) (posts.ListParams, bool) {
	query := r.URL.Query()
	params := posts.ListParams{Search: query.Get("search")}

	if !handlers.IsStorableText(params.Search) {
		writeError(w, http.StatusUnprocessableEntity, "InvalidRequest", "search must be valid UTF-8 without NUL characters")
		return params, false
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			writeError(w, http.StatusUnprocessableEntity, "InvalidRequest", "limit must be a non-negative integer")
			return params, false
		}
		params.Limit = &limit
	}

	if raw := query.Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			writeError(w, http.StatusUnprocessableEntity, "InvalidRequest", "offset must be a non-negative integer")
			return params, false
		}
		params.Offset = offset
	}

	return params, true
}
