package post

import (
	"net/http"

	"Postboard/internal/api/handlers"
)

// HandleStatus handles GET /posts/sqlalchemy, a fixed diagnostic response
func HandleStatus(w http.ResponseWriter, r *http.Request) {
	handlers.WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}
