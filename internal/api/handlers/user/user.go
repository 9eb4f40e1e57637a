package user

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"Postboard/internal/api/handlers"
	"Postboard/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// UserHandler handles account registration and lookup
type UserHandler struct {
	userService users.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService users.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// HandleCreate handles POST /users/
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req users.CreateUserRequest
	if !handlers.DecodeJSON(w, r, &req) {
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, user)
}

// HandleGet handles GET /users/{user_id}
func (h *UserHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "user_id"), 10, 64)
	if err != nil {
		handlers.WriteError(w, http.StatusUnprocessableEntity, "InvalidRequest", "user_id must be an integer")
		return
	}

	user, err := h.userService.GetUser(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, user)
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		handlers.WriteError(w, http.StatusNotFound, "UserNotFound", "User not found")
	case errors.Is(err, users.ErrEmailTaken):
		handlers.WriteError(w, http.StatusConflict, "EmailTaken", "Email is already registered")
	default:
		slog.Error("user handler error", slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
	}
}
