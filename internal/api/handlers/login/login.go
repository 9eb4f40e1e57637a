package login

import (
	"errors"
	"log/slog"
	"net/http"

	"Postboard/internal/api/handlers"
	"Postboard/internal/auth"
	"Postboard/internal/core/users"
)

// TokenResponse is returned on successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// LoginHandler exchanges credentials for an access token
type LoginHandler struct {
	userService users.UserService
	tokens      *auth.TokenManager
}

// NewLoginHandler creates a new login handler
func NewLoginHandler(userService users.UserService, tokens *auth.TokenManager) *LoginHandler {
	return &LoginHandler{
		userService: userService,
		tokens:      tokens,
	}
}

// HandleLogin handles POST /login
// Form fields: username (the account email), password
func (h *LoginHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, handlers.MaxRequestBodyBytes)
	if err := r.ParseForm(); err != nil {
		handlers.WriteError(w, http.StatusUnprocessableEntity, "InvalidRequest", "Invalid form body")
		return
	}

	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	if username == "" || password == "" {
		handlers.WriteError(w, http.StatusUnprocessableEntity, "InvalidRequest", "username and password are required")
		return
	}
	if !handlers.IsStorableText(username) {
		handlers.WriteError(w, http.StatusUnprocessableEntity, "InvalidRequest", "username must be valid UTF-8 without NUL characters")
		return
	}

	user, err := h.userService.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			handlers.WriteError(w, http.StatusUnauthorized, "InvalidCredentials", "Invalid credentials")
			return
		}
		slog.Error("[LOGIN] authentication failed", slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
		return
	}

	token, err := h.tokens.Issue(user.ID)
	if err != nil {
		slog.Error("[LOGIN] failed to issue token", slog.Int64("user_id", user.ID), slog.String("error", err.Error()))
		handlers.WriteError(w, http.StatusInternalServerError, "InternalServerError", "An internal error occurred")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(h.tokens.TTL().Seconds()),
	})
}
