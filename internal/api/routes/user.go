package routes

import (
	"Postboard/internal/api/handlers/login"
	"Postboard/internal/api/handlers/user"
	"Postboard/internal/auth"
	"Postboard/internal/core/users"

	"github.com/go-chi/chi/v5"
)

// RegisterUserRoutes registers account registration and lookup endpoints
func RegisterUserRoutes(r chi.Router, service users.UserService) {
	userHandler := user.NewUserHandler(service)

	r.Post("/users/", userHandler.HandleCreate)
	r.Get("/users/{user_id}", userHandler.HandleGet)
}

// RegisterLoginRoutes registers the password login endpoint
func RegisterLoginRoutes(r chi.Router, service users.UserService, tokens *auth.TokenManager) {
	loginHandler := login.NewLoginHandler(service, tokens)

	r.Post("/login", loginHandler.HandleLogin)
}
