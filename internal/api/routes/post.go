package routes

import (
	"Postboard/internal/api/handlers/post"
	"Postboard/internal/api/middleware"
	"Postboard/internal/core/posts"

	"github.com/go-chi/chi/v5"
)

// RegisterPostRoutes registers the /posts endpoints on the router
// Reads are public; writes require a bearer token
func RegisterPostRoutes(r chi.Router, service posts.Service, authMiddleware *middleware.AuthMiddleware) {
	// Initialize handlers
	listHandler := post.NewListHandler(service)
	getHandler := post.NewGetHandler(service)
	createHandler := post.NewCreateHandler(service)
	updateHandler := post.NewUpdateHandler(service)
	deleteHandler := post.NewDeleteHandler(service)

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", listHandler.HandleList)

		// Registered before /{post_id}; chi matches static segments first regardless
		r.Get("/sqlalchemy", post.HandleStatus)
		r.Get("/{post_id}", getHandler.HandleGet)

		r.With(authMiddleware.RequireAuth).Post("/", createHandler.HandleCreate)
		r.With(authMiddleware.RequireAuth).Put("/{post_id}", updateHandler.HandleUpdate)
		r.With(authMiddleware.RequireAuth).Delete("/{post_id}", deleteHandler.HandleDelete)
	})
}
