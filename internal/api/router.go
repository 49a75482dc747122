package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/petwatch/petwatch/internal/api/handlers"
	"github.com/petwatch/petwatch/internal/api/middleware"
	"github.com/petwatch/petwatch/internal/domain"
	"github.com/petwatch/petwatch/internal/service"
	"github.com/petwatch/petwatch/internal/websocket"
)

func NewRouter(services *service.Services, hub *websocket.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	catHandler := handlers.NewCatHandler(services.Cat, services.User, services.Token)
	dogHandler := handlers.NewDogHandler(services.Dog)
	authHandler := handlers.NewAuthHandler(services.User, services.Token)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Token)

	// Public auth routes
	r.Post("/auth/login", authHandler.Login)

	r.Route("/cats", func(r chi.Router) {
		// Token issuance, authenticated with Basic credentials.
		r.Get("/token", catHandler.Token)

		// Reads require a valid token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Require(services.Policy, service.Requirement{}))
			r.Get("/", catHandler.List)
			r.Get("/{id}", catHandler.Get)
		})

		// Writes are admin-only.
		r.Group(func(r chi.Router) {
			r.Use(middleware.Require(services.Policy, service.Requirement{Role: domain.RoleAdmin}))
			r.Post("/", catHandler.Create)
		})
	})

	r.Route("/dog", func(r chi.Router) {
		r.Use(middleware.Require(services.Policy, service.Requirement{}))
		r.Get("/", dogHandler.List)
		r.Post("/", dogHandler.Create)
	})

	// WebSocket endpoint
	r.Get("/ws", wsHandler.Handle)

	return r
}
