package api

import (
	"net/http"

	"github.com/alex/soul-link-tracker/internal/api/handlers"
	"github.com/alex/soul-link-tracker/internal/api/middleware"
	"github.com/alex/soul-link-tracker/internal/config"
	"github.com/alex/soul-link-tracker/internal/service"
	"github.com/alex/soul-link-tracker/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func NewRouter(services *service.Services, hub *websocket.Hub, cfg *config.Config, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth)
	profileHandler := handlers.NewProfileHandler(services.Profile)
	playersHandler := handlers.NewPlayersHandler(services.Profile)
	gameHandler := handlers.NewGameHandler(services.Game)
	pairHandler := handlers.NewPairHandler(services.Pair)
	requestHandler := handlers.NewRequestHandler(services.Request)
	statsHandler := handlers.NewStatsHandler(services.Stats)
	wsHandler := handlers.NewWebSocketHandler(hub, services.Auth, services.Game)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public auth routes
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			// Protected auth routes
			r.Group(func(r chi.Router) {
				r.Use(middleware.Auth(services.Auth))
				r.Get("/me", authHandler.Me)
				r.Post("/logout", authHandler.Logout)
				r.Put("/password", authHandler.UpdatePassword)
			})
		})

		// Public player counter (home page stat)
		r.Get("/players/count", playersHandler.Count)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(services.Auth))

			// Profile routes
			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.GetProfile)
				r.Put("/", profileHandler.UpdateProfile)
			})

			// Find-player flow
			r.Get("/players/search", playersHandler.Search)

			// Game routes
			r.Route("/games", func(r chi.Router) {
				r.Post("/", gameHandler.Create)
				r.Get("/", gameHandler.List)
				r.Get("/{gameId}", gameHandler.Get)
				r.Get("/{gameId}/events", gameHandler.ListEvents)
				r.Post("/{gameId}/pairs", pairHandler.Create)
				r.Get("/{gameId}/pairs", pairHandler.List)
				r.Get("/{gameId}/stats", statsHandler.GetDeathStats)
				r.Post("/{gameId}/deaths", statsHandler.RecordDeath)
			})

			// Pair routes
			r.Route("/pairs", func(r chi.Router) {
				r.Get("/{pairId}", pairHandler.Get)
				r.Put("/{pairId}/nicknames", pairHandler.UpdateNicknames)
				r.Post("/{pairId}/death", pairHandler.MarkDead)
			})

			// Request routes
			r.Route("/requests", func(r chi.Router) {
				r.Post("/", requestHandler.Send)
				r.Get("/received", requestHandler.ListReceived)
				r.Get("/sent", requestHandler.ListSent)
				r.Post("/{requestId}/respond", requestHandler.Respond)
			})

			// Summary views
			r.Get("/dashboard", statsHandler.Dashboard)
			r.Get("/analytics", statsHandler.Analytics)
		})

		// WebSocket endpoint
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
