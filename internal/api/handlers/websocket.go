package handlers

import (
	"net/http"

	"github.com/alex/soul-link-tracker/internal/api/middleware"
	"github.com/alex/soul-link-tracker/internal/service"
	ws "github.com/alex/soul-link-tracker/internal/websocket"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// WebSocketHandler upgrades a trainer's connection and subscribes it to one
// game's live event feed.
type WebSocketHandler struct {
	hub         *ws.Hub
	authService *service.AuthService
	gameService *service.GameService
}

func NewWebSocketHandler(hub *ws.Hub, authService *service.AuthService, gameService *service.GameService) *WebSocketHandler {
	return &WebSocketHandler{
		hub:         hub,
		authService: authService,
		gameService: gameService,
	}
}

func (h *WebSocketHandler) Handle(w http.ResponseWriter, r *http.Request) {
	// Browsers cannot set headers on websocket dials, so the token rides in
	// the query string.
	token := r.URL.Query().Get("token")
	if token == "" {
		http.Error(w, "Token required", http.StatusUnauthorized)
		return
	}

	userID, err := middleware.ResolveToken(h.authService, token)
	if err != nil {
		http.Error(w, "Invalid token", http.StatusUnauthorized)
		return
	}

	gameID, err := uuid.Parse(r.URL.Query().Get("gameId"))
	if err != nil {
		http.Error(w, "Invalid game ID", http.StatusBadRequest)
		return
	}

	// Only participants may watch a game.
	if _, err := h.gameService.GetGame(r.Context(), gameID, userID); err != nil {
		writeError(w, r, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		zerolog.Ctx(r.Context()).Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	client := ws.NewClient(h.hub, conn, userID, gameID)
	client.Register()
}
