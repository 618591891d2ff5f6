package websocket

import (
	"encoding/json"
	"sync"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Hub fans persisted game events out to the trainers watching each game.
type Hub struct {
	games      map[uuid.UUID]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan *domain.GameEvent
	stop       chan struct{}
	stopOnce   sync.Once
	done       chan struct{}
	stopped    bool
	log        zerolog.Logger
	mu         sync.RWMutex
}

func NewHub(log zerolog.Logger) *Hub {
	return &Hub{
		games:      make(map[uuid.UUID]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *domain.GameEvent, 64),
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
		log:        log,
	}
}

func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.stop:
			h.mu.Lock()
			h.stopped = true
			for _, clients := range h.games {
				for client := range clients {
					client.Close()
				}
			}
			h.games = make(map[uuid.UUID]map[*Client]bool)
			h.mu.Unlock()
			return

		case client := <-h.register:
			h.mu.Lock()
			if !h.stopped {
				if h.games[client.gameID] == nil {
					h.games[client.gameID] = make(map[*Client]bool)
				}
				h.games[client.gameID][client] = true
			}
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.games[client.gameID]; ok {
				if _, ok := clients[client]; ok {
					delete(clients, client)
					client.Close()
					if len(clients) == 0 {
						delete(h.games, client.gameID)
					}
				}
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			h.deliver(event)
		}
	}
}

// Stop shuts the hub down and disconnects all clients. Safe to call more
// than once.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.stop) })
	<-h.done
}

// BroadcastEvent queues a game event for delivery to that game's
// subscribers. Never blocks the caller: when the hub is saturated the event
// is dropped, since the timeline is already persisted.
func (h *Hub) BroadcastEvent(event *domain.GameEvent) {
	select {
	case h.broadcast <- event:
	default:
		h.log.Warn().Str("game_id", event.GameID.String()).Msg("event broadcast dropped")
	}
}

func (h *Hub) deliver(event *domain.GameEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		h.log.Error().Err(err).Msg("failed to marshal game event")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.games[event.GameID] {
		select {
		case client.send <- data:
		default:
			// Slow consumer; it will be dropped by its own pump.
		}
	}
}
