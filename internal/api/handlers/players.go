package handlers

import (
	"net/http"

	"github.com/alex/soul-link-tracker/internal/api/middleware"
	"github.com/alex/soul-link-tracker/internal/service"
)

// PlayersHandler covers the find-player flow and the public player counter.
type PlayersHandler struct {
	profileService *service.ProfileService
}

func NewPlayersHandler(profileService *service.ProfileService) *PlayersHandler {
	return &PlayersHandler{profileService: profileService}
}

func (h *PlayersHandler) Search(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	results, err := h.profileService.Search(r.Context(), r.URL.Query().Get("q"), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	players := make([]ProfileResponse, 0, len(results))
	for _, profile := range results {
		players = append(players, ProfileResponse{
			ID:       profile.ID.String(),
			Username: profile.Username,
		})
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"players": players})
}

func (h *PlayersHandler) Count(w http.ResponseWriter, r *http.Request) {
	count, err := h.profileService.PlayerCount(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"count": count})
}
