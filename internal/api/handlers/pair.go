package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/alex/soul-link-tracker/internal/api/middleware"
	"github.com/alex/soul-link-tracker/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type PairHandler struct {
	pairService *service.PairService
}

func NewPairHandler(pairService *service.PairService) *PairHandler {
	return &PairHandler{pairService: pairService}
}

type CreatePairRequest struct {
	Pokemon1Name     string `json:"pokemon1Name"`
	Pokemon1Nickname string `json:"pokemon1Nickname"`
	Pokemon2Name     string `json:"pokemon2Name"`
	Pokemon2Nickname string `json:"pokemon2Nickname"`
}

type UpdateNicknamesRequest struct {
	Pokemon1Nickname string `json:"pokemon1Nickname"`
	Pokemon2Nickname string `json:"pokemon2Nickname"`
}

type MarkDeadRequest struct {
	ResponsiblePlayerID string `json:"responsiblePlayerId"`
}

func (h *PairHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	gameID, err := uuid.Parse(chi.URLParam(r, "gameId"))
	if err != nil {
		http.Error(w, "Invalid game ID", http.StatusBadRequest)
		return
	}

	var req CreatePairRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pair, err := h.pairService.CreatePair(r.Context(), service.CreatePairInput{
		GameID:           gameID,
		RequesterID:      userID,
		Pokemon1Name:     req.Pokemon1Name,
		Pokemon1Nickname: req.Pokemon1Nickname,
		Pokemon2Name:     req.Pokemon2Name,
		Pokemon2Nickname: req.Pokemon2Nickname,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, pair)
}

func (h *PairHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	gameID, err := uuid.Parse(chi.URLParam(r, "gameId"))
	if err != nil {
		http.Error(w, "Invalid game ID", http.StatusBadRequest)
		return
	}

	list, err := h.pairService.ListPairs(r.Context(), gameID, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"alive": list.Alive,
		"dead":  list.Dead,
	})
}

func (h *PairHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	pairID, err := uuid.Parse(chi.URLParam(r, "pairId"))
	if err != nil {
		http.Error(w, "Invalid pair ID", http.StatusBadRequest)
		return
	}

	pair, err := h.pairService.GetPair(r.Context(), pairID, userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

func (h *PairHandler) UpdateNicknames(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	pairID, err := uuid.Parse(chi.URLParam(r, "pairId"))
	if err != nil {
		http.Error(w, "Invalid pair ID", http.StatusBadRequest)
		return
	}

	var req UpdateNicknamesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	pair, err := h.pairService.UpdateNicknames(r.Context(), service.UpdateNicknamesInput{
		PairID:           pairID,
		RequesterID:      userID,
		Pokemon1Nickname: req.Pokemon1Nickname,
		Pokemon2Nickname: req.Pokemon2Nickname,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}

func (h *PairHandler) MarkDead(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	pairID, err := uuid.Parse(chi.URLParam(r, "pairId"))
	if err != nil {
		http.Error(w, "Invalid pair ID", http.StatusBadRequest)
		return
	}

	var req MarkDeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	responsibleID, err := uuid.Parse(req.ResponsiblePlayerID)
	if err != nil {
		http.Error(w, "Invalid responsible player ID", http.StatusBadRequest)
		return
	}

	pair, err := h.pairService.MarkDead(r.Context(), service.MarkDeadInput{
		PairID:              pairID,
		RequesterID:         userID,
		ResponsiblePlayerID: responsibleID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, pair)
}
