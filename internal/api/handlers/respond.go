package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/alex/soul-link-tracker/internal/domain"
	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto HTTP statuses. Anything outside the
// taxonomy is a store failure and stays opaque to the client.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrProfileNotFound),
		errors.Is(err, domain.ErrGameNotFound),
		errors.Is(err, domain.ErrPairNotFound),
		errors.Is(err, domain.ErrRequestNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)

	case errors.Is(err, domain.ErrNotParticipant),
		errors.Is(err, domain.ErrNotRequestReceiver):
		http.Error(w, err.Error(), http.StatusForbidden)

	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)

	case errors.Is(err, domain.ErrUsernameTooShort),
		errors.Is(err, domain.ErrPasswordTooShort),
		errors.Is(err, domain.ErrEmptyGameName),
		errors.Is(err, domain.ErrEmptySearchTerm),
		errors.Is(err, domain.ErrEmptySpeciesName),
		errors.Is(err, domain.ErrSelfPartner),
		errors.Is(err, domain.ErrResponsibleNotInGame),
		errors.Is(err, domain.ErrInvalidDecision):
		http.Error(w, err.Error(), http.StatusBadRequest)

	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrPairAlreadyDead),
		errors.Is(err, domain.ErrPairDead),
		errors.Is(err, domain.ErrRequestNotPending),
		errors.Is(err, domain.ErrDuplicateRequest):
		http.Error(w, err.Error(), http.StatusConflict)

	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("request failed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
