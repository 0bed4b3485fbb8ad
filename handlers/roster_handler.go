package handlers

import (
	"net/http"

	"pickem-pool-go/database"
	"pickem-pool-go/models"
)

// RosterHandler serves the pool roster
type RosterHandler struct {
	playerRepo *database.MongoPlayerRepository
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(playerRepo *database.MongoPlayerRepository) *RosterHandler {
	return &RosterHandler{playerRepo: playerRepo}
}

// GetPlayers handles GET /api/players - the roster without credential
// hashes
func (h *RosterHandler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerRepo.ListPlayers(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load roster")
		return
	}

	safe := make([]models.Player, 0, len(players))
	for i := range players {
		safe = append(safe, players[i].ToSafePlayer())
	}

	respondJSON(w, http.StatusOK, safe)
}
