package handlers

import (
	"encoding/json"
	"net/http"

	"pickem-pool-go/logging"
	"pickem-pool-go/middleware"
	"pickem-pool-go/models"
	"pickem-pool-go/services"
)

// PicksHandler handles player pick submission and retrieval
type PicksHandler struct {
	pool          *services.PoolService
	currentSeason int
	logger        *logging.Logger
}

// NewPicksHandler creates a new picks handler
func NewPicksHandler(pool *services.PoolService, currentSeason int) *PicksHandler {
	return &PicksHandler{
		pool:          pool,
		currentSeason: currentSeason,
		logger:        logging.WithPrefix("PicksHandler"),
	}
}

// SubmitPicks handles POST /api/picks/{week}. The submitting player
// comes from the session, never from the request body.
func (h *PicksHandler) SubmitPicks(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayerFromContext(r.Context())
	if player == nil {
		respondError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	week, ok := weekFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid week")
		return
	}
	season := seasonFromRequest(r, h.currentSeason)

	var body struct {
		Picks []models.GamePick `json:"picks"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	picks := &models.WeeklyPicks{
		Player: player.Name,
		Season: season,
		Week:   week,
		Picks:  body.Picks,
	}

	if err := h.pool.SubmitPicks(r.Context(), picks); err != nil {
		h.logger.Warnf("Rejected picks from %s for week %d: %v", player.Name, week, err)
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, picks)
}

// GetPicks handles GET /api/picks/{week} - the authenticated player's
// own submission
func (h *PicksHandler) GetPicks(w http.ResponseWriter, r *http.Request) {
	player := middleware.GetPlayerFromContext(r.Context())
	if player == nil {
		respondError(w, http.StatusUnauthorized, "not logged in")
		return
	}

	week, ok := weekFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid week")
		return
	}
	season := seasonFromRequest(r, h.currentSeason)

	picks, err := h.pool.GetPicks(r.Context(), player.Name, season, week)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load picks")
		return
	}
	if picks == nil {
		respondError(w, http.StatusNotFound, "no picks submitted")
		return
	}

	respondJSON(w, http.StatusOK, picks)
}
