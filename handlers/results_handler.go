package handlers

import (
	"net/http"

	"pickem-pool-go/logging"
	"pickem-pool-go/services"
)

// ResultsHandler serves the read-only pool views: spread sheets, weekly
// results, declared winners, match reports, and the season standings
type ResultsHandler struct {
	pool          *services.PoolService
	standings     *services.StandingsService
	currentSeason int
	logger        *logging.Logger
}

// NewResultsHandler creates a new results handler
func NewResultsHandler(pool *services.PoolService, standings *services.StandingsService, currentSeason int) *ResultsHandler {
	return &ResultsHandler{
		pool:          pool,
		standings:     standings,
		currentSeason: currentSeason,
		logger:        logging.WithPrefix("ResultsHandler"),
	}
}

// GetGames handles GET /api/games/{week} - the week's spread sheet
func (h *ResultsHandler) GetGames(w http.ResponseWriter, r *http.Request) {
	week, ok := weekFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid week")
		return
	}
	season := seasonFromRequest(r, h.currentSeason)

	spreads, err := h.pool.GetSpreads(r.Context(), season, week)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load spreads")
		return
	}
	if spreads == nil {
		respondError(w, http.StatusNotFound, "no spread sheet for week")
		return
	}

	respondJSON(w, http.StatusOK, spreads)
}

// GetWeeks handles GET /api/weeks - the weeks with a spread sheet loaded
func (h *ResultsHandler) GetWeeks(w http.ResponseWriter, r *http.Request) {
	season := seasonFromRequest(r, h.currentSeason)

	weeks, err := h.pool.GetWeeks(r.Context(), season)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load weeks")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"season": season,
		"weeks":  weeks,
	})
}

// GetResults handles GET /api/results/{week} - full calculation output
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	week, ok := weekFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid week")
		return
	}
	season := seasonFromRequest(r, h.currentSeason)

	results, err := h.pool.GetResults(r.Context(), season, week)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load results")
		return
	}
	if results == nil {
		respondError(w, http.StatusNotFound, "week not calculated yet")
		return
	}

	respondJSON(w, http.StatusOK, results)
}

// GetWinners handles GET /api/winners/{week} - just the declared winner
// names
func (h *ResultsHandler) GetWinners(w http.ResponseWriter, r *http.Request) {
	week, ok := weekFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid week")
		return
	}
	season := seasonFromRequest(r, h.currentSeason)

	results, err := h.pool.GetResults(r.Context(), season, week)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load results")
		return
	}
	if results == nil {
		respondError(w, http.StatusNotFound, "week not calculated yet")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"season":  season,
		"week":    week,
		"winners": results.Winners,
	})
}

// GetReport handles GET /api/report/{week} - the match diagnostics for
// operators chasing naming mismatches
func (h *ResultsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	week, ok := weekFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid week")
		return
	}
	season := seasonFromRequest(r, h.currentSeason)

	results, err := h.pool.GetResults(r.Context(), season, week)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to load results")
		return
	}
	if results == nil {
		respondError(w, http.StatusNotFound, "week not calculated yet")
		return
	}

	respondJSON(w, http.StatusOK, results.Report)
}

// GetStandings handles GET /api/standings - the season's ranked totals
func (h *ResultsHandler) GetStandings(w http.ResponseWriter, r *http.Request) {
	season := seasonFromRequest(r, h.currentSeason)

	standings, err := h.standings.GetStandings(r.Context(), season)
	if err != nil {
		h.logger.Errorf("Failed to load standings: %v", err)
		respondError(w, http.StatusInternalServerError, "failed to load standings")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"season":   standings.Season,
		"rankings": standings.Rankings(),
		"totals":   standings.Totals,
	})
}
