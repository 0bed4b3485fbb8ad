package handlers

import (
	"errors"
	"io"
	"net/http"

	"pickem-pool-go/logging"
	"pickem-pool-go/services"
)

// maxUploadBytes bounds admin upload payloads; weekly sheets are tiny
const maxUploadBytes = 1 << 20

// AdminHandler handles administrator uploads and calculation runs
type AdminHandler struct {
	pool          *services.PoolService
	ingest        *services.IngestService
	standings     *services.StandingsService
	currentSeason int
	logger        *logging.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(pool *services.PoolService, ingest *services.IngestService, standings *services.StandingsService, currentSeason int) *AdminHandler {
	return &AdminHandler{
		pool:          pool,
		ingest:        ingest,
		standings:     standings,
		currentSeason: currentSeason,
		logger:        logging.WithPrefix("AdminHandler"),
	}
}

// UploadSpreads handles POST /api/admin/spreads/{week}
func (h *AdminHandler) UploadSpreads(w http.ResponseWriter, r *http.Request) {
	week, ok := weekFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid week")
		return
	}
	season := seasonFromRequest(r, h.currentSeason)

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	spreads, report, err := h.ingest.ParseSpreads(payload)
	if err != nil {
		if errors.Is(err, services.ErrMalformedInput) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to parse upload")
		return
	}

	if err := h.pool.SaveSpreads(r.Context(), season, week, spreads); err != nil {
		h.logger.Errorf("Failed to save spreads for week %d: %v", week, err)
		respondError(w, http.StatusInternalServerError, "failed to save spreads")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"season": season,
		"week":   week,
		"games":  len(spreads),
		"ingest": report,
	})
}

// UploadScores handles POST /api/admin/scores/{week} - stores nothing
// raw: the scores are matched, winners declared, picks scored, and
// standings folded in one run. The response carries the match report so
// the administrator sees naming mismatches immediately.
func (h *AdminHandler) UploadScores(w http.ResponseWriter, r *http.Request) {
	week, ok := weekFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid week")
		return
	}
	season := seasonFromRequest(r, h.currentSeason)

	payload, err := io.ReadAll(io.LimitReader(r.Body, maxUploadBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	scores, report, err := h.ingest.ParseScores(payload)
	if err != nil {
		if errors.Is(err, services.ErrMalformedInput) {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to parse upload")
		return
	}

	results, err := h.pool.ProcessScores(r.Context(), season, week, scores)
	if err != nil {
		h.logger.Errorf("Failed to process scores for week %d: %v", week, err)
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"results": results,
		"ingest":  report,
	})
}

// Recalculate handles POST /api/admin/recalculate/{week}
func (h *AdminHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	week, ok := weekFromRequest(r)
	if !ok {
		respondError(w, http.StatusBadRequest, "invalid week")
		return
	}
	season := seasonFromRequest(r, h.currentSeason)

	results, err := h.pool.Recalculate(r.Context(), season, week)
	if err != nil {
		h.logger.Errorf("Failed to recalculate week %d: %v", week, err)
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, results)
}

// RebuildStandings handles POST /api/admin/standings/rebuild - replays
// every stored week's results into fresh standings. Used after a bulk
// import or when the standings document is suspect.
func (h *AdminHandler) RebuildStandings(w http.ResponseWriter, r *http.Request) {
	season := seasonFromRequest(r, h.currentSeason)

	standings, err := h.standings.RebuildSeason(r.Context(), season)
	if err != nil {
		h.logger.Errorf("Failed to rebuild season %d standings: %v", season, err)
		respondError(w, http.StatusInternalServerError, "failed to rebuild standings")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"season":   standings.Season,
		"rankings": standings.Rankings(),
	})
}
