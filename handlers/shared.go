package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"pickem-pool-go/logging"

	"github.com/gorilla/mux"
)

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Errorf("Failed to encode response: %v", err)
	}
}

// respondError writes a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// weekFromRequest parses the {week} path variable
func weekFromRequest(r *http.Request) (int, bool) {
	week, err := strconv.Atoi(mux.Vars(r)["week"])
	if err != nil || week < 1 {
		return 0, false
	}
	return week, true
}

// seasonFromRequest returns the ?season query parameter, falling back to
// the configured current season
func seasonFromRequest(r *http.Request, currentSeason int) int {
	if raw := r.URL.Query().Get("season"); raw != "" {
		if season, err := strconv.Atoi(raw); err == nil {
			return season
		}
	}
	return currentSeason
}
