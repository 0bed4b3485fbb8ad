package handlers

import (
	"encoding/json"
	"net/http"

	"pickem-pool-go/logging"
	"pickem-pool-go/models"
	"pickem-pool-go/services"
)

// AuthHandler handles player login
type AuthHandler struct {
	authService *services.AuthService
	logger      *logging.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logging.WithPrefix("AuthHandler"),
	}
}

// Login handles POST /api/login - player name + PIN in, JWT out
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Player == "" || req.PIN == "" {
		respondError(w, http.StatusBadRequest, "player and pin are required")
		return
	}

	resp, err := h.authService.Login(req.Player, req.PIN)
	if err != nil {
		h.logger.Warnf("Failed login for %q from %s", req.Player, r.RemoteAddr)
		respondError(w, http.StatusUnauthorized, err.Error())
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "session_token",
		Value:    resp.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	h.logger.Infof("Player %s logged in", resp.Player.Name)
	respondJSON(w, http.StatusOK, resp)
}
