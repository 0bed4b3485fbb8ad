package middleware

import (
	"context"
	"net/http"
	"strings"

	"pickem-pool-go/models"
	"pickem-pool-go/services"
)

// PlayerContextKey is the key used to store the player in request context
type PlayerContextKey string

const PlayerKey PlayerContextKey = "player"

// AuthMiddleware handles JWT authentication
type AuthMiddleware struct {
	authService *services.AuthService
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(authService *services.AuthService) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
	}
}

// RequirePlayer middleware that requires an authenticated roster player
func (m *AuthMiddleware) RequirePlayer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		player, err := m.getPlayerFromRequest(r)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), PlayerKey, player)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin middleware that requires an authenticated admin player
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		player, err := m.getPlayerFromRequest(r)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if !player.IsAdmin {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		ctx := context.WithValue(r.Context(), PlayerKey, player)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getPlayerFromRequest extracts and validates the player from the request
func (m *AuthMiddleware) getPlayerFromRequest(r *http.Request) (*models.Player, error) {
	// Try the Authorization header first: "Bearer <token>"
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return m.authService.GetPlayerFromToken(parts[1])
		}
	}

	// Fall back to the session cookie
	cookie, err := r.Cookie("session_token")
	if err != nil {
		return nil, err
	}
	return m.authService.GetPlayerFromToken(cookie.Value)
}

// GetPlayerFromContext returns the authenticated player stored by the
// middleware, or nil
func GetPlayerFromContext(ctx context.Context) *models.Player {
	player, _ := ctx.Value(PlayerKey).(*models.Player)
	return player
}
