package services

import (
	"errors"
	"time"

	"pickem-pool-go/models"

	"github.com/golang-jwt/jwt/v5"
)

// PlayerRepository interface for roster data operations
type PlayerRepository interface {
	GetPlayerByName(name string) (*models.Player, error)
	GetPlayerByID(id int) (*models.Player, error)
	CreatePlayer(player *models.Player) error
	UpdatePlayer(player *models.Player) error
}

// AuthService handles roster authentication. Players log in with their
// name and PIN; a JWT carries the session from there.
type AuthService struct {
	playerRepo  PlayerRepository
	jwtSecret   []byte
	tokenExpiry time.Duration
}

// JWTClaims represents the claims in our JWT token
type JWTClaims struct {
	PlayerID int    `json:"player_id"`
	Name     string `json:"name"`
	IsAdmin  bool   `json:"is_admin"`
	jwt.RegisteredClaims
}

// NewAuthService creates a new authentication service
func NewAuthService(playerRepo PlayerRepository, jwtSecret string) *AuthService {
	return &AuthService{
		playerRepo:  playerRepo,
		jwtSecret:   []byte(jwtSecret),
		tokenExpiry: 24 * 7 * time.Hour, // Token expires after a week of pool play
	}
}

// Login authenticates a player by name and PIN and returns a JWT token
func (a *AuthService) Login(name, pin string) (*models.AuthResponse, error) {
	player, err := a.playerRepo.GetPlayerByName(name)
	if err != nil {
		return nil, errors.New("invalid player name or PIN")
	}

	if !player.CheckPIN(pin) {
		return nil, errors.New("invalid player name or PIN")
	}

	token, err := a.GenerateToken(player)
	if err != nil {
		return nil, errors.New("failed to generate token")
	}

	return &models.AuthResponse{
		Player: player.ToSafePlayer(),
		Token:  token,
	}, nil
}

// GenerateToken creates a new JWT token for the player
func (a *AuthService) GenerateToken(player *models.Player) (string, error) {
	claims := JWTClaims{
		PlayerID: player.ID,
		Name:     player.Name,
		IsAdmin:  player.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "pickem-pool-go",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.jwtSecret)
}

// ValidateToken validates a JWT token and returns the claims
func (a *AuthService) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return a.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*JWTClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// GetPlayerFromToken validates a token and loads the roster entry
func (a *AuthService) GetPlayerFromToken(tokenString string) (*models.Player, error) {
	claims, err := a.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	return a.playerRepo.GetPlayerByID(claims.PlayerID)
}
