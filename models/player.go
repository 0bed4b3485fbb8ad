package models

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Player represents a roster entry. Players authenticate with a PIN
// rather than a password; only the bcrypt hash is stored.
type Player struct {
	ID        int       `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	PINHash   string    `json:"-" bson:"pin_hash"` // Never serialize the hash in JSON
	IsAdmin   bool      `json:"is_admin" bson:"is_admin"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// SetPIN hashes and stores the player's PIN using bcrypt
func (p *Player) SetPIN(pin string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.PINHash = string(hash)
	return nil
}

// CheckPIN verifies the provided PIN against the stored hash
func (p *Player) CheckPIN(pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.PINHash), []byte(pin)) == nil
}

// ToSafePlayer returns a copy of the player without the credential hash
func (p *Player) ToSafePlayer() Player {
	return Player{
		ID:        p.ID,
		Name:      p.Name,
		IsAdmin:   p.IsAdmin,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// LoginRequest represents a player login submission
type LoginRequest struct {
	Player string `json:"player"`
	PIN    string `json:"pin"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Player Player `json:"player"`
	Token  string `json:"token"`
}
