package models

import (
	"strings"
	"time"
)

// GamePick is one player selection: the position of the game on the
// week's spread sheet and the team the player took against the spread.
type GamePick struct {
	GameIndex int    `json:"game_index" bson:"game_index"`
	Team      string `json:"team" bson:"team"`
}

// IsValid reports whether the pick references a plausible game and names
// a team. Invalid picks are skipped during scoring, never fatal.
func (p *GamePick) IsValid(gameCount int) bool {
	if strings.TrimSpace(p.Team) == "" {
		return false
	}
	return p.GameIndex >= 0 && p.GameIndex < gameCount
}

// WeeklyPicks is one player's submission for a week. At most one
// document exists per (player, season, week); resubmission replaces
// the prior document.
type WeeklyPicks struct {
	Player      string     `json:"player" bson:"player"`
	Season      int        `json:"season" bson:"season"`
	Week        int        `json:"week" bson:"week"`
	Picks       []GamePick `json:"picks" bson:"picks"`
	SubmittedAt time.Time  `json:"submitted_at" bson:"submitted_at"`
}

// PlayerResult is one player's scored week: which picked teams were
// declared winners and how many picks were correct.
type PlayerResult struct {
	Player  string   `json:"player" bson:"player"`
	Correct []string `json:"correct" bson:"correct"`
	Total   int      `json:"total" bson:"total"`
}
