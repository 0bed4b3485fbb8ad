package models

import (
	"fmt"
	"time"
)

// SpreadRecord represents one scheduled game with its betting line.
// Team1/Team2 ordering is the canonical orientation for the week: score
// records get reoriented to it, and picks reference games by position in
// the week's spread list.
type SpreadRecord struct {
	Date    string  `json:"date" bson:"date"`
	Team1   string  `json:"team1" bson:"team1"`
	Team2   string  `json:"team2" bson:"team2"`
	Spread1 float64 `json:"spread1" bson:"spread1"`
	Spread2 float64 `json:"spread2" bson:"spread2"`
}

// CanonicalName returns the sheet's display spelling for the named
// team, matching by normalized equality. Returns false when the name
// matches neither team in the game.
func (s *SpreadRecord) CanonicalName(name string) (string, bool) {
	n := NormalizeTeamName(name)
	if n == NormalizeTeamName(s.Team1) {
		return s.Team1, true
	}
	if n == NormalizeTeamName(s.Team2) {
		return s.Team2, true
	}
	return "", false
}

// FormatSpread1 returns team1's spread formatted for display
func (s *SpreadRecord) FormatSpread1() string {
	return formatSpread(s.Spread1)
}

// FormatSpread2 returns team2's spread formatted for display
func (s *SpreadRecord) FormatSpread2() string {
	return formatSpread(s.Spread2)
}

func formatSpread(spread float64) string {
	if spread > 0 {
		return fmt.Sprintf("+%.1f", spread)
	} else if spread < 0 {
		return fmt.Sprintf("%.1f", spread)
	}
	return "PK" // Pick 'em
}

// WeeklySpreads is the stored spread sheet for one week of a season
type WeeklySpreads struct {
	Season    int            `json:"season" bson:"season"`
	Week      int            `json:"week" bson:"week"`
	Games     []SpreadRecord `json:"games" bson:"games"`
	UpdatedAt time.Time      `json:"updated_at" bson:"updated_at"`
}

// GameCount returns the number of games on the week's sheet
func (w *WeeklySpreads) GameCount() int {
	return len(w.Games)
}
