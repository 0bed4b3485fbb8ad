package models

import (
	"sort"
	"time"
)

// Standings holds a season's cumulative correct-pick totals. Each week's
// contribution is stored under its week number, so re-folding a week
// replaces its prior contribution instead of double-counting it. Totals
// are always recomputed from the per-week map and never mutated in place.
type Standings struct {
	Season    int                    `json:"season" bson:"season"`
	Weeks     map[int]map[string]int `json:"weeks" bson:"weeks"`
	Totals    map[string]int         `json:"totals" bson:"totals"`
	UpdatedAt time.Time              `json:"updated_at" bson:"updated_at"`
}

// NewStandings creates empty standings for a season
func NewStandings(season int) *Standings {
	return &Standings{
		Season: season,
		Weeks:  make(map[int]map[string]int),
		Totals: make(map[string]int),
	}
}

// ApplyWeek folds one week's player results into the standings. Applying
// the same week twice with identical results leaves the totals unchanged;
// applying it with different results replaces that week's contribution.
func (s *Standings) ApplyWeek(week int, results []PlayerResult) {
	if s.Weeks == nil {
		s.Weeks = make(map[int]map[string]int)
	}

	contribution := make(map[string]int, len(results))
	for _, r := range results {
		contribution[r.Player] = r.Total
	}
	s.Weeks[week] = contribution

	s.recomputeTotals()
	s.UpdatedAt = time.Now()
}

// recomputeTotals rebuilds the cumulative totals from the per-week map
func (s *Standings) recomputeTotals() {
	totals := make(map[string]int)
	for _, weekTotals := range s.Weeks {
		for player, correct := range weekTotals {
			totals[player] += correct
		}
	}
	s.Totals = totals
}

// StandingsEntry is one ranked row of the standings table
type StandingsEntry struct {
	Rank   int    `json:"rank"`
	Player string `json:"player"`
	Total  int    `json:"total"`
}

// Rankings returns the standings sorted by total descending, name
// ascending for equal totals. Tied players share a rank.
func (s *Standings) Rankings() []StandingsEntry {
	entries := make([]StandingsEntry, 0, len(s.Totals))
	for player, total := range s.Totals {
		entries = append(entries, StandingsEntry{Player: player, Total: total})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return entries[i].Player < entries[j].Player
	})

	for i := range entries {
		if i > 0 && entries[i].Total == entries[i-1].Total {
			entries[i].Rank = entries[i-1].Rank
		} else {
			entries[i].Rank = i + 1
		}
	}

	return entries
}
