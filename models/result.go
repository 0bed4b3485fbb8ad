package models

import "time"

// PushWinner is the sentinel winner name for a game that ties exactly
// after the spread adjustment. A push is neither correct nor incorrect
// for any pick, so it never appears in a week's declared-winner list.
const PushWinner = "PUSH"

// GameResult pairs a SpreadRecord with the correctly-oriented scores from
// its matching ScoreRecord. Score1 always belongs to Team1 regardless of
// how the score feed ordered the teams. Winner is empty until the
// calculator resolves it.
type GameResult struct {
	Date    string  `json:"date" bson:"date"`
	Team1   string  `json:"team1" bson:"team1"`
	Team2   string  `json:"team2" bson:"team2"`
	Spread1 float64 `json:"spread1" bson:"spread1"`
	Spread2 float64 `json:"spread2" bson:"spread2"`
	Score1  int     `json:"score1" bson:"score1"`
	Score2  int     `json:"score2" bson:"score2"`
	Winner  string  `json:"winner" bson:"winner"`
}

// IsPush returns true if the game tied against the spread
func (g *GameResult) IsPush() bool {
	return g.Winner == PushWinner
}

// HasWinner returns true if a team won against the spread
func (g *GameResult) HasWinner() bool {
	return g.Winner != "" && g.Winner != PushWinner
}

// AdjustedScore1 returns team1's score with its spread applied. Only
// team1's score receives the adjustment; team2 is compared raw.
func (g *GameResult) AdjustedScore1() float64 {
	return float64(g.Score1) + g.Spread1
}

// FormatSpread1 returns team1's spread formatted for display
func (g *GameResult) FormatSpread1() string {
	return formatSpread(g.Spread1)
}

// FormatSpread2 returns team2's spread formatted for display
func (g *GameResult) FormatSpread2() string {
	return formatSpread(g.Spread2)
}

// MatchResult is the matcher's full output for a week: one ordered
// GameResult per matched spread, plus the diagnostics operators need to
// chase down naming mismatches between the spread sheet and score feed.
type MatchResult struct {
	Ordered          []GameResult   `json:"ordered"`
	UnmatchedSpreads []SpreadRecord `json:"unmatched_spreads"`
	UnusedScores     []ScoreRecord  `json:"unused_scores"`
}

// Clean returns true if every spread matched a score and no scores were
// left over
func (m *MatchResult) Clean() bool {
	return len(m.UnmatchedSpreads) == 0 && len(m.UnusedScores) == 0
}

// MatchReport is the persisted diagnostic summary of a match run
type MatchReport struct {
	UnmatchedSpreads []SpreadRecord `json:"unmatched_spreads" bson:"unmatched_spreads"`
	UnusedScores     []ScoreRecord  `json:"unused_scores" bson:"unused_scores"`
}

// WeeklyResults is the stored outcome of a week's calculation run
type WeeklyResults struct {
	Season       int            `json:"season" bson:"season"`
	Week         int            `json:"week" bson:"week"`
	Games        []GameResult   `json:"games" bson:"games"`
	Winners      []string       `json:"winners" bson:"winners"`
	Report       MatchReport    `json:"report" bson:"report"`
	PlayerTotals []PlayerResult `json:"player_totals" bson:"player_totals"`
	UpdatedAt    time.Time      `json:"updated_at" bson:"updated_at"`
}

// ReportClean returns true if the week's match report carries no
// unmatched spreads and no unused scores
func (w *WeeklyResults) ReportClean() bool {
	return len(w.Report.UnmatchedSpreads) == 0 && len(w.Report.UnusedScores) == 0
}
