package models

// ScoreRecord is one final-score report for a game. It comes from a
// different source than the spread sheet, so the teams may be listed in
// either order and under different spellings. Score1/Score2 are
// positionally paired with Team1/Team2 as given.
type ScoreRecord struct {
	Team1  string `json:"team1" bson:"team1"`
	Team2  string `json:"team2" bson:"team2"`
	Score1 int    `json:"score1" bson:"score1"`
	Score2 int    `json:"score2" bson:"score2"`
}
