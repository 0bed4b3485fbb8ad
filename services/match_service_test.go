package services

import (
	"testing"

	"pickem-pool-go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchReorientsScores(t *testing.T) {
	matcher := NewMatchService()

	spreads := []models.SpreadRecord{
		{Date: "11/29", Team1: "Ohio State", Team2: "Michigan", Spread1: -7, Spread2: 7},
	}
	// Score feed lists the teams in the opposite order with a different
	// spelling for Ohio State
	scores := []models.ScoreRecord{
		{Team1: "Michigan", Team2: "Ohio St.", Score1: 10, Score2: 20},
	}

	result := matcher.Match(spreads, scores)

	require.Len(t, result.Ordered, 1)
	assert.Empty(t, result.UnmatchedSpreads)
	assert.Empty(t, result.UnusedScores)

	game := result.Ordered[0]
	assert.Equal(t, "Ohio State", game.Team1)
	assert.Equal(t, "Michigan", game.Team2)
	assert.Equal(t, 20, game.Score1)
	assert.Equal(t, 10, game.Score2)
	assert.Equal(t, -7.0, game.Spread1)
	assert.Equal(t, 7.0, game.Spread2)
	assert.Empty(t, game.Winner, "matcher must leave winner unresolved")
}

func TestMatchOrderInsensitive(t *testing.T) {
	matcher := NewMatchService()

	spreads := []models.SpreadRecord{
		{Team1: "Ohio State", Team2: "Michigan", Spread1: -7, Spread2: 7},
	}
	sameOrder := []models.ScoreRecord{
		{Team1: "Ohio State", Team2: "Michigan", Score1: 20, Score2: 10},
	}
	flipped := []models.ScoreRecord{
		{Team1: "Michigan", Team2: "Ohio State", Score1: 10, Score2: 20},
	}

	a := matcher.Match(spreads, sameOrder)
	b := matcher.Match(spreads, flipped)

	require.Len(t, a.Ordered, 1)
	require.Len(t, b.Ordered, 1)
	assert.Equal(t, a.Ordered[0], b.Ordered[0])
}

func TestMatchUnmatchedSpreadContinues(t *testing.T) {
	matcher := NewMatchService()

	spreads := []models.SpreadRecord{
		{Team1: "Ohio State", Team2: "Michigan", Spread1: -7, Spread2: 7},
		{Team1: "Alabama", Team2: "Auburn", Spread1: -3, Spread2: 3},
		{Team1: "Texas", Team2: "Oklahoma", Spread1: 1.5, Spread2: -1.5},
	}
	// No score for Alabama/Auburn
	scores := []models.ScoreRecord{
		{Team1: "Michigan", Team2: "Ohio State", Score1: 10, Score2: 20},
		{Team1: "Oklahoma", Team2: "Texas", Score1: 28, Score2: 31},
	}

	result := matcher.Match(spreads, scores)

	require.Len(t, result.Ordered, 2)
	require.Len(t, result.UnmatchedSpreads, 1)
	assert.Equal(t, "Alabama", result.UnmatchedSpreads[0].Team1)
	assert.Empty(t, result.UnusedScores)

	// Remaining games processed normally
	assert.Equal(t, "Texas", result.Ordered[1].Team1)
	assert.Equal(t, 31, result.Ordered[1].Score1)
}

func TestMatchReportsUnusedScores(t *testing.T) {
	matcher := NewMatchService()

	spreads := []models.SpreadRecord{
		{Team1: "Ohio State", Team2: "Michigan", Spread1: -7, Spread2: 7},
	}
	scores := []models.ScoreRecord{
		{Team1: "Ohio State", Team2: "Michigan", Score1: 20, Score2: 10},
		{Team1: "Slippery Rock", Team2: "Edinboro", Score1: 35, Score2: 7},
	}

	result := matcher.Match(spreads, scores)

	require.Len(t, result.Ordered, 1)
	require.Len(t, result.UnusedScores, 1)
	assert.Equal(t, "Slippery Rock", result.UnusedScores[0].Team1)
	assert.False(t, result.Clean())
}

// When two score records match the same spread, the first in input
// order wins and the duplicate is reported unused
func TestMatchFirstScoreWins(t *testing.T) {
	matcher := NewMatchService()

	spreads := []models.SpreadRecord{
		{Team1: "Ohio State", Team2: "Michigan", Spread1: -7, Spread2: 7},
	}
	scores := []models.ScoreRecord{
		{Team1: "Ohio State", Team2: "Michigan", Score1: 20, Score2: 10},
		{Team1: "Ohio St.", Team2: "Michigan", Score1: 99, Score2: 0},
	}

	result := matcher.Match(spreads, scores)

	require.Len(t, result.Ordered, 1)
	assert.Equal(t, 20, result.Ordered[0].Score1)
	require.Len(t, result.UnusedScores, 1)
	assert.Equal(t, 99, result.UnusedScores[0].Score1)
}

func TestMatchEmptyInputs(t *testing.T) {
	matcher := NewMatchService()

	result := matcher.Match(nil, nil)
	assert.Empty(t, result.Ordered)
	assert.Empty(t, result.UnmatchedSpreads)
	assert.Empty(t, result.UnusedScores)
	assert.True(t, result.Clean())
}
