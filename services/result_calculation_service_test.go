package services

import (
	"testing"

	"pickem-pool-go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclareWinnersSpreadAdjusted(t *testing.T) {
	calc := NewResultCalculationService()

	games := []models.GameResult{
		// 20 + (-7) = 13 > 10: favorite covers
		{Team1: "Ohio State", Team2: "Michigan", Spread1: -7, Spread2: 7, Score1: 20, Score2: 10},
		// 14 + 10 = 24 > 21: underdog covers by taking the points
		{Team1: "Indiana", Team2: "Penn State", Spread1: 10, Spread2: -10, Score1: 14, Score2: 21},
		// 28 + (-3.5) = 24.5 < 27: favorite wins the game but not the spread
		{Team1: "Alabama", Team2: "Auburn", Spread1: -3.5, Spread2: 3.5, Score1: 28, Score2: 27},
	}

	declared, winners := calc.DeclareWinners(games)

	require.Len(t, declared, 3)
	assert.Equal(t, "Ohio State", declared[0].Winner)
	assert.Equal(t, "Indiana", declared[1].Winner)
	assert.Equal(t, "Auburn", declared[2].Winner)
	assert.Equal(t, []string{"Ohio State", "Indiana", "Auburn"}, winners)
}

func TestDeclareWinnersPush(t *testing.T) {
	calc := NewResultCalculationService()

	games := []models.GameResult{
		// 17 + (-3) = 14 == 14: exact tie against the spread
		{Team1: "Ohio State", Team2: "Michigan", Spread1: -3, Spread2: 3, Score1: 17, Score2: 14},
	}

	declared, winners := calc.DeclareWinners(games)

	require.Len(t, declared, 1)
	assert.Equal(t, models.PushWinner, declared[0].Winner)
	assert.True(t, declared[0].IsPush())
	assert.NotContains(t, winners, "Ohio State")
	assert.Empty(t, winners)
}

func TestDeclareWinnersHalfPointSpread(t *testing.T) {
	calc := NewResultCalculationService()

	games := []models.GameResult{
		// Half-point lines cannot push: 21 - 3.5 = 17.5 < 18
		{Team1: "Texas", Team2: "Oklahoma", Spread1: -3.5, Spread2: 3.5, Score1: 21, Score2: 18},
	}

	_, winners := calc.DeclareWinners(games)
	assert.Equal(t, []string{"Oklahoma"}, winners)
}

func TestScorePlayersByTeamMembership(t *testing.T) {
	calc := NewResultCalculationService()

	entries := []models.WeeklyPicks{
		{
			Player: "ANDREW",
			Picks: []models.GamePick{
				{GameIndex: 0, Team: "Ohio State"},
				{GameIndex: 1, Team: "Michigan"}, // game 1 has no declared winner
			},
		},
	}

	results := calc.ScorePlayers(entries, []string{"Ohio State"}, 2)

	require.Len(t, results, 1)
	assert.Equal(t, "ANDREW", results[0].Player)
	assert.Equal(t, []string{"Ohio State"}, results[0].Correct)
	assert.Equal(t, 1, results[0].Total)
}

// A pick submitted under an alternate spelling is stored under the
// sheet's spelling by submission validation, so it scores against the
// declared winner's exact name
func TestScorePlayersAlternateSpellingPick(t *testing.T) {
	calc := NewResultCalculationService()

	game := models.SpreadRecord{Team1: "Ohio State", Team2: "Michigan", Spread1: -7, Spread2: 7}
	canonical, ok := game.CanonicalName("Ohio St.")
	require.True(t, ok)
	require.Equal(t, "Ohio State", canonical)

	entries := []models.WeeklyPicks{
		{Player: "MICAH", Picks: []models.GamePick{{GameIndex: 0, Team: canonical}}},
	}

	results := calc.ScorePlayers(entries, []string{"Ohio State"}, 1)

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Total)
}

func TestScorePlayersTrimsPicks(t *testing.T) {
	calc := NewResultCalculationService()

	entries := []models.WeeklyPicks{
		{Player: "TJ", Picks: []models.GamePick{{GameIndex: 0, Team: "  Ohio State  "}}},
	}

	results := calc.ScorePlayers(entries, []string{"Ohio State"}, 1)

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Total)
}

func TestScorePlayersSkipsInvalidPicks(t *testing.T) {
	calc := NewResultCalculationService()

	entries := []models.WeeklyPicks{
		{
			Player: "RYAN",
			Picks: []models.GamePick{
				{GameIndex: -1, Team: "Ohio State"}, // negative index
				{GameIndex: 5, Team: "Ohio State"},  // beyond the week's sheet
				{GameIndex: 0, Team: "   "},         // empty team
				{GameIndex: 0, Team: "Ohio State"},  // the one valid pick
			},
		},
	}

	results := calc.ScorePlayers(entries, []string{"Ohio State"}, 2)

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].Total)
}

func TestScorePlayersDegradesToZero(t *testing.T) {
	calc := NewResultCalculationService()

	// No games declared, no winners
	results := calc.ScorePlayers(
		[]models.WeeklyPicks{{Player: "BARDIA", Picks: nil}},
		nil, 0)
	require.Len(t, results, 1)
	assert.Equal(t, 0, results[0].Total)
	assert.Empty(t, results[0].Correct)

	// No entries at all
	assert.Empty(t, calc.ScorePlayers(nil, []string{"Ohio State"}, 1))
}

// Running declaration twice over the same games is referentially
// transparent: same winners out, no state carried between runs
func TestDeclareWinnersDeterministic(t *testing.T) {
	calc := NewResultCalculationService()

	games := []models.GameResult{
		{Team1: "Ohio State", Team2: "Michigan", Spread1: -7, Spread2: 7, Score1: 20, Score2: 10},
	}

	_, first := calc.DeclareWinners(games)
	_, second := calc.DeclareWinners(games)
	assert.Equal(t, first, second)
}
