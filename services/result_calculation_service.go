package services

import (
	"strings"

	"pickem-pool-go/logging"
	"pickem-pool-go/models"
)

// ResultCalculationService declares spread-adjusted winners for matched
// games and scores player picks against the declared winners. Both
// operations are pure computation; persistence belongs to the caller.
type ResultCalculationService struct {
	logger *logging.Logger
}

// NewResultCalculationService creates a new result calculation service
func NewResultCalculationService() *ResultCalculationService {
	return &ResultCalculationService{
		logger: logging.WithPrefix("ResultCalc"),
	}
}

// DeclareWinners resolves the winner of each matched game and returns
// the annotated games plus the flat list of declared winner names.
// Pushes get the PushWinner sentinel on the game and are excluded from
// the winner list.
//
// The spread is applied to team1's score only; team2 is compared raw.
// With the usual spread2 == -spread1 convention both orientations give
// the same answer, and applying both sides would double the line.
func (s *ResultCalculationService) DeclareWinners(games []models.GameResult) ([]models.GameResult, []string) {
	declared := make([]models.GameResult, len(games))
	winners := make([]string, 0, len(games))

	for i, game := range games {
		adjusted1 := game.AdjustedScore1()
		raw2 := float64(game.Score2)

		switch {
		case adjusted1 > raw2:
			game.Winner = game.Team1
		case adjusted1 < raw2:
			game.Winner = game.Team2
		default:
			game.Winner = models.PushWinner
		}

		if game.HasWinner() {
			winners = append(winners, game.Winner)
		} else {
			s.logger.Debugf("Push: %s %s vs %s (%d-%d)",
				game.Team1, game.FormatSpread1(), game.Team2, game.Score1, game.Score2)
		}

		declared[i] = game
	}

	s.logger.Infof("Declared %d winners across %d games", len(winners), len(games))
	return declared, winners
}

// ScorePlayers counts each player's correct picks for the week. A pick
// is correct when its trimmed team name exactly equals one of the
// declared winner names; games with no declared winner (pushes,
// unmatched spreads) simply never satisfy that test. Picks with an empty
// team or an index outside the week's spread sheet are skipped.
//
// A week with no games, no pick entries, or no valid picks degrades to
// zero-correct results, never an error.
func (s *ResultCalculationService) ScorePlayers(entries []models.WeeklyPicks, winners []string, gameCount int) []models.PlayerResult {
	winnerSet := make(map[string]bool, len(winners))
	for _, w := range winners {
		winnerSet[w] = true
	}

	results := make([]models.PlayerResult, 0, len(entries))
	for _, entry := range entries {
		result := models.PlayerResult{
			Player:  entry.Player,
			Correct: []string{},
		}

		for _, pick := range entry.Picks {
			if !pick.IsValid(gameCount) {
				s.logger.Warnf("Skipping invalid pick for %s (index %d, team %q)",
					entry.Player, pick.GameIndex, pick.Team)
				continue
			}

			team := strings.TrimSpace(pick.Team)
			if winnerSet[team] {
				result.Correct = append(result.Correct, team)
			}
		}

		result.Total = len(result.Correct)
		results = append(results, result)
	}

	return results
}
