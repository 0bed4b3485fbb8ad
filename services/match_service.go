package services

import (
	"pickem-pool-go/logging"
	"pickem-pool-go/models"
)

// MatchService reconciles a week's score feed against the spread sheet.
// The two come from different sources: teams may be listed in either
// order and under different spellings, so every comparison goes through
// models.NormalizeTeamName. The matcher is pure computation over the
// input slices; it never touches storage.
type MatchService struct {
	logger *logging.Logger
}

// NewMatchService creates a new match service
func NewMatchService() *MatchService {
	return &MatchService{
		logger: logging.WithPrefix("MatchService"),
	}
}

// Match produces one ordered GameResult per spread record that has a
// matching score record, with scores reoriented to the spread's
// team1/team2 positions. Spreads with no matching score are reported in
// UnmatchedSpreads and processing continues; score records no spread
// claimed are reported in UnusedScores.
//
// When several score records normalize-match the same spread, the first
// in input order wins and is consumed. No "best" matching is attempted.
func (s *MatchService) Match(spreads []models.SpreadRecord, scores []models.ScoreRecord) models.MatchResult {
	result := models.MatchResult{
		Ordered:          make([]models.GameResult, 0, len(spreads)),
		UnmatchedSpreads: []models.SpreadRecord{},
		UnusedScores:     []models.ScoreRecord{},
	}

	consumed := make([]bool, len(scores))

	for _, spread := range spreads {
		n1 := models.NormalizeTeamName(spread.Team1)
		n2 := models.NormalizeTeamName(spread.Team2)

		matchIdx := -1
		for i, score := range scores {
			if consumed[i] {
				continue
			}
			m1 := models.NormalizeTeamName(score.Team1)
			m2 := models.NormalizeTeamName(score.Team2)
			if (m1 == n1 && m2 == n2) || (m1 == n2 && m2 == n1) {
				matchIdx = i
				break
			}
		}

		if matchIdx < 0 {
			s.logger.Warnf("No score found for %s vs %s", spread.Team1, spread.Team2)
			result.UnmatchedSpreads = append(result.UnmatchedSpreads, spread)
			continue
		}

		score := scores[matchIdx]
		consumed[matchIdx] = true

		score1, score2 := score.Score1, score.Score2
		if models.NormalizeTeamName(score.Team1) != n1 {
			// Score feed listed the teams in the opposite order
			score1, score2 = score2, score1
		}

		result.Ordered = append(result.Ordered, models.GameResult{
			Date:    spread.Date,
			Team1:   spread.Team1,
			Team2:   spread.Team2,
			Spread1: spread.Spread1,
			Spread2: spread.Spread2,
			Score1:  score1,
			Score2:  score2,
		})
	}

	for i, score := range scores {
		if !consumed[i] {
			s.logger.Warnf("Score for %s vs %s matched no spread", score.Team1, score.Team2)
			result.UnusedScores = append(result.UnusedScores, score)
		}
	}

	s.logger.Infof("Matched %d of %d spreads (%d unused scores)",
		len(result.Ordered), len(spreads), len(result.UnusedScores))

	return result
}
