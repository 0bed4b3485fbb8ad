package services

import (
	"context"
	"fmt"

	"pickem-pool-go/database"
	"pickem-pool-go/logging"
	"pickem-pool-go/models"
)

// StandingsService folds weekly player results into the season standings
// and answers standings queries. The fold is idempotent per week: each
// week's contribution is keyed by week number, so re-running a week
// replaces its prior contribution instead of double-counting (the old
// flat-file system added blindly on every run).
type StandingsService struct {
	standingsRepo *database.MongoStandingsRepository
	resultsRepo   *database.MongoResultsRepository
	logger        *logging.Logger
}

// NewStandingsService creates a new standings service
func NewStandingsService(standingsRepo *database.MongoStandingsRepository, resultsRepo *database.MongoResultsRepository) *StandingsService {
	return &StandingsService{
		standingsRepo: standingsRepo,
		resultsRepo:   resultsRepo,
		logger:        logging.WithPrefix("StandingsService"),
	}
}

// ApplyWeek folds one week's player results into the season standings
// and persists the updated document
func (s *StandingsService) ApplyWeek(ctx context.Context, season, week int, results []models.PlayerResult) (*models.Standings, error) {
	standings, err := s.standingsRepo.FindBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("failed to load standings: %w", err)
	}
	if standings == nil {
		standings = models.NewStandings(season)
	}

	standings.ApplyWeek(week, results)

	if err := s.standingsRepo.Upsert(ctx, standings); err != nil {
		return nil, fmt.Errorf("failed to save standings: %w", err)
	}

	s.logger.Infof("Applied week %d results for %d players to season %d standings",
		week, len(results), season)

	return standings, nil
}

// RebuildSeason recomputes the standings from scratch by replaying every
// stored week's results. Used after a bulk import or when a standings
// document is suspect.
func (s *StandingsService) RebuildSeason(ctx context.Context, season int) (*models.Standings, error) {
	weeklyResults, err := s.resultsRepo.FindBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("failed to load season results: %w", err)
	}

	standings := models.NewStandings(season)
	for _, weekly := range weeklyResults {
		standings.ApplyWeek(weekly.Week, weekly.PlayerTotals)
	}

	if err := s.standingsRepo.Upsert(ctx, standings); err != nil {
		return nil, fmt.Errorf("failed to save rebuilt standings: %w", err)
	}

	s.logger.Infof("Rebuilt season %d standings from %d weeks", season, len(weeklyResults))
	return standings, nil
}

// GetStandings returns a season's standings, empty if nothing has been
// folded in yet
func (s *StandingsService) GetStandings(ctx context.Context, season int) (*models.Standings, error) {
	standings, err := s.standingsRepo.FindBySeason(ctx, season)
	if err != nil {
		return nil, err
	}
	if standings == nil {
		standings = models.NewStandings(season)
	}
	return standings, nil
}
