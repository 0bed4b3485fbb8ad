package services

import (
	"context"
	"fmt"
	"sync"

	"pickem-pool-go/database"
	"pickem-pool-go/logging"
	"pickem-pool-go/models"
)

// PoolService runs the weekly pipeline end to end: spreads in, scores
// matched and reoriented, winners declared, players scored, standings
// folded. All writes for a given week are serialized behind a per-week
// mutex so a concurrent upload and recalculation cannot race on the same
// documents. The computation stages themselves are pure and live in
// MatchService and ResultCalculationService.
type PoolService struct {
	spreadRepo  *database.MongoSpreadRepository
	resultsRepo *database.MongoResultsRepository
	picksRepo   *database.MongoPicksRepository
	matcher     *MatchService
	calculator  *ResultCalculationService
	standings   *StandingsService
	logger      *logging.Logger

	mu        sync.Mutex
	weekLocks map[string]*sync.Mutex
}

// NewPoolService creates a new pool service
func NewPoolService(
	spreadRepo *database.MongoSpreadRepository,
	resultsRepo *database.MongoResultsRepository,
	picksRepo *database.MongoPicksRepository,
	matcher *MatchService,
	calculator *ResultCalculationService,
	standings *StandingsService,
) *PoolService {
	return &PoolService{
		spreadRepo:  spreadRepo,
		resultsRepo: resultsRepo,
		picksRepo:   picksRepo,
		matcher:     matcher,
		calculator:  calculator,
		standings:   standings,
		logger:      logging.WithPrefix("PoolService"),
		weekLocks:   make(map[string]*sync.Mutex),
	}
}

// weekLock returns the mutex serializing writes for one season+week
func (s *PoolService) weekLock(season, week int) *sync.Mutex {
	key := fmt.Sprintf("%d-%d", season, week)

	s.mu.Lock()
	defer s.mu.Unlock()

	lock, exists := s.weekLocks[key]
	if !exists {
		lock = &sync.Mutex{}
		s.weekLocks[key] = lock
	}
	return lock
}

// SaveSpreads stores the week's spread sheet. A prior sheet for the same
// week is backed up by the repository before being replaced.
func (s *PoolService) SaveSpreads(ctx context.Context, season, week int, games []models.SpreadRecord) error {
	lock := s.weekLock(season, week)
	lock.Lock()
	defer lock.Unlock()

	spreads := &models.WeeklySpreads{
		Season: season,
		Week:   week,
		Games:  games,
	}

	if err := s.spreadRepo.Upsert(ctx, spreads); err != nil {
		return fmt.Errorf("failed to save spreads: %w", err)
	}

	s.logger.Infof("Saved %d spreads for season %d week %d", len(games), season, week)
	return nil
}

// GetSpreads returns the week's spread sheet
func (s *PoolService) GetSpreads(ctx context.Context, season, week int) (*models.WeeklySpreads, error) {
	return s.spreadRepo.FindBySeasonWeek(ctx, season, week)
}

// GetWeeks returns the week numbers that have a spread sheet loaded
func (s *PoolService) GetWeeks(ctx context.Context, season int) ([]int, error) {
	return s.spreadRepo.FindWeeksBySeason(ctx, season)
}

// ProcessScores runs the full calculation for a week from an uploaded
// score feed: match against the spread sheet, declare winners, score
// every submitted pick sheet, fold the standings, and persist the lot.
// The returned WeeklyResults carries the match report so the caller can
// surface naming mismatches to the operator.
//
// Re-running with the same inputs is deterministic and leaves the
// standings unchanged.
func (s *PoolService) ProcessScores(ctx context.Context, season, week int, scores []models.ScoreRecord) (*models.WeeklyResults, error) {
	lock := s.weekLock(season, week)
	lock.Lock()
	defer lock.Unlock()

	spreads, err := s.spreadRepo.FindBySeasonWeek(ctx, season, week)
	if err != nil {
		return nil, fmt.Errorf("failed to load spreads: %w", err)
	}
	if spreads == nil {
		return nil, fmt.Errorf("no spread sheet loaded for season %d week %d", season, week)
	}

	match := s.matcher.Match(spreads.Games, scores)
	games, winners := s.calculator.DeclareWinners(match.Ordered)

	results := &models.WeeklyResults{
		Season:  season,
		Week:    week,
		Games:   games,
		Winners: winners,
		Report: models.MatchReport{
			UnmatchedSpreads: match.UnmatchedSpreads,
			UnusedScores:     match.UnusedScores,
		},
	}

	if err := s.scorePicksAndSave(ctx, results, spreads.GameCount()); err != nil {
		return nil, err
	}

	return results, nil
}

// Recalculate re-scores a week from its stored ordered games: winners
// are re-declared deterministically and every pick sheet is re-scored.
// Used after late pick corrections or a roster fix; no score re-upload
// is needed.
func (s *PoolService) Recalculate(ctx context.Context, season, week int) (*models.WeeklyResults, error) {
	lock := s.weekLock(season, week)
	lock.Lock()
	defer lock.Unlock()

	results, err := s.resultsRepo.FindBySeasonWeek(ctx, season, week)
	if err != nil {
		return nil, fmt.Errorf("failed to load results: %w", err)
	}
	if results == nil {
		return nil, fmt.Errorf("no results calculated for season %d week %d", season, week)
	}

	spreads, err := s.spreadRepo.FindBySeasonWeek(ctx, season, week)
	if err != nil {
		return nil, fmt.Errorf("failed to load spreads: %w", err)
	}

	gameCount := len(results.Games)
	if spreads != nil {
		gameCount = spreads.GameCount()
	}

	games, winners := s.calculator.DeclareWinners(results.Games)
	results.Games = games
	results.Winners = winners

	if err := s.scorePicksAndSave(ctx, results, gameCount); err != nil {
		return nil, err
	}

	return results, nil
}

// scorePicksAndSave scores all pick sheets against the declared winners,
// persists the results document, and folds the standings. Callers hold
// the week lock.
func (s *PoolService) scorePicksAndSave(ctx context.Context, results *models.WeeklyResults, gameCount int) error {
	picks, err := s.picksRepo.FindAllByWeek(ctx, results.Season, results.Week)
	if err != nil {
		return fmt.Errorf("failed to load picks: %w", err)
	}

	results.PlayerTotals = s.calculator.ScorePlayers(picks, results.Winners, gameCount)

	if err := s.resultsRepo.Upsert(ctx, results); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	if _, err := s.standings.ApplyWeek(ctx, results.Season, results.Week, results.PlayerTotals); err != nil {
		return err
	}

	s.logger.Infof("Season %d week %d: %d winners, %d players scored",
		results.Season, results.Week, len(results.Winners), len(results.PlayerTotals))
	return nil
}

// GetResults returns a week's stored calculation output
func (s *PoolService) GetResults(ctx context.Context, season, week int) (*models.WeeklyResults, error) {
	return s.resultsRepo.FindBySeasonWeek(ctx, season, week)
}

// SubmitPicks validates and stores a player's pick sheet for a week.
// Picks must reference games on the week's spread sheet and name one of
// the two teams in the referenced game. Accepted picks are stored under
// the sheet's spelling of the team, so scoring's exact comparison
// against declared winner names always holds for a validated pick.
// Resubmission replaces the prior sheet.
func (s *PoolService) SubmitPicks(ctx context.Context, picks *models.WeeklyPicks) error {
	spreads, err := s.spreadRepo.FindBySeasonWeek(ctx, picks.Season, picks.Week)
	if err != nil {
		return fmt.Errorf("failed to load spreads: %w", err)
	}
	if spreads == nil {
		return fmt.Errorf("no spread sheet loaded for season %d week %d", picks.Season, picks.Week)
	}

	for i := range picks.Picks {
		pick := &picks.Picks[i]
		if !pick.IsValid(spreads.GameCount()) {
			return fmt.Errorf("invalid pick: game index %d, team %q", pick.GameIndex, pick.Team)
		}

		game := spreads.Games[pick.GameIndex]
		canonical, ok := game.CanonicalName(pick.Team)
		if !ok {
			return fmt.Errorf("pick %q is not playing in game %d (%s vs %s)",
				pick.Team, pick.GameIndex, game.Team1, game.Team2)
		}
		pick.Team = canonical
	}

	if err := s.picksRepo.Upsert(ctx, picks); err != nil {
		return fmt.Errorf("failed to save picks: %w", err)
	}

	s.logger.Infof("Saved %d picks for %s, season %d week %d",
		len(picks.Picks), picks.Player, picks.Season, picks.Week)
	return nil
}

// GetPicks returns one player's submission for a week
func (s *PoolService) GetPicks(ctx context.Context, player string, season, week int) (*models.WeeklyPicks, error) {
	return s.picksRepo.FindByPlayerWeek(ctx, player, season, week)
}
