package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"pickem-pool-go/database"
	"pickem-pool-go/logging"
	"pickem-pool-go/models"
)

// maxLegacyWeek bounds the per-week file scan during import
const maxLegacyWeek = 25

// LegacyPickSheet is one player's submission in the old flat-file layout
type LegacyPickSheet struct {
	Player string `json:"player"`
	Picks  []struct {
		Game int    `json:"game"`
		Team string `json:"team"`
	} `json:"picks"`
}

// LegacyImportService replays the old flat-file system's weekly JSON
// files (spreads_week_N.json, picks_week_N.json, scores_week_N.json)
// through the normal pipeline. Spread and score files go through the
// ingest adapter since the old files used inconsistent key spellings.
// Because the standings fold is idempotent per week, re-running the
// import produces the same totals.
type LegacyImportService struct {
	ingest    *IngestService
	pool      *PoolService
	picksRepo *database.MongoPicksRepository
	logger    *logging.Logger
}

// NewLegacyImportService creates a new legacy import service
func NewLegacyImportService(ingest *IngestService, pool *PoolService, picksRepo *database.MongoPicksRepository) *LegacyImportService {
	return &LegacyImportService{
		ingest:    ingest,
		pool:      pool,
		picksRepo: picksRepo,
		logger:    logging.WithPrefix("LegacyImport"),
	}
}

// ImportSeason imports every week found in the legacy data directory
func (s *LegacyImportService) ImportSeason(ctx context.Context, dir string, season int) error {
	s.logger.Infof("Starting legacy import from %s for season %d", dir, season)

	imported := 0
	for week := 1; week <= maxLegacyWeek; week++ {
		spreadsFile := filepath.Join(dir, fmt.Sprintf("spreads_week_%d.json", week))
		if _, err := os.Stat(spreadsFile); os.IsNotExist(err) {
			continue
		}

		if err := s.ImportWeek(ctx, dir, season, week); err != nil {
			return fmt.Errorf("failed to import week %d: %w", week, err)
		}
		imported++
	}

	s.logger.Infof("Legacy import complete: %d weeks imported", imported)
	return nil
}

// ImportWeek imports one week's spreads, picks, and scores in pipeline
// order. Missing picks or scores files are fine: the week just stays in
// its earlier state.
func (s *LegacyImportService) ImportWeek(ctx context.Context, dir string, season, week int) error {
	if err := s.importSpreads(ctx, dir, season, week); err != nil {
		return err
	}

	if err := s.importPicks(ctx, dir, season, week); err != nil {
		return err
	}

	return s.importScores(ctx, dir, season, week)
}

func (s *LegacyImportService) importSpreads(ctx context.Context, dir string, season, week int) error {
	path := filepath.Join(dir, fmt.Sprintf("spreads_week_%d.json", week))
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	spreads, report, err := s.ingest.ParseSpreads(payload)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for _, rej := range report.Rejected {
		s.logger.Warnf("%s record %d rejected: %s", path, rej.Index, rej.Reason)
	}

	return s.pool.SaveSpreads(ctx, season, week, spreads)
}

func (s *LegacyImportService) importPicks(ctx context.Context, dir string, season, week int) error {
	path := filepath.Join(dir, fmt.Sprintf("picks_week_%d.json", week))
	payload, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.logger.Debugf("No picks file for week %d", week)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var sheets []LegacyPickSheet
	if err := json.Unmarshal(payload, &sheets); err != nil {
		return fmt.Errorf("%w: failed to parse %s: %v", ErrMalformedInput, path, err)
	}

	for _, sheet := range sheets {
		picks := &models.WeeklyPicks{
			Player: sheet.Player,
			Season: season,
			Week:   week,
		}
		for _, p := range sheet.Picks {
			picks.Picks = append(picks.Picks, models.GamePick{GameIndex: p.Game, Team: p.Team})
		}

		// Legacy sheets bypass submission validation: some reference
		// games the old system later dropped, and scoring skips those
		if err := s.picksRepo.Upsert(ctx, picks); err != nil {
			return fmt.Errorf("failed to store picks for %s: %w", sheet.Player, err)
		}
	}

	s.logger.Infof("Imported %d pick sheets for week %d", len(sheets), week)
	return nil
}

func (s *LegacyImportService) importScores(ctx context.Context, dir string, season, week int) error {
	path := filepath.Join(dir, fmt.Sprintf("scores_week_%d.json", week))
	payload, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		s.logger.Debugf("No scores file for week %d", week)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	scores, report, err := s.ingest.ParseScores(payload)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	for _, rej := range report.Rejected {
		s.logger.Warnf("%s record %d rejected: %s", path, rej.Index, rej.Reason)
	}

	results, err := s.pool.ProcessScores(ctx, season, week, scores)
	if err != nil {
		return err
	}

	if !results.ReportClean() {
		s.logger.Warnf("Week %d imported with %d unmatched spreads, %d unused scores",
			week, len(results.Report.UnmatchedSpreads), len(results.Report.UnusedScores))
	}

	return nil
}
