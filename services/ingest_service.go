package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"pickem-pool-go/logging"
	"pickem-pool-go/models"
)

// ErrMalformedInput marks a payload the ingest boundary cannot use at
// all: not a JSON array, or unparseable. Per-record problems are not
// fatal; they land in the IngestReport instead.
var ErrMalformedInput = errors.New("malformed input")

// RecordError describes one rejected record in an upload
type RecordError struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// IngestReport summarizes an upload: how many records were accepted and
// why the rest were rejected
type IngestReport struct {
	Accepted int           `json:"accepted"`
	Rejected []RecordError `json:"rejected"`
}

// IngestService is the adapter between heterogeneous vendor payload
// shapes and the canonical records. Vendor sheets and feeds disagree on
// key spelling ("HomeScore", "homeScore", "home_score"), so each field
// is resolved through an alias list here and nowhere else. Records
// missing a required field are rejected with a reason rather than
// silently contributing a zero.
type IngestService struct {
	logger *logging.Logger
}

// NewIngestService creates a new ingest service
func NewIngestService() *IngestService {
	return &IngestService{
		logger: logging.WithPrefix("IngestService"),
	}
}

// Key aliases observed across vendor payloads. First match wins.
var (
	team1Keys   = []string{"team1", "Team1", "home", "Home", "homeTeam", "HomeTeam", "home_team"}
	team2Keys   = []string{"team2", "Team2", "away", "Away", "awayTeam", "AwayTeam", "away_team"}
	spread1Keys = []string{"spread1", "Spread1", "homeSpread", "HomeSpread", "home_spread", "spread", "Spread"}
	spread2Keys = []string{"spread2", "Spread2", "awaySpread", "AwaySpread", "away_spread"}
	score1Keys  = []string{"score1", "Score1", "homeScore", "HomeScore", "home_score"}
	score2Keys  = []string{"score2", "Score2", "awayScore", "AwayScore", "away_score"}
	dateKeys    = []string{"date", "Date", "gameDate", "GameDate", "game_date"}
)

// ParseSpreads converts an uploaded spread payload into canonical
// SpreadRecords. A missing spread2 is derived as -spread1, since many
// vendor sheets carry a single line for the game; everything else
// required (both teams, spread1) rejects the record.
func (s *IngestService) ParseSpreads(payload []byte) ([]models.SpreadRecord, *IngestReport, error) {
	raw, err := decodeRecordList(payload)
	if err != nil {
		return nil, nil, err
	}

	report := &IngestReport{Rejected: []RecordError{}}
	spreads := make([]models.SpreadRecord, 0, len(raw))

	for i, rec := range raw {
		team1, ok := stringField(rec, team1Keys)
		if !ok {
			report.reject(i, "missing team1")
			continue
		}
		team2, ok := stringField(rec, team2Keys)
		if !ok {
			report.reject(i, "missing team2")
			continue
		}
		spread1, ok, reason := numberField(rec, spread1Keys)
		if !ok {
			report.reject(i, "spread1: "+reason)
			continue
		}
		spread2, ok, reason := numberField(rec, spread2Keys)
		if !ok {
			if reason != missingReason {
				report.reject(i, "spread2: "+reason)
				continue
			}
			spread2 = -spread1
		}

		date, _ := stringField(rec, dateKeys)

		spreads = append(spreads, models.SpreadRecord{
			Date:    date,
			Team1:   team1,
			Team2:   team2,
			Spread1: spread1,
			Spread2: spread2,
		})
		report.Accepted++
	}

	s.logger.Infof("Parsed spread upload: %d accepted, %d rejected",
		report.Accepted, len(report.Rejected))
	return spreads, report, nil
}

// ParseScores converts an uploaded score payload into canonical
// ScoreRecords. Both teams and both integer scores are required.
func (s *IngestService) ParseScores(payload []byte) ([]models.ScoreRecord, *IngestReport, error) {
	raw, err := decodeRecordList(payload)
	if err != nil {
		return nil, nil, err
	}

	report := &IngestReport{Rejected: []RecordError{}}
	scores := make([]models.ScoreRecord, 0, len(raw))

	for i, rec := range raw {
		team1, ok := stringField(rec, team1Keys)
		if !ok {
			report.reject(i, "missing team1")
			continue
		}
		team2, ok := stringField(rec, team2Keys)
		if !ok {
			report.reject(i, "missing team2")
			continue
		}
		score1, ok, reason := intField(rec, score1Keys)
		if !ok {
			report.reject(i, "score1: "+reason)
			continue
		}
		score2, ok, reason := intField(rec, score2Keys)
		if !ok {
			report.reject(i, "score2: "+reason)
			continue
		}

		scores = append(scores, models.ScoreRecord{
			Team1:  team1,
			Team2:  team2,
			Score1: score1,
			Score2: score2,
		})
		report.Accepted++
	}

	s.logger.Infof("Parsed score upload: %d accepted, %d rejected",
		report.Accepted, len(report.Rejected))
	return scores, report, nil
}

func (r *IngestReport) reject(index int, reason string) {
	r.Rejected = append(r.Rejected, RecordError{Index: index, Reason: reason})
}

// decodeRecordList parses the payload as a JSON array of objects
func decodeRecordList(payload []byte) ([]map[string]interface{}, error) {
	var raw []map[string]interface{}
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("%w: expected a JSON array of records: %v", ErrMalformedInput, err)
	}
	return raw, nil
}

const missingReason = "missing"

// stringField resolves a non-empty string through the alias list
func stringField(rec map[string]interface{}, keys []string) (string, bool) {
	for _, key := range keys {
		if v, exists := rec[key]; exists {
			if str, ok := v.(string); ok && strings.TrimSpace(str) != "" {
				return strings.TrimSpace(str), true
			}
		}
	}
	return "", false
}

// numberField resolves a numeric value through the alias list. String
// values that strictly parse as numbers are accepted; anything else is
// rejected with a reason rather than coerced to zero.
func numberField(rec map[string]interface{}, keys []string) (float64, bool, string) {
	for _, key := range keys {
		v, exists := rec[key]
		if !exists {
			continue
		}
		switch n := v.(type) {
		case float64:
			return n, true, ""
		case string:
			parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
			if err != nil {
				return 0, false, fmt.Sprintf("not numeric: %q", n)
			}
			return parsed, true, ""
		default:
			return 0, false, fmt.Sprintf("not numeric: %v", v)
		}
	}
	return 0, false, missingReason
}

// intField is numberField restricted to whole numbers
func intField(rec map[string]interface{}, keys []string) (int, bool, string) {
	n, ok, reason := numberField(rec, keys)
	if !ok {
		return 0, false, reason
	}
	if n != math.Trunc(n) {
		return 0, false, fmt.Sprintf("not an integer: %v", n)
	}
	return int(n), true, ""
}
