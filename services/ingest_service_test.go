package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSpreadsCanonicalKeys(t *testing.T) {
	ingest := NewIngestService()

	payload := []byte(`[
		{"date": "11/29", "team1": "Ohio State", "team2": "Michigan", "spread1": -7, "spread2": 7}
	]`)

	spreads, report, err := ingest.ParseSpreads(payload)
	require.NoError(t, err)
	require.Len(t, spreads, 1)
	assert.Equal(t, 1, report.Accepted)
	assert.Empty(t, report.Rejected)

	assert.Equal(t, "Ohio State", spreads[0].Team1)
	assert.Equal(t, "11/29", spreads[0].Date)
	assert.Equal(t, -7.0, spreads[0].Spread1)
	assert.Equal(t, 7.0, spreads[0].Spread2)
}

func TestParseSpreadsVendorAliases(t *testing.T) {
	ingest := NewIngestService()

	// Vendor sheet spelling: Home/Away with a single line for the game
	payload := []byte(`[
		{"Home": "Ohio State", "Away": "Michigan", "HomeSpread": "-7.5"}
	]`)

	spreads, report, err := ingest.ParseSpreads(payload)
	require.NoError(t, err)
	require.Len(t, spreads, 1)
	assert.Equal(t, 1, report.Accepted)

	assert.Equal(t, "Ohio State", spreads[0].Team1)
	assert.Equal(t, "Michigan", spreads[0].Team2)
	assert.Equal(t, -7.5, spreads[0].Spread1)
	// Missing away line derived as the negation
	assert.Equal(t, 7.5, spreads[0].Spread2)
}

func TestParseSpreadsRejectsBadRecords(t *testing.T) {
	ingest := NewIngestService()

	payload := []byte(`[
		{"team1": "Ohio State", "team2": "Michigan", "spread1": -7},
		{"team2": "Michigan", "spread1": -7},
		{"team1": "Alabama", "team2": "Auburn"},
		{"team1": "Texas", "team2": "Oklahoma", "spread1": "pick em"}
	]`)

	spreads, report, err := ingest.ParseSpreads(payload)
	require.NoError(t, err)

	require.Len(t, spreads, 1)
	assert.Equal(t, "Ohio State", spreads[0].Team1)

	assert.Equal(t, 1, report.Accepted)
	require.Len(t, report.Rejected, 3)
	assert.Equal(t, 1, report.Rejected[0].Index)
	assert.Equal(t, "missing team1", report.Rejected[0].Reason)
	assert.Equal(t, 2, report.Rejected[1].Index)
	assert.Equal(t, "spread1: missing", report.Rejected[1].Reason)
	assert.Equal(t, 3, report.Rejected[2].Index)
	assert.Contains(t, report.Rejected[2].Reason, "not numeric")
}

func TestParseSpreadsMalformedPayload(t *testing.T) {
	ingest := NewIngestService()

	for _, payload := range []string{
		`{"team1": "Ohio State"}`, // object, not array
		`not json at all`,
		`42`,
	} {
		_, _, err := ingest.ParseSpreads([]byte(payload))
		assert.True(t, errors.Is(err, ErrMalformedInput), "payload %q should be malformed", payload)
	}
}

func TestParseScoresCanonicalAndAliasKeys(t *testing.T) {
	ingest := NewIngestService()

	payload := []byte(`[
		{"team1": "Ohio State", "team2": "Michigan", "score1": 20, "score2": 10},
		{"home": "Alabama", "away": "Auburn", "HomeScore": "28", "AwayScore": "27"}
	]`)

	scores, report, err := ingest.ParseScores(payload)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.Equal(t, 2, report.Accepted)

	assert.Equal(t, 20, scores[0].Score1)
	assert.Equal(t, "Alabama", scores[1].Team1)
	assert.Equal(t, 28, scores[1].Score1)
	assert.Equal(t, 27, scores[1].Score2)
}

func TestParseScoresRejectsNonIntegers(t *testing.T) {
	ingest := NewIngestService()

	payload := []byte(`[
		{"team1": "Ohio State", "team2": "Michigan", "score1": 20.5, "score2": 10},
		{"team1": "Texas", "team2": "Oklahoma", "score1": 31},
		{"team1": "Alabama", "team2": "Auburn", "score1": "twenty", "score2": 7}
	]`)

	scores, report, err := ingest.ParseScores(payload)
	require.NoError(t, err)

	assert.Empty(t, scores)
	assert.Equal(t, 0, report.Accepted)
	require.Len(t, report.Rejected, 3)
	assert.Contains(t, report.Rejected[0].Reason, "not an integer")
	assert.Equal(t, "score2: missing", report.Rejected[1].Reason)
	assert.Contains(t, report.Rejected[2].Reason, "not numeric")
}

func TestParseScoresTrimsTeamNames(t *testing.T) {
	ingest := NewIngestService()

	payload := []byte(`[
		{"team1": "  Ohio State ", "team2": "Michigan", "score1": 20, "score2": 10}
	]`)

	scores, _, err := ingest.ParseScores(payload)
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "Ohio State", scores[0].Team1)
}

func TestParseSpreadsEmptyArray(t *testing.T) {
	ingest := NewIngestService()

	spreads, report, err := ingest.ParseSpreads([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, spreads)
	assert.Equal(t, 0, report.Accepted)
	assert.Empty(t, report.Rejected)
}
