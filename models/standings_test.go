package models

import "testing"

func weekResults(totals map[string]int) []PlayerResult {
	results := make([]PlayerResult, 0, len(totals))
	for player, total := range totals {
		results = append(results, PlayerResult{Player: player, Total: total})
	}
	return results
}

func TestStandingsApplyWeek(t *testing.T) {
	s := NewStandings(2025)

	s.ApplyWeek(1, weekResults(map[string]int{"ANDREW": 3, "TJ": 5}))
	s.ApplyWeek(2, weekResults(map[string]int{"ANDREW": 2, "TJ": 1, "RYAN": 4}))

	if s.Totals["ANDREW"] != 5 {
		t.Errorf("ANDREW total = %d, expected 5", s.Totals["ANDREW"])
	}
	if s.Totals["TJ"] != 6 {
		t.Errorf("TJ total = %d, expected 6", s.Totals["TJ"])
	}
	if s.Totals["RYAN"] != 4 {
		t.Errorf("RYAN total = %d, expected 4", s.Totals["RYAN"])
	}
}

// Re-applying a week with identical results must not change totals. The
// old flat-file system added blindly on every calculation run and
// double-counted; the per-week fold fixes that.
func TestStandingsApplyWeekIdempotent(t *testing.T) {
	s := NewStandings(2025)
	results := weekResults(map[string]int{"ANDREW": 3, "TJ": 5})

	s.ApplyWeek(1, results)
	s.ApplyWeek(1, results)

	if s.Totals["ANDREW"] != 3 {
		t.Errorf("ANDREW total = %d after double apply, expected 3", s.Totals["ANDREW"])
	}
	if s.Totals["TJ"] != 5 {
		t.Errorf("TJ total = %d after double apply, expected 5", s.Totals["TJ"])
	}
}

// Re-applying a week with different results replaces that week's
// contribution rather than stacking on top of it
func TestStandingsApplyWeekReplaces(t *testing.T) {
	s := NewStandings(2025)

	s.ApplyWeek(1, weekResults(map[string]int{"ANDREW": 3}))
	s.ApplyWeek(1, weekResults(map[string]int{"ANDREW": 4}))

	if s.Totals["ANDREW"] != 4 {
		t.Errorf("ANDREW total = %d after re-apply, expected 4", s.Totals["ANDREW"])
	}
}

func TestStandingsRankings(t *testing.T) {
	s := NewStandings(2025)
	s.ApplyWeek(1, weekResults(map[string]int{"ANDREW": 3, "TJ": 5, "RYAN": 3, "BARDIA": 1}))

	rankings := s.Rankings()

	expected := []StandingsEntry{
		{Rank: 1, Player: "TJ", Total: 5},
		{Rank: 2, Player: "ANDREW", Total: 3},
		{Rank: 2, Player: "RYAN", Total: 3},
		{Rank: 4, Player: "BARDIA", Total: 1},
	}

	if len(rankings) != len(expected) {
		t.Fatalf("got %d entries, expected %d", len(rankings), len(expected))
	}
	for i, want := range expected {
		if rankings[i] != want {
			t.Errorf("rankings[%d] = %+v, expected %+v", i, rankings[i], want)
		}
	}
}

func TestStandingsEmptyRankings(t *testing.T) {
	s := NewStandings(2025)
	if len(s.Rankings()) != 0 {
		t.Errorf("expected empty rankings for new standings")
	}
}
