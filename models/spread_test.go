package models

import "testing"

func TestCanonicalName(t *testing.T) {
	game := SpreadRecord{Team1: "Ohio State", Team2: "Michigan", Spread1: -7, Spread2: 7}

	tests := []struct {
		input    string
		expected string
		ok       bool
	}{
		{input: "Ohio State", expected: "Ohio State", ok: true},
		{input: "Ohio St.", expected: "Ohio State", ok: true},
		{input: "OHIO STATE", expected: "Ohio State", ok: true},
		{input: "Michigan", expected: "Michigan", ok: true},
		{input: "michigan", expected: "Michigan", ok: true},
		{input: "Penn State", expected: "", ok: false},
		{input: "", expected: "", ok: false},
	}

	for _, tc := range tests {
		got, ok := game.CanonicalName(tc.input)
		if got != tc.expected || ok != tc.ok {
			t.Errorf("CanonicalName(%q) = (%q, %t), expected (%q, %t)",
				tc.input, got, ok, tc.expected, tc.ok)
		}
	}
}

func TestFormatSpread(t *testing.T) {
	tests := []struct {
		spread   float64
		expected string
	}{
		{-7, "-7.0"},
		{3.5, "+3.5"},
		{0, "PK"},
	}

	for _, tc := range tests {
		game := SpreadRecord{Spread1: tc.spread}
		if got := game.FormatSpread1(); got != tc.expected {
			t.Errorf("FormatSpread1() with spread %v = %q, expected %q", tc.spread, got, tc.expected)
		}
	}
}
