package models

import "testing"

func TestNormalizeTeamName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "Ohio State", expected: "ohiost"},
		{input: "Ohio St.", expected: "ohiost"},
		{input: "OHIO STATE", expected: "ohiost"},
		{input: "ohio st", expected: "ohiost"},
		{input: "Michigan", expected: "michigan"},
		{input: "Texas A&M", expected: "texasam"},
		{input: "Miami (OH)", expected: "miamioh"},
		{input: "St. John's", expected: "stjohns"},
		{input: "N.C. State", expected: "ncst"},
		{input: "Appalachian   State", expected: "appalachianst"},
		{input: "49ers", expected: "49ers"},
		{input: "State", expected: "st"},

		// Not a suffix, left alone
		{input: "Statesboro", expected: "statesboro"},

		// Degenerate input
		{input: "", expected: ""},
		{input: "...", expected: ""},
	}

	for _, tc := range tests {
		got := NormalizeTeamName(tc.input)
		if got != tc.expected {
			t.Errorf("NormalizeTeamName(%q) = %q, expected %q", tc.input, got, tc.expected)
		}
	}
}

func TestNormalizeTeamNameIdempotent(t *testing.T) {
	inputs := []string{
		"Ohio State", "Ohio St.", "Michigan", "Texas A&M", "N.C. State",
		"Statesboro", "State", "st", "", "49ers", "Miami (OH)",
	}

	for _, input := range inputs {
		once := NormalizeTeamName(input)
		twice := NormalizeTeamName(once)
		if once != twice {
			t.Errorf("NormalizeTeamName not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestSameTeamPair(t *testing.T) {
	tests := []struct {
		a1, a2, b1, b2 string
		expected       bool
	}{
		{"Ohio State", "Michigan", "Ohio St.", "Michigan", true},
		{"Ohio State", "Michigan", "Michigan", "Ohio St.", true},
		{"Ohio State", "Michigan", "Ohio State", "Penn State", false},
		{"Ohio State", "Michigan", "Michigan", "Michigan", false},
	}

	for _, tc := range tests {
		got := SameTeamPair(tc.a1, tc.a2, tc.b1, tc.b2)
		if got != tc.expected {
			t.Errorf("SameTeamPair(%q, %q, %q, %q) = %t, expected %t",
				tc.a1, tc.a2, tc.b1, tc.b2, got, tc.expected)
		}
	}
}
