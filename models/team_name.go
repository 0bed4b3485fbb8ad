package models

import (
	"strings"
	"unicode"
)

// NormalizeTeamName canonicalizes a team name for equality comparison.
// Spreads, vendor score feeds, and hand-entered picks spell the same team
// differently ("Ohio State", "Ohio St.", "ohio state"), so every comparison
// in the matcher goes through this single function.
//
// Rules: keep only ASCII letters and digits, lowercase, and collapse a
// trailing "state" to "st". The function is pure and idempotent.
func NormalizeTeamName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(unicode.ToLower(r))
		}
	}

	n := b.String()
	if strings.HasSuffix(n, "state") {
		n = strings.TrimSuffix(n, "state") + "st"
	}
	return n
}

// SameTeamPair reports whether the two name pairs refer to the same two
// teams, ignoring order, punctuation, and State/St spelling.
func SameTeamPair(a1, a2, b1, b2 string) bool {
	n1, n2 := NormalizeTeamName(a1), NormalizeTeamName(a2)
	m1, m2 := NormalizeTeamName(b1), NormalizeTeamName(b2)
	return (n1 == m1 && n2 == m2) || (n1 == m2 && n2 == m1)
}
