package format

import (
	"fmt"
	"strings"
)

// GameRule is one game's scoring target as carried by the platform payload:
// play to To points, capped at Cap (nil for uncapped).
type GameRule struct {
	To  int
	Cap *int
}

// FromGameRules derives the ScoringFormat for a bracket or pool from its
// per-game settings list. With a single configured game sets-to-win is 1,
// otherwise ceil(n/2), which assumes majority play over the configured games.
func FromGameRules(rules []GameRule) ScoringFormat {
	f := ScoringFormat{SetsToWin: 1, PointsPerSet: 21}
	if len(rules) > 1 {
		f.SetsToWin = (len(rules) + 1) / 2
	}
	if len(rules) > 0 {
		if rules[0].To > 0 {
			f.PointsPerSet = rules[0].To
		}
		// The payload uses cap=0 for "no cap"; translate to nil here at
		// the boundary so the rest of the pipeline has one convention.
		if rules[0].Cap != nil && *rules[0].Cap > 0 {
			cap := *rules[0].Cap
			f.PointCap = &cap
		}
	}
	return f
}

// BuildText synthesizes a human-readable format description from per-game
// settings, mirroring the phrasing the tournament platform itself uses.
func BuildText(rules []GameRule) string {
	if len(rules) == 0 {
		return ""
	}

	parts := make([]string, 0, len(rules))
	for _, r := range rules {
		if r.Cap != nil && *r.Cap > 0 {
			parts = append(parts, fmt.Sprintf("to %d with a %d point cap", r.To, *r.Cap))
		} else {
			parts = append(parts, fmt.Sprintf("to %d with no cap", r.To))
		}
	}

	if len(rules) == 1 {
		return "1 set " + parts[0]
	}

	uniform := true
	for _, p := range parts[1:] {
		if p != parts[0] {
			uniform = false
			break
		}
	}
	if uniform {
		return fmt.Sprintf("Best of %d, all sets %s", len(rules), parts[0])
	}

	itemized := make([]string, len(parts))
	for i, p := range parts {
		itemized[i] = fmt.Sprintf("set %d %s", i+1, p)
	}
	return fmt.Sprintf("Best of %d: %s", len(rules), strings.Join(itemized, ", "))
}
