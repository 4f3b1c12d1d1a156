package schedule

import (
	"sort"
	"strings"
)

// DedupeByTeams removes matches that pair the same two teams as an earlier
// entry, keeping the first occurrence. The signature is order-insensitive,
// so "A vs B" and "B vs A" collapse. Records missing either team name are
// never treated as duplicates of each other.
func DedupeByTeams(matches []MatchRecord) []MatchRecord {
	seen := make(map[string]bool, len(matches))
	out := make([]MatchRecord, 0, len(matches))
	for _, m := range matches {
		sig, ok := teamSignature(m)
		if ok {
			if seen[sig] {
				continue
			}
			seen[sig] = true
		}
		out = append(out, m)
	}
	return out
}

func teamSignature(m MatchRecord) (string, bool) {
	if m.Team1 == nil || m.Team2 == nil {
		return "", false
	}
	names := []string{*m.Team1, *m.Team2}
	sort.Strings(names)
	return strings.Join(names, "|"), true
}
