package schedule

import (
	"github.com/multicourt/vbl-scanner/internal/format"
	"github.com/multicourt/vbl-scanner/internal/vbl"
)

// ExtractPoolMatches walks every pool of a day, across all flights, and
// builds records for playable pool matches. When poolID is non-zero only the
// matching pool is extracted; zero means all pools.
//
// Indices run as a single counter across pools, so a day's pool matches are
// numbered continuously even before the final re-index.
//
// The last pool's detail label and format text are returned as the
// day-level values.
func ExtractPoolMatches(day vbl.Day, dir TeamDirectory, poolID int) ([]MatchRecord, string, string) {
	var out []MatchRecord
	detail := "Pool Play"
	formatText := ""
	idx := 0

	for _, flight := range day.Flights {
		for _, pool := range flight.Pools {
			if poolID != 0 && pool.ID != poolID {
				continue
			}

			name := pool.Name
			if name == "" {
				name = "?"
			}
			detail = "Pool " + name

			// Pool-local team ids translate to division-wide ids.
			poolTeams := make(map[int]int, len(pool.Teams))
			for _, pt := range pool.Teams {
				poolTeams[pt.ID] = pt.TeamID
			}

			f, text := poolFormat(pool.Matches)
			formatText = text

			for _, m := range pool.Matches {
				m.HomeTeam = resolvePoolSide(m.HomeTeam, dir, poolTeams)
				m.AwayTeam = resolvePoolSide(m.AwayTeam, dir, poolTeams)

				rec, ok := BuildRecord(m, dir, f, text, MatchTypePool, detail, false, idx)
				if !ok {
					continue
				}
				out = append(out, rec)
				idx++
			}
		}
	}
	return out, detail, formatText
}

// poolFormat derives the pool's scoring format from the first playable
// match's game settings. Pools schedule every match under one format, so
// one sample describes them all.
func poolFormat(matches []vbl.Match) (format.ScoringFormat, string) {
	for _, m := range matches {
		if m.ID == 0 || m.IsBye {
			continue
		}
		rules := gameRules(m.Games)
		return format.FromGameRules(rules), format.BuildText(rules)
	}
	return format.FromGameRules(nil), ""
}

// resolvePoolSide rewrites a side whose team id is pool-local. Ids already
// present in the directory pass through untouched; otherwise the pool's
// translation table is consulted. An id neither knows stays as-is and the
// record simply gets no name.
func resolvePoolSide(side *vbl.MatchTeam, dir TeamDirectory, poolTeams map[int]int) *vbl.MatchTeam {
	if side == nil {
		return nil
	}
	if _, ok := dir[side.TeamID]; ok {
		return side
	}
	globalID, ok := poolTeams[side.TeamID]
	if !ok {
		return side
	}
	resolved := *side
	resolved.TeamID = globalID
	return &resolved
}
