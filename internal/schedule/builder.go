package schedule

import (
	"fmt"
	"strconv"

	"github.com/multicourt/vbl-scanner/internal/format"
	"github.com/multicourt/vbl-scanner/internal/vbl"
)

// BuildRecord converts one raw match into its canonical record. The boolean
// return is false for matches that must be skipped entirely: placeholder
// slots (id 0) and byes produce no record at all rather than a blank one.
//
// bracket selects the numbering policy and the vmix URL flavor. idx is the
// caller's local position for this match, used as the bracket numbering
// fallback and stored as the provisional index.
func BuildRecord(m vbl.Match, dir TeamDirectory, f format.ScoringFormat, formatText, matchType, typeDetail string, bracket bool, idx int) (MatchRecord, bool) {
	if m.ID == 0 || m.IsBye {
		return MatchRecord{}, false
	}

	rec := MatchRecord{
		Index:        idx,
		MatchType:    matchType,
		TypeDetail:   typeDetail,
		SetsToWin:    f.SetsToWin,
		PointsPerSet: f.PointsPerSet,
		PointCap:     f.PointCap,
	}

	if formatText != "" {
		rec.FormatText = &formatText
	}

	rec.Team1, rec.Team1Seed = sideInfo(m.HomeTeam, dir)
	rec.Team2, rec.Team2Seed = sideInfo(m.AwayTeam, dir)

	// Crossover slots carry their label ("Pool A 2nd") in awayMap instead
	// of a resolved team.
	if rec.Team2 == nil && !m.AwayMap.IsZero() {
		label := m.AwayMap.String()
		rec.Team2 = &label
	}

	rec.MatchNumber = matchNumber(m, bracket, idx)

	if !m.Court.IsZero() {
		court := m.Court.String()
		rec.Court = &court
	}

	rec.StartTime = FormatClock(m.StartTime)
	rec.StartDate = FormatWeekday(m.StartTime)

	apiURL := fmt.Sprintf("%s/%d/vmix?bracket=%t", vbl.VMixBase, m.ID, bracket)
	rec.APIURL = &apiURL

	return rec, true
}

// sideInfo resolves one side of a match to its display name and seed string.
// The directory name is used verbatim. Seeds come only from the match slot,
// never from the roster: a team's division seed is not its position in this
// round.
func sideInfo(side *vbl.MatchTeam, dir TeamDirectory) (*string, *string) {
	if side == nil {
		return nil, nil
	}
	var name *string
	if info, ok := dir[side.TeamID]; ok {
		n := info.Name
		name = &n
	}
	var seed *string
	if side.Seed != nil && *side.Seed != 0 {
		s := strconv.Itoa(*side.Seed)
		seed = &s
	}
	return name, seed
}

// matchNumber picks the display number. Bracket matches always get one,
// falling back to the local position. Pool matches only carry a number when
// the payload provides it.
func matchNumber(m vbl.Match, bracket bool, idx int) *string {
	if bracket {
		n := idx + 1
		if m.DisplayNumber != nil && *m.DisplayNumber != 0 {
			n = *m.DisplayNumber
		} else if m.Number != nil && *m.Number != 0 {
			n = *m.Number
		}
		s := strconv.Itoa(n)
		return &s
	}
	if m.Number != nil && *m.Number != 0 {
		s := strconv.Itoa(*m.Number)
		return &s
	}
	return nil
}
