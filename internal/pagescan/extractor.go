package pagescan

import (
	"regexp"
	"strings"

	"github.com/multicourt/vbl-scanner/internal/format"
	"github.com/multicourt/vbl-scanner/internal/schedule"
)

// Text patterns for one match card. Pages render doubles teams as
// "First Last / First Last", so a pair of those is the strongest signal.
// Weaker fallbacks handle "A vs B" lines and placeholder slots.
var (
	rePairTeam = regexp.MustCompile(`[A-Z][a-z]+(?:[-'][A-Za-z]+)?\s+[A-Z][a-z]+(?:[-'][A-Za-z]+)?\s*/\s*[A-Z][a-z]+(?:[-'][A-Za-z]+)?\s+[A-Z][a-z]+(?:[-'][A-Za-z]+)?`)
	reVersus   = regexp.MustCompile(`(?im)^\s*(.{2,60}?)\s+vs\.?\s+(.{2,60}?)\s*$`)
	reSlotRef  = regexp.MustCompile(`(?i)\bmatch\s*(\d+)\s*(winner|loser)\b`)

	// RE2 has no lookbehind, so the "not preceded by a digit" guard is a
	// non-capturing leading alternative instead.
	reClockTime = regexp.MustCompile(`(?i)(?:^|[^0-9])((?:1[0-2]|[1-9]):[0-5][0-9]\s*(?:AM|PM))`)

	reDayName     = regexp.MustCompile(`(?i)\b(Mon|Tue|Wed|Thu|Fri|Sat|Sun)(?:day|sday|nesday|rsday|urday)?\b`)
	reNumericDate = regexp.MustCompile(`\b(\d{1,2}/\d{1,2}(?:/\d{2,4})?)\b`)

	reCourt       = regexp.MustCompile(`(?i)\bcourt:?\s*#?\s*([A-Za-z0-9]+(?:\s*-\s*[A-Za-z0-9]+)?)`)
	reMatchNumber = regexp.MustCompile(`(?i)\bmatch\s*#?\s*(\d+)\b`)
)

// ExtractMatches parses match card blocks into canonical records. Every
// record inherits the caller's scoring format and labels; page text never
// carries per-match formats. Blocks with no recognizable teams are dropped.
func ExtractMatches(blocks []Block, f format.ScoringFormat, formatText, matchType, typeDetail string) []schedule.MatchRecord {
	var out []schedule.MatchRecord
	for _, block := range blocks {
		rec, ok := extractBlock(block, f, formatText, matchType, typeDetail, len(out))
		if !ok {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func extractBlock(block Block, f format.ScoringFormat, formatText, matchType, typeDetail string, idx int) (schedule.MatchRecord, bool) {
	team1, team2 := extractTeams(block.Text)
	if team1 == "" && team2 == "" {
		return schedule.MatchRecord{}, false
	}

	rec := schedule.MatchRecord{
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
	if team1 != "" {
		rec.Team1 = &team1
	}
	if team2 != "" {
		rec.Team2 = &team2
	}

	if m := reClockTime.FindStringSubmatch(block.Text); m != nil {
		t := normalizeClock(m[1])
		rec.StartTime = &t
	}
	if m := reDayName.FindStringSubmatch(block.Text); m != nil {
		d := normalizeDay(m[1])
		rec.StartDate = &d
	} else if m := reNumericDate.FindStringSubmatch(block.Text); m != nil {
		d := m[1]
		rec.StartDate = &d
	}
	if m := reCourt.FindStringSubmatch(block.Text); m != nil {
		c := cleanCourt(m[1])
		if c != "" {
			rec.Court = &c
		}
	}
	if m := reMatchNumber.FindStringSubmatch(block.Text); m != nil {
		n := m[1]
		rec.MatchNumber = &n
	}
	if block.APIURL != "" {
		u := block.APIURL
		rec.APIURL = &u
	}

	return rec, true
}

// extractTeams tries the recognizers in order of confidence: two doubles
// pairs, then a "vs" line, then bracket slot references for matches whose
// opponents are not decided yet.
func extractTeams(text string) (string, string) {
	if pairs := rePairTeam.FindAllString(text, 2); len(pairs) == 2 {
		return CleanTeamName(pairs[0]), CleanTeamName(pairs[1])
	}
	if m := reVersus.FindStringSubmatch(text); m != nil {
		t1 := CleanTeamName(m[1])
		t2 := CleanTeamName(m[2])
		// "TBD vs Smith / Jones" names one real side; the placeholder
		// side stays unset rather than leaking "TBD" as a team name.
		if IsPlaceholder(t1) {
			t1 = ""
		}
		if IsPlaceholder(t2) {
			t2 = ""
		}
		if t1 != "" || t2 != "" {
			return t1, t2
		}
	}
	if refs := reSlotRef.FindAllStringSubmatch(text, 2); len(refs) == 2 {
		return slotLabel(refs[0]), slotLabel(refs[1])
	}
	return "", ""
}

func slotLabel(m []string) string {
	role := strings.ToLower(m[2])
	return "Match " + m[1] + " " + strings.ToUpper(role[:1]) + role[1:]
}

// normalizeClock rewrites a scraped time to the "9:00AM" shape: no space
// before the meridiem, meridiem uppercased.
func normalizeClock(s string) string {
	s = reSpaceRun.ReplaceAllString(s, "")
	return strings.ToUpper(s)
}

func normalizeDay(abbrev string) string {
	abbrev = strings.ToLower(abbrev)
	return strings.ToUpper(abbrev[:1]) + abbrev[1:]
}

// cleanCourt drops page keywords the loose court regex can swallow when the
// card runs court and time together.
func cleanCourt(c string) string {
	c = strings.TrimSpace(c)
	for _, kw := range []string{"at", "on", "time"} {
		if strings.EqualFold(c, kw) {
			return ""
		}
	}
	return c
}
