package format

import (
	"regexp"
	"strconv"
	"strings"
)

// ScoringFormat is the resolved scoring configuration for one bracket or pool.
// A nil PointCap means uncapped play (win by 2).
type ScoringFormat struct {
	SetsToWin    int
	PointsPerSet int
	PointCap     *int
}

// Default returns the standard beach volleyball format: best of 3, sets to 21, no cap.
func Default() ScoringFormat {
	return ScoringFormat{SetsToWin: 2, PointsPerSet: 21}
}

// Parse turns a free-text scoring description from a tournament page into a
// ScoringFormat. Format strings are authored inconsistently by tournament
// directors ("All matches are 1 game to 28 with no cap", "Match Play (best 2
// out of 3). Sets 1 & 2 to 21 ..."), so parsing degrades to Default() rather
// than failing: a wrong guess is recoverable downstream, a crash is not.
func Parse(text string) ScoringFormat {
	if strings.TrimSpace(text) == "" {
		return Default()
	}

	normalized := strings.ToLower(strings.Join(strings.Fields(text), " "))

	return ScoringFormat{
		SetsToWin:    parseSetsToWin(normalized),
		PointsPerSet: parsePointsPerSet(normalized),
		PointCap:     parsePointCap(normalized),
	}
}

// Each field is resolved by an ordered rule cascade: rules are tried top to
// bottom and the first hit wins. The ordering is load-bearing, e.g. "Best of 3
// sets to 25" must resolve sets via the "best of" rule (2) and never via the
// generic "sets to" rule.

var (
	reOneGame     = regexp.MustCompile(`\b1 ?game\b`)
	reMatchPlay   = regexp.MustCompile(`match ?play`)
	reBestXOutOfY = regexp.MustCompile(`best (\d+) out of (\d+)`)
	reBestOfN     = regexp.MustCompile(`best of (\d+)`)
	reBareSets    = regexp.MustCompile(`(\d+) ?sets?\b( to)?`)
	reSetsToN     = regexp.MustCompile(`(\d+) ?sets? to \d+`)
)

func parseSetsToWin(text string) int {
	if reOneGame.MatchString(text) {
		return 1
	}
	if reMatchPlay.MatchString(text) {
		return 2
	}
	if m := reBestXOutOfY.FindStringSubmatch(text); m != nil {
		return atoi(m[1])
	}
	if m := reBestOfN.FindStringSubmatch(text); m != nil {
		// "best of 3" means 3 total games, 2 to win.
		return atoi(m[1])/2 + 1
	}
	// Bare "N set(s)" counts only when not immediately followed by "to";
	// "N sets to M" is handled by the weaker rule below.
	if m := reBareSets.FindStringSubmatch(text); m != nil && m[2] == "" {
		return setsToWinFromCount(atoi(m[1]))
	}
	if m := reSetsToN.FindStringSubmatch(text); m != nil {
		return setsToWinFromCount(atoi(m[1]))
	}
	return 2
}

// setsToWinFromCount maps a declared set count to sets-to-win: "1 set" and
// "2 sets" describe the win target directly, three or more describe the total
// played ("5 sets" -> 3 to win).
func setsToWinFromCount(n int) int {
	if n <= 2 {
		if n < 1 {
			return 2
		}
		return n
	}
	return n/2 + 1
}

var (
	reGameTo     = regexp.MustCompile(`games? to (\d+)`)
	reDualSetsTo = regexp.MustCompile(`sets? \d+ ?(?:&|and) ?\d+ to (\d+)`)
	reSetTo      = regexp.MustCompile(`set ?\d* to (\d+)`)
	reGenericTo  = regexp.MustCompile(`\bto (\d+)\b`)
	reTwoDigit   = regexp.MustCompile(`\b(\d{2})\b`)
)

// canonicalPoints are the set targets that actually occur on tour; used as a
// last-resort filter when scanning bare numbers.
var canonicalPoints = map[int]bool{15: true, 21: true, 25: true, 28: true}

func parsePointsPerSet(text string) int {
	if m := reGameTo.FindStringSubmatch(text); m != nil {
		return atoi(m[1])
	}
	if m := reDualSetsTo.FindStringSubmatch(text); m != nil {
		return atoi(m[1])
	}
	if m := reSetTo.FindStringSubmatch(text); m != nil {
		return atoi(m[1])
	}
	if m := reGenericTo.FindStringSubmatch(text); m != nil {
		if n := atoi(m[1]); n >= 10 && n <= 35 {
			return n
		}
	}
	for _, m := range reTwoDigit.FindAllStringSubmatch(text, -1) {
		if n := atoi(m[1]); canonicalPoints[n] {
			return n
		}
	}
	return 21
}

var (
	reNoCap    = regexp.MustCompile(`\bno ?cap\b`)
	reWinBy2   = regexp.MustCompile(`win by 2`)
	reCapAt    = regexp.MustCompile(`cap(?:ped)? (?:at |of )?(\d+)`)
	rePointCap = regexp.MustCompile(`(\d+) ?(?:point|pt)s? ?cap`)
)

func parsePointCap(text string) *int {
	if reNoCap.MatchString(text) || reWinBy2.MatchString(text) {
		return nil
	}
	if m := reCapAt.FindStringSubmatch(text); m != nil {
		n := atoi(m[1])
		return &n
	}
	if m := rePointCap.FindStringSubmatch(text); m != nil {
		n := atoi(m[1])
		return &n
	}
	return nil
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
