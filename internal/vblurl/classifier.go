// Package vblurl classifies VolleyballLife tournament URLs into their
// component ids. Supported shapes:
//
//	/event/{tournId}/division/{divId}/round/{dayId}/brackets
//	/event/{tournId}/division/{divId}/round/{dayId}/pools
//	/event/{tournId}/division/{divId}/round/{dayId}/pools/{poolId}
package vblurl

import (
	"regexp"
	"strconv"
	"strings"
)

// URLParts holds the ids extracted from a tournament URL. A zero id means the
// segment was absent. PoolID zero on a pool URL means "all pools in this
// division/day".
type URLParts struct {
	TournamentID int
	DivisionID   int
	DayID        int
	IsBracket    bool
	IsPool       bool
	PoolID       int
}

var (
	reEvent    = regexp.MustCompile(`/event/(\d+)`)
	reDivision = regexp.MustCompile(`/division/(\d+)`)
	reRound    = regexp.MustCompile(`/round/(\d+)`)
	rePools    = regexp.MustCompile(`/pools/(\d+)`)
)

// Parse extracts tournament, division and day ids from a URL and classifies
// it as bracket or pool play. Returns nil when no division id can be found:
// the division is the one segment every downstream fetch needs, so a URL
// without it cannot be scanned and the caller should abort or fall back.
func Parse(url string) *URLParts {
	parts := &URLParts{
		TournamentID: firstInt(reEvent, url),
		DivisionID:   firstInt(reDivision, url),
		DayID:        firstInt(reRound, url),
	}

	lower := strings.ToLower(url)
	if strings.Contains(lower, "bracket") || strings.Contains(lower, "playoff") {
		parts.IsBracket = true
	} else if strings.Contains(lower, "pool") {
		parts.IsPool = true
		parts.PoolID = firstInt(rePools, url)
	}

	if parts.DivisionID == 0 {
		return nil
	}
	return parts
}

func firstInt(re *regexp.Regexp, s string) int {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
