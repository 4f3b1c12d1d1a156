package pagescan

import (
	"regexp"
	"strings"
)

var rePlaceholderRef = regexp.MustCompile(`(?i)^(?:match\s*\d+\s*(?:winner|loser)|winner\s*(?:of\s*)?\d*|loser\s*(?:of\s*)?\d*)$`)

// IsPlaceholder reports whether a team name is a stand-in rather than a real
// team: empty, "TBD", generic slot labels, or bracket references like
// "Match 3 Winner".
func IsPlaceholder(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case "", "tbd", "tba", "team a", "team b", "home", "away", "bye":
		return true
	}
	return rePlaceholderRef.MatchString(n)
}

// HasRealTeams reports whether both names are actual teams.
func HasRealTeams(team1, team2 string) bool {
	return !IsPlaceholder(team1) && !IsPlaceholder(team2)
}
