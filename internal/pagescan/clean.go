package pagescan

import (
	"regexp"
	"strings"
)

var (
	reParenthetical = regexp.MustCompile(`\([^)]*\)`)
	reSpaceRun      = regexp.MustCompile(`\s+`)
)

// CleanTeamName strips parenthetical annotations (club tags, seed notes)
// from a scraped name and collapses the leftover whitespace.
func CleanTeamName(name string) string {
	name = reParenthetical.ReplaceAllString(name, " ")
	name = reSpaceRun.ReplaceAllString(name, " ")
	return strings.TrimSpace(name)
}
