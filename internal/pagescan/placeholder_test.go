package pagescan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/multicourt/vbl-scanner/internal/pagescan"
)

func TestIsPlaceholder(t *testing.T) {
	placeholders := []string{
		"", "  ", "TBD", "tba", "Team A", "team b", "Bye",
		"Match 3 Winner", "match 12 loser", "Winner of 4", "Loser 2",
	}
	for _, name := range placeholders {
		assert.True(t, pagescan.IsPlaceholder(name), "expected placeholder: %q", name)
	}

	real := []string{
		"Smith / Jones", "Lee / Park", "Team Awesome", "Winner Take All VBC",
	}
	for _, name := range real {
		assert.False(t, pagescan.IsPlaceholder(name), "expected real team: %q", name)
	}
}

func TestHasRealTeams(t *testing.T) {
	assert.True(t, pagescan.HasRealTeams("Smith / Jones", "Lee / Park"))
	assert.False(t, pagescan.HasRealTeams("Smith / Jones", "TBD"))
	assert.False(t, pagescan.HasRealTeams("", ""))
}

func TestCleanTeamName(t *testing.T) {
	assert.Equal(t, "Smith / Jones", pagescan.CleanTeamName("Smith / Jones (seed 4)"))
	assert.Equal(t, "Lee / Park", pagescan.CleanTeamName("  Lee   /  Park "))
	assert.Equal(t, "Solo", pagescan.CleanTeamName("Solo (club) (2)"))
	assert.Equal(t, "", pagescan.CleanTeamName("(only parens)"))
}
