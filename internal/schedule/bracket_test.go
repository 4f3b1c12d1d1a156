package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multicourt/vbl-scanner/internal/schedule"
	"github.com/multicourt/vbl-scanner/internal/vbl"
)

func TestExtractBracketMatches(t *testing.T) {
	dir := testDirectory()
	day := vbl.Day{
		ID:          5,
		BracketPlay: true,
		Brackets: []vbl.Bracket{
			{
				ID:   9,
				Name: "Gold",
				Type: "SingleElimination",
				WinnersMatchSettings: vbl.MatchSettings{
					GameSettings: []vbl.GameSetting{{To: 28, Cap: intPtr(0)}},
				},
				Matches: []vbl.Match{
					{ID: 1, HomeTeam: &vbl.MatchTeam{TeamID: 101}, AwayTeam: &vbl.MatchTeam{TeamID: 102}},
					{ID: 2, IsBye: true},
					{ID: 3, HomeTeam: &vbl.MatchTeam{TeamID: 102}},
				},
			},
		},
	}

	recs, detail, formatText := schedule.ExtractBracketMatches(day, dir)

	assert.Equal(t, "Single Elim", detail)
	assert.Equal(t, "1 set to 28 with no cap", formatText)

	// Bye produces no record at all.
	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.Equal(t, schedule.MatchTypeBracket, rec.MatchType)
		assert.Equal(t, "Single Elim", rec.TypeDetail)
		assert.Equal(t, 1, rec.SetsToWin)
		assert.Equal(t, 28, rec.PointsPerSet)
		assert.Nil(t, rec.PointCap)
	}
}

func TestExtractBracketMatches_DetailFallsBackToName(t *testing.T) {
	dir := testDirectory()
	day := vbl.Day{
		Brackets: []vbl.Bracket{
			{Name: "Contenders", Type: "Custom", Matches: []vbl.Match{{ID: 1}}},
		},
	}

	_, detail, _ := schedule.ExtractBracketMatches(day, dir)
	assert.Equal(t, "Contenders", detail)
}

func TestExtractBracketMatches_DoubleElim(t *testing.T) {
	dir := testDirectory()
	day := vbl.Day{
		Brackets: []vbl.Bracket{
			{Type: "DoubleElimination", Matches: []vbl.Match{{ID: 1}}},
		},
	}

	_, detail, _ := schedule.ExtractBracketMatches(day, dir)
	assert.Equal(t, "Double Elim", detail)
}

func TestExtractBracketMatches_PerBracketFormats(t *testing.T) {
	dir := testDirectory()
	day := vbl.Day{
		Brackets: []vbl.Bracket{
			{
				Type:                 "SingleElimination",
				WinnersMatchSettings: vbl.MatchSettings{GameSettings: []vbl.GameSetting{{To: 21}, {To: 21}, {To: 15}}},
				Matches:              []vbl.Match{{ID: 1}},
			},
			{
				Type:                 "SingleElimination",
				WinnersMatchSettings: vbl.MatchSettings{GameSettings: []vbl.GameSetting{{To: 28}}},
				Matches:              []vbl.Match{{ID: 2}},
			},
		},
	}

	recs, _, _ := schedule.ExtractBracketMatches(day, dir)
	require.Len(t, recs, 2)
	assert.Equal(t, 2, recs[0].SetsToWin)
	assert.Equal(t, 21, recs[0].PointsPerSet)
	assert.Equal(t, 1, recs[1].SetsToWin)
	assert.Equal(t, 28, recs[1].PointsPerSet)
}
