package pagescan_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multicourt/vbl-scanner/internal/format"
	"github.com/multicourt/vbl-scanner/internal/pagescan"
	"github.com/multicourt/vbl-scanner/internal/schedule"
)

func TestExtractMatches_FullCard(t *testing.T) {
	blocks := []pagescan.Block{
		{
			Text:   "Match 4\nCourt 2\nSat 9:00 AM\nAnn Smith / Bo Jones\nCara Lee / Dan Park",
			APIURL: "https://api.volleyballlife.com/api/v1.0/matches/77/vmix?bracket=true",
		},
	}

	f := format.ScoringFormat{SetsToWin: 1, PointsPerSet: 28}
	recs := pagescan.ExtractMatches(blocks, f, "1 set to 28 with no cap", schedule.MatchTypeBracket, "Bracket")

	require.Len(t, recs, 1)
	rec := recs[0]

	require.NotNil(t, rec.Team1)
	assert.Equal(t, "Ann Smith / Bo Jones", *rec.Team1)
	require.NotNil(t, rec.Team2)
	assert.Equal(t, "Cara Lee / Dan Park", *rec.Team2)

	require.NotNil(t, rec.StartTime)
	assert.Equal(t, "9:00AM", *rec.StartTime)
	require.NotNil(t, rec.StartDate)
	assert.Equal(t, "Sat", *rec.StartDate)
	require.NotNil(t, rec.Court)
	assert.Equal(t, "2", *rec.Court)
	require.NotNil(t, rec.MatchNumber)
	assert.Equal(t, "4", *rec.MatchNumber)
	require.NotNil(t, rec.APIURL)
	assert.Contains(t, *rec.APIURL, "/77/vmix")

	assert.Equal(t, 1, rec.SetsToWin)
	assert.Equal(t, 28, rec.PointsPerSet)
	require.NotNil(t, rec.FormatText)
	assert.Equal(t, schedule.MatchTypeBracket, rec.MatchType)
}

func TestExtractMatches_VersusLineFallback(t *testing.T) {
	blocks := []pagescan.Block{
		{Text: "Alpha vs Beta\nCourt 1"},
	}

	recs := pagescan.ExtractMatches(blocks, format.Default(), "", schedule.MatchTypePool, "Pool Play")
	require.Len(t, recs, 1)
	require.NotNil(t, recs[0].Team1)
	assert.Equal(t, "Alpha", *recs[0].Team1)
	require.NotNil(t, recs[0].Team2)
	assert.Equal(t, "Beta", *recs[0].Team2)
}

func TestExtractMatches_SlotReferenceRecovery(t *testing.T) {
	blocks := []pagescan.Block{
		{Text: "Match 1 Winner\nMatch 2 Winner\nCourt 3"},
	}

	recs := pagescan.ExtractMatches(blocks, format.Default(), "", schedule.MatchTypeBracket, "Bracket")
	require.Len(t, recs, 1)
	require.NotNil(t, recs[0].Team1)
	assert.Equal(t, "Match 1 Winner", *recs[0].Team1)
	require.NotNil(t, recs[0].Team2)
	assert.Equal(t, "Match 2 Winner", *recs[0].Team2)
}

func TestExtractMatches_PlaceholderSidesStayUnset(t *testing.T) {
	blocks := []pagescan.Block{
		{Text: "TBD vs Smith / Jones\nCourt 2"},
	}

	recs := pagescan.ExtractMatches(blocks, format.Default(), "", schedule.MatchTypeBracket, "Bracket")
	require.Len(t, recs, 1)
	assert.Nil(t, recs[0].Team1)
	require.NotNil(t, recs[0].Team2)
	assert.Equal(t, "Smith / Jones", *recs[0].Team2)
}

func TestExtractMatches_AllPlaceholderBlocksDropped(t *testing.T) {
	blocks := []pagescan.Block{
		{Text: "TBD vs TBA"},
		{Text: "Home vs Away"},
		{Text: "Alpha vs Beta"},
	}

	recs := pagescan.ExtractMatches(blocks, format.Default(), "", schedule.MatchTypePool, "Pool Play")
	require.Len(t, recs, 1)
	assert.Equal(t, "Alpha", *recs[0].Team1)
}

func TestExtractMatches_DropsTeamlessBlocks(t *testing.T) {
	blocks := []pagescan.Block{
		{Text: "Court assignments will be posted soon"},
		{Text: "Alpha vs Beta"},
	}

	recs := pagescan.ExtractMatches(blocks, format.Default(), "", schedule.MatchTypePool, "Pool Play")
	require.Len(t, recs, 1)
	assert.Equal(t, 0, recs[0].Index)
}

func TestExtractMatches_TimeNotSwallowedByScores(t *testing.T) {
	// "21:15" style score runs must not parse as a clock time.
	blocks := []pagescan.Block{
		{Text: "Alpha vs Beta\nFinal 21:15"},
	}

	recs := pagescan.ExtractMatches(blocks, format.Default(), "", schedule.MatchTypePool, "Pool Play")
	require.Len(t, recs, 1)
	assert.Nil(t, recs[0].StartTime)
}

func TestExtractMatches_ParentheticalsCleaned(t *testing.T) {
	blocks := []pagescan.Block{
		{Text: "Alpha (3) vs Beta (12)"},
	}

	recs := pagescan.ExtractMatches(blocks, format.Default(), "", schedule.MatchTypePool, "Pool Play")
	require.Len(t, recs, 1)
	assert.Equal(t, "Alpha", *recs[0].Team1)
	assert.Equal(t, "Beta", *recs[0].Team2)
}
