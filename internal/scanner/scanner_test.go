package scanner_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/multicourt/vbl-scanner/internal/history"
	"github.com/multicourt/vbl-scanner/internal/metrics"
	"github.com/multicourt/vbl-scanner/internal/pagescan"
	"github.com/multicourt/vbl-scanner/internal/scanner"
	"github.com/multicourt/vbl-scanner/internal/schedule"
	"github.com/multicourt/vbl-scanner/internal/vbl"
)

const bracketURL = "https://volleyballlife.com/event/1/division/2/round/5/brackets"
const poolURL = "https://volleyballlife.com/event/1/division/2/round/5/pools"

func intPtr(n int) *int { return &n }

func bracketHydrate() *vbl.Hydrate {
	return &vbl.Hydrate{
		Teams: []vbl.Team{
			{ID: 101, Name: "Smith / Jones"},
			{ID: 102, Name: "Lee / Park"},
		},
		Days: []vbl.Day{
			{
				ID:          5,
				BracketPlay: true,
				Brackets: []vbl.Bracket{
					{
						Type:                 "SingleElimination",
						WinnersMatchSettings: vbl.MatchSettings{GameSettings: []vbl.GameSetting{{To: 28}}},
						Matches: []vbl.Match{
							{ID: 1, DisplayNumber: intPtr(1), HomeTeam: &vbl.MatchTeam{TeamID: 101}, AwayTeam: &vbl.MatchTeam{TeamID: 102}},
							{ID: 2, IsBye: true},
							{ID: 3, HomeTeam: &vbl.MatchTeam{TeamID: 102}},
						},
					},
				},
			},
		},
	}
}

func TestScan_UnclassifiableURL(t *testing.T) {
	hydrate := vbl.NewMockClient()
	m := metrics.NewMock()
	sc := scanner.New(hydrate, scanner.WithMetrics(m))

	result := sc.Scan(context.Background(), "https://example.com/not-a-tournament")

	assert.Equal(t, schedule.StatusError, result.Status)
	require.NotNil(t, result.Error)
	assert.Empty(t, result.Matches)
	assert.Empty(t, hydrate.GetDivisionHydrateCalls)
	assert.Equal(t, 1, m.ScanErrors())
}

func TestScan_BracketDay(t *testing.T) {
	hydrate := vbl.NewMockClient()
	hydrate.GetDivisionHydrateFunc = func(ctx context.Context, divisionID int) (*vbl.Hydrate, error) {
		return bracketHydrate(), nil
	}
	m := metrics.NewMock()
	sc := scanner.New(hydrate, scanner.WithMetrics(m))

	result := sc.Scan(context.Background(), bracketURL)

	assert.Equal(t, schedule.StatusSuccess, result.Status)
	assert.Equal(t, schedule.MatchTypeBracket, result.MatchType)
	assert.Equal(t, "Single Elim", result.TypeDetail)
	require.Len(t, result.Matches, 2)
	for i, rec := range result.Matches {
		assert.Equal(t, i, rec.Index)
	}
	assert.Equal(t, []int{2}, hydrate.GetDivisionHydrateCalls)
	assert.Equal(t, 1, m.ScansTotal())
	assert.Equal(t, 2, m.MatchesExtracted())
	assert.Equal(t, 0, m.FallbackScans())
}

func mixedDayHydrate() *vbl.Hydrate {
	return &vbl.Hydrate{
		Teams: []vbl.Team{
			{ID: 101, Name: "Smith / Jones"},
			{ID: 102, Name: "Lee / Park"},
		},
		Days: []vbl.Day{
			{
				ID:          5,
				BracketPlay: true,
				PoolPlay:    true,
				Brackets: []vbl.Bracket{
					{
						Type: "SingleElimination",
						Matches: []vbl.Match{
							{ID: 1, HomeTeam: &vbl.MatchTeam{TeamID: 101}, AwayTeam: &vbl.MatchTeam{TeamID: 102}},
						},
					},
				},
				Flights: []vbl.Flight{
					{
						Pools: []vbl.Pool{
							{
								ID:   9,
								Name: "A",
								Matches: []vbl.Match{
									{ID: 10, HomeTeam: &vbl.MatchTeam{TeamID: 101}, AwayTeam: &vbl.MatchTeam{TeamID: 102}, Games: []vbl.GameSetting{{To: 21}}},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestScan_MixedDayYieldsBracketAndPool(t *testing.T) {
	hydrate := vbl.NewMockClient()
	hydrate.GetDivisionHydrateFunc = func(ctx context.Context, divisionID int) (*vbl.Hydrate, error) {
		return mixedDayHydrate(), nil
	}
	sc := scanner.New(hydrate)

	// The URL naming one mode must not suppress the day's other flag.
	for _, url := range []string{poolURL, bracketURL} {
		result := sc.Scan(context.Background(), url)

		assert.Equal(t, schedule.StatusSuccess, result.Status)
		require.Len(t, result.Matches, 2, "url %s", url)
		assert.Equal(t, schedule.MatchTypeBracket, result.Matches[0].MatchType)
		assert.Equal(t, schedule.MatchTypePool, result.Matches[1].MatchType)
		for i, rec := range result.Matches {
			assert.Equal(t, i, rec.Index)
		}
	}
}

func TestScan_DayFilter(t *testing.T) {
	hydrate := vbl.NewMockClient()
	hydrate.GetDivisionHydrateFunc = func(ctx context.Context, divisionID int) (*vbl.Hydrate, error) {
		return bracketHydrate(), nil
	}
	sc := scanner.New(hydrate)

	// Round 99 does not exist in the payload.
	result := sc.Scan(context.Background(), "https://volleyballlife.com/event/1/division/2/round/99/brackets")

	assert.Equal(t, schedule.StatusSuccess, result.Status)
	assert.Empty(t, result.Matches)
}

func TestScan_HydrateErrorWithoutFallback(t *testing.T) {
	hydrate := vbl.NewMockClient()
	hydrate.GetDivisionHydrateFunc = func(ctx context.Context, divisionID int) (*vbl.Hydrate, error) {
		return nil, errors.New("boom")
	}
	m := metrics.NewMock()
	sc := scanner.New(hydrate, scanner.WithMetrics(m))

	result := sc.Scan(context.Background(), bracketURL)

	assert.Equal(t, schedule.StatusError, result.Status)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "boom")
	assert.Equal(t, 1, m.ScanErrors())
}

func TestScan_HydrateErrorFallsBackToPage(t *testing.T) {
	hydrate := vbl.NewMockClient()
	hydrate.GetDivisionHydrateFunc = func(ctx context.Context, divisionID int) (*vbl.Hydrate, error) {
		return nil, errors.New("boom")
	}
	pages := pagescan.NewMockSource()
	pages.MatchBlocksFunc = func(ctx context.Context, url string) ([]pagescan.Block, error) {
		return []pagescan.Block{{Text: "Alpha vs Beta"}}, nil
	}
	pages.FormatTextFunc = func(ctx context.Context, url string) (string, error) {
		return "1 set to 28 with no cap", nil
	}
	m := metrics.NewMock()
	sc := scanner.New(hydrate, scanner.WithPageSource(pages), scanner.WithMetrics(m))

	result := sc.Scan(context.Background(), bracketURL)

	assert.Equal(t, schedule.StatusSuccess, result.Status)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, 28, result.Matches[0].PointsPerSet)
	assert.Equal(t, 1, m.FallbackScans())
	assert.Equal(t, schedule.MatchTypeBracket, result.MatchType)
}

func TestScan_EmptyStructuredResultFallsBackToPage(t *testing.T) {
	hydrate := vbl.NewMockClient()
	hydrate.GetDivisionHydrateFunc = func(ctx context.Context, divisionID int) (*vbl.Hydrate, error) {
		return &vbl.Hydrate{}, nil
	}
	pages := pagescan.NewMockSource()
	pages.MatchBlocksFunc = func(ctx context.Context, url string) ([]pagescan.Block, error) {
		return []pagescan.Block{
			{Text: "Alpha vs Beta"},
			{Text: "Beta vs Alpha"},
		}, nil
	}
	m := metrics.NewMock()
	sc := scanner.New(hydrate, scanner.WithPageSource(pages), scanner.WithMetrics(m))

	result := sc.Scan(context.Background(), poolURL)

	assert.Equal(t, schedule.StatusSuccess, result.Status)
	// Pool page mode collapses order-insensitive duplicate pairings.
	require.Len(t, result.Matches, 1)
	assert.Equal(t, 1, m.FallbackScans())
}

func TestScan_EmptyStructuredResultWithoutFallbackIsSuccess(t *testing.T) {
	hydrate := vbl.NewMockClient()
	hydrate.GetDivisionHydrateFunc = func(ctx context.Context, divisionID int) (*vbl.Hydrate, error) {
		return &vbl.Hydrate{}, nil
	}
	sc := scanner.New(hydrate)

	result := sc.Scan(context.Background(), bracketURL)

	assert.Equal(t, schedule.StatusSuccess, result.Status)
	assert.Empty(t, result.Matches)
	assert.Nil(t, result.Error)
}

func TestScan_PageScanErrorAfterHydrateError(t *testing.T) {
	hydrate := vbl.NewMockClient()
	hydrate.GetDivisionHydrateFunc = func(ctx context.Context, divisionID int) (*vbl.Hydrate, error) {
		return nil, errors.New("api down")
	}
	pages := pagescan.NewMockSource()
	pages.MatchBlocksFunc = func(ctx context.Context, url string) ([]pagescan.Block, error) {
		return nil, errors.New("page down")
	}
	sc := scanner.New(hydrate, scanner.WithPageSource(pages))

	result := sc.Scan(context.Background(), bracketURL)

	assert.Equal(t, schedule.StatusError, result.Status)
	require.NotNil(t, result.Error)
	assert.Contains(t, *result.Error, "page down")
}

func TestScan_PersistsToHistory(t *testing.T) {
	hydrate := vbl.NewMockClient()
	hydrate.GetDivisionHydrateFunc = func(ctx context.Context, divisionID int) (*vbl.Hydrate, error) {
		return bracketHydrate(), nil
	}
	store := history.NewMockStore()
	sc := scanner.New(hydrate, scanner.WithHistory(store))

	result := sc.Scan(context.Background(), bracketURL)

	require.Len(t, store.SaveScanCalls, 1)
	assert.Equal(t, result, store.SaveScanCalls[0])
}

func TestScan_SnapshotsDivisionSeeds(t *testing.T) {
	hydrate := vbl.NewMockClient()
	hydrate.GetDivisionHydrateFunc = func(ctx context.Context, divisionID int) (*vbl.Hydrate, error) {
		h := bracketHydrate()
		h.Teams[0].Seed = intPtr(1)
		h.Teams[1].Seed = intPtr(2)
		return h, nil
	}
	store := history.NewMockStore()
	var saved []history.TeamSeed
	store.SaveDivisionSeedsFunc = func(ctx context.Context, divisionID int, seeds []history.TeamSeed) error {
		saved = seeds
		return nil
	}
	sc := scanner.New(hydrate, scanner.WithHistory(store))

	sc.Scan(context.Background(), bracketURL)

	assert.Equal(t, []int{2}, store.SaveDivisionSeedsCalls)
	require.Len(t, saved, 2)
	assert.Equal(t, 101, saved[0].TeamID)
	assert.Equal(t, "Smith / Jones", saved[0].Name)
	require.NotNil(t, saved[0].Seed)
	assert.Equal(t, 1, *saved[0].Seed)
}

func TestScan_FallbackFillsSeedsFromSnapshot(t *testing.T) {
	hydrate := vbl.NewMockClient()
	hydrate.GetDivisionHydrateFunc = func(ctx context.Context, divisionID int) (*vbl.Hydrate, error) {
		return nil, errors.New("boom")
	}
	pages := pagescan.NewMockSource()
	pages.MatchBlocksFunc = func(ctx context.Context, url string) ([]pagescan.Block, error) {
		return []pagescan.Block{{Text: "Alpha vs Beta"}}, nil
	}
	store := history.NewMockStore()
	store.DivisionSeedsFunc = func(ctx context.Context, divisionID int) ([]history.TeamSeed, error) {
		return []history.TeamSeed{
			{TeamID: 101, Name: "Alpha", Seed: intPtr(3)},
			{TeamID: 102, Name: "Gamma", Seed: intPtr(1)},
		}, nil
	}
	sc := scanner.New(hydrate, scanner.WithPageSource(pages), scanner.WithHistory(store))

	result := sc.Scan(context.Background(), bracketURL)

	assert.Equal(t, []int{2}, store.DivisionSeedsCalls)
	require.Len(t, result.Matches, 1)
	require.NotNil(t, result.Matches[0].Team1Seed)
	assert.Equal(t, "3", *result.Matches[0].Team1Seed)
	assert.Nil(t, result.Matches[0].Team2Seed)
}

func TestScanAll_OrderAndStatus(t *testing.T) {
	hydrate := vbl.NewMockClient()
	hydrate.GetDivisionHydrateFunc = func(ctx context.Context, divisionID int) (*vbl.Hydrate, error) {
		return bracketHydrate(), nil
	}
	sc := scanner.New(hydrate, scanner.WithWorkers(2))

	urls := []string{
		bracketURL,
		"https://example.com/not-a-tournament",
		bracketURL,
	}

	report := sc.ScanAll(context.Background(), urls)

	assert.Equal(t, 3, report.URLsScanned)
	require.Len(t, report.Results, 3)
	// Results keep input order regardless of completion order.
	for i, r := range report.Results {
		require.NotNil(t, r)
		assert.Equal(t, urls[i], r.URL)
	}
	assert.Equal(t, schedule.StatusSuccess, report.Results[0].Status)
	assert.Equal(t, schedule.StatusError, report.Results[1].Status)
	assert.Equal(t, schedule.StatusPartial, report.Status)
	assert.Equal(t, 4, report.TotalMatches)
}

func TestScanAll_AllFail(t *testing.T) {
	hydrate := vbl.NewMockClient()
	sc := scanner.New(hydrate)

	report := sc.ScanAll(context.Background(), []string{"https://example.com/a", "https://example.com/b"})

	assert.Equal(t, schedule.StatusError, report.Status)
	assert.Equal(t, 0, report.TotalMatches)
}

func TestScanAll_Empty(t *testing.T) {
	sc := scanner.New(vbl.NewMockClient())

	report := sc.ScanAll(context.Background(), nil)

	assert.Equal(t, schedule.StatusSuccess, report.Status)
	assert.Empty(t, report.Results)
}
