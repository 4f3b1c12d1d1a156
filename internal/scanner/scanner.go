// Package scanner orchestrates a full scan of a tournament URL: classify,
// fetch the structured payload, extract matches, and fall back to page text
// when the structured path comes up empty.
package scanner

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/multicourt/vbl-scanner/internal/format"
	"github.com/multicourt/vbl-scanner/internal/history"
	"github.com/multicourt/vbl-scanner/internal/metrics"
	"github.com/multicourt/vbl-scanner/internal/pagescan"
	"github.com/multicourt/vbl-scanner/internal/schedule"
	"github.com/multicourt/vbl-scanner/internal/vbl"
	"github.com/multicourt/vbl-scanner/internal/vblurl"
)

const (
	defaultWorkers = 4
	defaultTimeout = 60 * time.Second
)

// Scanner runs scans against one hydrate client and, optionally, a page
// source for the textual fallback and a history store for persistence.
type Scanner struct {
	hydrate vbl.HydrateClient
	pages   pagescan.PageSource
	metrics metrics.Metrics
	history history.Store
	workers int
	timeout time.Duration
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithPageSource enables the textual fallback path.
func WithPageSource(pages pagescan.PageSource) Option {
	return func(s *Scanner) { s.pages = pages }
}

// WithMetrics replaces the default no-op metrics sink.
func WithMetrics(m metrics.Metrics) Option {
	return func(s *Scanner) { s.metrics = m }
}

// WithHistory persists every completed scan result and keeps the
// per-division seed snapshot that page-only scans read from.
func WithHistory(store history.Store) Option {
	return func(s *Scanner) { s.history = store }
}

// WithWorkers bounds batch concurrency.
func WithWorkers(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithTimeout bounds each URL's scan in a batch.
func WithTimeout(d time.Duration) Option {
	return func(s *Scanner) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// New creates a Scanner around the given hydrate client.
func New(hydrate vbl.HydrateClient, opts ...Option) *Scanner {
	s := &Scanner{
		hydrate: hydrate,
		metrics: metrics.NewNoop(),
		workers: defaultWorkers,
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan extracts the match schedule behind one tournament URL. It never
// returns an error: failures are encoded in the result's status and error
// fields so batch output keeps one entry per input URL.
func (s *Scanner) Scan(ctx context.Context, url string) *schedule.ScanResult {
	result := &schedule.ScanResult{
		URL:       url,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Status:    schedule.StatusPending,
	}

	s.metrics.IncScansTotal()
	start := time.Now()
	defer func() {
		s.metrics.ObserveScanDuration(time.Since(start).Seconds())
	}()

	parts := vblurl.Parse(url)
	if parts == nil {
		s.metrics.IncScanErrors()
		return result.Fail("could not identify tournament and division id in URL")
	}

	hydrate, err := s.hydrate.GetDivisionHydrate(ctx, parts.DivisionID)
	if err != nil {
		log.Warn("Hydrate fetch failed", "url", url, "error", err)
		if s.pages != nil {
			s.metrics.IncFallbackScans()
			s.scanPage(ctx, url, parts, result)
			return result
		}
		s.metrics.IncScanErrors()
		return result.Fail(fmt.Sprintf("failed to fetch division data: %v", err))
	}

	dir := schedule.BuildDirectory(hydrate.Teams)
	s.snapshotSeeds(ctx, parts.DivisionID, hydrate.Teams)
	s.extractDays(hydrate, dir, parts, result)

	// A structurally valid but empty division usually means the schedule
	// only exists in the rendered page.
	if len(result.Matches) == 0 && s.pages != nil {
		log.Info("Structured payload yielded no matches, scanning page", "url", url)
		s.metrics.IncFallbackScans()
		s.scanPage(ctx, url, parts, result)
		return result
	}
	if len(result.Matches) == 0 {
		log.Warn("Scan produced no matches", "url", url, "divisionID", parts.DivisionID)
	}

	s.finish(ctx, result)
	return result
}

// extractDays walks the payload's days and appends bracket and pool records.
// The URL's mode is OR'd with each day's own flags, never exclusive: a day
// carrying both bracket and pool play yields both sets of records no matter
// which mode the URL names.
func (s *Scanner) extractDays(hydrate *vbl.Hydrate, dir schedule.TeamDirectory, parts *vblurl.URLParts, result *schedule.ScanResult) {
	for _, day := range hydrate.Days {
		if parts.DayID != 0 && day.ID != parts.DayID {
			continue
		}

		doBracket := parts.IsBracket || day.BracketPlay
		doPool := parts.IsPool || day.PoolPlay

		if doBracket {
			recs, detail, _ := schedule.ExtractBracketMatches(day, dir)
			if len(recs) > 0 {
				result.Matches = append(result.Matches, recs...)
				result.MatchType = schedule.MatchTypeBracket
				result.TypeDetail = detail
			}
		}
		if doPool {
			recs, detail, _ := schedule.ExtractPoolMatches(day, dir, parts.PoolID)
			if len(recs) > 0 {
				result.Matches = append(result.Matches, recs...)
				result.MatchType = schedule.MatchTypePool
				result.TypeDetail = detail
			}
		}
	}
}

// scanPage runs the textual fallback and fills the result in place.
func (s *Scanner) scanPage(ctx context.Context, url string, parts *vblurl.URLParts, result *schedule.ScanResult) {
	blocks, err := s.pages.MatchBlocks(ctx, url)
	if err != nil {
		s.metrics.IncScanErrors()
		result.Fail(fmt.Sprintf("page scan failed: %v", err))
		return
	}

	formatText, err := s.pages.FormatText(ctx, url)
	if err != nil {
		log.Debug("No format banner found", "url", url, "error", err)
		formatText = ""
	}
	f := format.Parse(formatText)

	matchType, detail := pageLabels(url, parts)
	result.MatchType = matchType
	result.TypeDetail = detail

	records := pagescan.ExtractMatches(blocks, f, formatText, matchType, detail)

	// Pool pages repeat each pairing once per set line; bracket pages list
	// each match once, and identical pairings there are real rematches.
	if parts.IsPool {
		records = schedule.DedupeByTeams(records)
	}

	// Page text rarely carries seeds; the last structured scan's snapshot
	// fills them in by team name.
	s.applyCachedSeeds(ctx, parts.DivisionID, records)

	decided := false
	for _, r := range records {
		if r.Team1 != nil && r.Team2 != nil && pagescan.HasRealTeams(*r.Team1, *r.Team2) {
			decided = true
			break
		}
	}
	if len(records) > 0 && !decided {
		log.Warn("Page scan found only undecided pairings", "url", url)
	}

	result.Matches = records
	s.finish(ctx, result)
}

// snapshotSeeds persists the division roster and seeding so later page-only
// scans can recover seeds the rendered page does not show.
func (s *Scanner) snapshotSeeds(ctx context.Context, divisionID int, teams []vbl.Team) {
	if s.history == nil || len(teams) == 0 {
		return
	}
	seeds := make([]history.TeamSeed, 0, len(teams))
	for _, t := range teams {
		if t.ID == 0 {
			continue
		}
		seeds = append(seeds, history.TeamSeed{TeamID: t.ID, Name: t.Name, Seed: t.Seed})
	}
	if len(seeds) == 0 {
		return
	}
	if err := s.history.SaveDivisionSeeds(ctx, divisionID, seeds); err != nil {
		log.Error("Failed to snapshot division seeds", "divisionID", divisionID, "error", err)
	}
}

// applyCachedSeeds fills missing seeds on fallback records from the last
// snapshot, matched by exact team name.
func (s *Scanner) applyCachedSeeds(ctx context.Context, divisionID int, records []schedule.MatchRecord) {
	if s.history == nil || divisionID == 0 || len(records) == 0 {
		return
	}
	seeds, err := s.history.DivisionSeeds(ctx, divisionID)
	if err != nil {
		log.Debug("No cached division seeds", "divisionID", divisionID, "error", err)
		return
	}
	byName := make(map[string]int, len(seeds))
	for _, ts := range seeds {
		if ts.Seed != nil {
			byName[ts.Name] = *ts.Seed
		}
	}
	if len(byName) == 0 {
		return
	}
	for i := range records {
		if records[i].Team1Seed == nil && records[i].Team1 != nil {
			if seed, ok := byName[*records[i].Team1]; ok {
				v := strconv.Itoa(seed)
				records[i].Team1Seed = &v
			}
		}
		if records[i].Team2Seed == nil && records[i].Team2 != nil {
			if seed, ok := byName[*records[i].Team2]; ok {
				v := strconv.Itoa(seed)
				records[i].Team2Seed = &v
			}
		}
	}
}

// pageLabels derives the display labels from the URL alone, which is all the
// fallback path has to go on.
func pageLabels(url string, parts *vblurl.URLParts) (string, string) {
	lower := strings.ToLower(url)
	if parts.IsBracket {
		switch {
		case strings.Contains(lower, "contender"):
			return schedule.MatchTypeBracket, "Contenders Bracket"
		case strings.Contains(lower, "winner"):
			return schedule.MatchTypeBracket, "Winners Bracket"
		default:
			return schedule.MatchTypeBracket, "Bracket"
		}
	}
	if parts.IsPool {
		return schedule.MatchTypePool, "Pool Play"
	}
	return schedule.MatchTypePool, "Schedule"
}

// finish seals a successful result and persists it when a store is wired.
func (s *Scanner) finish(ctx context.Context, result *schedule.ScanResult) {
	schedule.Reindex(result.Matches)
	result.Status = schedule.StatusSuccess
	s.metrics.AddMatchesExtracted(len(result.Matches))

	if s.history != nil {
		if err := s.history.SaveScan(ctx, result); err != nil {
			log.Error("Failed to persist scan result", "url", result.URL, "error", err)
		}
	}

	log.Info("Scan complete", "url", result.URL, "matches", len(result.Matches), "type", result.MatchType, "detail", result.TypeDetail)
}
