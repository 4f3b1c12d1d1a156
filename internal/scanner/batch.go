package scanner

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/multicourt/vbl-scanner/internal/schedule"
)

// BatchReport aggregates the results of scanning a URL list. Results keep
// the input order regardless of completion order.
type BatchReport struct {
	URLsScanned  int                    `json:"urls_scanned"`
	TotalMatches int                    `json:"total_matches"`
	Results      []*schedule.ScanResult `json:"results"`
	Status       string                 `json:"status"`
}

// ScanAll scans every URL concurrently, bounded by the configured worker
// count, with each URL capped at the configured timeout. The batch status is
// success when every scan succeeded, error when none did, partial otherwise.
func (s *Scanner) ScanAll(ctx context.Context, urls []string) *BatchReport {
	report := &BatchReport{
		URLsScanned: len(urls),
		Results:     make([]*schedule.ScanResult, len(urls)),
	}
	if len(urls) == 0 {
		report.Status = schedule.StatusSuccess
		return report
	}

	log.Info("Starting batch scan", "urls", len(urls), "workers", s.workers)

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)
	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			scanCtx, cancel := context.WithTimeout(ctx, s.timeout)
			defer cancel()
			report.Results[i] = s.Scan(scanCtx, url)
		}(i, url)
	}
	wg.Wait()

	succeeded := 0
	for _, r := range report.Results {
		report.TotalMatches += r.TotalMatches()
		if r.Status == schedule.StatusSuccess {
			succeeded++
		}
	}
	switch succeeded {
	case len(urls):
		report.Status = schedule.StatusSuccess
	case 0:
		report.Status = schedule.StatusError
	default:
		report.Status = schedule.StatusPartial
	}

	log.Info("Batch scan complete", "status", report.Status, "matches", report.TotalMatches)
	return report
}
