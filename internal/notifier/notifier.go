package notifier

import (
	"github.com/multicourt/vbl-scanner/internal/scanner"
	"github.com/multicourt/vbl-scanner/internal/schedule"
)

// Notifier defines a high-level interface for announcing scan outcomes.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	// For single-URL scans
	SendScanNotification(result *schedule.ScanResult, dryRun bool) error
	// For batch runs
	SendBatchNotification(report *scanner.BatchReport, dryRun bool) error
}
