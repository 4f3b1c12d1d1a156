package history

import (
	"context"

	"github.com/multicourt/vbl-scanner/internal/schedule"
)

// Store defines the interface for persisting scan history. This allows for
// mock implementations to be used in tests.
type Store interface {
	// SaveScan records one completed scan result.
	SaveScan(ctx context.Context, result *schedule.ScanResult) error
	// RecentScans returns the newest scans, most recent first.
	RecentScans(ctx context.Context, limit int) ([]ScanRow, error)
	// SaveDivisionSeeds snapshots a division's roster and seeding.
	SaveDivisionSeeds(ctx context.Context, divisionID int, seeds []TeamSeed) error
	// DivisionSeeds returns the last snapshot for a division.
	DivisionSeeds(ctx context.Context, divisionID int) ([]TeamSeed, error)
	Close() error
}
