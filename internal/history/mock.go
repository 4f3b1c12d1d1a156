package history

import (
	"context"
	"sync"

	"github.com/multicourt/vbl-scanner/internal/schedule"
)

// MockStore is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	SaveScanFunc          func(ctx context.Context, result *schedule.ScanResult) error
	RecentScansFunc       func(ctx context.Context, limit int) ([]ScanRow, error)
	SaveDivisionSeedsFunc func(ctx context.Context, divisionID int, seeds []TeamSeed) error
	DivisionSeedsFunc     func(ctx context.Context, divisionID int) ([]TeamSeed, error)

	// Call records
	SaveScanCalls          []*schedule.ScanResult
	RecentScansCalls       []int
	SaveDivisionSeedsCalls []int
	DivisionSeedsCalls     []int
	CloseCalls             int
}

// NewMockStore creates a new mock instance.
func NewMockStore() *MockStore {
	return &MockStore{}
}

var _ Store = (*MockStore)(nil)

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SaveScanCalls = nil
	m.RecentScansCalls = nil
	m.SaveDivisionSeedsCalls = nil
	m.DivisionSeedsCalls = nil
	m.CloseCalls = 0
}

func (m *MockStore) SaveScan(ctx context.Context, result *schedule.ScanResult) error {
	m.mu.Lock()
	m.SaveScanCalls = append(m.SaveScanCalls, result)
	fn := m.SaveScanFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, result)
	}
	return nil
}

func (m *MockStore) RecentScans(ctx context.Context, limit int) ([]ScanRow, error) {
	m.mu.Lock()
	m.RecentScansCalls = append(m.RecentScansCalls, limit)
	fn := m.RecentScansFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, limit)
	}
	return nil, nil
}

func (m *MockStore) SaveDivisionSeeds(ctx context.Context, divisionID int, seeds []TeamSeed) error {
	m.mu.Lock()
	m.SaveDivisionSeedsCalls = append(m.SaveDivisionSeedsCalls, divisionID)
	fn := m.SaveDivisionSeedsFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, divisionID, seeds)
	}
	return nil
}

func (m *MockStore) DivisionSeeds(ctx context.Context, divisionID int) ([]TeamSeed, error) {
	m.mu.Lock()
	m.DivisionSeedsCalls = append(m.DivisionSeedsCalls, divisionID)
	fn := m.DivisionSeedsFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, divisionID)
	}
	return nil, nil
}

func (m *MockStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalls++
	return nil
}
