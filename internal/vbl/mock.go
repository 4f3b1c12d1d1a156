package vbl

import (
	"context"
	"sync"
)

// MockClient is a mock implementation of the HydrateClient interface for
// testing. It is safe for concurrent use.
type MockClient struct {
	mu sync.Mutex

	// Spies for method calls
	GetDivisionHydrateFunc func(ctx context.Context, divisionID int) (*Hydrate, error)

	// Call records
	GetDivisionHydrateCalls []int
}

// NewMockClient creates a new mock instance.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Reset clears all call records.
func (m *MockClient) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetDivisionHydrateCalls = nil
}

func (m *MockClient) GetDivisionHydrate(ctx context.Context, divisionID int) (*Hydrate, error) {
	m.mu.Lock()
	m.GetDivisionHydrateCalls = append(m.GetDivisionHydrateCalls, divisionID)
	fn := m.GetDivisionHydrateFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, divisionID)
	}
	return &Hydrate{}, nil
}
