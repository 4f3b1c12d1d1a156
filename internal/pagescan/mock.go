package pagescan

import (
	"context"
	"sync"
)

// MockSource is a mock implementation of the PageSource interface for
// testing. It is safe for concurrent use.
type MockSource struct {
	mu sync.Mutex

	// Spies for method calls
	MatchBlocksFunc func(ctx context.Context, url string) ([]Block, error)
	FormatTextFunc  func(ctx context.Context, url string) (string, error)

	// Call records
	MatchBlocksCalls []string
	FormatTextCalls  []string
}

// NewMockSource creates a new mock instance.
func NewMockSource() *MockSource {
	return &MockSource{}
}

// Reset clears all call records.
func (m *MockSource) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.MatchBlocksCalls = nil
	m.FormatTextCalls = nil
}

func (m *MockSource) MatchBlocks(ctx context.Context, url string) ([]Block, error) {
	m.mu.Lock()
	m.MatchBlocksCalls = append(m.MatchBlocksCalls, url)
	fn := m.MatchBlocksFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, url)
	}
	return nil, nil
}

func (m *MockSource) FormatText(ctx context.Context, url string) (string, error) {
	m.mu.Lock()
	m.FormatTextCalls = append(m.FormatTextCalls, url)
	fn := m.FormatTextFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(ctx, url)
	}
	return "", nil
}
