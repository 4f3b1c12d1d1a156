package notifier

import (
	"sync"

	"github.com/multicourt/vbl-scanner/internal/scanner"
	"github.com/multicourt/vbl-scanner/internal/schedule"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendScanNotificationFunc  func(result *schedule.ScanResult, dryRun bool) error
	SendBatchNotificationFunc func(report *scanner.BatchReport, dryRun bool) error

	// Call records
	SendScanNotificationCalls  []*schedule.ScanResult
	SendBatchNotificationCalls []*scanner.BatchReport
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

var _ Notifier = (*Mock)(nil)

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendScanNotificationCalls = nil
	m.SendBatchNotificationCalls = nil
}

func (m *Mock) SendScanNotification(result *schedule.ScanResult, dryRun bool) error {
	m.mu.Lock()
	m.SendScanNotificationCalls = append(m.SendScanNotificationCalls, result)
	fn := m.SendScanNotificationFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(result, dryRun)
	}
	return nil
}

func (m *Mock) SendBatchNotification(report *scanner.BatchReport, dryRun bool) error {
	m.mu.Lock()
	m.SendBatchNotificationCalls = append(m.SendBatchNotificationCalls, report)
	fn := m.SendBatchNotificationFunc
	m.mu.Unlock()
	if fn != nil {
		return fn(report, dryRun)
	}
	return nil
}
