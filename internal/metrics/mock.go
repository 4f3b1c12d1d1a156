package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                  sync.Mutex
	scansTotal          int
	scanErrors          int
	fallbackScans       int
	matchesExtracted    int
	scanDurations       []float64
	notificationsSent   int
	notificationsFailed int
	startupTime         float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		scanDurations: make([]float64, 0),
	}
}

var _ Metrics = (*Mock)(nil)

func (m *Mock) IncScansTotal() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scansTotal++
}

func (m *Mock) IncScanErrors() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scanErrors++
}

func (m *Mock) IncFallbackScans() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallbackScans++
}

func (m *Mock) AddMatchesExtracted(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.matchesExtracted += n
}

func (m *Mock) ObserveScanDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scanDurations = append(m.scanDurations, duration)
}

func (m *Mock) IncNotificationsSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notificationsSent++
}

func (m *Mock) IncNotificationsFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.notificationsFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// ScansTotal returns the number of times IncScansTotal was called.
func (m *Mock) ScansTotal() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scansTotal
}

// ScanErrors returns the number of times IncScanErrors was called.
func (m *Mock) ScanErrors() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scanErrors
}

// FallbackScans returns the number of times IncFallbackScans was called.
func (m *Mock) FallbackScans() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fallbackScans
}

// MatchesExtracted returns the running sum passed to AddMatchesExtracted.
func (m *Mock) MatchesExtracted() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.matchesExtracted
}

// NotificationsSent returns the number of times IncNotificationsSent was called.
func (m *Mock) NotificationsSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notificationsSent
}

// NotificationsFailed returns the number of times IncNotificationsFailed was called.
func (m *Mock) NotificationsFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.notificationsFailed
}
