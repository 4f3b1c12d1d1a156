package metrics

// Noop discards every measurement. It is the default sink for callers that
// do not wire a metrics backend, keeping nil checks out of the hot path.
type Noop struct{}

// NewNoop creates a no-op metrics sink.
func NewNoop() Noop {
	return Noop{}
}

var _ Metrics = Noop{}

func (Noop) IncScansTotal()              {}
func (Noop) IncScanErrors()              {}
func (Noop) IncFallbackScans()           {}
func (Noop) AddMatchesExtracted(int)     {}
func (Noop) ObserveScanDuration(float64) {}
func (Noop) IncNotificationsSent()       {}
func (Noop) IncNotificationsFailed()     {}
func (Noop) SetStartupTime(float64)      {}
