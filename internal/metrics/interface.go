package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncScansTotal()
	IncScanErrors()
	IncFallbackScans()
	AddMatchesExtracted(n int)
	ObserveScanDuration(duration float64)
	IncNotificationsSent()
	IncNotificationsFailed()
	SetStartupTime(duration float64)
}
