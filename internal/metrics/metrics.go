package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service is the Prometheus-backed metrics implementation.
type Service struct {
	ScansTotal          prometheus.Counter
	ScanErrors          prometheus.Counter
	FallbackScans       prometheus.Counter
	MatchesExtracted    prometheus.Counter
	ScanDuration        prometheus.Histogram
	NotificationsSent   prometheus.Counter
	NotificationsFailed prometheus.Counter
	StartupTimeSeconds  prometheus.Gauge
}

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		ScansTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vbl_scans_total",
			Help: "The total number of URL scans attempted.",
		}),
		ScanErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vbl_scan_errors_total",
			Help: "The total number of URL scans that ended in error.",
		}),
		FallbackScans: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vbl_fallback_scans_total",
			Help: "The total number of scans that fell back to page text extraction.",
		}),
		MatchesExtracted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vbl_matches_extracted_total",
			Help: "The total number of match records extracted.",
		}),
		ScanDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "vbl_scan_duration_seconds",
			Help:    "The duration of individual URL scans.",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		NotificationsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vbl_notifications_sent_total",
			Help: "The total number of scan notifications successfully sent.",
		}),
		NotificationsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vbl_notifications_failed_total",
			Help: "The total number of scan notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "vbl_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.ScansTotal,
		s.ScanErrors,
		s.FallbackScans,
		s.MatchesExtracted,
		s.ScanDuration,
		s.NotificationsSent,
		s.NotificationsFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncScansTotal() {
	s.ScansTotal.Inc()
}

func (s *Service) IncScanErrors() {
	s.ScanErrors.Inc()
}

func (s *Service) IncFallbackScans() {
	s.FallbackScans.Inc()
}

func (s *Service) AddMatchesExtracted(n int) {
	s.MatchesExtracted.Add(float64(n))
}

func (s *Service) ObserveScanDuration(duration float64) {
	s.ScanDuration.Observe(duration)
}

func (s *Service) IncNotificationsSent() {
	s.NotificationsSent.Inc()
}

func (s *Service) IncNotificationsFailed() {
	s.NotificationsFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
