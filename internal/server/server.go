package server

import (
	"net/http"

	"github.com/multicourt/vbl-scanner/internal/config"
	"github.com/multicourt/vbl-scanner/internal/history"
	"github.com/multicourt/vbl-scanner/internal/metrics"
	"github.com/multicourt/vbl-scanner/internal/notifier"
	"github.com/multicourt/vbl-scanner/internal/pubsub"
	"github.com/multicourt/vbl-scanner/internal/scanner"
)

func NewServer(scan *scanner.Scanner, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, notif notifier.Notifier, store history.Store, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Scanner:        scan,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Notifier:       notif,
		History:        store,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/scan", Chain(s.ScanHandler(), paramsMiddleware))
	s.Router.Handle("/scan/batch", Chain(s.BatchScanHandler(), paramsMiddleware))
	s.Router.Handle("/history", Chain(s.HistoryHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
