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

type Server struct {
	Scanner        *scanner.Scanner
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Notifier       notifier.Notifier
	History        history.Store
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
