package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/multicourt/vbl-scanner/internal/config"
	"github.com/multicourt/vbl-scanner/internal/history"
	"github.com/multicourt/vbl-scanner/internal/metrics"
	"github.com/multicourt/vbl-scanner/internal/notifier"
	slacknotifier "github.com/multicourt/vbl-scanner/internal/notifier/slack"
	"github.com/multicourt/vbl-scanner/internal/pagescan"
	"github.com/multicourt/vbl-scanner/internal/pubsub"
	"github.com/multicourt/vbl-scanner/internal/scanner"
	"github.com/multicourt/vbl-scanner/internal/server"
	"github.com/multicourt/vbl-scanner/internal/vbl"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the scan API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		startTime := time.Now()
		log.SetFormatter(log.JSONFormatter)
		cfg := config.Load()

		store, err := history.New(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
		if err != nil {
			return err
		}
		defer func() {
			log.Info("Closing database connection")
			store.Close()
		}()

		metricsSvc := metrics.NewService()
		metricsHandler := metrics.NewMetricsHandler()

		sc := scanner.New(
			vbl.NewClient(),
			scanner.WithPageSource(pagescan.NewHTMLSource()),
			scanner.WithMetrics(metricsSvc),
			scanner.WithHistory(store),
			scanner.WithWorkers(cfg.MaxConcurrent),
		)

		var notif notifier.Notifier
		if cfg.SlackEnabled() {
			notif = slacknotifier.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
		}
		var pubsubClient pubsub.PubSubClient
		if cfg.PubSubEnabled() {
			pubsubClient = pubsub.New(cfg.ProjectID)
		}

		s := server.NewServer(
			sc,
			metricsSvc,
			metricsHandler,
			cfg,
			notif,
			store,
			pubsubClient,
		)

		startupDuration := time.Since(startTime)
		metricsSvc.SetStartupTime(startupDuration.Seconds())
		log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

		srv := &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: s,
		}

		serverErrors := make(chan error, 1)
		go func() {
			log.Info("Server started", "port", cfg.Port)
			serverErrors <- srv.ListenAndServe()
		}()

		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-serverErrors:
			return err
		case sig := <-shutdown:
			log.Info("Shutdown signal received", "signal", sig)

			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Graceful shutdown failed, forcing close", "error", err)
				return srv.Close()
			}
		}
		return nil
	},
}
