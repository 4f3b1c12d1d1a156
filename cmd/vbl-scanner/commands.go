package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/multicourt/vbl-scanner/internal/config"
	"github.com/multicourt/vbl-scanner/internal/history"
	"github.com/multicourt/vbl-scanner/internal/metrics"
	"github.com/multicourt/vbl-scanner/internal/notifier/slack"
	"github.com/multicourt/vbl-scanner/internal/pagescan"
	"github.com/multicourt/vbl-scanner/internal/scanner"
	"github.com/multicourt/vbl-scanner/internal/schedule"
	"github.com/multicourt/vbl-scanner/internal/vbl"
	"github.com/multicourt/vbl-scanner/internal/vblurl"
)

var (
	outputFile    string
	maxConcurrent int
	scanTimeout   int
	dryRun        bool
	saveHistory   bool
	noFallback    bool
	historyLimit  int
)

func init() {
	scanCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file for the scan report (default from config)")
	scanCmd.Flags().IntVar(&maxConcurrent, "max-concurrent", 0, "Maximum concurrent URL scans (default from config)")
	scanCmd.Flags().IntVar(&scanTimeout, "timeout", 60, "Per-URL scan timeout in seconds")
	scanCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log notifications instead of sending them")
	scanCmd.Flags().BoolVar(&saveHistory, "save", false, "Persist scan results to the history database")
	scanCmd.Flags().BoolVar(&noFallback, "no-fallback", false, "Disable the page text fallback")
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Number of scans to list")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

var scanCmd = &cobra.Command{
	Use:   "scan [urls...]",
	Short: "Scan tournament URLs and write the match schedule report",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		workers := cfg.MaxConcurrent
		if maxConcurrent > 0 {
			workers = maxConcurrent
		}
		output := cfg.OutputFile
		if outputFile != "" {
			output = outputFile
		}

		opts := []scanner.Option{
			scanner.WithWorkers(workers),
			scanner.WithTimeout(time.Duration(scanTimeout) * time.Second),
		}
		if !noFallback {
			opts = append(opts, scanner.WithPageSource(pagescan.NewHTMLSource()))
		}

		var store history.Store
		if saveHistory {
			client, err := history.New(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
			if err != nil {
				return fmt.Errorf("failed to open history database: %w", err)
			}
			defer client.Close()
			store = client
			opts = append(opts, scanner.WithHistory(store))
		}

		metricsSvc := metrics.NewService()
		opts = append(opts, scanner.WithMetrics(metricsSvc))

		sc := scanner.New(vbl.NewClient(), opts...)
		report := sc.ScanAll(cmd.Context(), args)

		if err := writeReport(output, report); err != nil {
			return err
		}
		log.Info("Report written", "file", output, "urls", report.URLsScanned, "matches", report.TotalMatches)

		if cfg.SlackEnabled() {
			notif := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
			if err := notif.SendBatchNotification(report, dryRun); err != nil {
				log.Error("Failed to send batch notification", "error", err)
			}
		}

		if report.Status != schedule.StatusSuccess {
			return fmt.Errorf("scan finished with status %q", report.Status)
		}
		return nil
	},
}

var classifyCmd = &cobra.Command{
	Use:   "classify [url]",
	Short: "Show how a tournament URL is classified",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parts := vblurl.Parse(args[0])
		if parts == nil {
			return fmt.Errorf("could not identify tournament and division id in URL")
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(parts)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent scans from the history database",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		store, err := history.New(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer store.Close()

		rows, err := store.RecentScans(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("failed to load scan history: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No scans recorded yet.")
			return nil
		}
		for _, row := range rows {
			fmt.Printf("%s  %-7s  %3d matches  %s\n", row.ScannedAt.Format("2006-01-02 15:04"), row.Status, row.TotalMatches, row.URL)
		}
		return nil
	},
}

func writeReport(path string, report *scanner.BatchReport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
