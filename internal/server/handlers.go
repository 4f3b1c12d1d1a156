package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/multicourt/vbl-scanner/internal/pubsub"
)

func (s *Server) HealthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.Debug("Received health check request")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK!")
	}
}

// ScanHandler scans a single tournament URL passed as ?url=.
func (s *Server) ScanHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		url := r.URL.Query().Get("url")
		if url == "" {
			http.Error(w, "Missing 'url' query parameter", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)

		result := s.Scanner.Scan(r.Context(), url)

		if s.Notifier != nil {
			if err := s.Notifier.SendScanNotification(result, isDryRun); err != nil {
				log.Error("Failed to send scan notification", "error", err)
			}
		}
		if s.pubsub != nil && !isDryRun {
			if err := s.pubsub.SendMessage(pubsub.EventScanResult, result); err != nil {
				log.Error("Failed to publish scan result", "error", err)
			}
		}

		writeJSON(w, result)
	}
}

// BatchScanHandler scans a list of URLs posted as {"urls": [...]}.
func (s *Server) BatchScanHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}

		var body struct {
			URLs []string `json:"urls"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "Invalid JSON", http.StatusBadRequest)
			return
		}
		if len(body.URLs) == 0 {
			http.Error(w, "No URLs provided", http.StatusBadRequest)
			return
		}
		isDryRun := isDryRunFromContext(r)

		report := s.Scanner.ScanAll(r.Context(), body.URLs)

		if s.Notifier != nil {
			if err := s.Notifier.SendBatchNotification(report, isDryRun); err != nil {
				log.Error("Failed to send batch notification", "error", err)
			}
		}
		if s.pubsub != nil && !isDryRun {
			if err := s.pubsub.SendMessage(pubsub.EventBatchReport, report); err != nil {
				log.Error("Failed to publish batch report", "error", err)
			}
		}

		writeJSON(w, report)
	}
}

// HistoryHandler lists recent scans, newest first. ?limit= caps the count.
func (s *Server) HistoryHandler() http.HandlerFunc {
	type entry struct {
		ID           string `json:"id"`
		URL          string `json:"url"`
		Status       string `json:"status"`
		MatchType    string `json:"match_type"`
		TypeDetail   string `json:"type_detail"`
		TotalMatches int    `json:"total_matches"`
		ScannedAt    string `json:"scanned_at"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		if s.History == nil {
			http.Error(w, "Scan history is not configured", http.StatusNotImplemented)
			return
		}

		limit := 20
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		rows, err := s.History.RecentScans(r.Context(), limit)
		if err != nil {
			log.Error("Failed to load scan history", "error", err)
			http.Error(w, "Failed to load scan history", http.StatusInternalServerError)
			return
		}

		out := make([]entry, 0, len(rows))
		for _, row := range rows {
			out = append(out, entry{
				ID:           row.ID,
				URL:          row.URL,
				Status:       row.Status,
				MatchType:    row.MatchType,
				TypeDetail:   row.TypeDetail,
				TotalMatches: row.TotalMatches,
				ScannedAt:    row.ScannedAt.Format(time.RFC3339),
			})
		}
		writeJSON(w, out)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("Failed to encode response", "error", err)
	}
}
