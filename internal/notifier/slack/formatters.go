package slack

import (
	"fmt"
	"strings"

	"github.com/slack-go/slack"

	"github.com/multicourt/vbl-scanner/internal/scanner"
	"github.com/multicourt/vbl-scanner/internal/schedule"
)

const maxListedMatches = 10

// formatScanNotification creates the Slack message for one scan result using Block Kit.
func formatScanNotification(result *schedule.ScanResult) slack.Message {
	blocks := make([]slack.Block, 0)

	// Header - The Header block itself provides bolding. No asterisks needed.
	header := "🏐 Scan complete"
	if result.Status == schedule.StatusError {
		header = "🏐 Scan failed"
	}
	headerText := slack.NewTextBlockObject("plain_text", header, true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	// Details
	detailsText := fmt.Sprintf("URL: %s\nType: %s (%s)\nMatches: %d", result.URL, orDash(result.MatchType), orDash(result.TypeDetail), result.TotalMatches())
	if result.Error != nil {
		detailsText += "\nError: " + *result.Error
	}
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, false, false), nil, nil))

	// Match list, truncated for long schedules.
	var lines []string
	for i, m := range result.Matches {
		if i == maxListedMatches {
			lines = append(lines, fmt.Sprintf("… and %d more", len(result.Matches)-maxListedMatches))
			break
		}
		lines = append(lines, "• "+matchLine(m))
	}
	if len(lines) > 0 {
		blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", strings.Join(lines, "\n"), false, false), nil, nil))
	}

	return slack.NewBlockMessage(blocks...)
}

// formatBatchNotification creates the Slack message for a batch run using Block Kit.
func formatBatchNotification(report *scanner.BatchReport) slack.Message {
	blocks := make([]slack.Block, 0)

	headerText := slack.NewTextBlockObject("plain_text", "🏐 Batch scan finished", true, false)
	blocks = append(blocks, slack.NewHeaderBlock(headerText))

	detailsText := fmt.Sprintf("URLs scanned: %d\nTotal matches: %d\nStatus: %s", report.URLsScanned, report.TotalMatches, report.Status)
	blocks = append(blocks, slack.NewSectionBlock(slack.NewTextBlockObject("plain_text", detailsText, false, false), nil, nil))

	// Context - one line per failed URL.
	var contextElements []slack.MixedElement
	for _, r := range report.Results {
		if r == nil || r.Status != schedule.StatusError {
			continue
		}
		msg := r.URL
		if r.Error != nil {
			msg += ": " + *r.Error
		}
		contextElements = append(contextElements, slack.NewTextBlockObject("plain_text", "⚠️ "+msg, true, false))
	}
	if len(contextElements) > 0 {
		blocks = append(blocks, slack.NewContextBlock("", contextElements...))
	}

	return slack.NewBlockMessage(blocks...)
}

func matchLine(m schedule.MatchRecord) string {
	t1 := orDash(deref(m.Team1))
	t2 := orDash(deref(m.Team2))
	line := t1 + " vs " + t2
	if m.StartTime != nil {
		line += " @ " + *m.StartTime
	}
	if m.Court != nil {
		line += " (Court " + *m.Court + ")"
	}
	return line
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
