package vbl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
)

const (
	// APIBase is the VolleyballLife backend serving hydrate documents.
	APIBase = "https://volleyballlife-api-dot-net-8.azurewebsites.net"
	// VMixBase is the root of the vendor match API that live-scoring
	// software polls. We only construct URLs under it, never call it.
	VMixBase = "https://api.volleyballlife.com/api/v1.0/matches"

	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
)

// APIClient fetches division hydrate payloads over plain HTTP.
type APIClient struct {
	httpClient *http.Client
	BaseURL    string
}

// NewClient creates a hydrate client against the production API.
func NewClient() *APIClient {
	return &APIClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		BaseURL:    APIBase,
	}
}

// Ensure APIClient implements the HydrateClient interface.
var _ HydrateClient = (*APIClient)(nil)

// GetDivisionHydrate fetches the full hydrate document for one division:
// all teams, days, brackets and pools in a single request.
func (c *APIClient) GetDivisionHydrate(ctx context.Context, divisionID int) (*Hydrate, error) {
	url := fmt.Sprintf("%s/division/%d/hydrate", c.BaseURL, divisionID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", "https://volleyballlife.com/")
	req.Header.Set("User-Agent", userAgent)

	log.Debug("Fetching division hydrate", "url", url)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		log.Error("Received non-OK HTTP status from hydrate endpoint", "status", resp.StatusCode, "body", string(body))
		return nil, fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	var hydrate Hydrate
	if err := json.NewDecoder(resp.Body).Decode(&hydrate); err != nil {
		return nil, fmt.Errorf("failed to decode hydrate payload: %w", err)
	}

	log.Info("Division hydrate fetched", "divisionID", divisionID, "teams", len(hydrate.Teams), "days", len(hydrate.Days), "duration", time.Since(start))
	return &hydrate, nil
}
