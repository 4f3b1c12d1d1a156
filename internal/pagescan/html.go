package pagescan

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/log"
)

// Selectors tried in order for match cards. The platform has renamed its
// card classes across frontend releases, so older shapes stay in the list.
var blockSelectors = []string{
	"div.div-match-card",
	`div[class*="match-card"]`,
	"div.match-row",
	`tr[class*="match"]`,
}

const formatBannerSelector = "div.v-alert__content"

var reVmixURL = regexp.MustCompile(`https?://[^\s"']+/vmix\?[^\s"']*`)

const pageUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// HTMLSource reads rendered pages over HTTP and picks match cards out of the
// DOM. Fetched documents are cached per URL so MatchBlocks and FormatText on
// the same page cost one request.
type HTMLSource struct {
	// Fetch overrides page retrieval, for tests and for callers that
	// already hold the rendered document.
	Fetch func(ctx context.Context, url string) (string, error)

	httpClient *http.Client

	mu    sync.Mutex
	cache map[string]string
}

// NewHTMLSource creates a page source against the live site.
func NewHTMLSource() *HTMLSource {
	return &HTMLSource{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		cache:      make(map[string]string),
	}
}

// Ensure HTMLSource implements the PageSource interface.
var _ PageSource = (*HTMLSource)(nil)

func (s *HTMLSource) page(ctx context.Context, url string) (string, error) {
	s.mu.Lock()
	if html, ok := s.cache[url]; ok {
		s.mu.Unlock()
		return html, nil
	}
	s.mu.Unlock()

	html, err := s.fetch(ctx, url)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.cache[url] = html
	s.mu.Unlock()
	return html, nil
}

func (s *HTMLSource) fetch(ctx context.Context, url string) (string, error) {
	if s.Fetch != nil {
		return s.Fetch(ctx, url)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", pageUserAgent)

	log.Debug("Fetching page", "url", url)
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("received non-OK HTTP status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read page body: %w", err)
	}
	return string(body), nil
}

// MatchBlocks returns one block per match card found on the page.
func (s *HTMLSource) MatchBlocks(ctx context.Context, url string) ([]Block, error) {
	html, err := s.page(ctx, url)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	var blocks []Block
	for _, selector := range blockSelectors {
		sel := doc.Find(selector)
		if sel.Length() == 0 {
			continue
		}
		sel.Each(func(_ int, card *goquery.Selection) {
			text := strings.TrimSpace(card.Text())
			if text == "" {
				return
			}
			blocks = append(blocks, Block{
				Text:   text,
				APIURL: cardAPIURL(card),
			})
		})
		break
	}

	log.Debug("Page match cards located", "url", url, "blocks", len(blocks))
	return blocks, nil
}

// FormatText returns the page's format announcement banner, empty when the
// page has none.
func (s *HTMLSource) FormatText(ctx context.Context, url string) (string, error) {
	html, err := s.page(ctx, url)
	if err != nil {
		return "", err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse page: %w", err)
	}

	return strings.TrimSpace(doc.Find(formatBannerSelector).First().Text()), nil
}

// cardAPIURL finds the vmix API link inside a card, first as an anchor and
// then anywhere in the card's markup.
func cardAPIURL(card *goquery.Selection) string {
	var href string
	card.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		h, _ := a.Attr("href")
		if strings.Contains(h, "/vmix") {
			href = h
			return false
		}
		return true
	})
	if href != "" {
		return href
	}
	if markup, err := card.Html(); err == nil {
		return reVmixURL.FindString(markup)
	}
	return ""
}
