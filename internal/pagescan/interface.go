package pagescan

import "context"

// PageSource defines the interface for reading rendered tournament pages.
// This allows for mock implementations to be used in tests.
type PageSource interface {
	// MatchBlocks returns the match card blocks found on the page.
	MatchBlocks(ctx context.Context, url string) ([]Block, error)
	// FormatText returns the page's format announcement banner, empty when
	// the page has none.
	FormatText(ctx context.Context, url string) (string, error)
}
