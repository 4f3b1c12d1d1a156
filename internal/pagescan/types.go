// Package pagescan extracts match schedules from rendered tournament pages.
// It is the fallback path for pages whose structured payload is missing or
// empty, working from visible text instead of typed data.
package pagescan

// Block is the text of one match card on a rendered page, plus the vmix API
// link found inside it, when any.
type Block struct {
	Text   string
	APIURL string
}
