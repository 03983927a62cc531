package vitrine

import "context"

// Fetcher retrieves raw HTML from URLs. The engine itself does no
// network I/O; fetching happens strictly before extraction.
type Fetcher interface {
	// Fetch downloads the page at url and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases any resources held by the fetcher.
	Close() error
}
