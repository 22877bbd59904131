package httpclient

import (
	"context"
	"net/http"
	"sync"
)

var (
	defaultOnce   sync.Once
	defaultClient *Client
)

// Default returns the process-wide shared client, created on first use
// and never torn down. All package-level calls go through it and share
// its engine's connection pool.
func Default() *Client {
	defaultOnce.Do(func() {
		defaultClient = New()
	})
	return defaultClient
}

// Get issues a GET through the shared client.
func Get(ctx context.Context, url string, header http.Header) (*Response, error) {
	return Default().Get(ctx, url, header)
}

// Post issues a POST through the shared client.
func Post(ctx context.Context, url string, header http.Header, body []byte) (*Response, error) {
	return Default().Post(ctx, url, header, body)
}

// GetAsync issues a non-blocking GET through the shared client.
func GetAsync(ctx context.Context, url string, header http.Header, cb Callback) {
	Default().GetAsync(ctx, url, header, cb)
}

// PostAsync issues a non-blocking POST through the shared client.
func PostAsync(ctx context.Context, url string, header http.Header, body []byte, cb Callback) {
	Default().PostAsync(ctx, url, header, body, cb)
}
