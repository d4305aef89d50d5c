package guildlog

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Fetcher retrieves the raw body of a guild log URL. LoadFromURL only needs
// the body or an error; transport concerns live behind this interface.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// HTTPFetcher is the default Fetcher: one GET, no retries.
type HTTPFetcher struct {
	// Client performs the request. A nil Client falls back to a client with
	// DefaultFetchTimeout.
	Client *http.Client

	// MaxBytes caps the response body. Zero means DefaultMaxInputBytes.
	MaxBytes int64
}

var _ Fetcher = (*HTTPFetcher)(nil)

// Fetch performs a single GET. Transport failures and non-2xx statuses are
// reported as *FetchError.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}

	client := f.Client
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{URL: url, StatusCode: resp.StatusCode}
	}

	maxBytes := f.MaxBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxInputBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBytes+1))
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	if int64(len(body)) > maxBytes {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("response exceeds %d bytes", maxBytes)}
	}
	return body, nil
}

// fetcherOrDefault returns the configured fetcher, or an HTTPFetcher built
// from the config's timeout and size cap.
func (c *loadConfig) fetcherOrDefault() Fetcher {
	if c.fetcher != nil {
		return c.fetcher
	}
	return &HTTPFetcher{
		Client:   &http.Client{Timeout: c.fetchTimeout},
		MaxBytes: c.maxInputBytes,
	}
}
