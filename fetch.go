package main

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.edgekit.dev/fetchdriver/internal/metaerr"
)

// defaultBodyLimit caps downloaded response bodies. Driver archives are
// tens of megabytes, so the ceiling leaves ample headroom while keeping a
// misbehaving host from exhausting memory.
const defaultBodyLimit = 100 << 20 // 100 MiB

// Fetcher retrieves the raw bytes at a url.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// httpFetcher performs a single bounded GET per url. No retries; the
// caller sees the first failure.
type httpFetcher struct {
	client    *http.Client
	bodyLimit int64
}

func newHTTPFetcher(client *http.Client) httpFetcher {
	if client == nil {
		client = newUserAgentClient(userAgent())
	}
	return httpFetcher{
		client:    client,
		bodyLimit: defaultBodyLimit,
	}
}

func (f httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, metaerr.WithMetadata(
			fmt.Errorf("%d - %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			"url", url,
		)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.bodyLimit+1))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if int64(len(body)) > f.bodyLimit {
		return nil, metaerr.WithMetadata(ErrBodyTooLarge, "url", url, "limit", f.bodyLimit)
	}

	return body, nil
}
