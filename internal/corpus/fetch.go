// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package corpus

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pdiddy/mantis/internal/httputil"
)

// OpenSource opens a metadata or citation source for reading. The
// source may be a local file path or an http(s) URL; remote sources go
// through the shared retry helper. The caller closes the returned
// ReadCloser.
func OpenSource(ctx context.Context, client *http.Client, source string) (io.ReadCloser, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		return fetchURL(ctx, client, source)
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("opening source %s: %w", source, err)
	}
	return f, nil
}

func fetchURL(ctx context.Context, client *http.Client, url string) (io.ReadCloser, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: HTTP %d", url, resp.StatusCode)
	}
	return resp.Body, nil
}
