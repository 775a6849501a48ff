package source

import (
	"context"
	"fmt"
	"io"
	"net/http"

	wmerrors "github.com/conneroisu/wordmetrics/internal/errors"
)

func openHTTP(ctx context.Context, rawURL string, opts Options) (io.ReadCloser, error) {
	client := opts.Client
	if client == nil {
		client = &http.Client{Timeout: opts.Timeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, wmerrors.NewNetworkError(wmerrors.ErrCodeReadFailure, "invalid request", err)
	}
	req.Header.Set("User-Agent", "wordmetrics")

	resp, err := client.Do(req)
	if err != nil {
		return nil, wmerrors.NewNetworkError(wmerrors.ErrCodeReadFailure, "fetch failed", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, wmerrors.NewNetworkError(wmerrors.ErrCodeHTTPStatus,
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	return resp.Body, nil
}
