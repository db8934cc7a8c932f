package mdhtml

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// FetchMarkdown GETs rawURL and returns the response body, which the caller
// must close. Only http and https are accepted and any status outside 2xx is
// an error. A nil client means http.DefaultClient.
func FetchMarkdown(ctx context.Context, client *http.Client, rawURL string) (io.ReadCloser, error) {
	if rawURL == "" {
		return nil, fmt.Errorf("fetch: URL is required")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if scheme := req.URL.Scheme; scheme != "http" && scheme != "https" {
		return nil, fmt.Errorf("fetch %s: unsupported scheme %q", rawURL, scheme)
	}
	req.Header.Set("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.1")
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	if resp.StatusCode/100 != 2 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("fetch %s: %s", rawURL, resp.Status)
	}
	return resp.Body, nil
}

// HTTPConvertRequest configures HTTPConvert.
type HTTPConvertRequest struct {
	URL     string
	Client  *http.Client
	Writer  io.Writer
	Options []Option
}

// HTTPConvert converts the Markdown document at req.URL and writes HTML to
// req.Writer.
func HTTPConvert(ctx context.Context, req HTTPConvertRequest) error {
	if req.Writer == nil {
		return fmt.Errorf("convert: writer is nil")
	}
	body, err := FetchMarkdown(ctx, req.Client, req.URL)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	defer body.Close()
	return Convert(ConvertRequest{Reader: body, Writer: req.Writer, Options: req.Options})
}
