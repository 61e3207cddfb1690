package ingestion

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

const (
	// DefaultFetchTimeout bounds a job posting fetch
	DefaultFetchTimeout = 30 * time.Second
	// DefaultUserAgent is sent with job posting requests
	DefaultUserAgent = "Mozilla/5.0 (compatible; ApplicationTailor/1.0)"
	// maxPostingBytes caps the downloaded page size
	maxPostingBytes = 5 << 20
)

// FetchJobDescription downloads a job posting page and returns its cleaned text with metadata.
// A nil client uses a client with DefaultFetchTimeout.
func FetchJobDescription(ctx context.Context, rawURL string, client *http.Client) (string, *Metadata, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", nil, &FetchError{URL: rawURL, Message: "invalid URL", Cause: err}
	}
	if client == nil {
		client = &http.Client{Timeout: DefaultFetchTimeout}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", nil, &FetchError{URL: rawURL, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", nil, &FetchError{URL: rawURL, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", nil, &FetchError{URL: rawURL, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPostingBytes))
	if err != nil {
		return "", nil, &FetchError{URL: rawURL, Message: "failed to read response body", Cause: err}
	}

	platform := DetectPlatform(rawURL)
	text, err := postingText(string(body), platform)
	if err != nil {
		return "", nil, &FetchError{URL: rawURL, Message: "content extraction failed", Cause: err}
	}
	text = CleanText(text)
	if text == "" {
		return "", nil, &FetchError{URL: rawURL, Message: "page has no readable text"}
	}

	metadata := NewMetadata(text, rawURL)
	metadata.Platform = string(platform)
	metadata.Format = FormatHTML
	return text, metadata, nil
}
