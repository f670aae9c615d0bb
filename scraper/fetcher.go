package scraper

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
)

// DefaultFetchTimeout bounds a single page retrieval.
const DefaultFetchTimeout = 10 * time.Second

// The vendor site rejects requests that don't look like a desktop browser.
const (
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/110.0.0.0 Safari/537.36"
	acceptLanguage   = "en-US,en;q=0.9"
)

// FetchStatus classifies the outcome of retrieving one candidate location.
type FetchStatus int

const (
	// FetchSuccess: the page exists and the body is usable.
	FetchSuccess FetchStatus = iota
	// FetchNotFound: the page is absent at this location; the caller
	// should advance to the next candidate.
	FetchNotFound
	// FetchFailed: any other unsuccessful status or a transport-level
	// failure. Terminal; no further candidates are attempted.
	FetchFailed
)

// FetcherInterface is what the reconciler needs from a fetcher. The error
// is non-nil only for FetchFailed and carries the underlying cause.
type FetcherInterface interface {
	Fetch(ctx context.Context, url string) (FetchStatus, []byte, error)
}

// Fetcher retrieves vendor pages with browser-like headers. It performs a
// single request per location; retrying alternates is the reconciler's job.
type Fetcher struct {
	client *resty.Client
}

// NewFetcher creates a Fetcher with the given request timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", browserUserAgent).
		SetHeader("Accept-Language", acceptLanguage)

	return &Fetcher{client: client}
}

// Ensure Fetcher implements FetcherInterface
var _ FetcherInterface = (*Fetcher)(nil)

// Fetch retrieves one candidate location and classifies the response.
// Network-layer failures (timeout, DNS, connection refused) are mapped to
// FetchFailed with the cause preserved; they never propagate as panics.
func (f *Fetcher) Fetch(ctx context.Context, url string) (FetchStatus, []byte, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		log.Warn().Err(err).Str("url", url).Msg("vendor request failed")
		return FetchFailed, nil, fmt.Errorf("request to %s failed: %w", url, err)
	}

	log.Debug().Str("url", url).Int("status", resp.StatusCode()).Msg("fetched vendor page")

	switch {
	case resp.StatusCode() == http.StatusOK:
		return FetchSuccess, resp.Body(), nil
	case resp.StatusCode() == http.StatusNotFound:
		return FetchNotFound, nil, nil
	default:
		return FetchFailed, nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode(), url)
	}
}
