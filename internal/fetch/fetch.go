// Package fetch probes URLs over HTTP.
// It backs the liveness check applied to suggested link corrections.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds a single liveness probe.
const DefaultTimeout = 5 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; LinkDoctor/1.0)"

// maxDrainBytes caps how much of a response body is read before closing it.
const maxDrainBytes = 64 << 10

// Error represents an error during URL fetching.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
}

// DefaultOptions returns sensible defaults for probing.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// newHTTPClient returns a client that never follows redirects, so a 3xx
// answer is reported as-is instead of as the status of its target.
func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// status issues a GET for urlStr and returns the response status code.
func status(ctx context.Context, client *http.Client, urlStr string, opts *Options) (int, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return 0, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return 0, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", opts.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return 0, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	// Drain part of the body so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))

	return resp.StatusCode, nil
}

// Checker answers whether a URL is currently reachable.
type Checker struct {
	client  *http.Client
	options *Options
	logger  *zap.Logger
}

// NewChecker creates a Checker. A nil opts uses DefaultOptions and a nil
// logger discards output.
func NewChecker(opts *Options, logger *zap.Logger) *Checker {
	options := *DefaultOptions()
	if opts != nil {
		options = *opts
	}
	if options.Timeout <= 0 {
		options.Timeout = DefaultTimeout
	}
	if options.UserAgent == "" {
		options.UserAgent = DefaultUserAgent
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Checker{
		client:  newHTTPClient(options.Timeout),
		options: &options,
		logger:  logger,
	}
}

// IsAlive reports whether a GET of urlStr answers exactly 200 OK.
// Redirects, other 2xx codes and every transport failure count as not alive.
func (c *Checker) IsAlive(ctx context.Context, urlStr string) bool {
	ctx, cancel := context.WithTimeout(ctx, c.options.Timeout)
	defer cancel()

	code, err := status(ctx, c.client, urlStr, c.options)
	if err != nil {
		c.logger.Debug("liveness probe failed", zap.String("url", urlStr), zap.Error(err))
		return false
	}

	c.logger.Debug("liveness probe answered", zap.String("url", urlStr), zap.Int("status", code))
	return code == http.StatusOK
}
