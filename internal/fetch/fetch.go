// Package fetch provides rate-limited HTTP fetching and HTML selection helpers.
// This package centralizes the network access used by the source adapters.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent is a browser-like user agent; the scraped sites reject obvious bots.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Result holds the raw content of a response.
type Result struct {
	URL         string
	Body        string
	ContentType string
	StatusCode  int
}

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
	Headers   map[string]string
	// Interval is the minimum spacing between two requests made by one Client.
	// Zero disables throttling.
	Interval time.Duration
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		Interval:  time.Second,
	}
}

// HTMLGetter retrieves the HTML of a page.
type HTMLGetter interface {
	GetHTML(ctx context.Context, urlStr string) (string, error)
}

// Client issues throttled requests against a single host.
type Client struct {
	http    *resty.Client
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewClient creates a client. Each source owns one client so the throttle applies per host.
func NewClient(opts *Options, logger *zap.Logger) *Client {
	if opts == nil {
		opts = DefaultOptions()
	}
	if opts.Timeout == 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.Interval > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.Interval), 1)
	}

	httpClient := resty.New()
	httpClient.SetTimeout(opts.Timeout)
	httpClient.SetHeader("User-Agent", opts.UserAgent)
	httpClient.SetHeaders(opts.Headers)
	httpClient.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		return limiter.Wait(req.Context())
	})

	return &Client{
		http:    httpClient,
		limiter: limiter,
		logger:  logger,
	}
}

// Get retrieves urlStr. A non-200 response returns both the result and an error.
func (c *Client) Get(ctx context.Context, urlStr string) (*Result, error) {
	if err := validateURL(urlStr); err != nil {
		return nil, err
	}

	resp, err := c.http.R().SetContext(ctx).Get(urlStr)
	return c.result(urlStr, resp, err)
}

// PostJSON sends payload as a JSON body to urlStr.
func (c *Client) PostJSON(ctx context.Context, urlStr string, payload any) (*Result, error) {
	if err := validateURL(urlStr); err != nil {
		return nil, err
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(urlStr)
	return c.result(urlStr, resp, err)
}

// GetHTML retrieves urlStr and returns its body.
func (c *Client) GetHTML(ctx context.Context, urlStr string) (string, error) {
	result, err := c.Get(ctx, urlStr)
	if err != nil {
		return "", err
	}
	return result.Body, nil
}

func (c *Client) result(urlStr string, resp *resty.Response, err error) (*Result, error) {
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Cause:   err,
		}
	}

	result := &Result{
		URL:         urlStr,
		Body:        string(resp.Body()),
		ContentType: resp.Header().Get("Content-Type"),
		StatusCode:  resp.StatusCode(),
	}
	c.logger.Debug("fetched",
		zap.String("url", urlStr),
		zap.Int("status", result.StatusCode),
		zap.Int("bytes", len(result.Body)),
		zap.Duration("duration", resp.Time()),
	)

	if resp.StatusCode() != http.StatusOK {
		return result, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode()),
		}
	}

	return result, nil
}

func validateURL(urlStr string) error {
	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Cause:   err,
		}
	}
	return nil
}
