// Package fetch - browser.go provides headless browser rendering for script-rendered pages.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// renderSettle is how long a page gets to run its scripts after the body is ready.
const renderSettle = 2 * time.Second

// BrowserGetter renders pages in headless Chrome. It shares the Client's
// throttle semantics and requires Chrome/Chromium on the host.
type BrowserGetter struct {
	timeout time.Duration
	limiter *rate.Limiter
	logger  *zap.Logger
}

// NewBrowserGetter creates a browser-backed HTMLGetter.
func NewBrowserGetter(opts *Options, logger *zap.Logger) *BrowserGetter {
	if opts == nil {
		opts = DefaultOptions()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if opts.Interval > 0 {
		limiter = rate.NewLimiter(rate.Every(opts.Interval), 1)
	}
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	return &BrowserGetter{timeout: timeout + renderSettle, limiter: limiter, logger: logger}
}

// GetHTML renders urlStr and returns the resulting document HTML.
func (b *BrowserGetter) GetHTML(ctx context.Context, urlStr string) (string, error) {
	if err := validateURL(urlStr); err != nil {
		return "", err
	}
	if err := b.limiter.Wait(ctx); err != nil {
		return "", &Error{URL: urlStr, Message: "rate limiter wait failed", Cause: err}
	}

	b.logger.Debug("starting headless browser", zap.String("url", urlStr))

	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent(DefaultUserAgent),
		)...,
	)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, b.timeout)
	defer cancel()

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(urlStr),
		chromedp.WaitReady("body"),
		chromedp.Sleep(renderSettle),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "browser rendering failed", Cause: fmt.Errorf("chromedp: %w", err)}
	}

	b.logger.Debug("rendered page", zap.String("url", urlStr), zap.Int("bytes", len(html)))
	return html, nil
}
