// Package fetch - browser.go provides headless browser rendering for SPA sites.
package fetch

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/chromedp/chromedp"
)

// Browser is a long-lived headless browser engine. The Chrome allocator is
// expensive to start, so one Browser is created at startup, shared read-only
// across all render calls, and released at process shutdown.
// Requires Chrome/Chromium to be installed on the system.
type Browser struct {
	allocCtx context.Context
	cancel   context.CancelFunc
	timeout  time.Duration
	verbose  bool
}

// NewBrowser creates the shared browser allocator. Call Close when done.
func NewBrowser(ctx context.Context, timeout time.Duration, verbose bool) *Browser {
	allocCtx, cancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
		)...,
	)
	return &Browser{
		allocCtx: allocCtx,
		cancel:   cancel,
		timeout:  timeout,
		verbose:  verbose,
	}
}

// Render loads a page, waits for the DOM to settle, and returns the rendered
// HTML. Each call gets its own tab context; the allocator is shared.
func (b *Browser) Render(ctx context.Context, url string) (string, error) {
	if b.verbose {
		log.Printf("[BROWSER] Rendering: %s", url)
	}

	browserCtx, cancel := chromedp.NewContext(b.allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, b.timeout)
	defer cancel()

	// Propagate caller cancellation into the tab context.
	if deadline, ok := ctx.Deadline(); ok {
		var dcancel context.CancelFunc
		browserCtx, dcancel = context.WithDeadline(browserCtx, deadline)
		defer dcancel()
	}

	var html string
	err := chromedp.Run(browserCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
		// Let JavaScript finish rendering content
		chromedp.Sleep(3*time.Second),
		chromedp.ActionFunc(func(ctx context.Context) error {
			// Dismiss common cookie banners; don't fail if not found
			_ = chromedp.Click(`button[id*="accept"], button[class*="accept"]`, chromedp.NodeVisible).Do(ctx)
			return nil
		}),
		chromedp.Sleep(1*time.Second),
		chromedp.OuterHTML("html", &html),
	)
	if err != nil {
		return "", fmt.Errorf("browser rendering failed: %w", err)
	}

	if b.verbose {
		log.Printf("[BROWSER] Rendered HTML: %d bytes", len(html))
	}

	return html, nil
}

// Close releases the shared browser allocator.
func (b *Browser) Close() {
	b.cancel()
}
