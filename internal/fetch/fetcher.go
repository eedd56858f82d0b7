// Package fetch - fetcher.go implements the multi-format content fetch policy.
package fetch

import (
	"context"
	"log"

	"github.com/jonathan/vdp-scanner/internal/config"
	"github.com/jonathan/vdp-scanner/internal/types"
)

// Renderer renders a URL in a headless browser and returns the DOM HTML.
// *Browser satisfies this; tests substitute a fake.
type Renderer interface {
	Render(ctx context.Context, url string) (string, error)
}

// ContentFetcher turns candidate URLs into normalized text content.
// Decision policy, in order: PDF extraction when the response looks like a
// PDF; headless render when the stripped static HTML is below the configured
// emptiness threshold; otherwise the static HTML text.
type ContentFetcher struct {
	cfg     *config.Config
	browser Renderer // nil disables the render fallback
}

// NewContentFetcher creates a fetcher. browser may be nil when headless
// rendering is disabled.
func NewContentFetcher(cfg *config.Config, browser Renderer) *ContentFetcher {
	return &ContentFetcher{cfg: cfg, browser: browser}
}

// Fetch populates the candidate's content fields, or sets FetchError.
// Failures never propagate: a failed candidate is excluded from scoring but
// retained for diagnostics.
func (f *ContentFetcher) Fetch(ctx context.Context, c *types.Candidate) {
	opts := &Options{
		Timeout:   f.cfg.FetchTimeout,
		UserAgent: DefaultUserAgent,
	}

	result, err := URL(ctx, c.URL, opts)
	if err != nil {
		f.fail(c, Kind(err), err)
		return
	}

	if IsPDF(result.ContentType, c.URL) {
		f.fetchPDF(c, result)
		return
	}

	text, err := ExtractText(string(result.Body))
	if err != nil {
		f.fail(c, types.ErrParseFailed, err)
		return
	}

	// Short stripped text usually means a JavaScript-rendered SPA shell.
	if len(text) < f.cfg.MinContentLength && f.browser != nil {
		f.renderFallback(ctx, c)
		return
	}

	if text == "" {
		f.fail(c, types.ErrParseFailed, nil)
		return
	}

	c.RawContent = Normalize(text, f.cfg.MaxContentChars)
	c.ContentKind = types.KindHTML
}

func (f *ContentFetcher) fetchPDF(c *types.Candidate, result *Result) {
	limit := f.cfg.PDFSizeLimitMB * 1024 * 1024
	if limit > 0 && len(result.Body) > limit {
		if f.cfg.Verbose {
			log.Printf("[FETCH] PDF at %s exceeds size limit (%d MB)", c.URL, f.cfg.PDFSizeLimitMB)
		}
		f.fail(c, types.ErrParseFailed, nil)
		return
	}

	text, err := ExtractPDFText(result.Body)
	if err != nil {
		f.fail(c, types.ErrParseFailed, err)
		return
	}

	c.RawContent = Normalize(text, f.cfg.MaxContentChars)
	c.ContentKind = types.KindPDF
}

// renderFallback settles the candidate with either rendered content or a
// render failure.
func (f *ContentFetcher) renderFallback(ctx context.Context, c *types.Candidate) {
	html, err := f.browser.Render(ctx, c.URL)
	if err != nil {
		f.fail(c, types.ErrRenderFailed, err)
		return
	}

	text, err := ExtractText(html)
	if err != nil || text == "" {
		f.fail(c, types.ErrRenderFailed, err)
		return
	}

	c.RawContent = Normalize(text, f.cfg.MaxContentChars)
	c.ContentKind = types.KindRendered
}

func (f *ContentFetcher) fail(c *types.Candidate, kind types.ErrorKind, err error) {
	if f.cfg.Verbose {
		log.Printf("[FETCH] %s failed (%s): %v", c.URL, kind, err)
	}
	c.RawContent = ""
	c.FetchError = &kind
}
