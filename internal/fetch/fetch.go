// Package fetch provides URL retrieval for candidate policy pages: static
// HTTP, PDF text extraction, and headless-browser rendering.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jonathan/vdp-scanner/internal/types"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 15 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; VDPScanner/1.0)"

// Result holds the raw response from a static URL fetch.
type Result struct {
	URL         string
	Body        []byte
	ContentType string
	StatusCode  int
}

// Error represents an error during URL fetching, classified into the
// pipeline's error taxonomy.
type Error struct {
	URL     string
	Message string
	Kind    types.ErrorKind
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

// Kind extracts the taxonomy kind from a fetch error chain.
// Unclassified errors default to NETWORK.
func Kind(err error) types.ErrorKind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	if isTimeout(err) {
		return types.ErrTimeout
	}
	return types.ErrNetwork
}

// Options configures the fetch behavior.
type Options struct {
	Timeout   time.Duration
	UserAgent string
	Headers   map[string]string
}

// DefaultOptions returns sensible defaults for fetching.
func DefaultOptions() *Options {
	return &Options{
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// URL retrieves raw content from a URL with a bounded timeout.
func URL(ctx context.Context, urlStr string, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, &Error{
			URL:     urlStr,
			Message: "invalid URL",
			Kind:    types.ErrNetwork,
			Cause:   err,
		}
	}

	client := &http.Client{
		Timeout: opts.Timeout,
	}

	req, err := http.NewRequestWithContext(ctx, "GET", urlStr, nil)
	if err != nil {
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to create request",
			Kind:    types.ErrNetwork,
			Cause:   err,
		}
	}

	req.Header.Set("User-Agent", opts.UserAgent)
	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}

	resp, err := client.Do(req)
	if err != nil {
		kind := types.ErrNetwork
		if isTimeout(err) {
			kind = types.ErrTimeout
		}
		return nil, &Error{
			URL:     urlStr,
			Message: "HTTP request failed",
			Kind:    kind,
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		kind := types.ErrNetwork
		if isTimeout(err) {
			kind = types.ErrTimeout
		}
		return nil, &Error{
			URL:     urlStr,
			Message: "failed to read response body",
			Kind:    kind,
			Cause:   err,
		}
	}

	result := &Result{
		URL:         urlStr,
		Body:        bodyBytes,
		ContentType: resp.Header.Get("Content-Type"),
		StatusCode:  resp.StatusCode,
	}

	if resp.StatusCode != http.StatusOK {
		return result, &Error{
			URL:     urlStr,
			Message: fmt.Sprintf("HTTP status %d", resp.StatusCode),
			Kind:    types.ErrNetwork,
		}
	}

	return result, nil
}

// IsPDF reports whether a response should take the PDF extraction path,
// based on Content-Type or the URL path extension.
func IsPDF(contentType, urlStr string) bool {
	if strings.Contains(strings.ToLower(contentType), "application/pdf") {
		return true
	}
	if parsed, err := url.Parse(urlStr); err == nil {
		return strings.HasSuffix(strings.ToLower(parsed.Path), ".pdf")
	}
	return false
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	// http.Client wraps its own deadline error without a typed cause
	return err != nil && strings.Contains(err.Error(), "Client.Timeout")
}
