// Package securitytxt resolves policy candidates from a domain's RFC 9116
// /.well-known/security.txt file.
package securitytxt

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/jonathan/vdp-scanner/internal/config"
	"github.com/jonathan/vdp-scanner/internal/fetch"
	"github.com/jonathan/vdp-scanner/internal/types"
)

// WellKnownPath is the standard location of security.txt.
const WellKnownPath = "/.well-known/security.txt"

// Resolver fetches and parses security.txt files.
type Resolver struct {
	cfg *config.Config
}

// NewResolver creates a security.txt resolver.
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve fetches <baseURL>/.well-known/security.txt and returns candidates
// for every Policy and Contact URL it declares, plus the resolved
// security.txt URL itself (empty when the file is absent). A missing or
// malformed file is the expected fallback trigger, not an error: the result
// is simply empty. Network failures are logged and absorbed.
func (r *Resolver) Resolve(ctx context.Context, baseURL string) ([]types.Candidate, string) {
	txtURL, err := wellKnownURL(baseURL)
	if err != nil {
		log.Printf("[SECURITY.TXT] invalid base URL %q: %v", baseURL, err)
		return nil, ""
	}

	opts := &fetch.Options{
		Timeout:   r.cfg.FetchTimeout,
		UserAgent: fetch.DefaultUserAgent,
	}
	result, err := fetch.URL(ctx, txtURL, opts)
	if err != nil {
		if r.cfg.Verbose {
			log.Printf("[SECURITY.TXT] no security.txt for %s: %v", baseURL, err)
		}
		return nil, ""
	}

	// Some servers answer 200 with an HTML error page; a real security.txt
	// is plain text.
	if ct := strings.ToLower(result.ContentType); strings.Contains(ct, "text/html") {
		if r.cfg.Verbose {
			log.Printf("[SECURITY.TXT] %s returned HTML, skipping", txtURL)
		}
		return nil, ""
	}

	policies, contacts := Parse(string(result.Body))
	candidates := make([]types.Candidate, 0, len(policies)+len(contacts))
	rank := 0
	// Every declared Policy and Contact URL becomes its own candidate,
	// Policy entries ranked ahead of Contact entries.
	for _, u := range policies {
		candidates = append(candidates, types.Candidate{URL: u, Source: types.SourceWellKnown, Rank: rank})
		rank++
	}
	for _, u := range contacts {
		candidates = append(candidates, types.Candidate{URL: u, Source: types.SourceWellKnown, Rank: rank})
		rank++
	}

	if r.cfg.Verbose {
		log.Printf("[SECURITY.TXT] %s: %d policy, %d contact candidates", txtURL, len(policies), len(contacts))
	}
	return candidates, txtURL
}

// Parse extracts Policy and Contact URL values from security.txt content.
// Field names are case-insensitive; comments, blank lines, and PGP signature
// wrappers are ignored. Only http(s) values are returned (mailto: and tel:
// contacts are not fetchable pages).
func Parse(content string) (policies, contacts []string) {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-----") {
			continue
		}

		name, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		value = strings.TrimSpace(value)
		if !isHTTPURL(value) {
			continue
		}

		switch strings.ToLower(strings.TrimSpace(name)) {
		case "policy":
			policies = append(policies, value)
		case "contact":
			contacts = append(contacts, value)
		}
	}
	return policies, contacts
}

func wellKnownURL(baseURL string) (string, error) {
	if !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	parsed.Path = WellKnownPath
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed.String(), nil
}

func isHTTPURL(value string) bool {
	lower := strings.ToLower(value)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
