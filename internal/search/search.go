// Package search provides the web-search fallback for discovering policy
// candidates when security.txt declares nothing usable.
package search

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/jonathan/vdp-scanner/internal/config"
	"github.com/jonathan/vdp-scanner/internal/types"
)

// PolicyKeywords are the high-signal query terms combined with the company
// domain when searching for a disclosure policy.
var PolicyKeywords = []string{
	"vulnerability disclosure policy",
	"bug bounty program",
	"responsible disclosure",
	"report a vulnerability",
	"vulnerability response",
	"PSIRT",
}

// Resolver issues site-scoped searches against the Google Custom Search
// JSON API and returns deduplicated candidate URLs in engine relevance order.
type Resolver struct {
	svc *customsearch.Service
	cx  string
	cfg *config.Config
}

// NewResolver creates a search resolver. Requires a Custom Search API key
// and engine ID (cx).
func NewResolver(ctx context.Context, cfg *config.Config) (*Resolver, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(cfg.SearchAPIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create customsearch service: %w", err)
	}
	return &Resolver{
		svc: svc,
		cx:  cfg.SearchCX,
		cfg: cfg,
	}, nil
}

// Resolve searches for disclosure-policy pages for the company. Quota or API
// failures degrade to an empty slice with a log line; the search fallback
// never fails the overall run. Result order preserves the engine's relevance
// order, which later serves as the deterministic tie-break for
// equal-confidence candidates.
func (r *Resolver) Resolve(ctx context.Context, companyName, baseURL string) []types.Candidate {
	domain := Domain(baseURL)

	queries := []string{
		fmt.Sprintf("site:%s %s", domain, strings.Join(PolicyKeywords, " OR ")),
		fmt.Sprintf("%s vulnerability disclosure policy", companyName),
		fmt.Sprintf("%s bug bounty program", companyName),
	}

	var candidates []types.Candidate
	seen := make(map[string]bool)

	for _, q := range queries {
		if len(candidates) >= r.cfg.MaxSearchResults {
			break
		}

		if r.cfg.Verbose {
			log.Printf("[SEARCH] query: %s", q)
		}

		resp, err := r.svc.Cse.List().Context(ctx).Cx(r.cx).Q(q).Num(int64(r.cfg.MaxSearchResults)).Do()
		if err != nil {
			log.Printf("[SEARCH] query failed for %s: %v", companyName, err)
			continue
		}

		for _, item := range resp.Items {
			cleaned := CleanURL(item.Link)
			key := NormalizeURL(cleaned)
			if key == "" || seen[key] {
				continue
			}
			seen[key] = true
			candidates = append(candidates, types.Candidate{
				URL:    cleaned,
				Source: types.SourceSearch,
				Rank:   len(candidates),
			})
			if len(candidates) >= r.cfg.MaxSearchResults {
				break
			}
		}
	}

	if r.cfg.Verbose {
		log.Printf("[SEARCH] %d candidates for %s", len(candidates), companyName)
	}
	return candidates
}

// CleanURL strips query parameters and fragments from a result URL.
func CleanURL(urlStr string) string {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return urlStr
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed.String()
}

// NormalizeURL produces the dedup key for a URL: scheme-insensitive,
// trailing-slash-insensitive, host lowercased. Returns "" for unparsable
// input.
func NormalizeURL(urlStr string) string {
	if !strings.Contains(urlStr, "://") {
		urlStr = "https://" + urlStr
	}
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Host == "" {
		return ""
	}
	host := strings.ToLower(parsed.Host)
	path := strings.TrimSuffix(parsed.Path, "/")
	return host + path
}

// Domain extracts the bare host from a base URL for site-scoped queries.
func Domain(baseURL string) string {
	if !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil || parsed.Host == "" {
		return strings.TrimPrefix(baseURL, "https://")
	}
	return strings.TrimPrefix(parsed.Host, "www.")
}
