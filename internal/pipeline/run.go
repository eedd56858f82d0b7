// Package pipeline provides the per-company orchestration: resolve
// candidates, fetch content, score relevance, select a winner, extract
// structured policy fields.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/vdp-scanner/internal/config"
	"github.com/jonathan/vdp-scanner/internal/selection"
	"github.com/jonathan/vdp-scanner/internal/types"
)

// WellKnownResolver yields candidates from /.well-known/security.txt.
type WellKnownResolver interface {
	Resolve(ctx context.Context, baseURL string) ([]types.Candidate, string)
}

// SearchResolver yields candidates from the web-search fallback.
type SearchResolver interface {
	Resolve(ctx context.Context, companyName, baseURL string) []types.Candidate
}

// Fetcher populates a candidate's content fields or its FetchError.
type Fetcher interface {
	Fetch(ctx context.Context, c *types.Candidate)
}

// Scorer estimates policy relevance of fetched content.
type Scorer interface {
	Score(ctx context.Context, content, companyName, pageURL string) (float64, error)
}

// Extractor produces structured policy fields from the winning page.
type Extractor interface {
	Extract(ctx context.Context, content, companyName, policyURL string) (types.PolicyAnalysis, error)
}

// Pipeline wires the stages together. Each company record is processed in
// isolation: no state is shared or cached across records.
type Pipeline struct {
	cfg       *config.Config
	wellKnown WellKnownResolver
	search    SearchResolver // nil when search credentials are absent
	fetcher   Fetcher
	scorer    Scorer
	extractor Extractor
}

// New creates a pipeline. search may be nil when the fallback is disabled.
func New(cfg *config.Config, wellKnown WellKnownResolver, search SearchResolver, fetcher Fetcher, scorer Scorer, extractor Extractor) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		wellKnown: wellKnown,
		search:    search,
		fetcher:   fetcher,
		scorer:    scorer,
		extractor: extractor,
	}
}

// ProcessBatch processes records sequentially and returns exactly one result
// per input record, in input order. A failed record never aborts the batch.
func (p *Pipeline) ProcessBatch(ctx context.Context, records []types.CompanyRecord) []types.AnalysisResult {
	results := make([]types.AnalysisResult, 0, len(records))
	for i, record := range records {
		fmt.Printf("Processing %d/%d: %s (%s)\n", i+1, len(records), record.CompanyName, record.BaseURL)
		results = append(results, p.ProcessCompany(ctx, record))
	}
	return results
}

// ProcessCompany runs one record through the full pipeline. It always
// returns a result: unrecoverable failures yield StatusError, an empty or
// unconvincing candidate pool yields StatusNotFound.
func (p *Pipeline) ProcessCompany(ctx context.Context, record types.CompanyRecord) types.AnalysisResult {
	runID := uuid.New()
	result := types.AnalysisResult{
		CompanyName: record.CompanyName,
		BaseURL:     record.BaseURL,
	}

	if err := validateBaseURL(record.BaseURL); err != nil {
		result.Status = types.StatusError
		result.Error = fmt.Sprintf("%s: %v", types.ErrInputInvalid, err)
		return result
	}

	// Wall-clock budget for the whole record. In-flight candidate work is
	// abandoned at the deadline and only this record becomes an error.
	ctx, cancel := context.WithTimeout(ctx, p.cfg.RecordTimeout)
	defer cancel()

	// RESOLVING: security.txt first, search as fallback.
	candidates, securityTxtURL := p.wellKnown.Resolve(ctx, record.BaseURL)
	result.SecurityTxtURL = securityTxtURL
	if len(candidates) == 0 && p.search != nil {
		candidates = p.search.Resolve(ctx, record.CompanyName, record.BaseURL)
	}

	if p.cfg.Verbose {
		log.Printf("[PIPELINE] %s run=%s: %d candidates", record.CompanyName, runID, len(candidates))
	}

	// No candidates from any source is the well-defined "not found"
	// outcome, not an error.
	if len(candidates) == 0 {
		result.Status = types.StatusNotFound
		return result
	}

	scored, err := p.fetchAndScore(ctx, record.CompanyName, candidates)
	if err != nil {
		result.Status = types.StatusError
		result.Error = err.Error()
		return result
	}

	// SELECTED
	sel := selection.Select(scored, p.cfg.Threshold)
	if sel.Winner == nil {
		result.Status = types.StatusNotFound
		return result
	}

	winner := sel.Winner
	result.PolicyURL = winner.URL
	confidence := winner.Confidence
	result.HighestConfidence = &confidence

	// EXTRACTING: extractor failure after a confident winner degrades to a
	// minimal analysis rather than losing the find.
	analysis, err := p.extractor.Extract(ctx, winner.RawContent, record.CompanyName, winner.URL)
	if err != nil {
		log.Printf("[PIPELINE] extraction failed for %s (%s): %v", record.CompanyName, winner.URL, err)
		analysis = minimalAnalysis(record.CompanyName, winner.URL)
	}
	result.Analysis = analysis
	result.Status = types.StatusFound
	return result
}

// fetchAndScore runs per-candidate fetch and score work with bounded
// parallelism. Candidate failures are absorbed per candidate and never abort
// siblings; only exhaustion of the record budget returns an error.
func (p *Pipeline) fetchAndScore(ctx context.Context, companyName string, candidates []types.Candidate) ([]types.ScoredCandidate, error) {
	scored := make([]types.ScoredCandidate, len(candidates))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.cfg.Concurrency, 1))

	for i := range candidates {
		g.Go(func() error {
			c := candidates[i]

			// FETCHING
			p.fetcher.Fetch(gCtx, &c)

			// SCORING: a candidate whose fetch failed is never scored.
			sc := types.ScoredCandidate{Candidate: c}
			if c.Fetched() {
				conf, err := p.scorer.Score(gCtx, c.RawContent, companyName, c.URL)
				if err != nil {
					// Classifier failure deprioritizes this candidate only.
					log.Printf("[PIPELINE] scoring failed for %s: %v", c.URL, err)
					conf = 0
				}
				sc.Confidence = conf
				if p.cfg.Verbose {
					log.Printf("[PIPELINE] %s scored %.2f", c.URL, conf)
				}
			}
			scored[i] = sc
			return nil
		})
	}

	// Workers never return errors; Wait only surfaces group-context issues.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: record budget exhausted: %w", types.ErrTimeout, err)
	}
	return scored, nil
}

func validateBaseURL(baseURL string) error {
	if strings.TrimSpace(baseURL) == "" {
		return fmt.Errorf("base URL is empty")
	}
	candidate := baseURL
	if !strings.Contains(candidate, "://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return fmt.Errorf("malformed base URL %q: %w", baseURL, err)
	}
	if parsed.Host == "" || !strings.Contains(parsed.Host, ".") {
		return fmt.Errorf("malformed base URL %q", baseURL)
	}
	return nil
}

func minimalAnalysis(companyName, policyURL string) types.PolicyAnalysis {
	return types.PolicyAnalysis{
		"program_name": companyName,
		"policy_url":   policyURL,
	}
}
