package analysis

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/jonathan/vdp-scanner/internal/llm"
	"github.com/jonathan/vdp-scanner/internal/prompts"
)

// nonPolicyPathFragments mark URLs that are reliably not disclosure policies
// (report archives, ESG pages, sitemaps). They score 0 without an LLM call.
var nonPolicyPathFragments = []string{
	"site-map",
	"sitemap",
	"environmental-report",
	"annual-report",
	"company-reports",
	"sustainable-environmentally",
	"responsible-sourcing",
	"financial-disclosures",
	"climate",
	"esg",
}

// Scorer estimates how likely a candidate's content is a genuine
// vulnerability disclosure policy or bug bounty page.
type Scorer struct {
	client  llm.Client
	verbose bool
}

// NewScorer creates a relevance scorer backed by an LLM client.
func NewScorer(client llm.Client, verbose bool) *Scorer {
	return &Scorer{client: client, verbose: verbose}
}

// scoreResponse is the JSON shape the scorer prompt asks for.
type scoreResponse struct {
	Confidence float64 `json:"confidence"`
}

// Score returns a confidence in [0,1]. The external model is
// non-deterministic: repeated calls on identical content are close but not
// bit-identical, so callers may rely only on the validity range.
// A ClassifierError means the service was unavailable or unparsable; the
// caller decides how to degrade (the pipeline treats it as confidence 0).
func (s *Scorer) Score(ctx context.Context, content, companyName, pageURL string) (float64, error) {
	if conf, decided := scoreByURL(pageURL, content); decided {
		if s.verbose {
			log.Printf("[SCORER] %s decided by URL heuristic: %.1f", pageURL, conf)
		}
		return conf, nil
	}

	template := prompts.MustGet("analysis.json", "score-policy")
	prompt := prompts.Format(template, map[string]string{
		"Company": companyName,
		"URL":     pageURL,
		"Content": content,
	})

	jsonResp, err := s.client.GenerateJSON(ctx, prompt, llm.TierLite)
	if err != nil {
		return 0, classifierUnavailable("failed to generate confidence", err)
	}

	var parsed scoreResponse
	if err := json.Unmarshal([]byte(jsonResp), &parsed); err != nil {
		return 0, classifierUnavailable("unparsable confidence response", err)
	}

	return clamp01(parsed.Confidence), nil
}

// scoreByURL short-circuits the classifier for URLs whose nature is known.
// HackerOne program pages are policies by construction, except unclaimed
// external programs, which only mirror a scope and accept no reports.
func scoreByURL(pageURL, content string) (float64, bool) {
	lowerURL := strings.ToLower(pageURL)

	if strings.Contains(lowerURL, "hackerone.com") {
		if strings.Contains(strings.ToLower(content), "external program") {
			return 0.0, true
		}
		return 1.0, true
	}

	for _, fragment := range nonPolicyPathFragments {
		if strings.Contains(lowerURL, fragment) {
			return 0.0, true
		}
	}

	return 0, false
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
