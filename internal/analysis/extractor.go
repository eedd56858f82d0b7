package analysis

import (
	"context"
	"encoding/json"
	"log"

	"github.com/jonathan/vdp-scanner/internal/llm"
	"github.com/jonathan/vdp-scanner/internal/prompts"
	"github.com/jonathan/vdp-scanner/internal/schemas"
	"github.com/jonathan/vdp-scanner/internal/types"
)

// Extractor turns a winning policy page into structured fields.
type Extractor struct {
	client  llm.Client
	verbose bool
}

// NewExtractor creates a policy extractor backed by an LLM client.
func NewExtractor(client llm.Client, verbose bool) *Extractor {
	return &Extractor{client: client, verbose: verbose}
}

// Extract runs the structured-extraction prompt on the winning page's
// content and normalizes the output. The result is loosely validated
// against the program schema; validation problems are logged, never fatal.
func (e *Extractor) Extract(ctx context.Context, content, companyName, policyURL string) (types.PolicyAnalysis, error) {
	template := prompts.MustGet("analysis.json", "extract-policy")
	prompt := prompts.Format(template, map[string]string{
		"Company": companyName,
		"URL":     policyURL,
		"Content": content,
	})

	jsonResp, err := e.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, classifierUnavailable("failed to generate extraction", err)
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(jsonResp), &raw); err != nil {
		return nil, classifierUnavailable("unparsable extraction response", err)
	}

	analysis := Cleanup(raw, policyURL)

	if err := schemas.ValidateProgram(analysis); err != nil {
		log.Printf("[EXTRACTOR] analysis for %s does not match program schema: %v", policyURL, err)
	}

	return analysis, nil
}

// Cleanup normalizes the raw extraction output:
//   - the literal placeholder "self" is rewritten to the policy URL
//   - empty string and nil values are removed
//   - disclosure_timeline_days of 0 means "not specified" and is removed
//   - policy_url_status is an internal model artifact and always removed
func Cleanup(raw map[string]any, policyURL string) types.PolicyAnalysis {
	cleaned := make(types.PolicyAnalysis, len(raw))
	for key, value := range raw {
		if key == "policy_url_status" {
			continue
		}
		switch v := value.(type) {
		case nil:
			continue
		case string:
			if v == "" {
				continue
			}
			if v == "self" {
				v = policyURL
			}
			cleaned[key] = v
		case float64:
			if key == "disclosure_timeline_days" && v == 0 {
				continue
			}
			cleaned[key] = v
		default:
			cleaned[key] = v
		}
	}
	return cleaned
}
