package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/vdp-scanner/internal/types"
)

func TestPrintSelection(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	kind := types.ErrNetwork
	winner := types.ScoredCandidate{
		Candidate:  types.Candidate{URL: "https://acme.example/vdp", Source: types.SourceWellKnown, RawContent: "x"},
		Confidence: 0.9,
	}
	sel := &types.SelectionResult{
		Winner: &winner,
		Considered: []types.ScoredCandidate{
			winner,
			{Candidate: types.Candidate{URL: "https://dead.acme.example/vdp", Source: types.SourceSearch, FetchError: &kind}},
		},
		Threshold: 0.6,
	}

	p.PrintSelection(sel)

	out := buf.String()
	assert.Contains(t, out, "CANDIDATE SELECTION")
	assert.Contains(t, out, "0.90")
	assert.Contains(t, out, "NETWORK")
	assert.Contains(t, out, "Winner:")
}

func TestPrintSelection_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSelection(nil)
	p.PrintSelection(&types.SelectionResult{})

	assert.Empty(t, buf.String())
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	conf := 0.87
	p.PrintResult(&types.AnalysisResult{
		CompanyName:       "Acme",
		BaseURL:           "https://acme.example",
		SecurityTxtURL:    "https://acme.example/.well-known/security.txt",
		PolicyURL:         "https://acme.example/vdp",
		HighestConfidence: &conf,
		Status:            types.StatusFound,
		Analysis: types.PolicyAnalysis{
			"program_name":  "Acme VDP",
			"offers_bounty": "no",
		},
	})

	out := buf.String()
	assert.Contains(t, out, "ANALYSIS RESULT")
	assert.Contains(t, out, "Acme")
	assert.Contains(t, out, "FOUND")
	assert.Contains(t, out, "0.87")
	assert.Contains(t, out, "program_name")
}

func TestPrintResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResult(nil)
	assert.Empty(t, buf.String())
}

func TestShorten(t *testing.T) {
	assert.Equal(t, "short", shorten("short", 10))
	assert.Equal(t, "this is...", shorten("this is a very long string", 10))
	assert.Len(t, shorten("this is a very long string", 10), 10)
}
