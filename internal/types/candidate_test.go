package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_Priority(t *testing.T) {
	assert.Less(t, SourceWellKnown.Priority(), SourceSearch.Priority())
}

func TestCandidate_Fetched(t *testing.T) {
	c := Candidate{URL: "https://example.com/vdp", RawContent: "policy text"}
	assert.True(t, c.Fetched())

	kind := ErrNetwork
	failed := Candidate{URL: "https://example.com/vdp", FetchError: &kind}
	assert.False(t, failed.Fetched())

	empty := Candidate{URL: "https://example.com/vdp"}
	assert.False(t, empty.Fetched())
}

func TestPolicyAnalysis_String(t *testing.T) {
	a := PolicyAnalysis{
		"policy_url":               "https://example.com/vdp",
		"disclosure_timeline_days": float64(90),
	}

	assert.Equal(t, "https://example.com/vdp", a.String("policy_url"))
	assert.Equal(t, "", a.String("disclosure_timeline_days")) // non-string
	assert.Equal(t, "", a.String("missing"))
}
