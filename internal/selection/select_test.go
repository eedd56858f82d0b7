package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/vdp-scanner/internal/types"
)

func scored(url string, source types.Source, rank int, confidence float64) types.ScoredCandidate {
	return types.ScoredCandidate{
		Candidate: types.Candidate{
			URL:        url,
			Source:     source,
			Rank:       rank,
			RawContent: "some policy text",
		},
		Confidence: confidence,
	}
}

func TestSelect_PicksHighestConfidence(t *testing.T) {
	pool := []types.ScoredCandidate{
		scored("https://a.example/vdp", types.SourceSearch, 0, 0.7),
		scored("https://b.example/vdp", types.SourceSearch, 1, 0.95),
		scored("https://c.example/vdp", types.SourceSearch, 2, 0.8),
	}

	result := Select(pool, 0.6)
	require.NotNil(t, result.Winner)
	assert.Equal(t, "https://b.example/vdp", result.Winner.URL)
	assert.Equal(t, 0.95, result.Winner.Confidence)
	assert.Len(t, result.Considered, 3)
}

func TestSelect_ThresholdExcludes(t *testing.T) {
	pool := []types.ScoredCandidate{
		scored("https://a.example/blog", types.SourceSearch, 0, 0.3),
		scored("https://b.example/about", types.SourceSearch, 1, 0.59),
	}

	result := Select(pool, 0.6)
	assert.Nil(t, result.Winner)
}

func TestSelect_ThresholdIsInclusive(t *testing.T) {
	pool := []types.ScoredCandidate{
		scored("https://a.example/vdp", types.SourceSearch, 0, 0.6),
	}

	result := Select(pool, 0.6)
	require.NotNil(t, result.Winner)
	assert.Equal(t, "https://a.example/vdp", result.Winner.URL)
}

func TestSelect_TieBrokenBySource(t *testing.T) {
	pool := []types.ScoredCandidate{
		scored("https://a.example/vdp", types.SourceSearch, 0, 0.9),
		scored("https://b.example/vdp", types.SourceWellKnown, 1, 0.9),
	}

	result := Select(pool, 0.6)
	require.NotNil(t, result.Winner)
	assert.Equal(t, types.SourceWellKnown, result.Winner.Source)
	assert.Equal(t, "https://b.example/vdp", result.Winner.URL)
}

func TestSelect_TieBrokenByRank(t *testing.T) {
	pool := []types.ScoredCandidate{
		scored("https://a.example/second", types.SourceSearch, 3, 0.9),
		scored("https://a.example/first", types.SourceSearch, 1, 0.9),
	}

	result := Select(pool, 0.6)
	require.NotNil(t, result.Winner)
	assert.Equal(t, "https://a.example/first", result.Winner.URL)
}

func TestSelect_IgnoresFailedFetches(t *testing.T) {
	kind := types.ErrNetwork
	failed := scored("https://dead.example/vdp", types.SourceWellKnown, 0, 0.99)
	failed.RawContent = ""
	failed.FetchError = &kind

	pool := []types.ScoredCandidate{
		failed,
		scored("https://live.example/vdp", types.SourceSearch, 1, 0.7),
	}

	result := Select(pool, 0.6)
	require.NotNil(t, result.Winner)
	assert.Equal(t, "https://live.example/vdp", result.Winner.URL)
}

func TestSelect_EmptyPool(t *testing.T) {
	result := Select(nil, 0.6)
	assert.Nil(t, result.Winner)
	assert.Empty(t, result.Considered)
}

// Raising the threshold can only remove the winner, never change it to a
// different candidate.
func TestSelect_ThresholdMonotonicity(t *testing.T) {
	pool := []types.ScoredCandidate{
		scored("https://a.example/vdp", types.SourceSearch, 0, 0.65),
		scored("https://b.example/vdp", types.SourceWellKnown, 1, 0.85),
		scored("https://c.example/vdp", types.SourceSearch, 2, 0.75),
	}

	low := Select(pool, 0.6)
	require.NotNil(t, low.Winner)

	for _, threshold := range []float64{0.7, 0.8, 0.85} {
		result := Select(pool, threshold)
		if result.Winner != nil {
			assert.Equal(t, low.Winner.URL, result.Winner.URL)
		}
	}

	none := Select(pool, 0.9)
	assert.Nil(t, none.Winner)
}

func TestSelect_WinnerIsCopy(t *testing.T) {
	pool := []types.ScoredCandidate{
		scored("https://a.example/vdp", types.SourceSearch, 0, 0.8),
	}

	result := Select(pool, 0.6)
	require.NotNil(t, result.Winner)

	pool[0].Confidence = 0.1
	assert.Equal(t, 0.8, result.Winner.Confidence)
}
