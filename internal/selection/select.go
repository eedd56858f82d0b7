// Package selection picks the single best policy candidate from a scored
// pool.
package selection

import (
	"github.com/jonathan/vdp-scanner/internal/types"
)

// Select filters candidates by the minimum-confidence threshold and picks
// the winner deterministically: maximum confidence, ties broken by source
// priority (security.txt declarations before search results), then by
// original discovery order. Candidates whose fetch failed are never
// considered. An empty survivor set yields a nil Winner, which is the valid
// "no policy found" outcome, not an error.
func Select(scored []types.ScoredCandidate, threshold float64) types.SelectionResult {
	result := types.SelectionResult{
		Considered: scored,
		Threshold:  threshold,
	}

	var winner *types.ScoredCandidate
	for i := range scored {
		c := &scored[i]
		if !c.Fetched() || c.Confidence < threshold {
			continue
		}
		if winner == nil || better(c, winner) {
			winner = c
		}
	}

	if winner != nil {
		w := *winner
		result.Winner = &w
	}
	return result
}

// better reports whether a should replace the current winner b.
func better(a, b *types.ScoredCandidate) bool {
	if a.Confidence != b.Confidence {
		return a.Confidence > b.Confidence
	}
	if a.Source.Priority() != b.Source.Priority() {
		return a.Source.Priority() < b.Source.Priority()
	}
	return a.Rank < b.Rank
}
