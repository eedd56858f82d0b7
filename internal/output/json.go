// Package output writes analysis results to the output JSON file.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jonathan/vdp-scanner/internal/types"
)

// WriteResults serializes results as a pretty-printed JSON array, one object
// per input record, preserving input order.
func WriteResults(path string, results []types.AnalysisResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return writeResults(f, results)
}

func writeResults(w io.Writer, results []types.AnalysisResult) error {
	// A batch with zero surviving records still emits a valid empty array.
	if results == nil {
		results = []types.AnalysisResult{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(results); err != nil {
		return fmt.Errorf("failed to encode results JSON: %w", err)
	}
	return nil
}
