// Package types defines the shared data model of the scanner pipeline:
// company records, policy candidates, and analysis results.
package types

// Source identifies where a candidate URL was discovered.
type Source string

// Candidate sources, in trust order.
const (
	// SourceWellKnown means the URL was declared in /.well-known/security.txt.
	SourceWellKnown Source = "well_known"
	// SourceSearch means the URL came from the web-search fallback.
	SourceSearch Source = "search"
)

// Priority returns the tie-break rank of a source; lower wins. A URL the
// organization declared itself outranks one an engine guessed.
func (s Source) Priority() int {
	if s == SourceWellKnown {
		return 0
	}
	return 1
}

// ContentKind records which fetch path produced a candidate's content.
type ContentKind string

// Content kinds.
const (
	KindHTML     ContentKind = "html"
	KindPDF      ContentKind = "pdf"
	KindRendered ContentKind = "rendered"
)

// ErrorKind classifies pipeline failures for diagnostics and reporting.
type ErrorKind string

// Error taxonomy.
const (
	ErrNetwork               ErrorKind = "NETWORK"
	ErrTimeout               ErrorKind = "TIMEOUT"
	ErrParseFailed           ErrorKind = "PARSE_FAILED"
	ErrRateLimited           ErrorKind = "RATE_LIMITED"
	ErrClassifierUnavailable ErrorKind = "CLASSIFIER_UNAVAILABLE"
	ErrRenderFailed          ErrorKind = "RENDER_FAILED"
	ErrInputInvalid          ErrorKind = "INPUT_INVALID"
)

// CompanyRecord is one row of the input CSV.
type CompanyRecord struct {
	CompanyName string `json:"company_name"`
	BaseURL     string `json:"base_url"`
}

// Candidate is a URL that may host the company's disclosure policy, together
// with its fetched content once the fetch stage has run.
type Candidate struct {
	URL    string `json:"url"`
	Source Source `json:"source"`
	// Rank is the discovery position within the source, used as the final
	// deterministic tie-break.
	Rank int `json:"rank"`

	// RawContent is the normalized page text. Kept out of serialized output;
	// it exists only to feed the classifier.
	RawContent  string      `json:"-"`
	ContentKind ContentKind `json:"content_kind,omitempty"`
	// FetchError is set when the fetch stage failed. A failed candidate stays
	// in the pool for diagnostics but is never scored or selected.
	FetchError *ErrorKind `json:"fetch_error,omitempty"`
}

// Fetched reports whether the candidate has usable content.
func (c *Candidate) Fetched() bool {
	return c.FetchError == nil && c.RawContent != ""
}

// ScoredCandidate pairs a candidate with its classifier confidence.
type ScoredCandidate struct {
	Candidate
	Confidence float64 `json:"confidence"`
}

// SelectionResult holds the outcome of candidate selection. A nil Winner is
// the valid "no policy found" outcome.
type SelectionResult struct {
	Winner     *ScoredCandidate
	Considered []ScoredCandidate
	Threshold  float64
}
