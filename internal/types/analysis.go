package types

// Status is the terminal outcome of processing one company record.
type Status string

// Record outcomes.
const (
	// StatusFound means a policy page was selected with sufficient confidence.
	StatusFound Status = "FOUND"
	// StatusNotFound means the pipeline completed but no candidate qualified.
	StatusNotFound Status = "NOT_FOUND"
	// StatusError means the record failed before a verdict could be reached.
	StatusError Status = "ERROR"
)

// PolicyAnalysis holds the structured fields extracted from a policy page,
// following the disclose.io program-list field names. The extractor output is
// model-generated, so the shape stays an open map rather than a rigid struct.
type PolicyAnalysis map[string]any

// KnownAnalysisFields lists the extraction fields in display order.
var KnownAnalysisFields = []string{
	"program_name",
	"policy_url",
	"contact_url",
	"contact_email",
	"launch_date",
	"offers_bounty",
	"offers_swag",
	"hall_of_fame",
	"safe_harbor",
	"public_disclosure",
	"disclosure_timeline_days",
	"pgp_key",
	"hiring",
	"securitytxt_url",
	"preferred_languages",
}

// String returns the field as a string, or "" when absent or non-string.
func (a PolicyAnalysis) String(key string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return ""
}

// AnalysisResult is the per-record output object, one per input row.
type AnalysisResult struct {
	CompanyName       string         `json:"company_name"`
	BaseURL           string         `json:"base_url"`
	SecurityTxtURL    string         `json:"security_txt_url,omitempty"`
	PolicyURL         string         `json:"policy_url,omitempty"`
	HighestConfidence *float64       `json:"highest_confidence,omitempty"`
	Analysis          PolicyAnalysis `json:"analysis,omitempty"`
	Status            Status         `json:"status"`
	Error             string         `json:"error,omitempty"`
}
