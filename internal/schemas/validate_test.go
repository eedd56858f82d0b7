package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateProgram_Valid(t *testing.T) {
	data := map[string]any{
		"program_name":             "Acme VDP",
		"policy_url":               "https://acme.example/vdp",
		"contact_email":            "security@acme.example",
		"offers_bounty":            "no",
		"safe_harbor":              "full",
		"public_disclosure":        "co-ordinated",
		"disclosure_timeline_days": float64(90),
		"offers_swag":              true,
	}

	assert.NoError(t, ValidateProgram(data))
}

func TestValidateProgram_MinimalEntry(t *testing.T) {
	assert.NoError(t, ValidateProgram(map[string]any{
		"program_name": "Acme VDP",
		"policy_url":   "https://acme.example/vdp",
	}))
}

func TestValidateProgram_InvalidEnum(t *testing.T) {
	err := ValidateProgram(map[string]any{
		"program_name":  "Acme VDP",
		"offers_bounty": "maybe",
	})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.NotEmpty(t, verr.Errors)
	assert.Contains(t, verr.Error(), "offers_bounty")
}

func TestValidateProgram_WrongType(t *testing.T) {
	err := ValidateProgram(map[string]any{
		"disclosure_timeline_days": "ninety",
	})
	require.Error(t, err)

	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)
}
