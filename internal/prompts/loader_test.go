package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	prompt, err := Get("analysis.json", "score-policy")
	require.NoError(t, err)
	assert.Contains(t, prompt, "{{.Content}}")
	assert.Contains(t, prompt, "confidence")
}

func TestGet_MissingKey(t *testing.T) {
	_, err := Get("analysis.json", "nonexistent-key")
	assert.Error(t, err)
}

func TestGet_MissingFile(t *testing.T) {
	_, err := Get("nonexistent.json", "any")
	assert.Error(t, err)
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() {
		MustGet("analysis.json", "nonexistent-key")
	})
}

func TestFormat(t *testing.T) {
	template := "Company: {{.Company}}, URL: {{.URL}}"
	result := Format(template, map[string]string{
		"Company": "Acme",
		"URL":     "https://acme.example/vdp",
	})

	assert.Equal(t, "Company: Acme, URL: https://acme.example/vdp", result)
}

func TestFormat_UnknownPlaceholderLeft(t *testing.T) {
	result := Format("Hello {{.Name}}", map[string]string{"Other": "x"})
	assert.Equal(t, "Hello {{.Name}}", result)
}

// Every prompt in the file fills all of its placeholders from the standard
// data set used by the scorer and extractor.
func TestAllPromptsFillCompletely(t *testing.T) {
	for _, key := range []string{"score-policy", "extract-policy"} {
		template, err := Get("analysis.json", key)
		require.NoError(t, err, key)

		filled := Format(template, map[string]string{
			"Company": "Acme",
			"URL":     "https://acme.example/vdp",
			"Content": "policy text",
		})
		assert.False(t, strings.Contains(filled, "{{."), "unfilled placeholder in %s", key)
	}
}
