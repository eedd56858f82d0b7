package fetch

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_StripsNoise(t *testing.T) {
	html := `<html>
<head><title>ignored</title><style>body { color: red }</style></head>
<body>
<nav>Home | About</nav>
<script>console.log("tracking")</script>
<h1>Vulnerability Disclosure Policy</h1>
<p>Report issues to our security team.</p>
<div class="cookie-banner">We use cookies</div>
<footer>Copyright 2026</footer>
</body>
</html>`

	text, err := ExtractText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Vulnerability Disclosure Policy")
	assert.Contains(t, text, "Report issues to our security team.")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "Home | About")
	assert.NotContains(t, text, "We use cookies")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractText_PlainText(t *testing.T) {
	text, err := ExtractText("just some words")
	require.NoError(t, err)
	assert.Equal(t, "just some words", text)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "a b c", Normalize("  a\n\n b\t\tc  ", 0))
	assert.Equal(t, "", Normalize("   \n\t  ", 0))
}

func TestNormalize_Caps(t *testing.T) {
	long := strings.Repeat("x", 100)
	assert.Len(t, Normalize(long, 40), 40)
	assert.Len(t, Normalize(long, 0), 100)
	assert.Len(t, Normalize(long, -1), 100)
}
