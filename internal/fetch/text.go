// Package fetch - text.go provides HTML-to-text stripping and normalization.
package fetch

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// ExtractText parses HTML and returns its visible text with markup noise
// removed. Policy pages are prose-heavy, so the whole body is kept after
// dropping script/style and chrome elements.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript, nav, footer, header, .cookie-banner, .popup").Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return Normalize(doc.Text(), 0), nil
	}
	return Normalize(body.Text(), 0), nil
}

// Normalize collapses all whitespace runs to single spaces and caps the
// result at maxChars to bound downstream classifier cost. maxChars <= 0
// means no cap.
func Normalize(text string, maxChars int) string {
	text = strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
	if maxChars > 0 && len(text) > maxChars {
		text = text[:maxChars]
	}
	return text
}
