package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPDFText_InvalidData(t *testing.T) {
	_, err := ExtractPDFText([]byte("not a pdf"))
	assert.Error(t, err)

	_, err = ExtractPDFText(nil)
	assert.Error(t, err)
}
