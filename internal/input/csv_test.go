package input

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/vdp-scanner/internal/types"
)

func TestParseCompanies(t *testing.T) {
	csv := `Company Name,Base URL
Acme Corp,https://acme.example
Globex,globex.example
`
	records, err := parseCompanies(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, types.CompanyRecord{CompanyName: "Acme Corp", BaseURL: "https://acme.example"}, records[0])
	assert.Equal(t, types.CompanyRecord{CompanyName: "Globex", BaseURL: "globex.example"}, records[1])
}

func TestParseCompanies_SkipsRowsWithoutURL(t *testing.T) {
	csv := `Company Name,Base URL
Acme Corp,https://acme.example
No URL Inc,
Short Row
Globex,https://globex.example
`
	records, err := parseCompanies(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "Acme Corp", records[0].CompanyName)
	assert.Equal(t, "Globex", records[1].CompanyName)
}

func TestParseCompanies_TrimsWhitespace(t *testing.T) {
	csv := "Company Name,Base URL\n  Acme Corp  ,  https://acme.example  \n"

	records, err := parseCompanies(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, "Acme Corp", records[0].CompanyName)
	assert.Equal(t, "https://acme.example", records[0].BaseURL)
}

func TestParseCompanies_BadHeader(t *testing.T) {
	_, err := parseCompanies(strings.NewReader("Company Name\nAcme,https://acme.example\n"))
	assert.Error(t, err)
}

func TestParseCompanies_EmptyInput(t *testing.T) {
	_, err := parseCompanies(strings.NewReader(""))
	assert.Error(t, err)
}

func TestParseCompanies_HeaderOnly(t *testing.T) {
	records, err := parseCompanies(strings.NewReader("Company Name,Base URL\n"))
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadCompanies_MissingFile(t *testing.T) {
	_, err := ReadCompanies("/nonexistent/companies.csv")
	assert.Error(t, err)
}
