// Package input loads company records from the CSV input file.
package input

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/jonathan/vdp-scanner/internal/types"
)

// ReadCompanies reads CompanyRecords from a CSV file with the header row
// `Company Name,Base URL`. Rows missing a URL are skipped with a warning;
// they are never fatal.
func ReadCompanies(path string) ([]types.CompanyRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input CSV %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	return parseCompanies(f)
}

func parseCompanies(r io.Reader) ([]types.CompanyRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; we validate ourselves

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("unexpected CSV header %v, want Company Name,Base URL", header)
	}

	var records []types.CompanyRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Printf("[INPUT] skipping malformed row %d: %v", line, err)
			continue
		}

		if len(row) < 2 || strings.TrimSpace(row[1]) == "" {
			log.Printf("[INPUT] skipping row %d: missing base URL", line)
			continue
		}

		records = append(records, types.CompanyRecord{
			CompanyName: strings.TrimSpace(row[0]),
			BaseURL:     strings.TrimSpace(row[1]),
		})
	}

	return records, nil
}
