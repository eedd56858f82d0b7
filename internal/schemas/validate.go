// Package schemas provides JSON Schema validation for the extractor's
// structured output. The extractor's shape follows the disclose.io
// program-list convention, but the model output is only loosely guaranteed,
// so validation results are advisory.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed program.schema.json
var programSchemaJSON string

var (
	programSchema     *gojsonschema.Schema
	programSchemaErr  error
	programSchemaOnce sync.Once
)

// ValidationError represents a schema validation failure with field paths.
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return fmt.Sprintf("schema validation failed: %s", strings.Join(msgs, "; "))
}

// ValidateProgram checks an extraction result against the embedded program
// schema. Returns nil when valid, a *ValidationError when fields mismatch,
// or a plain error when the schema itself cannot be loaded.
func ValidateProgram(data map[string]any) error {
	programSchemaOnce.Do(func() {
		programSchema, programSchemaErr = gojsonschema.NewSchema(
			gojsonschema.NewStringLoader(programSchemaJSON))
	})
	if programSchemaErr != nil {
		return fmt.Errorf("failed to load program schema: %w", programSchemaErr)
	}

	result, err := programSchema.Validate(gojsonschema.NewGoLoader(data))
	if err != nil {
		return fmt.Errorf("failed to validate: %w", err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return verr
}
