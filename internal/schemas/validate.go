// Package schemas validates model output against the embedded profile JSON Schema.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.schema.json
var profileSchema string

var (
	compiled    *gojsonschema.Schema
	compileErr  error
	compileOnce sync.Once
)

// ValidationError lists every field that did not match the schema.
type ValidationError struct {
	Errors []FieldError
}

type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %d. %s: %s;", i+1, err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ProfileSchema returns the raw JSON Schema for the profile payload.
func ProfileSchema() string {
	return profileSchema
}

// ValidateProfile checks a JSON document against the profile schema.
// Returns a *ValidationError when the document parses but has the wrong shape.
func ValidateProfile(document string) error {
	compileOnce.Do(func() {
		compiled, compileErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(profileSchema))
	})
	if compileErr != nil {
		return fmt.Errorf("failed to load profile schema: %w", compileErr)
	}

	result, err := compiled.Validate(gojsonschema.NewStringLoader(document))
	if err != nil {
		return fmt.Errorf("failed to read JSON document: %w", err)
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
