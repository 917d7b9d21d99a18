// Package schema validates event payloads before they are published.
package schema

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Validator checks event payloads against their struct tags.
type Validator struct {
	validate *validator.Validate
}

// New creates a new schema validator.
func New() *Validator {
	return &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate returns an error when the event payload is malformed. A failed
// validation means a gateway bug, not a caller error: events are built
// internally from already-validated requests.
func (v *Validator) Validate(event any) error {
	if err := v.validate.Struct(event); err != nil {
		return fmt.Errorf("event schema validation: %w", err)
	}
	return nil
}
