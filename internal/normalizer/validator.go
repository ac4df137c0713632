package normalizer

import (
	"errors"
	"fmt"
	"strings"

	"companynews/internal/models"
)

// Validation errors.
var (
	ErrMissingCompanyName = errors.New("missing company name")
	ErrMissingDate        = errors.New("missing record date")
)

// Validator checks rows before they are turned into records.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks that a row can produce a detail file.
func (v *Validator) Validate(row models.CompanyRow, date string) error {
	if date == "" {
		return ErrMissingDate
	}

	if strings.TrimSpace(row.Name) == "" {
		return fmt.Errorf("%w at line %d", ErrMissingCompanyName, row.Line)
	}

	return nil
}
