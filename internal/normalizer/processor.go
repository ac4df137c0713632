// Package normalizer turns raw CSV rows into the records published to the frontend.
package normalizer

import (
	"fmt"

	"companynews/internal/models"
)

// Processor validates and transforms rows.
type Processor struct {
	validator   *Validator
	transformer *Transformer
}

// NewProcessor creates a new processor instance.
func NewProcessor() *Processor {
	return &Processor{
		validator:   NewValidator(),
		transformer: NewTransformer(),
	}
}

// Process turns one row into a CompanyRecord for date.
func (p *Processor) Process(row models.CompanyRow, date string) (models.CompanyRecord, error) {
	if err := p.validator.Validate(row, date); err != nil {
		return models.CompanyRecord{}, fmt.Errorf("validation failed: %w", err)
	}

	return p.transformer.Transform(row, date), nil
}
