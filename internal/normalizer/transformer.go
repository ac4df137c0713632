package normalizer

import (
	"companynews/internal/models"
)

// Transformer converts CSV rows into detail records.
type Transformer struct{}

// NewTransformer creates a new transformer instance.
func NewTransformer() *Transformer {
	return &Transformer{}
}

// Transform builds the CompanyRecord of row for the given ISO date.
func (t *Transformer) Transform(row models.CompanyRow, date string) models.CompanyRecord {
	return models.CompanyRecord{
		CompanyName:    row.Name,
		ExtractedText:  row.ExtractedText,
		LinksRaw:       row.ExtractedLinks,
		ProcessedLinks: NormalizeLinks(row.ExtractedLinks),
		Date:           date,
	}
}
