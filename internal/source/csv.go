package source

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"companynews/internal/models"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Column names of the export.
const (
	ColumnCompanyName    = "Company_Name"
	ColumnExtractedText  = "Extracted_Text"
	ColumnExtractedLinks = "Extracted_Links"
)

// missingValues are cell contents the exporter uses for "no value".
var missingValues = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

// ReadRows reads the CSV file at path.
func ReadRows(path string) ([]models.CompanyRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return DecodeRows(f)
}

// DecodeRows parses CSV with a header row into company rows. A leading byte
// order mark is removed and header names are trimmed. Only Company_Name is
// required; Extracted_Text and Extracted_Links default to "".
func DecodeRows(r io.Reader) ([]models.CompanyRow, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	cr := csv.NewReader(decoded)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyCSV
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	nameCol := columnIndex(header, ColumnCompanyName)
	if nameCol < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, ColumnCompanyName)
	}

	textCol := columnIndex(header, ColumnExtractedText)
	linksCol := columnIndex(header, ColumnExtractedLinks)

	rows := []models.CompanyRow{}

	for {
		record, readErr := cr.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return nil, fmt.Errorf("failed to parse csv: %w", readErr)
		}

		line, _ := cr.FieldPos(0)

		rows = append(rows, models.CompanyRow{
			Name:           strings.TrimSpace(cell(record, nameCol)),
			ExtractedText:  optional(record, textCol),
			ExtractedLinks: optional(record, linksCol),
			Line:           line,
		})
	}

	return rows, nil
}

func columnIndex(header []string, name string) int {
	for i, h := range header {
		if strings.TrimSpace(h) == name {
			return i
		}
	}

	return -1
}

func cell(record []string, col int) string {
	if col < 0 || col >= len(record) {
		return ""
	}

	return record[col]
}

func optional(record []string, col int) string {
	v := cell(record, col)
	if _, missing := missingValues[v]; missing {
		return ""
	}

	return v
}
