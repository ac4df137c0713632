package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDecodeRows(t *testing.T) {
	input := "\ufeff Company_Name ,Extracted_Text, Extracted_Links\n" +
		"  RELIANCE LTD ,\"Board approved merger, effective Q3\",www.ril.com\n" +
		"INFY,No significant news,N/A\n" +
		"\n" +
		"SHORT\n"

	rows, err := DecodeRows(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeRows failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}

	if rows[0].Name != "RELIANCE LTD" {
		t.Errorf("Name = %q, want trimmed RELIANCE LTD", rows[0].Name)
	}

	if rows[0].ExtractedText != "Board approved merger, effective Q3" {
		t.Errorf("ExtractedText = %q", rows[0].ExtractedText)
	}

	if rows[0].ExtractedLinks != "www.ril.com" {
		t.Errorf("ExtractedLinks = %q, want www.ril.com", rows[0].ExtractedLinks)
	}

	if rows[0].Line != 2 {
		t.Errorf("Line = %d, want 2", rows[0].Line)
	}

	if rows[1].ExtractedLinks != "" {
		t.Errorf("N/A links should resolve to empty, got %q", rows[1].ExtractedLinks)
	}

	if rows[2].Name != "SHORT" || rows[2].ExtractedText != "" || rows[2].ExtractedLinks != "" {
		t.Errorf("short row = %+v, want defaults for missing cells", rows[2])
	}
}

func TestDecodeRows_OptionalColumnsAbsent(t *testing.T) {
	rows, err := DecodeRows(strings.NewReader("Company_Name\nACME\n"))
	if err != nil {
		t.Fatalf("DecodeRows failed: %v", err)
	}

	if len(rows) != 1 || rows[0].ExtractedText != "" || rows[0].ExtractedLinks != "" {
		t.Errorf("rows = %+v, want one row with empty optional fields", rows)
	}
}

func TestDecodeRows_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"Empty", "", ErrEmptyCSV},
		{"Missing company column", "Name,Extracted_Text\nACME,hi\n", ErrMissingColumn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeRows(strings.NewReader(tt.input))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("DecodeRows error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestReadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "05.01.2025.csv")
	if err := os.WriteFile(path, []byte("Company_Name,Extracted_Text\nタタ,決算発表\n"), 0644); err != nil {
		t.Fatal(err)
	}

	rows, err := ReadRows(path)
	if err != nil {
		t.Fatalf("ReadRows failed: %v", err)
	}

	if len(rows) != 1 || rows[0].Name != "タタ" || rows[0].ExtractedText != "決算発表" {
		t.Errorf("rows = %+v", rows)
	}
}

func TestReadRows_Missing(t *testing.T) {
	if _, err := ReadRows(filepath.Join(t.TempDir(), "missing.csv")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
