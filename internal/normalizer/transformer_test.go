package normalizer

import (
	"reflect"
	"testing"

	"companynews/internal/models"
)

func TestNewTransformer(t *testing.T) {
	tr := NewTransformer()
	if tr == nil {
		t.Fatal("NewTransformer returned nil")
	}
}

func TestTransformer_Transform(t *testing.T) {
	tr := NewTransformer()

	row := models.CompanyRow{
		Name:           "TATA STEEL",
		ExtractedText:  "Board approved merger",
		ExtractedLinks: "www.tatasteel.com; https://nseindia.com/ann/1",
	}

	rec := tr.Transform(row, "2025-01-05")

	if rec.CompanyName != "TATA STEEL" {
		t.Errorf("CompanyName = %s, want TATA STEEL", rec.CompanyName)
	}

	if rec.ExtractedText != "Board approved merger" {
		t.Errorf("ExtractedText = %s, want Board approved merger", rec.ExtractedText)
	}

	if rec.LinksRaw != row.ExtractedLinks {
		t.Errorf("LinksRaw = %s, want raw field unchanged", rec.LinksRaw)
	}

	if rec.Date != "2025-01-05" {
		t.Errorf("Date = %s, want 2025-01-05", rec.Date)
	}

	want := []string{"https://www.tatasteel.com", "https://nseindia.com/ann/1"}
	if !reflect.DeepEqual(rec.ProcessedLinks, want) {
		t.Errorf("ProcessedLinks = %q, want %q", rec.ProcessedLinks, want)
	}
}

func TestTransformer_Transform_NoLinks(t *testing.T) {
	rec := NewTransformer().Transform(models.CompanyRow{Name: "INFY", ExtractedLinks: "No links found"}, "2025-01-05")

	if rec.ProcessedLinks == nil || len(rec.ProcessedLinks) != 0 {
		t.Errorf("ProcessedLinks = %#v, want empty non-nil slice", rec.ProcessedLinks)
	}
}
