package generator

import (
	"testing"

	"companynews/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text     string
		expected models.NewsCategory
	}{
		{"No significant news this week", models.CategoryNoNews},
		{"Board approved merger", models.CategoryHasNews},
		{"NO NEWS", models.CategoryNoNews},
		{"There were no significant corporate developments.", models.CategoryNoNews},
		{"", models.CategoryHasNews},
		{"Announcement: no newsletter today", models.CategoryNoNews},
		{"Nothing new", models.CategoryHasNews},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.expected {
				t.Errorf("Classify(%q) = %s, want %s", tt.text, got, tt.expected)
			}

			if IsNoNews(tt.text) != (tt.expected == models.CategoryNoNews) {
				t.Errorf("IsNoNews(%q) disagrees with Classify", tt.text)
			}
		})
	}
}

func TestBuildSummary(t *testing.T) {
	rows := []models.CompanyRow{
		{Name: "ZOMATO", ExtractedText: "Acquisition completed"},
		{Name: "INFY", ExtractedText: "No news"},
		{Name: "BAJAJ", ExtractedText: "Dividend declared", ExtractedLinks: "www.bajaj.com"},
		{Name: "ADANI", ExtractedText: "   "},
		{Name: "CIPLA", ExtractedText: "no significant news"},
	}

	s := BuildSummary("2025-01-05", rows)

	if s.Date != "2025-01-05" {
		t.Errorf("Date = %s", s.Date)
	}

	if s.TotalCompanies != 5 || s.NewsCount != 3 || s.NoNewsCount != 2 {
		t.Errorf("counts = %d/%d/%d, want 5/3/2", s.TotalCompanies, s.NewsCount, s.NoNewsCount)
	}

	wantNews := []string{"ADANI", "BAJAJ", "ZOMATO"}
	for i, name := range wantNews {
		if s.CompaniesWithNews[i].Name != name {
			t.Errorf("CompaniesWithNews[%d] = %s, want %s", i, s.CompaniesWithNews[i].Name, name)
		}
	}

	wantNoNews := []string{"CIPLA", "INFY"}
	for i, name := range wantNoNews {
		if s.CompaniesNoNews[i].Name != name {
			t.Errorf("CompaniesNoNews[%d] = %s, want %s", i, s.CompaniesNoNews[i].Name, name)
		}
	}

	if s.CompaniesWithNews[0].HasContent {
		t.Error("whitespace-only text should not count as content")
	}

	if !s.CompaniesWithNews[1].HasContent || s.CompaniesWithNews[1].LinksRaw != "www.bajaj.com" {
		t.Errorf("BAJAJ entry = %+v", s.CompaniesWithNews[1])
	}
}

func TestBuildSummary_Empty(t *testing.T) {
	s := BuildSummary("2025-01-05", nil)

	if s.CompaniesWithNews == nil || s.CompaniesNoNews == nil {
		t.Error("category lists must be non-nil so they encode as []")
	}

	if s.TotalCompanies != 0 {
		t.Errorf("TotalCompanies = %d, want 0", s.TotalCompanies)
	}
}
