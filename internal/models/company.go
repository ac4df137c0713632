// Package models defines the rows read from CSV exports and the JSON documents
// written for the frontend.
package models

// CompanyRow is one company parsed from a dated CSV export.
// Optional columns are resolved to "" when the column or cell is missing.
type CompanyRow struct {
	Name           string
	ExtractedText  string
	ExtractedLinks string
	Line           int
}

// CompanyRecord is the per-company, per-date detail document.
type CompanyRecord struct {
	CompanyName    string   `json:"company_name"`
	ExtractedText  string   `json:"extracted_text"`
	LinksRaw       string   `json:"links_raw"`
	ProcessedLinks []string `json:"processed_links"`
	Date           string   `json:"date"`
}

// NewsCategory classifies a company for a given date.
type NewsCategory string

// News categories.
const (
	CategoryHasNews NewsCategory = "has_news"
	CategoryNoNews  NewsCategory = "no_news"
)

// CompanySummary is a company entry inside a NewsSummary.
type CompanySummary struct {
	Name       string `json:"name"`
	Text       string `json:"text"`
	LinksRaw   string `json:"links_raw"`
	HasContent bool   `json:"has_content"`
}

// NewsSummary aggregates every company of one date into news and no-news buckets.
type NewsSummary struct {
	Date              string           `json:"date"`
	CompaniesWithNews []CompanySummary `json:"companies_with_news"`
	CompaniesNoNews   []CompanySummary `json:"companies_no_news"`
	TotalCompanies    int              `json:"total_companies"`
	NewsCount         int              `json:"news_count"`
	NoNewsCount       int              `json:"no_news_count"`
}

// DateIndexEntry maps an ISO date to its display form and source CSV name.
type DateIndexEntry struct {
	Date        string `json:"date"`
	DisplayDate string `json:"display_date"`
	Filename    string `json:"filename"`
}
