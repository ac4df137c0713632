package generator

import (
	"sort"
	"strings"

	"companynews/internal/models"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoNewsPhrases mark extracted text that reports nothing new. Matching is
// case-insensitive substring search. Consumers that classify companies on
// their own must use the same list.
var NoNewsPhrases = []string{
	"no significant news",
	"no news",
	"no significant corporate developments",
}

// IsNoNews reports whether text says the company had no news.
func IsNoNews(text string) bool {
	lowered := cases.Lower(language.Und).String(text)

	for _, phrase := range NoNewsPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}

	return false
}

// Classify returns the news category of extracted text.
func Classify(text string) models.NewsCategory {
	if IsNoNews(text) {
		return models.CategoryNoNews
	}

	return models.CategoryHasNews
}

// BuildSummary groups rows of one date into news and no-news buckets,
// each sorted by company name.
func BuildSummary(date string, rows []models.CompanyRow) models.NewsSummary {
	summary := models.NewsSummary{
		Date:              date,
		CompaniesWithNews: []models.CompanySummary{},
		CompaniesNoNews:   []models.CompanySummary{},
	}

	for _, row := range rows {
		entry := models.CompanySummary{
			Name:       row.Name,
			Text:       row.ExtractedText,
			LinksRaw:   row.ExtractedLinks,
			HasContent: strings.TrimSpace(row.ExtractedText) != "",
		}

		if Classify(row.ExtractedText) == models.CategoryHasNews {
			summary.CompaniesWithNews = append(summary.CompaniesWithNews, entry)
		} else {
			summary.CompaniesNoNews = append(summary.CompaniesNoNews, entry)
		}
	}

	sortByName(summary.CompaniesWithNews)
	sortByName(summary.CompaniesNoNews)

	summary.NewsCount = len(summary.CompaniesWithNews)
	summary.NoNewsCount = len(summary.CompaniesNoNews)
	summary.TotalCompanies = summary.NewsCount + summary.NoNewsCount

	return summary
}

func sortByName(entries []models.CompanySummary) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})
}
