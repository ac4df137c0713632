package normalizer

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoLinksPrefix marks an Extracted_Links cell that holds no links.
const NoLinksPrefix = "no links found"

// minLinkLength is the longest candidate that is still rejected.
const minLinkLength = 10

// Delimiters tried in order; the first one present splits the whole field.
var linkDelimiters = []string{",", ";", "\n", "|", "\t"}

// urlHints are substrings of which a kept link must contain at least one.
var urlHints = []string{"http", "www.", ".com", ".org", ".net", ".in"}

// NormalizeLinks turns a raw Extracted_Links cell into absolute URLs.
// Input order is preserved and duplicates are kept. Malformed input yields
// an empty, non-nil slice.
func NormalizeLinks(raw string) []string {
	links := []string{}

	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(lower(raw), NoLinksPrefix) {
		return links
	}

	for _, candidate := range splitLinks(raw) {
		candidate = strings.TrimSpace(candidate)
		if utf8.RuneCountInString(candidate) <= minLinkLength {
			continue
		}

		candidate = addScheme(candidate)

		if looksLikeURL(candidate) {
			links = append(links, candidate)
		}
	}

	return links
}

func splitLinks(raw string) []string {
	for _, delim := range linkDelimiters {
		if strings.Contains(raw, delim) {
			return strings.Split(raw, delim)
		}
	}

	return []string{raw}
}

func addScheme(link string) string {
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}

	if strings.HasPrefix(link, "www.") {
		return "https://" + link
	}

	if strings.Contains(link, ".") && !strings.HasPrefix(link, "no ") {
		return "https://" + link
	}

	return link
}

func looksLikeURL(link string) bool {
	for _, hint := range urlHints {
		if strings.Contains(link, hint) {
			return true
		}
	}

	return false
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
