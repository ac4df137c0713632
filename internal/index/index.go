// Package index builds the list of dates for which company details exist.
package index

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"companynews/internal/models"
	"companynews/internal/output"
	"companynews/internal/source"
)

// DefaultFile is the name of the index document.
const DefaultFile = "available-dates.json"

// Detail file naming, shared with the generator.
const (
	DetailPrefix = "company-details-"
	DetailSuffix = ".json"
)

const (
	dateLayout    = "2006-1-2"
	displayLayout = "Monday, January 02, 2006"
)

// BuildIndex derives one entry per distinct date embedded in detail file
// names, newest first. Names that are not detail files or whose date does
// not validate are ignored.
func BuildIndex(filenames []string) []models.DateIndexEntry {
	dates := make(map[string]time.Time)

	for _, name := range filenames {
		date, t, ok := dateFromDetailName(filepath.Base(name))
		if !ok {
			continue
		}

		dates[date] = t
	}

	keys := make([]string, 0, len(dates))
	for d := range dates {
		keys = append(keys, d)
	}

	sort.Slice(keys, func(i, j int) bool {
		ti, tj := dates[keys[i]], dates[keys[j]]
		if !ti.Equal(tj) {
			return ti.After(tj)
		}

		return keys[i] > keys[j]
	})

	entries := make([]models.DateIndexEntry, 0, len(keys))
	for _, d := range keys {
		entries = append(entries, models.DateIndexEntry{
			Date:        d,
			DisplayDate: dates[d].Format(displayLayout),
			Filename:    source.SourceFilename(d),
		})
	}

	return entries
}

// dateFromDetailName extracts the date of "company-details-YYYY-MM-DD-NAME.json".
func dateFromDetailName(name string) (string, time.Time, bool) {
	if !strings.HasPrefix(name, DetailPrefix) || !strings.HasSuffix(name, DetailSuffix) {
		return "", time.Time{}, false
	}

	parts := strings.Split(name, "-")
	if len(parts) < 5 {
		return "", time.Time{}, false
	}

	date := parts[2] + "-" + parts[3] + "-" + parts[4]

	t, err := time.Parse(dateLayout, date)
	if err != nil {
		return "", time.Time{}, false
	}

	return date, t, true
}

// Rebuild lists dir, builds the index and rewrites dir/file from scratch.
func Rebuild(dir, file string) ([]models.DateIndexEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}

	idx := BuildIndex(names)

	if err := output.WriteJSON(filepath.Join(dir, file), idx); err != nil {
		return nil, err
	}

	return idx, nil
}
