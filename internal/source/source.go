// Package source discovers dated CSV exports and decodes them into company rows.
package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Source errors.
var (
	ErrInvalidFilename = errors.New("filename is not DD.MM.YYYY.csv")
	ErrEmptyCSV        = errors.New("csv has no header row")
	ErrMissingColumn   = errors.New("csv is missing required column")
)

// CSVExt is the extension of source exports.
const CSVExt = ".csv"

// ListCSVFiles returns the paths of all .csv files directly inside dir,
// sorted by file name. Hidden files and directories are ignored.
func ListCSVFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	var files []string

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != CSVExt {
			continue
		}

		files = append(files, filepath.Join(dir, name))
	}

	sort.Strings(files)

	return files, nil
}

// ParseDateFromFilename converts "23.08.2025.csv" into "2025-08-23".
// Day and month are zero-padded to two digits.
func ParseDateFromFilename(filename string) (string, error) {
	base := strings.TrimSuffix(filepath.Base(filename), CSVExt)

	parts := strings.Split(base, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: %s", ErrInvalidFilename, filename)
	}

	for _, p := range parts {
		if !isDigits(p) {
			return "", fmt.Errorf("%w: %s", ErrInvalidFilename, filename)
		}
	}

	day, month, year := parts[0], parts[1], parts[2]

	return fmt.Sprintf("%s-%s-%s", year, zeroPad(month), zeroPad(day)), nil
}

// SourceFilename is the inverse of ParseDateFromFilename for an ISO date.
// It returns "" when date does not have three dash-separated parts.
func SourceFilename(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return ""
	}

	return parts[2] + "." + parts[1] + "." + parts[0] + CSVExt
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func zeroPad(s string) string {
	if len(s) >= 2 {
		return s
	}

	return strings.Repeat("0", 2-len(s)) + s
}
