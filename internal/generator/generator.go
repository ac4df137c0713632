// Package generator turns dated CSV exports into the JSON documents of the
// company news frontend: one detail file per company and date, one summary
// per date, and the index of available dates.
package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"companynews/internal/index"
	"companynews/internal/logger"
	"companynews/internal/models"
	"companynews/internal/normalizer"
	"companynews/internal/output"
	"companynews/internal/source"
)

// File outcomes recorded in a RunReport.
const (
	StatusProcessed = "processed"
	StatusSkipped   = "skipped"
	StatusFailed    = "failed"
)

var nameReplacer = strings.NewReplacer("/", "-", `\`, "-")

// DetailFilename returns the detail file name of company on date.
// Path separators in the company name are replaced with "-".
func DetailFilename(date, company string) string {
	return index.DetailPrefix + date + "-" + nameReplacer.Replace(company) + index.DetailSuffix
}

// SummaryFilename returns the news summary file name of date.
func SummaryFilename(date string) string {
	return "company-news-" + date + ".json"
}

// FileResult records what happened to one source CSV.
type FileResult struct {
	Err         error
	File        string
	Date        string
	Status      string
	Companies   int
	RowsSkipped int
	News        int
	NoNews      int
}

// RunReport summarizes a Generate run.
type RunReport struct {
	Files        []FileResult
	IndexEntries int
}

// Count returns how many files ended with status.
func (r *RunReport) Count(status string) int {
	n := 0

	for _, f := range r.Files {
		if f.Status == status {
			n++
		}
	}

	return n
}

// Rows returns the report as table cells, one row per source file.
func (r *RunReport) Rows() ([]string, [][]string) {
	headers := []string{"File", "Date", "Companies", "News", "No news", "Status"}

	rows := make([][]string, 0, len(r.Files))
	for _, f := range r.Files {
		status := f.Status
		if f.Err != nil {
			status += ": " + f.Err.Error()
		}

		rows = append(rows, []string{
			f.File,
			f.Date,
			strconv.Itoa(f.Companies),
			strconv.Itoa(f.News),
			strconv.Itoa(f.NoNews),
			status,
		})
	}

	return headers, rows
}

// Generator writes JSON documents for every dated CSV of a folder.
type Generator struct {
	processor *normalizer.Processor
	log       *logger.Logger
	indexFile string
}

// NewGenerator creates a generator writing the date index to indexFile
// inside the output folder. An empty indexFile selects index.DefaultFile.
func NewGenerator(log *logger.Logger, indexFile string) *Generator {
	if indexFile == "" {
		indexFile = index.DefaultFile
	}

	return &Generator{
		processor: normalizer.NewProcessor(),
		log:       log,
		indexFile: indexFile,
	}
}

// Generate processes every CSV in csvDir and writes results to outDir.
// Files whose name or content cannot be parsed are logged and skipped.
// Write failures abort the run and are returned.
func (g *Generator) Generate(csvDir, outDir string) (*RunReport, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	report := &RunReport{}

	files, err := source.ListCSVFiles(csvDir)
	if err != nil {
		g.log.Error("Could not list CSV files", "dir", csvDir, "error", err)
	}

	for _, path := range files {
		res, procErr := g.processFile(path, outDir)
		report.Files = append(report.Files, res)

		if procErr != nil {
			return report, procErr
		}
	}

	entries, err := index.Rebuild(outDir, g.indexFile)
	if err != nil {
		return report, fmt.Errorf("failed to rebuild date index: %w", err)
	}

	report.IndexEntries = len(entries)
	g.log.Info("Generated date index", "file", g.indexFile, "dates", len(entries))

	return report, nil
}

// processFile handles one CSV. The returned error is non-nil only for
// write failures.
func (g *Generator) processFile(path, outDir string) (FileResult, error) {
	filename := filepath.Base(path)
	res := FileResult{File: filename}

	date, err := source.ParseDateFromFilename(filename)
	if err != nil {
		g.log.Warn("Could not parse date from filename", "file", filename)

		res.Status = StatusSkipped
		res.Err = err

		return res, nil
	}

	res.Date = date
	log := g.log.With("file", filename, "date", date)
	log.Info("Processing CSV")

	rows, err := source.ReadRows(path)
	if err != nil {
		log.Error("Error processing CSV", "error", err)

		res.Status = StatusFailed
		res.Err = err

		return res, nil
	}

	valid := make([]models.CompanyRow, 0, len(rows))

	for _, row := range rows {
		record, procErr := g.processor.Process(row, date)
		if procErr != nil {
			log.Warn("Skipping row", "line", row.Line, "error", procErr)

			res.RowsSkipped++

			continue
		}

		if err := output.WriteJSON(filepath.Join(outDir, DetailFilename(date, record.CompanyName)), record); err != nil {
			res.Status = StatusFailed
			res.Err = err

			return res, err
		}

		valid = append(valid, row)
	}

	res.Companies = len(valid)
	log.Info("Generated company detail files", "count", res.Companies)

	summary := BuildSummary(date, valid)

	if err := output.WriteJSON(filepath.Join(outDir, SummaryFilename(date)), summary); err != nil {
		res.Status = StatusFailed
		res.Err = err

		return res, err
	}

	res.News = summary.NewsCount
	res.NoNews = summary.NoNewsCount
	res.Status = StatusProcessed

	log.Info("Generated summary file", "summary", SummaryFilename(date), "news", res.News, "no_news", res.NoNews)

	return res, nil
}
