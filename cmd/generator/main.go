// Package main provides the generator command-line tool that turns dated CSV
// exports into the JSON files served to the frontend.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"companynews/internal/config"
	"companynews/internal/generator"
	"companynews/internal/logger"
	"companynews/internal/report"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file (default: "+config.DefaultPath+" if present)")
	inputDir := flag.String("input", "", "Folder containing DD.MM.YYYY.csv exports (overrides generator.input_dir)")
	outputDir := flag.String("output", "", "Folder for generated JSON files (overrides generator.output_dir)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides logging.level)")
	flag.Parse()

	cfg, used, err := config.Resolve(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load config %s: %v\n", used, err)
		os.Exit(1)
	}

	if *inputDir != "" {
		cfg.Generator.InputDir = *inputDir
	}

	if *outputDir != "" {
		cfg.Generator.OutputDir = *outputDir
	}

	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewLogger(cfg.Logging.Level)

	if used != "" {
		log.Debug("Loaded configuration", "path", used, "config", cfg.String())
	}

	fmt.Println("🚀 Starting JSON file generation...")
	fmt.Printf("📂 Input:  %s\n", cfg.Generator.InputDir)
	fmt.Printf("🎯 Output: %s\n", cfg.Generator.OutputDir)

	startTime := time.Now()

	gen := generator.NewGenerator(log, cfg.Generator.IndexFile)

	runReport, err := gen.Generate(cfg.Generator.InputDir, cfg.Generator.OutputDir)
	if runReport != nil && cfg.Generator.ShowSummary && len(runReport.Files) > 0 {
		headers, rows := runReport.Rows()

		fmt.Println()
		fmt.Println(report.RenderTable(headers, rows))
		fmt.Println()
	}

	if err != nil {
		log.Error("Generation aborted", "error", err)
		os.Exit(1)
	}

	fmt.Println("----------------------------------------------------------------")
	fmt.Printf("📈 Summary:\n")
	fmt.Printf("  Processed: %d files\n", runReport.Count(generator.StatusProcessed))
	fmt.Printf("  Skipped:   %d files\n", runReport.Count(generator.StatusSkipped))
	fmt.Printf("  Failed:    %d files\n", runReport.Count(generator.StatusFailed))
	fmt.Printf("  Dates:     %d\n", runReport.IndexEntries)
	fmt.Printf("  Duration:  %v\n", time.Since(startTime))
	fmt.Println("✅ JSON file generation completed!")
}
