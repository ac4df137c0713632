// Package main provides the cleaner command-line tool for removing Git
// merge-conflict markers from a CSV export in place.
package main

import (
	"flag"
	"fmt"
	"os"

	"companynews/internal/config"
	"companynews/internal/conflict"
	"companynews/internal/logger"
)

func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file (default: "+config.DefaultPath+" if present)")
	inputPath := flag.String("input", "", "CSV file to clean in place (overrides cleaner.input)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error (overrides logging.level)")
	flag.Parse()

	cfg, used, err := config.Resolve(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load config %s: %v\n", used, err)
		os.Exit(1)
	}

	if *inputPath != "" {
		cfg.Cleaner.Input = *inputPath
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
		log.Debug("Loaded configuration", "path", used)
	}

	fmt.Printf("📂 Cleaning: %s\n", cfg.Cleaner.Input)

	res, err := conflict.CleanFile(cfg.Cleaner.Input)
	if err != nil {
		log.Error("Failed to clean file", "file", cfg.Cleaner.Input, "error", err)
		os.Exit(1)
	}

	if res.Unterminated {
		log.Warn("Conflict block has no end marker; all lines after the last ======= were dropped",
			"file", cfg.Cleaner.Input)
	}

	log.Info("Cleaned merge conflicts", "file", cfg.Cleaner.Input, "blocks", res.Blocks, "removed_lines", res.Removed)

	if res.Changed() {
		fmt.Println("✅ CSV file cleaned successfully!")
	} else {
		fmt.Println("✅ No merge conflicts found")
	}
}
