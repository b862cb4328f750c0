package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"postgen/internal/batch"
	"postgen/internal/config"
	"postgen/internal/feed"
	"postgen/internal/logger"
	"postgen/internal/report"
)

var (
	excelPath  string
	outPath    string
	configPath string
	logLevel   string
)

func init() {
	rootCmd.Flags().StringVarP(&excelPath, "excel", "e", "", "Path to the product feed (xlsx or csv, required)")
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output root directory for generated posts (required)")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML configuration file (optional)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")

	if err := rootCmd.MarkFlagRequired("excel"); err != nil {
		panic(fmt.Sprintf("failed to mark excel flag as required: %v", err))
	}

	if err := rootCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}
}

func runGenerate(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logger.NewLogger(resolveLogLevel(cfg))

	// The input must exist before anything is written.
	if _, err := os.Stat(excelPath); err != nil {
		return fmt.Errorf("input feed %s does not exist: %w", excelPath, err)
	}

	if err := os.MkdirAll(outPath, 0755); err != nil {
		return fmt.Errorf("failed to create output root %s: %w", outPath, err)
	}

	log.Info("🚀 starting post generation", "feed", excelPath, "out", outPath)

	startTime := time.Now()

	rows, err := feed.ReadFile(excelPath)
	if err != nil {
		return fmt.Errorf("failed to read feed: %w", err)
	}

	log.Info("feed loaded", "rows", len(rows))

	driver := batch.NewDriver(cfg, log)
	results := driver.Run(rows, outPath)

	log.Info("✨ generation complete", "duration", time.Since(startTime).Round(time.Millisecond))

	fmt.Println()
	fmt.Println(report.Summarize(results))

	return nil
}

func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.DefaultConfig(), nil
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// resolveLogLevel prefers the flag, then POSTGEN_LOG_LEVEL, then config.
func resolveLogLevel(cfg *config.Config) string {
	if logLevel != "" {
		return logLevel
	}

	if env := os.Getenv("POSTGEN_LOG_LEVEL"); env != "" {
		return env
	}

	return cfg.Logging.Level
}
