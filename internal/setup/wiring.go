package setup

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/AmiraLearning/amira-amirabot-analysis/internal/config"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/fixes"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/kpi"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/patterns"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/report"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/triage"
)

// Config is the process-level configuration resolved from flags and env.
type Config struct {
	AnalysesDir    string
	ThresholdsPath string
	FailOnEmpty    bool
	StrictRecords  bool
}

// Dependencies bundles the wired aggregation pipeline.
type Dependencies struct {
	Thresholds config.Thresholds
	Builder    *report.Builder
	Logger     *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		AnalysesDir:    getEnv("ANALYSES_DIR", "analyses"),
		ThresholdsPath: getEnv("THRESHOLDS_CONFIG_PATH", ""),
		FailOnEmpty:    getEnvBool("REPORT_FAIL_ON_EMPTY", false),
		StrictRecords:  getEnvBool("REPORT_STRICT_RECORDS", false),
	}
}

// Wire loads thresholds, builds the four aggregation stages and the
// report builder. Threshold problems surface here, before any records
// are touched.
func Wire(cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	thresholds, err := config.LoadThresholds(cfg.ThresholdsPath)
	if err != nil {
		return nil, fmt.Errorf("load thresholds: %w", err)
	}

	opts := report.Options{
		Malformed:   report.SkipMalformed,
		FailOnEmpty: cfg.FailOnEmpty,
	}
	if cfg.StrictRecords {
		opts.Malformed = report.FailOnMalformed
	}

	builder, err := report.NewBuilder(
		thresholds,
		kpi.NewCalculator(thresholds, nil, logger),
		triage.NewClassifier(thresholds, logger),
		patterns.NewAnalyzer(logger),
		fixes.NewRecommender(logger),
		opts,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("build report pipeline: %w", err)
	}

	return &Dependencies{
		Thresholds: thresholds,
		Builder:    builder,
		Logger:     logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	switch os.Getenv(key) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
