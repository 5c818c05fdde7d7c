package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/AmiraLearning/amira-amirabot-analysis/internal/render"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/setup"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/store"
)

func main() {
	startTime := time.Now()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	analyses := flag.String("analyses", "", "Directory of per-conversation analysis JSONs")
	output := flag.String("output", "", "Output file path (default stdout)")
	format := flag.String("format", "markdown", "Output format. Supported formats: 'markdown', 'json'")
	configPath := flag.String("config", "", "Thresholds YAML file")
	failOnEmpty := flag.Bool("fail-on-empty", false, "Fail instead of emitting an empty report when no records load")
	strict := flag.Bool("strict", false, "Fail the whole batch on the first malformed record")

	flag.Parse()

	if *analyses == "" {
		log.Fatal().Msg("required flag -analyses not provided")
	}
	formatValidator(format)

	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found, using environment variables")
	}

	cfg := setup.LoadConfig()
	cfg.AnalysesDir = *analyses
	if *configPath != "" {
		cfg.ThresholdsPath = *configPath
	}
	cfg.FailOnEmpty = cfg.FailOnEmpty || *failOnEmpty
	cfg.StrictRecords = cfg.StrictRecords || *strict

	deps, err := setup.Wire(cfg, &log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	// Load records
	loader := store.NewLoader(cfg.AnalysesDir, deps.Logger)
	records, loadSkipped, err := loader.Load()
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.AnalysesDir).Msg("Failed to load analysis records")
	}
	if loadSkipped > 0 {
		log.Warn().Int("files", loadSkipped).Msg("Some analysis files could not be read")
	}

	// Aggregate
	rep, err := deps.Builder.Build(records)
	if err != nil {
		log.Fatal().Err(err).Msg("Report generation failed")
	}

	// Open output
	var out io.Writer
	if *output == "" {
		out = os.Stdout
		log.Info().Msg("Writing to stdout")
	} else {
		f, err := os.Create(*output)
		if err != nil {
			log.Fatal().Err(err).Str("file", *output).Msg("Failed to create output file")
		}
		defer f.Close()
		out = f
		log.Info().Str("file", *output).Msg("Writing to output file")
	}

	switch *format {
	case "markdown":
		err = render.Markdown(out, rep)
	case "json":
		err = render.JSON(out, rep)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to render report")
	}

	log.Info().
		Str("run_id", rep.RunID).
		Int("conversations", rep.TotalConversations).
		Int("skipped", rep.SkippedRecordCount).
		Dur("duration", time.Since(startTime)).
		Msg("Report complete")
}

func formatValidator(format *string) {
	validFormats := map[string]bool{"markdown": true, "json": true}
	if !validFormats[*format] {
		log.Fatal().
			Str("format", *format).
			Msg("Invalid format. Supported: markdown, json")
	}
}
