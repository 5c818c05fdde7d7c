package report

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/AmiraLearning/amira-amirabot-analysis/internal/config"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/models"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/patterns"
)

// ErrNoRecords signals that a report was requested with zero usable
// records while the caller asked for empty input to abort the run.
var ErrNoRecords = errors.New("no analysis records supplied")

// MalformedPolicy controls how a bad record affects the batch.
type MalformedPolicy string

const (
	// SkipMalformed drops the offending record, keeps going and surfaces
	// the skip count in the report metadata. Default.
	SkipMalformed MalformedPolicy = "skip"
	// FailOnMalformed aborts the whole batch on the first bad record.
	FailOnMalformed MalformedPolicy = "fail"
)

//go:generate mockgen -destination=mocks/mocks.go -package=mocks . KPICalculator,TriageClassifier,PatternAnalyzer,FixRecommender

// KPICalculator reduces records into fleet health metrics.
type KPICalculator interface {
	Calculate(records []models.AnalysisRecord) models.KPIMetrics
}

// TriageClassifier orders at-risk records into priority buckets.
type TriageClassifier interface {
	Classify(records []models.AnalysisRecord) []models.TriageEntry
}

// PatternAnalyzer computes per-issue-type statistics and their ranking.
type PatternAnalyzer interface {
	Analyze(records []models.AnalysisRecord) patterns.Result
}

// FixRecommender maps the pattern ranking to remediation blocks.
type FixRecommender interface {
	Recommend(result patterns.Result) []models.FixRecommendation
}

// Options tune batch-level behavior; the zero value is the default
// policy (skip malformed records, degrade empty input to a zero report).
type Options struct {
	Malformed   MalformedPolicy
	FailOnEmpty bool
}

// Builder assembles the aggregate report from the four independent
// stages. It never mutates its input and returns freshly built
// structures on every call.
type Builder struct {
	kpis     KPICalculator
	triage   TriageClassifier
	patterns PatternAnalyzer
	fixes    FixRecommender
	opts     Options
	logger   *zerolog.Logger
}

// NewBuilder validates the thresholds before anything else so a bad
// configuration never reaches aggregation.
func NewBuilder(
	th config.Thresholds,
	kpis KPICalculator,
	triage TriageClassifier,
	patterns PatternAnalyzer,
	fixes FixRecommender,
	opts Options,
	logger *zerolog.Logger,
) (*Builder, error) {
	if err := th.Validate(); err != nil {
		return nil, err
	}
	if opts.Malformed == "" {
		opts.Malformed = SkipMalformed
	}
	return &Builder{
		kpis:     kpis,
		triage:   triage,
		patterns: patterns,
		fixes:    fixes,
		opts:     opts,
		logger:   logger,
	}, nil
}

// Build runs validation and the four stages over the record collection.
func (b *Builder) Build(records []models.AnalysisRecord) (models.Report, error) {
	valid, skipped, err := b.screen(records)
	if err != nil {
		return models.Report{}, err
	}

	rep := models.Report{
		RunID:              uuid.NewString(),
		GeneratedAt:        time.Now().UTC(),
		TotalConversations: len(valid),
		SkippedRecordCount: skipped,
		Triage:             []models.TriageEntry{},
		Patterns:           map[models.IssueType]models.PatternStat{},
		PatternRanking:     []models.IssueType{},
		Fixes:              []models.FixRecommendation{},
	}

	if len(valid) == 0 {
		if b.opts.FailOnEmpty {
			return models.Report{}, ErrNoRecords
		}
		b.logger.Warn().Int("skipped", skipped).Msg("building empty report: no usable records")
		rep.KPIs = b.kpis.Calculate(valid)
		return rep, nil
	}

	rep.KPIs = b.kpis.Calculate(valid)
	rep.Triage = b.triage.Classify(valid)

	patternResult := b.patterns.Analyze(valid)
	rep.Patterns = patternResult.Stats
	rep.PatternRanking = patternResult.Ranking
	rep.Fixes = b.fixes.Recommend(patternResult)

	b.logger.Info().
		Str("run_id", rep.RunID).
		Int("conversations", rep.TotalConversations).
		Int("skipped", rep.SkippedRecordCount).
		Int("triaged", len(rep.Triage)).
		Msg("report built")

	return rep, nil
}

// screen validates every record up front. Under the skip policy a bad
// record is logged and counted, never silently dropped.
func (b *Builder) screen(records []models.AnalysisRecord) ([]models.AnalysisRecord, int, error) {
	valid := make([]models.AnalysisRecord, 0, len(records))
	skipped := 0

	for _, r := range records {
		err := r.Validate()
		if err == nil {
			valid = append(valid, r)
			continue
		}
		if b.opts.Malformed == FailOnMalformed {
			return nil, 0, err
		}
		skipped++
		b.logger.Warn().
			Str("conversation_id", r.ConversationID).
			Err(err).
			Msg("skipping malformed record")
	}

	return valid, skipped, nil
}
