package kpi

import (
	"github.com/rs/zerolog"

	"github.com/AmiraLearning/amira-amirabot-analysis/internal/config"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/models"
)

// ResolutionPredicate decides whether a conversation was resolved on the
// first turn. The exact rule belongs to the upstream evaluator contract,
// so it is injected rather than hard-coded.
type ResolutionPredicate func(models.AnalysisRecord) bool

// DefaultResolutionPredicate counts a record when its correctness
// sub-score meets the first-turn threshold and no flag sits past turn 0.
func DefaultResolutionPredicate(th config.Thresholds) ResolutionPredicate {
	return func(r models.AnalysisRecord) bool {
		if r.Metrics.CorrectnessScore < th.CorrectnessFirstTurn {
			return false
		}
		for _, f := range r.Flags {
			if f.Turn > 0 {
				return false
			}
		}
		return true
	}
}

// Calculator reduces a record collection into fleet-level KPIs.
type Calculator struct {
	thresholds config.Thresholds
	resolved   ResolutionPredicate
	logger     *zerolog.Logger
}

func NewCalculator(th config.Thresholds, resolved ResolutionPredicate, logger *zerolog.Logger) *Calculator {
	if resolved == nil {
		resolved = DefaultResolutionPredicate(th)
	}
	return &Calculator{
		thresholds: th,
		resolved:   resolved,
		logger:     logger,
	}
}

// Calculate is a pure reduction over the input slice. Zero records yield
// all-zero metrics, never a division by zero.
func (c *Calculator) Calculate(records []models.AnalysisRecord) models.KPIMetrics {
	total := len(records)
	if total == 0 {
		return models.KPIMetrics{}
	}

	var (
		passCount      int
		scoreSum       int
		prizeCount     int
		firstTurnCount int
		escalationOK   int
		clearNextStep  int
		cyclesSum      int
	)

	for _, r := range records {
		if r.OverallVerdict == models.VerdictPass {
			passCount++
		}
		scoreSum += r.OverallScore
		if r.PrizeCandidate {
			prizeCount++
		}
		if c.resolved(r) {
			firstTurnCount++
		}
		if r.Metrics.EscalationScore >= c.thresholds.EscalationGood {
			escalationOK++
		}
		if r.HasClearNextStep {
			clearNextStep++
		}
		cyclesSum += r.CyclesWithoutProgress
	}

	n := float64(total)
	metrics := models.KPIMetrics{
		Total:                    total,
		PassCount:                passCount,
		FailCount:                total - passCount,
		PassRate:                 float64(passCount) / n,
		AvgScore:                 float64(scoreSum) / n,
		PrizeCandidateCount:      prizeCount,
		PrizeCandidateRate:       float64(prizeCount) / n,
		FirstTurnResolutionRate:  float64(firstTurnCount) / n,
		EscalationQualityRate:    float64(escalationOK) / n,
		ClearNextStepRate:        float64(clearNextStep) / n,
		AvgCyclesWithoutProgress: float64(cyclesSum) / n,
	}

	c.logger.Debug().
		Int("total", total).
		Float64("pass_rate", metrics.PassRate).
		Float64("avg_score", metrics.AvgScore).
		Msg("KPIs calculated")

	return metrics
}
