package triage

import (
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/AmiraLearning/amira-amirabot-analysis/internal/config"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/models"
)

var priorityRank = map[models.Priority]int{
	models.PriorityFixNow: 0,
	models.PriorityHigh:   1,
	models.PriorityMedium: 2,
	models.PriorityLow:    3,
}

// Classifier assigns each at-risk conversation a remediation-urgency
// bucket and a human-readable reason.
type Classifier struct {
	thresholds config.Thresholds
	logger     *zerolog.Logger
}

func NewClassifier(th config.Thresholds, logger *zerolog.Logger) *Classifier {
	return &Classifier{thresholds: th, logger: logger}
}

// Classify produces one entry per FAIL or below-threshold record. PASS
// records without a high-severity flag are left out; they still count in
// the KPIs. The returned list is ordered by priority bucket, then
// ascending score, then conversation id.
func (c *Classifier) Classify(records []models.AnalysisRecord) []models.TriageEntry {
	var entries []models.TriageEntry

	for _, r := range records {
		if !c.needsTriage(r) {
			continue
		}
		priority, reason := c.classify(r)
		entries = append(entries, models.TriageEntry{
			ConversationID: r.ConversationID,
			Score:          r.OverallScore,
			Priority:       priority,
			Reason:         reason,
			IssueTypes:     r.IssueTypes(),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if priorityRank[entries[i].Priority] != priorityRank[entries[j].Priority] {
			return priorityRank[entries[i].Priority] < priorityRank[entries[j].Priority]
		}
		if entries[i].Score != entries[j].Score {
			return entries[i].Score < entries[j].Score
		}
		return entries[i].ConversationID < entries[j].ConversationID
	})

	c.logger.Debug().
		Int("records", len(records)).
		Int("triaged", len(entries)).
		Msg("triage complete")

	return entries
}

func (c *Classifier) needsTriage(r models.AnalysisRecord) bool {
	return r.OverallVerdict == models.VerdictFail ||
		r.OverallScore < c.thresholds.ScoreHigh ||
		r.HighSeverityFlag()
}

// classify walks the rule chain highest severity first; the first match
// wins.
func (c *Classifier) classify(r models.AnalysisRecord) (models.Priority, string) {
	if r.HighSeverityFlag(models.IssueMissedEscalation, models.IssueDeadEnd) {
		return models.PriorityFixNow, "High-severity MISSED_ESCALATION or DEAD_END"
	}
	if r.CyclesWithoutProgress >= c.thresholds.LoopsFixNow {
		return models.PriorityFixNow, fmt.Sprintf("Futile loop: %d cycles without progress", r.CyclesWithoutProgress)
	}
	if r.OverallScore < c.thresholds.ScoreLow {
		return models.PriorityHigh, c.scoreReason(r, fmt.Sprintf("Low quality score: %d/100", r.OverallScore))
	}
	if r.OverallScore < c.thresholds.ScoreHigh {
		return models.PriorityMedium, c.scoreReason(r, fmt.Sprintf("Below-average score: %d/100", r.OverallScore))
	}
	return models.PriorityLow, "Minor issues"
}

// scoreReason keeps the fixed wording for records that carry no flags at
// all: a missing flag list must not read like a flag-driven verdict.
func (c *Classifier) scoreReason(r models.AnalysisRecord, flagged string) string {
	if len(r.Flags) == 0 {
		return "Below passing threshold"
	}
	return flagged
}
