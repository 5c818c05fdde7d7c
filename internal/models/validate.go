package models

import (
	"fmt"
)

// MalformedRecordError names the record and field rejected during
// validation so one bad record never aborts a whole aggregation silently.
type MalformedRecordError struct {
	ConversationID string
	Field          string
	Detail         string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record %q: field %s: %s", e.ConversationID, e.Field, e.Detail)
}

func malformed(id, field, detail string) *MalformedRecordError {
	return &MalformedRecordError{ConversationID: id, Field: field, Detail: detail}
}

var validSeverities = map[Severity]bool{
	SeverityLow:    true,
	SeverityMedium: true,
	SeverityHigh:   true,
}

var validIssueTypes = func() map[IssueType]bool {
	m := make(map[IssueType]bool, len(AllIssueTypes))
	for _, t := range AllIssueTypes {
		m[t] = true
	}
	return m
}()

// Validate checks a record against the evaluator contract. Unknown enum
// values and out-of-range scores are rejected rather than routed to an
// "other" bucket.
func (r AnalysisRecord) Validate() error {
	id := r.ConversationID
	if id == "" {
		return malformed(id, "conversation_id", "missing")
	}
	if r.OverallScore < 0 || r.OverallScore > 100 {
		return malformed(id, "overall_score", fmt.Sprintf("%d outside [0,100]", r.OverallScore))
	}
	if r.OverallVerdict != VerdictPass && r.OverallVerdict != VerdictFail {
		return malformed(id, "overall_verdict", fmt.Sprintf("unknown verdict %q", r.OverallVerdict))
	}
	if r.CyclesWithoutProgress < 0 {
		return malformed(id, "cycles_without_progress", "negative")
	}
	for i, f := range r.Flags {
		if !validIssueTypes[f.IssueType] {
			return malformed(id, fmt.Sprintf("flags[%d].issue_type", i), fmt.Sprintf("unknown issue type %q", f.IssueType))
		}
		if !validSeverities[f.Severity] {
			return malformed(id, fmt.Sprintf("flags[%d].severity", i), fmt.Sprintf("unknown severity %q", f.Severity))
		}
		if f.Turn < 0 {
			return malformed(id, fmt.Sprintf("flags[%d].turn", i), "negative")
		}
	}
	if err := r.Metrics.validate(id); err != nil {
		return err
	}
	return nil
}

func (m SubMetrics) validate(id string) error {
	checks := []struct {
		field string
		value int
		max   int
	}{
		{"metrics.correctness_score", m.CorrectnessScore, 10},
		{"metrics.escalation_score", m.EscalationScore, 30},
		{"metrics.helpfulness_score", m.HelpfulnessScore, 10},
		{"metrics.tone_score", m.ToneScore, 10},
		{"metrics.efficiency_score", m.EfficiencyScore, 10},
	}
	for _, c := range checks {
		if c.value < 0 || c.value > c.max {
			return malformed(id, c.field, fmt.Sprintf("%d outside [0,%d]", c.value, c.max))
		}
	}
	return nil
}
