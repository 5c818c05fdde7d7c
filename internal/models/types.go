package models

import (
	"time"
)

type Verdict string

const (
	VerdictPass Verdict = "PASS"
	VerdictFail Verdict = "FAIL"
)

type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// IssueType is the closed set of Tier-0 failure categories the upstream
// evaluator can flag. Unknown values are rejected during validation.
type IssueType string

const (
	IssueObviousWrongAnswer  IssueType = "OBVIOUS_WRONG_ANSWER"
	IssueMissedEscalation    IssueType = "MISSED_ESCALATION"
	IssueDumbQuestion        IssueType = "DUMB_QUESTION"
	IssueRepetitive          IssueType = "REPETITIVE"
	IssueLackOfEncouragement IssueType = "LACK_OF_ENCOURAGEMENT"
	IssueDeadEnd             IssueType = "DEAD_END"
)

// AllIssueTypes lists every issue type in stable (alphabetical) order.
var AllIssueTypes = []IssueType{
	IssueDeadEnd,
	IssueDumbQuestion,
	IssueLackOfEncouragement,
	IssueMissedEscalation,
	IssueObviousWrongAnswer,
	IssueRepetitive,
}

type Priority string

const (
	PriorityFixNow Priority = "FIX_NOW"
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

type FixTier string

const (
	TierCritical FixTier = "CRITICAL"
	TierHigh     FixTier = "HIGH"
	TierMedium   FixTier = "MEDIUM"
)

// Flag is a single detected issue instance within one conversation.
type Flag struct {
	IssueType   IssueType `json:"issue_type"`
	Severity    Severity  `json:"severity"`
	Description string    `json:"description"`
	Turn        int       `json:"turn"`
}

// SubMetrics holds the evaluator's weighted sub-scores.
type SubMetrics struct {
	CorrectnessScore int `json:"correctness_score"` // 0-10
	EscalationScore  int `json:"escalation_score"`  // 0-30
	HelpfulnessScore int `json:"helpfulness_score"` // 0-10
	ToneScore        int `json:"tone_score"`        // 0-10
	EfficiencyScore  int `json:"efficiency_score"`  // 0-10
}

// AnalysisRecord is one conversation's quality assessment, produced by the
// upstream evaluator. The engine treats it as immutable input.
type AnalysisRecord struct {
	ConversationID        string     `json:"conversation_id"`
	OverallScore          int        `json:"overall_score"`
	OverallVerdict        Verdict    `json:"overall_verdict"`
	Flags                 []Flag     `json:"flags"`
	Metrics               SubMetrics `json:"metrics"`
	HasClearNextStep      bool       `json:"has_clear_next_step"`
	CyclesWithoutProgress int        `json:"cycles_without_progress"`
	PrizeCandidate        bool       `json:"prize_candidate"`
	Summary               string     `json:"summary,omitempty"`
	PrizeReason           string     `json:"prize_reason,omitempty"`
}

// HighSeverityFlag reports whether any flag on the record carries high
// severity, optionally restricted to the given issue types.
func (r AnalysisRecord) HighSeverityFlag(types ...IssueType) bool {
	for _, f := range r.Flags {
		if f.Severity != SeverityHigh {
			continue
		}
		if len(types) == 0 {
			return true
		}
		for _, t := range types {
			if f.IssueType == t {
				return true
			}
		}
	}
	return false
}

// IssueTypes returns the distinct issue types across the record's flags,
// in stable (alphabetical) order.
func (r AnalysisRecord) IssueTypes() []IssueType {
	seen := map[IssueType]bool{}
	for _, f := range r.Flags {
		seen[f.IssueType] = true
	}
	var out []IssueType
	for _, t := range AllIssueTypes {
		if seen[t] {
			out = append(out, t)
		}
	}
	return out
}

// TriageEntry is one conversation's remediation-urgency assignment.
// Recomputed on every aggregation pass, never persisted.
type TriageEntry struct {
	ConversationID string      `json:"conversation_id"`
	Score          int         `json:"score"`
	Priority       Priority    `json:"priority"`
	Reason         string      `json:"reason"`
	IssueTypes     []IssueType `json:"issue_types"`
}

// PatternStat aggregates one issue type across the whole collection.
// Count is the number of distinct conversations carrying the type;
// the severity buckets count individual flags, so SeverityDensity
// (flags per affected conversation) is >= 1 whenever Count > 0.
type PatternStat struct {
	Count           int      `json:"count"`
	CoveragePct     float64  `json:"coverage_pct"`
	SeverityDensity float64  `json:"severity_density"`
	HighCount       int      `json:"high_count"`
	MedCount        int      `json:"med_count"`
	LowCount        int      `json:"low_count"`
	SampleIDs       []string `json:"sample_conversation_ids,omitempty"`
}

// KPIMetrics are the fleet-level health numbers. Rates are full-precision
// fractions in [0,1]; rounding happens at the rendering boundary.
type KPIMetrics struct {
	Total                    int     `json:"total"`
	PassCount                int     `json:"pass_count"`
	FailCount                int     `json:"fail_count"`
	PassRate                 float64 `json:"pass_rate"`
	AvgScore                 float64 `json:"avg_score"`
	PrizeCandidateCount      int     `json:"prize_candidate_count"`
	PrizeCandidateRate       float64 `json:"prize_candidate_rate"`
	FirstTurnResolutionRate  float64 `json:"first_turn_resolution_rate"`
	EscalationQualityRate    float64 `json:"escalation_quality_rate"`
	ClearNextStepRate        float64 `json:"clear_next_step_rate"`
	AvgCyclesWithoutProgress float64 `json:"avg_cycles_without_progress"`
}

// FixRecommendation maps one issue type to its remediation guidance.
type FixRecommendation struct {
	IssueType        IssueType `json:"issue_type"`
	Tier             FixTier   `json:"priority_tier"`
	Occurrences      int       `json:"occurrences"`
	CoveragePct      float64   `json:"coverage_pct"`
	LikelyCause      string    `json:"likely_cause"`
	RecommendedFixes []string  `json:"recommended_fixes"`
	SampleIDs        []string  `json:"sample_conversation_ids,omitempty"`
}

// Report is the aggregate output handed to rendering collaborators.
type Report struct {
	RunID              string                    `json:"run_id"`
	GeneratedAt        time.Time                 `json:"generated_at"`
	TotalConversations int                       `json:"total_conversations"`
	SkippedRecordCount int                       `json:"skipped_record_count"`
	KPIs               KPIMetrics                `json:"kpis"`
	Triage             []TriageEntry             `json:"triage"`
	Patterns           map[IssueType]PatternStat `json:"patterns"`
	PatternRanking     []IssueType               `json:"pattern_ranking"`
	Fixes              []FixRecommendation       `json:"fixes"`
}

// TriageByPriority groups the triage list by bucket, preserving order.
func (r Report) TriageByPriority() map[Priority][]TriageEntry {
	grouped := map[Priority][]TriageEntry{}
	for _, entry := range r.Triage {
		grouped[entry.Priority] = append(grouped[entry.Priority], entry)
	}
	return grouped
}
