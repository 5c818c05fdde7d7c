package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/AmiraLearning/amira-amirabot-analysis/internal/models"
)

const fixNowDisplayLimit = 10

// Markdown writes the human-facing report. It is a pure function of the
// report model; all rounding for display happens here.
func Markdown(w io.Writer, rep models.Report) error {
	kpis := rep.KPIs
	grouped := rep.TriageByPriority()

	lines := []string{
		"# Conversation Quality Analysis Report",
		"",
		fmt.Sprintf("**Report ID:** %s", rep.RunID),
		fmt.Sprintf("**Generated:** %s", rep.GeneratedAt.Format("2006-01-02 15:04:05 MST")),
		fmt.Sprintf("**Total Conversations Analyzed:** %d", rep.TotalConversations),
	}
	if rep.SkippedRecordCount > 0 {
		lines = append(lines, fmt.Sprintf("**Skipped Records:** %d", rep.SkippedRecordCount))
	}

	lines = append(lines,
		"",
		"---",
		"",
		"## Executive Summary",
		"",
		fmt.Sprintf("- **Overall Pass Rate:** %.1f%% (%d PASS / %d FAIL)", kpis.PassRate*100, kpis.PassCount, kpis.FailCount),
		fmt.Sprintf("- **Average Quality Score:** %.1f/100", kpis.AvgScore),
		fmt.Sprintf("- **Prize Candidates (High-Impact Issues):** %d (%.1f%%)", kpis.PrizeCandidateCount, kpis.PrizeCandidateRate*100),
		"",
		"---",
		"",
		"## Key Performance Indicators",
		"",
		"| Metric | Value | Target |",
		"|--------|-------|--------|",
		fmt.Sprintf("| Obvious Answer Resolution (≤1 turn) | %.1f%% | ≥80%% |", kpis.FirstTurnResolutionRate*100),
		fmt.Sprintf("| Good Escalation Quality | %.1f%% | ≥90%% |", kpis.EscalationQualityRate*100),
		fmt.Sprintf("| Clear Next Step (final turn) | %.1f%% | 100%% |", kpis.ClearNextStepRate*100),
		fmt.Sprintf("| Avg Cycles Without Progress | %.2f | <1.0 |", kpis.AvgCyclesWithoutProgress),
		"",
		"---",
		"",
		"## Priority Triage",
		"",
		"### FIX NOW (Critical Issues)",
		"",
	)

	fixNow := grouped[models.PriorityFixNow]
	if len(fixNow) > 0 {
		lines = append(lines, fmt.Sprintf("**%d conversations require immediate attention**", len(fixNow)), "")
		for i, entry := range fixNow {
			if i == fixNowDisplayLimit {
				break
			}
			lines = append(lines,
				fmt.Sprintf("- **%s**", entry.ConversationID),
				fmt.Sprintf("  - Score: %d/100", entry.Score),
				fmt.Sprintf("  - Reason: %s", entry.Reason),
				fmt.Sprintf("  - Issues: %s", joinIssueTypes(entry.IssueTypes)),
				"",
			)
		}
	} else {
		lines = append(lines, "✓ No critical issues requiring immediate fixes", "")
	}

	for _, bucket := range []struct {
		priority models.Priority
		heading  string
		note     string
	}{
		{models.PriorityHigh, "### HIGH Priority", "need attention soon"},
		{models.PriorityMedium, "### MEDIUM Priority", "below the passing bar"},
	} {
		entries := grouped[bucket.priority]
		if len(entries) == 0 {
			continue
		}
		lines = append(lines,
			bucket.heading,
			"",
			fmt.Sprintf("**%d conversations** %s", len(entries), bucket.note),
			"",
		)
	}

	lines = append(lines,
		"---",
		"",
		"## Pattern Analysis",
		"",
		"### Issues by Type",
		"",
		"| Issue Type | Count | Coverage % | Density | High | Med | Low |",
		"|------------|-------|------------|---------|------|-----|-----|",
	)

	for _, issueType := range rep.PatternRanking {
		stat := rep.Patterns[issueType]
		lines = append(lines, fmt.Sprintf("| %s | %d | %.1f%% | %.2f | %d | %d | %d |",
			issueType, stat.Count, stat.CoveragePct*100, stat.SeverityDensity,
			stat.HighCount, stat.MedCount, stat.LowCount))
	}

	lines = append(lines, "", "---", "", "## Actionable Fixes", "")

	for _, tier := range []models.FixTier{models.TierCritical, models.TierHigh, models.TierMedium} {
		var tierFixes []models.FixRecommendation
		for _, fix := range rep.Fixes {
			if fix.Tier == tier {
				tierFixes = append(tierFixes, fix)
			}
		}
		if len(tierFixes) == 0 {
			continue
		}

		lines = append(lines, fmt.Sprintf("### %s Priority Fixes", tier), "")
		for _, fix := range tierFixes {
			lines = append(lines,
				fmt.Sprintf("#### %s", fix.IssueType),
				"",
				fmt.Sprintf("**Occurrences:** %d (%.1f%% of conversations)", fix.Occurrences, fix.CoveragePct*100),
				"",
				fmt.Sprintf("**Likely Cause:** %s", fix.LikelyCause),
				"",
				"**Recommended Fixes:**",
				"",
			)
			for i, step := range fix.RecommendedFixes {
				lines = append(lines, fmt.Sprintf("%d. %s", i+1, step))
			}
			if len(fix.SampleIDs) > 0 {
				lines = append(lines, "", fmt.Sprintf("**Sample Conversations:** %s", strings.Join(fix.SampleIDs, ", ")))
			}
			lines = append(lines, "", "---", "")
		}
	}

	lines = append(lines,
		"## Next Steps",
		"",
		"1. **Address FIX NOW items** - Review critical conversations and apply fixes",
		"2. **Implement top actionable fixes** - Focus on critical and high priority",
		"3. **Re-run analysis** - Measure improvement after changes",
		"",
		fmt.Sprintf("**Report Generated:** %d conversations analyzed", rep.TotalConversations),
		"",
	)

	_, err := io.WriteString(w, strings.Join(lines, "\n"))
	return err
}

func joinIssueTypes(types []models.IssueType) string {
	if len(types) == 0 {
		return "none"
	}
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
