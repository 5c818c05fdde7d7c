package patterns

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/AmiraLearning/amira-amirabot-analysis/internal/models"
)

const maxSampleIDs = 3

// Result holds per-issue-type statistics plus the global ranking the fix
// recommender consumes (descending by affected-conversation count, ties
// broken alphabetically).
type Result struct {
	Stats   map[models.IssueType]models.PatternStat
	Ranking []models.IssueType
}

// Analyzer mines issue-type frequency, coverage and severity spread
// across the whole collection.
type Analyzer struct {
	logger *zerolog.Logger
}

func NewAnalyzer(logger *zerolog.Logger) *Analyzer {
	return &Analyzer{logger: logger}
}

// Analyze is a pure reduction. Count is the number of distinct
// conversations carrying at least one flag of the type; the severity
// buckets count every flag, so density = bucket sum / count.
func (a *Analyzer) Analyze(records []models.AnalysisRecord) Result {
	type tally struct {
		high, med, low int
		affected       map[string]bool
		samples        []string
	}
	tallies := map[models.IssueType]*tally{}

	for _, r := range records {
		for _, f := range r.Flags {
			t := tallies[f.IssueType]
			if t == nil {
				t = &tally{affected: map[string]bool{}}
				tallies[f.IssueType] = t
			}
			switch f.Severity {
			case models.SeverityHigh:
				t.high++
			case models.SeverityMedium:
				t.med++
			case models.SeverityLow:
				t.low++
			}
			if !t.affected[r.ConversationID] {
				t.affected[r.ConversationID] = true
				if len(t.samples) < maxSampleIDs {
					t.samples = append(t.samples, r.ConversationID)
				}
			}
		}
	}

	total := len(records)
	stats := make(map[models.IssueType]models.PatternStat, len(tallies))
	ranking := make([]models.IssueType, 0, len(tallies))

	for issueType, t := range tallies {
		count := len(t.affected)
		flagTotal := t.high + t.med + t.low
		stat := models.PatternStat{
			Count:     count,
			HighCount: t.high,
			MedCount:  t.med,
			LowCount:  t.low,
			SampleIDs: t.samples,
		}
		if total > 0 {
			stat.CoveragePct = float64(count) / float64(total)
		}
		if count > 0 {
			stat.SeverityDensity = float64(flagTotal) / float64(count)
		}
		stats[issueType] = stat
		ranking = append(ranking, issueType)
	}

	sort.Slice(ranking, func(i, j int) bool {
		if stats[ranking[i]].Count != stats[ranking[j]].Count {
			return stats[ranking[i]].Count > stats[ranking[j]].Count
		}
		return ranking[i] < ranking[j]
	})

	a.logger.Debug().
		Int("records", total).
		Int("issue_types", len(stats)).
		Msg("pattern analysis complete")

	return Result{Stats: stats, Ranking: ranking}
}
