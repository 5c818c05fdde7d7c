package fixes

import (
	"github.com/rs/zerolog"

	"github.com/AmiraLearning/amira-amirabot-analysis/internal/models"
	"github.com/AmiraLearning/amira-amirabot-analysis/internal/patterns"
)

// Rank cut points for priority tiers. Tiers follow rank position, not
// absolute counts: the two most frequent issue types are always the
// critical ones.
const (
	criticalMaxRank = 2
	highMaxRank     = 5
)

// Recommender turns the pattern ranking into an ordered list of
// actionable recommendation blocks via the static catalogue.
type Recommender struct {
	logger *zerolog.Logger
}

func NewRecommender(logger *zerolog.Logger) *Recommender {
	return &Recommender{logger: logger}
}

// Recommend emits one block per ranked issue type with at least one
// occurrence, in ranking order.
func (r *Recommender) Recommend(result patterns.Result) []models.FixRecommendation {
	var recs []models.FixRecommendation

	rank := 0
	for _, issueType := range result.Ranking {
		stat := result.Stats[issueType]
		if stat.Count == 0 {
			continue
		}
		rank++

		likelyCause, recommended, ok := Catalogue(issueType)
		if !ok {
			r.logger.Warn().
				Str("issue_type", string(issueType)).
				Msg("no catalogue entry for issue type")
			continue
		}

		recs = append(recs, models.FixRecommendation{
			IssueType:        issueType,
			Tier:             tierForRank(rank),
			Occurrences:      stat.Count,
			CoveragePct:      stat.CoveragePct,
			LikelyCause:      likelyCause,
			RecommendedFixes: recommended,
			SampleIDs:        stat.SampleIDs,
		})
	}

	r.logger.Debug().Int("recommendations", len(recs)).Msg("fix recommendations assembled")
	return recs
}

func tierForRank(rank int) models.FixTier {
	switch {
	case rank <= criticalMaxRank:
		return models.TierCritical
	case rank <= highMaxRank:
		return models.TierHigh
	default:
		return models.TierMedium
	}
}
