package inference

import (
	"context"
	"sort"

	"AgriChain/internal/domain/models"
	"AgriChain/internal/services/knowledge"
	"AgriChain/pkg/logger"
)

// minResidualRisk is the floor below which preservation cannot push
// the residual spoilage percentage.
const minResidualRisk = 5

// PreservationRanker picks the three most cost-effective mitigation
// actions for the crop's perishability class.
type PreservationRanker struct {
	log *logger.Logger
}

// NewPreservationRanker creates the preservation ranking component.
func NewPreservationRanker(log *logger.Logger) *PreservationRanker {
	return &PreservationRanker{log: log}
}

// Rank orders the candidate pool by effectiveness per rupee and returns
// the top three with cumulative residual spoilage.
func (p *PreservationRanker) Rank(_ context.Context, crop string, storage models.StorageType, spoilageRiskPct int) ([]models.PreservationAction, error) {
	profile := knowledge.ProfileFor(crop)
	pool := knowledge.ActionPoolFor(profile.Perishability)

	ranked := make([]knowledge.ActionCandidate, len(pool))
	copy(ranked, pool)

	// Free high-impact actions rank first: effectiveness per rupee.
	value := func(a knowledge.ActionCandidate) float64 {
		return float64(a.Effectiveness) * 10 / (a.Cost + 1)
	}
	sort.SliceStable(ranked, func(i, j int) bool { return value(ranked[i]) > value(ranked[j]) })

	if len(ranked) > 3 {
		ranked = ranked[:3]
	}

	actions := make([]models.PreservationAction, 0, len(ranked))
	residual := spoilageRiskPct
	for i, a := range ranked {
		residual = max(minResidualRisk, residual-a.SpoilageReduction)
		actions = append(actions, models.PreservationAction{
			Rank:          i + 1,
			Title:         a.Title,
			Detail:        a.Detail,
			CostDisplay:   a.CostDisplay,
			CostValue:     a.Cost,
			Effectiveness: a.Effectiveness,
			SpoilageAfter: residual,
		})
	}

	p.log.Debug("preservation actions ranked",
		logger.String("crop", profile.Name),
		logger.String("storage", string(storage)),
		logger.Int("residual_risk", residual),
	)
	return actions, nil
}
