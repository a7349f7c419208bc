package planner

import (
	"math"
	"sort"

	"github.com/prasetyadi/dealer-restock/internal/domain"
	"github.com/prasetyadi/dealer-restock/internal/normalize"
)

// Goals holds the derived absolute count targets for one planning run.
type Goals struct {
	Baseline   float64
	TierGoals  map[string]int
	ModelGoals map[string]int
	// TierModels maps each tier to its models, alphabetically sorted.
	TierModels map[string][]string
	// Targets preserves the configured tier order for fallback selection.
	Targets []domain.TierTarget
}

// TierOf returns the tier a goal-bearing model belongs to.
func (g Goals) TierOf(model string) (string, bool) {
	for tier, models := range g.TierModels {
		for _, m := range models {
			if m == model {
				return tier, true
			}
		}
	}
	return "", false
}

// DeriveGoals converts tier share targets into absolute count goals.
// Capacity baseline is the average of max and min when both are configured,
// whichever one is known otherwise, and the current total stock count as the
// last resort. Every goal is floored at 1 so no tier or model ever falls out
// of allocation eligibility. Models without a tier mapping receive no goal.
func DeriveGoals(capacity *domain.CapacityProfile, currentStock int, targets []domain.TierTarget, models []normalize.ModelRef) Goals {
	baseline := capacityBaseline(capacity, currentStock)

	goals := Goals{
		Baseline:   baseline,
		TierGoals:  make(map[string]int, len(targets)),
		ModelGoals: make(map[string]int),
		TierModels: make(map[string][]string),
		Targets:    sortTargets(targets),
	}

	for _, ref := range models {
		goals.TierModels[ref.Info.Tier] = append(goals.TierModels[ref.Info.Tier], ref.Model)
	}
	for tier := range goals.TierModels {
		sort.Strings(goals.TierModels[tier])
	}

	for _, target := range goals.Targets {
		tierGoal := atLeastOne(int(math.Floor(baseline * target.Share)))
		goals.TierGoals[target.Code] = tierGoal

		tierModels := goals.TierModels[target.Code]
		if len(tierModels) == 0 {
			continue
		}
		modelGoal := atLeastOne(tierGoal / len(tierModels))
		for _, model := range tierModels {
			goals.ModelGoals[model] = modelGoal
		}
	}

	return goals
}

func capacityBaseline(capacity *domain.CapacityProfile, currentStock int) float64 {
	if capacity != nil {
		switch {
		case capacity.MaxCapacity != nil && capacity.MinVolume != nil:
			return float64(*capacity.MaxCapacity+*capacity.MinVolume) / 2
		case capacity.MaxCapacity != nil:
			return float64(*capacity.MaxCapacity)
		case capacity.MinVolume != nil:
			return float64(*capacity.MinVolume)
		}
	}
	return float64(currentStock)
}

// sortTargets orders configured targets by the fixed tier priority so the
// fallback walk is deterministic even if configuration rows arrive shuffled.
func sortTargets(targets []domain.TierTarget) []domain.TierTarget {
	out := append([]domain.TierTarget(nil), targets...)
	sort.SliceStable(out, func(i, j int) bool {
		return domain.TierRank(out[i].Code) < domain.TierRank(out[j].Code)
	})
	return out
}

func atLeastOne(n int) int {
	if n < 1 {
		return 1
	}
	return n
}
