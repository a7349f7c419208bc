package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/prasetyadi/dealer-restock/internal/domain"
	"github.com/prasetyadi/dealer-restock/internal/normalize"
)

// SeedLedger builds the initial planning ledger from real assigned stock
// orders: dealer matches, stock-type, resolvable tier, forecast inside the
// seed horizon. The seed is never mutated; planSlots appends to a copy.
func (e *Engine) SeedLedger(snap Snapshot) []domain.PlannedOrder {
	horizon := e.now.AddDate(0, 0, -ledgerSeedDays)
	ledger := make([]domain.PlannedOrder, 0)
	for _, order := range snap.Orders {
		if order.Dealer != snap.Dealer || !order.IsStock() || order.IsFinished() {
			continue
		}
		if !order.UnitFieldPresent || order.UnitID == "" {
			continue
		}
		if !order.HasForecast() || order.Forecast.Before(horizon) {
			continue
		}
		tier, ok := lookupTier(snap.ModelTiers, order.Model)
		if !ok {
			continue
		}
		ledger = append(ledger, domain.PlannedOrder{
			Tier:     tier,
			Model:    normalize.BaseLabel(order.Model),
			Forecast: order.Forecast,
		})
	}
	return ledger
}

// planSlots runs the greedy allocation over time-ordered empty slots. Each
// chosen recommendation is appended to the working ledger so later slots see
// its effect on the rolling-window tallies.
func (e *Engine) planSlots(slots []EmptySlot, seed []domain.PlannedOrder, goals Goals) []domain.SlotPlan {
	ledger := append([]domain.PlannedOrder(nil), seed...)

	models := make([]string, 0, len(goals.ModelGoals))
	for model := range goals.ModelGoals {
		models = append(models, model)
	}
	sort.Strings(models)

	plans := make([]domain.SlotPlan, 0, len(slots))
	for _, slot := range slots {
		windowStart := slot.Forecast.AddDate(0, 0, -rollingWindowDays)

		tier, model := e.chooseAllocation(ledger, goals, models, windowStart, slot.Forecast)

		plan := domain.SlotPlan{
			Forecast:    slot.Forecast,
			Delivery:    slot.Delivery,
			WindowStart: windowStart,
			Tier:        tier,
			TierGoal:    goals.TierGoals[tier],
			TierBooked:  tierTally(ledger, tier, windowStart, slot.Forecast),
		}

		entry := domain.PlannedOrder{Tier: tier, Forecast: slot.Forecast}
		if model != "" {
			booked := modelTally(ledger, model, windowStart, slot.Forecast)
			plan.Model = &model
			plan.ModelGoal = goals.ModelGoals[model]
			plan.ModelBooked = booked
			plan.ProjectedModelCount = booked + 1
			plan.Recommendation = fmt.Sprintf(
				"order 1x %s (tier %s): %d of %d booked in trailing %d days",
				model, tier, booked, goals.ModelGoals[model], rollingWindowDays)
			entry.Model = model
		} else {
			plan.Recommendation = fmt.Sprintf(
				"order any tier %s model: no tier-mapped model available", tier)
		}

		// The only state mutation in the engine: subsequent slots see this
		// allocation in their rolling windows.
		ledger = append(ledger, entry)
		plans = append(plans, plan)
	}
	return plans
}

// chooseAllocation ranks tier-mapped models by rolling-window deficit, tier
// priority, then label. When no model carries a positive deficit it falls
// back to tier-level deficits, and past that to the first tier in priority
// order with its alphabetically first model.
func (e *Engine) chooseAllocation(ledger []domain.PlannedOrder, goals Goals, models []string, from, to time.Time) (string, string) {
	bestModel := ""
	bestDeficit := 0
	bestRank := len(domain.TierPriority) + 1
	for _, model := range models {
		deficit := goals.ModelGoals[model] - modelTally(ledger, model, from, to)
		tier, _ := goals.TierOf(model)
		rank := domain.TierRank(tier)
		if bestModel == "" || deficit > bestDeficit ||
			(deficit == bestDeficit && rank < bestRank) {
			bestModel, bestDeficit, bestRank = model, deficit, rank
		}
	}
	if bestModel != "" && bestDeficit > 0 {
		tier, _ := goals.TierOf(bestModel)
		return tier, bestModel
	}

	// Tier-level fallback.
	fallbackTier := ""
	fallbackDeficit := 0
	for _, target := range goals.Targets {
		deficit := goals.TierGoals[target.Code] - tierTally(ledger, target.Code, from, to)
		if deficit > fallbackDeficit {
			fallbackTier, fallbackDeficit = target.Code, deficit
		}
	}
	if fallbackTier == "" && len(goals.Targets) > 0 {
		fallbackTier = goals.Targets[0].Code
	}

	if tierModels := goals.TierModels[fallbackTier]; len(tierModels) > 0 {
		return fallbackTier, tierModels[0]
	}
	return fallbackTier, ""
}

func modelTally(ledger []domain.PlannedOrder, model string, from, to time.Time) int {
	count := 0
	for _, entry := range ledger {
		if entry.Model == model && inWindow(entry.Forecast, from, to) {
			count++
		}
	}
	return count
}

func tierTally(ledger []domain.PlannedOrder, tier string, from, to time.Time) int {
	count := 0
	for _, entry := range ledger {
		if entry.Tier == tier && inWindow(entry.Forecast, from, to) {
			count++
		}
	}
	return count
}

func inWindow(t, from, to time.Time) bool {
	return !t.Before(from) && !t.After(to)
}

// Plan runs one full planning pass over the snapshot.
func (e *Engine) Plan(snap Snapshot) domain.PlanResult {
	aggregates := e.AggregateModels(snap)

	currentStock := 0
	for _, unit := range snap.Yard {
		if unit.Type == domain.UnitStock {
			currentStock++
		}
	}

	capacity := ResolveCapacity(snap.Dealer, snap.CapacityRows)
	summary := domain.CapacitySummary{
		Dealer:       snap.Dealer,
		CurrentStock: currentStock,
		FillPercent:  FillPercent(currentStock, capacity),
	}
	if capacity != nil {
		summary.MaxCapacity = capacity.MaxCapacity
		summary.MinVolume = capacity.MinVolume
	}

	goals := DeriveGoals(capacity, currentStock, snap.TierTargets, snap.ModelRefs)

	slots := DetectEmptySlots(snap.Dealer, snap.Orders)
	if len(slots) > slotLookahead {
		slots = slots[:slotLookahead]
	}

	seed := e.SeedLedger(snap)

	return domain.PlanResult{
		Dealer:        snap.Dealer,
		GeneratedAt:   e.now,
		NothingToPlan: len(slots) == 0,
		Slots:         e.planSlots(slots, seed, goals),
		Aggregates:    aggregates,
		Capacity:      summary,
		Checkpoint:    e.Checkpoint(snap, slots, capacity),
	}
}
