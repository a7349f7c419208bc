// Package planner implements the restock planning engine: per-model stock
// aggregation, capacity tracking, empty-slot detection, tier/model goal
// derivation, the greedy time-ordered allocation loop, and the stock-min
// checkpoint diagnostic.
//
// One invocation consumes a full in-memory snapshot of the dealer's feeds and
// returns a plan; no state survives between invocations and concurrent runs
// for different dealers share nothing.
package planner

import (
	"time"

	"github.com/prasetyadi/dealer-restock/internal/domain"
	"github.com/prasetyadi/dealer-restock/internal/normalize"
)

const (
	// lookbackMonths bounds the recent PGI/handover aggregation.
	lookbackMonths = 3
	// incomingMonths is the month-bucket horizon for inbound forecasts.
	incomingMonths = 8
	// rollingWindowDays is the trailing span used for deficit scoring.
	rollingWindowDays = 90
	// slotLookahead caps how many empty slots one run plans for.
	slotLookahead = 10
	// ledgerSeedDays bounds how far back real orders seed the ledger.
	ledgerSeedDays = 90
)

// RawFeeds is the untouched per-dealer feed snapshot as it comes out of the
// document store. BuildSnapshot runs it through the normalizer.
type RawFeeds struct {
	Schedule    []normalize.Record          `json:"schedule"`
	Yard        map[string]normalize.Record `json:"yard"`
	PGI         []normalize.Record          `json:"pgi"`
	Handover    []normalize.Record          `json:"handover"`
	ModelTiers  []normalize.Record          `json:"model_tiers"`
	TierTargets []normalize.Record          `json:"tier_targets"`
	Capacity    []normalize.Record          `json:"capacity"`
}

// Snapshot is the normalized input to one planning run.
type Snapshot struct {
	Dealer      string
	Orders      []domain.ScheduleOrder
	Yard        []domain.YardUnit
	PGI         []domain.ShipEvent
	Handover    []domain.ShipEvent
	ModelTiers  map[string]domain.ModelTierInfo
	ModelRefs   []normalize.ModelRef
	TierTargets []domain.TierTarget
	// CapacityRows stay raw; the capacity tracker does its own loose
	// matching against inconsistently keyed rows.
	CapacityRows []normalize.Record
}

// BuildSnapshot normalizes a raw feed snapshot for one dealer.
func BuildSnapshot(dealer string, feeds RawFeeds) Snapshot {
	return Snapshot{
		Dealer:       dealer,
		Orders:       normalize.ScheduleOrders(feeds.Schedule),
		Yard:         normalize.YardUnits(feeds.Yard),
		PGI:          normalize.ShipEvents(feeds.PGI),
		Handover:     normalize.ShipEvents(feeds.Handover),
		ModelTiers:   normalize.ModelTiers(feeds.ModelTiers),
		ModelRefs:    normalize.ModelTierRows(feeds.ModelTiers),
		TierTargets:  normalize.TierTargets(feeds.TierTargets),
		CapacityRows: feeds.Capacity,
	}
}

// Engine runs planning against a fixed "today". Injecting the clock keeps a
// run fully deterministic for a given snapshot.
type Engine struct {
	now time.Time
}

// NewEngine returns an engine anchored at the given reference time.
func NewEngine(now time.Time) *Engine {
	return &Engine{now: now}
}

// lookupTier resolves a raw model label against the fanned reference map.
func lookupTier(tiers map[string]domain.ModelTierInfo, model string) (string, bool) {
	for _, label := range normalize.ModelLabels(model) {
		if info, ok := tiers[label]; ok {
			return info.Tier, true
		}
	}
	return "", false
}
