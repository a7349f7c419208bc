package domain

import "time"

// SlotPlan is one recommendation for one empty production slot. Goal and
// booked values are the state of the ledger before this slot's allocation.
type SlotPlan struct {
	Forecast            time.Time `json:"forecast_date"`
	Delivery            time.Time `json:"delivery_date"`
	WindowStart         time.Time `json:"window_start"`
	Tier                string    `json:"tier"`
	TierGoal            int       `json:"tier_goal"`
	TierBooked          int       `json:"tier_booked"`
	Model               *string   `json:"model"`
	ModelGoal           int       `json:"model_goal"`
	ModelBooked         int       `json:"model_booked"`
	Recommendation      string    `json:"recommendation"`
	ProjectedModelCount int       `json:"projected_model_count"`
}

// ModelAggregate is the per-model stock activity table.
type ModelAggregate struct {
	Model          string `json:"model"`
	CurrentStock   int    `json:"current_stock"`
	RecentPGI      int    `json:"recent_pgi"`
	RecentHandover int    `json:"recent_handover"`
	// Incoming counts dealer stock orders by expected-delivery month bucket,
	// bucket 0 being the current month.
	Incoming []int `json:"incoming"`
}

// CapacitySummary reports resolved capacity configuration and current fill.
// FillPercent is nil when max capacity is unconfigured; consumers must show
// a caveat rather than a wrong percentage.
type CapacitySummary struct {
	Dealer       string   `json:"dealer"`
	MaxCapacity  *int     `json:"max_capacity"`
	MinVolume    *int     `json:"min_volume"`
	CurrentStock int      `json:"current_stock"`
	FillPercent  *float64 `json:"fill_percent"`
}

// Configured reports whether any capacity row matched the dealer.
func (c CapacitySummary) Configured() bool {
	return c.MaxCapacity != nil || c.MinVolume != nil
}

// WindowStatus is the outcome of one stock-min checkpoint window.
type WindowStatus string

const (
	WindowPass         WindowStatus = "pass"
	WindowFail         WindowStatus = "fail"
	WindowUnconfigured WindowStatus = "unconfigured"
)

// WindowCheck compares actual stock inflow in one fixed window against a
// fraction of the configured minimum volume target.
type WindowCheck struct {
	Name      string       `json:"name"`
	From      time.Time    `json:"from"`
	To        time.Time    `json:"to"`
	Count     int          `json:"count"`
	Threshold float64      `json:"threshold"`
	Status    WindowStatus `json:"status"`
}

// StockMinReport is the independent diagnostic anchored on the nearest empty
// slot. Applicable is false when there is no empty slot to anchor on.
type StockMinReport struct {
	Applicable bool          `json:"applicable"`
	SlotDate   time.Time     `json:"slot_date,omitempty"`
	Windows    []WindowCheck `json:"windows,omitempty"`
}

// PlanResult is everything one planning run produces.
type PlanResult struct {
	Dealer        string                    `json:"dealer"`
	GeneratedAt   time.Time                 `json:"generated_at"`
	NothingToPlan bool                      `json:"nothing_to_plan"`
	Slots         []SlotPlan                `json:"slots"`
	Aggregates    map[string]ModelAggregate `json:"aggregates"`
	Capacity      CapacitySummary           `json:"capacity"`
	Checkpoint    StockMinReport            `json:"checkpoint"`
}
