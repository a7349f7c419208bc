// internal/domain/models.go
package domain

import (
	"strings"
	"time"
)

// DeliveryLagDays is the fixed production-to-delivery lag applied to every
// forecast production date in the system.
const DeliveryLagDays = 40

// UnitType classifies a yard unit as dealer-owned stock or a named-customer unit.
type UnitType string

const (
	UnitStock    UnitType = "Stock"
	UnitCustomer UnitType = "Customer"
)

// ScheduleOrder is one production order from the schedule feed, after
// normalization. Forecast is the zero time when the raw date was absent or
// unparseable; such orders are excluded from any date-bounded computation.
type ScheduleOrder struct {
	Dealer   string    `json:"dealer"`
	Customer string    `json:"customer"`
	Model    string    `json:"model"`
	Forecast time.Time `json:"forecast_date"`
	// UnitFieldPresent records whether the raw record carried an
	// assigned-unit field at all. Only absence of the field marks an order
	// as unassigned; present-but-empty does not.
	UnitFieldPresent bool   `json:"unit_field_present"`
	UnitID           string `json:"unit_id,omitempty"`
	Status           string `json:"status,omitempty"`
}

// HasForecast reports whether the order carries a parseable forecast date.
func (o ScheduleOrder) HasForecast() bool {
	return !o.Forecast.IsZero()
}

// IsStock reports whether the order is dealer-owned stock. A "stock" suffix
// on the customer label marks dealer stock; anything else is a named customer.
func (o ScheduleOrder) IsStock() bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(o.Customer)), "stock")
}

// IsFinished reports whether production has completed for this order.
func (o ScheduleOrder) IsFinished() bool {
	return strings.EqualFold(strings.TrimSpace(o.Status), "finished")
}

// Delivery returns the expected delivery date (forecast + fixed lag).
// Zero when the order has no forecast.
func (o ScheduleOrder) Delivery() time.Time {
	if !o.HasForecast() {
		return time.Time{}
	}
	return o.Forecast.AddDate(0, 0, DeliveryLagDays)
}

// YardUnit is one physical unit currently sitting in a dealer's yard.
type YardUnit struct {
	UnitID     string    `json:"unit_id"`
	Model      string    `json:"model"`
	Type       UnitType  `json:"type"`
	ReceivedAt time.Time `json:"received_at"`
}

// ShipEvent is a PGI (factory goods-issued) or handover event. Model may be
// empty when the feed only carries the unit identifier; attribution then
// falls back to the linked schedule order.
type ShipEvent struct {
	UnitID     string    `json:"unit_id"`
	Model      string    `json:"model,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ModelTierInfo is the static reference entry for one canonical model label.
type ModelTierInfo struct {
	Tier  string  `json:"tier"`
	Price float64 `json:"price"`
}

// CapacityProfile is a dealer's configured yard capacity. Nil pointers mean
// the value is unconfigured, which is distinct from zero.
type CapacityProfile struct {
	MaxCapacity *int `json:"max_capacity"`
	MinVolume   *int `json:"min_volume"`
}

// PlannedOrder is one ledger entry used by the planner: either a real
// assigned stock order inside the planning horizon or a simulated allocation
// appended during a run. The ledger lives only for the duration of one run.
type PlannedOrder struct {
	Tier     string    `json:"tier"`
	Model    string    `json:"model"`
	Forecast time.Time `json:"forecast_date"`
}
