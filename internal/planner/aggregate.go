package planner

import (
	"time"

	"github.com/prasetyadi/dealer-restock/internal/domain"
	"github.com/prasetyadi/dealer-restock/internal/normalize"
)

// AggregateModels computes the per-model activity table: current yard stock,
// PGI and handover counts inside the 3-month lookback, and the 8-month
// inbound forecast buckets. A model enters the table only when it shows at
// least one kind of activity; empty labels are dropped.
func (e *Engine) AggregateModels(snap Snapshot) map[string]domain.ModelAggregate {
	cutoff := e.now.AddDate(0, -lookbackMonths, 0)
	monthStart := startOfMonth(e.now)

	// Unit id -> originating schedule order, for events whose feed row does
	// not carry the model itself.
	byUnit := make(map[string]domain.ScheduleOrder)
	for _, order := range snap.Orders {
		if order.UnitFieldPresent && order.UnitID != "" {
			byUnit[order.UnitID] = order
		}
	}

	out := make(map[string]domain.ModelAggregate)
	touch := func(model string) (string, bool) {
		key := normalize.BaseLabel(model)
		if key == "" {
			return "", false
		}
		if _, ok := out[key]; !ok {
			out[key] = domain.ModelAggregate{Model: key, Incoming: make([]int, incomingMonths)}
		}
		return key, true
	}

	for _, unit := range snap.Yard {
		if unit.Type != domain.UnitStock {
			continue
		}
		if key, ok := touch(unit.Model); ok {
			agg := out[key]
			agg.CurrentStock++
			out[key] = agg
		}
	}

	for _, ev := range snap.PGI {
		if model, ok := eventModel(ev, byUnit); ok && !ev.OccurredAt.Before(cutoff) {
			if key, ok := touch(model); ok {
				agg := out[key]
				agg.RecentPGI++
				out[key] = agg
			}
		}
	}

	for _, ev := range snap.Handover {
		if model, ok := eventModel(ev, byUnit); ok && !ev.OccurredAt.Before(cutoff) {
			if key, ok := touch(model); ok {
				agg := out[key]
				agg.RecentHandover++
				out[key] = agg
			}
		}
	}

	for _, order := range snap.Orders {
		if order.Dealer != snap.Dealer || !order.IsStock() || order.IsFinished() || !order.HasForecast() {
			continue
		}
		bucket := monthsBetween(monthStart, startOfMonth(order.Delivery()))
		// Orders forecast in the prior or current month land in bucket 0
		// no matter where the delivery lag pushes them.
		if fm := monthsBetween(monthStart, startOfMonth(order.Forecast)); fm == 0 || fm == -1 {
			bucket = 0
		}
		if bucket < 0 || bucket >= incomingMonths {
			continue
		}
		if key, ok := touch(order.Model); ok {
			agg := out[key]
			agg.Incoming[bucket]++
			out[key] = agg
		}
	}

	return out
}

// eventModel resolves the model for a ship event: the event's own field when
// populated, otherwise the linked schedule order's model.
func eventModel(ev domain.ShipEvent, byUnit map[string]domain.ScheduleOrder) (string, bool) {
	if ev.Model != "" {
		return ev.Model, true
	}
	if order, ok := byUnit[ev.UnitID]; ok && order.Model != "" {
		return order.Model, true
	}
	return "", false
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func monthsBetween(from, to time.Time) int {
	return (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
}
