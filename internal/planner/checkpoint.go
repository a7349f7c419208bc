package planner

import (
	"time"

	"github.com/prasetyadi/dealer-restock/internal/domain"
)

// Checkpoint window thresholds, as fractions of the minimum volume target.
const (
	checkpointLongFraction  = 0.6
	checkpointShortFraction = 0.2
	checkpointShortDays     = 30
)

// Checkpoint compares actual stock inflow in fixed windows around the
// nearest empty slot against the dealer's minimum-volume target. It reads
// the real schedule, never the planner's simulated ledger, and is purely
// diagnostic. Without an empty slot to anchor on it reports not applicable.
func (e *Engine) Checkpoint(snap Snapshot, slots []EmptySlot, capacity *domain.CapacityProfile) domain.StockMinReport {
	if len(slots) == 0 {
		return domain.StockMinReport{Applicable: false}
	}
	anchor := slots[0].Forecast

	var minVolume *int
	if capacity != nil {
		minVolume = capacity.MinVolume
	}

	windows := []struct {
		name     string
		from, to time.Time
		fraction float64
	}{
		{"90d_before_slot", anchor.AddDate(0, 0, -rollingWindowDays), anchor, checkpointLongFraction},
		{"30d_before_slot", anchor.AddDate(0, 0, -checkpointShortDays), anchor, checkpointShortFraction},
		// Intentionally forward-looking from today, not from the slot.
		{"90d_after_today", e.now, e.now.AddDate(0, 0, rollingWindowDays), checkpointLongFraction},
	}

	report := domain.StockMinReport{Applicable: true, SlotDate: anchor}
	for _, w := range windows {
		check := domain.WindowCheck{
			Name:  w.name,
			From:  w.from,
			To:    w.to,
			Count: stockInflow(snap, w.from, w.to),
		}
		if minVolume == nil {
			check.Status = domain.WindowUnconfigured
		} else {
			check.Threshold = w.fraction * float64(*minVolume)
			if float64(check.Count) >= check.Threshold {
				check.Status = domain.WindowPass
			} else {
				check.Status = domain.WindowFail
			}
		}
		report.Windows = append(report.Windows, check)
	}
	return report
}

// stockInflow counts the dealer's stock-type schedule arrivals whose
// forecast date falls inside the window.
func stockInflow(snap Snapshot, from, to time.Time) int {
	count := 0
	for _, order := range snap.Orders {
		if order.Dealer != snap.Dealer || !order.IsStock() || !order.HasForecast() {
			continue
		}
		if inWindow(order.Forecast, from, to) {
			count++
		}
	}
	return count
}
