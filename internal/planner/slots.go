package planner

import (
	"sort"
	"time"

	"github.com/prasetyadi/dealer-restock/internal/domain"
)

// EmptySlot is a dealer-assigned production order with no unit matched yet:
// future stock capacity the planner can fill.
type EmptySlot struct {
	Order    domain.ScheduleOrder
	Forecast time.Time
	Delivery time.Time
}

// DetectEmptySlots scans the schedule for the dealer's unassigned,
// non-finished orders with a parseable forecast date. Only outright absence
// of the assigned-unit field counts as unassigned; a present-but-empty field
// means a unit match is already in flight upstream. Slots come back in
// ascending forecast order.
func DetectEmptySlots(dealer string, orders []domain.ScheduleOrder) []EmptySlot {
	slots := make([]EmptySlot, 0)
	for _, order := range orders {
		if order.Dealer == "" || order.Dealer != dealer {
			continue
		}
		if order.UnitFieldPresent || order.IsFinished() || !order.HasForecast() {
			continue
		}
		slots = append(slots, EmptySlot{
			Order:    order,
			Forecast: order.Forecast,
			Delivery: order.Delivery(),
		})
	}
	sort.Slice(slots, func(i, j int) bool {
		if !slots[i].Forecast.Equal(slots[j].Forecast) {
			return slots[i].Forecast.Before(slots[j].Forecast)
		}
		return slots[i].Order.Model < slots[j].Order.Model
	})
	return slots
}
