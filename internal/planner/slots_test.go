package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyadi/dealer-restock/internal/domain"
)

func TestDetectEmptySlots(t *testing.T) {
	orders := []domain.ScheduleOrder{
		emptySlotOrder("north-yard", "Voyager 450", d(2026, time.March, 1)),
		emptySlotOrder("north-yard", "Atlas 320", d(2026, time.February, 1)),
		// Assigned: unit field present with a value.
		stockOrder("north-yard", "Voyager 450", d(2026, time.February, 15), "VY450-01"),
		// Unit field present but empty still counts as present.
		{Dealer: "north-yard", Model: "Atlas 320", Forecast: d(2026, time.February, 20), UnitFieldPresent: true},
		// Unparseable/absent forecast date: discarded.
		emptySlotOrder("north-yard", "Atlas 320", time.Time{}),
		// Finished orders are out of planning.
		{Dealer: "north-yard", Model: "Atlas 320", Forecast: d(2026, time.April, 1), Status: "Finished"},
		// Other dealer.
		emptySlotOrder("south-yard", "Voyager 450", d(2026, time.February, 5)),
		// No dealer assignment at all.
		{Model: "Voyager 450", Forecast: d(2026, time.February, 5)},
	}

	slots := DetectEmptySlots("north-yard", orders)
	require.Len(t, slots, 2)

	assert.Equal(t, d(2026, time.February, 1), slots[0].Forecast, "sorted ascending")
	assert.Equal(t, "Atlas 320", slots[0].Order.Model)
	assert.Equal(t, d(2026, time.March, 1), slots[1].Forecast)

	// Delivery is forecast plus the fixed 40-day lag.
	assert.Equal(t, d(2026, time.March, 13), slots[0].Delivery)
}

func TestDetectEmptySlots_None(t *testing.T) {
	assert.Empty(t, DetectEmptySlots("north-yard", nil))
}
