package planner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyadi/dealer-restock/internal/domain"
)

func checkpointSnapshot() Snapshot {
	return Snapshot{
		Dealer: "north-yard",
		Orders: []domain.ScheduleOrder{
			// Stock inflow before the slot.
			stockOrder("north-yard", "Alpha", d(2026, time.January, 10), "a"),
			stockOrder("north-yard", "Alpha", d(2026, time.January, 25), "b"),
			stockOrder("north-yard", "Alpha", d(2025, time.December, 1), "c"),
			// Forward inflow after today.
			stockOrder("north-yard", "Alpha", d(2026, time.March, 1), "e"),
			// Named-customer orders never count as stock inflow.
			{Dealer: "north-yard", Customer: "J. Smith", Model: "Alpha", Forecast: d(2026, time.January, 20)},
		},
	}
}

func TestCheckpoint_Windows(t *testing.T) {
	now := d(2026, time.January, 15)
	engine := NewEngine(now)
	slots := []EmptySlot{{Forecast: d(2026, time.February, 1)}}
	capacity := &domain.CapacityProfile{MinVolume: intPtr(5)}

	report := engine.Checkpoint(checkpointSnapshot(), slots, capacity)
	require.True(t, report.Applicable)
	assert.Equal(t, d(2026, time.February, 1), report.SlotDate)
	require.Len(t, report.Windows, 3)

	// 90 days before the slot: 3 arrivals vs threshold 0.6*5 = 3 -> pass.
	long := report.Windows[0]
	assert.Equal(t, "90d_before_slot", long.Name)
	assert.Equal(t, 3, long.Count)
	assert.Equal(t, 3.0, long.Threshold)
	assert.Equal(t, domain.WindowPass, long.Status)

	// 30 days before the slot: 2 arrivals vs threshold 0.2*5 = 1 -> pass.
	short := report.Windows[1]
	assert.Equal(t, "30d_before_slot", short.Name)
	assert.Equal(t, 2, short.Count)
	assert.Equal(t, domain.WindowPass, short.Status)

	// 90 days after today (not after the slot): arrivals on Jan 25 and
	// Mar 1 count alongside the slot-window ones from Jan 10 onward.
	forward := report.Windows[2]
	assert.Equal(t, "90d_after_today", forward.Name)
	assert.Equal(t, 2, forward.Count)
	assert.Equal(t, domain.WindowFail, forward.Status)
}

func TestCheckpoint_UnconfiguredMinVolume(t *testing.T) {
	engine := NewEngine(d(2026, time.January, 15))
	slots := []EmptySlot{{Forecast: d(2026, time.February, 1)}}

	report := engine.Checkpoint(checkpointSnapshot(), slots, nil)
	require.True(t, report.Applicable)
	for _, w := range report.Windows {
		assert.Equal(t, domain.WindowUnconfigured, w.Status)
	}
}

func TestCheckpoint_NotApplicableWithoutSlots(t *testing.T) {
	engine := NewEngine(d(2026, time.January, 15))
	report := engine.Checkpoint(checkpointSnapshot(), nil, &domain.CapacityProfile{MinVolume: intPtr(5)})
	assert.False(t, report.Applicable)
	assert.Empty(t, report.Windows)
}
