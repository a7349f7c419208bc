package normalize

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prasetyadi/dealer-restock/internal/domain"
)

func TestScheduleOrder_UnitFieldPresence(t *testing.T) {
	assigned := ScheduleOrder(Record{
		"dealer":        "north-yard",
		"customer":      "North Yard stock",
		"model":         "Voyager 450",
		"forecast_date": "10/04/2026",
		"vin":           "VY450-0012",
	})
	assert.True(t, assigned.UnitFieldPresent)
	assert.Equal(t, "VY450-0012", assigned.UnitID)
	assert.True(t, assigned.IsStock())
	assert.True(t, assigned.HasForecast())
	assert.Equal(t, time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC), assigned.Forecast)

	// Present-but-empty is still "present"; only outright absence marks an
	// order unassigned.
	pending := ScheduleOrder(Record{"dealer": "north-yard", "unit_id": ""})
	assert.True(t, pending.UnitFieldPresent)
	assert.Empty(t, pending.UnitID)

	unassigned := ScheduleOrder(Record{"dealer": "north-yard", "customer": "A. Buyer"})
	assert.False(t, unassigned.UnitFieldPresent)
	assert.False(t, unassigned.IsStock())
}

func TestScheduleOrder_UnparseableDateIsNotAnError(t *testing.T) {
	order := ScheduleOrder(Record{"dealer": "north-yard", "forecast_date": "when ready"})
	assert.False(t, order.HasForecast())
}

func TestYardUnits_TypeInference(t *testing.T) {
	units := YardUnits(map[string]Record{
		"u1": {"model": "Voyager 450", "type": "Stock", "received_at": "2026-01-05"},
		"u2": {"model": "Voyager 450", "customer": "North Yard Stock"},
		"u3": {"model": "Atlas 320", "customer": "J. Smith"},
		"u4": {"model": "Atlas 320"},
	})
	require.Len(t, units, 4)

	byID := make(map[string]domain.YardUnit)
	for _, u := range units {
		byID[u.UnitID] = u
	}
	assert.Equal(t, domain.UnitStock, byID["u1"].Type)
	assert.Equal(t, domain.UnitStock, byID["u2"].Type)
	assert.Equal(t, domain.UnitCustomer, byID["u3"].Type)
	assert.Equal(t, domain.UnitCustomer, byID["u4"].Type, "defaults to Customer")
}

func TestShipEvents_DropsUndatedRows(t *testing.T) {
	events := ShipEvents([]Record{
		{"unit_id": "u1", "event_date": "05/01/2026"},
		{"unit_id": "u2"},
		{"unit_id": "u3", "event_date": "not yet"},
	})
	require.Len(t, events, 1)
	assert.Equal(t, "u1", events[0].UnitID)
}

func TestModelTiers_FanOutRegistration(t *testing.T) {
	tiers := ModelTiers([]Record{
		{"model": "GrandLiner 2/3BK", "tier": "a1", "price": 185000.0},
		{"model": "Voyager 450", "tier": "A2"},
		{"model": "", "tier": "B1"},
		{"model": "Untiered 100"},
	})

	// The legacy compound is reachable under all three labels.
	for _, label := range []string{"GrandLiner", "GrandLiner 2BK", "GrandLiner 3BK"} {
		info, ok := tiers[label]
		require.True(t, ok, label)
		assert.Equal(t, domain.TierA1, info.Tier)
		assert.Equal(t, 185000.0, info.Price)
	}

	// Base token and full label both resolve.
	assert.Equal(t, domain.TierA2, tiers["Voyager"].Tier)
	assert.Equal(t, domain.TierA2, tiers["Voyager 450"].Tier)

	// Rows without model or tier are skipped.
	assert.NotContains(t, tiers, "Untiered")
	assert.NotContains(t, tiers, "Untiered 100")
}

func TestModelTierRows_Deduplicates(t *testing.T) {
	rows := ModelTierRows([]Record{
		{"model": "Voyager 450", "tier": "A2"},
		{"model": "Voyager 450", "tier": "A2"},
		{"model": "GrandLiner 2/3BK", "tier": "A1"},
	})
	require.Len(t, rows, 2)
	assert.Equal(t, "Voyager 450", rows[0].Model)
	assert.Equal(t, "GrandLiner", rows[1].Model)
}

func TestTierTargets_DefaultsWhenUnconfigured(t *testing.T) {
	assert.Equal(t, domain.DefaultTierTargets, TierTargets(nil))
	assert.Equal(t, domain.DefaultTierTargets, TierTargets([]Record{{"tier": "A1"}}), "rows without share are unusable")

	targets := TierTargets([]Record{
		{"tier": "a1", "share": 0.5, "label": "Core", "role": "volume seller"},
	})
	require.Len(t, targets, 1)
	assert.Equal(t, domain.TierTarget{Code: "A1", Label: "Core", Role: "volume seller", Share: 0.5}, targets[0])
}
