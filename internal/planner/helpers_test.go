package planner

import (
	"time"

	"github.com/prasetyadi/dealer-restock/internal/domain"
	"github.com/prasetyadi/dealer-restock/internal/normalize"
)

func d(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func intPtr(v int) *int { return &v }

// stockOrder builds a dealer-owned stock order. A non-empty unit id marks it
// assigned; forecast may be zero for date-less orders.
func stockOrder(dealer, model string, forecast time.Time, unitID string) domain.ScheduleOrder {
	return domain.ScheduleOrder{
		Dealer:           dealer,
		Customer:         dealer + " stock",
		Model:            model,
		Forecast:         forecast,
		UnitFieldPresent: unitID != "",
		UnitID:           unitID,
	}
}

// emptySlotOrder builds an unassigned stock order: an empty slot candidate.
func emptySlotOrder(dealer, model string, forecast time.Time) domain.ScheduleOrder {
	return domain.ScheduleOrder{
		Dealer:   dealer,
		Customer: dealer + " stock",
		Model:    model,
		Forecast: forecast,
	}
}

func tierRef(model, tier string) normalize.ModelRef {
	return normalize.ModelRef{Model: model, Info: domain.ModelTierInfo{Tier: tier}}
}
