package planner

import (
	"strings"

	"github.com/prasetyadi/dealer-restock/internal/domain"
	"github.com/prasetyadi/dealer-restock/internal/normalize"
)

// Accepted field spellings in the capacity reference table.
var (
	capacityDealerKeys = []string{"dealer", "dealer_code", "dealerCode", "dealer_name", "dealerName", "name"}
	maxCapacityKeys    = []string{"max_capacity", "maxCapacity", "max_stock", "maxStock", "yard_capacity", "capacity"}
	minVolumeKeys      = []string{"min_volume", "minVolume", "min_stock", "minStock", "min_volume_target"}
)

// ResolveCapacity finds the dealer's capacity row by exact match first, then
// loose match (case-insensitive equality or an embedded dealer name). It
// returns nil when no row matches; absent capacity is "unconfigured", never a
// zero target.
func ResolveCapacity(dealer string, rows []normalize.Record) *domain.CapacityProfile {
	row, ok := matchCapacityRow(dealer, rows)
	if !ok {
		return nil
	}

	profile := &domain.CapacityProfile{}
	if v, ok := normalize.NumberField(row, maxCapacityKeys...); ok {
		maxCap := int(v)
		profile.MaxCapacity = &maxCap
	}
	if v, ok := normalize.NumberField(row, minVolumeKeys...); ok {
		minVol := int(v)
		profile.MinVolume = &minVol
	}
	return profile
}

func matchCapacityRow(dealer string, rows []normalize.Record) (normalize.Record, bool) {
	for _, row := range rows {
		if normalize.StringField(row, capacityDealerKeys...) == dealer {
			return row, true
		}
	}
	needle := strings.ToLower(strings.TrimSpace(dealer))
	if needle == "" {
		return nil, false
	}
	for _, row := range rows {
		key := strings.ToLower(normalize.StringField(row, capacityDealerKeys...))
		if key == needle || strings.Contains(key, needle) {
			return row, true
		}
	}
	return nil, false
}

// FillPercent computes current yard fill against max capacity, clamped to
// [0, 200] so over-capacity states stay presentable. Nil when max capacity
// is unconfigured.
func FillPercent(currentStock int, capacity *domain.CapacityProfile) *float64 {
	if capacity == nil || capacity.MaxCapacity == nil || *capacity.MaxCapacity <= 0 {
		return nil
	}
	pct := float64(currentStock) / float64(*capacity.MaxCapacity) * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 200 {
		pct = 200
	}
	return &pct
}
