package normalize

import (
	"strings"

	"github.com/prasetyadi/dealer-restock/internal/domain"
)

// Candidate key lists per concept, checked in priority order. These cover
// every spelling observed coming out of the document store.
var (
	dealerKeys   = []string{"dealer", "dealer_code", "dealerCode", "dealer_slug", "dealerSlug"}
	customerKeys = []string{"customer", "customer_name", "customerName", "buyer"}
	modelKeys    = []string{"model", "model_name", "modelName", "model_label", "modelLabel"}
	forecastKeys = []string{"forecast_date", "forecastDate", "production_date", "productionDate", "forecast"}
	unitKeys     = []string{"unit_id", "unitId", "vin", "chassis_no", "chassisNo"}
	statusKeys   = []string{"production_status", "productionStatus", "status"}
	receivedKeys = []string{"received_at", "receivedAt", "received", "arrival_date"}
	typeKeys     = []string{"type", "unit_type", "unitType", "stock_type"}
	eventKeys    = []string{"event_date", "eventDate", "occurred_at", "occurredAt", "date"}
	tierKeys     = []string{"tier", "tier_code", "tierCode", "grade"}
	priceKeys    = []string{"price", "standard_price", "standardPrice", "list_price"}
	shareKeys    = []string{"share", "share_target", "shareTarget", "ratio"}
	labelKeys    = []string{"label", "name"}
	roleKeys     = []string{"role", "segment"}
)

// ScheduleOrder canonicalizes one raw schedule row. Missing optional fields
// never error; an unparseable forecast date leaves Forecast zero.
func ScheduleOrder(rec Record) domain.ScheduleOrder {
	order := domain.ScheduleOrder{
		Dealer:           StringField(rec, dealerKeys...),
		Customer:         StringField(rec, customerKeys...),
		Model:            StringField(rec, modelKeys...),
		Status:           StringField(rec, statusKeys...),
		UnitFieldPresent: HasField(rec, unitKeys...),
	}
	if order.UnitFieldPresent {
		order.UnitID = StringField(rec, unitKeys...)
	}
	if t, ok := DateField(rec, forecastKeys...); ok {
		order.Forecast = t
	}
	return order
}

// ScheduleOrders canonicalizes the whole schedule feed.
func ScheduleOrders(recs []Record) []domain.ScheduleOrder {
	out := make([]domain.ScheduleOrder, 0, len(recs))
	for _, rec := range recs {
		out = append(out, ScheduleOrder(rec))
	}
	return out
}

// YardUnits canonicalizes the per-dealer yard snapshot, a map of unit id to
// raw unit record. Type defaults to Customer when neither an explicit tag
// nor a stock-suffixed owner label is present.
func YardUnits(units map[string]Record) []domain.YardUnit {
	out := make([]domain.YardUnit, 0, len(units))
	for id, rec := range units {
		unit := domain.YardUnit{
			UnitID: id,
			Model:  StringField(rec, modelKeys...),
			Type:   domain.UnitCustomer,
		}
		if t, ok := DateField(rec, receivedKeys...); ok {
			unit.ReceivedAt = t
		}
		tag := strings.ToLower(StringField(rec, typeKeys...))
		owner := strings.ToLower(StringField(rec, customerKeys...))
		if tag == "stock" || strings.HasSuffix(owner, "stock") {
			unit.Type = domain.UnitStock
		}
		out = append(out, unit)
	}
	return out
}

// ShipEvents canonicalizes a PGI or handover feed. Events without a
// parseable timestamp are dropped; they cannot enter any lookback window.
func ShipEvents(recs []Record) []domain.ShipEvent {
	out := make([]domain.ShipEvent, 0, len(recs))
	for _, rec := range recs {
		t, ok := DateField(rec, eventKeys...)
		if !ok {
			continue
		}
		out = append(out, domain.ShipEvent{
			UnitID:     StringField(rec, unitKeys...),
			Model:      StringField(rec, modelKeys...),
			OccurredAt: t,
		})
	}
	return out
}

// ModelTiers builds the model reference table, registering every row under
// all of its fanned-out canonical labels so lookups keyed on any synonym
// find the shared entry. Rows with no model label or no tier code are
// skipped.
func ModelTiers(recs []Record) map[string]domain.ModelTierInfo {
	out := make(map[string]domain.ModelTierInfo, len(recs))
	for _, rec := range recs {
		model := StringField(rec, modelKeys...)
		tier := strings.ToUpper(StringField(rec, tierKeys...))
		if model == "" || tier == "" {
			continue
		}
		info := domain.ModelTierInfo{Tier: tier}
		if p, ok := NumberField(rec, priceKeys...); ok {
			info.Price = p
		}
		for _, label := range ModelLabels(model) {
			out[label] = info
		}
	}
	return out
}

// ModelRef is one deduplicated model reference row keyed by its primary
// canonical label. Goal derivation counts models from this view; the fanned
// ModelTiers map exists only for lookup tolerance.
type ModelRef struct {
	Model string
	Info  domain.ModelTierInfo
}

// ModelTierRows returns the deduplicated, tier-mapped model rows.
func ModelTierRows(recs []Record) []ModelRef {
	seen := make(map[string]bool, len(recs))
	out := make([]ModelRef, 0, len(recs))
	for _, rec := range recs {
		model := StringField(rec, modelKeys...)
		tier := strings.ToUpper(StringField(rec, tierKeys...))
		if model == "" || tier == "" {
			continue
		}
		primary := BaseLabel(model)
		if primary == "" || seen[primary] {
			continue
		}
		seen[primary] = true
		ref := ModelRef{Model: primary, Info: domain.ModelTierInfo{Tier: tier}}
		if p, ok := NumberField(rec, priceKeys...); ok {
			ref.Info.Price = p
		}
		out = append(out, ref)
	}
	return out
}

// TierTargets canonicalizes the tier share configuration, falling back to
// the network defaults when no usable rows are supplied.
func TierTargets(recs []Record) []domain.TierTarget {
	out := make([]domain.TierTarget, 0, len(recs))
	for _, rec := range recs {
		code := strings.ToUpper(StringField(rec, tierKeys...))
		share, ok := NumberField(rec, shareKeys...)
		if code == "" || !ok {
			continue
		}
		target := domain.TierTarget{
			Code:  code,
			Label: StringField(rec, labelKeys...),
			Role:  StringField(rec, roleKeys...),
			Share: share,
		}
		if target.Label == "" {
			target.Label = code
		}
		out = append(out, target)
	}
	if len(out) == 0 {
		return domain.DefaultTierTargets
	}
	return out
}
