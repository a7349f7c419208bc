package domain

// Tier codes, highest priority first. The order is config-driven upstream but
// fixed for this dealer network; note it is not alphabetic ("A1+" outranks "A2").
const (
	TierA1     = "A1"
	TierA1Plus = "A1+"
	TierA2     = "A2"
	TierB1     = "B1"
)

// TierPriority is the fixed tie-break sequence used everywhere a tier
// ordering is needed.
var TierPriority = []string{TierA1, TierA1Plus, TierA2, TierB1}

// TierTarget describes the configured composition target for one tier.
type TierTarget struct {
	Code  string  `json:"code"`
	Label string  `json:"label"`
	Role  string  `json:"role"`
	Share float64 `json:"share"`
}

// DefaultTierTargets is used whenever no tier configuration is supplied.
var DefaultTierTargets = []TierTarget{
	{Code: TierA1, Label: "A1", Role: "volume seller", Share: 0.40},
	{Code: TierA1Plus, Label: "A1+", Role: "flagship", Share: 0.15},
	{Code: TierA2, Label: "A2", Role: "mid range", Share: 0.25},
	{Code: TierB1, Label: "B1", Role: "entry", Share: 0.10},
}

// TierRank returns the position of a tier code in the priority sequence.
// Unknown codes sort after every known tier.
func TierRank(code string) int {
	for i, c := range TierPriority {
		if c == code {
			return i
		}
	}
	return len(TierPriority)
}
