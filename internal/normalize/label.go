package normalize

import "strings"

// legacyDualBunkLabel is the one legacy compound label still coming out of
// the factory schedule. It means "either the 2-bunk or the 3-bunk variant",
// so it must match reference data keyed under the bare model or either
// variant.
const legacyDualBunkLabel = "GrandLiner 2/3BK"

var legacyDualBunkExpansion = []string{"GrandLiner", "GrandLiner 2BK", "GrandLiner 3BK"}

// ModelLabels expands a raw model label into the set of canonical labels it
// may be keyed under. For the legacy dual-bunk compound the set is the bare
// model plus both variants; for everything else it is the token before the
// first internal whitespace plus the full label, which maximizes match
// tolerance against loosely keyed reference tables.
func ModelLabels(raw string) []string {
	label := strings.Join(strings.Fields(raw), " ")
	if label == "" {
		return nil
	}
	if strings.EqualFold(label, legacyDualBunkLabel) {
		out := make([]string, len(legacyDualBunkExpansion))
		copy(out, legacyDualBunkExpansion)
		return out
	}
	base := strings.Fields(label)[0]
	if base == label {
		return []string{label}
	}
	return []string{base, label}
}

// BaseLabel returns the primary canonical label for a raw model label: the
// full cleaned label, or the bare model for the legacy compound.
func BaseLabel(raw string) string {
	labels := ModelLabels(raw)
	if len(labels) == 0 {
		return ""
	}
	if strings.EqualFold(strings.Join(strings.Fields(raw), " "), legacyDualBunkLabel) {
		return labels[0]
	}
	return labels[len(labels)-1]
}
