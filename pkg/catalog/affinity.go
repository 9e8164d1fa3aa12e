package catalog

import "strings"

// affinityPairs lists equipment that belongs on the same work path,
// keyed by id prefix so model variants (4 vs 6 burner, single vs
// double fryer) match the same rule. The value is the placement bonus
// at full strength.
var affinityPairs = []struct {
	a, b  string
	bonus float64
}{
	{"gas_range", "deep_fryer", 15},
	{"gas_range", "griddle", 12},
	{"three_compartment_sink", "dishwasher", 12},
	{"prep_sink", "work_table", 12},
	{"dishwasher", "drying_rack", 10},
	{"gas_range", "salamander", 8},
	{"work_table", "food_processor_station", 8},
}

// Affinity returns the placement bonus for a pair of catalog ids, or 0
// when the pair has no affinity rule. Order of arguments is irrelevant.
func Affinity(idA, idB string) float64 {
	for _, p := range affinityPairs {
		if (strings.HasPrefix(idA, p.a) && strings.HasPrefix(idB, p.b)) ||
			(strings.HasPrefix(idA, p.b) && strings.HasPrefix(idB, p.a)) {
			return p.bonus
		}
	}
	return 0
}
