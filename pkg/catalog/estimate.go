package catalog

import (
	"math"

	"github.com/galleykit/galley/pkg/plan"
)

// areaBuckets maps kitchen floor area (m²) to the typical equipment
// count seen at that size.
var areaBuckets = []struct {
	minArea, maxArea float64
	count            int
}{
	{0, 20, 7},
	{20, 40, 10},
	{40, 70, 14},
	{70, 120, 18},
	{120, math.Inf(1), 22},
}

// businessCounts is the typical equipment count per business type.
var businessCounts = map[plan.Business]int{
	plan.BusinessFastFood:     8,
	plan.BusinessCasual:       11,
	plan.BusinessFineDining:   17,
	plan.BusinessCafeteria:    18,
	plan.BusinessGhostKitchen: 8,
	plan.BusinessKorean:       10,
	plan.BusinessCafe:         8,
	plan.BusinessWestern:      12,
	plan.BusinessChinese:      10,
	plan.BusinessJapanese:     11,
	plan.BusinessFranchise:    9,
	plan.BusinessSnackBar:     8,
	plan.BusinessBakery:       9,
	plan.BusinessOther:        7,
}

// CountEstimate predicts how many equipment items a kitchen of the
// given size and business type needs, weighting floor area 60% and
// business type 40%.
func CountEstimate(b plan.Business, areaSqm float64) int {
	areaCount := 0
	for _, bucket := range areaBuckets {
		if areaSqm >= bucket.minArea && areaSqm < bucket.maxArea {
			areaCount = bucket.count
			break
		}
	}
	bizCount, ok := businessCounts[b]
	if !ok {
		bizCount = businessCounts[plan.BusinessOther]
	}
	if areaCount == 0 {
		return bizCount
	}
	return int(math.Round(float64(areaCount)*0.6 + float64(bizCount)*0.4))
}

// categoryPriority orders each category's models by how commonly they
// appear, used when sizing a recommended set up or down.
var categoryPriority = map[plan.Category][]string{
	plan.CategoryStorage: {
		"reach_in_refrigerator_2door",
		"reach_in_freezer_1door",
		"dry_storage_shelf",
		"reach_in_refrigerator_1door",
		"undercounter_refrigerator",
	},
	plan.CategoryPreparation: {
		"work_table_large",
		"work_table_medium",
		"prep_sink",
		"work_table_small",
		"food_processor_station",
	},
	plan.CategoryCooking: {
		"gas_range_6burner",
		"gas_range_4burner",
		"deep_fryer_single",
		"convection_oven",
		"griddle",
		"deep_fryer_double",
		"salamander",
	},
	plan.CategoryWashing: {
		"three_compartment_sink",
		"hand_wash_sink",
		"dishwasher_undercounter",
		"drying_rack",
		"dishwasher_door_type",
	},
}

// Recommended builds an equipment list sized for the kitchen: the
// estimated count is distributed over the four categories using the
// business zone ratios, then filled from each category's priority
// order. Every category gets at least one item.
func Recommended(b plan.Business, areaSqm float64) []plan.EquipmentSpec {
	target := min(CountEstimate(b, areaSqm), len(specs))
	ratios := ZoneRatios(b)

	var out []plan.EquipmentSpec
	for _, zone := range plan.WorkflowOrder {
		category := plan.Category(zone)
		count := max(1, int(math.Round(float64(target)*ratios[zone])))
		for _, id := range categoryPriority[category] {
			if count == 0 {
				break
			}
			if s, ok := byID[id]; ok {
				out = append(out, s)
				count--
			}
		}
	}
	return out
}
