package catalog

import "github.com/galleykit/galley/pkg/plan"

// baseRatios is the neutral zone split used when no business-specific
// adjustment applies.
var baseRatios = map[plan.ZoneType]float64{
	plan.ZoneStorage:     0.20,
	plan.ZonePreparation: 0.25,
	plan.ZoneCooking:     0.35,
	plan.ZoneWashing:     0.20,
}

// ratioAdjustments shifts the base split for concepts with a markedly
// different work balance. Values are additive deltas before
// normalization.
var ratioAdjustments = map[plan.Business]map[plan.ZoneType]float64{
	plan.BusinessFastFood: {
		plan.ZoneStorage:     -0.05,
		plan.ZonePreparation: -0.05,
		plan.ZoneCooking:     +0.10,
	},
	plan.BusinessFineDining: {
		plan.ZonePreparation: +0.05,
		plan.ZoneCooking:     +0.05,
		plan.ZoneWashing:     -0.10,
	},
	plan.BusinessCafeteria: {
		plan.ZoneStorage:     +0.05,
		plan.ZonePreparation: +0.05,
		plan.ZoneWashing:     -0.10,
	},
}

// minZoneRatio is the floor applied after adjustment: no zone target
// drops below 10% of the kitchen.
const minZoneRatio = 0.10

// ZoneRatios returns the target zone area shares for a business type,
// normalized to sum to 1 with the per-zone floor applied.
func ZoneRatios(b plan.Business) map[plan.ZoneType]float64 {
	ratios := make(map[plan.ZoneType]float64, len(baseRatios))
	for z, r := range baseRatios {
		ratios[z] = r
	}
	for z, adj := range ratioAdjustments[b] {
		ratios[z] += adj
	}

	normalize(ratios)

	// Floor small zones, taking the deficit from the largest.
	for _, z := range plan.WorkflowOrder {
		if ratios[z] < minZoneRatio {
			deficit := minZoneRatio - ratios[z]
			ratios[z] = minZoneRatio
			ratios[largestZone(ratios, z)] -= deficit
		}
	}

	normalize(ratios)
	return ratios
}

func normalize(ratios map[plan.ZoneType]float64) {
	var total float64
	for _, r := range ratios {
		total += r
	}
	if total <= 0 {
		return
	}
	for z := range ratios {
		ratios[z] /= total
	}
}

func largestZone(ratios map[plan.ZoneType]float64, except plan.ZoneType) plan.ZoneType {
	best := except
	bestR := -1.0
	for _, z := range plan.WorkflowOrder {
		if z != except && ratios[z] > bestR {
			best, bestR = z, ratios[z]
		}
	}
	return best
}
