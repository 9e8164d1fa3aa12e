package catalog

import (
	"slices"
	"strings"

	"github.com/galleykit/galley/pkg/plan"
)

// specs is the standard commercial kitchen equipment catalog.
// Dimensions follow common manufacturer sizes (meters).
var specs = []plan.EquipmentSpec{
	// Storage
	{
		ID: "reach_in_refrigerator_1door", Name: "Reach-in Refrigerator (1-door)",
		Category: plan.CategoryStorage,
		Width:    0.66, Depth: 0.76, Height: 2.0,
		ClearanceFront: 0.9, RequiresWall: true, WorkflowOrder: 1,
	},
	{
		ID: "reach_in_refrigerator_2door", Name: "Reach-in Refrigerator (2-door)",
		Category: plan.CategoryStorage,
		Width:    1.32, Depth: 0.76, Height: 2.0,
		ClearanceFront: 0.9, RequiresWall: true, WorkflowOrder: 1,
	},
	{
		ID: "reach_in_freezer_1door", Name: "Reach-in Freezer (1-door)",
		Category: plan.CategoryStorage,
		Width:    0.66, Depth: 0.76, Height: 2.0,
		ClearanceFront: 0.9, RequiresWall: true, WorkflowOrder: 1,
	},
	{
		ID: "undercounter_refrigerator", Name: "Undercounter Refrigerator",
		Category: plan.CategoryStorage,
		Width:    0.7, Depth: 0.61, Height: 0.86,
		ClearanceFront: 0.6, WorkflowOrder: 2,
	},
	{
		ID: "dry_storage_shelf", Name: "Dry Storage Shelf",
		Category: plan.CategoryStorage,
		Width:    1.2, Depth: 0.45, Height: 1.8,
		ClearanceFront: 0.6, RequiresWall: true, WorkflowOrder: 3,
	},

	// Preparation
	{
		ID: "prep_sink", Name: "Prep Sink",
		Category: plan.CategoryPreparation,
		Width:    0.6, Depth: 0.55, Height: 0.86,
		ClearanceFront: 0.9, RequiresWater: true, RequiresDrain: true, WorkflowOrder: 1,
	},
	{
		ID: "work_table_small", Name: "Work Table (small)",
		Category: plan.CategoryPreparation,
		Width:    0.9, Depth: 0.6, Height: 0.86,
		ClearanceFront: 0.9, WorkflowOrder: 2,
	},
	{
		ID: "work_table_medium", Name: "Work Table (medium)",
		Category: plan.CategoryPreparation,
		Width:    1.5, Depth: 0.75, Height: 0.86,
		ClearanceFront: 0.9, WorkflowOrder: 2,
	},
	{
		ID: "work_table_large", Name: "Work Table (large)",
		Category: plan.CategoryPreparation,
		Width:    2.0, Depth: 0.75, Height: 0.86,
		ClearanceFront: 0.9, WorkflowOrder: 2,
	},
	{
		ID: "food_processor_station", Name: "Food Processor Station",
		Category: plan.CategoryPreparation,
		Width:    0.6, Depth: 0.5, Height: 0.86,
		ClearanceFront: 0.6, WorkflowOrder: 3,
	},

	// Cooking
	{
		ID: "gas_range_4burner", Name: "Gas Range (4-burner)",
		Category: plan.CategoryCooking,
		Width:    0.6, Depth: 0.7, Height: 0.91,
		ClearanceFront: 0.91, ClearanceSides: 0.46,
		RequiresVentilation: true, WorkflowOrder: 1,
	},
	{
		ID: "gas_range_6burner", Name: "Gas Range (6-burner)",
		Category: plan.CategoryCooking,
		Width:    0.91, Depth: 0.7, Height: 0.91,
		ClearanceFront: 0.91, ClearanceSides: 0.46,
		RequiresVentilation: true, WorkflowOrder: 1,
	},
	{
		ID: "griddle", Name: "Griddle",
		Category: plan.CategoryCooking,
		Width:    0.9, Depth: 0.6, Height: 0.91,
		ClearanceFront: 0.91, RequiresVentilation: true, WorkflowOrder: 2,
	},
	{
		ID: "deep_fryer_single", Name: "Deep Fryer (single)",
		Category: plan.CategoryCooking,
		Width:    0.4, Depth: 0.76, Height: 1.1,
		ClearanceFront: 0.91, RequiresVentilation: true, WorkflowOrder: 3,
	},
	{
		ID: "deep_fryer_double", Name: "Deep Fryer (double)",
		Category: plan.CategoryCooking,
		Width:    0.8, Depth: 0.76, Height: 1.1,
		ClearanceFront: 0.91, RequiresVentilation: true, WorkflowOrder: 3,
	},
	{
		ID: "convection_oven", Name: "Convection Oven",
		Category: plan.CategoryCooking,
		Width:    0.9, Depth: 0.76, Height: 1.5,
		ClearanceFront: 1.2, RequiresVentilation: true, WorkflowOrder: 4,
	},
	{
		ID: "salamander", Name: "Salamander",
		Category: plan.CategoryCooking,
		Width:    0.6, Depth: 0.5, Height: 0.5,
		ClearanceFront: 0.6, RequiresVentilation: true, RequiresWall: true, WorkflowOrder: 5,
	},

	// Washing
	{
		ID: "three_compartment_sink", Name: "3-Compartment Sink",
		Category: plan.CategoryWashing,
		Width:    1.8, Depth: 0.6, Height: 1.1,
		ClearanceFront: 0.9, RequiresWater: true, RequiresDrain: true, WorkflowOrder: 1,
	},
	{
		ID: "dishwasher_undercounter", Name: "Undercounter Dishwasher",
		Category: plan.CategoryWashing,
		Width:    0.6, Depth: 0.6, Height: 0.86,
		ClearanceFront: 0.9, RequiresWater: true, RequiresDrain: true, WorkflowOrder: 2,
	},
	{
		ID: "dishwasher_door_type", Name: "Door-type Dishwasher",
		Category: plan.CategoryWashing,
		Width:    0.65, Depth: 0.75, Height: 1.5,
		ClearanceFront: 1.2, RequiresWater: true, RequiresDrain: true, WorkflowOrder: 2,
	},
	{
		ID: "drying_rack", Name: "Drying Rack",
		Category: plan.CategoryWashing,
		Width:    1.0, Depth: 0.5, Height: 1.7,
		ClearanceFront: 0.6, RequiresWall: true, WorkflowOrder: 3,
	},
	{
		ID: "hand_wash_sink", Name: "Hand Wash Sink",
		Category: plan.CategoryWashing,
		Width:    0.4, Depth: 0.35, Height: 0.86,
		ClearanceFront: 0.6, RequiresWater: true, RequiresDrain: true,
		RequiresWall: true, WorkflowOrder: 4,
	},
}

// byID indexes the catalog by equipment id.
var byID = func() map[string]plan.EquipmentSpec {
	m := make(map[string]plan.EquipmentSpec, len(specs))
	for _, s := range specs {
		m[s.ID] = s
	}
	return m
}()

// Get looks up a catalog entry by id.
func Get(id string) (plan.EquipmentSpec, bool) {
	s, ok := byID[id]
	return s, ok
}

// GetByPlacementID resolves a placement id ("<catalog id>_<index>")
// back to its catalog entry.
func GetByPlacementID(placementID string) (plan.EquipmentSpec, bool) {
	if i := strings.LastIndex(placementID, "_"); i > 0 {
		if s, ok := byID[placementID[:i]]; ok {
			return s, true
		}
	}
	s, ok := byID[placementID]
	return s, ok
}

// All returns every catalog entry, ordered by category then id.
func All() []plan.EquipmentSpec {
	out := slices.Clone(specs)
	slices.SortFunc(out, func(a, b plan.EquipmentSpec) int {
		if a.Category != b.Category {
			return strings.Compare(string(a.Category), string(b.Category))
		}
		return strings.Compare(a.ID, b.ID)
	})
	return out
}

// ByCategory returns all catalog entries in the given category.
func ByCategory(c plan.Category) []plan.EquipmentSpec {
	var out []plan.EquipmentSpec
	for _, s := range specs {
		if s.Category == c {
			out = append(out, s)
		}
	}
	return out
}
