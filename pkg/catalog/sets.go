package catalog

import "github.com/galleykit/galley/pkg/plan"

// defaultSets lists the standard equipment line-up per business type.
// Repeated ids mean multiple units of the same model.
var defaultSets = map[plan.Business][]string{
	plan.BusinessFastFood: {
		"reach_in_refrigerator_2door",
		"reach_in_freezer_1door",
		"work_table_medium",
		"gas_range_4burner",
		"deep_fryer_double",
		"griddle",
		"three_compartment_sink",
		"hand_wash_sink",
	},
	plan.BusinessCasual: {
		"reach_in_refrigerator_2door",
		"reach_in_freezer_1door",
		"dry_storage_shelf",
		"work_table_large",
		"prep_sink",
		"gas_range_6burner",
		"deep_fryer_single",
		"convection_oven",
		"three_compartment_sink",
		"dishwasher_undercounter",
		"hand_wash_sink",
	},
	plan.BusinessFineDining: {
		"reach_in_refrigerator_2door",
		"reach_in_refrigerator_2door",
		"reach_in_freezer_1door",
		"dry_storage_shelf",
		"dry_storage_shelf",
		"work_table_large",
		"work_table_large",
		"prep_sink",
		"food_processor_station",
		"gas_range_6burner",
		"gas_range_4burner",
		"convection_oven",
		"salamander",
		"three_compartment_sink",
		"dishwasher_door_type",
		"drying_rack",
		"hand_wash_sink",
	},
	plan.BusinessCafeteria: {
		"reach_in_refrigerator_2door",
		"reach_in_refrigerator_2door",
		"reach_in_freezer_1door",
		"dry_storage_shelf",
		"dry_storage_shelf",
		"work_table_large",
		"work_table_large",
		"work_table_medium",
		"prep_sink",
		"gas_range_6burner",
		"deep_fryer_double",
		"convection_oven",
		"griddle",
		"three_compartment_sink",
		"dishwasher_door_type",
		"drying_rack",
		"hand_wash_sink",
		"hand_wash_sink",
	},
	plan.BusinessGhostKitchen: {
		"reach_in_refrigerator_2door",
		"reach_in_freezer_1door",
		"work_table_medium",
		"gas_range_6burner",
		"deep_fryer_single",
		"convection_oven",
		"three_compartment_sink",
		"hand_wash_sink",
	},
	plan.BusinessKorean: {
		"reach_in_refrigerator_2door",
		"reach_in_freezer_1door",
		"dry_storage_shelf",
		"work_table_large",
		"prep_sink",
		"gas_range_6burner",
		"deep_fryer_single",
		"griddle",
		"three_compartment_sink",
		"hand_wash_sink",
	},
	plan.BusinessCafe: {
		"reach_in_refrigerator_1door",
		"undercounter_refrigerator",
		"work_table_small",
		"work_table_medium",
		"prep_sink",
		"convection_oven",
		"three_compartment_sink",
		"hand_wash_sink",
	},
	plan.BusinessWestern: {
		"reach_in_refrigerator_2door",
		"reach_in_freezer_1door",
		"dry_storage_shelf",
		"work_table_large",
		"prep_sink",
		"gas_range_6burner",
		"deep_fryer_single",
		"convection_oven",
		"griddle",
		"three_compartment_sink",
		"dishwasher_undercounter",
		"hand_wash_sink",
	},
	plan.BusinessChinese: {
		"reach_in_refrigerator_2door",
		"reach_in_freezer_1door",
		"work_table_large",
		"work_table_medium",
		"prep_sink",
		"gas_range_6burner",
		"gas_range_4burner",
		"deep_fryer_double",
		"three_compartment_sink",
		"hand_wash_sink",
	},
	plan.BusinessJapanese: {
		"reach_in_refrigerator_2door",
		"reach_in_refrigerator_1door",
		"reach_in_freezer_1door",
		"work_table_large",
		"work_table_medium",
		"prep_sink",
		"gas_range_4burner",
		"deep_fryer_single",
		"three_compartment_sink",
		"dishwasher_undercounter",
		"hand_wash_sink",
	},
	plan.BusinessFranchise: {
		"reach_in_refrigerator_2door",
		"reach_in_freezer_1door",
		"work_table_medium",
		"gas_range_4burner",
		"deep_fryer_double",
		"griddle",
		"convection_oven",
		"three_compartment_sink",
		"hand_wash_sink",
	},
	plan.BusinessSnackBar: {
		"reach_in_refrigerator_1door",
		"reach_in_freezer_1door",
		"work_table_small",
		"gas_range_4burner",
		"deep_fryer_single",
		"griddle",
		"three_compartment_sink",
		"hand_wash_sink",
	},
	plan.BusinessBakery: {
		"reach_in_refrigerator_1door",
		"dry_storage_shelf",
		"dry_storage_shelf",
		"work_table_large",
		"work_table_medium",
		"convection_oven",
		"convection_oven",
		"three_compartment_sink",
		"hand_wash_sink",
	},
	plan.BusinessOther: {
		"reach_in_refrigerator_2door",
		"reach_in_freezer_1door",
		"work_table_medium",
		"prep_sink",
		"gas_range_4burner",
		"three_compartment_sink",
		"hand_wash_sink",
	},
}

// ForBusiness returns the default equipment set for a business type.
// Unknown business types get the casual set.
func ForBusiness(b plan.Business) []plan.EquipmentSpec {
	ids, ok := defaultSets[b]
	if !ok {
		ids = defaultSets[plan.BusinessCasual]
	}
	out := make([]plan.EquipmentSpec, 0, len(ids))
	for _, id := range ids {
		if s, found := byID[id]; found {
			out = append(out, s)
		}
	}
	return out
}

// Resolve maps caller-supplied ids to specs, skipping unknown ids. An
// empty input yields the business default set.
func Resolve(ids []string, b plan.Business) []plan.EquipmentSpec {
	if len(ids) == 0 {
		return ForBusiness(b)
	}
	out := make([]plan.EquipmentSpec, 0, len(ids))
	for _, id := range ids {
		if s, ok := byID[id]; ok {
			out = append(out, s)
		}
	}
	return out
}
