package catalog

import (
	"math"
	"testing"

	"github.com/galleykit/galley/pkg/plan"
)

func TestCatalogIntegrity(t *testing.T) {
	if len(specs) != 22 {
		t.Fatalf("catalog size = %d, want 22", len(specs))
	}
	for _, s := range specs {
		if s.Width <= 0 || s.Depth <= 0 || s.Height <= 0 {
			t.Errorf("%s: non-positive dimensions %vx%vx%v", s.ID, s.Width, s.Depth, s.Height)
		}
		if s.WorkflowOrder < 1 {
			t.Errorf("%s: workflow order %d, want >= 1", s.ID, s.WorkflowOrder)
		}
		if _, ok := plan.CategoryZone[s.Category]; !ok {
			t.Errorf("%s: unknown category %q", s.ID, s.Category)
		}
	}
}

func TestGet(t *testing.T) {
	s, ok := Get("gas_range_4burner")
	if !ok {
		t.Fatal("Get(gas_range_4burner) not found")
	}
	if s.Width != 0.6 || s.Depth != 0.7 || !s.RequiresVentilation {
		t.Errorf("unexpected spec: %+v", s)
	}
	if s.ClearanceSides != 0.46 {
		t.Errorf("ClearanceSides = %v, want 0.46", s.ClearanceSides)
	}
	if _, ok := Get("walk_in_cooler"); ok {
		t.Error("Get(walk_in_cooler) = found, want missing")
	}
}

func TestGetByPlacementID(t *testing.T) {
	tests := []struct {
		id     string
		wantID string
		wantOK bool
	}{
		{"hand_wash_sink_3", "hand_wash_sink", true},
		{"gas_range_6burner_0", "gas_range_6burner", true},
		{"hand_wash_sink", "hand_wash_sink", true},
		{"bogus_7", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			s, ok := GetByPlacementID(tt.id)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && s.ID != tt.wantID {
				t.Errorf("spec id = %q, want %q", s.ID, tt.wantID)
			}
		})
	}
}

func TestForBusiness(t *testing.T) {
	casual := ForBusiness(plan.BusinessCasual)
	if len(casual) != 11 {
		t.Errorf("casual set size = %d, want 11", len(casual))
	}

	// Unknown business types fall back to the casual set.
	fallback := ForBusiness(plan.Business("food_truck"))
	if len(fallback) != len(casual) {
		t.Errorf("fallback set size = %d, want %d", len(fallback), len(casual))
	}

	// Repeated ids yield repeated units.
	fine := ForBusiness(plan.BusinessFineDining)
	twoDoor := 0
	for _, s := range fine {
		if s.ID == "reach_in_refrigerator_2door" {
			twoDoor++
		}
	}
	if twoDoor != 2 {
		t.Errorf("fine dining 2-door units = %d, want 2", twoDoor)
	}
}

func TestZoneRatios(t *testing.T) {
	tests := []struct {
		name     string
		business plan.Business
	}{
		{"casual", plan.BusinessCasual},
		{"fast food", plan.BusinessFastFood},
		{"fine dining", plan.BusinessFineDining},
		{"cafeteria", plan.BusinessCafeteria},
		{"unknown", plan.Business("food_truck")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ratios := ZoneRatios(tt.business)
			var sum float64
			for _, z := range plan.WorkflowOrder {
				r := ratios[z]
				if r < minZoneRatio-1e-9 {
					t.Errorf("%s ratio = %v, below floor %v", z, r, minZoneRatio)
				}
				sum += r
			}
			if math.Abs(sum-1) > 1e-9 {
				t.Errorf("ratio sum = %v, want 1", sum)
			}
		})
	}
}

func TestZoneRatiosFastFoodFavorsCooking(t *testing.T) {
	base := ZoneRatios(plan.BusinessCasual)
	ff := ZoneRatios(plan.BusinessFastFood)
	if ff[plan.ZoneCooking] <= base[plan.ZoneCooking] {
		t.Errorf("fast food cooking ratio %v not above casual %v",
			ff[plan.ZoneCooking], base[plan.ZoneCooking])
	}
}

func TestAffinity(t *testing.T) {
	tests := []struct {
		a, b string
		want float64
	}{
		{"gas_range_4burner", "deep_fryer_single", 15},
		{"deep_fryer_double", "gas_range_6burner", 15},
		{"three_compartment_sink", "dishwasher_undercounter", 12},
		{"prep_sink", "work_table_large", 12},
		{"dishwasher_door_type", "drying_rack", 10},
		{"gas_range_6burner", "hand_wash_sink", 0},
	}

	for _, tt := range tests {
		if got := Affinity(tt.a, tt.b); got != tt.want {
			t.Errorf("Affinity(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCountEstimate(t *testing.T) {
	tests := []struct {
		name     string
		business plan.Business
		area     float64
		want     int
	}{
		{"small casual", plan.BusinessCasual, 15, 9},       // 0.6*7 + 0.4*11
		{"mid cafeteria", plan.BusinessCafeteria, 50, 16},  // 0.6*14 + 0.4*18
		{"large fast food", plan.BusinessFastFood, 130, 16}, // 0.6*22 + 0.4*8
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountEstimate(tt.business, tt.area); got != tt.want {
				t.Errorf("CountEstimate() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRecommendedCoversEveryZone(t *testing.T) {
	eq := Recommended(plan.BusinessCasual, 48)
	seen := map[plan.Category]bool{}
	for _, s := range eq {
		seen[s.Category] = true
	}
	for _, zone := range plan.WorkflowOrder {
		if !seen[plan.Category(zone)] {
			t.Errorf("no equipment recommended for %s", zone)
		}
	}
}
