package engine

import (
	"math"
	"testing"

	"github.com/galleykit/galley/pkg/errors"
	"github.com/galleykit/galley/pkg/geom"
	"github.com/galleykit/galley/pkg/plan"
)

func defaultRatios() map[plan.ZoneType]float64 {
	return map[plan.ZoneType]float64{
		plan.ZoneStorage:     0.20,
		plan.ZonePreparation: 0.25,
		plan.ZoneCooking:     0.35,
		plan.ZoneWashing:     0.20,
	}
}

func TestValidateRatios(t *testing.T) {
	tests := []struct {
		name    string
		ratios  map[plan.ZoneType]float64
		wantErr bool
	}{
		{"valid defaults", defaultRatios(), false},
		{
			"missing zone",
			map[plan.ZoneType]float64{
				plan.ZoneStorage:     0.4,
				plan.ZonePreparation: 0.3,
				plan.ZoneCooking:     0.3,
			},
			true,
		},
		{
			"sum too high",
			map[plan.ZoneType]float64{
				plan.ZoneStorage:     0.4,
				plan.ZonePreparation: 0.4,
				plan.ZoneCooking:     0.4,
				plan.ZoneWashing:     0.4,
			},
			true,
		},
		{
			"negative ratio",
			map[plan.ZoneType]float64{
				plan.ZoneStorage:     -0.1,
				plan.ZonePreparation: 0.4,
				plan.ZoneCooking:     0.4,
				plan.ZoneWashing:     0.3,
			},
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRatios(tt.ratios)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRatios() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidRatios) {
				t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidRatios)
			}
		})
	}
}

func TestPartitionRectangle(t *testing.T) {
	kitchen := plan.Kitchen{
		Shape:    plan.ShapeRectangle,
		Vertices: geom.Rect(0, 0, 10, 8),
	}
	zones := Partition(kitchen, defaultRatios())

	if len(zones) != 4 {
		t.Fatalf("got %d zones, want 4", len(zones))
	}
	for i, zt := range plan.WorkflowOrder {
		if zones[i].Type != zt {
			t.Errorf("zones[%d].Type = %s, want %s", i, zones[i].Type, zt)
		}
	}

	sum := 0.0
	for _, z := range zones {
		sum += z.Area
	}
	if math.Abs(sum-80) > 0.1 {
		t.Errorf("zone areas sum to %v, want 80", sum)
	}

	// Washing is the right column's upper row: 0.20/0.55 of the width,
	// 0.20/0.55 of the height, which works out to the washing ratio of
	// the whole floor.
	for _, z := range zones {
		if z.Type == plan.ZoneWashing && math.Abs(z.Area-16) > 0.1 {
			t.Errorf("washing area = %v, want 16", z.Area)
		}
	}
}

func TestPartitionRectangleLayout(t *testing.T) {
	kitchen := plan.Kitchen{
		Shape:    plan.ShapeRectangle,
		Vertices: geom.Rect(0, 0, 10, 8),
	}
	zones := Partition(kitchen, defaultRatios())

	centroid := func(zt plan.ZoneType) geom.Point {
		for _, z := range zones {
			if z.Type == zt {
				return z.Polygon.Centroid()
			}
		}
		t.Fatalf("zone %s missing", zt)
		return geom.Point{}
	}

	storage := centroid(plan.ZoneStorage)
	prep := centroid(plan.ZonePreparation)
	washing := centroid(plan.ZoneWashing)
	cooking := centroid(plan.ZoneCooking)

	// Storage upper-left, preparation lower-left, washing upper-right,
	// cooking lower-right.
	if !(storage.X < washing.X && storage.Y > prep.Y) {
		t.Errorf("storage (%v) not upper-left of washing (%v) / prep (%v)", storage, washing, prep)
	}
	if !(cooking.X > prep.X && cooking.Y < washing.Y) {
		t.Errorf("cooking (%v) not lower-right of prep (%v) / washing (%v)", cooking, prep, washing)
	}
}

func TestPartitionLShape(t *testing.T) {
	// 8x6 outline with the top-right 4x3 corner cut away.
	poly := geom.NewPolygon([]geom.Point{
		{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 8, Y: 3},
		{X: 4, Y: 3}, {X: 4, Y: 6}, {X: 0, Y: 6},
	})
	kitchen := plan.Kitchen{Shape: plan.ShapeL, Vertices: poly}
	zones := Partition(kitchen, defaultRatios())

	if len(zones) != 4 {
		t.Fatalf("got %d zones, want 4", len(zones))
	}
	sum := 0.0
	for _, z := range zones {
		sum += z.Area
		if z.Area <= 0 {
			t.Errorf("%s zone has area %v", z.Type, z.Area)
		}
	}
	if math.Abs(sum-36) > 0.1 {
		t.Errorf("zone areas sum to %v, want 36", sum)
	}
}

func TestPartitionUShape(t *testing.T) {
	// 12x8 outline with a 4x5 notch cut from the top edge.
	poly := geom.NewPolygon([]geom.Point{
		{X: 0, Y: 0}, {X: 12, Y: 0}, {X: 12, Y: 8}, {X: 8, Y: 8},
		{X: 8, Y: 3}, {X: 4, Y: 3}, {X: 4, Y: 8}, {X: 0, Y: 8},
	})
	kitchen := plan.Kitchen{Shape: plan.ShapeU, Vertices: poly}
	zones := Partition(kitchen, defaultRatios())

	if len(zones) != 4 {
		t.Fatalf("got %d zones, want 4", len(zones))
	}
	sum := 0.0
	for _, z := range zones {
		sum += z.Area
	}
	if math.Abs(sum-76) > 0.1 {
		t.Errorf("zone areas sum to %v, want 76", sum)
	}
}

func TestPartitionIrregularUsesBoundingBox(t *testing.T) {
	// A triangle: the grid partition covers the bounding box, so zone
	// areas sum to the full box, not the triangle.
	poly := geom.NewPolygon([]geom.Point{
		{X: 0, Y: 0}, {X: 8, Y: 0}, {X: 4, Y: 6},
	})
	kitchen := plan.Kitchen{Shape: plan.ShapeIrregular, Vertices: poly}
	zones := Partition(kitchen, defaultRatios())

	if len(zones) != 4 {
		t.Fatalf("got %d zones, want 4", len(zones))
	}
	sum := 0.0
	for _, z := range zones {
		sum += z.Area
	}
	if math.Abs(sum-48) > 0.1 {
		t.Errorf("zone areas sum to %v, want bounding box area 48", sum)
	}
}

func TestPartitionEmptyPolygon(t *testing.T) {
	kitchen := plan.Kitchen{Shape: plan.ShapeRectangle, Vertices: geom.Polygon{{X: 0, Y: 0}, {X: 1, Y: 1}}}
	if zones := Partition(kitchen, defaultRatios()); zones != nil {
		t.Errorf("Partition() = %v, want nil for degenerate polygon", zones)
	}
}

func TestPartitionRatioScaling(t *testing.T) {
	// A cooking-heavy ratio map should grow the cooking zone at the
	// expense of washing.
	heavy := map[plan.ZoneType]float64{
		plan.ZoneStorage:     0.15,
		plan.ZonePreparation: 0.20,
		plan.ZoneCooking:     0.50,
		plan.ZoneWashing:     0.15,
	}
	kitchen := plan.Kitchen{Shape: plan.ShapeRectangle, Vertices: geom.Rect(0, 0, 10, 8)}

	area := func(zones []plan.Zone, zt plan.ZoneType) float64 {
		for _, z := range zones {
			if z.Type == zt {
				return z.Area
			}
		}
		return 0
	}

	base := Partition(kitchen, defaultRatios())
	heavyZones := Partition(kitchen, heavy)
	if area(heavyZones, plan.ZoneCooking) <= area(base, plan.ZoneCooking) {
		t.Errorf("cooking area %v not larger than baseline %v under cooking-heavy ratios",
			area(heavyZones, plan.ZoneCooking), area(base, plan.ZoneCooking))
	}
}
