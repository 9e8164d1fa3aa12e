package engine

import (
	"reflect"
	"strings"
	"testing"

	"github.com/galleykit/galley/pkg/catalog"
	"github.com/galleykit/galley/pkg/config"
	"github.com/galleykit/galley/pkg/geom"
	"github.com/galleykit/galley/pkg/plan"
)

func storageSpec(id string, w, d float64) plan.EquipmentSpec {
	return plan.EquipmentSpec{
		ID:            id,
		Name:          id,
		Category:      plan.CategoryStorage,
		Width:         w,
		Depth:         d,
		Height:        1.8,
		WorkflowOrder: 1,
	}
}

func singleZone(t plan.ZoneType, poly geom.Polygon) []plan.Zone {
	return []plan.Zone{{Type: t, Polygon: poly, Area: poly.Area()}}
}

func TestPlaceSingleItem(t *testing.T) {
	zones := singleZone(plan.ZoneStorage, geom.Rect(0, 0, 4, 4))
	spec := storageSpec("upright_fridge", 1.2, 0.8)

	placer := NewPlacer(config.Default(), 7)
	layout := placer.Place(zones, []plan.EquipmentSpec{spec}, nil)

	if len(layout.Items) != 1 {
		t.Fatalf("placed %d items, want 1", len(layout.Items))
	}
	it := layout.Items[0]
	if it.Placement.ID != "upright_fridge_0" {
		t.Errorf("placement ID = %q, want upright_fridge_0", it.Placement.ID)
	}
	if it.Placement.Zone != plan.ZoneStorage {
		t.Errorf("placement zone = %s, want storage", it.Placement.Zone)
	}
	if !geom.Contains(zones[0].Polygon, it.Rect) {
		t.Errorf("placed rect %v exits the zone", it.Rect)
	}
	if len(layout.Unplaced) != 0 || len(layout.Warnings) != 0 {
		t.Errorf("unexpected unplaced %v / warnings %v", layout.Unplaced, layout.Warnings)
	}
	if got := layout.Zones[0].EquipmentIDs; len(got) != 1 || got[0] != "upright_fridge_0" {
		t.Errorf("zone equipment registry = %v", got)
	}
}

func TestPlaceRotatesWhenUprightDoesNotFit(t *testing.T) {
	// A 1m-wide corridor: a 2.0x0.6 item only fits turned sideways.
	zones := singleZone(plan.ZoneStorage, geom.Rect(0, 0, 1, 4))
	spec := storageSpec("long_shelf", 2.0, 0.6)
	spec.ClearanceSides = 0

	layout := NewPlacer(config.Default(), 1).Place(zones, []plan.EquipmentSpec{spec}, nil)

	if len(layout.Items) != 1 {
		t.Fatalf("placed %d items, want 1 (unplaced: %v)", len(layout.Items), layout.Unplaced)
	}
	if layout.Items[0].Placement.Rotation != 90 {
		t.Errorf("rotation = %d, want 90", layout.Items[0].Placement.Rotation)
	}
	if layout.Items[0].W != 0.6 || layout.Items[0].H != 2.0 {
		t.Errorf("rotated footprint = %vx%v, want 0.6x2.0", layout.Items[0].W, layout.Items[0].H)
	}
}

func TestPlaceImpossibleItemRecordedUnplaced(t *testing.T) {
	zones := singleZone(plan.ZoneStorage, geom.Rect(0, 0, 1, 1))
	spec := storageSpec("walk_in_cooler", 2.5, 2.5)

	layout := NewPlacer(config.Default(), 1).Place(zones, []plan.EquipmentSpec{spec}, nil)

	if len(layout.Items) != 0 {
		t.Fatalf("placed %d items, want 0", len(layout.Items))
	}
	if len(layout.Unplaced) != 1 || layout.Unplaced[0] != "walk_in_cooler" {
		t.Errorf("unplaced = %v, want [walk_in_cooler]", layout.Unplaced)
	}
	if len(layout.Warnings) != 1 || !strings.Contains(layout.Warnings[0], "walk_in_cooler") {
		t.Errorf("warnings = %v, want one naming the item", layout.Warnings)
	}
}

func TestPlaceMissingZone(t *testing.T) {
	zones := singleZone(plan.ZoneCooking, geom.Rect(0, 0, 4, 4))
	spec := storageSpec("upright_fridge", 1.0, 0.8)

	layout := NewPlacer(config.Default(), 1).Place(zones, []plan.EquipmentSpec{spec}, nil)

	if len(layout.Unplaced) != 1 {
		t.Fatalf("unplaced = %v, want the fridge", layout.Unplaced)
	}
	if !strings.Contains(layout.Warnings[0], "storage") {
		t.Errorf("warning %q should name the missing zone", layout.Warnings[0])
	}
}

func TestPlaceAvoidsFixedObstacles(t *testing.T) {
	zones := singleZone(plan.ZoneStorage, geom.Rect(0, 0, 4, 4))
	spec := storageSpec("upright_fridge", 1.0, 0.8)
	fixed := []plan.FixedElement{{Kind: plan.FixedEntry, X: 2, Y: 2, Width: 1.0}}

	layout := NewPlacer(config.Default(), 3).Place(zones, []plan.EquipmentSpec{spec}, fixed)

	if len(layout.Items) != 1 {
		t.Fatalf("placed %d items, want 1", len(layout.Items))
	}
	if geom.Overlaps(layout.Items[0].Rect, fixed[0].Footprint()) {
		t.Errorf("placement %v overlaps the doorway at (2,2)", layout.Items[0].Rect)
	}
}

func TestPlaceFullSetNoOverlaps(t *testing.T) {
	kitchen := plan.Kitchen{Shape: plan.ShapeRectangle, Vertices: geom.Rect(0, 0, 8, 6)}
	zones := Partition(kitchen, defaultRatios())
	specs := catalog.ForBusiness(plan.BusinessCasual)

	layout := NewPlacer(config.Default(), 42).Place(zones, specs, nil)

	if len(layout.Items) == 0 {
		t.Fatal("nothing placed in an 8x6 kitchen")
	}
	for i := range layout.Items {
		for j := i + 1; j < len(layout.Items); j++ {
			if geom.Overlaps(layout.Items[i].Rect, layout.Items[j].Rect) {
				t.Errorf("%s overlaps %s", layout.Items[i].Placement.ID, layout.Items[j].Placement.ID)
			}
		}
	}
	for _, it := range layout.Items {
		zone, ok := layout.Zone(it.Placement.Zone)
		if !ok {
			t.Fatalf("item %s in unknown zone %s", it.Placement.ID, it.Placement.Zone)
		}
		if !geom.Contains(zone.Polygon, it.Rect) {
			t.Errorf("%s exits its %s zone", it.Placement.ID, it.Placement.Zone)
		}
	}
	if len(layout.Unplaced) != len(layout.Warnings) {
		t.Errorf("unplaced count %d != warning count %d", len(layout.Unplaced), len(layout.Warnings))
	}
}

func TestPlaceDeterministic(t *testing.T) {
	kitchen := plan.Kitchen{Shape: plan.ShapeRectangle, Vertices: geom.Rect(0, 0, 8, 6)}
	zones := Partition(kitchen, defaultRatios())
	specs := catalog.ForBusiness(plan.BusinessCasual)

	a := NewPlacer(config.Default(), 42).Place(zones, specs, nil)
	b := NewPlacer(config.Default(), 42).Place(zones, specs, nil)

	if !reflect.DeepEqual(a.Result(), b.Result()) {
		t.Error("identical seeds produced different placements")
	}
}

func TestPlaceWallRequiredHugsWall(t *testing.T) {
	zones := singleZone(plan.ZoneStorage, geom.Rect(0, 0, 6, 6))
	spec := storageSpec("upright_fridge", 1.2, 0.8)
	spec.RequiresWall = true

	cfg := config.Default()
	cfg.Heuristic.Jitter = 0 // isolate the wall term
	layout := NewPlacer(cfg, 1).Place(zones, []plan.EquipmentSpec{spec}, nil)

	if len(layout.Items) != 1 {
		t.Fatalf("placed %d items, want 1", len(layout.Items))
	}
	it := layout.Items[0]
	b := zones[0].Polygon.BoundingBox()
	wallDist := min(
		it.Placement.X-b.MinX,
		b.MaxX-(it.Placement.X+it.W),
		it.Placement.Y-b.MinY,
		b.MaxY-(it.Placement.Y+it.H),
	)
	// The grid is inset by the wall clearance, so the closest legal
	// stand-off is the clearance itself.
	if wallDist > cfg.Constraints.WallClearance+1e-6 {
		t.Errorf("wall-required item sits %.2fm off the wall", wallDist)
	}
}
