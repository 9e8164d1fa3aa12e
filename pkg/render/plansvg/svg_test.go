package plansvg

import (
	"strings"
	"testing"

	"github.com/galleykit/galley/pkg/geom"
	"github.com/galleykit/galley/pkg/plan"
)

func sampleKitchen() plan.Kitchen {
	return plan.Kitchen{
		Shape:    plan.ShapeRectangle,
		Vertices: geom.Rect(0, 0, 10, 8),
	}
}

func sampleResult() plan.Result {
	return plan.Result{
		Zones: []plan.Zone{
			{Type: plan.ZoneStorage, Polygon: geom.Rect(0, 4, 5, 4), Area: 20},
			{Type: plan.ZoneCooking, Polygon: geom.Rect(5, 0, 5, 4), Area: 20},
		},
		Placement: plan.PlacementResult{
			Placements: []plan.Placement{
				{ID: "gas_range_4burner_0", Zone: plan.ZoneCooking, X: 6, Y: 1},
			},
		},
	}
}

func TestRender(t *testing.T) {
	svg := string(Render(sampleKitchen(), sampleResult()))

	if !strings.HasPrefix(svg, "<svg xmlns=") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Fatal("output is not a complete SVG document")
	}
	// 10x8 m at the default 60 px/m plus padding
	if !strings.Contains(svg, `viewBox="0 0 648.0 528.0"`) {
		t.Errorf("unexpected frame size:\n%s", svg[:120])
	}
	if !strings.Contains(svg, `fill="#aed6f1"`) {
		t.Error("storage zone patch missing")
	}
	if !strings.Contains(svg, `fill="#f5b7b1"`) {
		t.Error("cooking zone patch missing")
	}
	if !strings.Contains(svg, `fill="#fef9e7"`) {
		t.Error("equipment box missing")
	}
	// labels and grid are off by default
	if strings.Contains(svg, "<text") {
		t.Error("labels should be off by default")
	}
	if strings.Contains(svg, "<line") {
		t.Error("grid should be off by default")
	}
}

func TestRenderWithLabels(t *testing.T) {
	svg := string(Render(sampleKitchen(), sampleResult(), WithLabels()))

	if !strings.Contains(svg, ">gas_range_4burner_0<") {
		t.Error("equipment label missing")
	}
	if !strings.Contains(svg, "storage (20.0 m") {
		t.Error("zone label missing")
	}
}

func TestRenderWithGrid(t *testing.T) {
	svg := string(Render(sampleKitchen(), sampleResult(), WithGrid()))

	// 11 vertical + 9 horizontal lines for a 10x8 floor
	if got := strings.Count(svg, "<line"); got != 20 {
		t.Errorf("grid line count = %d, want 20", got)
	}
}

func TestRenderWithFixed(t *testing.T) {
	fixed := []plan.FixedElement{
		{Kind: plan.FixedVent, X: 7, Y: 2, Width: 0.5},
	}
	svg := string(Render(sampleKitchen(), sampleResult(), WithFixed(fixed), WithLabels()))

	if !strings.Contains(svg, `fill="#bb8fce"`) {
		t.Error("vent marker missing")
	}
	if !strings.Contains(svg, ">vent<") {
		t.Error("vent label missing")
	}
}

func TestRenderWithScale(t *testing.T) {
	svg := string(Render(sampleKitchen(), sampleResult(), WithScale(30)))

	if !strings.Contains(svg, `viewBox="0 0 348.0 288.0"`) {
		t.Error("scale option not applied")
	}
}

func TestRenderEmptyKitchen(t *testing.T) {
	svg := string(Render(plan.Kitchen{}, plan.Result{}))

	if !strings.HasPrefix(svg, "<svg") || !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("empty kitchen should still produce a valid frame")
	}
}

func TestRenderUnknownPlacementSkipped(t *testing.T) {
	res := sampleResult()
	res.Placement.Placements = []plan.Placement{{ID: "mystery_box_0", Zone: plan.ZoneCooking, X: 6, Y: 1}}

	svg := string(Render(sampleKitchen(), res))
	if strings.Contains(svg, `fill="#fef9e7"`) {
		t.Error("placement without a catalog entry should be skipped")
	}
}
