package engine

import (
	"math"
	"testing"

	"github.com/galleykit/galley/pkg/config"
	"github.com/galleykit/galley/pkg/geom"
	"github.com/galleykit/galley/pkg/plan"
)

func TestScoreEmptyLayout(t *testing.T) {
	kitchen := plan.Kitchen{Shape: plan.ShapeRectangle, Vertices: geom.Rect(0, 0, 8, 6)}
	layout := &Layout{}

	got := NewScorer(config.Default()).Score(kitchen, layout, nil)

	// Fewer than two zone centroids: neutral workflow. No zones: zero
	// space. No findings: full safety. Too few items: default access.
	want := plan.ScoreBreakdown{
		Workflow:      0.5,
		Space:         0,
		Safety:        1,
		Accessibility: 0.8,
		Overall:       52.0,
	}
	if got != want {
		t.Errorf("Score() = %+v, want %+v", got, want)
	}
}

func TestScoreSafetyPenalty(t *testing.T) {
	kitchen := plan.Kitchen{Shape: plan.ShapeRectangle, Vertices: geom.Rect(0, 0, 8, 6)}
	violations := []plan.Violation{
		{Severity: plan.SeverityError},
		{Severity: plan.SeverityError},
		{Severity: plan.SeverityWarning},
		{Severity: plan.SeverityInfo}, // info never penalizes
	}

	got := NewScorer(config.Default()).Score(kitchen, &Layout{}, violations)

	if got.Safety != 0.55 {
		t.Errorf("Safety = %v, want 0.55 (two errors, one warning)", got.Safety)
	}
}

func TestScoreSafetyFloor(t *testing.T) {
	kitchen := plan.Kitchen{Shape: plan.ShapeRectangle, Vertices: geom.Rect(0, 0, 8, 6)}
	violations := make([]plan.Violation, 10)
	for i := range violations {
		violations[i] = plan.Violation{Severity: plan.SeverityError}
	}

	got := NewScorer(config.Default()).Score(kitchen, &Layout{}, violations)

	if got.Safety != 0 {
		t.Errorf("Safety = %v, want floor of 0", got.Safety)
	}
}

func TestScoreAccessibilityBand(t *testing.T) {
	kitchen := plan.Kitchen{Shape: plan.ShapeRectangle, Vertices: geom.Rect(0, 0, 10, 10)}
	layout := &Layout{
		Zones: singleZone(plan.ZoneStorage, geom.Rect(0, 0, 10, 10)),
		Items: []PlacedItem{
			item("a_0", plan.ZoneStorage, plan.EquipmentSpec{}, 1, 1, 1, 1),
			item("b_1", plan.ZoneStorage, plan.EquipmentSpec{}, 3, 1, 1, 1),
		},
	}

	got := NewScorer(config.Default()).Score(kitchen, layout, nil)

	// Both items' nearest-neighbor gap is exactly 1.0m, inside the band.
	if got.Accessibility != 1 {
		t.Errorf("Accessibility = %v, want 1", got.Accessibility)
	}
	// Footprint 2 over zone area 100 is below the 12% band floor.
	if got.Space != 0.167 {
		t.Errorf("Space = %v, want 0.167", got.Space)
	}
}

func TestScoreWorkflowShortWalk(t *testing.T) {
	kitchen := plan.Kitchen{Shape: plan.ShapeRectangle, Vertices: geom.Rect(0, 0, 8, 6)}
	// All four zone centroids clustered within a meter: the walk is far
	// shorter than the optimal 0.75x(w+h), so the score clamps to 1.
	layout := &Layout{Zones: []plan.Zone{
		{Type: plan.ZoneStorage, Polygon: geom.Rect(3.0, 2.5, 1, 1), Area: 1},
		{Type: plan.ZonePreparation, Polygon: geom.Rect(3.5, 2.5, 1, 1), Area: 1},
		{Type: plan.ZoneCooking, Polygon: geom.Rect(4.0, 2.5, 1, 1), Area: 1},
		{Type: plan.ZoneWashing, Polygon: geom.Rect(4.5, 2.5, 1, 1), Area: 1},
	}}

	got := NewScorer(config.Default()).Score(kitchen, layout, nil)

	if got.Workflow != 1 {
		t.Errorf("Workflow = %v, want 1 for a 1.5m walk", got.Workflow)
	}
}

func TestScoreWorkflowUsesRealPartition(t *testing.T) {
	kitchen := plan.Kitchen{Shape: plan.ShapeRectangle, Vertices: geom.Rect(0, 0, 8, 6)}
	layout := &Layout{Zones: Partition(kitchen, defaultRatios())}

	got := NewScorer(config.Default()).Score(kitchen, layout, nil)

	if got.Workflow < 0 || got.Workflow > 1 {
		t.Errorf("Workflow = %v, want within [0,1]", got.Workflow)
	}
	if got.Overall < 0 || got.Overall > 100 {
		t.Errorf("Overall = %v, want within [0,100]", got.Overall)
	}
}

func TestScoreSpaceBand(t *testing.T) {
	// One 10x10 zone; scale the single item to hit each band segment.
	tests := []struct {
		name string
		side float64
		want float64
	}{
		{"inside band", 4, 1},           // 16% of the zone
		{"over the cap", 7, 0.785},      // 49%: 1 - (0.49-0.35)/0.65
		{"under the floor", 2, 0.333},   // 4%: 0.04/0.12
	}
	kitchen := plan.Kitchen{Shape: plan.ShapeRectangle, Vertices: geom.Rect(0, 0, 10, 10)}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout := &Layout{
				Zones: singleZone(plan.ZoneStorage, geom.Rect(0, 0, 10, 10)),
				Items: []PlacedItem{item("a_0", plan.ZoneStorage, plan.EquipmentSpec{}, 0, 0, tt.side, tt.side)},
			}
			got := NewScorer(config.Default()).Score(kitchen, layout, nil)
			if math.Abs(got.Space-tt.want) > 0.001 {
				t.Errorf("Space = %v, want %v", got.Space, tt.want)
			}
		})
	}
}
