package geom

import (
	"math"
	"testing"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Polygon
		want bool
	}{
		{"separate", Rect(0, 0, 1, 1), Rect(3, 3, 1, 1), false},
		{"overlapping", Rect(0, 0, 2, 2), Rect(1, 1, 2, 2), true},
		{"touching edge is not overlap", Rect(0, 0, 1, 1), Rect(1, 0, 1, 1), false},
		{"touching corner is not overlap", Rect(0, 0, 1, 1), Rect(1, 1, 1, 1), false},
		{"contained", Rect(0, 0, 4, 4), Rect(1, 1, 1, 1), true},
		{"identical", Rect(0, 0, 2, 2), Rect(0, 0, 2, 2), true},
		{"degenerate", Polygon{{0, 0}}, Rect(0, 0, 1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Polygon
		want float64
	}{
		{"side by side", Rect(0, 0, 1, 1), Rect(3, 0, 1, 1), 2},
		{"touching", Rect(0, 0, 1, 1), Rect(1, 0, 1, 1), 0},
		{"overlapping", Rect(0, 0, 2, 2), Rect(1, 1, 2, 2), 0},
		{"diagonal", Rect(0, 0, 1, 1), Rect(4, 5, 1, 1), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDistanceDegenerateDoesNotPanic(t *testing.T) {
	if got := Distance(Polygon{}, Rect(0, 0, 1, 1)); got != 0 {
		t.Errorf("Distance() = %v, want 0", got)
	}
}

func TestContainsPoint(t *testing.T) {
	p := Rect(0, 0, 4, 4)
	tests := []struct {
		name string
		pt   Point
		want bool
	}{
		{"inside", Point{2, 2}, true},
		{"outside", Point{5, 2}, false},
		{"on edge", Point{0, 2}, true},
		{"on corner", Point{4, 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsPoint(p, tt.pt); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestContains(t *testing.T) {
	tests := []struct {
		name            string
		container, item Polygon
		want            bool
	}{
		{"fully inside", Rect(0, 0, 4, 4), Rect(1, 1, 1, 1), true},
		{"flush against wall", Rect(0, 0, 4, 4), Rect(0, 0, 1, 1), true},
		{"sticking out", Rect(0, 0, 4, 4), Rect(3, 3, 2, 2), false},
		{"fully outside", Rect(0, 0, 4, 4), Rect(5, 5, 1, 1), false},
		{"degenerate container", Polygon{{0, 0}}, Rect(0, 0, 1, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(tt.container, tt.item); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClipRect(t *testing.T) {
	tests := []struct {
		name     string
		poly     Polygon
		clip     Bounds
		wantArea float64
	}{
		{"full containment", Rect(1, 1, 2, 2), Bounds{0, 0, 10, 10}, 4},
		{"half clip", Rect(0, 0, 4, 4), Bounds{2, 0, 10, 10}, 8},
		{"disjoint", Rect(0, 0, 1, 1), Bounds{5, 5, 6, 6}, 0},
		{"corner clip", Rect(0, 0, 4, 4), Bounds{3, 3, 10, 10}, 1},
		{"L-shape clip left arm", Polygon{{0, 0}, {6, 0}, {6, 2}, {2, 2}, {2, 6}, {0, 6}}, Bounds{0, 0, 2, 6}, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClipRect(tt.poly, tt.clip)
			if math.Abs(got.Area()-tt.wantArea) > 1e-9 {
				t.Errorf("ClipRect() area = %v, want %v", got.Area(), tt.wantArea)
			}
		})
	}
}

func TestClipRectDegenerate(t *testing.T) {
	if got := ClipRect(Polygon{{0, 0}, {1, 1}}, Bounds{0, 0, 5, 5}); !got.IsEmpty() {
		t.Errorf("ClipRect() = %v, want empty", got)
	}
}
