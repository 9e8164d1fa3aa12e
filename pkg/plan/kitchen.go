package plan

import "github.com/galleykit/galley/pkg/geom"

// Shape classifies the kitchen footprint. Irregular shapes are
// approximated by their bounding rectangle during partitioning.
type Shape string

// Supported kitchen shapes.
const (
	ShapeRectangle Shape = "rectangle"
	ShapeL         Shape = "L"
	ShapeU         Shape = "U"
	ShapeIrregular Shape = "irregular"
)

// ValidShapes is the set of recognized shape tags.
var ValidShapes = map[Shape]bool{
	ShapeRectangle: true,
	ShapeL:         true,
	ShapeU:         true,
	ShapeIrregular: true,
}

// Business tags a restaurant concept. It selects the default equipment
// set and the zone ratio targets.
type Business string

// Known business types. Unknown values fall back to BusinessCasual
// defaults where a catalog lookup is involved.
const (
	BusinessFastFood     Business = "fast_food"
	BusinessCasual       Business = "casual"
	BusinessFineDining   Business = "fine_dining"
	BusinessCafeteria    Business = "cafeteria"
	BusinessGhostKitchen Business = "ghost_kitchen"
	BusinessKorean       Business = "korean"
	BusinessCafe         Business = "cafe"
	BusinessWestern      Business = "western"
	BusinessChinese      Business = "chinese"
	BusinessJapanese     Business = "japanese"
	BusinessFranchise    Business = "franchise"
	BusinessSnackBar     Business = "snack_bar"
	BusinessBakery       Business = "bakery"
	BusinessOther        Business = "other"
)

// Kitchen is the space being laid out. Immutable for the duration of an
// optimization run.
type Kitchen struct {
	Shape    Shape        `json:"shape"`
	Vertices geom.Polygon `json:"vertices"`
	Business Business     `json:"business"`
	Seats    int          `json:"seats"`
}

// Area returns the kitchen floor area in square meters.
func (k Kitchen) Area() float64 {
	return k.Vertices.Area()
}

// FixedKind identifies a fixed infrastructure element.
type FixedKind string

// Fixed infrastructure kinds.
const (
	FixedEntry FixedKind = "entry"
	FixedWater FixedKind = "water"
	FixedDrain FixedKind = "drain"
	FixedGas   FixedKind = "gas"
	FixedVent  FixedKind = "vent"
)

// ValidFixedKinds is the set of recognized fixed element kinds.
var ValidFixedKinds = map[FixedKind]bool{
	FixedEntry: true,
	FixedWater: true,
	FixedDrain: true,
	FixedGas:   true,
	FixedVent:  true,
}

// FixedElement is immovable infrastructure: a door, a water or gas
// connection, a drain, or a ventilation shaft. The placement engine
// treats its footprint as an obstacle and the validation engine checks
// zone proximity against it.
type FixedElement struct {
	Kind  FixedKind `json:"kind"`
	X     float64   `json:"x"`
	Y     float64   `json:"y"`
	Width float64   `json:"width"`
}

// Footprint returns the element's square obstacle polygon centered on
// its position. Zero-width elements occupy a nominal 0.1 m square.
func (f FixedElement) Footprint() geom.Polygon {
	w := f.Width
	if w <= 0 {
		w = 0.1
	}
	return geom.Rect(f.X-w/2, f.Y-w/2, w, w)
}
