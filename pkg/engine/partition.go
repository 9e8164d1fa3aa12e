package engine

import (
	"math"

	"github.com/galleykit/galley/pkg/errors"
	"github.com/galleykit/galley/pkg/geom"
	"github.com/galleykit/galley/pkg/plan"
)

// ratioTolerance is how far the four zone ratios may drift from
// summing to exactly 1 before the input is rejected.
const ratioTolerance = 0.01

// ValidateRatios checks that a ratio map covers all four zones with
// values in (0,1] summing to 1 within tolerance.
func ValidateRatios(ratios map[plan.ZoneType]float64) error {
	sum := 0.0
	for _, zt := range plan.WorkflowOrder {
		r, ok := ratios[zt]
		if !ok {
			return errors.New(errors.ErrCodeInvalidRatios, "missing ratio for zone %s", zt)
		}
		if r <= 0 || r > 1 {
			return errors.New(errors.ErrCodeInvalidRatios, "ratio for zone %s out of range (0,1]: %v", zt, r)
		}
		sum += r
	}
	if math.Abs(sum-1) > ratioTolerance {
		return errors.New(errors.ErrCodeInvalidRatios, "zone ratios must sum to 1, got %v", sum)
	}
	return nil
}

// Partition splits the kitchen polygon into up to four work zones sized
// by the given ratio map. The strategy follows the kitchen shape:
// rectangles use a 2x2 grid, L-shapes a two-column split, U-shapes a
// three-column split. Irregular shapes fall back to the rectangle grid
// on the bounding box. Any step that produces an empty region degrades
// to the next simpler strategy instead of returning an empty zone.
//
// Zones come back in workflow order; geometrically empty zones are
// omitted.
func Partition(kitchen plan.Kitchen, ratios map[plan.ZoneType]float64) []plan.Zone {
	poly := kitchen.Vertices
	if poly.IsEmpty() {
		return nil
	}

	var parts map[plan.ZoneType]geom.Polygon
	switch kitchen.Shape {
	case plan.ShapeL:
		parts = partitionL(poly, ratios)
	case plan.ShapeU:
		parts = partitionU(poly, ratios)
	default:
		// Rectangle, irregular, and anything unrecognized use the
		// bounding-box grid.
		parts = partitionRect(poly, ratios)
	}

	zones := make([]plan.Zone, 0, len(parts))
	for _, zt := range plan.WorkflowOrder {
		p, ok := parts[zt]
		if !ok || p.IsEmpty() {
			continue
		}
		zones = append(zones, plan.Zone{
			Type:    zt,
			Polygon: p,
			Area:    p.Area(),
		})
	}
	return zones
}

// partitionRect divides the bounding box into a 2x2 grid: storage
// upper-left, preparation lower-left, washing upper-right, cooking
// lower-right. The fixed layout keeps storage feeding prep, prep
// feeding the hot line, and washing on the service side.
func partitionRect(poly geom.Polygon, ratios map[plan.ZoneType]float64) map[plan.ZoneType]geom.Polygon {
	b := poly.BoundingBox()
	width, height := b.Width(), b.Height()

	leftRatio := ratios[plan.ZoneStorage] + ratios[plan.ZonePreparation]
	rightRatio := ratios[plan.ZoneWashing] + ratios[plan.ZoneCooking]
	total := leftRatio + rightRatio
	leftRatio /= total

	leftWidth := width * leftRatio
	rightWidth := width - leftWidth

	leftTop := ratios[plan.ZoneStorage] / (ratios[plan.ZoneStorage] + ratios[plan.ZonePreparation])
	rightTop := ratios[plan.ZoneWashing] / (ratios[plan.ZoneWashing] + ratios[plan.ZoneCooking])

	return map[plan.ZoneType]geom.Polygon{
		plan.ZoneStorage:     geom.Rect(b.MinX, b.MinY+height*(1-leftTop), leftWidth, height*leftTop),
		plan.ZonePreparation: geom.Rect(b.MinX, b.MinY, leftWidth, height*(1-leftTop)),
		plan.ZoneWashing:     geom.Rect(b.MinX+leftWidth, b.MinY+height*(1-rightTop), rightWidth, height*rightTop),
		plan.ZoneCooking:     geom.Rect(b.MinX+leftWidth, b.MinY, rightWidth, height*(1-rightTop)),
	}
}

// partitionL bisects the bounding box vertically at 45% of its width,
// clips both halves against the actual polygon to respect the cutout,
// then splits each half at its own vertical midpoint: storage over
// preparation on the left, washing over cooking on the right.
func partitionL(poly geom.Polygon, ratios map[plan.ZoneType]float64) map[plan.ZoneType]geom.Polygon {
	b := poly.BoundingBox()
	midX := b.MinX + b.Width()*0.45

	left := geom.ClipRect(poly, geom.Bounds{MinX: b.MinX, MinY: b.MinY, MaxX: midX, MaxY: b.MaxY})
	right := geom.ClipRect(poly, geom.Bounds{MinX: midX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY})
	if left.IsEmpty() || right.IsEmpty() {
		return partitionRect(poly, ratios)
	}

	lb := left.BoundingBox()
	leftMidY := (lb.MinY + lb.MaxY) / 2
	rb := right.BoundingBox()
	rightMidY := (rb.MinY + rb.MaxY) / 2

	return map[plan.ZoneType]geom.Polygon{
		plan.ZoneStorage:     geom.ClipRect(left, geom.Bounds{MinX: lb.MinX, MinY: leftMidY, MaxX: lb.MaxX, MaxY: lb.MaxY}),
		plan.ZonePreparation: geom.ClipRect(left, geom.Bounds{MinX: lb.MinX, MinY: lb.MinY, MaxX: lb.MaxX, MaxY: leftMidY}),
		plan.ZoneWashing:     geom.ClipRect(right, geom.Bounds{MinX: rb.MinX, MinY: rightMidY, MaxX: rb.MaxX, MaxY: rb.MaxY}),
		plan.ZoneCooking:     geom.ClipRect(right, geom.Bounds{MinX: rb.MinX, MinY: rb.MinY, MaxX: rb.MaxX, MaxY: rightMidY}),
	}
}

// partitionU splits into three columns sized by ratio: storage plus
// preparation on the left (stacked by their own ratio), cooking in the
// center at the bottom of the U, washing on the right.
func partitionU(poly geom.Polygon, ratios map[plan.ZoneType]float64) map[plan.ZoneType]geom.Polygon {
	b := poly.BoundingBox()
	width := b.Width()

	leftRatio := ratios[plan.ZoneStorage] + ratios[plan.ZonePreparation]
	centerRatio := ratios[plan.ZoneCooking]
	rightRatio := ratios[plan.ZoneWashing]
	total := leftRatio + centerRatio + rightRatio

	leftX := b.MinX + width*(leftRatio/total)
	rightX := b.MinX + width*((leftRatio+centerRatio)/total)

	left := geom.ClipRect(poly, geom.Bounds{MinX: b.MinX, MinY: b.MinY, MaxX: leftX, MaxY: b.MaxY})
	center := geom.ClipRect(poly, geom.Bounds{MinX: leftX, MinY: b.MinY, MaxX: rightX, MaxY: b.MaxY})
	right := geom.ClipRect(poly, geom.Bounds{MinX: rightX, MinY: b.MinY, MaxX: b.MaxX, MaxY: b.MaxY})
	if left.IsEmpty() || center.IsEmpty() || right.IsEmpty() {
		return partitionL(poly, ratios)
	}

	lb := left.BoundingBox()
	storageShare := ratios[plan.ZoneStorage] / (ratios[plan.ZoneStorage] + ratios[plan.ZonePreparation])
	leftMidY := lb.MinY + lb.Height()*(1-storageShare)

	return map[plan.ZoneType]geom.Polygon{
		plan.ZoneStorage:     geom.ClipRect(left, geom.Bounds{MinX: lb.MinX, MinY: leftMidY, MaxX: lb.MaxX, MaxY: lb.MaxY}),
		plan.ZonePreparation: geom.ClipRect(left, geom.Bounds{MinX: lb.MinX, MinY: lb.MinY, MaxX: lb.MaxX, MaxY: leftMidY}),
		plan.ZoneCooking:     center,
		plan.ZoneWashing:     right,
	}
}
