package engine

import (
	"fmt"
	"math"

	"github.com/galleykit/galley/pkg/config"
	"github.com/galleykit/galley/pkg/geom"
	"github.com/galleykit/galley/pkg/plan"
)

// Validator runs the constraint checks over a finished layout. It is
// stateless; every call re-evaluates from scratch.
type Validator struct {
	cfg config.Config
}

// NewValidator returns a validator using the given constraint config.
func NewValidator(cfg config.Config) *Validator {
	return &Validator{cfg: cfg}
}

// Validate runs every check and returns the combined findings. A
// layout passes iff no finding carries error severity; warnings and
// info findings never block.
func (v *Validator) Validate(layout *Layout, fixed []plan.FixedElement) []plan.Violation {
	var out []plan.Violation
	out = append(out, v.checkSpacing(layout)...)
	out = append(out, v.checkZoneAdjacency(layout)...)
	out = append(out, v.checkCollisions(layout)...)
	out = append(out, v.checkWallClearance(layout)...)
	out = append(out, v.checkInfrastructure(layout, fixed)...)
	out = append(out, v.checkRangeSpacing(layout)...)
	out = append(out, v.checkAisleWidth(layout)...)
	return out
}

// checkSpacing enforces the hard minimum gap between items in the same
// zone, and reports (info only) gaps that clear the minimum but fall
// short of a comfortable working aisle.
func (v *Validator) checkSpacing(layout *Layout) []plan.Violation {
	var out []plan.Violation
	minGap := v.cfg.Constraints.EquipmentSpacing
	comfort := v.cfg.Constraints.ComfortAisle

	for _, zt := range plan.WorkflowOrder {
		items := layout.ItemsInZone(zt)
		for i := range items {
			for j := i + 1; j < len(items); j++ {
				d := geom.Distance(items[i].Rect, items[j].Rect)
				at := midpoint(items[i], items[j])
				switch {
				case d < minGap:
					out = append(out, plan.Violation{
						Type:     plan.ViolationEquipmentSpacing,
						Message:  fmt.Sprintf("%s and %s are %.2fm apart, minimum is %.2fm", items[i].Placement.ID, items[j].Placement.ID, d, minGap),
						At:       at,
						Severity: plan.SeverityError,
					})
				case d < comfort:
					out = append(out, plan.Violation{
						Type:     plan.ViolationEquipmentSpacing,
						Message:  fmt.Sprintf("%s and %s are %.2fm apart, below the %.2fm comfortable aisle", items[i].Placement.ID, items[j].Placement.ID, d, comfort),
						At:       at,
						Severity: plan.SeverityInfo,
					})
				}
			}
		}
	}
	return out
}

// checkZoneAdjacency verifies that each zone borders its required
// neighbors within the adjacency tolerance.
func (v *Validator) checkZoneAdjacency(layout *Layout) []plan.Violation {
	var out []plan.Violation
	maxGap := v.cfg.Constraints.ZoneAdjacency

	for _, zt := range plan.WorkflowOrder {
		zone, ok := layout.Zone(zt)
		if !ok {
			continue
		}
		for _, reqType := range plan.AdjacencyRules[zt] {
			req, ok := layout.Zone(reqType)
			if !ok {
				continue
			}
			d := geom.Distance(zone.Polygon, req.Polygon)
			if d > maxGap {
				out = append(out, plan.Violation{
					Type:     plan.ViolationZoneAdjacency,
					Message:  fmt.Sprintf("%s zone is %.2fm from %s zone, should border it (max %.2fm)", zt, d, reqType, maxGap),
					At:       zone.Polygon.Centroid(),
					Severity: plan.SeverityWarning,
				})
			}
		}
	}
	return out
}

// checkCollisions catches strict overlaps between any two placed
// rectangles, across zone boundaries included.
func (v *Validator) checkCollisions(layout *Layout) []plan.Violation {
	var out []plan.Violation
	for i := range layout.Items {
		for j := i + 1; j < len(layout.Items); j++ {
			if geom.Overlaps(layout.Items[i].Rect, layout.Items[j].Rect) {
				out = append(out, plan.Violation{
					Type:     plan.ViolationCollision,
					Message:  fmt.Sprintf("%s overlaps %s", layout.Items[i].Placement.ID, layout.Items[j].Placement.ID),
					At:       midpoint(layout.Items[i], layout.Items[j]),
					Severity: plan.SeverityError,
				})
			}
		}
	}
	return out
}

// checkWallClearance flags items that hug their zone boundary without
// touching it. Flush against the wall is allowed and expected for
// wall-required equipment; a sliver gap is not.
func (v *Validator) checkWallClearance(layout *Layout) []plan.Violation {
	var out []plan.Violation
	clearance := v.cfg.Constraints.WallClearance

	for _, it := range layout.Items {
		zone, ok := layout.Zone(it.Placement.Zone)
		if !ok {
			continue
		}
		d := geom.BoundaryDistance(it.Rect, zone.Polygon)
		if d > 0 && d < clearance {
			out = append(out, plan.Violation{
				Type:     plan.ViolationWallClearance,
				Message:  fmt.Sprintf("%s sits %.2fm from the zone boundary, needs %.2fm or flush contact", it.Placement.ID, d, clearance),
				At:       it.Rect.Centroid(),
				Severity: plan.SeverityWarning,
			})
		}
	}
	return out
}

// checkInfrastructure covers two cases. With fixed elements supplied,
// it verifies vents sit near the cooking zone and water/drain
// connections near the washing zone. Without any, it notes (info) each
// placed item whose utility requirements could not be checked.
func (v *Validator) checkInfrastructure(layout *Layout, fixed []plan.FixedElement) []plan.Violation {
	var out []plan.Violation

	if len(fixed) == 0 {
		for _, it := range layout.Items {
			var needs []string
			if it.Spec.RequiresVentilation {
				needs = append(needs, "ventilation")
			}
			if it.Spec.RequiresWater {
				needs = append(needs, "water")
			}
			if it.Spec.RequiresDrain {
				needs = append(needs, "drain")
			}
			for _, need := range needs {
				out = append(out, plan.Violation{
					Type:     plan.ViolationInfrastructure,
					Message:  fmt.Sprintf("%s requires %s but no infrastructure was supplied to check against", it.Placement.ID, need),
					At:       it.Rect.Centroid(),
					Severity: plan.SeverityInfo,
				})
			}
		}
		return out
	}

	for _, f := range fixed {
		var zt plan.ZoneType
		var limit float64
		switch f.Kind {
		case plan.FixedVent:
			zt, limit = plan.ZoneCooking, v.cfg.Constraints.VentProximity
		case plan.FixedWater, plan.FixedDrain:
			zt, limit = plan.ZoneWashing, v.cfg.Constraints.WaterProximity
		default:
			continue
		}
		zone, ok := layout.Zone(zt)
		if !ok {
			continue
		}
		c := zone.Polygon.Centroid()
		d := math.Hypot(f.X-c.X, f.Y-c.Y)
		if d > limit {
			out = append(out, plan.Violation{
				Type:     plan.ViolationInfrastructure,
				Message:  fmt.Sprintf("%s connection is %.2fm from the %s zone, limit is %.2fm", f.Kind, d, zt, limit),
				At:       geom.Point{X: f.X, Y: f.Y},
				Severity: plan.SeverityWarning,
			})
		}
	}
	return out
}

// checkRangeSpacing applies the wider hot-equipment gap to cooking-zone
// pairs whose own side clearance calls for it.
func (v *Validator) checkRangeSpacing(layout *Layout) []plan.Violation {
	var out []plan.Violation
	spacing := v.cfg.Constraints.RangeSpacing

	items := layout.ItemsInZone(plan.ZoneCooking)
	for i := range items {
		if items[i].Spec.ClearanceSides < spacing {
			continue
		}
		for j := i + 1; j < len(items); j++ {
			if items[j].Spec.ClearanceSides < spacing {
				continue
			}
			d := geom.Distance(items[i].Rect, items[j].Rect)
			if d < spacing {
				out = append(out, plan.Violation{
					Type:     plan.ViolationRangeSpacing,
					Message:  fmt.Sprintf("%s and %s are %.2fm apart, hot equipment needs %.2fm", items[i].Placement.ID, items[j].Placement.ID, d, spacing),
					At:       midpoint(items[i], items[j]),
					Severity: plan.SeverityWarning,
				})
			}
		}
	}
	return out
}

// checkAisleWidth measures the narrowest gap between the placements of
// each adjacency-required zone pair against the two-way traffic aisle.
// One finding per zone pair keeps a cramped boundary from flooding the
// report.
func (v *Validator) checkAisleWidth(layout *Layout) []plan.Violation {
	var out []plan.Violation
	aisle := v.cfg.Constraints.DoubleAisle

	seen := make(map[[2]plan.ZoneType]bool)
	for _, zt := range plan.WorkflowOrder {
		for _, reqType := range plan.AdjacencyRules[zt] {
			key := [2]plan.ZoneType{zt, reqType}
			if zt > reqType {
				key = [2]plan.ZoneType{reqType, zt}
			}
			if seen[key] {
				continue
			}
			seen[key] = true

			a := layout.ItemsInZone(key[0])
			b := layout.ItemsInZone(key[1])
			if len(a) == 0 || len(b) == 0 {
				continue
			}
			narrowest := math.Inf(1)
			var atA, atB PlacedItem
			for _, ia := range a {
				for _, ib := range b {
					if d := geom.Distance(ia.Rect, ib.Rect); d < narrowest {
						narrowest = d
						atA, atB = ia, ib
					}
				}
			}
			if narrowest < aisle {
				out = append(out, plan.Violation{
					Type:     plan.ViolationAisleWidth,
					Message:  fmt.Sprintf("aisle between %s and %s zones narrows to %.2fm, two-way traffic needs %.2fm", key[0], key[1], narrowest, aisle),
					At:       midpoint(atA, atB),
					Severity: plan.SeverityWarning,
				})
			}
		}
	}
	return out
}

// RatioFindings reports (info level) zones whose share of the kitchen
// area falls outside the recommended band. Advisory only; it is not
// part of the pass/fail verdict.
func RatioFindings(kitchen plan.Kitchen, zones []plan.Zone) []plan.Violation {
	total := kitchen.Area()
	if total <= 0 {
		return nil
	}
	var out []plan.Violation
	for _, z := range zones {
		bounds, ok := plan.RecommendedRatios[z.Type]
		if !ok {
			continue
		}
		share := z.Area / total
		if share < bounds.Min || share > bounds.Max {
			out = append(out, plan.Violation{
				Type:     plan.ViolationZoneRatio,
				Message:  fmt.Sprintf("%s zone takes %.0f%% of the kitchen, recommended %.0f-%.0f%%", z.Type, share*100, bounds.Min*100, bounds.Max*100),
				At:       z.Polygon.Centroid(),
				Severity: plan.SeverityInfo,
			})
		}
	}
	return out
}

func midpoint(a, b PlacedItem) geom.Point {
	ca, cb := a.Rect.Centroid(), b.Rect.Centroid()
	return geom.Point{X: (ca.X + cb.X) / 2, Y: (ca.Y + cb.Y) / 2}
}
