package engine

import (
	"math"

	"github.com/galleykit/galley/pkg/config"
	"github.com/galleykit/galley/pkg/geom"
	"github.com/galleykit/galley/pkg/plan"
)

// Scorer rates a finished layout on workflow efficiency, space
// utilization, safety compliance, and accessibility, then combines
// them into a weighted overall score on a 0-100 scale.
type Scorer struct {
	cfg config.Config
}

// NewScorer returns a scorer using the given weights and bands.
func NewScorer(cfg config.Config) *Scorer {
	return &Scorer{cfg: cfg}
}

// Score computes the full breakdown. Sub-scores are rounded to three
// decimals and the overall to one, so serialized results compare
// exactly across runs.
func (s *Scorer) Score(kitchen plan.Kitchen, layout *Layout, violations []plan.Violation) plan.ScoreBreakdown {
	workflow := s.workflowEfficiency(kitchen, layout)
	space := s.spaceUtilization(layout)
	safety := s.safetyCompliance(violations)
	access := s.accessibility(layout)

	w := s.cfg.Weights
	overall := (workflow*w.Workflow + space*w.Space + safety*w.Safety + access*w.Accessibility) * 100

	return plan.ScoreBreakdown{
		Workflow:      round3(workflow),
		Space:         round3(space),
		Safety:        round3(safety),
		Accessibility: round3(access),
		Overall:       round1(overall),
	}
}

// workflowEfficiency sums the centroid-to-centroid walk along the
// workflow sequence and normalizes it against the kitchen's own scale:
// an ideal walk of about 0.75x(width+height) scores 1, a walk the
// length of the full perimeter scores 0.
func (s *Scorer) workflowEfficiency(kitchen plan.Kitchen, layout *Layout) float64 {
	var centers []geom.Point
	for _, zt := range plan.WorkflowOrder {
		if z, ok := layout.Zone(zt); ok {
			centers = append(centers, z.Polygon.Centroid())
		}
	}
	if len(centers) < 2 {
		return 0.5
	}

	actual := 0.0
	for i := 1; i < len(centers); i++ {
		actual += math.Hypot(centers[i].X-centers[i-1].X, centers[i].Y-centers[i-1].Y)
	}

	b := kitchen.Vertices.BoundingBox()
	span := b.Width() + b.Height()
	optimal := 0.75 * span
	worst := 2 * span
	if worst <= optimal {
		return 0.5
	}
	return clamp01((worst - actual) / (worst - optimal))
}

// spaceUtilization compares the total equipment footprint to the total
// zone area. Full marks inside the ideal band; linear falloff outside.
func (s *Scorer) spaceUtilization(layout *Layout) float64 {
	totalZone := 0.0
	for _, z := range layout.Zones {
		totalZone += z.Area
	}
	if totalZone <= 0 {
		return 0
	}

	footprint := 0.0
	for _, it := range layout.Items {
		footprint += it.W * it.H
	}
	ratio := footprint / totalZone

	low, high := s.cfg.Bands.SpaceLow, s.cfg.Bands.SpaceHigh
	switch {
	case ratio < low:
		return ratio / low
	case ratio <= high:
		return 1
	default:
		return max(0, 1-(ratio-high)/(1-high))
	}
}

// safetyCompliance deducts 0.2 per error and 0.05 per warning, floored
// at zero. Info findings carry no penalty.
func (s *Scorer) safetyCompliance(violations []plan.Violation) float64 {
	errCount, warnCount := 0, 0
	for _, v := range violations {
		switch v.Severity {
		case plan.SeverityError:
			errCount++
		case plan.SeverityWarning:
			warnCount++
		}
	}
	return max(0, 1-(0.2*float64(errCount)+0.05*float64(warnCount)))
}

// accessibility averages each item's nearest-neighbor gap within its
// zone (zones need at least two items to contribute). The sweet spot
// runs from the hard spacing minimum to a generous reach distance;
// sparse layouts above it decay slowly and never below 0.5. Layouts
// too small to measure default to 0.8.
func (s *Scorer) accessibility(layout *Layout) float64 {
	var gaps []float64
	for _, zt := range plan.WorkflowOrder {
		items := layout.ItemsInZone(zt)
		if len(items) < 2 {
			continue
		}
		for i := range items {
			nearest := math.Inf(1)
			for j := range items {
				if i == j {
					continue
				}
				nearest = min(nearest, geom.Distance(items[i].Rect, items[j].Rect))
			}
			gaps = append(gaps, nearest)
		}
	}
	if len(gaps) == 0 {
		return 0.8
	}

	avg := 0.0
	for _, g := range gaps {
		avg += g
	}
	avg /= float64(len(gaps))

	low := s.cfg.Constraints.EquipmentSpacing
	high := s.cfg.Bands.AccessHigh
	switch {
	case avg < low:
		return avg / low
	case avg <= high:
		return 1
	default:
		return max(0.5, 1-(avg-high)/2)
	}
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
