package pipeline

import (
	"encoding/json"
	"math"

	"github.com/galleykit/galley/pkg/cache"
	"github.com/galleykit/galley/pkg/catalog"
	"github.com/galleykit/galley/pkg/geom"
	"github.com/galleykit/galley/pkg/plan"
)

// Problem is the fully resolved simulation input: everything the
// optimizer needs, with business defaults already applied.
type Problem struct {
	Kitchen plan.Kitchen              `json:"kitchen"`
	Specs   []plan.EquipmentSpec      `json:"specs"`
	Ratios  map[plan.ZoneType]float64 `json:"ratios"`
	Fixed   []plan.FixedElement       `json:"fixed,omitempty"`
}

// Hash returns the content hash of the problem, used as the base of the
// plan cache key. Ratios are serialized in workflow order so map
// iteration cannot perturb the hash.
func (p Problem) Hash() string {
	type stable struct {
		Kitchen plan.Kitchen        `json:"kitchen"`
		Specs   []string            `json:"specs"`
		Ratios  []float64           `json:"ratios"`
		Fixed   []plan.FixedElement `json:"fixed,omitempty"`
	}
	s := stable{Kitchen: p.Kitchen, Fixed: p.Fixed}
	for _, spec := range p.Specs {
		s.Specs = append(s.Specs, spec.ID)
	}
	for _, t := range plan.WorkflowOrder {
		s.Ratios = append(s.Ratios, p.Ratios[t])
	}
	data, _ := json.Marshal(s)
	return cache.Hash(data)
}

// Resolve builds the simulation problem from request parameters:
// kitchen geometry (explicit vertices, width/depth, or a seats-derived
// estimate), the equipment list, and the zone ratio targets.
func Resolve(opts Options) (Problem, error) {
	if err := opts.ValidateForResolve(); err != nil {
		return Problem{}, err
	}

	business := plan.Business(opts.Business)
	kitchen, err := buildKitchen(opts, business)
	if err != nil {
		return Problem{}, err
	}

	ratios := opts.Ratios
	if len(ratios) == 0 {
		ratios = catalog.ZoneRatios(business)
	}

	return Problem{
		Kitchen: kitchen,
		Specs:   catalog.Resolve(opts.Equipment, business),
		Ratios:  ratios,
		Fixed:   opts.Fixed,
	}, nil
}

func buildKitchen(opts Options, business plan.Business) (plan.Kitchen, error) {
	k := plan.Kitchen{Business: business, Seats: opts.Seats}

	if len(opts.Vertices) > 0 {
		pts := make([]geom.Point, 0, len(opts.Vertices))
		for _, v := range opts.Vertices {
			pts = append(pts, geom.Point{X: v[0], Y: v[1]})
		}
		k.Vertices = geom.NewPolygon(pts)
		k.Shape = plan.Shape(opts.Shape)
		if k.Shape == "" {
			k.Shape = plan.ShapeIrregular
		}
		return k, nil
	}

	width, depth := opts.Width, opts.Depth
	if width <= 0 {
		// auto-size from seat count
		area := math.Max(float64(opts.Seats)*AreaPerSeat, MinKitchenArea)
		depth = math.Sqrt(area / WidthDepthRatio)
		width = WidthDepthRatio * depth
	}

	k.Shape = plan.Shape(opts.Shape)
	if k.Shape == "" {
		k.Shape = plan.ShapeRectangle
	}
	k.Vertices = buildFootprint(k.Shape, width, depth)
	return k, nil
}

// buildFootprint generates a canonical polygon for a shape tag. L cuts
// the top-right quadrant out of the rectangle; U notches the top edge.
func buildFootprint(shape plan.Shape, w, d float64) geom.Polygon {
	switch shape {
	case plan.ShapeL:
		cutW, cutD := w*0.5, d*0.5
		return geom.NewPolygon([]geom.Point{
			{X: 0, Y: 0},
			{X: w, Y: 0},
			{X: w, Y: d - cutD},
			{X: w - cutW, Y: d - cutD},
			{X: w - cutW, Y: d},
			{X: 0, Y: d},
		})
	case plan.ShapeU:
		notchW, notchD := w/3, d*0.5
		left := (w - notchW) / 2
		return geom.NewPolygon([]geom.Point{
			{X: 0, Y: 0},
			{X: w, Y: 0},
			{X: w, Y: d},
			{X: left + notchW, Y: d},
			{X: left + notchW, Y: d - notchD},
			{X: left, Y: d - notchD},
			{X: left, Y: d},
			{X: 0, Y: d},
		})
	default:
		return geom.Rect(0, 0, w, d)
	}
}
