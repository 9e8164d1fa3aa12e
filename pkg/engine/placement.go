package engine

import (
	"cmp"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"

	"github.com/galleykit/galley/pkg/catalog"
	"github.com/galleykit/galley/pkg/config"
	"github.com/galleykit/galley/pkg/geom"
	"github.com/galleykit/galley/pkg/plan"
)

// flushTol is the largest gap still treated as flush contact when
// judging equipment density.
const flushTol = 0.05

// PlacedItem is one placed equipment instance together with its
// resolved footprint. W and H are the footprint dimensions after
// rotation.
type PlacedItem struct {
	Placement plan.Placement
	Spec      plan.EquipmentSpec
	Rect      geom.Polygon
	W, H      float64
}

// Layout is the outcome of a single placement pass: the zones (with
// their equipment registries filled in), every placed item, and the
// equipment that could not be placed.
type Layout struct {
	Zones    []plan.Zone
	Items    []PlacedItem
	Unplaced []string
	Warnings []string
}

// Zone returns the zone with the given type, if present.
func (l *Layout) Zone(t plan.ZoneType) (plan.Zone, bool) {
	for _, z := range l.Zones {
		if z.Type == t {
			return z, true
		}
	}
	return plan.Zone{}, false
}

// ItemsInZone returns the placed items assigned to a zone.
func (l *Layout) ItemsInZone(t plan.ZoneType) []PlacedItem {
	var out []PlacedItem
	for _, it := range l.Items {
		if it.Placement.Zone == t {
			out = append(out, it)
		}
	}
	return out
}

// Result projects the layout into the serializable placement form.
func (l *Layout) Result() plan.PlacementResult {
	res := plan.PlacementResult{
		Placements: make([]plan.Placement, 0, len(l.Items)),
		Unplaced:   l.Unplaced,
		Warnings:   l.Warnings,
	}
	for _, it := range l.Items {
		res.Placements = append(res.Placements, it.Placement)
	}
	return res
}

// Placer runs the greedy grid placement search. A Placer is seeded and
// single-use per layout; the optimizer creates a fresh one per
// iteration so runs stay reproducible.
type Placer struct {
	cfg config.Config
	rng *rand.Rand
}

// NewPlacer returns a placer with its own deterministic random stream.
func NewPlacer(cfg config.Config, seed uint64) *Placer {
	return &Placer{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed^0xdeadbeef)),
	}
}

// Place assigns each equipment spec a position inside its target zone.
// Zones are processed in workflow order; within a zone, items go in
// ascending workflow order and big footprints first, so bulky pieces
// claim wall space before small ones fragment it. An item with no
// collision-free candidate is retried rotated 90 degrees, then recorded
// unplaced with a warning.
func (p *Placer) Place(zones []plan.Zone, specs []plan.EquipmentSpec, fixed []plan.FixedElement) *Layout {
	layout := &Layout{Zones: make([]plan.Zone, len(zones))}
	copy(layout.Zones, zones)
	for i := range layout.Zones {
		layout.Zones[i].EquipmentIDs = nil
	}

	obstacles := make([]geom.Polygon, 0, len(fixed))
	for _, f := range fixed {
		obstacles = append(obstacles, f.Footprint())
	}

	byZone := make(map[plan.ZoneType][]plan.EquipmentSpec)
	for _, s := range specs {
		zt := plan.CategoryZone[s.Category]
		byZone[zt] = append(byZone[zt], s)
	}

	diag := layoutDiagonal(zones)
	seq := 0
	for _, zt := range plan.WorkflowOrder {
		group := byZone[zt]
		if len(group) == 0 {
			continue
		}
		zone, ok := layout.Zone(zt)
		if !ok {
			for _, s := range group {
				layout.Warnings = append(layout.Warnings, fmt.Sprintf("%s: target zone %s not present", s.Name, zt))
				layout.Unplaced = append(layout.Unplaced, s.ID)
				seq++
			}
			continue
		}

		slices.SortStableFunc(group, func(a, b plan.EquipmentSpec) int {
			if c := cmp.Compare(a.WorkflowOrder, b.WorkflowOrder); c != 0 {
				return c
			}
			return cmp.Compare(b.Footprint(), a.Footprint())
		})

		next := nextZoneCentroid(layout, zt)
		minOrder, maxOrder := orderRange(group)

		for _, spec := range group {
			it, ok := p.placeOne(spec, zone, layout, obstacles, next, minOrder, maxOrder, diag, seq)
			seq++
			if !ok {
				layout.Warnings = append(layout.Warnings, fmt.Sprintf("%s: no placeable position in %s zone", spec.Name, zt))
				layout.Unplaced = append(layout.Unplaced, spec.ID)
				continue
			}
			layout.Items = append(layout.Items, it)
			for i := range layout.Zones {
				if layout.Zones[i].Type == zt {
					layout.Zones[i].EquipmentIDs = append(layout.Zones[i].EquipmentIDs, it.Placement.ID)
				}
			}
		}
	}
	return layout
}

func (p *Placer) placeOne(spec plan.EquipmentSpec, zone plan.Zone, layout *Layout, obstacles []geom.Polygon, next *geom.Point, minOrder, maxOrder int, diag float64, seq int) (PlacedItem, bool) {
	margin := max(spec.ClearanceSides, p.cfg.Constraints.EquipmentSpacing)

	rotation := 0
	w, h := spec.Width, spec.Depth
	candidates := p.gridCandidates(zone, w, h, margin, layout, obstacles)
	if len(candidates) == 0 {
		w, h = spec.Depth, spec.Width
		rotation = 90
		candidates = p.gridCandidates(zone, w, h, margin, layout, obstacles)
	}
	if len(candidates) == 0 {
		return PlacedItem{}, false
	}

	orderBias := 0.0
	if maxOrder > minOrder {
		orderBias = 2*float64(spec.WorkflowOrder-minOrder)/float64(maxOrder-minOrder) - 1
	}

	zoneItems := layout.ItemsInZone(zone.Type)
	zb := zone.Polygon.BoundingBox()

	best := candidates[0]
	bestScore := math.Inf(-1)
	for _, c := range candidates {
		s := p.scoreCandidate(c.X, c.Y, w, h, spec, zb, zone.Type, zoneItems, layout.Items, next, orderBias, diag)
		if s > bestScore {
			bestScore = s
			best = c
		}
	}

	return PlacedItem{
		Placement: plan.Placement{
			ID:       fmt.Sprintf("%s_%d", spec.ID, seq),
			Zone:     zone.Type,
			X:        best.X,
			Y:        best.Y,
			Rotation: rotation,
		},
		Spec: spec,
		Rect: geom.Rect(best.X, best.Y, w, h),
		W:    w,
		H:    h,
	}, true
}

// gridCandidates samples the zone interior, inset by the wall
// clearance, on a regular grid and keeps the positions where the item
// fits inside the zone and its clearance-expanded footprint clears
// every already-placed rectangle and fixed obstacle.
func (p *Placer) gridCandidates(zone plan.Zone, w, h, margin float64, layout *Layout, obstacles []geom.Polygon) []geom.Point {
	b := zone.Polygon.BoundingBox()
	inset := p.cfg.Constraints.WallClearance
	step := p.cfg.Constraints.GridStep

	var out []geom.Point
	for y := b.MinY + inset; y <= b.MaxY-inset-h+1e-9; y += step {
		for x := b.MinX + inset; x <= b.MaxX-inset-w+1e-9; x += step {
			rect := geom.Rect(x, y, w, h)
			if !geom.Contains(zone.Polygon, rect) {
				continue
			}
			expanded := geom.Rect(x-margin, y-margin, w+2*margin, h+2*margin)
			if p.blocked(expanded, layout, obstacles) {
				continue
			}
			out = append(out, geom.Point{X: x, Y: y})
		}
	}
	return out
}

func (p *Placer) blocked(expanded geom.Polygon, layout *Layout, obstacles []geom.Polygon) bool {
	for _, it := range layout.Items {
		if geom.Overlaps(expanded, it.Rect) {
			return true
		}
	}
	for _, ob := range obstacles {
		if geom.Overlaps(expanded, ob) {
			return true
		}
	}
	return false
}

// scoreCandidate ranks one candidate position. Higher is better. The
// terms: wall proximity (heavier for wall-required items), edge
// alignment with placed neighbors, named-pair affinity, a workflow pull
// toward the next zone scaled by the item's order, hot-line/wash-line
// row alignment, density with a dead-zone penalty for gaps that are
// neither flush nor a usable aisle, and a random tie-break.
func (p *Placer) scoreCandidate(x, y, w, h float64, spec plan.EquipmentSpec, zb geom.Bounds, zt plan.ZoneType, zoneItems, allItems []PlacedItem, next *geom.Point, orderBias, diag float64) float64 {
	hw := p.cfg.Heuristic
	score := 0.0

	wallDist := min(x-zb.MinX, zb.MaxX-(x+w), y-zb.MinY, zb.MaxY-(y+h))
	weight := hw.Wall
	if spec.RequiresWall {
		weight = hw.WallRequired
	}
	score -= wallDist * weight

	for _, it := range zoneItems {
		if math.Abs(x-it.Placement.X) <= hw.AlignTolerance ||
			math.Abs((x+w)-(it.Placement.X+it.W)) <= hw.AlignTolerance ||
			math.Abs(y-it.Placement.Y) <= hw.AlignTolerance ||
			math.Abs((y+h)-(it.Placement.Y+it.H)) <= hw.AlignTolerance {
			score += hw.Alignment
			break
		}
	}

	rect := geom.Rect(x, y, w, h)
	for _, it := range allItems {
		pts := catalog.Affinity(spec.ID, it.Spec.ID)
		if pts <= 0 {
			continue
		}
		d := geom.Distance(rect, it.Rect)
		switch {
		case d <= hw.AffinityNear:
			score += pts
		case d <= hw.AffinityFar:
			score += pts / 2
		}
	}

	if next != nil && diag > 0 {
		d := math.Hypot(x+w/2-next.X, y+h/2-next.Y)
		score += hw.Pull * orderBias * (1 - min(d/diag, 1))
	}

	if zt == plan.ZoneCooking || zt == plan.ZoneWashing {
		for _, it := range zoneItems {
			if math.Abs(y-it.Placement.Y) <= hw.LineTolerance ||
				math.Abs(x-it.Placement.X) <= hw.LineTolerance {
				score += hw.Line
				break
			}
		}
	}

	if len(zoneItems) > 0 {
		gap := math.Inf(1)
		for _, it := range zoneItems {
			gap = min(gap, geom.Distance(rect, it.Rect))
		}
		comfort := p.cfg.Constraints.ComfortAisle
		switch {
		case gap <= flushTol:
			score += hw.Density
		case gap < comfort:
			score -= hw.Density
		default:
			score += hw.Density * max(0, 1-(gap-comfort)/comfort)
		}
	}

	score += p.rng.Float64() * hw.Jitter
	return score
}

// nextZoneCentroid finds the centroid of the zone that follows zt in
// the workflow sequence, if that zone exists in the layout.
func nextZoneCentroid(layout *Layout, zt plan.ZoneType) *geom.Point {
	idx := slices.Index(plan.WorkflowOrder, zt)
	if idx < 0 || idx+1 >= len(plan.WorkflowOrder) {
		return nil
	}
	z, ok := layout.Zone(plan.WorkflowOrder[idx+1])
	if !ok {
		return nil
	}
	c := z.Polygon.Centroid()
	return &c
}

func orderRange(group []plan.EquipmentSpec) (int, int) {
	lo, hi := group[0].WorkflowOrder, group[0].WorkflowOrder
	for _, s := range group[1:] {
		lo = min(lo, s.WorkflowOrder)
		hi = max(hi, s.WorkflowOrder)
	}
	return lo, hi
}

// layoutDiagonal is the diagonal of the union bounding box of all
// zones, used to normalize workflow pull distances.
func layoutDiagonal(zones []plan.Zone) float64 {
	if len(zones) == 0 {
		return 0
	}
	b := zones[0].Polygon.BoundingBox()
	for _, z := range zones[1:] {
		zb := z.Polygon.BoundingBox()
		b.MinX = min(b.MinX, zb.MinX)
		b.MinY = min(b.MinY, zb.MinY)
		b.MaxX = max(b.MaxX, zb.MaxX)
		b.MaxY = max(b.MaxY, zb.MaxY)
	}
	return math.Hypot(b.Width(), b.Height())
}
