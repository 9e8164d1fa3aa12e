// Package plansvg draws kitchen layouts as SVG floor plans.
//
// The drawing is a top-down view in plan coordinates (meters, y up),
// flipped to SVG screen coordinates. Zones are filled color patches
// under the kitchen outline, equipment boxes sit on top, and fixed
// infrastructure is marked with small squares.
//
//	svg := plansvg.Render(kitchen, result, plansvg.WithGrid(), plansvg.WithLabels())
package plansvg

import (
	"bytes"
	"fmt"
	"math"

	"github.com/galleykit/galley/pkg/catalog"
	"github.com/galleykit/galley/pkg/geom"
	"github.com/galleykit/galley/pkg/plan"
)

const (
	defaultScale = 60.0 // pixels per meter
	padding      = 24.0
)

// zoneFills are the per-zone patch colors.
var zoneFills = map[plan.ZoneType]string{
	plan.ZoneStorage:     "#aed6f1",
	plan.ZonePreparation: "#a9dfbf",
	plan.ZoneCooking:     "#f5b7b1",
	plan.ZoneWashing:     "#d7bde2",
}

var fixedFills = map[plan.FixedKind]string{
	plan.FixedEntry: "#f9e79f",
	plan.FixedWater: "#85c1e9",
	plan.FixedDrain: "#7f8c8d",
	plan.FixedGas:   "#e59866",
	plan.FixedVent:  "#bb8fce",
}

// Option configures floor-plan rendering via [Render].
type Option func(*renderer)

type renderer struct {
	scale  float64
	grid   bool
	labels bool
	fixed  []plan.FixedElement
}

// WithScale sets the pixels-per-meter scale. The default is 60.
func WithScale(s float64) Option { return func(r *renderer) { r.scale = s } }

// WithGrid draws 1 m grid lines over the floor.
func WithGrid() Option { return func(r *renderer) { r.grid = true } }

// WithLabels draws equipment ids and zone names.
func WithLabels() Option { return func(r *renderer) { r.labels = true } }

// WithFixed includes fixed infrastructure markers in the drawing.
func WithFixed(fixed []plan.FixedElement) Option {
	return func(r *renderer) { r.fixed = fixed }
}

// Render draws the layout as an SVG document. The kitchen outline,
// zone patches, and placed equipment come from res; fixed elements are
// optional. Render never fails: an empty kitchen yields an empty frame.
func Render(k plan.Kitchen, res plan.Result, opts ...Option) []byte {
	r := renderer{scale: defaultScale}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = defaultScale
	}

	b := k.Vertices.BoundingBox()
	w := b.Width()*r.scale + 2*padding
	h := b.Height()*r.scale + 2*padding

	// plan coordinates have y up, SVG has y down
	px := func(x float64) float64 { return padding + (x-b.MinX)*r.scale }
	py := func(y float64) float64 { return padding + (b.MaxY-y)*r.scale }

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="#fdfefe"/>`+"\n", w, h)

	r.renderOutline(&buf, k.Vertices, px, py)
	for _, z := range res.Zones {
		r.renderZone(&buf, z, px, py)
	}
	if r.grid {
		r.renderGrid(&buf, b, px, py)
	}
	for _, f := range r.fixed {
		r.renderFixed(&buf, f, px, py)
	}
	for _, p := range res.Placement.Placements {
		r.renderItem(&buf, p, px, py)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

type project func(float64) float64

func (r *renderer) renderOutline(buf *bytes.Buffer, poly geom.Polygon, px, py project) {
	if poly.IsEmpty() {
		return
	}
	fmt.Fprintf(buf, `  <polygon points="%s" fill="white" stroke="#2c3e50" stroke-width="3"/>`+"\n", points(poly, px, py))
}

func (r *renderer) renderZone(buf *bytes.Buffer, z plan.Zone, px, py project) {
	fill, ok := zoneFills[z.Type]
	if !ok {
		fill = "#eaecee"
	}
	fmt.Fprintf(buf, `  <polygon points="%s" fill="%s" fill-opacity="0.55" stroke="#839192" stroke-width="1" stroke-dasharray="6,4"/>`+"\n",
		points(z.Polygon, px, py), fill)

	if r.labels && !z.Polygon.IsEmpty() {
		c := z.Polygon.Centroid()
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="13" font-family="sans-serif" fill="#566573">%s (%.1f m&#178;)</text>`+"\n",
			px(c.X), py(c.Y), z.Type, z.Area)
	}
}

func (r *renderer) renderGrid(buf *bytes.Buffer, b geom.Bounds, px, py project) {
	for x := math.Ceil(b.MinX); x <= b.MaxX; x++ {
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#d5dbdb" stroke-width="0.5"/>`+"\n",
			px(x), py(b.MinY), px(x), py(b.MaxY))
	}
	for y := math.Ceil(b.MinY); y <= b.MaxY; y++ {
		fmt.Fprintf(buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#d5dbdb" stroke-width="0.5"/>`+"\n",
			px(b.MinX), py(y), px(b.MaxX), py(y))
	}
}

func (r *renderer) renderFixed(buf *bytes.Buffer, f plan.FixedElement, px, py project) {
	foot := f.Footprint().BoundingBox()
	fill, ok := fixedFills[f.Kind]
	if !ok {
		fill = "#b2babb"
	}
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#34495e" stroke-width="1"/>`+"\n",
		px(foot.MinX), py(foot.MaxY), foot.Width()*r.scale, foot.Height()*r.scale, fill)
	if r.labels {
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="9" font-family="sans-serif" fill="#34495e">%s</text>`+"\n",
			px(f.X), py(foot.MaxY)-4, f.Kind)
	}
}

func (r *renderer) renderItem(buf *bytes.Buffer, p plan.Placement, px, py project) {
	spec, ok := catalog.GetByPlacementID(p.ID)
	if !ok {
		return
	}
	w, d := spec.Width, spec.Depth
	if p.Rotation == 90 {
		w, d = d, w
	}

	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="#fef9e7" stroke="#1c2833" stroke-width="1.5" rx="2"/>`+"\n",
		px(p.X), py(p.Y+d), w*r.scale, d*r.scale)

	if r.labels {
		cx := px(p.X + w/2)
		cy := py(p.Y + d/2)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-size="10" font-family="sans-serif" fill="#1c2833">%s</text>`+"\n",
			cx, cy, p.ID)
	}
}

func points(poly geom.Polygon, px, py project) string {
	var buf bytes.Buffer
	for i, pt := range poly {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%.1f,%.1f", px(pt.X), py(pt.Y))
	}
	return buf.String()
}
