package geom

import "math"

// Point is a 2D point in meters.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns the horizontal extent of the bounds.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent of the bounds.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Center returns the midpoint of the bounds.
func (b Bounds) Center() Point {
	return Point{X: (b.MinX + b.MaxX) / 2, Y: (b.MinY + b.MaxY) / 2}
}

// Polygon is a simple polygon given as an ordered vertex ring.
// The closing vertex is implicit; NewPolygon strips an explicit one.
type Polygon []Point

// NewPolygon constructs a polygon from vertices, removing a trailing
// duplicate of the first vertex if present.
func NewPolygon(vertices []Point) Polygon {
	n := len(vertices)
	if n > 1 && vertices[0] == vertices[n-1] {
		n--
	}
	p := make(Polygon, n)
	copy(p, vertices[:n])
	return p
}

// Rect constructs an axis-aligned rectangle from its lower-left corner
// and dimensions, with counter-clockwise winding.
func Rect(x, y, width, height float64) Polygon {
	return Polygon{
		{X: x, Y: y},
		{X: x + width, Y: y},
		{X: x + width, Y: y + height},
		{X: x, Y: y + height},
	}
}

// IsEmpty reports whether the polygon is degenerate (fewer than 3
// vertices or effectively zero area).
func (p Polygon) IsEmpty() bool {
	return len(p) < 3 || p.Area() < 1e-9
}

// Area computes the polygon area via the shoelace formula.
// Degenerate polygons have area 0.
func (p Polygon) Area() float64 {
	if len(p) < 3 {
		return 0
	}
	var sum float64
	for i := range p {
		j := (i + 1) % len(p)
		sum += p[i].X*p[j].Y - p[j].X*p[i].Y
	}
	return math.Abs(sum) / 2
}

// Centroid returns the area-weighted centroid. For degenerate or
// zero-area polygons it falls back to the vertex average, and for an
// empty polygon it returns the origin.
func (p Polygon) Centroid() Point {
	if len(p) == 0 {
		return Point{}
	}
	var cx, cy, sum float64
	for i := range p {
		j := (i + 1) % len(p)
		cross := p[i].X*p[j].Y - p[j].X*p[i].Y
		cx += (p[i].X + p[j].X) * cross
		cy += (p[i].Y + p[j].Y) * cross
		sum += cross
	}
	if math.Abs(sum) < 1e-12 {
		var ax, ay float64
		for _, v := range p {
			ax += v.X
			ay += v.Y
		}
		n := float64(len(p))
		return Point{X: ax / n, Y: ay / n}
	}
	return Point{X: cx / (3 * sum), Y: cy / (3 * sum)}
}

// BoundingBox returns the axis-aligned bounds of the polygon.
// An empty polygon yields zero bounds.
func (p Polygon) BoundingBox() Bounds {
	if len(p) == 0 {
		return Bounds{}
	}
	b := Bounds{MinX: p[0].X, MinY: p[0].Y, MaxX: p[0].X, MaxY: p[0].Y}
	for _, v := range p[1:] {
		b.MinX = min(b.MinX, v.X)
		b.MinY = min(b.MinY, v.Y)
		b.MaxX = max(b.MaxX, v.X)
		b.MaxY = max(b.MaxY, v.Y)
	}
	return b
}

// Translate returns a copy of the polygon shifted by (dx, dy).
func (p Polygon) Translate(dx, dy float64) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = Point{X: v.X + dx, Y: v.Y + dy}
	}
	return out
}

// Rotate returns a copy of the polygon rotated by the given angle in
// degrees around origin. A nil origin rotates about the centroid.
func (p Polygon) Rotate(degrees float64, origin *Point) Polygon {
	if len(p) == 0 {
		return Polygon{}
	}
	o := p.Centroid()
	if origin != nil {
		o = *origin
	}
	rad := degrees * math.Pi / 180
	sin, cos := math.Sin(rad), math.Cos(rad)
	out := make(Polygon, len(p))
	for i, v := range p {
		dx, dy := v.X-o.X, v.Y-o.Y
		out[i] = Point{
			X: o.X + dx*cos - dy*sin,
			Y: o.Y + dx*sin + dy*cos,
		}
	}
	return out
}
