package geom

import "math"

const eps = 1e-9

// Overlaps reports whether two polygons share interior area.
// Polygons that merely touch along an edge or at a vertex do not overlap.
func Overlaps(a, b Polygon) bool {
	if len(a) < 3 || len(b) < 3 {
		return false
	}
	ba, bb := a.BoundingBox(), b.BoundingBox()
	if ba.MinX >= bb.MaxX-eps || bb.MinX >= ba.MaxX-eps ||
		ba.MinY >= bb.MaxY-eps || bb.MinY >= ba.MaxY-eps {
		return false
	}
	for i := range a {
		a1, a2 := a[i], a[(i+1)%len(a)]
		for j := range b {
			if properCross(a1, a2, b[j], b[(j+1)%len(b)]) {
				return true
			}
		}
	}
	// No crossing edges: one polygon may still sit inside the other.
	for _, v := range a {
		if strictlyInside(b, v) {
			return true
		}
	}
	for _, v := range b {
		if strictlyInside(a, v) {
			return true
		}
	}
	return strictlyInside(b, a.Centroid()) || strictlyInside(a, b.Centroid())
}

// Distance returns the minimum distance between the boundaries of two
// polygons. Overlapping or touching polygons have distance 0.
func Distance(a, b Polygon) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if Overlaps(a, b) {
		return 0
	}
	best := math.Inf(1)
	for i := range a {
		a1, a2 := a[i], a[(i+1)%len(a)]
		for j := range b {
			d := segmentDistance(a1, a2, b[j], b[(j+1)%len(b)])
			if d < best {
				best = d
			}
		}
	}
	if best < eps {
		return 0
	}
	return best
}

// BoundaryDistance returns the minimum distance between the boundary
// outlines of two polygons, ignoring containment. Unlike Distance it
// does not short-circuit to 0 when one polygon sits inside the other,
// so it measures how close an inner polygon runs to its container's
// walls.
func BoundaryDistance(a, b Polygon) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	best := math.Inf(1)
	for i := range a {
		a1, a2 := a[i], a[(i+1)%len(a)]
		for j := range b {
			d := segmentDistance(a1, a2, b[j], b[(j+1)%len(b)])
			if d < best {
				best = d
			}
		}
	}
	if best < eps {
		return 0
	}
	return best
}

// ContainsPoint reports whether pt lies inside the polygon or on its
// boundary.
func ContainsPoint(p Polygon, pt Point) bool {
	if len(p) < 3 {
		return false
	}
	if onBoundary(p, pt) {
		return true
	}
	return rayInside(p, pt)
}

// Contains reports whether container fully contains item, boundary
// contact allowed. Used to accept grid placement candidates.
func Contains(container, item Polygon) bool {
	if len(container) < 3 || len(item) == 0 {
		return false
	}
	for _, v := range item {
		if !ContainsPoint(container, v) {
			return false
		}
	}
	for i := range item {
		i1, i2 := item[i], item[(i+1)%len(item)]
		for j := range container {
			if properCross(i1, i2, container[j], container[(j+1)%len(container)]) {
				return false
			}
		}
	}
	return true
}

// ClipRect intersects the polygon with an axis-aligned rectangle using
// Sutherland-Hodgman clipping. The result is empty when the polygon and
// rectangle share no area.
func ClipRect(p Polygon, b Bounds) Polygon {
	if len(p) < 3 || b.Width() <= eps || b.Height() <= eps {
		return Polygon{}
	}
	out := p
	out = clipHalfPlane(out, func(v Point) bool { return v.X >= b.MinX-eps }, func(a, c Point) Point {
		t := (b.MinX - a.X) / (c.X - a.X)
		return Point{X: b.MinX, Y: a.Y + t*(c.Y-a.Y)}
	})
	out = clipHalfPlane(out, func(v Point) bool { return v.X <= b.MaxX+eps }, func(a, c Point) Point {
		t := (b.MaxX - a.X) / (c.X - a.X)
		return Point{X: b.MaxX, Y: a.Y + t*(c.Y-a.Y)}
	})
	out = clipHalfPlane(out, func(v Point) bool { return v.Y >= b.MinY-eps }, func(a, c Point) Point {
		t := (b.MinY - a.Y) / (c.Y - a.Y)
		return Point{X: a.X + t*(c.X-a.X), Y: b.MinY}
	})
	out = clipHalfPlane(out, func(v Point) bool { return v.Y <= b.MaxY+eps }, func(a, c Point) Point {
		t := (b.MaxY - a.Y) / (c.Y - a.Y)
		return Point{X: a.X + t*(c.X-a.X), Y: b.MaxY}
	})
	out = dedupe(out)
	if out.IsEmpty() {
		return Polygon{}
	}
	return out
}

func clipHalfPlane(p Polygon, inside func(Point) bool, intersect func(a, b Point) Point) Polygon {
	if len(p) == 0 {
		return p
	}
	var out Polygon
	for i := range p {
		cur, next := p[i], p[(i+1)%len(p)]
		curIn, nextIn := inside(cur), inside(next)
		if curIn {
			out = append(out, cur)
			if !nextIn {
				out = append(out, intersect(cur, next))
			}
		} else if nextIn {
			out = append(out, intersect(cur, next))
		}
	}
	return out
}

func dedupe(p Polygon) Polygon {
	if len(p) == 0 {
		return p
	}
	var out Polygon
	for _, v := range p {
		if len(out) == 0 || !samePoint(out[len(out)-1], v) {
			out = append(out, v)
		}
	}
	if len(out) > 1 && samePoint(out[0], out[len(out)-1]) {
		out = out[:len(out)-1]
	}
	return out
}

func samePoint(a, b Point) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

// cross computes the z-component of (b-a) x (c-a).
func cross(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

// properCross reports whether segments a1a2 and b1b2 cross in their
// interiors (collinear overlap and endpoint touches excluded).
func properCross(a1, a2, b1, b2 Point) bool {
	d1 := cross(b1, b2, a1)
	d2 := cross(b1, b2, a2)
	d3 := cross(a1, a2, b1)
	d4 := cross(a1, a2, b2)
	return ((d1 > eps && d2 < -eps) || (d1 < -eps && d2 > eps)) &&
		((d3 > eps && d4 < -eps) || (d3 < -eps && d4 > eps))
}

func onSegment(p, a, b Point) bool {
	if math.Abs(cross(a, b, p)) > 1e-7 {
		return false
	}
	return p.X >= min(a.X, b.X)-eps && p.X <= max(a.X, b.X)+eps &&
		p.Y >= min(a.Y, b.Y)-eps && p.Y <= max(a.Y, b.Y)+eps
}

func onBoundary(p Polygon, pt Point) bool {
	for i := range p {
		if onSegment(pt, p[i], p[(i+1)%len(p)]) {
			return true
		}
	}
	return false
}

// rayInside runs the even-odd crossing test, boundary excluded.
func rayInside(p Polygon, pt Point) bool {
	inside := false
	for i := range p {
		a, b := p[i], p[(i+1)%len(p)]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := a.X + (pt.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

func strictlyInside(p Polygon, pt Point) bool {
	if len(p) < 3 || onBoundary(p, pt) {
		return false
	}
	return rayInside(p, pt)
}

func pointDistance(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// pointSegmentDistance returns the distance from p to segment ab.
func pointSegmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq < eps {
		return pointDistance(p, a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = max(0, min(1, t))
	return pointDistance(p, Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

func segmentDistance(a1, a2, b1, b2 Point) float64 {
	if properCross(a1, a2, b1, b2) {
		return 0
	}
	return min(
		min(pointSegmentDistance(a1, b1, b2), pointSegmentDistance(a2, b1, b2)),
		min(pointSegmentDistance(b1, a1, a2), pointSegmentDistance(b2, a1, a2)),
	)
}
