// Package geom provides the 2D geometry primitives the layout engine is
// built on: simple polygons with area/centroid/bounds queries, axis-aligned
// rectangle construction, translate/rotate transforms, strict overlap and
// boundary-distance tests, and rectangle clipping.
//
// All coordinates are in meters. Polygons are ordered vertex rings without
// a closing duplicate. Degenerate polygons (fewer than 3 vertices) are
// valid inputs everywhere: they have zero area and empty bounds, and no
// query on them panics.
package geom
