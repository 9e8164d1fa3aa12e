// Package engine implements the layout pipeline: partitioning a kitchen
// polygon into work zones, greedy grid placement of equipment, constraint
// validation, scoring, and the multi-restart optimizer that ties the
// stages together.
//
// A single optimization run is deterministic for a given seed. Each
// iteration builds its layout from scratch; only the best-scoring
// snapshot survives.
package engine
