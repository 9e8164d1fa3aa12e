// Package plan defines the domain model for commercial kitchen layout
// planning: the Kitchen being laid out, the four functional work zones,
// equipment specs and placements, constraint findings, the score
// breakdown, and the optimization result.
//
// Everything here is plain data. The engine package constructs these
// values; nothing in plan mutates them after construction.
package plan
