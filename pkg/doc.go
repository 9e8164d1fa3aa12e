// Package pkg provides the core libraries for Galley kitchen layout simulation.
//
// # Overview
//
// Galley turns a kitchen description (footprint, business type, equipment)
// into a scored floor plan. The pkg directory is organized into five main
// areas:
//
//  1. [plan] and [geom] - Domain types and 2D geometry
//  2. [catalog] and [config] - Equipment data and tunable planning constants
//  3. [engine] - Zoning, placement, validation, scoring, and the optimizer
//  4. [render] - JSON documents, SVG floor plans, and workflow graphs
//  5. [pipeline] - Orchestration (resolve → optimize → render) with caching
//
// # Architecture
//
// The typical data flow through Galley:
//
//	Kitchen description (seats / dimensions / vertices)
//	         ↓
//	    [pipeline] package (resolve equipment and zone ratios)
//	         ↓
//	    [engine] package (partition zones, place equipment, iterate)
//	         ↓
//	    [render] package (JSON document, SVG floor plan, flow graph)
//	         ↓
//	    JSON/SVG/PNG/PDF output
//
// # Quick Start
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Business: "casual",
//	    Seats:    40,
//	    Formats:  []string{"json", "svg"},
//	})
//
// Supporting packages: [cache] for layout and artifact caching (file,
// Redis, or disabled), [client] for calling a remote galley server,
// [errors] for structured error codes, [observability] for
// instrumentation hooks, and [buildinfo] for version metadata.
package pkg
