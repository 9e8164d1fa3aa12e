// Package render turns optimization results into output artifacts.
//
// # Overview
//
// This package contains the rendering pipeline that transforms computed
// kitchen layouts into consumable outputs. It provides:
//
//   - JSON simulation documents ([RenderJSON])
//   - Generic format conversion (SVG to PDF/PNG)
//   - Floor-plan drawings (in [plansvg] subpackage)
//   - Workflow-graph diagrams (in [flowdot] subpackage)
//
// # JSON Output
//
// [RenderJSON] projects a [plan.Result] into a self-contained simulation
// document: zones with areas and ratios, placements with resolved
// dimensions, the validation summary, score breakdown, and run metadata.
// It is the primary interchange format; the floor-plan renderer can work
// from it alone.
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). These are used by both
// the floor-plan and workflow-graph renderers.
//
//	svg := plansvg.Render(kitchen, result, plansvg.WithGrid())
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [plansvg]: github.com/galleykit/galley/pkg/render/plansvg
// [flowdot]: github.com/galleykit/galley/pkg/render/flowdot
package render
