package pipeline

import (
	"fmt"

	"github.com/galleykit/galley/pkg/plan"
	"github.com/galleykit/galley/pkg/render"
	"github.com/galleykit/galley/pkg/render/plansvg"
)

// buildArtifacts renders the plan in every requested format. PNG and
// PDF are derived from the SVG drawing, so the floor plan is rendered
// at most once per call.
func buildArtifacts(kitchen plan.Kitchen, res *plan.Result, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))

	var svg []byte
	floorPlan := func() []byte {
		if svg == nil {
			svg = plansvg.Render(kitchen, *res, buildSVGOptions(opts)...)
		}
		return svg
	}

	for _, format := range opts.Formats {
		var data []byte
		var err error

		switch format {
		case FormatJSON:
			data, err = render.RenderJSON(kitchen, *res)
		case FormatSVG:
			data = floorPlan()
		case FormatPNG:
			scale := opts.Scale
			if scale <= 0 {
				scale = 2.0
			}
			data, err = render.ToPNG(floorPlan(), scale)
		case FormatPDF:
			data, err = render.ToPDF(floorPlan())
		default:
			return nil, fmt.Errorf("unsupported format: %s", format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds floor-plan rendering options.
func buildSVGOptions(opts Options) []plansvg.Option {
	var svgOpts []plansvg.Option
	if opts.Grid {
		svgOpts = append(svgOpts, plansvg.WithGrid())
	}
	if opts.Labels {
		svgOpts = append(svgOpts, plansvg.WithLabels())
	}
	if opts.Scale > 0 {
		svgOpts = append(svgOpts, plansvg.WithScale(opts.Scale))
	}
	if len(opts.Fixed) > 0 {
		svgOpts = append(svgOpts, plansvg.WithFixed(opts.Fixed))
	}
	return svgOpts
}
