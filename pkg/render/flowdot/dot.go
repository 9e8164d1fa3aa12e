// Package flowdot renders the kitchen workflow as a directed graph.
//
// The goods flow (storage, prep, cooking, washing) becomes a Graphviz
// diagram: one node per zone sized by its area share, solid arrows along
// the workflow, dashed edges for required adjacency. It is a quick
// topology check next to the full floor plan.
//
//	dot := flowdot.ToDOT(result.Zones, flowdot.Options{})
//	svg, err := flowdot.RenderSVG(dot)
package flowdot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/galleykit/galley/pkg/plan"
	"github.com/galleykit/galley/pkg/render"
)

// Options configures workflow-graph generation.
type Options struct {
	// Detailed includes zone areas and equipment counts in node labels.
	// When false, only the zone name is shown.
	Detailed bool
}

var zoneColors = map[plan.ZoneType]string{
	plan.ZoneStorage:     "#aed6f1",
	plan.ZonePreparation: "#a9dfbf",
	plan.ZoneCooking:     "#f5b7b1",
	plan.ZoneWashing:     "#d7bde2",
}

// ToDOT converts the zone set to Graphviz DOT format. The result can be
// rendered with [RenderSVG], [RenderPDF], or [RenderPNG], or processed
// with external Graphviz tooling.
func ToDOT(zones []plan.Zone, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph workflow {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontsize=18, margin=\"0.25,0.15\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("\n")

	present := make(map[plan.ZoneType]plan.Zone, len(zones))
	for _, z := range zones {
		present[z.Type] = z
	}

	for _, t := range plan.WorkflowOrder {
		z, ok := present[t]
		if !ok {
			continue
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", t, fmtLabel(z, opts.Detailed), zoneColors[t])
	}

	buf.WriteString("\n")
	for i := 0; i+1 < len(plan.WorkflowOrder); i++ {
		from, to := plan.WorkflowOrder[i], plan.WorkflowOrder[i+1]
		if _, okF := present[from]; !okF {
			continue
		}
		if _, okT := present[to]; !okT {
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", from, to)
	}

	for _, t := range plan.WorkflowOrder {
		for _, adj := range plan.AdjacencyRules[t] {
			if t >= adj { // each undirected pair once
				continue
			}
			if _, okF := present[t]; !okF {
				continue
			}
			if _, okT := present[adj]; !okT {
				continue
			}
			fmt.Fprintf(&buf, "  %q -> %q [dir=none, style=dashed, color=grey];\n", t, adj)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(z plan.Zone, detailed bool) string {
	if !detailed {
		return string(z.Type)
	}
	parts := []string{fmt.Sprintf("%.1f m2", z.Area)}
	if n := len(z.EquipmentIDs); n > 0 {
		parts = append(parts, fmt.Sprintf("%d items", n))
	}
	return string(z.Type) + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with
// [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
