package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/galleykit/galley/pkg/pipeline"
	"github.com/galleykit/galley/pkg/render"
	"github.com/galleykit/galley/pkg/render/flowdot"
)

// flowCommand creates the flow command for drawing the zone workflow graph.
func (c *CLI) flowCommand() *cobra.Command {
	var (
		output   string
		format   string
		detailed bool
		scale    float64
	)

	cmd := &cobra.Command{
		Use:   "flow [result.json]",
		Short: "Draw the workflow zone graph of a saved result",
		Long: `Draw the workflow zone graph of a saved result.

The flow command takes a result.json file (produced by 'simulate -f json')
and draws the goods flow between work zones: storage to preparation to
cooking, with dashed edges for required adjacencies. Output is Graphviz
DOT by default, or a rendered SVG/PNG/PDF.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runFlow(args[0], output, format, detailed, scale)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout for dot, <input>.flow.<ext> otherwise)")
	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg, png, pdf")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include zone areas and item counts in node labels")
	cmd.Flags().Float64Var(&scale, "scale", 2.0, "raster scale factor (png)")

	return cmd
}

// runFlow loads a saved result and draws its zone graph.
func (c *CLI) runFlow(input, output, format string, detailed bool, scale float64) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load result %s: %w", input, err)
	}
	_, res, err := render.ParseJSON(data)
	if err != nil {
		return fmt.Errorf("parse result %s: %w", input, err)
	}

	dot := flowdot.ToDOT(res.Zones, flowdot.Options{Detailed: detailed})

	var artifact []byte
	switch format {
	case "dot":
		artifact = []byte(dot)
	case pipeline.FormatSVG:
		artifact, err = flowdot.RenderSVG(dot)
	case pipeline.FormatPNG:
		artifact, err = flowdot.RenderPNG(dot, scale)
	case pipeline.FormatPDF:
		artifact, err = flowdot.RenderPDF(dot)
	default:
		return fmt.Errorf("invalid format: %q (must be one of: dot, svg, png, pdf)", format)
	}
	if err != nil {
		return fmt.Errorf("render flow graph: %w", err)
	}

	if output == "" && format == "dot" {
		fmt.Print(string(artifact))
		return nil
	}
	if output == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		output = base + ".flow." + format
	}
	if err := writeFile(output, artifact); err != nil {
		return fmt.Errorf("write output %s: %w", output, err)
	}

	printSuccess("Flow graph complete")
	printFile(output)
	return nil
}
