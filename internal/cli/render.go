package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/galleykit/galley/pkg/pipeline"
	"github.com/galleykit/galley/pkg/render"
)

// renderCommand creates the render command for re-rendering saved results.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
		formats string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [result.json]",
		Short: "Re-render a saved simulation result",
		Long: `Re-render a saved simulation result.

The render command takes a result.json file (produced by 'simulate -f json')
and renders the floor plan to SVG, PNG, or PDF without re-running the
optimizer. Rendered artifacts are cached locally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Formats = parseFormats(formats)
			opts.Refresh = refresh
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "", "output base path (default: input path without extension)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-render even on a cache hit")

	// Render flags
	cmd.Flags().StringVarP(&formats, "format", "f", pipeline.FormatSVG, "output formats: svg, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.Grid, "grid", false, "draw a 1m grid on the floor plan")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "label zones and equipment on the floor plan")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "floor plan pixels per meter")

	return cmd
}

// runRender loads a saved result and renders the requested formats.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("load result %s: %w", input, err)
	}
	kitchen, res, err := render.ParseJSON(data)
	if err != nil {
		return fmt.Errorf("parse result %s: %w", input, err)
	}

	if err := pipeline.ValidateFormats(opts.Formats); err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Rendering floor plan...")
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, kitchen, &res, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render result: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	base := output
	if base == "" {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}

	printSuccess("Render complete")
	for _, format := range opts.Formats {
		path := base + "." + format
		if err := writeFile(path, artifacts[format]); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		printFile(path)
	}
	printStats(len(res.Placement.Placements), len(res.Violations), cacheHit)

	return nil
}
