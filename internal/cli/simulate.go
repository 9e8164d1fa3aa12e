package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/galleykit/galley/pkg/config"
	"github.com/galleykit/galley/pkg/pipeline"
	"github.com/galleykit/galley/pkg/plan"
)

// simulateCommand creates the simulate command, the main entry point of
// the tool.
func (c *CLI) simulateCommand() *cobra.Command {
	var (
		output     string
		noCache    bool
		refresh    bool
		formats    string
		equipment  string
		ratios     string
		fixed      string
		configPath string
		scenario   string
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Generate and score a kitchen layout",
		Long: `Generate and score a kitchen layout.

The simulate command partitions the kitchen footprint into work zones,
places the selected equipment, validates the arrangement against spacing
and safety rules, and iterates with perturbed zone ratios until the score
threshold is reached or the iteration budget runs out.

The kitchen can be described three ways: by seat count (dimensions are
derived), by explicit width and depth, or by an explicit vertex polygon.
A TOML scenario file (--scenario) can supply any of these; explicit flags
take precedence over scenario values.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Equipment = parseList(equipment)
			var err error
			if opts.Ratios, err = parseRatios(ratios); err != nil {
				return err
			}
			if opts.Fixed, err = parseFixed(fixed); err != nil {
				return err
			}
			if scenario != "" {
				if err := applyScenario(&opts, scenario); err != nil {
					return err
				}
			}
			if configPath != "" {
				cfg, err := config.Load(configPath)
				if err != nil {
					return fmt.Errorf("load config %s: %w", configPath, err)
				}
				opts.Config = &cfg
			}
			opts.Formats = parseFormats(formats)
			opts.Refresh = refresh
			return c.runSimulate(cmd.Context(), opts, output, noCache)
		},
	}

	// Common flags
	cmd.Flags().StringVarP(&output, "output", "o", "kitchen", "output base path (extension is appended per format)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even on a cache hit")
	cmd.Flags().StringVar(&configPath, "config", "", "TOML config file with optimizer weights and rules")
	cmd.Flags().StringVar(&scenario, "scenario", "", "TOML scenario file describing the kitchen (flags take precedence)")

	// Kitchen flags
	cmd.Flags().StringVarP(&opts.Business, "business", "b", string(pipeline.DefaultBusiness), "business type (casual, fast_food, fine_dining, ...)")
	cmd.Flags().IntVar(&opts.Seats, "seats", 0, "dining seat count (kitchen dimensions are derived)")
	cmd.Flags().Float64Var(&opts.Width, "width", 0, "kitchen width in meters")
	cmd.Flags().Float64Var(&opts.Depth, "depth", 0, "kitchen depth in meters")
	cmd.Flags().StringVar(&opts.Shape, "shape", "", "footprint shape: rectangle (default), L, U, irregular")
	cmd.Flags().StringVarP(&equipment, "equipment", "e", "", "comma-separated catalog ids (default: business set)")
	cmd.Flags().StringVar(&ratios, "ratios", "", "zone ratio overrides, e.g. storage=0.25,cooking=0.35")
	cmd.Flags().StringVar(&fixed, "fixed", "", "fixed elements, e.g. entry:0:4,vent:5:8:1.2")

	// Optimizer flags
	cmd.Flags().IntVarP(&opts.Iterations, "iterations", "n", 0, "optimization iteration budget")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "random seed (0 uses the default)")
	cmd.Flags().Float64Var(&opts.Threshold, "threshold", 0, "early-stop score threshold")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "parallel optimizer workers")

	// Render flags
	cmd.Flags().StringVarP(&formats, "format", "f", pipeline.FormatJSON, "output formats: json, svg, png, pdf (comma-separated)")
	cmd.Flags().BoolVar(&opts.Grid, "grid", false, "draw a 1m grid on the floor plan")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "label zones and equipment on the floor plan")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 0, "floor plan pixels per meter")

	return cmd
}

// runSimulate executes the full pipeline and writes the artifacts.
func (c *CLI) runSimulate(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Optimizing layout...")
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.StopWithError("Simulation failed")
		return fmt.Errorf("run simulation: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	var written []string
	for _, format := range opts.Formats {
		path := output + "." + format
		if err := writeFile(path, result.Artifacts[format]); err != nil {
			return fmt.Errorf("write output %s: %w", path, err)
		}
		written = append(written, path)
	}

	printSuccess("Simulation complete")
	for _, path := range written {
		printFile(path)
	}
	printStats(len(result.Plan.Placement.Placements), len(result.Plan.Violations), result.CacheInfo.PlanHit)
	printNewline()
	printKeyValue("Business", string(result.Kitchen.Business))
	printKeyValue("Area", fmt.Sprintf("%.1f m²", result.Kitchen.Area()))
	printKeyValue("Iterations", fmt.Sprintf("%d", result.Plan.Iterations))
	printNewline()
	printScore(result.Plan.Score)
	printNewline()
	printZones(result.Plan.Zones)
	if len(result.Plan.Placement.Unplaced) > 0 {
		printNewline()
		printWarning("%d items could not be placed: %s",
			len(result.Plan.Placement.Unplaced), strings.Join(result.Plan.Placement.Unplaced, ", "))
	}
	for _, v := range result.Plan.Violations {
		if v.Severity == plan.SeverityError {
			printDetail("error: %s", v.Message)
		}
	}
	if hasFormat(opts.Formats, pipeline.FormatJSON) {
		printNewline()
		printNextStep("Render a floor plan", "galley render "+output+".json -f svg")
	}

	return nil
}

func hasFormat(formats []string, want string) bool {
	for _, f := range formats {
		if f == want {
			return true
		}
	}
	return false
}

// parseRatios parses "zone=ratio" pairs into a ratio map.
func parseRatios(s string) (map[plan.ZoneType]float64, error) {
	if s == "" {
		return nil, nil
	}
	out := make(map[plan.ZoneType]float64)
	for _, part := range strings.Split(s, ",") {
		key, val, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return nil, fmt.Errorf("invalid ratio %q (expected zone=value)", part)
		}
		zone := plan.ZoneType(key)
		if !plan.ValidZones[zone] {
			return nil, fmt.Errorf("invalid zone %q (must be one of: storage, preparation, cooking, washing)", key)
		}
		ratio, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid ratio value %q: %w", val, err)
		}
		out[zone] = ratio
	}
	return out, nil
}

// parseFixed parses "kind:x:y[:width]" specs into fixed elements.
func parseFixed(s string) ([]plan.FixedElement, error) {
	if s == "" {
		return nil, nil
	}
	var out []plan.FixedElement
	for _, part := range strings.Split(s, ",") {
		fields := strings.Split(strings.TrimSpace(part), ":")
		if len(fields) < 3 || len(fields) > 4 {
			return nil, fmt.Errorf("invalid fixed element %q (expected kind:x:y[:width])", part)
		}
		elem := plan.FixedElement{Kind: plan.FixedKind(fields[0])}
		if !plan.ValidFixedKinds[elem.Kind] {
			return nil, fmt.Errorf("invalid fixed kind %q (must be one of: entry, water, drain, gas, vent)", fields[0])
		}
		var err error
		if elem.X, err = strconv.ParseFloat(fields[1], 64); err != nil {
			return nil, fmt.Errorf("invalid fixed element %q: %w", part, err)
		}
		if elem.Y, err = strconv.ParseFloat(fields[2], 64); err != nil {
			return nil, fmt.Errorf("invalid fixed element %q: %w", part, err)
		}
		if len(fields) == 4 {
			if elem.Width, err = strconv.ParseFloat(fields[3], 64); err != nil {
				return nil, fmt.Errorf("invalid fixed element %q: %w", part, err)
			}
		}
		out = append(out, elem)
	}
	return out, nil
}
