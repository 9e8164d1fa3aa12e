package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/galleykit/galley/pkg/pipeline"
	"github.com/galleykit/galley/pkg/plan"
)

// scenarioFile is the TOML simulation scenario. Every field is
// optional; CLI flags take precedence over scenario values.
type scenarioFile struct {
	Business  string       `toml:"business"`
	Seats     int          `toml:"seats"`
	Width     float64      `toml:"width"`
	Depth     float64      `toml:"depth"`
	Shape     string       `toml:"shape"`
	Vertices  [][2]float64 `toml:"vertices"`
	Equipment []string     `toml:"equipment"`

	Ratios map[string]float64 `toml:"ratios"`
	Fixed  []scenarioFixed    `toml:"fixed"`

	Iterations int     `toml:"iterations"`
	Seed       uint64  `toml:"seed"`
	Threshold  float64 `toml:"threshold"`
	Workers    int     `toml:"workers"`
}

type scenarioFixed struct {
	Kind  string  `toml:"kind"`
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	Width float64 `toml:"width"`
}

// applyScenario loads a scenario file into opts. Only fields the
// caller left unset are taken from the file, so flags always win.
func applyScenario(opts *pipeline.Options, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scenario %s: %w", path, err)
	}
	var sc scenarioFile
	if err := toml.Unmarshal(data, &sc); err != nil {
		return fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if opts.Business == "" || opts.Business == string(pipeline.DefaultBusiness) {
		if sc.Business != "" {
			opts.Business = sc.Business
		}
	}
	if opts.Seats == 0 {
		opts.Seats = sc.Seats
	}
	if opts.Width == 0 {
		opts.Width = sc.Width
	}
	if opts.Depth == 0 {
		opts.Depth = sc.Depth
	}
	if opts.Shape == "" {
		opts.Shape = sc.Shape
	}
	if len(opts.Vertices) == 0 {
		opts.Vertices = sc.Vertices
	}
	if len(opts.Equipment) == 0 {
		opts.Equipment = sc.Equipment
	}
	if opts.Iterations == 0 {
		opts.Iterations = sc.Iterations
	}
	if opts.Seed == 0 {
		opts.Seed = sc.Seed
	}
	if opts.Threshold == 0 {
		opts.Threshold = sc.Threshold
	}
	if opts.Workers == 0 {
		opts.Workers = sc.Workers
	}

	if opts.Ratios == nil && len(sc.Ratios) > 0 {
		opts.Ratios = make(map[plan.ZoneType]float64, len(sc.Ratios))
		for key, ratio := range sc.Ratios {
			zone := plan.ZoneType(key)
			if !plan.ValidZones[zone] {
				return fmt.Errorf("scenario %s: invalid zone %q", path, key)
			}
			opts.Ratios[zone] = ratio
		}
	}
	if opts.Fixed == nil {
		for _, f := range sc.Fixed {
			kind := plan.FixedKind(f.Kind)
			if !plan.ValidFixedKinds[kind] {
				return fmt.Errorf("scenario %s: invalid fixed kind %q", path, f.Kind)
			}
			opts.Fixed = append(opts.Fixed, plan.FixedElement{Kind: kind, X: f.X, Y: f.Y, Width: f.Width})
		}
	}
	return nil
}
