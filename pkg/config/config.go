// Package config holds the tunable planning constants: constraint
// distances, scoring weights and bands, and the placement heuristic
// weights. Defaults follow common commercial kitchen guidelines;
// a TOML file can override any subset of them.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Constraints are the hard and advisory distance rules, in meters.
type Constraints struct {
	// EquipmentSpacing is the minimum gap between any two items.
	EquipmentSpacing float64 `toml:"equipment_spacing"`
	// ComfortAisle is the comfortable working aisle; gaps below it
	// (but above EquipmentSpacing) are reported as info.
	ComfortAisle float64 `toml:"comfort_aisle"`
	// SingleAisle and DoubleAisle are one-way and two-way traffic
	// aisle widths.
	SingleAisle float64 `toml:"single_aisle"`
	DoubleAisle float64 `toml:"double_aisle"`
	// WallClearance is the minimum stand-off from a zone boundary
	// when an item is not flush against it.
	WallClearance float64 `toml:"wall_clearance"`
	// RangeSpacing is the required gap between adjacent ranges.
	RangeSpacing float64 `toml:"range_spacing"`
	// ZoneAdjacency is the maximum boundary distance for zones that
	// must neighbor each other.
	ZoneAdjacency float64 `toml:"zone_adjacency"`
	// VentProximity bounds the distance from a vent shaft to the
	// cooking zone centroid; WaterProximity bounds water and drain
	// connections to the washing zone centroid.
	VentProximity  float64 `toml:"vent_proximity"`
	WaterProximity float64 `toml:"water_proximity"`
	// GridStep is the placement candidate sampling interval.
	GridStep float64 `toml:"grid_step"`
}

// Weights combines the four sub-scores into the overall score.
type Weights struct {
	Workflow      float64 `toml:"workflow"`
	Space         float64 `toml:"space"`
	Safety        float64 `toml:"safety"`
	Accessibility float64 `toml:"accessibility"`
}

// Bands are the scoring sweet spots.
type Bands struct {
	// SpaceLow..SpaceHigh is the ideal equipment-footprint share of
	// the total zone area.
	SpaceLow  float64 `toml:"space_low"`
	SpaceHigh float64 `toml:"space_high"`
	// AccessHigh caps the ideal nearest-neighbor gap; the lower end
	// of the band is the equipment spacing constraint.
	AccessHigh float64 `toml:"access_high"`
}

// Heuristic holds the placement candidate scoring weights.
type Heuristic struct {
	// WallRequired and Wall weight wall proximity for wall-required
	// and free-standing items respectively.
	WallRequired float64 `toml:"wall_required"`
	Wall         float64 `toml:"wall"`
	// Alignment rewards edges lining up with already-placed items
	// within AlignTolerance.
	Alignment      float64 `toml:"alignment"`
	AlignTolerance float64 `toml:"align_tolerance"`
	// AffinityNear is the full-strength distance for affinity pairs;
	// AffinityFar gives half strength.
	AffinityNear float64 `toml:"affinity_near"`
	AffinityFar  float64 `toml:"affinity_far"`
	// Pull biases items toward or away from the downstream zone
	// boundary by workflow order.
	Pull float64 `toml:"pull"`
	// Line rewards cooking/washing items sharing a row or column
	// within LineTolerance.
	Line          float64 `toml:"line"`
	LineTolerance float64 `toml:"line_tolerance"`
	// Density prefers candidates near existing items; gaps that are
	// neither flush nor a usable aisle are penalized instead.
	Density float64 `toml:"density"`
	// Jitter is the random tie-break amplitude.
	Jitter float64 `toml:"jitter"`
}

// Config is the full planning configuration.
type Config struct {
	Constraints Constraints `toml:"constraints"`
	Weights     Weights     `toml:"weights"`
	Bands       Bands       `toml:"bands"`
	Heuristic   Heuristic   `toml:"heuristic"`
}

// Default returns the standard configuration.
func Default() Config {
	return Config{
		Constraints: Constraints{
			EquipmentSpacing: 0.30,
			ComfortAisle:     0.91,
			SingleAisle:      1.07,
			DoubleAisle:      1.22,
			WallClearance:    0.15,
			RangeSpacing:     0.46,
			ZoneAdjacency:    0.5,
			VentProximity:    3.0,
			WaterProximity:   2.5,
			GridStep:         0.1,
		},
		Weights: Weights{
			Workflow:      0.40,
			Space:         0.25,
			Safety:        0.20,
			Accessibility: 0.15,
		},
		Bands: Bands{
			SpaceLow:   0.12,
			SpaceHigh:  0.35,
			AccessHigh: 1.5,
		},
		Heuristic: Heuristic{
			WallRequired:   15,
			Wall:           5,
			Alignment:      8,
			AlignTolerance: 0.05,
			AffinityNear:   0.5,
			AffinityFar:    1.5,
			Pull:           6,
			Line:           10,
			LineTolerance:  0.15,
			Density:        4,
			Jitter:         0.5,
		},
	}
}

// Load reads a TOML config file on top of the defaults. Unset keys
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run with.
func (c Config) Validate() error {
	if c.Constraints.GridStep <= 0 {
		return fmt.Errorf("grid_step must be positive, got %v", c.Constraints.GridStep)
	}
	if c.Constraints.EquipmentSpacing < 0 || c.Constraints.WallClearance < 0 {
		return fmt.Errorf("constraint distances must be non-negative")
	}
	total := c.Weights.Workflow + c.Weights.Space + c.Weights.Safety + c.Weights.Accessibility
	if total <= 0 {
		return fmt.Errorf("score weights must sum to a positive value, got %v", total)
	}
	if c.Bands.SpaceLow >= c.Bands.SpaceHigh {
		return fmt.Errorf("space band [%v, %v] is inverted", c.Bands.SpaceLow, c.Bands.SpaceHigh)
	}
	return nil
}
