// Package pipeline provides the core simulation pipeline for Galley.
//
// This package implements the complete resolve → optimize → render pipeline
// that can be used by CLI, API, and worker components. By centralizing this
// logic, we ensure consistent behavior across all entry points and avoid
// code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Resolve: Build the kitchen geometry, equipment list, and zone ratios
//     from the request parameters.
//  2. Optimize: Run the layout optimizer to partition zones and place
//     equipment.
//  3. Render: Generate output in various formats (JSON, SVG, PNG, PDF).
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Business: "casual",
//	    Seats:    40,
//	    Formats:  []string{"json", "svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Resolve only
//	problem, err := pipeline.Resolve(opts)
//
//	// Optimize with an existing problem
//	res, err := runner.Optimize(ctx, problem, opts)
//
//	// Render with an existing result
//	artifacts, err := runner.Render(ctx, problem.Kitchen, res, opts)
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/galleykit/galley/pkg/cache"
	"github.com/galleykit/galley/pkg/config"
	"github.com/galleykit/galley/pkg/engine"
	"github.com/galleykit/galley/pkg/plan"
)

// Default values, the single source of truth for CLI, API, and worker.
const (
	// DefaultSeed is the default random seed for reproducibility.
	DefaultSeed = uint64(42)

	// DefaultBusiness is assumed when no business type is given.
	DefaultBusiness = plan.BusinessCasual

	// AreaPerSeat is the kitchen area heuristic in square meters per
	// dining seat, used when no explicit dimensions are provided.
	AreaPerSeat = 0.46

	// WidthDepthRatio is the assumed width-to-depth proportion for
	// auto-generated rectangular kitchens.
	WidthDepthRatio = 1.2

	// MinKitchenArea floors the seats-derived area so tiny seat counts
	// still produce a workable kitchen.
	MinKitchenArea = 9.0
)

// Format constants for output formats.
const (
	FormatJSON = "json"
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatJSON: true,
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
}

// Options contains all configuration for the simulation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Kitchen options
	Business string       `json:"business,omitempty"`
	Seats    int          `json:"seats,omitempty"`
	Width    float64      `json:"width,omitempty"` // meters
	Depth    float64      `json:"depth,omitempty"` // meters
	Shape    string       `json:"shape,omitempty"`
	Vertices [][2]float64 `json:"vertices,omitempty"` // explicit footprint, overrides Width/Depth

	// Layout options
	Ratios    map[plan.ZoneType]float64 `json:"ratios,omitempty"`
	Equipment []string                  `json:"equipment,omitempty"` // catalog ids; empty = business default set
	Fixed     []plan.FixedElement       `json:"fixed,omitempty"`

	// Optimizer options
	Iterations int     `json:"iterations,omitempty"`
	Seed       uint64  `json:"seed,omitempty"`
	Threshold  float64 `json:"threshold,omitempty"`
	Workers    int     `json:"workers,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Grid    bool     `json:"grid,omitempty"`
	Labels  bool     `json:"labels,omitempty"`
	Scale   float64  `json:"scale,omitempty"`

	// Refresh bypasses the cache read (results are still written back).
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Config *config.Config `json:"-"`
	Logger *log.Logger    `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Kitchen is the resolved kitchen geometry.
	Kitchen plan.Kitchen

	// Plan is the optimization result.
	Plan *plan.Result

	// PlanHash is the content hash of the serialized plan.
	PlanHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	EquipmentCount int
	OptimizeTime   time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	PlanHit   bool // Whether the optimization result came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return fmt.Errorf("invalid format: %q (must be one of: json, svg, png, pdf)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateShape checks that a shape tag is recognized.
func ValidateShape(shape string) error {
	if shape == "" {
		return nil
	}
	if !plan.ValidShapes[plan.Shape(shape)] {
		return fmt.Errorf("invalid shape: %q (must be one of: rectangle, L, U, irregular)", shape)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForResolve(); err != nil {
		return err
	}
	o.SetOptimizeDefaults()
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForResolve checks the fields needed to build the kitchen.
func (o *Options) ValidateForResolve() error {
	if err := ValidateShape(o.Shape); err != nil {
		return err
	}
	if o.Seats <= 0 && o.Width <= 0 && len(o.Vertices) == 0 {
		return fmt.Errorf("seats, width/depth, or vertices is required")
	}
	if o.Width > 0 && o.Depth <= 0 {
		return fmt.Errorf("depth is required when width is set")
	}
	if len(o.Vertices) > 0 && len(o.Vertices) < 3 {
		return fmt.Errorf("vertices requires at least 3 points")
	}
	if o.Business == "" {
		o.Business = string(DefaultBusiness)
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return nil
}

// SetOptimizeDefaults sets default values for the optimizer stage.
func (o *Options) SetOptimizeDefaults() {
	if o.Iterations == 0 {
		o.Iterations = engine.DefaultIterations
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Threshold == 0 {
		o.Threshold = engine.DefaultThreshold
	}
	if o.Workers == 0 {
		o.Workers = 1
	}
	if o.Config == nil {
		cfg := config.Default()
		o.Config = &cfg
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatJSON}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	return ValidateFormats(o.Formats)
}

// PlanKeyOpts returns cache key options for the optimization stage.
func (o *Options) PlanKeyOpts(configHash string) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Seed:       o.Seed,
		Iterations: o.Iterations,
		Threshold:  o.Threshold,
		ConfigHash: configHash,
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
		Grid:   o.Grid,
		Labels: o.Labels,
		Scale:  o.Scale,
	}
}
