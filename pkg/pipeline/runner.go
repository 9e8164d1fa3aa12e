package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/galleykit/galley/pkg/cache"
	"github.com/galleykit/galley/pkg/engine"
	"github.com/galleykit/galley/pkg/observability"
	"github.com/galleykit/galley/pkg/plan"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete resolve → optimize → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	r.applyLogger(&opts)

	// Stage 1: Resolve
	observability.Pipeline().OnResolveStart(ctx, opts.Business)
	problem, err := Resolve(opts)
	if err != nil {
		observability.Pipeline().OnResolveComplete(ctx, opts.Business, 0, 0, err)
		return nil, fmt.Errorf("resolve: %w", err)
	}
	observability.Pipeline().OnResolveComplete(ctx, opts.Business, len(problem.Specs), problem.Kitchen.Area(), nil)

	result := &Result{
		Kitchen:   problem.Kitchen,
		Artifacts: make(map[string][]byte),
	}
	result.Stats.EquipmentCount = len(problem.Specs)

	r.Logger.Info("resolved simulation input",
		"business", problem.Kitchen.Business,
		"area", fmt.Sprintf("%.1fm²", problem.Kitchen.Area()),
		"equipment", len(problem.Specs))

	// Stage 2: Optimize
	optimizeStart := time.Now()
	res, planHit, err := r.OptimizeWithCacheInfo(ctx, problem, opts)
	if err != nil {
		return nil, fmt.Errorf("optimize: %w", err)
	}
	result.Plan = res
	result.Stats.OptimizeTime = time.Since(optimizeStart)
	result.CacheInfo.PlanHit = planHit

	if data, err := json.Marshal(res); err == nil {
		result.PlanHash = cache.Hash(data)
	}

	r.Logger.Info("optimized layout",
		"score", res.Score.Overall,
		"placed", len(res.Placement.Placements),
		"iterations", res.Iterations,
		"duration", result.Stats.OptimizeTime)

	// Stage 3: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, problem.Kitchen, res, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// OptimizeWithCacheInfo runs the optimizer with caching and returns cache hit info.
func (r *Runner) OptimizeWithCacheInfo(ctx context.Context, problem Problem, opts Options) (*plan.Result, bool, error) {
	opts.SetOptimizeDefaults()
	r.applyLogger(&opts)

	// Compute cache key
	configData, _ := json.Marshal(opts.Config)
	cacheKey := r.Keyer.LayoutKey(problem.Hash(), opts.PlanKeyOpts(cache.Hash(configData)))

	// Try cache first (unless refresh requested)
	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached plan.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "layout")
				return &cached, true, nil // Cache hit
			}
			// If deserialization fails, fall through to recompute
		}
		observability.Cache().OnCacheMiss(ctx, "layout")
	}

	// Optimize
	observability.Pipeline().OnOptimizeStart(ctx, len(problem.Specs), opts.Iterations)
	start := time.Now()

	opt := engine.NewOptimizer(*opts.Config, opts.Seed)
	opt.Iterations = opts.Iterations
	opt.Threshold = opts.Threshold
	opt.Workers = opts.Workers
	opt.Logger = opts.Logger

	res, err := opt.Run(ctx, problem.Kitchen, problem.Specs, problem.Ratios, problem.Fixed)
	if err != nil {
		observability.Pipeline().OnOptimizeComplete(ctx, 0, time.Since(start), err)
		return nil, false, err
	}
	observability.Pipeline().OnOptimizeComplete(ctx, res.Score.Overall, time.Since(start), nil)

	// Cache the result
	if data, err := json.Marshal(res); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.LayoutTTL)
		observability.Cache().OnCacheSet(ctx, "layout", len(data))
	}

	return res, false, nil // Cache miss
}

// Optimize is a convenience wrapper that calls OptimizeWithCacheInfo and discards the cache hit info.
func (r *Runner) Optimize(ctx context.Context, problem Problem, opts Options) (*plan.Result, error) {
	res, _, err := r.OptimizeWithCacheInfo(ctx, problem, opts)
	return res, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, kitchen plan.Kitchen, res *plan.Result, opts Options) (map[string][]byte, bool, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, false, err
	}
	r.applyLogger(&opts)

	// Compute cache key from the serialized plan
	planData, err := json.Marshal(res)
	if err != nil {
		return nil, false, fmt.Errorf("serialize plan for cache key: %w", err)
	}
	planHash := cache.Hash(planData)

	// Try to get all formats from cache
	allCached := true
	artifacts := make(map[string][]byte)

	if !opts.Refresh {
		for _, format := range opts.Formats {
			cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
			if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
				artifacts[format] = data
			} else {
				allCached = false
				break
			}
		}
		if allCached && len(artifacts) == len(opts.Formats) {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return artifacts, true, nil // All artifacts from cache
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	// Render all formats
	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := buildArtifacts(kitchen, res, opts)
	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	// Cache each format
	for format, data := range rendered {
		cacheKey := r.Keyer.ArtifactKey(planHash, opts.ArtifactKeyOpts(format))
		_ = r.Cache.Set(ctx, cacheKey, data, cache.ArtifactTTL)
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, false, nil // Cache miss
}

// Render is a convenience wrapper that calls RenderWithCacheInfo and discards the cache hit info.
func (r *Runner) Render(ctx context.Context, kitchen plan.Kitchen, res *plan.Result, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, kitchen, res, opts)
	return artifacts, err
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
