package engine

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/galleykit/galley/pkg/config"
	"github.com/galleykit/galley/pkg/errors"
	"github.com/galleykit/galley/pkg/plan"
)

// Optimizer defaults.
const (
	DefaultIterations = 100
	DefaultThreshold  = 95.0
)

// ratioJitter is the per-iteration uniform perturbation applied to
// each zone ratio, and the clamp range it is held to before
// renormalizing.
const (
	ratioJitter   = 0.05
	ratioClampMin = 0.10
	ratioClampMax = 0.50
)

// Optimizer drives the multi-restart search: every iteration
// re-partitions with perturbed ratios, re-places, re-validates, and
// re-scores, keeping the best layout seen. Identical inputs and seed
// always reproduce the same result, including with Workers > 1, since
// each iteration derives its random stream from the iteration index.
type Optimizer struct {
	Config     config.Config
	Iterations int
	Seed       uint64
	Threshold  float64
	Workers    int
	Logger     *log.Logger
}

// NewOptimizer returns an optimizer with default iteration settings.
func NewOptimizer(cfg config.Config, seed uint64) *Optimizer {
	return &Optimizer{
		Config:     cfg,
		Iterations: DefaultIterations,
		Seed:       seed,
		Threshold:  DefaultThreshold,
		Workers:    1,
		Logger:     log.Default(),
	}
}

// outcome is one iteration's full pipeline product.
type outcome struct {
	layout     *Layout
	violations []plan.Violation
	score      plan.ScoreBreakdown
}

// Run executes the optimization loop and returns the best layout found.
// The ratio map is the center of the per-iteration perturbation. Fixed
// elements are optional. Cancellation is honored between iterations.
func (o *Optimizer) Run(ctx context.Context, kitchen plan.Kitchen, specs []plan.EquipmentSpec, ratios map[plan.ZoneType]float64, fixed []plan.FixedElement) (*plan.Result, error) {
	if len(kitchen.Vertices) < 3 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "kitchen polygon needs at least 3 vertices, got %d", len(kitchen.Vertices))
	}
	if !plan.ValidShapes[kitchen.Shape] {
		return nil, errors.New(errors.ErrCodeInvalidShape, "unknown kitchen shape: %q", kitchen.Shape)
	}
	if err := ValidateRatios(ratios); err != nil {
		return nil, err
	}
	if len(specs) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no equipment to place")
	}

	iterations := o.Iterations
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	threshold := o.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	start := time.Now()
	var outcomes []outcome
	if o.Workers > 1 && iterations > 1 {
		outcomes = o.runParallel(ctx, kitchen, specs, ratios, fixed, iterations)
	} else {
		outcomes = o.runSequential(ctx, kitchen, specs, ratios, fixed, iterations, threshold)
	}
	if len(outcomes) == 0 {
		return nil, errors.Wrap(errors.ErrCodeTimeout, ctx.Err(), "optimization canceled before any iteration completed")
	}

	// Reduce in iteration order so parallel runs match sequential ones
	// exactly, including the early-stop cut.
	var best outcome
	trace := make([]float64, 0, len(outcomes))
	for i, out := range outcomes {
		trace = append(trace, out.score.Overall)
		if i == 0 || out.score.Overall > best.score.Overall {
			best = out
			if o.Logger != nil {
				o.Logger.Debug("new best layout",
					"iteration", i,
					"score", out.score.Overall,
					"placed", len(out.layout.Items),
				)
			}
		}
		if out.score.Overall >= threshold {
			break
		}
	}

	return &plan.Result{
		Zones:      best.layout.Zones,
		Placement:  best.layout.Result(),
		Violations: best.violations,
		Score:      best.score,
		Iterations: len(trace),
		Elapsed:    time.Since(start),
		Trace:      trace,
	}, nil
}

func (o *Optimizer) runSequential(ctx context.Context, kitchen plan.Kitchen, specs []plan.EquipmentSpec, ratios map[plan.ZoneType]float64, fixed []plan.FixedElement, iterations int, threshold float64) []outcome {
	var outcomes []outcome
	for i := range iterations {
		if ctx.Err() != nil {
			break
		}
		out := o.runIteration(kitchen, specs, ratios, fixed, i)
		outcomes = append(outcomes, out)
		if out.score.Overall >= threshold {
			break
		}
	}
	return outcomes
}

// runParallel fans the iterations out over a worker pool. Workers may
// compute iterations past the early-stop point; the ordered reduce in
// Run discards them, so the visible result is identical to a
// sequential run.
func (o *Optimizer) runParallel(ctx context.Context, kitchen plan.Kitchen, specs []plan.EquipmentSpec, ratios map[plan.ZoneType]float64, fixed []plan.FixedElement, iterations int) []outcome {
	outcomes := make([]outcome, iterations)
	indexes := make(chan int)

	var wg sync.WaitGroup
	for range o.Workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexes {
				outcomes[i] = o.runIteration(kitchen, specs, ratios, fixed, i)
			}
		}()
	}

	dispatched := 0
	for i := range iterations {
		if ctx.Err() != nil {
			break
		}
		indexes <- i
		dispatched++
	}
	close(indexes)
	wg.Wait()

	return outcomes[:dispatched]
}

// runIteration runs one full partition-place-validate-score pass. The
// random stream is derived from the base seed plus the iteration index,
// never from shared state, so iterations are order-independent.
func (o *Optimizer) runIteration(kitchen plan.Kitchen, specs []plan.EquipmentSpec, ratios map[plan.ZoneType]float64, fixed []plan.FixedElement, i int) outcome {
	s := o.Seed + uint64(i)
	rng := rand.New(rand.NewPCG(s, s^0xdeadbeef))

	perturbed := perturbRatios(rng, ratios)
	zones := Partition(kitchen, perturbed)

	placer := &Placer{cfg: o.Config, rng: rng}
	layout := placer.Place(zones, specs, fixed)

	violations := NewValidator(o.Config).Validate(layout, fixed)
	score := NewScorer(o.Config).Score(kitchen, layout, violations)

	return outcome{layout: layout, violations: violations, score: score}
}

// perturbRatios jitters each zone ratio uniformly, clamps it to a sane
// band, and renormalizes the map to sum to 1. Zones are visited in
// workflow order so the random stream is consumed deterministically.
func perturbRatios(rng *rand.Rand, base map[plan.ZoneType]float64) map[plan.ZoneType]float64 {
	out := make(map[plan.ZoneType]float64, len(base))
	total := 0.0
	for _, zt := range plan.WorkflowOrder {
		v := base[zt] + (rng.Float64()*2-1)*ratioJitter
		v = min(ratioClampMax, max(ratioClampMin, v))
		out[zt] = v
		total += v
	}
	for zt, v := range out {
		out[zt] = v / total
	}
	return out
}
