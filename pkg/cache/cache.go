// Package cache provides the caching layer for layout optimization and
// rendered artifacts. Backends: file (CLI default), Redis (server), and
// a null cache for disabling caching entirely.
//
// Keys are derived from content hashes so identical simulation inputs
// hit identical entries regardless of where they run.
package cache

import (
	"context"
	"time"
)

// Default TTLs per entry kind. Layout results are pure functions of
// their inputs, so the TTLs exist mainly to bound disk usage.
const (
	LayoutTTL   = 7 * 24 * time.Hour
	ArtifactTTL = 30 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The bool reports whether the key was found.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with a TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// LayoutKeyOpts are the optimization parameters that affect a layout
// result. Worker count is deliberately absent: parallel runs produce
// identical output, so they share cache entries.
type LayoutKeyOpts struct {
	Seed       uint64  `json:"seed"`
	Iterations int     `json:"iterations"`
	Threshold  float64 `json:"threshold"`
	ConfigHash string  `json:"config_hash,omitempty"`
}

// ArtifactKeyOpts are the render parameters that affect an artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Grid   bool    `json:"grid,omitempty"`
	Labels bool    `json:"labels,omitempty"`
	Scale  float64 `json:"scale,omitempty"`
}

// Keyer generates cache keys for the pipeline stages.
type Keyer interface {
	// LayoutKey generates a key for an optimization result, from the
	// hash of the simulation inputs (kitchen, equipment, ratios) and
	// the optimizer parameters.
	LayoutKey(problemHash string, opts LayoutKeyOpts) string

	// ArtifactKey generates a key for a rendered artifact, from the
	// layout result hash and the render parameters.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// LayoutKey generates a key for an optimization result.
func (k *DefaultKeyer) LayoutKey(problemHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", problemHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
