// Package catalog holds the immutable equipment reference data: the
// standard equipment specs, per-business default equipment sets, zone
// ratio targets, equipment affinity pairs, and the area-based equipment
// count estimate.
//
// All data here is loaded once at process start and never mutated;
// optimization runs share it by reference.
package catalog
