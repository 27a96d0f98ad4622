// Package affinity: configuration, sentinel errors and the per-cluster
// statistics type for the affinity round engine.
package affinity

import (
	"errors"

	"github.com/katalvlaran/parcluster/core"
	"github.com/katalvlaran/parcluster/parallel"
)

// Sentinel errors returned by the affinity round engine.
var (
	// ErrUnimplemented indicates PERCENTILE edge aggregation was requested;
	// percentile aggregation is not implemented.
	ErrUnimplemented = errors.New("affinity: PERCENTILE edge aggregation is unimplemented")

	// ErrUnknownAggregation indicates an EdgeAggregation value outside the
	// declared enumeration.
	ErrUnknownAggregation = errors.New("affinity: unknown edge aggregation mode")
)

// EdgeAggregation selects how parallel edges collapsing onto the same
// compressed edge are combined, and how the combined weight is rescaled.
type EdgeAggregation int

const (
	// Max keeps the maximum contributing weight.
	Max EdgeAggregation = iota

	// Sum adds the contributing weights.
	Sum

	// DefaultAverage adds weights pre-scaled by the product of endpoint
	// node weights, then divides by the product of compressed node weights.
	DefaultAverage

	// CutSparsity adds weights pre-scaled by the minimum endpoint node
	// weight, then divides by the minimum compressed node weight.
	CutSparsity

	// Percentile is declared for configuration compatibility; requesting
	// it yields ErrUnimplemented.
	Percentile
)

// String returns the configuration name of the aggregation mode.
func (a EdgeAggregation) String() string {
	switch a {
	case Max:
		return "MAX"
	case Sum:
		return "SUM"
	case DefaultAverage:
		return "DEFAULT_AVERAGE"
	case CutSparsity:
		return "CUT_SPARSITY"
	case Percentile:
		return "PERCENTILE"
	default:
		return "UNKNOWN"
	}
}

// ActiveClusterCondition is one bag of optional lower bounds. A cluster
// satisfies the condition when every specified bound holds. At least one
// bound should be set; a condition with no bounds is vacuously satisfied,
// keeping every cluster active.
type ActiveClusterCondition struct {
	// MinDensity, when non-nil, requires cluster density ≥ *MinDensity.
	MinDensity *float64

	// MinConductance, when non-nil, requires conductance ≥ *MinConductance.
	MinConductance *float64
}

// Float64 returns a pointer to v, for building ActiveClusterCondition
// literals.
func Float64(v float64) *float64 { return &v }

// Options configures the affinity round engine.
//
// EdgeAggregation         – how compressed edge weights are combined.
// WeightThreshold         – edges must exceed this weight to be selected
//
//	(equality is admissible only while a vertex has no candidate yet).
//
// ActiveClusterConditions – ordered conditions; a cluster stays active if
//
//	any condition is satisfied, and is finished when none is.
type Options struct {
	EdgeAggregation         EdgeAggregation
	WeightThreshold         float64
	ActiveClusterConditions []ActiveClusterCondition
}

// Option configures Options. All Option functions modify the pointed
// Options in place.
type Option func(*Options)

// WithEdgeAggregation sets the edge aggregation mode.
func WithEdgeAggregation(a EdgeAggregation) Option {
	return func(o *Options) { o.EdgeAggregation = a }
}

// WithWeightThreshold sets the selection weight threshold.
func WithWeightThreshold(t float64) Option {
	return func(o *Options) { o.WeightThreshold = t }
}

// WithActiveClusterCondition appends one active-cluster condition.
// Conditions are evaluated in the order they were appended.
func WithActiveClusterCondition(c ActiveClusterCondition) Option {
	return func(o *Options) {
		o.ActiveClusterConditions = append(o.ActiveClusterConditions, c)
	}
}

// DefaultOptions returns Options with DefaultAverage aggregation, a zero
// weight threshold, and no active-cluster conditions (no cluster is ever
// finished early).
func DefaultOptions() Options {
	return Options{
		EdgeAggregation: DefaultAverage,
		WeightThreshold: 0,
	}
}

// Stats holds the per-cluster statistics used by the finishing decision.
//
// Density     – intra-cluster weight over C(size, 2); 0 for size < 2.
// Conductance – inter-cluster weight over min(volume, total − volume);
//
//	1.0 when the denominator falls below 1e-6.
type Stats struct {
	Density     float64
	Conductance float64
}

// NumCompressedVertices returns 1 + the maximum non-None label, i.e. the
// vertex count of the compressed graph. A labeling that is entirely None
// yields 0.
//
// Complexity: O(n) parallel work.
func NumCompressedVertices(labels []core.ID) core.ID {
	maxLabel := parallel.Reduce(labels, func(a, b core.ID) core.ID {
		if a == core.None {
			return b
		}
		if b == core.None {
			return a
		}
		if a > b {
			return a
		}

		return b
	}, core.None)

	return maxLabel + 1 // None wraps to 0 when every label is None
}
