// Package kcore: configuration, the connectivity-method enumeration and
// the peeling statistics type.
package kcore

import "github.com/katalvlaran/parcluster/core"

// ConnectivityMethod selects how the nd-connectivity tree is built by
// HierarchicalCluster.
type ConnectivityMethod int

const (
	// ConnectivityNone builds the tree post hoc from the coreness array,
	// re-running a descending bucket scan with its own union-find.
	ConnectivityNone ConnectivityMethod = iota

	// ConnectivityInline records merges during peeling with one union-find
	// per distinct core value.
	ConnectivityInline

	// ConnectivityEfficientInline records merges during peeling with a
	// single union-find and a CAS-updated links array.
	ConnectivityEfficientInline
)

// String returns the configuration name of the connectivity method.
func (m ConnectivityMethod) String() string {
	switch m {
	case ConnectivityNone:
		return "NONE"
	case ConnectivityInline:
		return "INLINE"
	case ConnectivityEfficientInline:
		return "EFFICIENT_INLINE"
	default:
		return "UNKNOWN"
	}
}

// defaultNumBuckets is the open-bucket span hint handed to the queue.
const defaultNumBuckets = 16

// Options configures k-core clustering.
//
// Threshold          – minimum coreness for a vertex to appear in the
//
//	flat clustering (Cluster only).
//
// NumBuckets         – capacity hint for the bucket priority queue.
// ConnectivityMethod – tree construction variant (HierarchicalCluster).
type Options struct {
	Threshold          uint32
	NumBuckets         int
	ConnectivityMethod ConnectivityMethod
}

// Option configures Options. All Option functions modify the pointed
// Options in place.
type Option func(*Options)

// WithThreshold sets the minimum coreness for the flat clustering.
func WithThreshold(t uint32) Option {
	return func(o *Options) { o.Threshold = t }
}

// WithNumBuckets sets the bucket-span hint for the peeling queue.
func WithNumBuckets(n int) Option {
	return func(o *Options) { o.NumBuckets = n }
}

// WithConnectivityMethod sets the hierarchy construction variant.
func WithConnectivityMethod(m ConnectivityMethod) Option {
	return func(o *Options) { o.ConnectivityMethod = m }
}

// DefaultOptions returns Options with a zero threshold, the default
// bucket span, and post-hoc tree construction.
func DefaultOptions() Options {
	return Options{
		Threshold:          0,
		NumBuckets:         defaultNumBuckets,
		ConnectivityMethod: ConnectivityNone,
	}
}

// PeelStats reports the peeling trajectory: the number of rounds (rho)
// and the largest bucket id seen (the degeneracy of the graph).
type PeelStats struct {
	Rounds int
	KMax   uint32
}

// CoresFunc reports the effective core value of a vertex during one
// peeling round: its degree if the vertex has peeled (or peels this
// round), and n+1 ("above everything") otherwise.
type CoresFunc func(a core.ID) uint32

// ConnectHook observes peeling rounds to build connectivity inline.
//
// Init(k) is called before any Link of a round whose bucket id k differs
// from the previous round's (k = 0 excepted). Link(u, v, cores) is called
// for every edge from an active vertex u to a neighbor v that has already
// peeled or peels this round; it must be safe for concurrent use.
type ConnectHook interface {
	Init(bucket uint32)
	Link(a, b core.ID, cores CoresFunc)
}
