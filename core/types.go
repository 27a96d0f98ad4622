// Package core: vertex identifiers, edges, sentinel errors and the
// Clustering output type. The Graph type itself lives in graph.go.
package core

import (
	"errors"
	"math"
)

// Sentinel errors for graph construction and validation.
var (
	// ErrVertexRange indicates an edge endpoint outside [0, n).
	ErrVertexRange = errors.New("core: vertex id out of range")

	// ErrSelfLoop indicates an input edge whose endpoints coincide.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates the same undirected edge was supplied twice.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrBadWeight indicates a NaN or negative edge weight.
	ErrBadWeight = errors.New("core: edge weight must be non-negative and not NaN")

	// ErrAsymmetric indicates a one-directional edge in a graph that is
	// required to be symmetric.
	ErrAsymmetric = errors.New("core: graph is not symmetric")
)

// ID identifies a vertex: an unsigned integer in [0, n).
//
// Cluster ids are themselves vertex ids (chosen as representatives), so a
// labeling is a []ID as well.
type ID uint32

// None is the reserved maximum ID. It marks "no cluster", "no neighbor",
// "removed from further rounds", and the parent of a hierarchy-tree root.
const None ID = math.MaxUint32

// Edge is one undirected input edge for FromEdges. Each undirected edge is
// supplied exactly once; both directions are materialized internally.
type Edge struct {
	U, V ID
	W    float64
}

// Clustering is a nested clustering: a sequence of clusters, each a
// sequence of vertex ids. Ordering of clusters and of members within a
// cluster is unspecified unless an operation documents otherwise.
type Clustering [][]ID
