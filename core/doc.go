// Package core defines the central graph representation shared by every
// clusterer in parcluster: a compressed-sparse-row (CSR) weighted graph,
// the vertex identifier type ID with its None sentinel, and the nested
// Clustering output type.
//
// Overview:
//
//   - Graph is immutable once built. An offsets array of length n+1 and
//     flat target/weight arrays of length m store, for each vertex, its
//     incident edges sorted by neighbor id.
//   - Graphs are symmetric: (u,v,w) is present iff (v,u,w) is present with
//     the identical weight. FromEdges enforces this by materializing both
//     directions of each undirected input edge; the trusted FromCSR
//     constructor assumes it.
//   - ID is uint32; None (the largest representable ID) marks "no cluster",
//     "no neighbor", "removed", and hierarchy-tree roots.
//
// Complexity:
//
//	– FromEdges: O(m log m) time for the adjacency sort, O(n + m) space.
//	– Degree / Neighbors: O(1); ReduceNeighbors / MapNeighbors: O(deg(v)).
//
// Error handling (sentinel errors):
//
//   - ErrVertexRange:    an edge endpoint is outside [0, n).
//   - ErrSelfLoop:       an input edge has identical endpoints.
//   - ErrDuplicateEdge:  the same undirected edge appears twice.
//   - ErrBadWeight:      an edge weight is NaN or negative.
//   - ErrAsymmetric:     CheckSymmetric found a one-directional edge.
//
// Thread safety:
//
//   - A built Graph is read-only and safe for concurrent use. Construction
//     is single-goroutine.
//
// See also: parallel (the primitives that iterate graphs in parallel),
// affinity and kcore (the clusterers consuming this representation).
package core
