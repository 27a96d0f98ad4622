// Package affinity implements one round of parallel affinity clustering:
// every vertex selects its heaviest incident edge above a threshold, the
// selected edges induce a sub-graph whose connected components become new
// super-vertices, and the graph is recompressed with aggregated edge
// weights. Clusters that satisfy user-supplied density or conductance
// conditions are emitted and their vertices removed from further rounds.
//
// Overview of the round data flow:
//
//	Graph + labeling
//	    │ NearestNeighborLinkage     (heaviest-neighbor selection + CC)
//	    ▼
//	new labeling ──► CompressGraph   (aggregate + rescale edge weights)
//	    │                 │
//	    ▼                 ▼
//	FindFinishedClusters  smaller Graph + node weights
//	(emit clusters, mark finished vertices None)
//
// Determinism:
//
//   - Heaviest-neighbor selection breaks ties lexicographically by
//     (weight, neighbor id): if u picks v and v picks u they pick each
//     other, so a mutual 2-cycle always lands in one component.
//   - An edge whose weight equals the threshold is admissible only while
//     the vertex has no candidate yet.
//   - Cluster ids are vertex ids: the smallest vertex id of each selected
//     component, as produced by the union-find representative.
//
// Error handling (sentinel errors):
//
//   - ErrUnimplemented      : PERCENTILE edge aggregation requested.
//   - ErrUnknownAggregation : an EdgeAggregation value outside the enum.
//
// Everything else is a result value: degenerate inputs (no edges, single
// vertex) return the trivial labeling, and the parallel primitives under
// the hood never fail.
//
// See also: core (the CSR graph), parallel (sample sort, boundary
// indices, reduce), unionfind (components on the selection sub-graph).
package affinity
