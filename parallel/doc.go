// Package parallel provides the shared parallel building blocks used by
// every clusterer in parcluster: a single parallel-for, an associative
// reduce, a parallel sample sort, boundary-index extraction, filtering,
// index packing, an exclusive prefix sum, and the bucket priority queue
// that drives k-core peeling.
//
// Overview:
//
//   - For is the only place a task boundary exists. Work over [0, n) is
//     chunked across runtime.GOMAXPROCS(0) goroutines; independence of
//     iterations is the caller's contract.
//   - Reduce collapses in an unspecified tree shape, so combine must be
//     associative.
//   - SampleSort fixes a total order through the supplied comparator and
//     is not stable; ties must be broken inside the comparator itself.
//   - BoundaryIndices returns the sorted indices where consecutive
//     elements belong to different equivalence classes, followed by n, so
//     consecutive result pairs bound equivalence-class runs.
//   - Buckets is a lazy bucket priority queue keyed by current degree:
//     stale entries are skipped at pop time, and the same bucket id can be
//     returned across several rounds as vertices fall back into it.
//
// Failure model:
//
//   - Every primitive is pure and never fails. Empty inputs produce empty
//     outputs, and Reduce of an empty sequence is its identity.
//
// Complexity:
//
//	– For / FilterOut / PackIndex / ScanInplace: O(n) work.
//	– Reduce: O(n) work, O(P) combine depth for P workers.
//	– SampleSort: O(n log n) work.
//	– BoundaryIndices: O(n) work.
//
// See also: affinity and kcore, whose round structure is expressed
// entirely through these primitives.
package parallel
