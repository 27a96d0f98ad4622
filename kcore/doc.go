// Package kcore computes coreness by bucket-based parallel peeling and
// turns it into either a flat clustering (connected components of the
// ≥-threshold core) or a full nd-connectivity tree describing how
// components merge as the core value decreases.
//
// Overview:
//
//   - Peel processes vertices in rounds keyed by the current minimum
//     degree: the popped bucket forms the active set, its edges reduce
//     still-live neighbors' degrees through an atomic histogram, and
//     moved neighbors re-enter the queue at max(newDegree, k). The final
//     degree array is the coreness of every vertex.
//   - A ConnectHook observes the rounds: Init(k) fires when the bucket id
//     changes, Link(u, v, cores) fires for every active-set edge whose
//     far endpoint has already peeled or peels this round. Two hooks are
//     provided: ConnectWhilePeeling (one union-find per distinct core
//     value) and EfficientConnectWhilePeeling (a single union-find plus a
//     CAS-updated links array). Each hook post-processes its state into
//     the nd-connectivity tree. ConnectivityTree builds the same tree
//     post hoc from the coreness array alone.
//   - All three constructions produce semantically equivalent trees up to
//     renaming of internal node ids: they induce the same merge partition
//     at each coreness level.
//
// The nd-connectivity tree is an array T: for a vertex i < n, T[i] is the
// internal node into which i first merged; internal nodes point to their
// own parents, and T[root] = core.None. Every referenced node id has a
// slot, so len(T) is at least n and at most (levels+1)·n.
//
// Determinism: coreness is deterministic; internal node ids depend on
// scheduling only through union-find representatives, and the merge
// partitions they induce do not.
//
// Complexity:
//
//	– Peel: O(m + n) work across all rounds, plus bucket maintenance.
//	– Tree constructions: O(levels·n + m) work.
//
// See also: parallel (the bucket priority queue), unionfind (the
// connectivity state shared by every variant).
package kcore
