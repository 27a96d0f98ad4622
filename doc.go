// Package parcluster is an in-memory parallel graph-clustering engine:
// given a weighted, undirected graph it produces flat partitions or
// hierarchical clusterings (dendrograms) over a parameter sweep.
//
// 🚀 What is parcluster?
//
//	A modern, pure-Go clustering toolkit that brings together:
//		• Core primitives: compressed-sparse-row weighted graphs, vertex labelings
//		• Affinity clustering: iterative heaviest-edge contraction with
//		  pluggable edge aggregation and per-cluster finishing conditions
//		• k-core clustering: bucket-based parallel peeling, flat components
//		  and full nd-connectivity trees (two inline variants + post-hoc)
//		• Parallel building blocks: sample sort, boundary indices, reduce,
//		  filter, scan, pack-by-index, bucket priority queue
//		• Lock-free asynchronous union-find with path compression
//
// ✨ Why choose parcluster?
//
//   - Deterministic – every tie-break is fixed and documented
//   - Rock-solid guarantees – symmetry and weight-conservation invariants
//   - Pure Go – no cgo, no hidden deps
//   - Parallel by construction – one parallel-for, everything else composes
//
// Under the hood, everything is organized in topic subpackages:
//
//	core/      — CSR Graph, vertex IDs, the None sentinel, labelings
//	parallel/  — parallel-for and the shared parallel primitives
//	unionfind/ — lock-free concurrent disjoint sets
//	affinity/  — nearest-neighbor linkage, compression, cluster stats
//	kcore/     — coreness peeling, flat and hierarchical clusterings
//
// Quick ASCII example:
//
//	    0───1
//	    │ ╳ │        a 4-clique: every vertex has coreness 3,
//	    2───3        so kcore.Cluster with Threshold 3 emits {0,1,2,3}.
//
// Dive into the per-package doc.go files for full examples, complexity
// notes and the exact determinism contracts.
//
//	go get github.com/katalvlaran/parcluster
package parcluster
