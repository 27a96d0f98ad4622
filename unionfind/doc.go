// Package unionfind implements a lock-free asynchronous disjoint-set
// structure over a fixed universe of vertex ids.
//
// Overview:
//
//   - Unite and FindCompress are safe to call from many goroutines
//     concurrently. The only memory semantics used are atomic load, store
//     and compare-and-swap on individual parent slots.
//   - Linking is by higher id: the root with the larger id is pointed at
//     the smaller, so parent chains are strictly decreasing and the
//     partial path compression in FindCompress can only shorten them.
//   - After quiescence, Finish compresses every element and returns the
//     final representative array: every element shares a representative
//     with everything it was ever united with, transitively.
//
// Complexity:
//
//	– Unite / FindCompress: near-constant amortized under compression.
//	– Finish: O(n) parallel work.
//
// Failure model: operations are pure with respect to errors; out-of-range
// ids are a programmer error.
//
// See also: affinity (connected components over selection sub-graphs) and
// kcore (connectivity hooks while peeling), the two consumers.
package unionfind
