// Package betti computes the topological invariants of a 1-dimensional
// simplicial complex: β₀, β₁, and the Euler characteristic χ.
//
// What
//
//   - Compute consumes a simplex.Complex and returns a Result holding:
//   - Beta0: number of connected components
//   - Beta1: number of independent 1-cycles, via β₁ = E − V + β₀
//   - Chi:   Euler characteristic, via χ = β₀ − β₁
//   - Supports an observation hook, WithOnComponent, fired once per
//     discovered component with its traversal root and size.
//
// Why
//
//   - β₀/β₁/χ classify a graph's shape: how many pieces it has and how many
//     independent loops it carries, in O(V + E) time with exact integers.
//   - β₁ is a closed-form count derived from the Euler identity for
//     1-complexes; no cycle basis is ever constructed.
//
// Determinism
//
//	The result is a pure function of the complex's vertex and edge sets.
//	Traversal order cannot influence any counter, and the complex is
//	canonicalized upstream, so repeated calls are bit-for-bit identical.
//
// Derivation order
//
//	χ is computed from β₀ and β₁, not shortcut to V − E. The two agree for
//	plain 1-complexes, but the documented derivation path keeps them free
//	to diverge should β₁'s formula ever change (multi-edges, weights).
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Time:   O(V + E)   (each vertex and edge seen at most once)
//   - Memory: O(V + E)   (adjacency map, visited set, work-list stack)
//
// Usage
//
//	c := simplex.Build([]simplex.Pair{{U: "a", V: "b"}, {U: "b", V: "c"}, {U: "c", V: "a"}})
//	res, err := betti.Compute(c)
//	if err != nil {
//	    // only betti.ErrNilComplex is possible
//	}
//	// res.Beta0 == 1, res.Beta1 == 1, res.Chi == 0
//
// Errors
//
//   - ErrNilComplex if the complex pointer is nil. Every actual complex,
//     including the empty one, computes successfully.
package betti
