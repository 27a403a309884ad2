// Package simplex builds canonical 1-dimensional simplicial complexes from
// raw, possibly messy edge input.
//
// What
//
//   - Build consumes a sequence of unordered vertex-label pairs and returns a
//     Complex: a deduplicated, sorted vertex set plus a deduplicated edge set
//     in canonical orientation (smaller label first).
//   - Self-loop pairs (u == v) are discarded entirely: they contribute
//     neither an edge nor a vertex. A self-loop on an otherwise-unseen vertex
//     therefore drops that vertex from the complex.
//   - Pairs with an empty side are ignored; labels are otherwise opaque.
//   - WithVertices seeds isolated vertices that no edge touches.
//
// Why
//
//   - Semantically equal inputs must produce byte-identical complexes, so
//     downstream invariant computation and rendering are reproducible and
//     test assertions are stable.
//   - {a,b} and {b,a} are the same 1-simplex; orientation is a storage
//     artifact, not information, and is normalized away here.
//
// Determinism
//
//	Vertices() is sorted lexicographically ascending; Edges() is sorted
//	lexicographically on the canonical (U, V) pair. Insertion order of the
//	input never influences the result.
//
// Complexity (P = |pairs|, V = |Vertices|, E = |Edges|)
//
//   - Time:   O(P·log V + P·log E)   (ordered-set insertion per pair)
//   - Memory: O(V + E)               (one slice each in the result)
//
// Usage
//
//	c := simplex.Build([]simplex.Pair{{U: "b", V: "a"}, {U: "b", V: "c"}})
//	c.Vertices() // [a b c]
//	c.Edges()    // [a-b b-c]
//
// Errors
//
//   - None. Build is a total function; empty or fully-discarded input yields
//     the valid empty complex.
package simplex
