// Package simplex declares the Pair, Edge, and Complex types plus the
// functional options accepted by Build.
package simplex

// Pair is one raw input edge: an unordered pairing of two vertex labels.
// No canonical form is assumed; Build normalizes it.
type Pair struct {
	// U is one endpoint label.
	U string

	// V is the other endpoint label.
	V string
}

// Edge is a 1-simplex in canonical orientation: U is byte-wise smaller
// than V, and U never equals V.
type Edge struct {
	// U is the lexicographically smaller endpoint.
	U string

	// V is the lexicographically larger endpoint.
	V string
}

// String renders the edge as "u-v", matching the input syntax.
func (e Edge) String() string { return e.U + "-" + e.V }

// Complex is an immutable 1-dimensional simplicial complex:
// a sorted vertex set and a sorted set of canonical edges.
//
// Every vertex appearing in an edge is present in the vertex set;
// the vertex set may additionally contain isolated vertices.
// A Complex is constructed by Build and never mutated afterwards.
type Complex struct {
	vertices []string // sorted ascending, no duplicates
	edges    []Edge   // sorted by (U, V), no duplicates, no loops
}

// Option configures Build via functional arguments.
type Option func(*buildOptions)

// buildOptions holds pre-construction state collected from Options.
type buildOptions struct {
	seed []string // isolated vertices to include
}

// WithVertices seeds the complex with vertices that need not appear in any
// edge. Empty labels are silently skipped; duplicates collapse as usual.
func WithVertices(ids ...string) Option {
	return func(o *buildOptions) {
		o.seed = append(o.seed, ids...)
	}
}
