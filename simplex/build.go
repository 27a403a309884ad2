package simplex

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// edgeComparator orders canonical edges lexicographically on (U, V).
// Used as the treeset comparator during construction.
func edgeComparator(a, b interface{}) int {
	ea, eb := a.(Edge), b.(Edge)
	if c := strings.Compare(ea.U, eb.U); c != 0 {
		return c
	}

	return strings.Compare(ea.V, eb.V)
}

// Build normalizes raw vertex-label pairs into a canonical Complex.
//
// Steps, per input pair (u, v):
//  1. Discard the pair when u == v (self-loop) or either side is empty.
//  2. Canonicalize to (min, max) under byte-wise string order.
//  3. Set-insert both endpoints into the vertex set.
//  4. Set-insert the canonical edge into the edge set.
//
// Ordered tree sets drive deduplication and canonical order in one pass;
// the result is materialized into plain slices so the returned Complex is
// immutable data with no live collection behind it.
//
// Build never fails: empty input, or input discarded in full by rule 1,
// yields the empty complex, which is a legitimate value.
//
// Complexity: O(P·log V + P·log E) time, O(V+E) memory.
func Build(pairs []Pair, opts ...Option) *Complex {
	var o buildOptions
	for _, opt := range opts {
		opt(&o)
	}

	verts := treeset.NewWith(utils.StringComparator)
	edges := treeset.NewWith(edgeComparator)

	// 1) Isolated vertices requested via WithVertices.
	for _, id := range o.seed {
		if id == "" {
			continue
		}
		verts.Add(id)
	}

	// 2) Normalize each raw pair.
	for _, p := range pairs {
		if p.U == p.V || p.U == "" || p.V == "" {
			// Self-loops and empty sides contribute nothing, not even a vertex.
			continue
		}
		a, b := p.U, p.V
		if b < a {
			a, b = b, a
		}
		verts.Add(a)
		verts.Add(b)
		edges.Add(Edge{U: a, V: b})
	}

	// 3) Materialize the ordered sets into immutable slices.
	vs := make([]string, 0, verts.Size())
	for _, v := range verts.Values() {
		vs = append(vs, v.(string))
	}
	es := make([]Edge, 0, edges.Size())
	for _, e := range edges.Values() {
		es = append(es, e.(Edge))
	}

	return &Complex{vertices: vs, edges: es}
}
