// Package betti computes β₀, β₁, and χ for a canonical 1-dimensional
// simplicial complex via iterative graph traversal and the Euler identity.
package betti

import "github.com/cochainlab/cochain/simplex"

// Compute derives the invariants of c.
//
// Steps:
//  1. Build an adjacency map from the edge set (each edge both ways).
//  2. Count components: for every unvisited vertex, traverse everything
//     reachable from it with an explicit stack and a visited set, then
//     bump β₀ once per traversal root.
//  3. β₁ = E − V + β₀ (Euler identity for 1-complexes).
//  4. χ = β₀ − β₁.
//
// The traversal is iterative to sidestep stack-depth limits on large
// inputs; vertices are marked visited on push so no vertex is stacked
// twice. Returns ErrNilComplex for a nil complex; never fails otherwise.
//
// Complexity: O(V + E) time, O(V + E) memory.
func Compute(c *simplex.Complex, opts ...Option) (Result, error) {
	if c == nil {
		return Result{}, ErrNilComplex
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	verts := c.Vertices()

	// 1) Adjacency map: each canonical edge contributes both directions.
	adj := make(map[string][]string, len(verts))
	for _, e := range c.Edges() {
		adj[e.U] = append(adj[e.U], e.V)
		adj[e.V] = append(adj[e.V], e.U)
	}

	// 2) Exhaustive traversal; every unvisited root is a new component.
	visited := make(map[string]struct{}, len(verts))
	stack := make([]string, 0, len(verts))
	beta0 := 0
	for _, root := range verts {
		if _, seen := visited[root]; seen {
			continue
		}
		beta0++

		size := 0
		stack = append(stack[:0], root)
		visited[root] = struct{}{}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			size++
			for _, nbr := range adj[id] {
				if _, seen := visited[nbr]; seen {
					continue
				}
				visited[nbr] = struct{}{}
				stack = append(stack, nbr)
			}
		}
		o.OnComponent(root, size)
	}

	// 3) Euler identity for 1-complexes, summed across components via β₀.
	beta1 := c.EdgeCount() - c.VertexCount() + beta0

	// 4) χ from the documented derivation path, not the V−E shortcut.
	chi := beta0 - beta1

	return Result{Beta0: beta0, Beta1: beta1, Chi: chi}, nil
}
