// File: methods.go
// Role: read-only queries over a constructed Complex.
//
// Determinism:
//   - Vertices() and Edges() return fresh copies in canonical sorted order.
//
// Concurrency:
//   - A Complex is immutable after Build, so every method here is safe for
//     concurrent use without locking.
package simplex

import "sort"

// Vertices returns the vertex labels, sorted ascending. The slice is a
// copy; callers may mutate it freely.
// Complexity: O(V)
func (c *Complex) Vertices() []string {
	if c == nil {
		return nil
	}

	return append([]string(nil), c.vertices...)
}

// Edges returns the canonical edges, sorted by (U, V). The slice is a
// copy; callers may mutate it freely.
// Complexity: O(E)
func (c *Complex) Edges() []Edge {
	if c == nil {
		return nil
	}

	return append([]Edge(nil), c.edges...)
}

// VertexCount reports |V|, counting isolated vertices.
// Complexity: O(1)
func (c *Complex) VertexCount() int {
	if c == nil {
		return 0
	}

	return len(c.vertices)
}

// EdgeCount reports |E|.
// Complexity: O(1)
func (c *Complex) EdgeCount() int {
	if c == nil {
		return 0
	}

	return len(c.edges)
}

// HasVertex reports whether id is a vertex of the complex.
// Complexity: O(log V)
func (c *Complex) HasVertex(id string) bool {
	if c == nil {
		return false
	}
	i := sort.SearchStrings(c.vertices, id)

	return i < len(c.vertices) && c.vertices[i] == id
}

// HasEdge reports whether the complex contains the edge {u, v}, in either
// endpoint order. Self-queries (u == v) are always false since canonical
// edges never loop.
// Complexity: O(log E)
func (c *Complex) HasEdge(u, v string) bool {
	if c == nil || u == v {
		return false
	}
	if v < u {
		u, v = v, u
	}
	i := sort.Search(len(c.edges), func(k int) bool {
		e := c.edges[k]

		return e.U > u || (e.U == u && e.V >= v)
	})

	return i < len(c.edges) && c.edges[i] == Edge{U: u, V: v}
}
