package render

import (
	"fmt"
	"strings"

	"github.com/cochainlab/cochain/betti"
	"github.com/cochainlab/cochain/simplex"
)

// Summary renders the full Markdown summary of a complex and its
// invariants. Since the complex is canonical, the output is deterministic
// for semantically equal inputs.
func Summary(c *simplex.Complex, res betti.Result) string {
	verts := c.Vertices()
	edges := c.Edges()
	edgeText := make([]string, len(edges))
	for i, e := range edges {
		edgeText[i] = e.String()
	}

	var b strings.Builder
	b.WriteString("**Simplicial complex summary**\n")
	fmt.Fprintf(&b, "• Vertices: %s\n", strings.Join(verts, ", "))
	fmt.Fprintf(&b, "• Edges: %s\n", strings.Join(edgeText, ", "))
	fmt.Fprintf(&b, "• β₀ (components): %d\n", res.Beta0)
	fmt.Fprintf(&b, "• β₁ (1-dimensional holes): %d\n", res.Beta1)
	fmt.Fprintf(&b, "• Euler characteristic χ = β₀ − β₁ = %d\n\n", res.Chi)
	b.WriteString("_Note: this is a simplified 1D example, like a graph viewed as a simplicial complex._")

	return b.String()
}

// NoEdges is the reply when the user's input yields no parseable edges.
// An empty parse is a messaging concern, not a computation error.
func NoEdges() string {
	return "I couldn't parse any edges. Use format like: `a-b, b-c, c-a`."
}

// Greeting is the reply to the hello command; mention is the caller's
// chat-platform mention string.
func Greeting(mention string) string {
	return fmt.Sprintf("Hi %s! I'm your algebraic topology bot 🌀", mention)
}
