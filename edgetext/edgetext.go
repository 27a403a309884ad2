package edgetext

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/cochainlab/cochain/simplex"
)

// edgeExpr is the grammar for one comma-separated token: Label "-" Label.
type edgeExpr struct {
	U string `parser:"@Label"`
	V string `parser:"'-' @Label"`
}

// edgeLexer tokenizes a single edge token. Labels are maximal runs with no
// dash, comma, or whitespace; interior whitespace around the dash is elided.
var edgeLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Label", Pattern: `[^-,\s]+`},
	{Name: "Dash", Pattern: `-`},
	{Name: "whitespace", Pattern: `\s+`},
})

var edgeParser = participle.MustBuild[edgeExpr](participle.Lexer(edgeLexer))

// Parse extracts vertex-label pairs from raw delimited text.
//
// Steps:
//  1. Split raw on commas.
//  2. Trim each token; drop empty ones.
//  3. Parse the token against Label "-" Label; on any parse error the
//     token is skipped without comment.
//
// Returns nil when nothing parses; the caller decides whether an empty
// result deserves a user-facing message.
func Parse(raw string) []simplex.Pair {
	var pairs []simplex.Pair
	for _, tok := range strings.Split(raw, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		expr, err := edgeParser.ParseString("", tok)
		if err != nil {
			// malformed token: skipped by contract
			continue
		}
		pairs = append(pairs, simplex.Pair{U: expr.U, V: expr.V})
	}

	return pairs
}
