// Package edgetext turns raw delimited edge-list text, as typed by a chat
// user — "a-b, b-c, c-a" — into vertex-label pairs for simplex.Build.
//
// The input splits on commas; each token must match the grammar
// Label "-" Label, where a label is any run of characters excluding '-',
// ',', and whitespace. Tokens that do not match (missing separator, empty
// side, trailing garbage) are skipped silently: lenient parsing is the
// contract, and "nothing parsed" is an empty result, not an error.
package edgetext
