// Package render formats complexes and their invariants into the
// human-readable chat messages the bot sends. All localization of the
// β₀/β₁/χ symbols lives here; the mathematical packages never format text.
package render
