// Package cochain is a small toolkit for 1-dimensional simplicial complexes —
// graphs viewed through the lens of algebraic topology — with a Discord chat
// front end on top.
//
// 🚀 What is cochain?
//
//	A deterministic topology calculator plus thin chat glue:
//		• simplex/  — build a canonical complex (sorted vertices, oriented edges)
//		• betti/    — β₀ (components), β₁ (independent cycles), χ = β₀ − β₁
//		• edgetext/ — parse edge lists like "a-b, b-c, c-a"
//		• render/   — human-readable summaries of a complex and its invariants
//		• flavor/   — random "cohomology mood" one-liners
//
// ✨ Why cochain?
//
//   - Pure functions – every computation is a value in, a value out
//   - Exact integers – no floating point anywhere in the math
//   - Reproducible – canonical ordering makes outputs byte-stable
//
// Quick ASCII example:
//
//	    a───b        d───e
//	     ╲  │         ╲  │
//	      ╲ │          ╲ │
//	       ╲c           ╲f
//
//	two triangles: β₀ = 2, β₁ = 2, χ = 0.
//
// The app glue (Discord session, command dispatch, presence) lives under
// internal/ and cmd/cochain; the packages above have no I/O of their own.
//
//	go get github.com/cochainlab/cochain
package cochain
