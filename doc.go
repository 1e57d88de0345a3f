// Package polyskel computes the straight skeleton of a simple polygon:
// the locus traced by every vertex as its edges are offset inward (or
// outward) at unit speed, recording a skeleton-graph edge whenever two
// traces meet.
//
// 🚀 What is polyskel?
//
//	An event-driven geometry kernel that brings together:
//
//	  • A moving-node wavefront ring, advanced by a priority-queue scheduler
//	  • Two event kinds — edge collapse and reflex-vertex split — ordered
//	    by simulation time, then kind, then insertion
//	  • An append-only skeleton graph recording every vertex's trace
//
// ✨ Why choose polyskel?
//
//   - Deterministic     — same polygon, same events, same graph, every run
//   - Arena-based       — stable node pointers, no slice-index churn
//   - Pure Go           — no cgo
//
// Under the hood, everything is organized under five subpackages:
//
//	vec2/      — 2D vector primitives shared by every layer
//	skelgraph/ — the output skeleton graph
//	wavefront/ — the moving-node ring
//	sevent/    — the two event kinds and their geometry
//	engine/    — the scheduler
//
// Apply runs the simulation to completion and returns a Result
// describing the skeleton graph reachable from the polygon's original
// vertices; offset/ builds on a Result to reconstruct cross-sections,
// and loopset/ groups an engine.Context's live moving nodes into their
// boundary loops.
//
//	go get github.com/katalvlaran/polyskel
package polyskel
