// Package builder provides reusable “functional‐options”‐style graph
// constructors on top of core. It centralizes the fixtures used to exercise
// the genetic package (cycles for the classic C_5 scenario, isolated vertices
// for the infeasible cases, random sparse graphs for property tests), keeping
// them DRY, testable, and deterministic.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:   creates a core.Graph and applies Constructors in order.
//     – Constructor:  func(*core.Graph, builderConfig) error.
//   - Configuration primitives:
//     – BuilderOption: a function that mutates builderConfig before use.
//     – WithSeed / WithRand: explicit RNG for stochastic constructors.
//     – WithIDOffset: shift all generated ids to compose disjoint pieces.
//   - Topologies (ids offset+0 .. offset+n-1 unless noted):
//     – Isolated(n):        n vertices, no edges.
//     – Path(n), Cycle(n):  P_n, C_n.
//     – Star(n):            hub offset+0 and n-1 leaves.
//     – Wheel(n):           rim C_n on offset+0..n-1, hub offset+n.
//     – Complete(n):        K_n.
//     – RandomSparse(n,p):  Erdős–Rényi G(n,p).
//
// Guarantees:
//
//   - Idempotent vertices: re-adding an existing vertex is a no-op in core.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Structured runtime errors wrapping sentinels with "<Method>: ..." context.
//   - Deterministic output for the same constructors, order and seed.
package builder
