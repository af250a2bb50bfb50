// SPDX-License-Identifier: MIT
// Package: trdom/genetic
//
// repair.go: randomized local repair of constraint violations.
//
// Contract (SinglePass, the default):
//   • One pass over vertices 0..g.VertexCount()-1 in ascending order on a
//     private working copy; a fix applied while visiting v is visible to every
//     later vertex, earlier vertices are never revisited.
//   • 0 without a neighbor labeled 2 ⇒ one neighbor, drawn uniformly, becomes 2.
//   • 1/2 without a neighbor labeled > 0 ⇒ one neighbor, drawn uniformly, becomes 1.
//   • Any other label ⇒ reset to 0; the vertex is not re-checked in the pass.
//   • Lookup failure ⇒ the vertex is skipped and the failure swallowed.
//   • No neighbors ⇒ nothing can be done; the vertex stays infeasible.
//   • The receiver and the graph are never modified.
//
// FixedPoint repeats passes until one changes nothing, bounded by maxPasses.
// Changes after the first pass only ever raise labels or clear a malformed
// one, so the default bound of 3·len(genes)+2 passes is never the binding
// limit; it only guards against a misbehaving Graph.

package genetic

import (
	"fmt"
	"math/rand"
)

// RepairMode selects how many repair passes run.
type RepairMode int

const (
	// SinglePass runs exactly one ascending pass. Violations may remain.
	SinglePass RepairMode = iota
	// FixedPoint repeats passes until nothing changes.
	FixedPoint
)

// Canonical repair mode names, as accepted by ParseRepairMode.
const (
	singlePassName = "single-pass"
	fixedPointName = "fixed-point"
)

// String implements fmt.Stringer.
func (m RepairMode) String() string {
	switch m {
	case SinglePass:
		return singlePassName
	case FixedPoint:
		return fixedPointName
	default:
		return fmt.Sprintf("RepairMode(%d)", int(m))
	}
}

// ParseRepairMode maps "single-pass" or "fixed-point" to a RepairMode.
func ParseRepairMode(s string) (RepairMode, error) {
	switch s {
	case singlePassName:
		return SinglePass, nil
	case fixedPointName:
		return FixedPoint, nil
	default:
		return 0, fmt.Errorf("ParseRepairMode(%q): %w", s, ErrUnknownRepairMode)
	}
}

// repairConfig is resolved once per FixChromosome call.
type repairConfig struct {
	mode      RepairMode
	maxPasses int // 0 ⇒ derived from the gene count
}

// RepairOption customizes FixChromosome.
type RepairOption func(*repairConfig)

// WithRepairMode selects SinglePass or FixedPoint. Panics on an unknown mode.
func WithRepairMode(m RepairMode) RepairOption {
	if m != SinglePass && m != FixedPoint {
		panic("genetic: WithRepairMode(unknown)")
	}
	return func(c *repairConfig) { c.mode = m }
}

// WithMaxPasses bounds FixedPoint repair. Panics if n < 1.
// It has no effect in SinglePass mode.
func WithMaxPasses(n int) RepairOption {
	if n < 1 {
		panic("genetic: WithMaxPasses(n<1)")
	}
	return func(c *repairConfig) { c.maxPasses = n }
}

// FixChromosome returns a new Chromosome whose labels are a repaired copy of
// c's. Draws come from rng; a nil rng falls back to a time-seeded generator.
//
// Implementation:
//   - Stage 1: Copy the gene buffer (the only buffer this call writes).
//   - Stage 2: Run repair passes per the resolved mode.
//   - Stage 3: Hand the buffer to a new Chromosome, recomputing fitness.
//
// Behavior highlights:
//   - A chromosome already valid on g comes back label-for-label identical
//     and consumes no random draws.
//   - Labels in {0,1,2} never decrease; malformed labels are forced to 0
//     (a later neighbor may still raise that vertex within the same pass).
//
// Complexity: O(passes · (V + E)) time, O(n) space.
func (c *Chromosome) FixChromosome(g Graph, rng *rand.Rand, opts ...RepairOption) *Chromosome {
	cfg := repairConfig{mode: SinglePass}
	for _, opt := range opts {
		opt(&cfg)
	}
	rng = orTimeSeeded(rng)

	buf := c.Genes()
	passes := 1
	if cfg.mode == FixedPoint {
		passes = cfg.maxPasses
		if passes == 0 {
			passes = 3*len(buf) + 2
		}
	}
	for p := 0; p < passes; p++ {
		if !repairPass(g, buf, rng) {
			break
		}
	}

	return newOwnedChromosome(buf)
}

// repairPass runs one ascending pass over buf and reports whether any label changed.
func repairPass(g Graph, buf []Gene, rng *rand.Rand) bool {
	changed := false
	n := g.VertexCount()
	for v := 0; v < n && v < len(buf); v++ {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			continue // unknown vertex: left as is
		}
		switch buf[v] {
		case GeneZero:
			if !hasNeighbor(buf, nbrs, isTwo) && promoteNeighbor(buf, nbrs, GeneTwo, rng) {
				changed = true
			}
		case GeneOne, GeneTwo:
			if !hasNeighbor(buf, nbrs, isPositive) && promoteNeighbor(buf, nbrs, GeneOne, rng) {
				changed = true
			}
		default:
			buf[v] = GeneZero
			changed = true
		}
	}

	return changed
}

// promoteNeighbor sets one uniformly drawn neighbor of the gene buffer to
// label. Neighbors without a gene are never drawn. Reports whether a draw
// happened.
func promoteNeighbor(buf []Gene, nbrs []int, label Gene, rng *rand.Rand) bool {
	candidates := nbrs
	for _, nb := range nbrs {
		if _, ok := geneAt(buf, nb); !ok {
			candidates = inRange(buf, nbrs)
			break
		}
	}
	if len(candidates) == 0 {
		return false
	}
	buf[candidates[rng.Intn(len(candidates))]] = label

	return true
}

// inRange filters nbrs down to ids that index buf.
func inRange(buf []Gene, nbrs []int) []int {
	out := make([]int, 0, len(nbrs))
	for _, nb := range nbrs {
		if _, ok := geneAt(buf, nb); ok {
			out = append(out, nb)
		}
	}

	return out
}
