package strategy

import (
	"fmt"
	"math/rand"

	"sudoku-deduce/internal/core"
)

type tripleKey [3]int

// NakedTriples: three cells in a group whose hopeful sets union to
// exactly three digits lock those three digits out of the rest of the
// group. A cell with two candidates is offered to every superset triple
// formed by adding one missing digit, the same way a pair can be "one
// digit short" of a triple.
//
// The expansion loop below ranges over 1..8, not 1..9, reproducing a
// known gap in the source strategy: triples whose third member must be 9
// are never found this way. Preserved unchanged; see DESIGN.md.
func NakedTriples(f *core.Field, sel Selection, rng *rand.Rand) []core.Action {
	return iterateGroups(f, sel, rng, func(kind core.GroupKind, idx int, group []*core.Cell) []core.Action {
		triples := make(map[tripleKey][]*core.Cell)
		for _, c := range group {
			switch c.Hopeful.Count() {
			case 3:
				d := sortedDigits(c.Hopeful.Slice())
				triples[tripleKey{d[0], d[1], d[2]}] = append(triples[tripleKey{d[0], d[1], d[2]}], c)
			case 2:
				for missing := 1; missing <= 8; missing++ {
					if c.Hopeful.Has(missing) {
						continue
					}
					d := sortedDigits(append(c.Hopeful.Slice(), missing))
					triples[tripleKey{d[0], d[1], d[2]}] = append(triples[tripleKey{d[0], d[1], d[2]}], c)
				}
			}
		}

		var actions []core.Action
		for key, members := range triples {
			if len(members) != 3 {
				continue
			}
			for _, c := range group {
				if contains(members, c) {
					continue
				}
				for _, toRemove := range key {
					if !c.Hopeful.Has(toRemove) {
						continue
					}
					actions = append(actions, core.Action{
						Kind:      core.RemoveCandidate,
						Digit:     toRemove,
						CellIndex: c.Position.AsIndex(),
						Reason:    fmt.Sprintf("naked triple in same %s %v on %s", kind, key, formatPositions(members)),
					})
				}
			}
		}
		return actions
	})
}

func contains(cells []*core.Cell, target *core.Cell) bool {
	for _, c := range cells {
		if c == target {
			return true
		}
	}
	return false
}
