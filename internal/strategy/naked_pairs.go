package strategy

import (
	"fmt"
	"math/rand"

	"sudoku-deduce/internal/core"
)

type digitKey [2]int

// NakedPairs: two cells in a group sharing the same two-candidate hopeful
// set lock those two digits out of every other cell in the group.
func NakedPairs(f *core.Field, sel Selection, rng *rand.Rand) []core.Action {
	return iterateGroups(f, sel, rng, func(kind core.GroupKind, idx int, group []*core.Cell) []core.Action {
		pairs := make(map[digitKey][]*core.Cell)
		for _, c := range group {
			if c.Hopeful.Count() != 2 {
				continue
			}
			d := sortedDigits(c.Hopeful.Slice())
			pairs[digitKey{d[0], d[1]}] = append(pairs[digitKey{d[0], d[1]}], c)
		}

		var actions []core.Action
		for key, members := range pairs {
			if len(members) != 2 {
				continue
			}
			for _, c := range group {
				if c == members[0] || c == members[1] {
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
						Reason:    fmt.Sprintf("naked pair in same %s %v on %s", kind, key, formatPositions(members)),
					})
				}
			}
		}
		return actions
	})
}
