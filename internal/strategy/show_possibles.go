package strategy

import (
	"fmt"
	"math/rand"

	"sudoku-deduce/internal/core"
)

// ShowPossibles eliminates a group's placed values from every other
// cell's hopeful set: the straightforward constraint every solved digit
// imposes on its peers.
func ShowPossibles(f *core.Field, sel Selection, rng *rand.Rand) []core.Action {
	return iterateGroups(f, sel, rng, func(kind core.GroupKind, idx int, group []*core.Cell) []core.Action {
		var actions []core.Action
		for _, placed := range group {
			if placed.Value == 0 {
				continue
			}
			for _, other := range group {
				if other == placed {
					continue
				}
				if !other.Hopeful.Has(placed.Value) {
					continue
				}
				actions = append(actions, core.Action{
					Kind:      core.RemoveCandidate,
					Digit:     placed.Value,
					CellIndex: other.Position.AsIndex(),
					Reason:    fmt.Sprintf("value %d is present in the same %s at %s", placed.Value, kind, formatPos(placed.Position)),
				})
			}
		}
		return actions
	})
}
