package strategy

import (
	"fmt"
	"math/rand"

	"sudoku-deduce/internal/core"
)

// Solved is the naked single strategy: any cell left with exactly one
// hopeful candidate must hold it.
func Solved(f *core.Field, sel Selection, rng *rand.Rand) []core.Action {
	return iterateGroups(f, sel, rng, func(kind core.GroupKind, idx int, group []*core.Cell) []core.Action {
		var actions []core.Action
		for _, c := range group {
			value, ok := c.Hopeful.Only()
			if !ok {
				continue
			}
			actions = append(actions, core.Action{
				Kind:      core.SetValue,
				Digit:     value,
				CellIndex: c.Position.AsIndex(),
				Reason:    fmt.Sprintf("solved cell %d found at %s", value, formatPos(c.Position)),
			})
		}
		return actions
	})
}
