package strategy

import (
	"fmt"
	"math/rand"

	"sudoku-deduce/internal/core"
)

// Singles is the hidden single strategy: within a group, a digit that
// fits exactly one cell must go there.
func Singles(f *core.Field, sel Selection, rng *rand.Rand) []core.Action {
	return iterateGroups(f, sel, rng, func(kind core.GroupKind, idx int, group []*core.Cell) []core.Action {
		holders := make(map[int][]*core.Cell)
		for _, c := range group {
			for _, d := range c.Hopeful.Slice() {
				holders[d] = append(holders[d], c)
			}
		}

		var actions []core.Action
		for digit, cells := range holders {
			if len(cells) != 1 {
				continue
			}
			c := cells[0]
			actions = append(actions, core.Action{
				Kind:      core.SetValue,
				Digit:     digit,
				CellIndex: c.Position.AsIndex(),
				Reason:    fmt.Sprintf("single %d found in %s at %s", digit, kind, formatPos(c.Position)),
			})
		}
		return actions
	})
}
