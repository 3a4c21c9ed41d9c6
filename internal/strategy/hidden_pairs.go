package strategy

import (
	"fmt"
	"math/rand"
	"sort"

	"sudoku-deduce/internal/core"
)

// cellSetKey is a canonical, order-independent key for a set of cells
// within one group, built from their linear indices.
func cellSetKey(cells []*core.Cell) string {
	idx := make([]int, len(cells))
	for i, c := range cells {
		idx[i] = c.Position.AsIndex()
	}
	sort.Ints(idx)
	return fmt.Sprint(idx)
}

// HiddenPairs: two digits each confined to the same two cells in a group
// lock every other candidate out of those two cells.
func HiddenPairs(f *core.Field, sel Selection, rng *rand.Rand) []core.Action {
	return iterateGroups(f, sel, rng, func(kind core.GroupKind, idx int, group []*core.Cell) []core.Action {
		holders := make(map[int][]*core.Cell)
		for _, c := range group {
			for _, d := range c.Hopeful.Slice() {
				holders[d] = append(holders[d], c)
			}
		}
		for d := range holders {
			if len(holders[d]) > 2 {
				delete(holders, d)
			}
		}

		var candidates []int
		for d := range holders {
			candidates = append(candidates, d)
		}

		var actions []core.Action
		seen := make(map[string]bool)
		for i := 0; i < len(candidates); i++ {
			for j := i + 1; j < len(candidates); j++ {
				a, b := candidates[i], candidates[j]
				key := cellSetKey(holders[a])
				if key != cellSetKey(holders[b]) || len(holders[a]) != 2 {
					continue
				}
				if seen[key] {
					continue
				}
				seen[key] = true

				for _, c := range holders[a] {
					for _, toRemove := range c.Hopeful.Slice() {
						if toRemove == a || toRemove == b {
							continue
						}
						actions = append(actions, core.Action{
							Kind:      core.RemoveCandidate,
							Digit:     toRemove,
							CellIndex: c.Position.AsIndex(),
							Reason:    fmt.Sprintf("hidden pair in same %s {%d,%d} on %s", kind, a, b, formatPositions(holders[a])),
						})
					}
				}
			}
		}
		return actions
	})
}
