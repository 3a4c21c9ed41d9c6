package strategy

import (
	"fmt"
	"math/rand"

	"sudoku-deduce/internal/core"
)

// HiddenTriples: three digits whose combined supporting cells in a group
// number three or fewer lock every other candidate out of those cells.
func HiddenTriples(f *core.Field, sel Selection, rng *rand.Rand) []core.Action {
	return iterateGroups(f, sel, rng, func(kind core.GroupKind, idx int, group []*core.Cell) []core.Action {
		holders := make(map[int][]*core.Cell)
		for _, c := range group {
			for _, d := range c.Hopeful.Slice() {
				holders[d] = append(holders[d], c)
			}
		}
		for d := range holders {
			if len(holders[d]) > 3 {
				delete(holders, d)
			}
		}

		var candidates []int
		for d := range holders {
			candidates = append(candidates, d)
		}

		var actions []core.Action
		for _, triple := range combinations3(candidates) {
			cellSet := map[*core.Cell]bool{}
			for _, d := range triple {
				for _, c := range holders[d] {
					cellSet[c] = true
				}
			}
			if len(cellSet) > 3 {
				continue
			}
			for c := range cellSet {
				for _, toRemove := range c.Hopeful.Slice() {
					if toRemove == triple[0] || toRemove == triple[1] || toRemove == triple[2] {
						continue
					}
					actions = append(actions, core.Action{
						Kind:      core.RemoveCandidate,
						Digit:     toRemove,
						CellIndex: c.Position.AsIndex(),
						Reason:    fmt.Sprintf("hidden triple in same %s %v on %s", kind, triple, formatPositions(cellsOf(cellSet))),
					})
				}
			}
		}
		return actions
	})
}

func combinations3(items []int) [][3]int {
	var out [][3]int
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			for k := j + 1; k < len(items); k++ {
				out = append(out, [3]int{items[i], items[j], items[k]})
			}
		}
	}
	return out
}

func cellsOf(set map[*core.Cell]bool) []*core.Cell {
	out := make([]*core.Cell, 0, len(set))
	for c := range set {
		out = append(out, c)
	}
	return out
}
