package strategy

import (
	"fmt"
	"math/rand"

	"sudoku-deduce/internal/core"
)

// BoxLineReduction: when a digit's candidates within a row or column all
// lie in one block, that digit can be removed from the rest of the block
// outside that row or column. The mirror image of PointingPairs: row and
// column groups only, reducing into a block.
func BoxLineReduction(f *core.Field, sel Selection, rng *rand.Rand) []core.Action {
	lineSel := sel
	lineSel.GroupTypes = []core.GroupKind{core.GroupRow, core.GroupColumn}

	return iterateGroups(f, lineSel, rng, func(kind core.GroupKind, idx int, group []*core.Cell) []core.Action {
		holders := make(map[int][]*core.Cell)
		for _, c := range group {
			for _, d := range c.Hopeful.Slice() {
				holders[d] = append(holders[d], c)
			}
		}

		var actions []core.Action
		for d, cells := range holders {
			if len(cells) < 2 || !sameBlock(cells) {
				continue
			}
			block := cells[0].Position.Block()
			blockCells := f.GetGroup(core.GroupBlock, block)
			for _, c := range blockCells {
				if contains(cells, c) || !c.Hopeful.Has(d) {
					continue
				}
				actions = append(actions, core.Action{
					Kind:      core.RemoveCandidate,
					Digit:     d,
					CellIndex: c.Position.AsIndex(),
					Reason:    fmt.Sprintf("digit %d confined to same block as %s within its %s", d, formatPositions(cells), kind),
				})
			}
		}
		return actions
	})
}

func sameBlock(cells []*core.Cell) bool {
	block := cells[0].Position.Block()
	for _, c := range cells[1:] {
		if c.Position.Block() != block {
			return false
		}
	}
	return true
}
