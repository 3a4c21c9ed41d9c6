package strategy

import (
	"fmt"
	"math/rand"

	"sudoku-deduce/internal/core"
)

// PointingPairs: when a digit's candidates within a block all lie on one
// row or one column, that digit can be removed from the rest of that row
// or column outside the block. Block-only; the reduction direction (row
// or column) is decided per digit from where its candidates actually fall.
func PointingPairs(f *core.Field, sel Selection, rng *rand.Rand) []core.Action {
	blockSel := sel
	blockSel.GroupTypes = []core.GroupKind{core.GroupBlock}

	return iterateGroups(f, blockSel, rng, func(kind core.GroupKind, idx int, group []*core.Cell) []core.Action {
		holders := make(map[int][]*core.Cell)
		for _, c := range group {
			for _, d := range c.Hopeful.Slice() {
				holders[d] = append(holders[d], c)
			}
		}

		var actions []core.Action
		for d, cells := range holders {
			if len(cells) < 2 {
				continue
			}
			if sameRow(cells) {
				row := cells[0].Position.Row()
				actions = append(actions, eliminateOutsideBlock(f, core.GroupRow, row, d, cells)...)
			}
			if sameColumn(cells) {
				col := cells[0].Position.Column()
				actions = append(actions, eliminateOutsideBlock(f, core.GroupColumn, col, d, cells)...)
			}
		}
		return actions
	})
}

func sameRow(cells []*core.Cell) bool {
	row := cells[0].Position.Row()
	for _, c := range cells[1:] {
		if c.Position.Row() != row {
			return false
		}
	}
	return true
}

func sameColumn(cells []*core.Cell) bool {
	col := cells[0].Position.Column()
	for _, c := range cells[1:] {
		if c.Position.Column() != col {
			return false
		}
	}
	return true
}

func eliminateOutsideBlock(f *core.Field, lineKind core.GroupKind, lineIdx int, digit int, within []*core.Cell) []core.Action {
	line := f.GetGroup(lineKind, lineIdx)
	var actions []core.Action
	for _, c := range line {
		if contains(within, c) || !c.Hopeful.Has(digit) {
			continue
		}
		actions = append(actions, core.Action{
			Kind:      core.RemoveCandidate,
			Digit:     digit,
			CellIndex: c.Position.AsIndex(),
			Reason:    fmt.Sprintf("digit %d confined to same %s as %s within its block", digit, lineKind, formatPositions(within)),
		})
	}
	return actions
}
