package strategy

import "sudoku-deduce/internal/core"

// newEmptyField returns a Field with every cell solved-looking (value 0,
// no hopeful candidates). Tests populate only the cells a scenario needs,
// so the rest of the board can never spuriously trigger a strategy.
func newEmptyField() *core.Field {
	f := &core.Field{}
	for i := range f.Cells {
		f.Cells[i] = core.NewCell(0, core.FromIndex(i))
		f.Cells[i].Hopeful = 0
	}
	return f
}

func setHopeful(f *core.Field, x, y int, digits ...int) {
	idx := core.Position{X: x, Y: y}.AsIndex()
	f.Cells[idx].Hopeful = core.NewDigits(digits)
}

func countActionsFor(actions []core.Action, digit int) int {
	n := 0
	for _, a := range actions {
		if a.Digit == digit {
			n++
		}
	}
	return n
}

func hasRemoval(actions []core.Action, x, y, digit int) bool {
	idx := core.Position{X: x, Y: y}.AsIndex()
	for _, a := range actions {
		if a.Kind == core.RemoveCandidate && a.CellIndex == idx && a.Digit == digit {
			return true
		}
	}
	return false
}
