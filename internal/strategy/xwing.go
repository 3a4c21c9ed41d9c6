package strategy

import (
	"fmt"
	"math/rand"
	"sort"

	"sudoku-deduce/internal/core"
)

type xwingBucket struct {
	coords []int
	lines  []int
	cells  []*core.Cell
}

// XWing finds, for a digit d, two lines (rows or columns) in which d's
// candidates fall on exactly the same pair of cross-coordinates. d can
// then be removed from every other cell of those two cross-lines. With
// Selection.GroupTypes unset, both the row-sweep and the column-sweep run
// every call; otherwise only the listed sweeps run. Either way only their
// relative order is randomized. Returns a StrategyArgument error if
// Selection names a group type other than row or column.
func XWing(f *core.Field, sel Selection, rng *rand.Rand) ([]core.Action, error) {
	sweeps := []core.GroupKind{core.GroupRow, core.GroupColumn}
	if sel.GroupTypes != nil {
		sweeps = nil
		for _, k := range sel.GroupTypes {
			if k != core.GroupRow && k != core.GroupColumn {
				return nil, core.NewStrategyArgumentError("x_wing supports row or column group types only, got %s", k)
			}
			sweeps = append(sweeps, k)
		}
	}
	swap := func(i, j int) { sweeps[i], sweeps[j] = sweeps[j], sweeps[i] }
	if rng == nil {
		rand.Shuffle(len(sweeps), swap)
	} else {
		rng.Shuffle(len(sweeps), swap)
	}

	var actions []core.Action
	for _, lineKind := range sweeps {
		crossKind := core.GroupColumn
		if lineKind == core.GroupColumn {
			crossKind = core.GroupRow
		}
		actions = append(actions, xwingSweep(f, lineKind, crossKind)...)
	}
	return actions, nil
}

func xwingSweep(f *core.Field, lineKind, crossKind core.GroupKind) []core.Action {
	var actions []core.Action
	for d := 1; d <= 9; d++ {
		buckets := make(map[string]*xwingBucket)
		for lineIdx := 0; lineIdx < 9; lineIdx++ {
			group := f.GetGroup(lineKind, lineIdx)
			var coords []int
			var cells []*core.Cell
			for _, c := range group {
				if !c.Hopeful.Has(d) {
					continue
				}
				coords = append(coords, crossCoord(c, crossKind))
				cells = append(cells, c)
			}
			if len(coords) != 2 {
				continue
			}
			sort.Ints(coords)
			key := fmt.Sprint(coords)
			b, ok := buckets[key]
			if !ok {
				b = &xwingBucket{coords: coords}
				buckets[key] = b
			}
			b.lines = append(b.lines, lineIdx)
			b.cells = append(b.cells, cells...)
		}

		for _, b := range buckets {
			if len(b.lines) != 2 {
				continue
			}
			for _, coord := range b.coords {
				for _, c := range f.GetGroup(crossKind, coord) {
					if containsCell(b.cells, c) || !c.Hopeful.Has(d) {
						continue
					}
					actions = append(actions, core.Action{
						Kind:      core.RemoveCandidate,
						Digit:     d,
						CellIndex: c.Position.AsIndex(),
						Reason:    fmt.Sprintf("X-Wing on %d across %s %v, %s %v cannot hold it", d, lineKind, b.lines, crossKind, b.coords),
					})
				}
			}
		}
	}
	return actions
}

func crossCoord(c *core.Cell, crossKind core.GroupKind) int {
	if crossKind == core.GroupColumn {
		return c.Position.Column()
	}
	return c.Position.Row()
}

func containsCell(cells []*core.Cell, target *core.Cell) bool {
	for _, c := range cells {
		if c == target {
			return true
		}
	}
	return false
}
