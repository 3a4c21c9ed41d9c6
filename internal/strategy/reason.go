package strategy

import (
	"fmt"
	"sort"

	"sudoku-deduce/internal/core"
)

func formatPos(p core.Position) string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func formatPositions(cells []*core.Cell) string {
	positions := make([]string, len(cells))
	for i, c := range cells {
		positions[i] = formatPos(c.Position)
	}
	return fmt.Sprintf("%v", positions)
}

func sortedDigits(digits []int) []int {
	out := append([]int(nil), digits...)
	sort.Ints(out)
	return out
}
