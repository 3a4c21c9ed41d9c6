package core

import (
	"strings"
)

// GroupKind identifies one of the three ways cells are grouped on a Field.
type GroupKind string

const (
	GroupRow    GroupKind = "row"
	GroupColumn GroupKind = "column"
	GroupBlock  GroupKind = "block"
)

// Field is the full 81-cell board: current values, per-cell candidate
// sets, and the group views strategies iterate over. Field is owned
// exclusively by its caller; its Cells are owned by the Field.
type Field struct {
	Cells [81]Cell
}

// NewFieldFromString scans s, keeps only ASCII digits '0'-'9', and
// requires exactly 81 of them; any digit beyond the 81st is ignored.
// Fewer than 81 is an InvalidInput error.
func NewFieldFromString(s string) (*Field, error) {
	var digits []int
	for _, r := range s {
		if r < '0' || r > '9' {
			continue
		}
		digits = append(digits, int(r-'0'))
		if len(digits) == 81 {
			break
		}
	}
	if len(digits) != 81 {
		return nil, newError(KindInvalidInput, "expected 81 digits, got %d", len(digits))
	}
	f := &Field{}
	for i, v := range digits {
		f.Cells[i] = NewCell(v, FromIndex(i))
	}
	return f, nil
}

// GetCell returns the cell at the given linear index.
func (f *Field) GetCell(idx int) *Cell {
	return &f.Cells[idx]
}

// GetGroup returns the 9 cells belonging to the given row, column, or
// block, ordered by linear index for deterministic iteration inside a
// single group.
func (f *Field) GetGroup(kind GroupKind, idx int) []*Cell {
	group := make([]*Cell, 0, 9)
	for i := range f.Cells {
		c := &f.Cells[i]
		var matches bool
		switch kind {
		case GroupRow:
			matches = c.Position.Row() == idx
		case GroupColumn:
			matches = c.Position.Column() == idx
		case GroupBlock:
			matches = c.Position.Block() == idx
		}
		if matches {
			group = append(group, c)
		}
	}
	return group
}

// Apply mutates the Field according to action. RemoveCandidate clears the
// digit from the target cell's hopeful set and appends a debug entry.
// SetValue assigns the digit via the Cell setter, honoring its
// preconditions.
func (f *Field) Apply(action Action) error {
	cell := f.GetCell(action.CellIndex)
	switch action.Kind {
	case RemoveCandidate:
		cell.Eliminate(action.Digit, action.Reason)
		return nil
	case SetValue:
		return cell.SetValue(action.Digit)
	default:
		return newError(KindInvalidInput, "unknown action kind %v", action.Kind)
	}
}

// String renders the field as a fixed ASCII grid with heavy separators at
// block boundaries. Debug-only; not a normative persistence format.
func (f *Field) String() string {
	var b strings.Builder
	heavy := "+-----+-----+-----+\n"
	for y := 0; y < 9; y++ {
		if y%3 == 0 {
			b.WriteString(heavy)
		}
		for x := 0; x < 9; x++ {
			if x%3 == 0 {
				b.WriteByte('|')
			}
			v := f.Cells[y*9+x].Value
			if v == 0 {
				b.WriteString(" .")
			} else {
				b.WriteByte(' ')
				b.WriteByte(byte('0' + v))
			}
		}
		b.WriteString(" |\n")
	}
	b.WriteString(heavy)
	return b.String()
}
