package strategy

import (
	"testing"

	"sudoku-deduce/internal/core"
)

func TestSolvedFindsNakedSingle(t *testing.T) {
	f := newEmptyField()
	setHopeful(f, 0, 0, 5)
	setHopeful(f, 1, 0, 1, 2)

	group := f.GetGroup(core.GroupRow, 0)
	actions := Solved(f, Selection{Group: group, GroupKind: core.GroupRow}, nil)

	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}
	a := actions[0]
	wantIdx := core.Position{X: 0, Y: 0}.AsIndex()
	if a.Kind != core.SetValue || a.Digit != 5 || a.CellIndex != wantIdx {
		t.Errorf("unexpected action: %+v", a)
	}
}

func TestSolvedIgnoresMultiCandidateCells(t *testing.T) {
	f := newEmptyField()
	setHopeful(f, 0, 0, 1, 2)
	setHopeful(f, 1, 0, 3, 4)

	group := f.GetGroup(core.GroupRow, 0)
	actions := Solved(f, Selection{Group: group, GroupKind: core.GroupRow}, nil)

	if len(actions) != 0 {
		t.Errorf("expected no actions, got %d", len(actions))
	}
}
