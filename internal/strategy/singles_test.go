package strategy

import (
	"testing"

	"sudoku-deduce/internal/core"
)

func TestSinglesIgnoresDigitInTwoCells(t *testing.T) {
	f := newEmptyField()
	setHopeful(f, 0, 0, 4)
	setHopeful(f, 1, 0, 1, 2, 4)
	setHopeful(f, 2, 0, 1, 2)

	group := f.GetGroup(core.GroupRow, 0)
	actions := Singles(f, Selection{Group: group, GroupKind: core.GroupRow}, nil)

	// Digit 4 appears in two cells, so it is not hidden; only the naked
	// single at (0,0) would be found by a different strategy.
	if countActionsFor(actions, 4) != 0 {
		t.Errorf("digit 4 is not confined to one cell, expected no action for it")
	}
}

func TestSinglesDigitConfinedToOneCell(t *testing.T) {
	f := newEmptyField()
	setHopeful(f, 0, 0, 1, 2, 9)
	setHopeful(f, 1, 0, 1, 2)
	setHopeful(f, 2, 0, 1, 2)

	group := f.GetGroup(core.GroupRow, 0)
	actions := Singles(f, Selection{Group: group, GroupKind: core.GroupRow}, nil)

	if len(actions) != 1 {
		t.Fatalf("expected 1 action, got %d", len(actions))
	}
	if actions[0].Digit != 9 || actions[0].Kind != core.SetValue {
		t.Errorf("unexpected action: %+v", actions[0])
	}
	wantIdx := core.Position{X: 0, Y: 0}.AsIndex()
	if actions[0].CellIndex != wantIdx {
		t.Errorf("expected cell index %d, got %d", wantIdx, actions[0].CellIndex)
	}
}
