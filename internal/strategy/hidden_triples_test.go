package strategy

import (
	"testing"

	"sudoku-deduce/internal/core"
)

// setupHiddenTripleRow builds a full 9-cell row where digits 4, 6, 8 are
// confined to the first three cells and every other digit appears in 4+
// cells (filtered out as "not confined enough"), leaving {4,6,8} as the
// only combination the strategy can form.
func setupHiddenTripleRow(f *core.Field) {
	setHopeful(f, 0, 0, 1, 4, 6)
	setHopeful(f, 1, 0, 2, 6, 8)
	setHopeful(f, 2, 0, 3, 4, 8)
	setHopeful(f, 3, 0, 1, 2, 3, 5)
	setHopeful(f, 4, 0, 1, 2, 3, 7)
	setHopeful(f, 5, 0, 1, 2, 3, 9)
	setHopeful(f, 6, 0, 5, 7, 9)
	setHopeful(f, 7, 0, 5, 7, 9)
	setHopeful(f, 8, 0, 5, 7, 9)
}

func TestHiddenTriplesBasicElimination(t *testing.T) {
	f := newEmptyField()
	setupHiddenTripleRow(f)

	group := f.GetGroup(core.GroupRow, 0)
	actions := HiddenTriples(f, Selection{Group: group, GroupKind: core.GroupRow}, nil)

	if len(actions) != 3 {
		t.Fatalf("expected 3 actions, got %d: %+v", len(actions), actions)
	}
	if !hasRemoval(actions, 0, 0, 1) {
		t.Errorf("expected cell (0,0) to lose 1")
	}
	if !hasRemoval(actions, 1, 0, 2) {
		t.Errorf("expected cell (1,0) to lose 2")
	}
	if !hasRemoval(actions, 2, 0, 3) {
		t.Errorf("expected cell (2,0) to lose 3")
	}
}

func TestHiddenTriplesNoTripleWhenFourthCellHolds(t *testing.T) {
	f := newEmptyField()
	setupHiddenTripleRow(f)
	// A fourth holder of 4 breaks confinement to exactly three cells.
	setHopeful(f, 3, 0, 1, 2, 3, 5, 4)

	group := f.GetGroup(core.GroupRow, 0)
	actions := HiddenTriples(f, Selection{Group: group, GroupKind: core.GroupRow}, nil)

	if len(actions) != 0 {
		t.Errorf("expected no actions once a fourth cell holds the triple digits, got %+v", actions)
	}
}
