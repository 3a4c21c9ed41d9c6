package strategy

import (
	"testing"

	"sudoku-deduce/internal/core"
)

func TestNakedPairsBasicElimination(t *testing.T) {
	f := newEmptyField()
	setHopeful(f, 0, 0, 3, 7)
	setHopeful(f, 1, 0, 3, 7)
	setHopeful(f, 2, 0, 1, 3, 5, 7)
	setHopeful(f, 3, 0, 2, 3, 6)
	setHopeful(f, 4, 0, 1, 2, 4, 5)

	group := f.GetGroup(core.GroupRow, 0)
	actions := NakedPairs(f, Selection{Group: group, GroupKind: core.GroupRow}, nil)

	if len(actions) != 3 {
		t.Fatalf("expected 3 actions, got %d: %+v", len(actions), actions)
	}
	if !hasRemoval(actions, 2, 0, 3) || !hasRemoval(actions, 2, 0, 7) {
		t.Errorf("expected cell (2,0) to lose both 3 and 7")
	}
	if !hasRemoval(actions, 3, 0, 3) {
		t.Errorf("expected cell (3,0) to lose 3")
	}
	if hasRemoval(actions, 3, 0, 7) {
		t.Errorf("cell (3,0) never had 7 as a candidate")
	}
}

func TestNakedPairsThreeCellsSameSetIsNotAPair(t *testing.T) {
	f := newEmptyField()
	setHopeful(f, 0, 0, 2, 8)
	setHopeful(f, 1, 0, 2, 8)
	setHopeful(f, 2, 0, 2, 8)
	setHopeful(f, 3, 0, 1, 2, 8, 9)

	group := f.GetGroup(core.GroupRow, 0)
	actions := NakedPairs(f, Selection{Group: group, GroupKind: core.GroupRow}, nil)

	if len(actions) != 0 {
		t.Errorf("expected no actions when three cells share the pair, got %+v", actions)
	}
}

func TestNakedPairsSelfExclusion(t *testing.T) {
	f := newEmptyField()
	setHopeful(f, 0, 0, 3, 5)
	setHopeful(f, 1, 0, 3, 5)

	group := f.GetGroup(core.GroupRow, 0)
	actions := NakedPairs(f, Selection{Group: group, GroupKind: core.GroupRow}, nil)

	if len(actions) != 0 {
		t.Errorf("pair members must not eliminate from themselves, got %+v", actions)
	}
}
