package strategy

import (
	"testing"

	"sudoku-deduce/internal/core"
)

func TestNakedTriplesBasicElimination(t *testing.T) {
	f := newEmptyField()
	setHopeful(f, 0, 0, 1, 2)
	setHopeful(f, 1, 0, 2, 3)
	setHopeful(f, 2, 0, 1, 3)
	setHopeful(f, 3, 0, 1, 2, 3, 4)

	group := f.GetGroup(core.GroupRow, 0)
	actions := NakedTriples(f, Selection{Group: group, GroupKind: core.GroupRow}, nil)

	if len(actions) != 3 {
		t.Fatalf("expected 3 actions, got %d: %+v", len(actions), actions)
	}
	for _, d := range []int{1, 2, 3} {
		if !hasRemoval(actions, 3, 0, d) {
			t.Errorf("expected cell (3,0) to lose %d", d)
		}
	}
}

// TestNakedTriplesMissesTripleNeedingNine reproduces the {1..8} expansion
// gap preserved unchanged from the source strategy: a triple whose third
// member can only be completed by adding digit 9 to a two-candidate cell
// is never found, because the expansion loop never tries missing=9.
func TestNakedTriplesMissesTripleNeedingNine(t *testing.T) {
	f := newEmptyField()
	setHopeful(f, 0, 0, 7, 9) // completes {7,8,9} via missing=8, in range
	setHopeful(f, 1, 0, 7, 8) // would complete {7,8,9} via missing=9, never tried
	setHopeful(f, 2, 0, 8, 9) // completes {7,8,9} via missing=7, in range
	setHopeful(f, 3, 0, 7, 8, 9, 1)

	group := f.GetGroup(core.GroupRow, 0)
	actions := NakedTriples(f, Selection{Group: group, GroupKind: core.GroupRow}, nil)

	if len(actions) != 0 {
		t.Errorf("expected the {7,8,9} triple to be missed by the preserved gap, got %+v", actions)
	}
}
