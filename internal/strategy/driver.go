// Package strategy implements the eleven human-style deduction strategies
// over a core.Field, plus the randomized group-iteration driver they
// share. Every strategy is a pure function: it never mutates the Field it
// is given, only proposes core.Actions for the caller to apply.
package strategy

import (
	"math/rand"

	"sudoku-deduce/internal/core"
)

// Selection customizes which groups a strategy iterates over.
//
//   - If Group is non-nil, it is used as-is and the strategy visits that
//     one group only (GroupKind should name its kind, for reason strings).
//   - Else GroupTypes restricts which of row/column/block are visited
//     (all three, if nil).
//   - Together with GroupTypes, Indices restricts which of 0..8 are
//     visited (all nine, if nil).
//
// The remaining (kind, idx) pairs are visited in an order randomized by
// rng; pass a nil rng to use the global math/rand source.
type Selection struct {
	GroupTypes []core.GroupKind
	Indices    []int
	Group      []*core.Cell
	GroupKind  core.GroupKind
}

var defaultGroupTypes = []core.GroupKind{core.GroupRow, core.GroupColumn, core.GroupBlock}

func defaultIndices() []int {
	idx := make([]int, 9)
	for i := range idx {
		idx[i] = i
	}
	return idx
}

// groupBody is the per-group logic a strategy supplies.
type groupBody func(kind core.GroupKind, idx int, group []*core.Cell) []core.Action

// iterateGroups visits every (kind, idx) pair the Selection resolves to,
// in a randomized order, and concatenates body's output across all of
// them. Emission order across groups is therefore not guaranteed stable;
// callers must treat results as a set, not a sequence.
func iterateGroups(f *core.Field, sel Selection, rng *rand.Rand, body groupBody) []core.Action {
	if sel.Group != nil {
		return body(sel.GroupKind, -1, sel.Group)
	}

	groupTypes := sel.GroupTypes
	if groupTypes == nil {
		groupTypes = append([]core.GroupKind(nil), defaultGroupTypes...)
	} else {
		groupTypes = append([]core.GroupKind(nil), groupTypes...)
	}
	indices := sel.Indices
	if indices == nil {
		indices = defaultIndices()
	} else {
		indices = append([]int(nil), indices...)
	}

	shuffleKinds(groupTypes, rng)
	shuffleInts(indices, rng)

	var actions []core.Action
	for _, kind := range groupTypes {
		for _, idx := range indices {
			group := f.GetGroup(kind, idx)
			actions = append(actions, body(kind, idx, group)...)
		}
	}
	return actions
}

func shuffleKinds(kinds []core.GroupKind, rng *rand.Rand) {
	swap := func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] }
	if rng == nil {
		rand.Shuffle(len(kinds), swap)
		return
	}
	rng.Shuffle(len(kinds), swap)
}

func shuffleInts(idx []int, rng *rand.Rand) {
	swap := func(i, j int) { idx[i], idx[j] = idx[j], idx[i] }
	if rng == nil {
		rand.Shuffle(len(idx), swap)
		return
	}
	rng.Shuffle(len(idx), swap)
}
