package strategy

import (
	"errors"
	"fmt"
	"math/rand"

	"sudoku-deduce/internal/chain"
	"sudoku-deduce/internal/core"
)

// SingleChains implements Simple Colouring (rule 4): for each digit,
// build a two-colored chain over its conjugate pairs (groups where the
// digit has exactly two candidate cells), then remove the digit from any
// outside cell that sees members of both colors in the same component —
// it cannot be the digit regardless of which color turns out true.
//
// Returns a core.Error with Kind KindChainInconsistency if a conjugate
// pair would force a member to hold both colors at once.
func SingleChains(f *core.Field, sel Selection, rng *rand.Rand) ([]core.Action, error) {
	var actions []core.Action

	for d := 1; d <= 9; d++ {
		c := chain.New[*core.Cell]()

		for _, kind := range []core.GroupKind{core.GroupRow, core.GroupColumn, core.GroupBlock} {
			for idx := 0; idx < 9; idx++ {
				var holders []*core.Cell
				for _, cell := range f.GetGroup(kind, idx) {
					if cell.Hopeful.Has(d) {
						holders = append(holders, cell)
					}
				}
				if len(holders) != 2 {
					continue
				}
				if err := c.AddPair(holders[0], holders[1]); err != nil {
					var inconsistency *chain.InconsistencyError
					if errors.As(err, &inconsistency) {
						return nil, &core.Error{Kind: core.KindChainInconsistency, Message: err.Error()}
					}
					return nil, err
				}
			}
		}

		var withDigit []*core.Cell
		for i := range f.Cells {
			cell := &f.Cells[i]
			if cell.Hopeful.Has(d) {
				withDigit = append(withDigit, cell)
			}
		}

		for _, sub := range c.Subchains {
			for _, candidate := range withDigit {
				if sub.Members[candidate] {
					continue
				}
				seesA, seesB := false, false
				for member := range sub.Members {
					if !candidate.Sees(member) {
						continue
					}
					color, _ := sub.Color(member)
					if color == chain.ColorA {
						seesA = true
					} else {
						seesB = true
					}
				}
				if seesA && seesB {
					actions = append(actions, core.Action{
						Kind:      core.RemoveCandidate,
						Digit:     d,
						CellIndex: candidate.Position.AsIndex(),
						Reason:    fmt.Sprintf("single chain on %d, %s sees both colors of the same chain", d, formatPos(candidate.Position)),
					})
				}
			}
		}
	}

	return actions, nil
}
