package strategy

import (
	"math/rand"
	"sort"

	"sudoku-deduce/internal/core"
)

// Func is the signature every strategy is normalized to for registry
// purposes: single_chains and x_wing can fail (chain inconsistency, bad
// group argument), so every entry returns an error even though most
// strategies never produce one.
type Func func(f *core.Field, sel Selection, rng *rand.Rand) ([]core.Action, error)

// Entry names one strategy and its default weight, the Go analogue of
// the source's weighted_solvers list: a driver iterating in weight order
// reproduces the order a human solver would reach for these techniques.
type Entry struct {
	Weight int
	Name   string
	Run    Func
}

func infallible(f func(*core.Field, Selection, *rand.Rand) []core.Action) Func {
	return func(field *core.Field, sel Selection, rng *rand.Rand) ([]core.Action, error) {
		return f(field, sel, rng), nil
	}
}

// WeightedStrategies lists every strategy with its default weight, in the
// declared order (not yet sorted by weight).
var WeightedStrategies = []Entry{
	{0, "solved", infallible(Solved)},
	{1, "show_possibles", infallible(ShowPossibles)},
	{2, "singles", infallible(Singles)},
	{3, "naked_pairs", infallible(NakedPairs)},
	{4, "naked_triples", infallible(NakedTriples)},
	{5, "hidden_pairs", infallible(HiddenPairs)},
	{6, "hidden_triples", infallible(HiddenTriples)},
	{7, "pointing_pairs", infallible(PointingPairs)},
	{8, "box_line_reduction", infallible(BoxLineReduction)},
	{9, "x_wing", XWing},
	{10, "single_chains", SingleChains},
}

// AllStrategies returns the Run functions from WeightedStrategies sorted
// by ascending weight, the order a driver should try them in by default.
func AllStrategies() []Func {
	entries := append([]Entry(nil), WeightedStrategies...)
	sort.Slice(entries, func(i, j int) bool { return entries[i].Weight < entries[j].Weight })
	out := make([]Func, len(entries))
	for i, e := range entries {
		out[i] = e.Run
	}
	return out
}
