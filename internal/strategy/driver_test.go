package strategy

import (
	"math/rand"
	"testing"

	"sudoku-deduce/internal/core"
)

func TestIterateGroupsVisitsExplicitGroupOnly(t *testing.T) {
	f := newEmptyField()
	setHopeful(f, 0, 0, 5)
	explicit := f.GetGroup(core.GroupRow, 0)

	visited := 0
	iterateGroups(f, Selection{Group: explicit, GroupKind: core.GroupRow}, nil, func(kind core.GroupKind, idx int, group []*core.Cell) []core.Action {
		visited++
		if idx != -1 {
			t.Errorf("explicit group should report idx -1, got %d", idx)
		}
		if len(group) != 9 {
			t.Errorf("expected a 9-cell group, got %d", len(group))
		}
		return nil
	})
	if visited != 1 {
		t.Errorf("expected exactly 1 visit for an explicit group, got %d", visited)
	}
}

func TestIterateGroupsRestrictsTypesAndIndices(t *testing.T) {
	f := newEmptyField()
	visited := map[core.GroupKind]map[int]bool{}
	iterateGroups(f, Selection{GroupTypes: []core.GroupKind{core.GroupBlock}, Indices: []int{2, 5}}, nil, func(kind core.GroupKind, idx int, group []*core.Cell) []core.Action {
		if visited[kind] == nil {
			visited[kind] = map[int]bool{}
		}
		visited[kind][idx] = true
		return nil
	})
	if len(visited) != 1 || !visited[core.GroupBlock][2] || !visited[core.GroupBlock][5] {
		t.Errorf("expected only block groups 2 and 5 to be visited, got %v", visited)
	}
}

func TestIterateGroupsIsDeterministicWithSeededRNG(t *testing.T) {
	f := newEmptyField()
	var order1, order2 []int
	iterateGroups(f, Selection{GroupTypes: []core.GroupKind{core.GroupRow}}, rand.New(rand.NewSource(42)), func(kind core.GroupKind, idx int, group []*core.Cell) []core.Action {
		order1 = append(order1, idx)
		return nil
	})
	iterateGroups(f, Selection{GroupTypes: []core.GroupKind{core.GroupRow}}, rand.New(rand.NewSource(42)), func(kind core.GroupKind, idx int, group []*core.Cell) []core.Action {
		order2 = append(order2, idx)
		return nil
	})
	if len(order1) != 9 || len(order2) != 9 {
		t.Fatalf("expected all 9 rows visited, got %d and %d", len(order1), len(order2))
	}
	for i := range order1 {
		if order1[i] != order2[i] {
			t.Fatalf("same seed produced different orders: %v vs %v", order1, order2)
		}
	}
}
