package listcrdt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestScenarioSmoke is spec-literal scenario 1.
func TestScenarioSmoke(t *testing.T) {
	for _, alg := range Algorithms {
		a := Item{Id: Id{"A", 0}, Content: "a", HasContent: true}
		// InsertAfter only matters to Sync9, where it attaches b after a
		// rather than splitting a to put b in front of it.
		b := Item{Id: Id{"A", 1}, Content: "b", HasContent: true, OriginLeft: Id{"A", 0}, InsertAfter: true}
		got := integrateOrder(t, alg, []Item{a, b}, []int{0, 1})
		require.Equal(t, []any{"a", "b"}, got, "%s: smoke", alg.Name)
	}
}

// TestScenarioConcurrentAvsB is spec-literal scenario 2: ascending-agent
// tiebreak in both integration orders, across every algorithm.
func TestScenarioConcurrentAvsB(t *testing.T) {
	for _, alg := range Algorithms {
		a := Item{Id: Id{"A", 0}, Content: "a", HasContent: true}
		b := Item{Id: Id{"B", 0}, Content: "b", HasContent: true}
		want := []any{"a", "b"}

		for _, order := range [][]int{{0, 1}, {1, 0}} {
			got := integrateOrder(t, alg, []Item{a, b}, order)
			require.Equal(t, want, got, "%s: order %v", alg.Name, order)
		}
	}
}

// TestScenarioForwardInterleaving is spec-literal scenario 3: two agents
// each append three characters in a right-growing originLeft chain. Every
// admissible interleaving of the resulting 6 operations must yield the
// same ['a','a','a','b','b','b'] under YjsActual, YjsMod, Sync9 and both
// DoubleRGA variants.
func TestScenarioForwardInterleaving(t *testing.T) {
	aChain := []Item{
		{Id: Id{"A", 0}, Content: "a", HasContent: true},
		{Id: Id{"A", 1}, Content: "a", HasContent: true, OriginLeft: Id{"A", 0}},
		{Id: Id{"A", 2}, Content: "a", HasContent: true, OriginLeft: Id{"A", 1}},
	}
	bChain := []Item{
		{Id: Id{"B", 0}, Content: "b", HasContent: true},
		{Id: Id{"B", 1}, Content: "b", HasContent: true, OriginLeft: Id{"B", 0}},
		{Id: Id{"B", 2}, Content: "b", HasContent: true, OriginLeft: Id{"B", 1}},
	}
	ops := append(append([]Item{}, aChain...), bChain...)
	realDeps := [][]int{{}, {0}, {1}, {}, {3}, {4}}

	orders := allCausalOrders(6, realDeps)
	want := []any{"a", "a", "a", "b", "b", "b"}

	forSync9 := make([]Item, 6)
	copy(forSync9, ops)
	forSync9[0].InsertAfter = false
	forSync9[1] = Item{Id: Id{"A", 1}, Content: "a", HasContent: true, OriginLeft: Id{"A", 0}, InsertAfter: true}
	forSync9[2] = Item{Id: Id{"A", 2}, Content: "a", HasContent: true, OriginLeft: Id{"A", 1}, InsertAfter: true}
	forSync9[3].InsertAfter = false
	forSync9[4] = Item{Id: Id{"B", 1}, Content: "b", HasContent: true, OriginLeft: Id{"B", 0}, InsertAfter: true}
	forSync9[5] = Item{Id: Id{"B", 2}, Content: "b", HasContent: true, OriginLeft: Id{"B", 1}, InsertAfter: true}

	variants := []Algorithm{YjsActual, YjsMod, DoubleRGA1, DoubleRGA2}
	for _, alg := range variants {
		for _, order := range orders {
			got := integrateOrder(t, alg, ops, order)
			require.Equal(t, want, got, "%s: order %v", alg.Name, order)
		}
	}
	for _, order := range orders {
		got := integrateOrder(t, Sync9, forSync9, order)
		require.Equal(t, want, got, "Sync9: order %v", order)
	}
}

// TestScenarioBackwardInterleaving is spec-literal scenario 4: each
// replica's items chain by originRight instead (typing at the document's
// start). Automerge is documented to permit interleaving here and is
// excluded, matching its SkipTags("interleavingBackward").
func TestScenarioBackwardInterleaving(t *testing.T) {
	aChain := []Item{
		{Id: Id{"A", 0}, Content: "a", HasContent: true},
		{Id: Id{"A", 1}, Content: "a", HasContent: true, OriginRight: Id{"A", 0}},
		{Id: Id{"A", 2}, Content: "a", HasContent: true, OriginRight: Id{"A", 1}},
	}
	bChain := []Item{
		{Id: Id{"B", 0}, Content: "b", HasContent: true},
		{Id: Id{"B", 1}, Content: "b", HasContent: true, OriginRight: Id{"B", 0}},
		{Id: Id{"B", 2}, Content: "b", HasContent: true, OriginRight: Id{"B", 1}},
	}
	ops := append(append([]Item{}, aChain...), bChain...)
	realDeps := [][]int{{}, {0}, {1}, {}, {3}, {4}}
	orders := allCausalOrders(6, realDeps)
	want := []any{"a", "a", "a", "b", "b", "b"}

	sync9Ops := []Item{
		{Id: Id{"A", 0}, Content: "a", HasContent: true},
		{Id: Id{"A", 1}, Content: "a", HasContent: true, OriginLeft: Id{"A", 0}},
		{Id: Id{"A", 2}, Content: "a", HasContent: true, OriginLeft: Id{"A", 1}},
		{Id: Id{"B", 0}, Content: "b", HasContent: true},
		{Id: Id{"B", 1}, Content: "b", HasContent: true, OriginLeft: Id{"B", 0}},
		{Id: Id{"B", 2}, Content: "b", HasContent: true, OriginLeft: Id{"B", 1}},
	}

	variants := []Algorithm{YjsMod, DoubleRGA1, DoubleRGA2}
	for _, alg := range variants {
		for _, order := range orders {
			got := integrateOrder(t, alg, ops, order)
			require.Equal(t, want, got, "%s: order %v", alg.Name, order)
		}
	}
	for _, order := range orders {
		got := integrateOrder(t, Sync9, sync9Ops, order)
		require.Equal(t, want, got, "Sync9: order %v", order)
	}

	require.True(t, Automerge.Skips("interleavingBackward"), "Automerge must document the interleavingBackward exclusion")
}

// TestScenarioTails is spec-literal scenario 5: a head, then one item to
// its left and one to its right, per agent.
func TestScenarioTails(t *testing.T) {
	ops := []Item{
		{Id: Id{"A", 0}, Content: "a", HasContent: true},                         // head
		{Id: Id{"A", 1}, Content: "a0", HasContent: true, OriginRight: Id{"A", 0}}, // left
		{Id: Id{"A", 2}, Content: "a1", HasContent: true, OriginLeft: Id{"A", 0}},  // right
		{Id: Id{"B", 0}, Content: "b", HasContent: true},                         // head
		{Id: Id{"B", 1}, Content: "b0", HasContent: true, OriginRight: Id{"B", 0}}, // left
		{Id: Id{"B", 2}, Content: "b1", HasContent: true, OriginLeft: Id{"B", 0}},  // right
	}
	// Each right item depends on its head and on its agent's previous seq.
	realDeps := [][]int{{}, {0}, {0, 1}, {}, {3}, {3, 4}}
	orders := allCausalOrders(6, realDeps)
	want := []any{"a0", "a", "a1", "b0", "b", "b1"}

	sync9Ops := []Item{
		{Id: Id{"A", 0}, Content: "a", HasContent: true},
		{Id: Id{"A", 1}, Content: "a0", HasContent: true, OriginLeft: Id{"A", 0}, InsertAfter: false},
		{Id: Id{"A", 2}, Content: "a1", HasContent: true, OriginLeft: Id{"A", 0}, InsertAfter: true},
		{Id: Id{"B", 0}, Content: "b", HasContent: true},
		{Id: Id{"B", 1}, Content: "b0", HasContent: true, OriginLeft: Id{"B", 0}, InsertAfter: false},
		{Id: Id{"B", 2}, Content: "b1", HasContent: true, OriginLeft: Id{"B", 0}, InsertAfter: true},
	}

	variants := []Algorithm{YjsMod, DoubleRGA1, DoubleRGA2}
	for _, alg := range variants {
		for _, order := range orders {
			got := integrateOrder(t, alg, ops, order)
			require.Equal(t, want, got, "%s: order %v", alg.Name, order)
		}
	}
	for _, order := range orders {
		got := integrateOrder(t, Sync9, sync9Ops, order)
		require.Equal(t, want, got, "Sync9: order %v", order)
	}
}

// TestScenarioLocalVsConcurrent is spec-literal scenario 6.
func TestScenarioLocalVsConcurrent(t *testing.T) {
	a := Item{Id: Id{"A", 0}, Content: "a", HasContent: true}
	b := Item{Id: Id{"B", 0}, Content: "b", HasContent: true}
	c := Item{Id: Id{"C", 0}, Content: "c", HasContent: true}
	d := Item{Id: Id{"D", 0}, Content: "d", HasContent: true, OriginLeft: Id{"A", 0}, OriginRight: Id{"C", 0}}

	ops := []Item{a, b, c, d}
	// d depends causally on a (index 0) and c (index 2); b is unrelated.
	deps := [][]int{{}, {}, {}, {0, 2}}
	orders := allCausalOrders(4, deps)
	want := []any{"a", "d", "b", "c"}

	for _, order := range orders {
		got := integrateOrder(t, YjsMod, ops, order)
		require.Equal(t, want, got, "YjsMod: order %v", order)
	}
}
