package listcrdt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// allCausalOrders returns every permutation of [0,n) that respects deps:
// deps[i] lists indices that must appear before i. Used by the scenario
// tests to enumerate every interleaving of a set of
// operations that respects each agent's own per-agent order (and, for the
// "Tails" scenario, a small dependency DAG rather than a strict chain).
func allCausalOrders(n int, deps [][]int) [][]int {
	used := make([]bool, n)
	var results [][]int
	var rec func(order []int)
	rec = func(order []int) {
		if len(order) == n {
			cp := make([]int, n)
			copy(cp, order)
			results = append(results, cp)
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			ready := true
			for _, d := range deps[i] {
				if !used[d] {
					ready = false
					break
				}
			}
			if !ready {
				continue
			}
			used[i] = true
			rec(append(order, i))
			used[i] = false
		}
	}
	rec(nil)
	return results
}

// chainDeps builds the deps slice for a simple linear chain 0 -> 1 -> 2 -> ...
func chainDeps(n int) [][]int {
	deps := make([][]int, n)
	for i := 1; i < n; i++ {
		deps[i] = []int{i - 1}
	}
	return deps
}

// integrateOrder integrates ops[order[i]] in turn into a fresh document
// governed by alg and returns the resulting visible content.
func integrateOrder(t *testing.T, alg Algorithm, ops []Item, order []int) []any {
	doc := NewDoc()
	for _, idx := range order {
		err := alg.Integrate(doc, ops[idx], -1)
		require.NoError(t, err, "%s: integrate %v (order %v)", alg.Name, ops[idx].Id, order)
	}
	return GetArray(doc)
}
