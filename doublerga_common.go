package listcrdt

// virtualIdx marks the new item x being integrated, which is being
// compared against already-placed items before it has a real index of
// its own (spec §9's "arena-and-index handles" — the comparators below
// walk index chains, and the pending item is simply a chain node with no
// slot yet).
const virtualIdx = -2

func agentOf(doc *Document, x *Item, idx int) string {
	if idx == virtualIdx {
		return x.Id.Agent
	}
	return doc.Content[idx].Id.Agent
}

// --- DoubleRGA-1: originLeft tree ---

func leftParentOf(doc *Document, x *Item, idx int) int {
	if idx == virtualIdx {
		return x.LeftParentIdx
	}
	return doc.Content[idx].LeftParentIdx
}

func leftDepthOf(doc *Document, x *Item, idx int) int {
	if idx == virtualIdx {
		return x.LeftDepth
	}
	return doc.Content[idx].LeftDepth
}

// --- DoubleRGA-1: originRight tree (restricted to siblings) ---

func rightParentOf(doc *Document, x *Item, idx int) int {
	if idx == virtualIdx {
		return x.RightParentIdx
	}
	return doc.Content[idx].RightParentIdx
}

func rightDepthOf(doc *Document, x *Item, idx int) int {
	if idx == virtualIdx {
		return x.RightDepth
	}
	return doc.Content[idx].RightDepth
}

// --- DoubleRGA-2: unified parent-with-direction tree ---

func unifiedParentOf(doc *Document, x *Item, idx int) int {
	if idx == virtualIdx {
		return x.ParentIdx
	}
	return doc.Content[idx].ParentIdx
}

func unifiedDepthOf(doc *Document, x *Item, idx int) int {
	if idx == virtualIdx {
		return x.Depth
	}
	return doc.Content[idx].Depth
}

func unifiedParentIsLeftOf(doc *Document, x *Item, idx int) bool {
	if idx == virtualIdx {
		return x.ParentIsLeft
	}
	return doc.Content[idx].ParentIsLeft
}

// compareDoubleRGA1 is spec §4.3.5's comparator: equalise leftDepth by
// walking the deeper side up the originLeft tree; an exact match there
// means ancestor/descendant (deeper is greater). Otherwise walk both up
// in lockstep to the siblings under their common left-parent and break
// the tie on the originRight tree (deeper-right is lesser, reversing the
// left tree's sense); when neither is a right-ancestor of the other, walk
// both up the right tree in lockstep and order the resulting
// right-siblings by ascending agent.
func compareDoubleRGA1(doc *Document, x *Item, a, b int) int {
	if a == b {
		return 0
	}
	ad, bd := leftDepthOf(doc, x, a), leftDepthOf(doc, x, b)
	ai, bi := a, b
	for ad > bd {
		ai = leftParentOf(doc, x, ai)
		ad--
	}
	for bd > ad {
		bi = leftParentOf(doc, x, bi)
		bd--
	}
	if ai == bi {
		da, db := leftDepthOf(doc, x, a), leftDepthOf(doc, x, b)
		if da > db {
			return 1
		}
		if db > da {
			return -1
		}
		return 0
	}
	for leftParentOf(doc, x, ai) != leftParentOf(doc, x, bi) {
		pa, pb := leftParentOf(doc, x, ai), leftParentOf(doc, x, bi)
		if pa < 0 || pb < 0 {
			break
		}
		ai, bi = pa, pb
	}
	return compareSiblingsByRightTree(doc, x, ai, bi)
}

func compareSiblingsByRightTree(doc *Document, x *Item, a, b int) int {
	if a == b {
		return 0
	}
	ad, bd := rightDepthOf(doc, x, a), rightDepthOf(doc, x, b)
	ai, bi := a, b
	for ad > bd {
		ai = rightParentOf(doc, x, ai)
		ad--
	}
	for bd > ad {
		bi = rightParentOf(doc, x, bi)
		bd--
	}
	if ai == bi {
		da, db := rightDepthOf(doc, x, a), rightDepthOf(doc, x, b)
		if da > db {
			return -1 // deeper in the right tree sorts less
		}
		if db > da {
			return 1
		}
		return 0
	}
	for rightParentOf(doc, x, ai) != rightParentOf(doc, x, bi) {
		ai, bi = rightParentOf(doc, x, ai), rightParentOf(doc, x, bi)
	}
	aAgent, bAgent := agentOf(doc, x, ai), agentOf(doc, x, bi)
	if aAgent < bAgent {
		return -1
	}
	if aAgent > bAgent {
		return 1
	}
	return 0
}

// compareDoubleRGA2 is spec §4.3.6's comparator over the unified
// parent-with-direction tree: equalise depth while remembering the
// direction of the last hop taken on the deeper side; an ancestor match
// places the shallower node in that direction (left = greater, right =
// lesser). Otherwise walk to common-parent siblings: right-child sorts
// before left-child, same-direction siblings break ties by ascending
// agent.
func compareDoubleRGA2(doc *Document, x *Item, a, b int) int {
	if a == b {
		return 0
	}
	ad, bd := unifiedDepthOf(doc, x, a), unifiedDepthOf(doc, x, b)
	ai, bi := a, b
	lastLeft := true
	for ad > bd {
		lastLeft = unifiedParentIsLeftOf(doc, x, ai)
		ai = unifiedParentOf(doc, x, ai)
		ad--
	}
	for bd > ad {
		lastLeft = unifiedParentIsLeftOf(doc, x, bi)
		bi = unifiedParentOf(doc, x, bi)
		bd--
	}
	if ai == bi {
		da, db := unifiedDepthOf(doc, x, a), unifiedDepthOf(doc, x, b)
		if da == db {
			return 0
		}
		// shallower node lies in the direction of the last hop taken.
		result := -1
		if lastLeft {
			result = 1
		}
		if da < db {
			return result
		}
		return -result
	}
	for unifiedParentOf(doc, x, ai) != unifiedParentOf(doc, x, bi) {
		pa, pb := unifiedParentOf(doc, x, ai), unifiedParentOf(doc, x, bi)
		if pa < 0 || pb < 0 {
			break
		}
		ai, bi = pa, pb
	}
	aLeft, bLeft := unifiedParentIsLeftOf(doc, x, ai), unifiedParentIsLeftOf(doc, x, bi)
	if aLeft != bLeft {
		if !aLeft {
			return -1
		}
		return 1
	}
	aAgent, bAgent := agentOf(doc, x, ai), agentOf(doc, x, bi)
	if aAgent < bAgent {
		return -1
	}
	if aAgent > bAgent {
		return 1
	}
	return 0
}
