package listcrdt

// integrateDoubleRGA1 is spec §4.3.5. Each integrated item caches its
// position in two trees: the originLeft tree (every item's parent) and a
// restricted originRight tree that only links an item to its originRight
// when that neighbour shares the same originLeft (i.e. is a sibling under
// the same left-parent) — this is what spec §9's "arena-and-index
// handles" comment refers to: the caches are indices into doc.Content,
// never pointers, so there is nothing to leak or cycle.
func integrateDoubleRGA1(doc *Document, x Item, hint int) error {
	if err := prepareIntegrate(doc, x); err != nil {
		return err
	}

	L, R, err := findOriginBounds(doc, x, hint)
	if err != nil {
		return err
	}

	x.LeftParentIdx = L
	if L < 0 {
		x.LeftDepth = 0
	} else {
		x.LeftDepth = doc.Content[L].LeftDepth + 1
	}

	rIdx := -1
	if !x.OriginRight.IsNull() {
		rIdx = R
	}
	if rIdx >= 0 && doc.Content[rIdx].OriginLeft == x.OriginLeft {
		x.RightParentIdx = rIdx
		x.RightDepth = doc.Content[rIdx].RightDepth + 1
	} else {
		x.RightParentIdx = -1
		x.RightDepth = 0
	}

	dest := R
	for i := L + 1; i < R; i++ {
		if compareDoubleRGA1(doc, &x, i, virtualIdx) > 0 {
			dest = i
			break
		}
	}

	logger.Debugw("doublerga1: placed", "id", x.Id, "dest", dest, "L", L, "R", R)
	spliceItem(doc, dest, x)
	return nil
}
