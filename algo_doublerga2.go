package listcrdt

// integrateDoubleRGA2 is spec §4.3.6. Unlike DoubleRGA1's two separate
// trees, every item here has a single parent and a direction flag:
// parent selection defaults to originLeft, but switches to originRight
// (with ParentIsLeft = false) when originRight is itself a descendant of
// originLeft — the same "shares our originLeft" test DoubleRGA1 uses for
// its restricted right-tree, reused here to pick a single parent instead
// of caching a second tree.
func integrateDoubleRGA2(doc *Document, x Item, hint int) error {
	if err := prepareIntegrate(doc, x); err != nil {
		return err
	}

	L, R, err := findOriginBounds(doc, x, hint)
	if err != nil {
		return err
	}

	rIdx := -1
	if !x.OriginRight.IsNull() {
		rIdx = R
	}
	if rIdx >= 0 && doc.Content[rIdx].OriginLeft == x.OriginLeft {
		x.ParentIdx = rIdx
		x.ParentIsLeft = false
		x.Depth = doc.Content[rIdx].Depth + 1
	} else {
		x.ParentIdx = L
		x.ParentIsLeft = true
		if L < 0 {
			x.Depth = 0
		} else {
			x.Depth = doc.Content[L].Depth + 1
		}
	}

	dest := R
	for i := L + 1; i < R; i++ {
		if compareDoubleRGA2(doc, &x, i, virtualIdx) > 0 {
			dest = i
			break
		}
	}

	logger.Debugw("doublerga2: placed", "id", x.Id, "dest", dest, "L", L, "R", R)
	spliceItem(doc, dest, x)
	return nil
}
