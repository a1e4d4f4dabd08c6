package listcrdt

// integrateAutomerge is spec §4.3.3. Children of the same parent are
// ordered by descending Seq, ascending agent as a tiebreak; subtrees
// (identified by oL > L) are skipped over contiguously rather than
// examined item by item, which keeps them attached to their actual
// parent rather than interleaving with x's siblings.
//
// Like Sync9, this rule never consults originRight: R is irrelevant to
// Automerge's placement decision.
func integrateAutomerge(doc *Document, x Item, hint int) error {
	if err := prepareIntegrate(doc, x); err != nil {
		return err
	}

	L := -1
	var err error
	if !x.OriginLeft.IsNull() {
		L, err = findById(doc, x.OriginLeft, false, hint)
		if err != nil {
			return err
		}
	}

	dest := len(doc.Content)
	for i := L + 1; i < len(doc.Content); i++ {
		o := doc.Content[i]
		if x.Seq > o.Seq {
			dest = i
			break
		}

		oL := -1
		if !o.OriginLeft.IsNull() {
			oL, err = findById(doc, o.OriginLeft, false, i)
			if err != nil {
				return err
			}
		}

		if oL < L || (oL == L && x.Seq == o.Seq && x.Id.Agent < o.Id.Agent) {
			dest = i
			break
		}
	}

	logger.Debugw("automerge: placed", "id", x.Id, "dest", dest, "L", L)
	spliceItem(doc, dest, x)
	return nil
}
