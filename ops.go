package listcrdt

// canInsertNow is spec §6's causal-readiness predicate: every dependency
// of op (its origins and its agent's previous operation) must already be
// in doc.Version.
func canInsertNow(doc *Document, x Item) bool {
	if x.Id.Seq != doc.Version.LastSeq(x.Id.Agent)+1 {
		return false
	}
	if !x.OriginLeft.IsNull() && !doc.Version.Has(x.OriginLeft) {
		return false
	}
	if !x.OriginRight.IsNull() && !doc.Version.Has(x.OriginRight) {
		return false
	}
	return true
}

// CanInsertNow is the exported form of canInsertNow (spec §6 external
// interface).
func CanInsertNow(op Item, doc *Document) bool {
	return canInsertNow(doc, op)
}

// prepareIntegrate performs the prelude every placement rule shares
// (spec §4.3): assert x's seq is the expected next one for its agent,
// fail with OutOfOrder otherwise, then record the new version.
func prepareIntegrate(doc *Document, x Item) error {
	expected := doc.Version.LastSeq(x.Id.Agent) + 1
	if x.Id.Seq != expected {
		return errOutOfOrder(x.Id, expected)
	}
	doc.Version.Record(x.Id)
	return nil
}

// resolveOrigins is spec §4.3's "let L = findById(originLeft) (or -1 if
// null) and R = findById(originRight) (or |content| if null)", used both
// for the new item x and for each candidate o examined during a scan.
func resolveOrigins(doc *Document, originLeft, originRight Id, hint int) (L, R int, err error) {
	if originLeft.IsNull() {
		L = -1
	} else {
		L, err = findById(doc, originLeft, false, hint)
		if err != nil {
			return 0, 0, err
		}
	}
	if originRight.IsNull() {
		R = len(doc.Content)
	} else {
		R, err = findById(doc, originRight, false, hint)
		if err != nil {
			return 0, 0, err
		}
	}
	return L, R, nil
}

// findOriginBounds resolves x's own origins (the L/R used as the scan's
// fixed bounds, as opposed to a candidate o's origins examined inside the
// scan).
func findOriginBounds(doc *Document, x Item, hint int) (L, R int, err error) {
	return resolveOrigins(doc, x.OriginLeft, x.OriginRight, hint)
}

// filterOriginRight is spec §4.3.7's rewriting step: whenever originRight
// refers to an item whose own OriginLeft differs from bearerOriginLeft
// (the origin-left of whoever is carrying this originRight pointer),
// that pointer is treated as null for the duration of the placement
// decision. This is what lets YjsMod-style placement reach DoubleRGA2's
// behaviour.
func filterOriginRight(doc *Document, bearerOriginLeft, originRight Id, hint int) (Id, error) {
	if originRight.IsNull() {
		return NullId, nil
	}
	idx, err := findById(doc, originRight, false, hint)
	if err != nil {
		return NullId, err
	}
	if doc.Content[idx].OriginLeft != bearerOriginLeft {
		return NullId, nil
	}
	return originRight, nil
}

// spliceItem inserts x at physical index dest and updates the derived
// Length/MaxSeq/hint bookkeeping. Every integration routine ends by
// calling this once dest has been decided.
//
// Inserting anywhere but the end invalidates every DoubleRGA ancestor-tree
// index (LeftParentIdx/RightParentIdx/ParentIdx, spec §9's "bulk
// relocation when the underlying sequence is resized") that pointed at or
// past dest: those items physically shift right by one slot, so their
// cached parent handles must shift with them. x's own freshly-computed
// fields need the identical correction, since they were resolved against
// the pre-splice index space too.
func spliceItem(doc *Document, dest int, x Item) {
	doc.Content = append(doc.Content, Item{})
	copy(doc.Content[dest+1:], doc.Content[dest:])
	doc.Content[dest] = x

	for i := range doc.Content {
		it := &doc.Content[i]
		if it.LeftParentIdx >= dest {
			it.LeftParentIdx++
		}
		if it.RightParentIdx >= dest {
			it.RightParentIdx++
		}
		if it.ParentIdx >= dest {
			it.ParentIdx++
		}
	}

	if x.HasContent && !x.IsDeleted {
		doc.Length++
	}
	if x.Seq > doc.MaxSeq {
		doc.MaxSeq = x.Seq
	}
	doc.hint = dest
}

// localInsert is spec §4.2's standard-case generator, shared by every
// Algorithm except Sync9 (which has its own generator; see
// localInsertSync9 below).
func localInsert(doc *Document, alg Algorithm, agent string, pos int, content any) (Id, error) {
	i, err := findByVisibleIndex(doc, pos, false)
	if err != nil {
		return Id{}, err
	}

	id := Id{Agent: agent, Seq: doc.Version.LastSeq(agent) + 1}

	originLeft := NullId
	if i > 0 {
		originLeft = doc.Content[i-1].Id
	}
	originRight := NullId
	if i < len(doc.Content) {
		originRight = doc.Content[i].Id
	}

	x := Item{
		Id:          id,
		Content:     content,
		HasContent:  true,
		OriginLeft:  originLeft,
		OriginRight: originRight,
		Seq:         doc.MaxSeq + 1,
	}

	if err := alg.Integrate(doc, x, i); err != nil {
		return Id{}, err
	}
	return id, nil
}

// localDelete is spec §4.2: tombstone the item at visible position pos.
// pos counts visible items only, so it never selects an item that is
// already tombstoned; a pos with no visible item fails with OutOfRange.
// The tombstone flip is guarded, so Length is never decremented twice for
// one item.
func localDelete(doc *Document, agent string, pos int) error {
	i, err := findByVisibleIndex(doc, pos, false)
	if err != nil {
		return err
	}
	if i >= len(doc.Content) {
		return errOutOfRange(pos, doc.Length)
	}
	if doc.Content[i].IsDeleted {
		return nil
	}
	doc.Content[i].IsDeleted = true
	if doc.Content[i].HasContent {
		doc.Length--
	}
	return nil
}

// LocalInsert is the exported entry point (spec §6): fails with
// OutOfRange if pos exceeds the document's visible length.
func LocalInsert(alg Algorithm, doc *Document, agent string, pos int, content any) (Id, error) {
	return alg.Generate(doc, agent, pos, content)
}

// LocalDelete is the exported entry point (spec §6); see localDelete for
// how pos is resolved.
func LocalDelete(doc *Document, agent string, pos int) error {
	return localDelete(doc, agent, pos)
}

// Integrate is the exported primitive (spec §6) used directly by merge
// and by tests that want to integrate pre-formed operations. hint is
// optional; pass -1 (or any out-of-range index) when the caller has no
// speculative position.
func Integrate(alg Algorithm, doc *Document, item Item, hint int) error {
	return alg.Integrate(doc, item, hint)
}
