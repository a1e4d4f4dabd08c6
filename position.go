package listcrdt

// findByVisibleIndex walks Content left to right, decrementing pos for
// every item that has content present and is not deleted, returning the
// physical index where the next insertion of the pos-th visible item
// would sit (spec §4.1).
//
// If stickEnd is true, it returns as soon as pos reaches 0 regardless of
// the item at that slot's state, which is how Sync9 resolves insertions
// to a split position rather than skipping over content-less spans.
func findByVisibleIndex(doc *Document, pos int, stickEnd bool) (int, error) {
	if pos < 0 {
		return 0, errOutOfRange(pos, doc.Length)
	}
	remaining := pos
	for i, it := range doc.Content {
		if stickEnd && remaining == 0 {
			return i, nil
		}
		if it.HasContent && !it.IsDeleted {
			if remaining == 0 {
				return i, nil
			}
			remaining--
		}
	}
	if remaining == 0 {
		return len(doc.Content), nil
	}
	return 0, errOutOfRange(pos, doc.Length)
}

// findById returns the physical index of the item whose Id equals id. The
// null id resolves to -1 (left boundary) without a scan. hint is a
// speculative index tried first (spec §4.1); a hit is recorded via the
// hintHits counter and avoids the O(n) scan, a miss is recorded via
// hintMisses before falling back to a linear scan.
//
// atEnd is Sync9-only: when true, the matched item must currently carry
// content (it resolves to the content-bearing end of a split span, not an
// empty prefix); a match lacking content is treated as not-yet-found and
// the scan continues forward through the item's descendants.
func findById(doc *Document, id Id, atEnd bool, hint int) (int, error) {
	if id.IsNull() {
		return -1, nil
	}
	if hint >= 0 && hint < len(doc.Content) && doc.Content[hint].Id == id {
		if !atEnd || doc.Content[hint].HasContent {
			hintHits.Inc()
			doc.hint = hint
			return hint, nil
		}
	}
	hintMisses.Inc()
	for i, it := range doc.Content {
		if it.Id == id {
			if !atEnd || it.HasContent {
				doc.hint = i
				return i, nil
			}
			continue
		}
	}
	return 0, errNotFound(id)
}
