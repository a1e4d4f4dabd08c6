package listcrdt

// integrateSync9 is spec §4.3.4. Sync9 never consults originRight for
// placement — only originLeft (resolved at the end its own InsertAfter
// names) and the InsertAfter flag itself matter.
//
// parentIdx is resolved with atEnd = x.InsertAfter: a back-attaching
// insertion (InsertAfter = true) must land after the parent's
// content-bearing end, a front-attaching one (InsertAfter = false) is
// happy with the earliest occurrence of the parent's id, which is the
// span's sentinel once one exists.
func integrateSync9(doc *Document, x Item, hint int) error {
	if err := prepareIntegrate(doc, x); err != nil {
		return err
	}

	parentIdx, err := findById(doc, x.OriginLeft, x.InsertAfter, hint)
	if err != nil {
		return err
	}

	if !x.InsertAfter && parentIdx >= 0 && doc.Content[parentIdx].HasContent {
		// First front-attachment to this parent: split it. The
		// content-less sentinel takes the parent's old slot and becomes
		// the permanent left-end marker of its span; the parent's real
		// content shifts one slot right. x then lands between them.
		sentinel := doc.Content[parentIdx]
		sentinel.HasContent = false
		sentinel.Content = nil
		spliceItem(doc, parentIdx, sentinel)

		dest := parentIdx + 1
		logger.Debugw("sync9: split+placed", "id", x.Id, "dest", dest, "parent", parentIdx)
		spliceItem(doc, dest, x)
		return nil
	}

	dest := len(doc.Content)
	for i := parentIdx + 1; i < len(doc.Content); i++ {
		o := doc.Content[i]
		oParentIdx, err := findById(doc, o.OriginLeft, o.InsertAfter, i)
		if err != nil {
			return err
		}
		if oParentIdx < parentIdx || (oParentIdx == parentIdx && x.Id.Agent < o.Id.Agent) {
			dest = i
			break
		}
	}

	logger.Debugw("sync9: placed", "id", x.Id, "dest", dest, "parent", parentIdx)
	spliceItem(doc, dest, x)
	return nil
}

// localInsertSync9 is spec §4.2's bespoke Sync9 generator. It lands on
// the physical slot a standard stick-end walk would choose, then picks
// (OriginLeft, InsertAfter) so that integrating locally reproduces that
// slot: attaching as a right-child (InsertAfter = true) of a
// content-bearing left neighbour, or as a left-child (InsertAfter =
// false) of whatever parent a content-less left neighbour's own
// OriginLeft names, so the new item takes the front of that same span.
func localInsertSync9(doc *Document, agent string, pos int, content any) (Id, error) {
	i, err := findByVisibleIndex(doc, pos, true)
	if err != nil {
		return Id{}, err
	}

	originLeft := NullId
	insertAfter := false
	if i > 0 {
		left := doc.Content[i-1]
		if left.HasContent {
			originLeft = left.Id
			insertAfter = true
		} else {
			originLeft = left.OriginLeft
			insertAfter = false
		}
	}

	id := Id{Agent: agent, Seq: doc.Version.LastSeq(agent) + 1}
	x := Item{
		Id:          id,
		Content:     content,
		HasContent:  true,
		OriginLeft:  originLeft,
		InsertAfter: insertAfter,
		Seq:         doc.MaxSeq + 1,
	}

	if err := integrateSync9(doc, x, i); err != nil {
		return Id{}, err
	}
	return id, nil
}
