package listcrdt

// Item is one logical element of the list (spec §3). Content, HasContent,
// OriginLeft and OriginRight are immutable once the item is integrated;
// only IsDeleted may flip, exactly once, false -> true.
type Item struct {
	Id Id

	// Content holds the payload. HasContent is false for Sync9's
	// content-less split sentinels (spec §4.3.4, §9 "splittable spans") —
	// those items are structural and must never be treated as deletable
	// garbage even though getArray filters them out.
	Content    any
	HasContent bool

	OriginLeft  Id
	OriginRight Id

	IsDeleted bool

	// Seq is the Automerge-only monotone counter: strictly greater than
	// every seq the creating replica had previously observed locally.
	Seq int

	// InsertAfter is Sync9-only: whether this item attaches to the end of
	// OriginLeft's splittable span rather than its start.
	InsertAfter bool

	// DoubleRGA-1 cache: ancestor-tree links, derivable from OriginLeft/
	// OriginRight but cached for comparator performance (spec §9,
	// "Cyclic parent references" — realised as indices into Document.Content
	// rather than pointers, so there is no possibility of a reference
	// cycle and the cache survives slice growth untouched).
	LeftParentIdx  int // index into Document.Content, or -1
	LeftDepth      int
	RightParentIdx int // index into Document.Content, or -1; only set when
	// OriginRight's OriginLeft equals this item's OriginLeft
	RightDepth int

	// DoubleRGA-2 cache: the unified parent-with-direction tree.
	ParentIdx    int // index into Document.Content, or -1
	ParentIsLeft bool
	Depth        int
}

// Document is the pair (content, version) from spec §3, plus the derived
// MaxSeq and Length counters.
type Document struct {
	Content []Item
	Version Version

	// MaxSeq is the largest Automerge seq observed across any integrated
	// item.
	MaxSeq int

	// Length is the number of items with content present and not deleted.
	Length int

	// hint is the one-slot findById hint cache (spec §4.1): the physical
	// index the caller most recently touched.
	hint int
}

// NewDoc returns an empty Document.
func NewDoc() *Document {
	return &Document{
		Content: nil,
		Version: NewVersion(),
		MaxSeq:  0,
		Length:  0,
		hint:    0,
	}
}

// getArray filters Document.Content down to visible content: items that
// carry content and are not tombstoned. This is spec §6's getArray.
func getArray(doc *Document) []any {
	out := make([]any, 0, doc.Length)
	for _, it := range doc.Content {
		if it.HasContent && !it.IsDeleted {
			out = append(out, it.Content)
		}
	}
	return out
}

// GetArray is the exported form of getArray (spec §6 external interface).
func GetArray(doc *Document) []any {
	return getArray(doc)
}

// isInVersion is the exported predicate from spec §6.
func isInVersion(id Id, v Version) bool {
	return v.Has(id)
}

// IsInVersion is the exported form of isInVersion (spec §6 external
// interface).
func IsInVersion(id Id, v Version) bool {
	return isInVersion(id, v)
}
