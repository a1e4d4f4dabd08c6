package listcrdt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// printDoc is spec §6's diagnostic printer: not a compatibility surface,
// its exact format may change freely. It renders every item, tombstoned
// or not, marking deletions so a reader can see why the visible sequence
// differs from the full log.
func printDoc(doc *Document) string {
	var b strings.Builder
	for i, it := range doc.Content {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch {
		case it.IsDeleted:
			fmt.Fprintf(&b, "[%v]", it.Content)
		case it.HasContent:
			fmt.Fprintf(&b, "%v", it.Content)
		default:
			b.WriteString("_")
		}
	}
	return b.String()
}

// printDocSync9 additionally annotates content-less split sentinels
// distinctly from tombstones, since conflating the two would hide the
// structural role spec §9 ("Splittable spans in Sync9") assigns them.
func printDocSync9(doc *Document) string {
	var b strings.Builder
	for i, it := range doc.Content {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch {
		case it.IsDeleted:
			fmt.Fprintf(&b, "[%v]", it.Content)
		case it.HasContent:
			fmt.Fprintf(&b, "%v", it.Content)
		default:
			b.WriteString("<split>")
		}
	}
	return b.String()
}

// PrintDoc is the exported diagnostic entry point (spec §6).
func PrintDoc(doc *Document) string {
	return printDoc(doc)
}

// DebugDump renders the full internal state of doc — every item field,
// including the DoubleRGA tree caches — via go-spew. Like printDoc this
// is not a compatibility surface; it exists purely so a failing test or
// an interactive debugging session can see exactly what the document
// looked like.
func DebugDump(doc *Document) string {
	return spew.Sdump(doc)
}

// DebugDumpByID renders doc's items sorted by Id rather than physical splice
// order, via go-spew. Two replicas that converge hold the same items in
// possibly different Content orders depending on algorithm and integration
// order internals (hint cache, DoubleRGA tree splices); sorting by Id gives
// a diff-friendly view when comparing a divergence between two documents,
// independent of either replica's physical layout.
func DebugDumpByID(doc *Document) string {
	sorted := append([]Item{}, doc.Content...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Id.Less(sorted[j].Id)
	})
	return spew.Sdump(sorted)
}
