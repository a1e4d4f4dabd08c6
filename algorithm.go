package listcrdt

// Algorithm is the capability record described in spec §9 ("Polymorphism
// over algorithms"): a tagged variant with fixed dispatch rather than an
// open-world interface hierarchy, because the set of placement rules is
// closed and known at compile time.
//
// Generate synthesises and integrates a local insertion; for every
// variant but Sync9 this is the shared origin-synthesis routine in ops.go
// wired to that variant's Integrate. Integrate is the placement rule
// itself (spec §4.3). PrintDoc is the variant-aware diagnostic printer
// (Sync9's output distinguishes split sentinels; see print.go).
type Algorithm struct {
	Name string

	Generate  func(doc *Document, agent string, pos int, content any) (Id, error)
	Integrate func(doc *Document, x Item, hint int) error
	PrintDoc  func(doc *Document) string

	// SkipTags lists the documented test-scenario exclusions for this
	// variant (spec §9 open questions): e.g. YjsActual skips
	// "withTails2", Automerge skips "withTails" and
	// "interleavingBackward". The scenario tests list the algorithms they
	// assert by hand; TestScenarioBackwardInterleaving checks that
	// Automerge carries the "interleavingBackward" tag.
	SkipTags map[string]bool
}

// Skips reports whether this Algorithm is documented to fail tag.
func (a Algorithm) Skips(tag string) bool {
	return a.SkipTags[tag]
}

func newAlgorithm(name string, integrate func(doc *Document, x Item, hint int) error, skip ...string) Algorithm {
	tags := make(map[string]bool, len(skip))
	for _, t := range skip {
		tags[t] = true
	}
	alg := Algorithm{Name: name, Integrate: integrate, SkipTags: tags}
	alg.Generate = func(doc *Document, agent string, pos int, content any) (Id, error) {
		return localInsert(doc, alg, agent, pos, content)
	}
	alg.PrintDoc = func(doc *Document) string {
		return printDoc(doc)
	}
	return alg
}

// YjsActual is spec §4.3.1.
var YjsActual = newAlgorithm("YjsActual", integrateYjsActual, "withTails2")

// YjsMod is spec §4.3.2.
var YjsMod = newAlgorithm("YjsMod", integrateYjsMod)

// Automerge is spec §4.3.3.
var Automerge = newAlgorithm("Automerge", integrateAutomerge, "withTails", "interleavingBackward")

// DoubleRGA1 is spec §4.3.5 (ancestor-tree form).
var DoubleRGA1 = newAlgorithm("DoubleRGA1", integrateDoubleRGA1)

// DoubleRGA2 is spec §4.3.6 (unified-tree form).
var DoubleRGA2 = newAlgorithm("DoubleRGA2", integrateDoubleRGA2)

// DoubleRGAEquivalent is spec §4.3.7, the YjsMod re-expression that
// reaches DoubleRGA2's behaviour through YjsMod-style placement.
var DoubleRGAEquivalent = newAlgorithm("DoubleRGAEquivalent", integrateDoubleRGAEquivalent)

// Sync9 is spec §4.3.4. It overrides Generate and PrintDoc, since
// localInsertSync9 differs from the shared origin-synthesis routine and
// its printer must render split sentinels distinctly.
var Sync9 = func() Algorithm {
	alg := newAlgorithm("Sync9", integrateSync9)
	alg.Generate = func(doc *Document, agent string, pos int, content any) (Id, error) {
		return localInsertSync9(doc, agent, pos, content)
	}
	alg.PrintDoc = func(doc *Document) string {
		return printDocSync9(doc)
	}
	return alg
}()

// Algorithms lists every registered variant, for table-driven tests that
// iterate "every algorithm" (spec §8 convergence/scenario tests).
var Algorithms = []Algorithm{YjsActual, YjsMod, Automerge, Sync9, DoubleRGA1, DoubleRGA2, DoubleRGAEquivalent}

// BoundDocument pairs a Document with the Algorithm that governs it,
// re-expressing the teacher's generic CRDT interface (Value() any /
// Merge(other) error) for this domain: the counters that originally
// implemented that interface are gone, but the shape survives here.
type BoundDocument struct {
	Doc *Document
	Alg Algorithm
}

// NewBoundDocument returns an empty document bound to alg.
func NewBoundDocument(alg Algorithm) *BoundDocument {
	return &BoundDocument{Doc: NewDoc(), Alg: alg}
}

// Value returns the linearized, visible content of the sequence,
// satisfying the same Value() any shape the teacher's CRDT interface
// specified.
func (b *BoundDocument) Value() any {
	return getArray(b.Doc)
}

// Merge incorporates every operation in other's log that b hasn't seen,
// via mergeInto. other must be governed by the same Algorithm; a
// mismatch returns an error rather than silently producing divergence.
func (b *BoundDocument) Merge(other *BoundDocument) error {
	if other.Alg.Name != b.Alg.Name {
		return errAlgorithmMismatch(other.Alg.Name, b.Alg.Name)
	}
	return mergeInto(b.Alg, b.Doc, other.Doc)
}
