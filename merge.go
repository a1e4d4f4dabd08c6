package listcrdt

// mergeInto is spec §4.4's bulk-import driver. It repeatedly scans the
// working set of src operations dest hasn't seen, integrating any whose
// causal dependencies are satisfied, until none remain. Deletions are not
// replicated by this driver — a deliberate limitation per spec §9, not an
// oversight; replicating tombstone flips would mean extending the
// operation stream with a second kind of operation, out of scope here.
func mergeInto(alg Algorithm, dest, src *Document) error {
	working := make([]Item, 0, len(src.Content))
	for _, it := range src.Content {
		if !it.HasContent {
			continue
		}
		if dest.Version.Has(it.Id) {
			continue
		}
		working = append(working, it)
	}

	for len(working) > 0 {
		next := working[:0:0]
		progressed := false

		for _, op := range working {
			if canInsertNow(dest, op) {
				if err := alg.Integrate(dest, op, dest.hint); err != nil {
					return err
				}
				progressed = true
				continue
			}
			next = append(next, op)
		}

		if !progressed {
			return errStuck(len(next))
		}
		working = next
	}

	return nil
}

// MergeInto is the exported entry point (spec §6).
func MergeInto(alg Algorithm, dest, src *Document) error {
	return mergeInto(alg, dest, src)
}
