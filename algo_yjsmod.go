package listcrdt

// integrateYjsMod is spec §4.3.2: the same scan skeleton as YjsActual,
// but oR is consulted before the agent tiebreak, which resolves several
// interleaving conflicts favourably. Note the strict "<" in the agent
// comparison here versus YjsActual's ">" — this is the documented open
// question in spec §9 ("YjsMod's strict agent comparator").
func integrateYjsMod(doc *Document, x Item, hint int) error {
	if err := prepareIntegrate(doc, x); err != nil {
		return err
	}
	L, R, err := findOriginBounds(doc, x, hint)
	if err != nil {
		return err
	}

	dest := L + 1
	scanning := false

	for i := L + 1; ; i++ {
		if !scanning {
			dest = i
		}
		if i == len(doc.Content) || i == R {
			break
		}

		o := doc.Content[i]
		oL, oR, err := resolveOrigins(doc, o.OriginLeft, o.OriginRight, i)
		if err != nil {
			return err
		}

		switch {
		case oL < L:
			goto commit
		case oL == L && oR < R:
			scanning = true
		case oL == L && oR == R && x.Id.Agent < o.Id.Agent:
			goto commit
		case oL == L && oR == R:
			scanning = false
		case oL == L: // oR > R
			scanning = false
		default: // oL > L
		}
	}

commit:
	logger.Debugw("yjsmod: placed", "id", x.Id, "dest", dest, "L", L, "R", R)
	spliceItem(doc, dest, x)
	return nil
}
