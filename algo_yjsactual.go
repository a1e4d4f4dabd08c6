package listcrdt

// integrateYjsActual is spec §4.3.1. A scanning flag tracks whether the
// scan is currently inside a higher-precedence run it must skip over;
// dest only advances while scanning is false, so the final commit point
// is the last slot visited outside such a run.
func integrateYjsActual(doc *Document, x Item, hint int) error {
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
		case oL == L && x.Id.Agent > o.Id.Agent:
			scanning = false
		case oL == L && x.Id.Agent <= o.Id.Agent && oR == R:
			goto commit
		case oL == L && x.Id.Agent <= o.Id.Agent:
			scanning = true
		default: // oL > L
		}
	}

commit:
	logger.Debugw("yjsactual: placed", "id", x.Id, "dest", dest, "L", L, "R", R)
	spliceItem(doc, dest, x)
	return nil
}
