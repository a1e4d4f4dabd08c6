package listcrdt

// integrateDoubleRGAEquivalent is spec §4.3.7: identical to YjsMod,
// except every originRight pointer (x's own, and any candidate o's) is
// first passed through filterOriginRight, which nulls it out when it
// points at an item whose OriginLeft disagrees with the bearer's. This
// demonstrates that DoubleRGA2's behaviour is reachable via YjsMod-style
// placement, without sharing any of DoubleRGA2's tree caches.
func integrateDoubleRGAEquivalent(doc *Document, x Item, hint int) error {
	if err := prepareIntegrate(doc, x); err != nil {
		return err
	}

	xOR, err := filterOriginRight(doc, x.OriginLeft, x.OriginRight, hint)
	if err != nil {
		return err
	}
	L, R, err := resolveOrigins(doc, x.OriginLeft, xOR, hint)
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
		oOR, err := filterOriginRight(doc, o.OriginLeft, o.OriginRight, i)
		if err != nil {
			return err
		}
		oL, oR, err := resolveOrigins(doc, o.OriginLeft, oOR, i)
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
	logger.Debugw("doublerga-equivalent: placed", "id", x.Id, "dest", dest, "L", L, "R", R)
	spliceItem(doc, dest, x)
	return nil
}
