package tree

// Equal reports full structural equality of two nodes, metadata and
// line numbers included.
func Equal(a, b Node) bool {
	return equal(a, b, false)
}

// EqualIgnoringLines reports structural equality with source lines (the
// MetaLine entry and Leaf.Line) excluded. Rules use this form when
// deduplicating nodes that were parsed from different places.
func EqualIgnoringLines(a, b Node) bool {
	return equal(a, b, true)
}

func equal(a, b Node, ignoreLines bool) bool {
	switch av := a.(type) {
	case Form:
		bv, ok := b.(Form)
		if !ok || av.Label != bv.Label {
			return false
		}

		if (av.Head == nil) != (bv.Head == nil) {
			return false
		}

		if av.Head != nil && !equal(av.Head, bv.Head, ignoreLines) {
			return false
		}

		if !metaEqual(av.Meta, bv.Meta, ignoreLines) {
			return false
		}

		return nodesEqual(av.Children, bv.Children, ignoreLines)
	case Pair:
		bv, ok := b.(Pair)

		return ok && equal(av.First, bv.First, ignoreLines) && equal(av.Second, bv.Second, ignoreLines)
	case Block:
		bv, ok := b.(Block)

		return ok && nodesEqual(av, bv, ignoreLines)
	case Leaf:
		bv, ok := b.(Leaf)
		if !ok || av.Kind != bv.Kind || av.Value != bv.Value || av.Text != bv.Text {
			return false
		}

		return ignoreLines || av.Line == bv.Line
	default:
		return false
	}
}

func nodesEqual(a, b []Node, ignoreLines bool) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !equal(a[i], b[i], ignoreLines) {
			return false
		}
	}

	return true
}

func metaEqual(a, b Meta, ignoreLines bool) bool {
	if !ignoreLines {
		if len(a) != len(b) {
			return false
		}

		for i := range a {
			if a[i] != b[i] {
				return false
			}
		}

		return true
	}

	return metaEqual(dropLine(a), dropLine(b), false)
}

func dropLine(m Meta) Meta {
	out := make(Meta, 0, len(m))

	for _, kv := range m {
		if kv.Key != MetaLine {
			out = append(out, kv)
		}
	}

	return out
}
