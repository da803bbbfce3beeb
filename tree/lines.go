package tree

// NodeLine returns the first known source line of n: a Form's MetaLine,
// a Leaf's Line, or the first child carrying one for Pair and Block.
func NodeLine(n Node) (int, bool) {
	switch v := n.(type) {
	case Form:
		if line, ok := v.Meta.Line(); ok {
			return line, true
		}
	case Leaf:
		if v.Line > 0 {
			return v.Line, true
		}

		return 0, false
	}

	for _, child := range Children(n) {
		if line, ok := NodeLine(child); ok {
			return line, true
		}
	}

	return 0, false
}

// LineSpan returns the minimum and maximum known source line in the
// subtree rooted at n. ok is false when no node in the subtree carries
// a line.
func LineSpan(n Node) (first, last int, ok bool) {
	walkLines(n, func(line int) {
		if !ok || line < first {
			first = line
		}

		if !ok || line > last {
			last = line
		}

		ok = true
	})

	return first, last, ok
}

// ShiftLines returns a copy of the subtree rooted at n with delta added
// to every known source line. Unknown lines stay unknown.
func ShiftLines(n Node, delta int) Node {
	if delta == 0 {
		return n
	}

	switch v := n.(type) {
	case Form:
		out := v
		if line, ok := v.Meta.Line(); ok {
			out.Meta = v.Meta.WithLine(line + delta)
		}

		if v.Head != nil {
			out.Head = ShiftLines(v.Head, delta)
		}

		out.Children = shiftAll(v.Children, delta)

		return out
	case Pair:
		return Pair{First: ShiftLines(v.First, delta), Second: ShiftLines(v.Second, delta)}
	case Block:
		return Block(shiftAll(v, delta))
	case Leaf:
		if v.Line > 0 {
			v.Line += delta
		}

		return v
	default:
		return n
	}
}

func shiftAll(nodes []Node, delta int) []Node {
	if len(nodes) == 0 {
		return nodes
	}

	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = ShiftLines(n, delta)
	}

	return out
}

func walkLines(n Node, visit func(int)) {
	switch v := n.(type) {
	case Form:
		if line, ok := v.Meta.Line(); ok {
			visit(line)
		}
	case Leaf:
		if v.Line > 0 {
			visit(v.Line)
		}

		return
	}

	for _, child := range Children(n) {
		walkLines(child, visit)
	}
}
