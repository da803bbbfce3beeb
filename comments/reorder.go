package comments

import "restyle/tree"

// ReorderSiblings renumbers a freshly reordered sibling list and the
// ledger together. nodes are the siblings in their NEW order, still
// carrying the line metadata of wherever they came from; firstLine is
// the line the block starts on. On return:
//
//   - nodes occupy strictly increasing lines starting at firstLine,
//     each keeping its internal line shape (subtrees shift uniformly);
//   - each node's leading comment run, and any comment inside its old
//     span, has moved with it;
//   - comments owned by none of the nodes keep their original line
//     (accepted degradation, never an error).
func ReorderSiblings(nodes []tree.Node, cs []Comment, firstLine int) ([]tree.Node, []Comment) {
	type claim struct {
		span  LineRange
		delta int
	}

	outNodes := make([]tree.Node, len(nodes))
	claims := make([]claim, 0, len(nodes))
	cursor := firstLine

	for i, n := range nodes {
		oldFirst, oldLast, ok := tree.LineSpan(n)
		if !ok {
			// Nothing to renumber; the node still occupies a slot.
			outNodes[i] = n
			cursor++

			continue
		}

		leading := Preceding(cs, oldFirst)
		blockStart := oldFirst - len(leading)
		height := oldLast - blockStart + 1
		delta := cursor - blockStart

		outNodes[i] = tree.ShiftLines(n, delta)
		claims = append(claims, claim{span: LineRange{First: blockStart, Last: oldLast}, delta: delta})
		cursor += height
	}

	outComments := make([]Comment, len(cs))

	for i, c := range cs {
		for _, cl := range claims {
			if cl.span.Contains(c.Line) {
				c.Line += cl.delta

				break
			}
		}

		outComments[i] = c
	}

	sortByLine(outComments)

	return outNodes, outComments
}
