package tree

// TupleLabel is the label of the form a Pair degrades into when a
// structural edit leaves it with a child count other than two.
const TupleLabel = "{}"

// Children returns the ordered children of n under the canonical
// extraction rule:
//
//   - labeled Form → its Children
//   - head Form → the head followed by its Children
//   - Pair → its two elements
//   - Block → its own elements
//   - Leaf → nil
func Children(n Node) []Node {
	switch v := n.(type) {
	case Form:
		if v.Head != nil {
			out := make([]Node, 0, len(v.Children)+1)
			out = append(out, v.Head)

			return append(out, v.Children...)
		}

		return v.Children
	case Pair:
		return []Node{v.First, v.Second}
	case Block:
		return v
	default:
		return nil
	}
}

// IsBranch reports whether n has at least one child.
func IsBranch(n Node) bool {
	return len(Children(n)) > 0
}

// ReplaceChildren rebuilds n with a new child sequence. It is total:
// shapes that cannot hold the given count degrade deterministically
// rather than fail.
//
//   - labeled Form → same label and meta, new children
//   - head Form → kids[0] becomes the head; with no kids the form
//     degrades to an empty Block
//   - Pair → a Pair when len(kids) == 2, otherwise a TupleLabel form
//   - Block → a Block of kids
//   - Leaf → the leaf itself when kids is empty, otherwise a Block
func ReplaceChildren(n Node, kids []Node) Node {
	switch v := n.(type) {
	case Form:
		if v.Head != nil {
			if len(kids) == 0 {
				return Block(nil)
			}

			return Form{Head: kids[0], Meta: v.Meta, Children: kids[1:]}
		}

		return Form{Label: v.Label, Meta: v.Meta, Children: kids}
	case Pair:
		if len(kids) == 2 {
			return Pair{First: kids[0], Second: kids[1]}
		}

		return Form{Label: TupleLabel, Children: kids}
	case Block:
		return Block(kids)
	default:
		if len(kids) == 0 {
			return n
		}

		return Block(kids)
	}
}
