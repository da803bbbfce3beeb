// Package tree defines the immutable syntax tree all other packages
// operate on.
//
// A node is one of four shapes:
//
//   - Form: a labeled construct with metadata and ordered children, e.g.
//     (alias (qual Foo Bar)). A Form may instead carry a Head node in
//     place of a label, for constructs whose head is itself an expression.
//   - Pair: exactly two unlabeled children (a structural 2-tuple).
//   - Block: a plain ordered sequence of sibling nodes with no wrapper.
//   - Leaf: an atomic literal (int, float, string, bool, symbol) that
//     carries its own line and original source text inline.
//
// # Immutability
//
// Nodes are values. Every "mutation" in this module tree produces a new
// node; helpers such as ReplaceChildren and ShiftLines never touch their
// input. This is what makes the zipper package's backtracking cursor
// sound without defensive copying.
//
// # Children extraction
//
// Children and ReplaceChildren define the one canonical way to view any
// node as a sequence of children and to rebuild it from an edited
// sequence. The pair satisfies the round-trip law
//
//	Children(ReplaceChildren(n, Children(n))) == Children(n)
//
// for every node shape, which is what keeps arbitrary structural edits
// well-formed.
package tree
