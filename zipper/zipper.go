package zipper

import "restyle/tree"

// Zipper is a cursor into a tree: the focused node plus the breadcrumb
// needed to rebuild everything above it. The zero breadcrumb (nil path)
// marks the root position.
type Zipper struct {
	focus tree.Node
	path  *path
}

// path records, for a non-root focus, the siblings on either side and
// the parent cursor one level up. The parent node itself is rebuilt on
// demand via tree.ReplaceChildren, never referenced in place.
type path struct {
	left   []tree.Node // siblings before the focus, in source order
	right  []tree.Node // siblings after the focus, in source order
	parent *Zipper
}

// Zip wraps a root node in a zipper.
func Zip(n tree.Node) *Zipper {
	return &Zipper{focus: n}
}

// Node returns the focused node.
func (z *Zipper) Node() tree.Node {
	return z.focus
}

// IsRoot reports whether the focus is the root of the tree.
func (z *Zipper) IsRoot() bool {
	return z.path == nil
}

// Children returns the focus's children under the tree package's
// canonical extraction rule.
func (z *Zipper) Children() []tree.Node {
	return tree.Children(z.focus)
}

// Down moves to the first child, or returns nil if the focus has none.
func (z *Zipper) Down() *Zipper {
	kids := tree.Children(z.focus)
	if len(kids) == 0 {
		return nil
	}

	return &Zipper{
		focus: kids[0],
		path:  &path{right: kids[1:], parent: z},
	}
}

// Up moves to the parent, rebuilding it from the current sibling lists,
// or returns nil at the root.
func (z *Zipper) Up() *Zipper {
	if z.path == nil {
		return nil
	}

	kids := make([]tree.Node, 0, len(z.path.left)+1+len(z.path.right))
	kids = append(kids, z.path.left...)
	kids = append(kids, z.focus)
	kids = append(kids, z.path.right...)

	parent := z.path.parent

	return &Zipper{
		focus: tree.ReplaceChildren(parent.focus, kids),
		path:  parent.path,
	}
}

// Left moves to the previous sibling, or returns nil at the left edge
// or the root.
func (z *Zipper) Left() *Zipper {
	if z.path == nil || len(z.path.left) == 0 {
		return nil
	}

	n := len(z.path.left)

	return &Zipper{
		focus: z.path.left[n-1],
		path: &path{
			left:   z.path.left[:n-1:n-1],
			right:  prepend(z.focus, z.path.right),
			parent: z.path.parent,
		},
	}
}

// Right moves to the next sibling, or returns nil at the right edge or
// the root.
func (z *Zipper) Right() *Zipper {
	if z.path == nil || len(z.path.right) == 0 {
		return nil
	}

	return &Zipper{
		focus: z.path.right[0],
		path: &path{
			left:   appendCopy(z.path.left, z.focus),
			right:  z.path.right[1:],
			parent: z.path.parent,
		},
	}
}

// Leftmost moves to the first sibling; identity when already there or
// at the root.
func (z *Zipper) Leftmost() *Zipper {
	if z.path == nil || len(z.path.left) == 0 {
		return z
	}

	rest := make([]tree.Node, 0, len(z.path.left)+len(z.path.right))
	rest = append(rest, z.path.left[1:]...)
	rest = append(rest, z.focus)
	rest = append(rest, z.path.right...)

	return &Zipper{
		focus: z.path.left[0],
		path:  &path{right: rest, parent: z.path.parent},
	}
}

// Rightmost moves to the last sibling; identity when already there or
// at the root.
func (z *Zipper) Rightmost() *Zipper {
	if z.path == nil || len(z.path.right) == 0 {
		return z
	}

	n := len(z.path.right)
	before := make([]tree.Node, 0, len(z.path.left)+len(z.path.right))
	before = append(before, z.path.left...)
	before = append(before, z.focus)
	before = append(before, z.path.right[:n-1]...)

	return &Zipper{
		focus: z.path.right[n-1],
		path:  &path{left: before, parent: z.path.parent},
	}
}

// Top walks Up until the root position.
func (z *Zipper) Top() *Zipper {
	for z.path != nil {
		z = z.Up()
	}

	return z
}

// Root reassembles and returns the whole tree.
func (z *Zipper) Root() tree.Node {
	return z.Top().focus
}

// prepend returns a fresh slice with n in front of rest.
func prepend(n tree.Node, rest []tree.Node) []tree.Node {
	out := make([]tree.Node, 0, len(rest)+1)
	out = append(out, n)

	return append(out, rest...)
}

// appendCopy appends onto a fresh backing array so sibling slices are
// never shared between zipper values.
func appendCopy(s []tree.Node, extra ...tree.Node) []tree.Node {
	out := make([]tree.Node, 0, len(s)+len(extra))
	out = append(out, s...)

	return append(out, extra...)
}
