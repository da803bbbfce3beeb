package zipper

import "restyle/tree"

// Replace swaps the focused node, keeping the breadcrumb.
func (z *Zipper) Replace(n tree.Node) *Zipper {
	return &Zipper{focus: n, path: z.path}
}

// Update applies f to the focused node and replaces it with the result.
func (z *Zipper) Update(f func(tree.Node) tree.Node) *Zipper {
	return z.Replace(f(z.focus))
}

// Remove deletes the focused node. The returned zipper focuses on the
// node that precedes it in depth-first pre-order: the previous sibling's
// deepest rightmost descendant, or the parent when there is no previous
// sibling. Removing the root is a programmer error and panics.
func (z *Zipper) Remove() *Zipper {
	if z.path == nil {
		panic("zipper: cannot remove the root node")
	}

	if n := len(z.path.left); n > 0 {
		prev := &Zipper{
			focus: z.path.left[n-1],
			path: &path{
				left:   z.path.left[:n-1:n-1],
				right:  z.path.right,
				parent: z.path.parent,
			},
		}

		return deepestRightmost(prev)
	}

	parent := z.path.parent

	return &Zipper{
		focus: tree.ReplaceChildren(parent.focus, z.path.right),
		path:  parent.path,
	}
}

// InsertLeft adds one sibling before the focus without moving it.
// Panics at the root, where no siblings can exist.
func (z *Zipper) InsertLeft(n tree.Node) *Zipper {
	return z.PrependSiblings([]tree.Node{n})
}

// InsertRight adds one sibling after the focus without moving it.
// Panics at the root.
func (z *Zipper) InsertRight(n tree.Node) *Zipper {
	return z.InsertSiblings([]tree.Node{n})
}

// PrependSiblings inserts nodes immediately before the focus, in order,
// without moving it. Panics at the root.
func (z *Zipper) PrependSiblings(nodes []tree.Node) *Zipper {
	if z.path == nil {
		panic("zipper: cannot insert siblings at the root node")
	}

	return &Zipper{
		focus: z.focus,
		path: &path{
			left:   appendCopy(z.path.left, nodes...),
			right:  z.path.right,
			parent: z.path.parent,
		},
	}
}

// InsertSiblings inserts nodes immediately after the focus, in order,
// without moving it. Panics at the root.
func (z *Zipper) InsertSiblings(nodes []tree.Node) *Zipper {
	if z.path == nil {
		panic("zipper: cannot insert siblings at the root node")
	}

	return &Zipper{
		focus: z.focus,
		path: &path{
			left:   z.path.left,
			right:  appendCopy(nodes, z.path.right...),
			parent: z.path.parent,
		},
	}
}

// InsertChild adds n as the first child of the focus without moving.
func (z *Zipper) InsertChild(n tree.Node) *Zipper {
	kids := tree.Children(z.focus)

	return z.Replace(tree.ReplaceChildren(z.focus, prepend(n, kids)))
}

// AppendChild adds n as the last child of the focus without moving.
func (z *Zipper) AppendChild(n tree.Node) *Zipper {
	kids := tree.Children(z.focus)

	return z.Replace(tree.ReplaceChildren(z.focus, appendCopy(kids, n)))
}

// deepestRightmost descends to the last child repeatedly.
func deepestRightmost(z *Zipper) *Zipper {
	for {
		d := z.Down()
		if d == nil {
			return z
		}

		z = d.Rightmost()
	}
}
