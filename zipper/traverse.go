package zipper

// Direction selects which way linear traversal operations walk.
type Direction int

const (
	// Forward walks in depth-first pre-order.
	Forward Direction = iota
	// Backward walks the same numbering in reverse.
	Backward
)

// Next moves one step forward in depth-first pre-order: into the first
// child, else to the next sibling, else to the nearest ancestor's next
// sibling. Returns nil at the very end of the tree.
func (z *Zipper) Next() *Zipper {
	if d := z.Down(); d != nil {
		return d
	}

	return z.skipForward()
}

// Prev moves one step backward in the same pre-order numbering: to the
// previous sibling's deepest rightmost descendant, else to the parent.
// Returns nil at the very start of the tree.
func (z *Zipper) Prev() *Zipper {
	if l := z.Left(); l != nil {
		return deepestRightmost(l)
	}

	return z.Up()
}

// Skip moves past the focus's entire subtree: to the adjacent sibling
// in the given direction, or up until an ancestor has one. Returns nil
// only at the absolute end (or start) of the tree.
func (z *Zipper) Skip(dir Direction) *Zipper {
	if dir == Backward {
		return z.skipBackward()
	}

	return z.skipForward()
}

func (z *Zipper) skipForward() *Zipper {
	for {
		if r := z.Right(); r != nil {
			return r
		}

		z = z.Up()
		if z == nil {
			return nil
		}
	}
}

func (z *Zipper) skipBackward() *Zipper {
	for {
		if l := z.Left(); l != nil {
			return l
		}

		z = z.Up()
		if z == nil {
			return nil
		}
	}
}

// Traverse visits every node of the subtree rooted at the focus in
// depth-first pre-order, applying f at each focus. f must return the
// zipper to resume from (typically its argument, possibly edited). The
// result is focused where z was, with the rewritten subtree in place;
// Root on it yields the full reassembled tree.
func (z *Zipper) Traverse(f func(*Zipper) *Zipper) *Zipper {
	if z.path == nil {
		return traverseSub(z, f)
	}

	sub := traverseSub(Zip(z.focus), f)

	return z.Replace(sub.focus)
}

// TraverseAcc is Traverse threading an accumulator through every visit.
func TraverseAcc[A any](z *Zipper, acc A, f func(*Zipper, A) (*Zipper, A)) (*Zipper, A) {
	lifted := func(cur *Zipper, a A) (Directive, *Zipper, A) {
		next, a := f(cur, a)

		return Continue, next, a
	}

	return TraverseWhileAcc(z, acc, lifted)
}

// TraverseWhile walks the subtree rooted at the focus, letting f steer:
// Continue advances in pre-order, Skip advances past the returned
// focus's subtree, Halt stops at once. The walk always reassembles; the
// result is focused where z was.
func (z *Zipper) TraverseWhile(f func(*Zipper) (Directive, *Zipper)) *Zipper {
	lifted := func(cur *Zipper, _ struct{}) (Directive, *Zipper, struct{}) {
		d, next := f(cur)

		return d, next, struct{}{}
	}

	out, _ := TraverseWhileAcc(z, struct{}{}, lifted)

	return out
}

// TraverseWhileAcc is TraverseWhile threading an accumulator.
func TraverseWhileAcc[A any](z *Zipper, acc A, f func(*Zipper, A) (Directive, *Zipper, A)) (*Zipper, A) {
	if z.path == nil {
		return traverseWhileSub(z, acc, f)
	}

	sub, acc := traverseWhileSub(Zip(z.focus), acc, f)

	return z.Replace(sub.focus), acc
}

func traverseSub(z *Zipper, f func(*Zipper) *Zipper) *Zipper {
	for {
		z = f(z)

		n := z.Next()
		if n == nil {
			return z.Top()
		}

		z = n
	}
}

func traverseWhileSub[A any](z *Zipper, acc A, f func(*Zipper, A) (Directive, *Zipper, A)) (*Zipper, A) {
	for {
		d, cur, a := f(z, acc)
		acc = a

		var n *Zipper

		switch d {
		case Halt:
			return cur.Top(), acc
		case Skip:
			n = cur.skipForward()
		default:
			n = cur.Next()
		}

		if n == nil {
			return cur.Top(), acc
		}

		z = n
	}
}

// Find scans linearly from the focus (inclusive) in the given direction
// and returns the first zipper whose node satisfies pred, or nil.
func (z *Zipper) Find(dir Direction, pred func(*Zipper) bool) *Zipper {
	for cur := z; cur != nil; {
		if pred(cur) {
			return cur
		}

		if dir == Backward {
			cur = cur.Prev()
		} else {
			cur = cur.Next()
		}
	}

	return nil
}

// Any reports whether any node in the subtree rooted at the focus
// satisfies pred, short-circuiting on the first hit.
func (z *Zipper) Any(pred func(*Zipper) bool) bool {
	found := false

	lifted := func(cur *Zipper, _ struct{}) (Directive, *Zipper, struct{}) {
		if pred(cur) {
			found = true

			return Halt, cur, struct{}{}
		}

		return Continue, cur, struct{}{}
	}

	TraverseWhileAcc(z, struct{}{}, lifted)

	return found
}
