// Package zipper provides a purely-functional, backtrackable cursor over
// a tree.Node, plus the traversal-control protocol rewrite rules are
// built on.
//
// A Zipper is a focus node together with a breadcrumb describing how to
// rebuild every ancestor: the parent zipper is held by value and
// reconstructed through tree.ReplaceChildren on Up — there are no live
// back-pointers that could go stale under immutable editing. Every
// operation returns a new zipper; none mutates shared state, so a zipper
// value can be kept and resumed at any time.
//
// # Navigation
//
// Down, Up, Left, Right, Next, Prev and Skip return nil when there is no
// target (bottom of a leaf, left edge, end of the walk). Callers handle
// absence explicitly. Only structurally illegal edits — Remove or
// sibling insertion at the root — panic, since they indicate a
// programmer error rather than a normal tree shape.
//
// # Traversal control
//
// TraverseWhile threads a Directive through a depth-first pre-order
// walk:
//
//   - Continue advances to the pre-order successor,
//   - Skip advances past the current focus's subtree entirely,
//   - Halt stops the walk immediately.
//
// In every case the walk reassembles the breadcrumb back to the root, so
// edits made mid-walk are never lost. Skip is the tool for a visitor
// that has just replaced a subtree it knows needs no further visits;
// returning Continue there instead can revisit freshly created nodes
// forever.
package zipper
