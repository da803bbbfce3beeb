// Package comments keeps an out-of-band, line-indexed comment ledger
// consistent with a tree that is being restructured.
//
// Comments never live inside the tree. They are parsed once alongside
// it, associated to nodes only by numeric line proximity, and reattached
// by the printer purely by line order: before emitting a node the
// printer flushes every pending comment with a smaller-or-equal line.
// Any rewrite that reorders siblings or collapses line spans therefore
// has to treat line numbers as a resource to reassign explicitly —
// Displace, Shift and ReorderSiblings are those operations. Doing ad hoc
// per-rule line arithmetic instead is how comments end up attached to
// the wrong statement.
//
// This package degrades rather than fails: a comment that cannot be
// confidently reattached keeps its original line and may land next to a
// nearby (wrong) statement. That imprecision is accepted.
package comments
