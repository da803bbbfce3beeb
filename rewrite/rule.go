package rewrite

import (
	"restyle/comments"
	"restyle/tree"
	"restyle/zipper"
)

// Context is the shared state threaded through one rule's traversal.
// It always carries the comment ledger and the file being rewritten;
// Extras is an open bag for rule-local accumulators. A fresh Context is
// built for each rule from the previous rule's output ledger.
type Context struct {
	Comments []comments.Comment
	File     string
	Extras   map[string]any
}

// Extra returns a rule-local accumulator, or nil when unset.
func (c Context) Extra(key string) any {
	return c.Extras[key]
}

// WithExtra returns a copy of the context with key set. The Extras map
// is copied so contexts from different traversal steps never alias.
func (c Context) WithExtra(key string, value any) Context {
	extras := make(map[string]any, len(c.Extras)+1)
	for k, v := range c.Extras {
		extras[k] = v
	}

	extras[key] = value
	c.Extras = extras

	return c
}

// Rule is one rewrite pass. Run is called at every focus of a
// depth-first pre-order traversal; it returns the traversal directive,
// the zipper to resume from (edited or not), and the updated context.
// A non-nil error aborts the rule's entire traversal.
type Rule interface {
	Name() string
	Run(z *zipper.Zipper, ctx Context) (zipper.Directive, *zipper.Zipper, Context, error)
}

// NodeFunc is a pure "one node in, one node out" transform.
type NodeFunc func(tree.Node) tree.Node

// FromNodeFunc lifts a pure node transform into the Rule contract: the
// transform is applied at every focus under Continue, with no traversal
// control logic of its own.
func FromNodeFunc(name string, f NodeFunc) Rule {
	return nodeFuncRule{name: name, f: f}
}

type nodeFuncRule struct {
	name string
	f    NodeFunc
}

func (r nodeFuncRule) Name() string {
	return r.name
}

func (r nodeFuncRule) Run(z *zipper.Zipper, ctx Context) (zipper.Directive, *zipper.Zipper, Context, error) {
	return zipper.Continue, z.Update(r.f), ctx, nil
}
