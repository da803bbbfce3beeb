package rules

import (
	"restyle/rewrite"
	"restyle/tree"
	"restyle/zipper"
)

// Form labels the case-to-if rewrite recognizes and produces.
const (
	FormCase = "case"
	FormIf   = "if"
)

// CaseToIf rewrites a case over a boolean with exactly a true clause
// and a false clause into the equivalent if form:
//
//	(case x {true a} {false b})  →  (if x a b)
//
// The rewrite is applied bottom-up to the whole matched subtree before
// the replacement is installed, and the rule then returns Skip: the
// replacement needs no further visits, and revisiting it would be
// wasted work at best. Re-running the rule on its own output is a
// no-op, which is what keeps the pipeline idempotent.
func CaseToIf() rewrite.Rule {
	return caseToIf{}
}

type caseToIf struct{}

func (caseToIf) Name() string { return NameCaseToIf }

func (caseToIf) Run(z *zipper.Zipper, ctx rewrite.Context) (zipper.Directive, *zipper.Zipper, rewrite.Context, error) {
	if !matchesBooleanCase(z.Node()) {
		return zipper.Continue, z, ctx, nil
	}

	return zipper.Skip, z.Replace(rewriteCases(z.Node())), ctx, nil
}

// rewriteCases rewrites every boolean case in a subtree, children
// first so nested cases inside clause bodies are handled in the same
// pass.
func rewriteCases(n tree.Node) tree.Node {
	kids := tree.Children(n)
	if len(kids) > 0 {
		rewritten := make([]tree.Node, len(kids))
		for i, k := range kids {
			rewritten[i] = rewriteCases(k)
		}

		n = tree.ReplaceChildren(n, rewritten)
	}

	if !matchesBooleanCase(n) {
		return n
	}

	form := n.(tree.Form)
	scrutinee := form.Children[0]
	thenBody, elseBody := clauseBodies(form)

	return tree.Form{
		Label:    FormIf,
		Meta:     form.Meta,
		Children: []tree.Node{scrutinee, thenBody, elseBody},
	}
}

// matchesBooleanCase requires (case scrutinee {true …} {false …}) with
// the two clauses in either order.
func matchesBooleanCase(n tree.Node) bool {
	form, ok := n.(tree.Form)
	if !ok || form.Label != FormCase || form.Head != nil || len(form.Children) != 3 {
		return false
	}

	t, tOK := clauseFor(form, true)
	f, fOK := clauseFor(form, false)

	return tOK && fOK && t != f
}

// clauseFor finds the clause index guarded by the given boolean.
func clauseFor(form tree.Form, guard bool) (int, bool) {
	for i, child := range form.Children[1:] {
		pair, ok := child.(tree.Pair)
		if !ok {
			continue
		}

		leaf, ok := pair.First.(tree.Leaf)
		if ok && leaf.Kind == tree.LeafBool && leaf.Value == guard {
			return i + 1, true
		}
	}

	return 0, false
}

func clauseBodies(form tree.Form) (thenBody, elseBody tree.Node) {
	t, _ := clauseFor(form, true)
	f, _ := clauseFor(form, false)

	return form.Children[t].(tree.Pair).Second, form.Children[f].(tree.Pair).Second
}
