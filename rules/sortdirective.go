package rules

import (
	"fmt"
	"sort"
	"strings"

	"restyle/comments"
	"restyle/rewrite"
	"restyle/tree"
	"restyle/zipper"
)

// DirectiveSort marks a node whose children the author wants kept
// sorted. It is written in a comment directly above the node:
//
//	# restyle:sort
//	(deps
//	  (b)
//	  (a))
const DirectiveSort = "restyle:sort"

// SortDirective sorts the children of any node annotated with a
// restyle:sort comment. Children are ordered by their printed shape,
// so the result is stable across runs. When the children live on
// separate lines the block is renumbered through the ledger so each
// child keeps its own comments; children sharing one line are sorted
// in place.
func SortDirective() rewrite.Rule {
	return sortDirective{}
}

type sortDirective struct{}

func (sortDirective) Name() string { return NameSortDirective }

func (sortDirective) Run(z *zipper.Zipper, ctx rewrite.Context) (zipper.Directive, *zipper.Zipper, rewrite.Context, error) {
	line, ok := tree.NodeLine(z.Node())
	if !ok || !hasSortDirective(ctx.Comments, line) {
		return zipper.Continue, z, ctx, nil
	}

	kids := tree.Children(z.Node())
	if len(kids) < 2 {
		return zipper.Continue, z, ctx, nil
	}

	sorted := make([]tree.Node, len(kids))
	copy(sorted, kids)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sortKey(sorted[i]) < sortKey(sorted[j])
	})

	if sameOrder(kids, sorted) {
		return zipper.Skip, z, ctx, nil
	}

	if !oneLine(kids) {
		first, _, _ := tree.LineSpan(kids[0])
		firstLine := first - len(comments.Preceding(ctx.Comments, first))
		sorted, ctx.Comments = comments.ReorderSiblings(sorted, ctx.Comments, firstLine)
	}

	return zipper.Skip, z.Replace(tree.ReplaceChildren(z.Node(), sorted)), ctx, nil
}

func hasSortDirective(cs []comments.Comment, line int) bool {
	for _, c := range comments.Preceding(cs, line) {
		if strings.Contains(c.Text, DirectiveSort) {
			return true
		}
	}

	return false
}

// oneLine reports whether every child sits on the same source line.
// Children without line metadata don't disqualify the block.
func oneLine(kids []tree.Node) bool {
	seen := -1

	for _, k := range kids {
		first, last, ok := tree.LineSpan(k)
		if !ok {
			continue
		}

		if first != last || (seen != -1 && first != seen) {
			return false
		}

		seen = first
	}

	return true
}

// sortKey renders a node into a comparable string: a form's label (or
// its head's key), a leaf's source text, a pair's first key. Children
// are appended so forms with equal labels still order deterministically.
func sortKey(n tree.Node) string {
	switch v := n.(type) {
	case tree.Form:
		key := v.Label
		if v.Head != nil {
			key = sortKey(v.Head)
		}

		for _, child := range v.Children {
			key += " " + sortKey(child)
		}

		return key
	case tree.Pair:
		return sortKey(v.First) + " " + sortKey(v.Second)
	case tree.Block:
		parts := make([]string, len(v))
		for i, child := range v {
			parts[i] = sortKey(child)
		}

		return strings.Join(parts, " ")
	case tree.Leaf:
		if v.Text != "" {
			return v.Text
		}

		if name, ok := tree.SymName(v); ok {
			return name
		}

		return fmt.Sprint(v.Value)
	default:
		return ""
	}
}
