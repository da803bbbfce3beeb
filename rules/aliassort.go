package rules

import (
	"sort"
	"strings"

	"restyle/aliases"
	"restyle/comments"
	"restyle/rewrite"
	"restyle/tree"
	"restyle/zipper"
)

// AliasSort sorts each contiguous run of alias directives inside a
// block by the path they introduce and drops exact duplicates. Each
// directive keeps its leading comments: the run is renumbered with the
// ledger so a comment above an alias travels with it.
func AliasSort() rewrite.Rule {
	return aliasSort{}
}

type aliasSort struct{}

func (aliasSort) Name() string { return NameAliasSort }

func (aliasSort) Run(z *zipper.Zipper, ctx rewrite.Context) (zipper.Directive, *zipper.Zipper, rewrite.Context, error) {
	block, ok := z.Node().(tree.Block)
	if !ok {
		return zipper.Continue, z, ctx, nil
	}

	kids, cs, changed := sortAliasRuns([]tree.Node(block), ctx.Comments)
	if !changed {
		return zipper.Continue, z, ctx, nil
	}

	ctx.Comments = cs

	return zipper.Continue, z.Replace(tree.Block(kids)), ctx, nil
}

// sortAliasRuns rewrites every maximal run of two or more sibling
// alias directives. Runs already in order are left byte-for-byte
// alone, which is what makes the rule idempotent: a sorted run is
// never renumbered again.
func sortAliasRuns(kids []tree.Node, cs []comments.Comment) ([]tree.Node, []comments.Comment, bool) {
	out := make([]tree.Node, len(kids))
	copy(out, kids)

	changed := false

	for i := 0; i < len(out); {
		if !isAliasDirective(out[i]) {
			i++

			continue
		}

		j := i + 1
		for j < len(out) && isAliasDirective(out[j]) {
			j++
		}

		if j-i >= 2 {
			sorted, csNext, runChanged := sortRun(out[i:j], cs)
			if runChanged {
				out = append(out[:i], append(sorted, out[j:]...)...)
				cs = csNext
				changed = true
				j = i + len(sorted)
			}
		}

		i = j
	}

	return out, cs, changed
}

// sortRun sorts one run by alias key, drops duplicates, and renumbers
// the survivors into the lines the run originally started on.
func sortRun(run []tree.Node, cs []comments.Comment) ([]tree.Node, []comments.Comment, bool) {
	sorted := make([]tree.Node, len(run))
	copy(sorted, run)
	sort.SliceStable(sorted, func(i, j int) bool {
		return aliasKey(sorted[i]) < aliasKey(sorted[j])
	})

	deduped := sorted[:0:len(sorted)]
	for _, n := range sorted {
		dup := false
		for _, kept := range deduped {
			if tree.EqualIgnoringLines(kept, n) {
				dup = true

				break
			}
		}

		if !dup {
			deduped = append(deduped, n)
		}
	}

	if len(deduped) == len(run) && sameOrder(run, deduped) {
		return run, cs, false
	}

	firstLine := runStart(run, cs)
	renumbered, cs := comments.ReorderSiblings(deduped, cs, firstLine)

	return renumbered, cs, true
}

// runStart is the line the run's block begins on, counting the first
// directive's leading comments as part of the block.
func runStart(run []tree.Node, cs []comments.Comment) int {
	first, _, ok := tree.LineSpan(run[0])
	if !ok {
		return 1
	}

	return first - len(comments.Preceding(cs, first))
}

func sameOrder(a, b []tree.Node) bool {
	for i := range a {
		if !tree.Equal(a[i], b[i]) {
			return false
		}
	}

	return true
}

func isAliasDirective(n tree.Node) bool {
	form, ok := n.(tree.Form)

	return ok && form.Label == aliases.FormAlias && form.Head == nil
}

// aliasKey orders directives by the joined path they bind, falling
// back to the empty string for dynamic directives so they sort first
// and stay put relative to each other.
func aliasKey(n tree.Node) string {
	form := n.(tree.Form)
	if len(form.Children) == 0 {
		return ""
	}

	segments, ok := aliases.QualSegments(form.Children[0])
	if !ok {
		return ""
	}

	return strings.Join(segments, ".")
}
