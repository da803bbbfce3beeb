package rules

import (
	"restyle/aliases"
	"restyle/rewrite"
	"restyle/tree"
	"restyle/zipper"
)

// AliasExpand replaces every qualified reference with the full path
// its alias denotes, using the directives in scope at the top level.
// Short names in excluded are never expanded. The directives
// themselves stay as written.
//
// Expansion is stable: once a reference is fully qualified its head is
// no longer a defined short name, so a second run finds nothing to do.
func AliasExpand(excluded map[string]struct{}) rewrite.Rule {
	return aliasExpand{excluded: excluded}
}

type aliasExpand struct {
	excluded map[string]struct{}
}

func (aliasExpand) Name() string { return NameAliasExpand }

func (r aliasExpand) Run(z *zipper.Zipper, ctx rewrite.Context) (zipper.Directive, *zipper.Zipper, rewrite.Context, error) {
	if !z.IsRoot() {
		return zipper.Continue, z, ctx, nil
	}

	block, ok := z.Node().(tree.Block)
	if !ok {
		return zipper.Halt, z, ctx, nil
	}

	env := aliases.Define(nil, []tree.Node(block), r.excluded)
	if len(env) == 0 {
		return zipper.Halt, z, ctx, nil
	}

	kids := make([]tree.Node, len(block))

	for i, n := range block {
		if isAliasDirective(n) {
			kids[i] = n

			continue
		}

		kids[i] = aliases.ExpandNode(env, n)
	}

	return zipper.Halt, z.Replace(tree.Block(kids)), ctx, nil
}
