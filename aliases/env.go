// Package aliases tracks, within one lexical scope, which short names
// currently denote which fully-qualified paths. Several rewrite rules
// consult it to decide whether a reference must be lengthened or
// shortened.
package aliases

import (
	"sort"
	"strings"

	"restyle/tree"
	"restyle/zipper"
)

// Node labels the alias machinery recognizes.
const (
	// FormAlias labels an alias directive: (alias (qual Foo Bar)).
	FormAlias = "alias"
	// FormQual labels a fully-qualified reference: (qual Foo Bar).
	FormQual = "qual"
	// SymAs is the option key of an explicit short name:
	// (alias (qual Foo Bar) {as Baz}).
	SymAs = "as"
)

// Env maps a short name to the fully-qualified path it denotes, as a
// sequence of path segments. Treated as immutable; Define returns an
// updated copy.
type Env map[string][]string

// Define folds the alias directives found among nodes into a copy of
// env. Paths are expanded through any chained definition already in
// scope, so stored paths are fully qualified. Directives that are
// dynamic or self-referential — a qual whose segments are not all plain
// symbols, or one that resolves to its own short name — are left
// untouched (identity, not guessed at). Short names in excluded are
// never defined.
//
// At most one definition per short name survives. On conflicting
// definitions the lexicographically-last path wins, independent of
// source order.
func Define(env Env, nodes []tree.Node, excluded map[string]struct{}) Env {
	out := make(Env, len(env)+len(nodes))
	for k, v := range env {
		out[k] = v
	}

	for _, n := range nodes {
		form, ok := n.(tree.Form)
		if !ok || form.Label != FormAlias || len(form.Children) == 0 {
			continue
		}

		segments, ok := QualSegments(form.Children[0])
		if !ok {
			// Dynamic or malformed directive; leave it alone.
			continue
		}

		short := segments[len(segments)-1]
		if as, ok := asOption(form.Children); ok {
			short = as
		}

		if _, skip := excluded[short]; skip {
			continue
		}

		expanded := Expand(out, segments)
		if len(expanded) == 1 && expanded[0] == short {
			// (alias (qual Foo)) defining Foo as itself: self-referential.
			continue
		}

		if prev, exists := out[short]; exists {
			if strings.Join(prev, ".") > strings.Join(expanded, ".") {
				continue
			}
		}

		out[short] = expanded
	}

	return out
}

// Expand rewrites path's head segment through env when it is defined,
// and returns path unchanged otherwise. Expansion is a single step: the
// stored paths are already chain-expanded by Define.
func Expand(env Env, path []string) []string {
	if len(path) == 0 {
		return path
	}

	full, ok := env[path[0]]
	if !ok {
		return path
	}

	out := make([]string, 0, len(full)+len(path)-1)
	out = append(out, full...)

	return append(out, path[1:]...)
}

// ExpandNode applies Expand to every qualified reference in the subtree
// rooted at n and returns the rewritten subtree.
func ExpandNode(env Env, n tree.Node) tree.Node {
	out := zipper.Zip(n).TraverseWhile(func(z *zipper.Zipper) (zipper.Directive, *zipper.Zipper) {
		segments, ok := QualSegments(z.Node())
		if !ok {
			return zipper.Continue, z
		}

		expanded := Expand(env, segments)
		line, _ := tree.NodeLine(z.Node())

		return zipper.Skip, z.Replace(Qual(expanded, line))
	})

	return out.Root()
}

// Invert builds the opposite mapping, joined path → short name, for
// reference-shortening rewrites. When several short names denote the
// same path the lexicographically-last non-default one is kept, where
// "default" means the short name equal to the path's last segment.
func Invert(env Env) map[string]string {
	shorts := make([]string, 0, len(env))
	for short := range env {
		shorts = append(shorts, short)
	}

	sort.Strings(shorts)

	out := make(map[string]string, len(env))

	for _, short := range shorts {
		path := env[short]
		joined := strings.Join(path, ".")
		isDefault := short == path[len(path)-1]

		prev, exists := out[joined]
		if !exists {
			out[joined] = short

			continue
		}

		prevDefault := prev == path[len(path)-1]

		switch {
		case prevDefault && !isDefault:
			out[joined] = short
		case prevDefault == isDefault && short > prev:
			out[joined] = short
		}
	}

	return out
}

// QualSegments extracts the segments of a (qual …) form whose children
// are all plain symbols. ok is false for anything else.
func QualSegments(n tree.Node) ([]string, bool) {
	form, ok := n.(tree.Form)
	if !ok || form.Label != FormQual || len(form.Children) == 0 {
		return nil, false
	}

	segments := make([]string, len(form.Children))

	for i, child := range form.Children {
		name, ok := tree.SymName(child)
		if !ok {
			return nil, false
		}

		segments[i] = name
	}

	return segments, true
}

// Qual builds a (qual …) form from path segments at the given line.
func Qual(segments []string, line int) tree.Form {
	kids := make([]tree.Node, len(segments))
	for i, s := range segments {
		kids[i] = tree.Sym(s, line)
	}

	return tree.NewForm(FormQual, line, kids...)
}

// asOption finds an explicit {as Name} pair among an alias directive's
// trailing children.
func asOption(children []tree.Node) (string, bool) {
	for _, child := range children[1:] {
		pair, ok := child.(tree.Pair)
		if !ok {
			continue
		}

		key, ok := tree.SymName(pair.First)
		if !ok || key != SymAs {
			continue
		}

		return tree.SymName(pair.Second)
	}

	return "", false
}
