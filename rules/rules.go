// Package rules ships the built-in rewrite rules. Each is an ordinary
// rewrite.Rule; the pipeline is parametric over the list, so callers
// can mix these with their own rules or drop them entirely.
package rules

import "restyle/rewrite"

// Rule names, as they appear in configuration and reports.
const (
	NameAliasSort         = "alias-sort"
	NameAliasExpand       = "alias-expand"
	NameSortDirective     = "sort-directive"
	NameCaseToIf          = "case-to-if"
	NameNumberUnderscores = "number-underscores"
)

// Default returns the built-in rules in their fixed application order,
// filtered to the allowed categories. Order matters: structural
// rewrites run before ordering rules so freshly created forms get
// sorted too, and literal formatting runs last.
func Default(allowed Category) []rewrite.Rule {
	var out []rewrite.Rule

	if allowed.Has(CategoryMigration) {
		out = append(out, CaseToIf())
	}

	if allowed.Has(CategoryStyle) {
		out = append(out, AliasSort(), SortDirective())
	}

	if allowed.Has(CategoryReadability) {
		out = append(out, NumberUnderscores())
	}

	return out
}

// ByName returns the named built-in rule, or ok=false. Opt-in rules
// not part of any Default category, like alias-expand, are found here
// too; alias-expand comes with no exclusions.
func ByName(name string) (rewrite.Rule, bool) {
	switch name {
	case NameAliasSort:
		return AliasSort(), true
	case NameAliasExpand:
		return AliasExpand(nil), true
	case NameSortDirective:
		return SortDirective(), true
	case NameCaseToIf:
		return CaseToIf(), true
	case NameNumberUnderscores:
		return NumberUnderscores(), true
	default:
		return nil, false
	}
}
