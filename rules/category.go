package rules

// Category is a bitmask selecting which groups of built-in rules a run
// applies.
type Category int

const (
	// CategoryStyle covers ordering and layout rewrites that never
	// change behavior (alias sorting, sort directives).
	CategoryStyle Category = 1 << iota
	// CategoryReadability covers literal reformatting (digit
	// separators in large numbers).
	CategoryReadability
	// CategoryMigration covers rewrites that trade one construct for a
	// clearer equivalent (two-clause boolean case to if).
	CategoryMigration

	// CategoryAll is every category combined.
	CategoryAll = (1 << iota) - 1
	// CategoryNone selects no built-in rules.
	CategoryNone = 0
)

// Has reports whether c includes all bits of other.
func (c Category) Has(other Category) bool {
	return c&other == other
}
