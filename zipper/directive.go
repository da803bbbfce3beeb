package zipper

//go:generate go tool stringer -type=Directive

// Directive is the traversal-control verdict a visitor returns to
// TraverseWhile and to the rewrite driver.
type Directive int

const (
	// Continue advances to the pre-order successor of the returned
	// focus, descending into its children.
	Continue Directive = iota
	// Skip advances past the returned focus's entire subtree. A visitor
	// that has just installed a replacement it knows needs no further
	// visits must return Skip, or it may revisit its own output forever.
	Skip
	// Halt stops the traversal immediately; the tree is still
	// reassembled from the breadcrumb up to the root.
	Halt
)
