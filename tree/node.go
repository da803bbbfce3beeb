package tree

// Node is the closed set of tree shapes. All implementations are value
// types; a Node is never mutated after construction.
type Node interface {
	node()
}

// Form is a labeled construct: Label names it, Meta carries its source
// line and formatting hints, Children are its ordered arguments.
//
// When Head is non-nil the form is label-less: its head position is
// itself a node (e.g. a computed callee) and Label is ignored.
type Form struct {
	Label    string
	Head     Node
	Meta     Meta
	Children []Node
}

// Pair is a structural 2-tuple with no label of its own.
type Pair struct {
	First  Node
	Second Node
}

// Block is an ordered sequence of sibling nodes with no wrapping label,
// e.g. the top level of a source file.
type Block []Node

// LeafKind discriminates atomic literal values.
type LeafKind int

const (
	LeafInt LeafKind = iota
	LeafFloat
	LeafStr
	LeafBool
	LeafSym
)

// Leaf is an atomic literal. Text preserves the original source
// rendering (numeric base, digit separators, string delimiter) and is
// preferred by printers when non-empty; Value is the decoded value.
// Line is the 1-based source line, 0 when unknown.
type Leaf struct {
	Kind  LeafKind
	Value any
	Text  string
	Line  int
}

func (Form) node()  {}
func (Pair) node()  {}
func (Block) node() {}
func (Leaf) node()  {}

// NewForm builds a labeled form at the given source line.
func NewForm(label string, line int, children ...Node) Form {
	return Form{Label: label, Meta: LineMeta(line), Children: children}
}

// Sym builds a symbol leaf.
func Sym(name string, line int) Leaf {
	return Leaf{Kind: LeafSym, Value: name, Line: line}
}

// Str builds a string leaf. Text is left empty; printers fall back to a
// double-quoted canonical rendering.
func Str(s string, line int) Leaf {
	return Leaf{Kind: LeafStr, Value: s, Line: line}
}

// Int builds an integer leaf with a decimal canonical rendering.
func Int(v int64, line int) Leaf {
	return Leaf{Kind: LeafInt, Value: v, Line: line}
}

// Float builds a floating-point leaf.
func Float(v float64, line int) Leaf {
	return Leaf{Kind: LeafFloat, Value: v, Line: line}
}

// Bool builds a boolean leaf.
func Bool(v bool, line int) Leaf {
	return Leaf{Kind: LeafBool, Value: v, Line: line}
}

// SymName returns the symbol name of n when n is a symbol leaf.
func SymName(n Node) (string, bool) {
	leaf, ok := n.(Leaf)
	if !ok || leaf.Kind != LeafSym {
		return "", false
	}

	name, ok := leaf.Value.(string)

	return name, ok
}
