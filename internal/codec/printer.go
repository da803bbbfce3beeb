package codec

import (
	"sort"
	"strconv"
	"strings"

	"restyle/comments"
	"restyle/tree"
)

// DefaultMaxWidth is the printer's default line width.
const DefaultMaxWidth = 98

// Options configures Print.
type Options struct {
	// MaxWidth is the width above which a composite node is broken
	// over multiple lines. Zero means DefaultMaxWidth.
	MaxWidth int
}

// Print renders a tree and its comment ledger back to text. Comment
// placement is purely line-number driven: before each node is emitted,
// every pending comment with a smaller-or-equal recorded line is
// flushed. Literal leaves print their original Text when present, so
// numeric bases and string delimiters survive untouched.
func Print(root tree.Node, cs []comments.Comment, opts Options) string {
	width := opts.MaxWidth
	if width <= 0 {
		width = DefaultMaxWidth
	}

	pending := make([]comments.Comment, len(cs))
	copy(pending, cs)
	sort.SliceStable(pending, func(i, j int) bool { return pending[i].Line < pending[j].Line })

	p := &printer{pending: pending, width: width}

	top, ok := root.(tree.Block)
	if !ok {
		top = tree.Block{root}
	}

	for _, n := range top {
		p.before(n, 0)
		p.writeNode(n, 0)
	}

	p.flush(int(^uint(0)>>1), 0)

	if len(p.lines) == 0 {
		return ""
	}

	return strings.Join(p.lines, "\n") + "\n"
}

type printer struct {
	lines    []string
	pending  []comments.Comment
	lastLine int // recorded line of the last emitted content
	width    int
}

func (p *printer) writeLine(s string) {
	p.lines = append(p.lines, s)
}

func (p *printer) appendToLast(s string) {
	if len(p.lines) == 0 {
		p.lines = append(p.lines, s)

		return
	}

	p.lines[len(p.lines)-1] += s
}

// flush emits every pending comment recorded at or before limit.
func (p *printer) flush(limit, indent int) {
	for len(p.pending) > 0 && p.pending[0].Line <= limit {
		c := p.pending[0]
		p.pending = p.pending[1:]

		if c.PreviousEOLCount > 1 && len(p.lines) > 0 {
			p.writeLine("")
		}

		p.writeLine(pad(indent) + c.Text)
		p.lastLine = c.Line
	}
}

// before interleaves comments and blank separation ahead of a node.
func (p *printer) before(n tree.Node, indent int) {
	line, ok := tree.NodeLine(n)
	if !ok {
		return
	}

	p.flush(line, indent)

	if p.lastLine > 0 && line-p.lastLine > 1 {
		p.writeLine("")
	}
}

func (p *printer) writeNode(n tree.Node, indent int) {
	defer func() {
		if _, last, ok := tree.LineSpan(n); ok && last > p.lastLine {
			p.lastLine = last
		}
	}()

	inline := renderInline(n)
	if indent+len(inline) <= p.width && !p.pendingWithin(n) {
		p.writeLine(pad(indent) + inline)

		return
	}

	switch v := n.(type) {
	case tree.Form:
		open := "(" + formHead(v)
		p.writeComposite(open, v.Children, ")", indent)
	case tree.Pair:
		p.writeComposite("{", []tree.Node{v.First, v.Second}, "}", indent)
	case tree.Block:
		p.writeComposite("[", v, "]", indent)
	default:
		p.writeLine(pad(indent) + inline)
	}
}

func (p *printer) writeComposite(open string, kids []tree.Node, closing string, indent int) {
	p.writeLine(pad(indent) + open)

	for _, k := range kids {
		p.before(k, indent+2)
		p.writeNode(k, indent+2)
	}

	p.appendToLast(closing)
}

// pendingWithin reports whether a pending comment is recorded inside
// the node's line span, which forces multi-line layout so the comment
// has a line of its own to attach to.
func (p *printer) pendingWithin(n tree.Node) bool {
	if len(p.pending) == 0 {
		return false
	}

	_, last, ok := tree.LineSpan(n)

	return ok && p.pending[0].Line <= last
}

func formHead(f tree.Form) string {
	if f.Head != nil {
		return renderInline(f.Head)
	}

	return f.Label
}

func renderInline(n tree.Node) string {
	switch v := n.(type) {
	case tree.Form:
		parts := make([]string, 0, len(v.Children)+1)
		parts = append(parts, formHead(v))

		for _, k := range v.Children {
			parts = append(parts, renderInline(k))
		}

		return "(" + strings.Join(parts, " ") + ")"
	case tree.Pair:
		return "{" + renderInline(v.First) + " " + renderInline(v.Second) + "}"
	case tree.Block:
		parts := make([]string, len(v))
		for i, k := range v {
			parts[i] = renderInline(k)
		}

		return "[" + strings.Join(parts, " ") + "]"
	case tree.Leaf:
		return leafText(v)
	default:
		return ""
	}
}

func leafText(l tree.Leaf) string {
	if l.Text != "" {
		return l.Text
	}

	switch l.Kind {
	case tree.LeafInt:
		return strconv.FormatInt(l.Value.(int64), 10)
	case tree.LeafFloat:
		s := strconv.FormatFloat(l.Value.(float64), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}

		return s
	case tree.LeafStr:
		return strconv.Quote(l.Value.(string))
	case tree.LeafBool:
		if l.Value.(bool) {
			return "true"
		}

		return "false"
	default:
		s, _ := l.Value.(string)

		return s
	}
}

func pad(indent int) string {
	return strings.Repeat(" ", indent)
}
