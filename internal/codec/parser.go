package codec

import (
	"strconv"
	"strings"

	"restyle/comments"
	"restyle/tree"
)

// Parse turns source text into a tree and its comment ledger. The
// returned root is always a tree.Block of top-level nodes. Malformed
// input yields a *ParseError carrying file, line and column.
func Parse(src, file string) (tree.Node, []comments.Comment, error) {
	lx := newLexer(src, file)

	tokens, cs, err := lx.lex()
	if err != nil {
		return nil, nil, err
	}

	p := &parser{tokens: tokens, file: file}

	var top []tree.Node

	for p.peek().kind != tokEOF {
		n, err := p.parseNode()
		if err != nil {
			return nil, nil, err
		}

		top = append(top, n)
	}

	return tree.Block(top), cs, nil
}

type parser struct {
	tokens []token
	pos    int
	file   string
}

func (p *parser) peek() token {
	return p.tokens[p.pos]
}

func (p *parser) next() token {
	t := p.tokens[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}

	return t
}

func (p *parser) errorf(t token, msg string) error {
	return &ParseError{File: p.file, Line: t.line, Col: t.col, Msg: msg}
}

func (p *parser) parseNode() (tree.Node, error) {
	t := p.next()

	switch t.kind {
	case tokLParen:
		return p.parseForm(t)
	case tokLBrace:
		return p.parseTuple(t)
	case tokLBracket:
		return p.parseBlock(t)
	case tokInt:
		return p.intLeaf(t)
	case tokFloat:
		return p.floatLeaf(t)
	case tokStr:
		return p.strLeaf(t)
	case tokSym:
		return symLeaf(t), nil
	case tokEOF:
		return nil, p.errorf(t, "unexpected end of input")
	default:
		return nil, p.errorf(t, "unexpected "+strconv.Quote(t.text))
	}
}

func (p *parser) parseElements(open token, closing tokenKind) ([]tree.Node, error) {
	var kids []tree.Node

	for {
		t := p.peek()

		if t.kind == closing {
			p.next()

			return kids, nil
		}

		if t.kind == tokEOF {
			return nil, p.errorf(open, "unclosed "+strconv.Quote(open.text))
		}

		n, err := p.parseNode()
		if err != nil {
			return nil, err
		}

		kids = append(kids, n)
	}
}

// parseForm reads (head arg …): a symbol head labels the form, any
// other head node makes a head form.
func (p *parser) parseForm(open token) (tree.Node, error) {
	kids, err := p.parseElements(open, tokRParen)
	if err != nil {
		return nil, err
	}

	if len(kids) == 0 {
		return nil, p.errorf(open, "empty form")
	}

	if name, ok := tree.SymName(kids[0]); ok {
		return tree.Form{Label: name, Meta: tree.LineMeta(open.line), Children: kids[1:]}, nil
	}

	return tree.Form{Head: kids[0], Meta: tree.LineMeta(open.line), Children: kids[1:]}, nil
}

func (p *parser) parseTuple(open token) (tree.Node, error) {
	kids, err := p.parseElements(open, tokRBrace)
	if err != nil {
		return nil, err
	}

	if len(kids) == 2 {
		return tree.Pair{First: kids[0], Second: kids[1]}, nil
	}

	return tree.Form{Label: tree.TupleLabel, Meta: tree.LineMeta(open.line), Children: kids}, nil
}

func (p *parser) parseBlock(open token) (tree.Node, error) {
	kids, err := p.parseElements(open, tokRBracket)
	if err != nil {
		return nil, err
	}

	return tree.Block(kids), nil
}

func (p *parser) intLeaf(t token) (tree.Node, error) {
	clean := strings.ReplaceAll(t.text, "_", "")

	v, err := strconv.ParseInt(clean, 0, 64)
	if err != nil {
		return nil, p.errorf(t, "invalid integer literal "+strconv.Quote(t.text))
	}

	return tree.Leaf{Kind: tree.LeafInt, Value: v, Text: t.text, Line: t.line}, nil
}

func (p *parser) floatLeaf(t token) (tree.Node, error) {
	clean := strings.ReplaceAll(t.text, "_", "")

	v, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return nil, p.errorf(t, "invalid float literal "+strconv.Quote(t.text))
	}

	return tree.Leaf{Kind: tree.LeafFloat, Value: v, Text: t.text, Line: t.line}, nil
}

func (p *parser) strLeaf(t token) (tree.Node, error) {
	decoded, err := decodeString(t.text)
	if err != nil {
		return nil, p.errorf(t, err.Error())
	}

	return tree.Leaf{Kind: tree.LeafStr, Value: decoded, Text: t.text, Line: t.line}, nil
}

func symLeaf(t token) tree.Node {
	switch t.text {
	case "true", "false":
		return tree.Leaf{Kind: tree.LeafBool, Value: t.text == "true", Text: t.text, Line: t.line}
	default:
		return tree.Leaf{Kind: tree.LeafSym, Value: t.text, Text: t.text, Line: t.line}
	}
}

// decodeString strips the delimiters and resolves backslash escapes.
func decodeString(raw string) (string, error) {
	if len(raw) < 2 {
		return "", strconv.ErrSyntax
	}

	body := raw[1 : len(raw)-1]

	var b strings.Builder

	for i := 0; i < len(body); i++ {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)

			continue
		}

		i++
		if i >= len(body) {
			return "", strconv.ErrSyntax
		}

		switch body[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '\\', '"', '\'':
			b.WriteByte(body[i])
		default:
			return "", strconv.ErrSyntax
		}
	}

	return b.String(), nil
}
