package codec

import (
	"fmt"
	"strings"

	"restyle/comments"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokLBrace
	tokRBrace
	tokLBracket
	tokRBracket
	tokInt
	tokFloat
	tokStr
	tokSym
)

type token struct {
	kind tokenKind
	text string // raw source text, delimiters included
	line int
	col  int
}

type lexer struct {
	src  string
	file string

	pos  int
	line int
	col  int

	// lastContentLine is the last line carrying code or a comment,
	// used to derive each comment's PreviousEOLCount.
	lastContentLine int

	comments []comments.Comment
}

func newLexer(src, file string) *lexer {
	return &lexer{src: src, file: file, line: 1, col: 1}
}

func (l *lexer) errorf(line, col int, format string, args ...any) error {
	return &ParseError{File: l.file, Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

// lex tokenizes the whole input, collecting comments out-of-band.
func (l *lexer) lex() ([]token, []comments.Comment, error) {
	var tokens []token

	for {
		l.skipSpace()

		if l.pos >= len(l.src) {
			tokens = append(tokens, token{kind: tokEOF, line: l.line, col: l.col})

			return tokens, l.comments, nil
		}

		c := l.src[l.pos]

		if c == '#' {
			l.lexComment()

			continue
		}

		if kind, ok := delimiters[c]; ok {
			tokens = append(tokens, token{kind: kind, text: string(c), line: l.line, col: l.col})
			l.lastContentLine = l.line
			l.advance(1)

			continue
		}

		var (
			tok token
			err error
		)

		switch {
		case c == '"' || c == '\'':
			tok, err = l.lexString()
		case isDigit(c) || (c == '-' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1])):
			tok = l.lexNumber()
		case isSymStart(c):
			tok = l.lexSymbol()
		default:
			err = l.errorf(l.line, l.col, "unexpected character %q", c)
		}

		if err != nil {
			return nil, nil, err
		}

		l.lastContentLine = tok.line
		tokens = append(tokens, tok)
	}
}

var delimiters = map[byte]tokenKind{
	'(': tokLParen,
	')': tokRParen,
	'{': tokLBrace,
	'}': tokRBrace,
	'[': tokLBracket,
	']': tokRBracket,
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case ' ', '\t', '\r':
			l.advance(1)
		case '\n':
			l.pos++
			l.line++
			l.col = 1
		default:
			return
		}
	}
}

func (l *lexer) lexComment() {
	line := l.line

	end := strings.IndexByte(l.src[l.pos:], '\n')
	if end < 0 {
		end = len(l.src) - l.pos
	}

	text := strings.TrimRight(l.src[l.pos:l.pos+end], " \t\r")

	eols := line - l.lastContentLine
	if eols < 1 {
		eols = 1
	}

	l.comments = append(l.comments, comments.Comment{
		Line:             line,
		PreviousEOLCount: eols,
		Text:             text,
	})

	l.lastContentLine = line
	l.advance(end)
}

func (l *lexer) lexString() (token, error) {
	start, line, col := l.pos, l.line, l.col
	quote := l.src[l.pos]
	l.advance(1)

	for l.pos < len(l.src) {
		switch l.src[l.pos] {
		case '\\':
			l.advance(2)
		case '\n':
			return token{}, l.errorf(line, col, "unterminated string")
		case quote:
			l.advance(1)

			return token{kind: tokStr, text: l.src[start:l.pos], line: line, col: col}, nil
		default:
			l.advance(1)
		}
	}

	return token{}, l.errorf(line, col, "unterminated string")
}

func (l *lexer) lexNumber() token {
	start, line, col := l.pos, l.line, l.col

	if l.src[l.pos] == '-' {
		l.advance(1)
	}

	isFloat := false

	for l.pos < len(l.src) {
		c := l.src[l.pos]

		switch {
		case isDigit(c) || isHexLetter(c) || c == '_' ||
			c == 'x' || c == 'X' || c == 'o' || c == 'O':
			l.advance(1)
		case c == '.' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]):
			isFloat = true
			l.advance(1)
		case (c == '+' || c == '-') && isFloat &&
			(l.src[l.pos-1] == 'e' || l.src[l.pos-1] == 'E'):
			l.advance(1)
		default:
			kind := tokInt
			if isFloat {
				kind = tokFloat
			}

			return token{kind: kind, text: l.src[start:l.pos], line: line, col: col}
		}
	}

	kind := tokInt
	if isFloat {
		kind = tokFloat
	}

	return token{kind: kind, text: l.src[start:l.pos], line: line, col: col}
}

func (l *lexer) lexSymbol() token {
	start, line, col := l.pos, l.line, l.col

	for l.pos < len(l.src) && isSymPart(l.src[l.pos]) {
		l.advance(1)
	}

	return token{kind: tokSym, text: l.src[start:l.pos], line: line, col: col}
}

func (l *lexer) advance(n int) {
	l.pos += n
	l.col += n
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexLetter(c byte) bool {
	return ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func isSymStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') ||
		strings.IndexByte("+-*/<>=!?", c) >= 0
}

func isSymPart(c byte) bool {
	return isSymStart(c) || isDigit(c)
}
