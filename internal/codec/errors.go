package codec

import (
	"fmt"
	"strings"
)

// ParseError is a structured syntax error. Line and Col are 1-based.
type ParseError struct {
	File string
	Line int
	Col  int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.File, e.Line, e.Col, e.Msg)
}

// Snippet renders the error as a caret-annotated excerpt of src, with
// one line of context on either side:
//
//	input.sx:3:12: unexpected ')'
//
//	   2 | (alias
//	   3 |   (qual Foo)
//	     |            ^
//	   4 | )
func (e *ParseError) Snippet(src string) string {
	lines := strings.Split(src, "\n")

	line := e.Line
	if line < 1 {
		line = 1
	}

	if line > len(lines) {
		line = len(lines)
	}

	col := e.Col
	if col < 1 {
		col = 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", e.Error())

	width := len(fmt.Sprintf("%d", min(line+1, len(lines))))
	writeLine := func(n int) {
		if n < 1 || n > len(lines) {
			return
		}

		fmt.Fprintf(&b, "  %*d | %s\n", width, n, lines[n-1])
	}

	writeLine(line - 1)
	writeLine(line)

	if col > len(lines[line-1])+1 {
		col = len(lines[line-1]) + 1
	}

	fmt.Fprintf(&b, "  %*s | %s^\n", width, "", strings.Repeat(" ", col-1))
	writeLine(line + 1)

	return b.String()
}
