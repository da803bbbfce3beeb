package comments

import "sort"

// Comment is one source comment, tracked outside the tree.
type Comment struct {
	// Line is the 1-based source line the comment sits on.
	Line int
	// PreviousEOLCount is the number of newlines between this comment
	// and the previous non-blank line: 1 means directly below it, 2
	// means one blank line in between, and so on.
	PreviousEOLCount int
	// Text is the comment including its leading "#".
	Text string
}

// LineRange is an inclusive range of source lines.
type LineRange struct {
	First int
	Last  int
}

// Contains reports whether line falls inside r.
func (r LineRange) Contains(line int) bool {
	return r.First <= line && line <= r.Last
}

// Preceding returns the maximal contiguous run of comments ending
// immediately above line — the comments on line-1, line-2, … with no
// gap — in source order. Empty when line-1 carries no comment.
func Preceding(cs []Comment, line int) []Comment {
	byLine := make(map[int]Comment, len(cs))
	for _, c := range cs {
		byLine[c.Line] = c
	}

	var run []Comment
	for l := line - 1; ; l-- {
		c, ok := byLine[l]
		if !ok {
			break
		}

		run = append(run, c)
	}

	// Collected bottom-up; flip back to source order.
	for i, j := 0, len(run)-1; i < j; i, j = i+1, j-1 {
		run[i], run[j] = run[j], run[i]
	}

	return run
}

// Displace forces every comment whose line falls in r to report
// r.First instead. Used when a multi-line construct collapses onto one
// line. The input is not modified.
func Displace(cs []Comment, r LineRange) []Comment {
	out := make([]Comment, len(cs))

	for i, c := range cs {
		if r.Contains(c.Line) {
			c.Line = r.First
		}

		out[i] = c
	}

	return out
}

// Shift moves every comment whose line falls in r by delta lines. Used
// when a construct's body moves without collapsing. The input is not
// modified.
func Shift(cs []Comment, r LineRange, delta int) []Comment {
	out := make([]Comment, len(cs))

	for i, c := range cs {
		if r.Contains(c.Line) {
			c.Line += delta
		}

		out[i] = c
	}

	return out
}

// sortByLine orders a ledger by line, keeping the relative order of
// comments that share a line.
func sortByLine(cs []Comment) {
	sort.SliceStable(cs, func(i, j int) bool { return cs[i].Line < cs[j].Line })
}
