package rules

import (
	"strings"

	"restyle/rewrite"
	"restyle/tree"
)

// underscoreThreshold is the smallest absolute value that gets digit
// separators.
const underscoreThreshold = 10000

// NumberUnderscores reformats plain decimal integer literals of five
// or more digits with _ separators every three digits: 1234567 becomes
// 1_234_567. Hex, octal and binary literals, and literals the author
// already grouped, are left exactly as written. A pure node transform,
// lifted into the rule contract with rewrite.FromNodeFunc.
func NumberUnderscores() rewrite.Rule {
	return rewrite.FromNodeFunc(NameNumberUnderscores, underscoreInts)
}

func underscoreInts(n tree.Node) tree.Node {
	leaf, ok := n.(tree.Leaf)
	if !ok || leaf.Kind != tree.LeafInt {
		return n
	}

	if !plainDecimal(leaf.Text) {
		return n
	}

	v, ok := leaf.Value.(int64)
	if !ok || (v < underscoreThreshold && v > -underscoreThreshold) {
		return n
	}

	leaf.Text = groupDigits(leaf.Text)

	return leaf
}

// plainDecimal accepts an optional minus followed by digits only; any
// base prefix or existing separator disqualifies the literal.
func plainDecimal(text string) bool {
	if text == "" {
		return false
	}

	digits := strings.TrimPrefix(text, "-")
	if digits == "" || (len(digits) > 1 && digits[0] == '0') {
		return false
	}

	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}

	return true
}

func groupDigits(text string) string {
	sign := ""
	digits := text

	if digits[0] == '-' {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder

	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('_')
		}

		b.WriteRune(d)
	}

	return sign + b.String()
}
