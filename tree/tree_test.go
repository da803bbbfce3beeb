package tree_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restyle/tree"
)

func TestChildrenExtraction(t *testing.T) {
	tests := []struct {
		name string
		node tree.Node
		want []tree.Node
	}{
		{
			name: "labeled form yields its arguments",
			node: tree.NewForm("call", 1, tree.Int(1, 1), tree.Int(2, 1)),
			want: []tree.Node{tree.Int(1, 1), tree.Int(2, 1)},
		},
		{
			name: "head form yields head then arguments",
			node: tree.Form{Head: tree.Sym("f", 1), Children: []tree.Node{tree.Int(1, 1)}},
			want: []tree.Node{tree.Sym("f", 1), tree.Int(1, 1)},
		},
		{
			name: "pair yields both elements",
			node: tree.Pair{First: tree.Sym("a", 1), Second: tree.Sym("b", 1)},
			want: []tree.Node{tree.Sym("a", 1), tree.Sym("b", 1)},
		},
		{
			name: "block yields itself",
			node: tree.Block{tree.Int(1, 1), tree.Int(2, 2)},
			want: []tree.Node{tree.Int(1, 1), tree.Int(2, 2)},
		},
		{
			name: "leaf yields nothing",
			node: tree.Str("hi", 3),
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tree.Children(tt.node))
		})
	}
}

func TestReplaceChildrenRoundTrip(t *testing.T) {
	nodes := []tree.Node{
		tree.NewForm("alias", 1, tree.Sym("Foo", 1)),
		tree.Form{Head: tree.Sym("f", 2), Children: []tree.Node{tree.Int(1, 2)}},
		tree.Pair{First: tree.Sym("a", 3), Second: tree.Sym("b", 3)},
		tree.Block{tree.Int(1, 4), tree.Int(2, 5)},
		tree.Bool(true, 6),
	}

	for _, n := range nodes {
		kids := tree.Children(n)
		rebuilt := tree.ReplaceChildren(n, kids)

		got := tree.Children(rebuilt)
		if diff := cmp.Diff(kids, got); diff != "" {
			t.Errorf("children round-trip mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestReplaceChildrenDegradation(t *testing.T) {
	pair := tree.Pair{First: tree.Sym("a", 1), Second: tree.Sym("b", 1)}

	three := tree.ReplaceChildren(pair, []tree.Node{tree.Int(1, 1), tree.Int(2, 1), tree.Int(3, 1)})
	form, ok := three.(tree.Form)
	require.True(t, ok, "pair with three children must degrade to a tuple form")
	assert.Equal(t, tree.TupleLabel, form.Label)
	assert.Len(t, form.Children, 3)

	leaf := tree.Int(7, 1)
	assert.Equal(t, leaf, tree.ReplaceChildren(leaf, nil), "leaf with no children stays itself")

	grown := tree.ReplaceChildren(leaf, []tree.Node{tree.Int(1, 1)})
	_, ok = grown.(tree.Block)
	assert.True(t, ok, "leaf given children must degrade to a block")
}

func TestEqual(t *testing.T) {
	a := tree.NewForm("alias", 3, tree.Sym("Foo", 3))
	b := tree.NewForm("alias", 9, tree.Sym("Foo", 9))

	assert.False(t, tree.Equal(a, b), "differing lines are unequal under Equal")
	assert.True(t, tree.EqualIgnoringLines(a, b))

	c := tree.NewForm("alias", 3, tree.Sym("Bar", 3))
	assert.False(t, tree.EqualIgnoringLines(a, c))

	assert.True(t, tree.Equal(a, tree.NewForm("alias", 3, tree.Sym("Foo", 3))))
}

func TestLineSpanAndShift(t *testing.T) {
	n := tree.NewForm("case", 2,
		tree.Sym("x", 2),
		tree.Pair{First: tree.Bool(true, 3), Second: tree.Sym("ok", 3)},
		tree.Pair{First: tree.Bool(false, 4), Second: tree.Sym("err", 4)},
	)

	first, last, ok := tree.LineSpan(n)
	require.True(t, ok)
	assert.Equal(t, 2, first)
	assert.Equal(t, 4, last)

	shifted := tree.ShiftLines(n, 10)
	first, last, ok = tree.LineSpan(shifted)
	require.True(t, ok)
	assert.Equal(t, 12, first)
	assert.Equal(t, 14, last)

	// The original is untouched.
	first, _, _ = tree.LineSpan(n)
	assert.Equal(t, 2, first)
}

func TestNodeLine(t *testing.T) {
	_, ok := tree.NodeLine(tree.Block(nil))
	assert.False(t, ok)

	line, ok := tree.NodeLine(tree.Pair{First: tree.Sym("a", 7), Second: tree.Sym("b", 8)})
	require.True(t, ok)
	assert.Equal(t, 7, line)
}

func TestMeta(t *testing.T) {
	m := tree.LineMeta(4).With(tree.MetaFormat, "keyword")

	line, ok := m.Line()
	require.True(t, ok)
	assert.Equal(t, 4, line)

	v, ok := m.Get(tree.MetaFormat)
	require.True(t, ok)
	assert.Equal(t, "keyword", v)

	m2 := m.WithLine(9)
	line, _ = m2.Line()
	assert.Equal(t, 9, line)

	line, _ = m.Line()
	assert.Equal(t, 4, line, "With must not mutate the receiver")
}
