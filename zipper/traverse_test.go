package zipper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restyle/tree"
	"restyle/zipper"
)

func countNodes(n tree.Node) int {
	total := 1
	for _, child := range tree.Children(n) {
		total += countNodes(child)
	}

	return total
}

func TestTraverseCompleteness(t *testing.T) {
	root := buildTree()

	visited := 0
	out := zipper.Zip(root).Traverse(func(z *zipper.Zipper) *zipper.Zipper {
		visited++

		return z
	})

	assert.Equal(t, countNodes(root), visited, "traverse must visit every reachable node once")
	assert.True(t, tree.Equal(root, out.Root()), "a no-op traverse must reassemble the input unchanged")
}

func TestTraverseAcc(t *testing.T) {
	root := buildTree()

	_, names := zipper.TraverseAcc(zipper.Zip(root), []string(nil),
		func(z *zipper.Zipper, acc []string) (*zipper.Zipper, []string) {
			if form, ok := z.Node().(tree.Form); ok {
				acc = append(acc, form.Label)
			}

			return z, acc
		})

	assert.Equal(t, []string{"root", "a", "c"}, names)
}

func TestTraverseSubtreeOnly(t *testing.T) {
	// Focus (a 1 2); rewrite every int inside it. b and c stay put, and
	// the result still reassembles to the full tree.
	z := zipper.Zip(buildTree()).Down()

	out := z.Traverse(func(cur *zipper.Zipper) *zipper.Zipper {
		if leaf, ok := cur.Node().(tree.Leaf); ok && leaf.Kind == tree.LeafInt {
			leaf.Value = leaf.Value.(int64) + 10

			return cur.Replace(leaf)
		}

		return cur
	})

	form := out.Root().(tree.Form)
	require.Len(t, form.Children, 3)

	a := form.Children[0].(tree.Form)
	assert.Equal(t, int64(11), a.Children[0].(tree.Leaf).Value)
	assert.Equal(t, int64(12), a.Children[1].(tree.Leaf).Value)

	c := form.Children[2].(tree.Form)
	assert.Equal(t, int64(3), c.Children[0].(tree.Leaf).Value, "nodes outside the subtree must not be visited")
}

func TestTraverseWhileSkip(t *testing.T) {
	root := buildTree()

	var visited []string

	zipper.Zip(root).TraverseWhile(func(z *zipper.Zipper) (zipper.Directive, *zipper.Zipper) {
		if form, ok := z.Node().(tree.Form); ok {
			visited = append(visited, form.Label)
			if form.Label == "a" {
				return zipper.Skip, z
			}
		}

		return zipper.Continue, z
	})

	// Skipping (a 1 2) means its int children are never visited.
	assert.Equal(t, []string{"root", "a", "c"}, visited)
}

func TestTraverseWhileHalt(t *testing.T) {
	root := buildTree()

	visits := 0
	out := zipper.Zip(root).TraverseWhile(func(z *zipper.Zipper) (zipper.Directive, *zipper.Zipper) {
		visits++

		if _, ok := z.Node().(tree.Leaf); ok {
			return zipper.Halt, z.Replace(tree.Sym("stopped", 1))
		}

		return zipper.Continue, z
	})

	assert.Equal(t, 3, visits, "halt must stop immediately: root, a, first leaf")
	assert.True(t, out.IsRoot(), "halt still reassembles to the root")

	form := out.Node().(tree.Form)
	name, _ := tree.SymName(form.Children[0].(tree.Form).Children[0])
	assert.Equal(t, "stopped", name, "the edit made at halt time must survive reassembly")
}

func TestTraverseWhileAcc(t *testing.T) {
	root := buildTree()

	_, leaves := zipper.TraverseWhileAcc(zipper.Zip(root), 0,
		func(z *zipper.Zipper, acc int) (zipper.Directive, *zipper.Zipper, int) {
			if _, ok := z.Node().(tree.Leaf); ok {
				acc++
			}

			return zipper.Continue, z, acc
		})

	assert.Equal(t, 4, leaves)
}

func TestFind(t *testing.T) {
	z := zipper.Zip(buildTree())

	found := z.Find(zipper.Forward, func(cur *zipper.Zipper) bool {
		name, ok := tree.SymName(cur.Node())

		return ok && name == "b"
	})
	require.NotNil(t, found)

	// Find is inclusive of the starting focus.
	self := found.Find(zipper.Forward, func(cur *zipper.Zipper) bool {
		name, _ := tree.SymName(cur.Node())

		return name == "b"
	})
	require.NotNil(t, self)
	assert.True(t, tree.Equal(found.Node(), self.Node()))

	// Backward from b the first form is (a 1 2)'s last descendant's
	// ancestors; searching for a form label lands on a.
	back := found.Find(zipper.Backward, func(cur *zipper.Zipper) bool {
		form, ok := cur.Node().(tree.Form)

		return ok && form.Label == "a"
	})
	require.NotNil(t, back)

	missing := z.Find(zipper.Forward, func(cur *zipper.Zipper) bool { return false })
	assert.Nil(t, missing)
}

func TestAny(t *testing.T) {
	z := zipper.Zip(buildTree())

	assert.True(t, z.Any(func(cur *zipper.Zipper) bool {
		leaf, ok := cur.Node().(tree.Leaf)

		return ok && leaf.Value == int64(3)
	}))

	assert.False(t, z.Any(func(cur *zipper.Zipper) bool {
		leaf, ok := cur.Node().(tree.Leaf)

		return ok && leaf.Value == int64(99)
	}))
}

func TestDirectiveString(t *testing.T) {
	assert.Equal(t, "Continue", zipper.Continue.String())
	assert.Equal(t, "Skip", zipper.Skip.String())
	assert.Equal(t, "Halt", zipper.Halt.String())
}
