package rewrite_test

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restyle/comments"
	"restyle/rewrite"
	"restyle/tree"
	"restyle/zipper"
)

func quietConfig(mode rewrite.FailureMode) rewrite.Config {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return rewrite.Config{Mode: mode, Logger: logger}
}

// renameRule renames every form labeled from to to.
type renameRule struct {
	from, to string
}

func (r renameRule) Name() string { return "rename-" + r.from }

func (r renameRule) Run(z *zipper.Zipper, ctx rewrite.Context) (zipper.Directive, *zipper.Zipper, rewrite.Context, error) {
	form, ok := z.Node().(tree.Form)
	if ok && form.Label == r.from {
		form.Label = r.to

		return zipper.Continue, z.Replace(form), ctx, nil
	}

	return zipper.Continue, z, ctx, nil
}

// failOnRule returns an error when it reaches a form with the given label.
type failOnRule struct {
	label string
	panic bool
}

func (r failOnRule) Name() string { return "fail-on-" + r.label }

func (r failOnRule) Run(z *zipper.Zipper, ctx rewrite.Context) (zipper.Directive, *zipper.Zipper, rewrite.Context, error) {
	form, ok := z.Node().(tree.Form)
	if ok && form.Label == r.label {
		if r.panic {
			panic("unexpected shape: " + r.label)
		}

		return zipper.Halt, z, ctx, errors.New("cannot rewrite " + r.label)
	}

	// Half-apply an edit that must be thrown away when the rule fails.
	if ok {
		form.Label = "partial-" + form.Label

		return zipper.Continue, z.Replace(form), ctx, nil
	}

	return zipper.Continue, z, ctx, nil
}

func pipelineInput() tree.Node {
	return tree.NewForm("root", 1,
		tree.NewForm("old", 2, tree.Int(1, 2)),
		tree.NewForm("boom", 3),
	)
}

func TestPipelineAppliesRulesInOrder(t *testing.T) {
	p := rewrite.New([]rewrite.Rule{
		renameRule{from: "old", to: "mid"},
		renameRule{from: "mid", to: "new"},
	}, quietConfig(rewrite.ModeLog))

	out, _, report, err := p.Run(pipelineInput(), nil, "input.sx")
	require.NoError(t, err)
	assert.False(t, report.HasErrors())

	form := out.(tree.Form)
	assert.Equal(t, "new", form.Children[0].(tree.Form).Label, "rule 2 must see rule 1's output")
}

// A failing rule in logged mode contributes nothing: the output equals
// what the preceding rules alone produced, and nothing crashes.
func TestPipelineLogModeIsolatesFailure(t *testing.T) {
	good := renameRule{from: "old", to: "new"}

	for _, panics := range []bool{false, true} {
		p := rewrite.New([]rewrite.Rule{
			good,
			failOnRule{label: "boom", panic: panics},
		}, quietConfig(rewrite.ModeLog))

		out, _, report, err := p.Run(pipelineInput(), nil, "input.sx")
		require.NoError(t, err)
		require.True(t, report.HasErrors())
		assert.Equal(t, "fail-on-boom", report.Errors[0].Rule)

		goodOnly := rewrite.New([]rewrite.Rule{good}, quietConfig(rewrite.ModeLog))
		want, _, _, err := goodOnly.Run(pipelineInput(), nil, "input.sx")
		require.NoError(t, err)

		assert.True(t, tree.Equal(want, out),
			"failed rule must contribute nothing, not even its pre-failure edits (panic=%v)", panics)
	}
}

func TestPipelinePropagateMode(t *testing.T) {
	p := rewrite.New([]rewrite.Rule{
		failOnRule{label: "boom"},
	}, quietConfig(rewrite.ModePropagate))

	_, _, _, err := p.Run(pipelineInput(), nil, "input.sx")
	require.Error(t, err)

	var ruleErr *rewrite.RuleError
	require.ErrorAs(t, err, &ruleErr)
	assert.Equal(t, "fail-on-boom", ruleErr.Rule)
	assert.Equal(t, "input.sx", ruleErr.File)
	assert.Contains(t, err.Error(), "cannot rewrite boom")
}

func TestPipelineThreadsLedger(t *testing.T) {
	shift := rewrite.FromNodeFunc("noop", func(n tree.Node) tree.Node { return n })

	ledgerRule := ruleFunc{
		name: "shift-comments",
		run: func(z *zipper.Zipper, ctx rewrite.Context) (zipper.Directive, *zipper.Zipper, rewrite.Context, error) {
			ctx.Comments = comments.Shift(ctx.Comments, comments.LineRange{First: 1, Last: 100}, 5)

			return zipper.Halt, z, ctx, nil
		},
	}

	p := rewrite.New([]rewrite.Rule{shift, ledgerRule}, quietConfig(rewrite.ModeLog))

	cs := []comments.Comment{{Line: 2, Text: "# hello"}}
	_, outCS, _, err := p.Run(pipelineInput(), cs, "input.sx")
	require.NoError(t, err)

	require.Len(t, outCS, 1)
	assert.Equal(t, 7, outCS[0].Line, "ledger edits must survive into the pipeline output")
	assert.Equal(t, 2, cs[0].Line, "input ledger is untouched")
}

func TestFromNodeFunc(t *testing.T) {
	double := rewrite.FromNodeFunc("double-ints", func(n tree.Node) tree.Node {
		leaf, ok := n.(tree.Leaf)
		if !ok || leaf.Kind != tree.LeafInt {
			return n
		}

		leaf.Value = leaf.Value.(int64) * 2

		return leaf
	})

	assert.Equal(t, "double-ints", double.Name())

	p := rewrite.New([]rewrite.Rule{double}, quietConfig(rewrite.ModeLog))
	out, _, _, err := p.Run(pipelineInput(), nil, "input.sx")
	require.NoError(t, err)

	form := out.(tree.Form)
	leaf := form.Children[0].(tree.Form).Children[0].(tree.Leaf)
	assert.Equal(t, int64(2), leaf.Value)
}

func TestContextExtras(t *testing.T) {
	ctx := rewrite.Context{File: "x.sx"}

	ctx2 := ctx.WithExtra("count", 1)
	assert.Nil(t, ctx.Extra("count"), "WithExtra must not alias the original")
	assert.Equal(t, 1, ctx2.Extra("count"))

	ctx3 := ctx2.WithExtra("count", 2)
	assert.Equal(t, 1, ctx2.Extra("count"))
	assert.Equal(t, 2, ctx3.Extra("count"))
}

// ruleFunc adapts a closure to the Rule interface for tests.
type ruleFunc struct {
	name string
	run  func(*zipper.Zipper, rewrite.Context) (zipper.Directive, *zipper.Zipper, rewrite.Context, error)
}

func (r ruleFunc) Name() string { return r.name }

func (r ruleFunc) Run(z *zipper.Zipper, ctx rewrite.Context) (zipper.Directive, *zipper.Zipper, rewrite.Context, error) {
	return r.run(z, ctx)
}
