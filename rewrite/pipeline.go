package rewrite

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"restyle/comments"
	"restyle/tree"
	"restyle/zipper"
)

// FailureMode selects how the pipeline reacts to a failing rule.
type FailureMode int

const (
	// ModeLog logs the failure and continues with the next rule, using
	// the tree as it stood before the failing rule started.
	ModeLog FailureMode = iota
	// ModePropagate stops the pipeline and returns the failure.
	ModePropagate
)

// Config configures a Pipeline.
type Config struct {
	// Mode is the failure policy. Default is ModeLog.
	Mode FailureMode
	// Logger receives rule-failure reports in ModeLog. Default is the
	// logrus standard logger.
	Logger logrus.FieldLogger
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Mode:   ModeLog,
		Logger: logrus.StandardLogger(),
	}
}

// RuleError tags a rule failure with the rule and file that were active.
type RuleError struct {
	Rule string
	File string
	Err  error
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("rule %s failed on %s: %v", e.Rule, e.File, e.Err)
}

func (e *RuleError) Unwrap() error {
	return e.Err
}

// Pipeline threads a tree and its comment ledger through an ordered
// rule list, one full traversal per rule.
type Pipeline struct {
	rules  []Rule
	config Config
}

// New builds a pipeline over the given ordered rule list.
func New(rules []Rule, config Config) *Pipeline {
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}

	return &Pipeline{rules: rules, config: config}
}

// Run executes every rule in order over root and cs. The report records
// failures that were tolerated in ModeLog; err is non-nil only in
// ModePropagate or on a nil root.
func (p *Pipeline) Run(root tree.Node, cs []comments.Comment, file string) (tree.Node, []comments.Comment, *Report, error) {
	if root == nil {
		return nil, nil, nil, fmt.Errorf("rewrite: nil tree for %s", file)
	}

	report := &Report{File: file}

	for _, rule := range p.rules {
		next, nextCS, err := runRule(rule, root, cs, file)
		if err == nil {
			root, cs = next, nextCS

			continue
		}

		ruleErr := &RuleError{Rule: rule.Name(), File: file, Err: err}
		if p.config.Mode == ModePropagate {
			return nil, nil, report, ruleErr
		}

		report.AddError(rule.Name(), err.Error())
		p.config.Logger.WithFields(logrus.Fields{
			"rule": rule.Name(),
			"file": file,
		}).WithError(err).Warn("rule failed; keeping the tree from the previous rule")
	}

	return root, cs, report, nil
}

// runRule gives one rule one traversal. Panics raised by the rule are
// recovered and reported as the rule's failure; the pre-rule tree is
// what the caller keeps in that case.
func runRule(rule Rule, root tree.Node, cs []comments.Comment, file string) (out tree.Node, outCS []comments.Comment, err error) {
	z := zipper.Zip(root)
	ctx := Context{Comments: cs, File: file}

	defer func() {
		r := recover()
		if r == nil {
			return
		}

		err = fmt.Errorf("panic at %s: %v", describeFocus(z), r)
	}()

	for {
		var d zipper.Directive

		d, z, ctx, err = rule.Run(z, ctx)
		if err != nil {
			return nil, nil, fmt.Errorf("at %s: %w", describeFocus(z), err)
		}

		var n *zipper.Zipper

		switch d {
		case zipper.Halt:
			return z.Root(), ctx.Comments, nil
		case zipper.Skip:
			n = z.Skip(zipper.Forward)
		default:
			n = z.Next()
		}

		if n == nil {
			return z.Root(), ctx.Comments, nil
		}

		z = n
	}
}

// describeFocus renders the failing focus for error messages: its line
// when known, plus a spew dump at trace verbosity.
func describeFocus(z *zipper.Zipper) string {
	if z == nil {
		return "unknown node"
	}

	n := z.Node()
	desc := "node without line info"

	if line, ok := tree.NodeLine(n); ok {
		desc = fmt.Sprintf("node at line %d", line)
	}

	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		logrus.Tracef("failing focus:\n%s", spew.Sdump(n))
	}

	return desc
}
