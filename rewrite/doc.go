// Package rewrite defines the contract a rewrite rule implements and
// the pipeline driver that runs an ordered list of rules over a tree
// and its comment ledger.
//
// Each rule gets one full depth-first pre-order traversal of the tree.
// Its Run function is called at every focus and returns a
// zipper.Directive (Continue, Skip or Halt), a possibly-edited zipper,
// and an updated Context carrying the comment ledger. The output tree
// and ledger of rule N feed rule N+1.
//
// Failure isolation is all-or-nothing at rule granularity: if Run
// returns an error or panics on any node, the whole rule's work is
// abandoned and the tree reverts to the state before that rule started.
// In ModeLog the pipeline logs the failure (tagged with rule and file)
// and moves on to the next rule; in ModePropagate it stops and returns
// a *RuleError. Partial rewrites within a rule never leak out.
//
// The pipeline does not loop to a fixed point. Instead the contract on
// the rule list is idempotence: running the pipeline on its own output
// must change nothing. Rules uphold it locally, typically by
// re-dispatching themselves on a freshly built replacement before
// returning Skip.
package rewrite
