// Package codec is the reference text↔tree codec for the rewrite
// pipeline. The pipeline itself treats the codec as a black box — text
// in, tree plus comment ledger out, and the reverse — so any codec
// honoring the same contract can replace this one.
//
// The surface syntax is a small S-expression language:
//
//	(label arg …)    labeled form; a non-symbol head makes a head form
//	{a b}            2-tuple; any other element count degrades to ({}…)
//	[n …]            unlabeled block
//	# …              line comment, kept out-of-band in the ledger
//
// Leaves are integers (0x/0o/0b bases and _ separators preserved),
// floats, strings ("…" or '…', delimiter preserved), true/false, and
// bare symbols. The original rendering of every literal is kept in the
// leaf's Text and round-tripped unchanged unless a rule edits it.
//
// Printing is line-number driven: before a node is emitted, every
// pending comment with a smaller-or-equal line is flushed. That is the
// exact behavior that makes the comments package's renumbering
// operations load-bearing — once a smaller line number goes by, a
// pending comment can never attach any lower.
package codec
