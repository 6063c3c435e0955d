package engine

import "github.com/go-ebnfc/ebnfc/grammar"

// context carries the one piece of mutable state a single Parse call
// threads through every recursive tryMatch call.
type context struct {
	rules []*grammar.RuleDef
	cache *Unit

	data     []byte
	position int

	// done signals a non-local "stop attempting further alternatives or
	// repetitions" condition, set by a matched Exception (`-`) or Eof
	// sentence and read by every combinator that would otherwise keep
	// trying siblings: Concatenation's right operand, Repeated's loop.
	done bool

	// exception is done's sibling flag: set alongside done by a matched
	// Exception sentence, and the one piece of that signal a Rejection
	// is allowed to intercept and clear, turning a premature end of
	// input inside its operand back into an ordinary rejection success.
	exception bool
}

// fail rewinds ctx.position to where unit started matching, returns
// unit itself to the free list, and reports the mismatch to the caller.
// By the time fail is called, any partially-built children of unit have
// already been explicitly freed by the caller — fail only ever owns the
// single unit it was handed.
func (ctx *context) fail(unit *Unit) *Unit {
	ctx.position = unit.Start
	unit.Next = ctx.cache
	ctx.cache = unit
	return nil
}

// prone implements the splicing step shared by Alternation, Optional,
// and Rule matches: if the sole child just matched is itself anonymous
// or inline, that child is discarded and its own children take its
// place directly under unit.
func (ctx *context) prone(unit *Unit) {
	child := unit.In
	if child == nil || !isInline(child) {
		return
	}
	child.Next = ctx.cache
	ctx.cache = child
	unit.In = child.In
}
