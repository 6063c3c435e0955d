package engine

import (
	"fmt"

	"github.com/go-ebnfc/ebnfc/grammar"
)

// tryMatch attempts to match sentence against ctx.data starting at
// ctx.position, recording the match (if any) under name — "" for every
// sentence kind except grammar.Rule, whose recursive call into its own
// body passes the rule's name. It returns nil on mismatch, having
// already rewound ctx.position and reclaimed every unit it allocated.
func (ctx *context) tryMatch(name string, sentence *grammar.Sentence) *Unit {
	unit := ctx.allocUnit()
	unit.Rule = name
	unit.Start = ctx.position

	switch sentence.Kind {
	case grammar.Concatenation:
		unit.In = ctx.tryMatch("", sentence.Left)
		if unit.In == nil {
			return ctx.fail(unit)
		}
		if ctx.done {
			break
		}
		right := ctx.tryMatch("", sentence.Right)
		unit.In.Next = right
		if right == nil {
			ctx.freeUnit(unit.In)
			return ctx.fail(unit)
		}
		if isInline(right) {
			rightChildren := right.In
			right.Next = ctx.cache
			ctx.cache = right
			unit.In.Next = rightChildren
		}
		if isInline(unit.In) {
			left := unit.In
			after := left.Next
			left.Next = ctx.cache
			ctx.cache = left
			unit.In = left.In
			if unit.In != nil {
				tail := unit.In
				for tail.Next != nil {
					tail = tail.Next
				}
				tail.Next = after
			} else {
				unit.In = after
			}
		}

	case grammar.Alternation:
		unit.In = ctx.tryMatch("", sentence.Left)
		if unit.In == nil {
			unit.In = ctx.tryMatch("", sentence.Right)
			if unit.In == nil {
				return ctx.fail(unit)
			}
		}
		ctx.prone(unit)

	case grammar.Rejection:
		unit.In = ctx.tryMatch("", sentence.Inner)
		if unit.In != nil {
			ctx.freeUnit(unit.In)
			unit.In = nil
			if !ctx.exception {
				return ctx.fail(unit)
			}
			ctx.exception = false
		}
		ctx.position = unit.Start
		unit.Rule = ""

	case grammar.Optional:
		unit.In = ctx.tryMatch("", sentence.Inner)
		ctx.prone(unit)

	case grammar.Repeated:
		head := &unit.In
		for {
			m := ctx.tryMatch("", sentence.Inner)
			*head = m
			if m == nil {
				break
			}
			// A successful iteration that consumed no input and raised no
			// exception would otherwise repeat forever (e.g. Repeated{Optional{x}}
			// against input lacking x): treat it as the final iteration.
			zeroWidth := m.Start == m.End
			if isInline(m) {
				children := m.In
				m.Next = ctx.cache
				ctx.cache = m
				*head = children
				for *head != nil {
					head = &(*head).Next
				}
			} else {
				head = &m.Next
			}
			if ctx.done || (zeroWidth && !ctx.exception) {
				break
			}
		}

	case grammar.String:
		n := len(sentence.Bytes)
		if n > len(ctx.data)-ctx.position {
			return ctx.fail(unit)
		}
		if string(ctx.data[ctx.position:ctx.position+n]) != sentence.Bytes {
			return ctx.fail(unit)
		}
		ctx.position += n

	case grammar.CharRange:
		if ctx.position == len(ctx.data) {
			return ctx.fail(unit)
		}
		c := ctx.data[ctx.position]
		if c < sentence.Low || c > sentence.High {
			return ctx.fail(unit)
		}
		ctx.position++

	case grammar.Rule:
		def, ok := grammar.Lookup(ctx.rules, sentence.RuleName)
		if !ok {
			panic(fmt.Sprintf("engine: rule %q referenced but not present in the compiled rule table", sentence.RuleName))
		}
		unit.In = ctx.tryMatch(def.Name, def.Body)
		if unit.In == nil {
			return ctx.fail(unit)
		}
		ctx.prone(unit)

	case grammar.Exception:
		ctx.done = true
		ctx.exception = true

	case grammar.Eof:
		if ctx.position != len(ctx.data) {
			return ctx.fail(unit)
		}
		ctx.done = true

	default:
		panic(fmt.Sprintf("engine: unhandled sentence kind %v", sentence.Kind))
	}

	unit.End = ctx.position
	return unit
}
