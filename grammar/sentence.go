// Package grammar implements the grammar compiler: it turns a token stream
// from package lexer into a compiled, linked representation of an EBNF
// grammar — the table of Rules and Sentence trees that package engine
// parses input against.
package grammar

// Kind tags the variant of a compiled Sentence.
type Kind int

const (
	// Concatenation matches Left then Right.
	Concatenation Kind = iota
	// Alternation matches Left, or Right if Left fails.
	Alternation
	// Optional matches Inner, or succeeds with nothing if it fails.
	Optional
	// Repeated matches Inner zero or more times.
	Repeated
	// Rejection is EBNF `!x`: a zero-width negative lookahead.
	Rejection
	// String matches a fixed, non-empty byte sequence.
	String
	// CharRange matches a single byte in [Low, High].
	CharRange
	// Rule matches by invoking the named rule's body.
	Rule
	// Exception is the `-` primitive: a zero-width "input ended
	// prematurely here" signal.
	Exception
	// Eof matches only at the end of input.
	Eof
)

func (k Kind) String() string {
	switch k {
	case Concatenation:
		return "Concatenation"
	case Alternation:
		return "Alternation"
	case Optional:
		return "Optional"
	case Repeated:
		return "Repeated"
	case Rejection:
		return "Rejection"
	case String:
		return "String"
	case CharRange:
		return "CharRange"
	case Rule:
		return "Rule"
	case Exception:
		return "Exception"
	case Eof:
		return "Eof"
	default:
		return "unknown"
	}
}

// Sentence is one node in a compiled grammar's expression graph. It is a
// tagged union over Kind; only the fields relevant to Kind are populated.
// Every Sentence reachable from a RuleDef's Body is materialized once: the
// same leaf is never shared across two rules (invariant 1 of the spec this
// module implements).
type Sentence struct {
	Kind Kind

	// Concatenation, Alternation.
	Left, Right *Sentence

	// Optional, Repeated, Rejection.
	Inner *Sentence

	// String. Never empty.
	Bytes string

	// CharRange. Low <= High.
	Low, High byte

	// Rule. Name of the referenced rule.
	RuleName string
}

// RuleDef is a named Sentence: the compiled form of a grammar production
// `name = body ;`.
type RuleDef struct {
	Name string
	Body *Sentence
}

// Names reserved for the three synthetic rules appended to every compiled
// table (spec §3). User grammars may not define a rule starting with '@'.
const (
	RuleEOF   = "@eof"
	RuleNoEOF = "@noeof"
	RuleStart = "@start"
)

// IsReservedName reports whether name is reserved for synthetic rules.
func IsReservedName(name string) bool {
	return len(name) > 0 && name[0] == '@'
}

// IsInlineName reports whether a rule's matches should contribute their
// children, rather than themselves, to the parse tree (spec §4.E): any
// user rule whose name begins with '_'.
func IsInlineName(name string) bool {
	return len(name) > 0 && name[0] == '_'
}

// BuildSyntheticRules appends @eof, @noeof, and @start to rules, wrapping
// mainRule as @start's body: Concatenation{ Rule(main), Alternation{
// Rule(@eof), Rule(@noeof) } }.
func BuildSyntheticRules(rules []*RuleDef, mainRule string) []*RuleDef {
	eofRule := &RuleDef{Name: RuleEOF, Body: &Sentence{Kind: Eof}}
	noEOFRule := &RuleDef{Name: RuleNoEOF, Body: &Sentence{Kind: Exception}}
	start := &RuleDef{
		Name: RuleStart,
		Body: &Sentence{
			Kind: Concatenation,
			Left: &Sentence{Kind: Rule, RuleName: mainRule},
			Right: &Sentence{
				Kind:  Alternation,
				Left:  &Sentence{Kind: Rule, RuleName: RuleEOF},
				Right: &Sentence{Kind: Rule, RuleName: RuleNoEOF},
			},
		},
	}
	out := make([]*RuleDef, 0, len(rules)+3)
	out = append(out, rules...)
	return append(out, eofRule, noEOFRule, start)
}

// Lookup scans the rule table for name, matching the linear-scan contract
// package engine relies on (spec §4.F). It returns nil, false if absent —
// package engine treats that as a fatal program error, since the emitter
// guarantees every reference resolves.
func Lookup(rules []*RuleDef, name string) (*RuleDef, bool) {
	for _, r := range rules {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}
