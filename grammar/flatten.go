package grammar

import (
	"fmt"

	"github.com/go-ebnfc/ebnfc/lexer"
)

// flatten turns a rawRule's flat operand/operator sequence (and the flat
// sequences held inside every bracket group reachable from it) into a
// compiled Sentence tree, applying EBNF's two binary operators at their
// usual precedence: ',' (Concatenation) binds tighter than '|'
// (Alternation). This is an operator-precedence pass over an already
// fully-bracketed sequence — there is no further nesting to discover,
// since '(' '[' '{' '!' already delimited every group during parsing —
// grounded in order_sentences() of the original grammar compiler, which
// performs the same two-level precedence climb over its own flat
// sibling lists.
func flattenRule(r *rawRule) (*RuleDef, error) {
	if IsReservedName(r.name) {
		return nil, &Error{Pos: r.pos, Msg: fmt.Sprintf("rule name %q may not begin with '@': reserved for synthetic rules", r.name)}
	}
	body, err := flattenSeq(r.body)
	if err != nil {
		return nil, err
	}
	return &RuleDef{Name: r.name, Body: body}, nil
}

// flattenSeq compiles one flat operand/operator sequence — a rule body,
// or the inner sequence of a '(' '[' '{' '!' group — into a single
// Sentence. A sequence must be non-empty and must alternate
// operand, operator, operand, ..., operand.
func flattenSeq(seq []*node) (*Sentence, error) {
	if len(seq) == 0 {
		return nil, &Error{Msg: "empty expression: a group or rule body must contain at least one operand"}
	}

	// Split on top-level '|' first: alternation has the lowest precedence.
	var alts [][]*node
	start := 0
	for i, n := range seq {
		if n.sym() == "|" {
			alts = append(alts, seq[start:i])
			start = i + 1
		}
	}
	alts = append(alts, seq[start:])

	altSentences := make([]*Sentence, 0, len(alts))
	for _, alt := range alts {
		s, err := flattenConcat(alt)
		if err != nil {
			return nil, err
		}
		altSentences = append(altSentences, s)
	}

	result := altSentences[0]
	for _, s := range altSentences[1:] {
		result = &Sentence{Kind: Alternation, Left: result, Right: s}
	}
	return result, nil
}

// flattenConcat compiles one top-level alternative: a sequence of
// operands separated by ','.
func flattenConcat(seq []*node) (*Sentence, error) {
	var operands [][]*node
	start := 0
	for i, n := range seq {
		if n.sym() == "," {
			operands = append(operands, seq[start:i])
			start = i + 1
		}
	}
	operands = append(operands, seq[start:])

	terms := make([]*Sentence, 0, len(operands))
	for _, op := range operands {
		if len(op) != 1 {
			pos := lexer.Position{}
			if len(op) > 0 {
				pos = op[0].tok.Pos
			}
			return nil, &Error{Pos: pos, Msg: "malformed expression: expected a single operand between operators"}
		}
		s, err := compileOperand(op[0])
		if err != nil {
			return nil, err
		}
		terms = append(terms, s)
	}

	result := terms[0]
	for _, s := range terms[1:] {
		result = &Sentence{Kind: Concatenation, Left: result, Right: s}
	}
	return result, nil
}

// compileOperand compiles a single leaf or group node into a Sentence.
func compileOperand(n *node) (*Sentence, error) {
	if n.isRange {
		return &Sentence{Kind: CharRange, Low: n.rangeLow, High: n.rangeHigh}, nil
	}
	switch n.tok.Kind {
	case lexer.Ident:
		return &Sentence{Kind: Rule, RuleName: n.tok.Value}, nil
	case lexer.String:
		bs, err := decodeStringBytes(n.tok.Value)
		if err != nil {
			return nil, &Error{Pos: n.tok.Pos, Msg: err.Error()}
		}
		if bs == "" {
			return nil, &Error{Pos: n.tok.Pos, Msg: "empty string literal is not a legal operand"}
		}
		return &Sentence{Kind: String, Bytes: bs}, nil
	case lexer.Symbol:
		switch n.tok.Value {
		case "-":
			return &Sentence{Kind: Exception}, nil
		case "!":
			if len(n.children) != 1 {
				return nil, &Error{Pos: n.tok.Pos, Msg: "rejection '!' takes exactly one operand"}
			}
			inner, err := compileOperand(n.children[0])
			if err != nil {
				return nil, err
			}
			return &Sentence{Kind: Rejection, Inner: inner}, nil
		case "(":
			return flattenSeq(n.children)
		case "[":
			inner, err := flattenSeq(n.children)
			if err != nil {
				return nil, err
			}
			return &Sentence{Kind: Optional, Inner: inner}, nil
		case "{":
			inner, err := flattenSeq(n.children)
			if err != nil {
				return nil, err
			}
			return &Sentence{Kind: Repeated, Inner: inner}, nil
		}
	}
	return nil, &Error{Pos: n.tok.Pos, Msg: fmt.Sprintf("internal error: unrecognized operand %q", n.tok.Value)}
}

// decodeStringBytes decodes a string token's raw Value (opening quote
// included, closing quote already stripped by the lexer) into the byte
// sequence it denotes, resolving the same escapes as decodeEscapedByte
// but across the whole string rather than a single byte.
func decodeStringBytes(tokValue string) (string, error) {
	raw := stripOpeningQuote(tokValue)
	out := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); {
		if raw[i] != '\\' {
			out = append(out, raw[i])
			i++
			continue
		}
		b, n, err := decodeEscapeAt(raw, i)
		if err != nil {
			return "", err
		}
		out = append(out, b)
		i += n
	}
	return string(out), nil
}

// decodeEscapeAt decodes one escape sequence starting at raw[i] (where
// raw[i] == '\\'), returning the decoded byte and the number of input
// bytes it consumed.
func decodeEscapeAt(raw string, i int) (byte, int, error) {
	if i+1 >= len(raw) {
		return 0, 0, fmt.Errorf("dangling escape at end of string")
	}
	switch raw[i+1] {
	case '\\':
		return '\\', 2, nil
	case '"':
		return '"', 2, nil
	case '\'':
		return '\'', 2, nil
	case 'a':
		return '\a', 2, nil
	case 'b':
		return '\b', 2, nil
	case 'f':
		return '\f', 2, nil
	case 'n':
		return '\n', 2, nil
	case 'r':
		return '\r', 2, nil
	case 'v':
		return '\v', 2, nil
	case 'x':
		if i+4 > len(raw) {
			return 0, 0, fmt.Errorf("incomplete \\x escape")
		}
		var n byte
		for _, c := range []byte(raw[i+2 : i+4]) {
			d, ok := hexDigit(c)
			if !ok {
				return 0, 0, fmt.Errorf("invalid \\x escape %q", raw[i:i+4])
			}
			n = n*16 + d
		}
		return n, 4, nil
	default:
		if raw[i+1] >= '0' && raw[i+1] <= '7' {
			end := i + 2
			for end < len(raw) && end < i+4 && raw[end] >= '0' && raw[end] <= '7' {
				end++
			}
			var n int
			for _, c := range []byte(raw[i+1 : end]) {
				n = n*8 + int(c-'0')
			}
			if n > 255 {
				return 0, 0, fmt.Errorf("octal escape %q out of range", raw[i:end])
			}
			return byte(n), end - i, nil
		}
		return 0, 0, fmt.Errorf("unknown escape sequence \\%c", raw[i+1])
	}
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}
