package lexer

import "unicode/utf8"

const tabStop = 8

func isIdentByte(b byte) bool {
	return b == '_' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		b&0x80 != 0
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f':
		return true
	}
	return false
}

// isLegalControl reports whether a single-byte control character is allowed
// to appear bare in grammar source: only tab and newline are.
func isLegalControl(b byte) bool {
	return b == '\n' || b == '\t'
}

// Lex tokenizes grammar source, validating the byte stream and discarding
// `(* ... *)` block comments as it scans. A non-nil error is always *Error.
func Lex(data []byte) (tokens []Token, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			tokens, err = nil, e
		}
	}()
	return scan(data), nil
}

type scanState int

const (
	stateNewToken scanState = iota
	stateIdentifier
	stateString
	stateStringEsc
	stateSpace
)

// unit is one lexical "character" fed to the state machine: either a single
// ASCII/control byte, or the bytes of one validated multi-byte UTF-8 rune.
// Position (line/column/character) advances once per unit, per spec,
// regardless of how many bytes the unit spans.
func nextUnit(pos Position, data []byte, i int) (u []byte, next int) {
	b := data[i]
	if b < 0x80 {
		return data[i : i+1], i + 1
	}
	r, size := utf8.DecodeRune(data[i:])
	if r == utf8.RuneError && size <= 1 {
		Panicf(pos, "illegal byte sequence 0x%02x", b)
	}
	return data[i : i+size], i + size
}

func advance(pos Position, u []byte) Position {
	switch {
	case len(u) == 1 && u[0] == '\n':
		pos.Line++
		pos.Column = 0
		pos.Character = 0
	case len(u) == 1 && u[0] == '\t':
		pos.Column += tabStop - pos.Column%tabStop
		pos.Character++
	default:
		pos.Column++
		pos.Character++
	}
	return pos
}

// scan runs the NEW_TOKEN/IDENTIFIER/STRING/STRING_ESC/SPACE state machine
// over data, producing a contiguous token sequence. Grounded in the
// tokenise() state machine of the original C generator, generalized to a
// unit-at-a-time (byte or validated rune) model instead of raw bytes so
// that UTF-8 validation happens inline rather than in a separate pre-pass.
func scan(data []byte) []Token {
	var tokens []Token
	var buf []byte
	state := stateNewToken
	pos := Position{Line: 1}
	var tokPos Position

	emit := func(kind Kind) {
		tokens = append(tokens, Token{Kind: kind, Value: string(buf), Pos: tokPos})
		buf = nil
		state = stateNewToken
	}

	i := 0
	for i < len(data) {
		u, ni := nextUnit(pos, data, i)
		b := u[0]

		if len(u) == 1 && !isLegalControl(b) && b < 0x20 {
			Panicf(pos, "illegal control byte 0x%02x in grammar source", b)
		}
		if len(u) == 1 && b == 0x7F {
			Panicf(pos, "illegal DEL byte in grammar source")
		}

		switch state {
		case stateNewToken:
			tokPos = pos
			switch {
			case len(u) == 1 && b == '(' && i+1 < len(data) && data[i+1] == '*':
				pos, i = skipComment(pos, data, i)
				continue
			case len(u) > 1 || isIdentByte(b):
				buf = append(buf, u...)
				state = stateIdentifier
			case isSpaceByte(b):
				buf = append(buf, u...)
				state = stateSpace
			case b == '"':
				if i+1 < len(data) && data[i+1] == '"' {
					Panicf(pos, "empty string literal")
				}
				buf = append(buf, u...)
				state = stateString
			case isSymbolByte(b):
				buf = append(buf, u...)
				emit(Symbol)
			default:
				Panicf(pos, "illegal byte %q in grammar source", b)
			}

		case stateIdentifier:
			if len(u) > 1 || isIdentByte(b) || b == '-' {
				buf = append(buf, u...)
			} else {
				emit(Ident)
				continue // reprocess this unit in stateNewToken
			}

		case stateString:
			switch {
			case len(u) == 1 && (b == '\n' || b == '\t'):
				Panicf(pos, "illegal whitespace inside string literal")
			case len(u) == 1 && b == '"':
				emit(String) // closing quote is consumed, not appended
			case len(u) == 1 && b == '\\':
				buf = append(buf, u...)
				state = stateStringEsc
			default:
				buf = append(buf, u...)
			}

		case stateStringEsc:
			if len(u) == 1 && (b == '\n' || b == '\t') {
				Panicf(pos, "illegal whitespace inside string literal")
			}
			buf = append(buf, u...)
			state = stateString

		case stateSpace:
			if len(u) == 1 && isSpaceByte(b) {
				buf = append(buf, u...)
			} else {
				emit(Space)
				continue // reprocess this unit in stateNewToken
			}
		}

		pos = advance(pos, u)
		i = ni
	}

	switch state {
	case stateNewToken:
	case stateSpace:
		emit(Space)
	case stateString, stateStringEsc:
		Panicf(tokPos, "unterminated string literal")
	default:
		Panicf(pos, "premature end of file")
	}

	tokens = append(tokens, EOFToken(pos))
	return tokens
}

func isSymbolByte(b byte) bool {
	switch b {
	case '=', '(', ')', '[', ']', '{', '}', '<', '>', '|', ',', ';', '-', '!', '*', '"':
		return true
	}
	return false
}

// skipComment consumes a non-nesting `(* ... *)` block comment starting at
// data[i] (data[i] == '(', data[i+1] == '*'), returning the position and
// index just past the closing "*)". It walks raw units rather than routing
// through stateString/stateIdentifier, so a stray quote, tab, or newline in
// a comment's body is just comment text, not a lexical error. The usual
// illegal-byte checks (control bytes, DEL, malformed UTF-8) still apply to
// every unit along the way: a comment's bytes are still grammar source.
func skipComment(pos Position, data []byte, i int) (Position, int) {
	start := pos
	// consume '(' and '*'
	u, ni := nextUnit(pos, data, i)
	pos, i = advance(pos, u), ni
	u, ni = nextUnit(pos, data, i)
	pos, i = advance(pos, u), ni

	for {
		if i >= len(data) {
			Panicf(start, "unterminated block comment")
		}
		u, ni = nextUnit(pos, data, i)
		b := u[0]
		if len(u) == 1 && !isLegalControl(b) && b < 0x20 {
			Panicf(pos, "illegal control byte 0x%02x in grammar source", b)
		}
		if len(u) == 1 && b == 0x7F {
			Panicf(pos, "illegal DEL byte in grammar source")
		}
		if len(u) == 1 && b == '*' && i+1 < len(data) && data[i+1] == ')' {
			pos = advance(pos, u)
			u2, ni2 := nextUnit(pos, data, i+1)
			pos = advance(pos, u2)
			return pos, ni2
		}
		pos, i = advance(pos, u), ni
	}
}
