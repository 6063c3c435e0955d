package grammar

import (
	"fmt"
	"strconv"
	"strings"
)

// Style controls cosmetic choices Print makes that have no effect on
// what the printed grammar compiles back to. DefaultStyle matches
// print-syntax.c's own fixed output exactly: blank line between rules,
// always-parenthesized binary operators. The zero Style omits the blank
// line.
type Style struct {
	// BlankLineBetweenRules inserts an extra newline after each rule's
	// trailing ';', matching the original debug printer's own output.
	BlankLineBetweenRules bool
}

// DefaultStyle is print-syntax.c's own formatting.
var DefaultStyle = Style{BlankLineBetweenRules: true}

// Print renders a Model back to grammar source text, skipping the
// synthetic '@'-named rules. It exists to help debugging: running the
// compiler's own output back through Parse and Compile should produce
// an equivalent Model, modulo the cosmetic parenthesization Print always
// applies (grounded on print-syntax.c from the original implementation,
// which prints the same fully-parenthesized form for the same reason).
func Print(m *Model) string {
	return PrintStyle(m, DefaultStyle)
}

// PrintStyle is Print with an explicit Style.
func PrintStyle(m *Model, style Style) string {
	var b strings.Builder
	first := true
	for _, r := range m.Rules {
		if r == nil || IsReservedName(r.Name) {
			continue
		}
		if !first && style.BlankLineBetweenRules {
			b.WriteByte('\n')
		}
		first = false
		fmt.Fprintf(&b, "%s = ", r.Name)
		printSentence(&b, r.Body)
		b.WriteString(";\n")
	}
	return b.String()
}

func printSentence(b *strings.Builder, s *Sentence) {
	switch s.Kind {
	case Concatenation:
		b.WriteByte('(')
		printSentence(b, s.Left)
		b.WriteString(", ")
		printSentence(b, s.Right)
		b.WriteByte(')')
	case Alternation:
		b.WriteByte('(')
		printSentence(b, s.Left)
		b.WriteString(" | ")
		printSentence(b, s.Right)
		b.WriteByte(')')
	case Rejection:
		b.WriteString("!(")
		printSentence(b, s.Inner)
		b.WriteByte(')')
	case Optional:
		b.WriteByte('[')
		printSentence(b, s.Inner)
		b.WriteByte(']')
	case Repeated:
		b.WriteByte('{')
		printSentence(b, s.Inner)
		b.WriteByte('}')
	case String:
		fmt.Fprintf(b, "%q", s.Bytes)
	case CharRange:
		b.WriteByte('<')
		writeCharBound(b, s.Low)
		b.WriteString(", ")
		writeCharBound(b, s.High)
		b.WriteByte('>')
	case Rule:
		b.WriteString(s.RuleName)
	case Exception:
		b.WriteByte('-')
	case Eof:
		b.WriteString(RuleEOF)
	}
}

// writeCharBound prints a byte as a quoted printable character when it
// is one, and as a 0xHH literal otherwise — the same choice
// print-syntax.c makes per bound independently.
func writeCharBound(b *strings.Builder, c byte) {
	if isPrintableASCII(c) {
		fmt.Fprintf(b, "%q", string(rune(c)))
		return
	}
	b.WriteString("0x" + strconv.FormatInt(int64(c), 16))
}

func isPrintableASCII(c byte) bool {
	return c >= 0x20 && c < 0x7f
}
