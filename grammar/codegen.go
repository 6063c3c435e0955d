package grammar

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/template"
)

// codegenTmpl renders a compiled Model as a standalone Go source file
// defining a package-level Rules table, ready to hand to package engine
// without compiling the grammar again at runtime.
var codegenTmpl = template.Must(template.New("rules").Parse(`// Code generated by ebnfc. DO NOT EDIT.

package {{.Package}}

import "github.com/go-ebnfc/ebnfc/grammar"

// Rules is the compiled rule table for the grammar this file was
// generated from. The slice is terminated by a trailing nil entry,
// matching the pointer-to-array-of-Rule*-terminated-by-null-pointer
// contract the grammar compiler's runtime has always exposed.
var Rules = []*grammar.RuleDef{
{{range .Entries}}	{{.}},
{{end}}	nil,
}

// MainRule names the grammar's designated start production.
const MainRule = {{printf "%q" .MainRule}}
`))

// GenerateGo renders model as Go source in package pkgName, with the
// main rule's name recorded alongside the table as the MainRule
// constant.
func GenerateGo(pkgName, mainRule string, model *Model) (string, error) {
	entries := make([]string, len(model.Rules))
	for i, r := range model.Rules {
		entries[i] = renderRuleDef(r)
	}
	var buf bytes.Buffer
	err := codegenTmpl.Execute(&buf, struct {
		Package  string
		MainRule string
		Entries  []string
	}{Package: pkgName, MainRule: mainRule, Entries: entries})
	if err != nil {
		return "", fmt.Errorf("rendering generated grammar source: %w", err)
	}
	return buf.String(), nil
}

func renderRuleDef(r *RuleDef) string {
	if r == nil {
		return "nil"
	}
	return fmt.Sprintf("{Name: %q, Body: %s}", r.Name, renderSentence(r.Body))
}

func renderSentence(s *Sentence) string {
	if s == nil {
		return "nil"
	}
	switch s.Kind {
	case Concatenation:
		return fmt.Sprintf("&grammar.Sentence{Kind: grammar.Concatenation, Left: %s, Right: %s}",
			renderSentence(s.Left), renderSentence(s.Right))
	case Alternation:
		return fmt.Sprintf("&grammar.Sentence{Kind: grammar.Alternation, Left: %s, Right: %s}",
			renderSentence(s.Left), renderSentence(s.Right))
	case Optional:
		return fmt.Sprintf("&grammar.Sentence{Kind: grammar.Optional, Inner: %s}", renderSentence(s.Inner))
	case Repeated:
		return fmt.Sprintf("&grammar.Sentence{Kind: grammar.Repeated, Inner: %s}", renderSentence(s.Inner))
	case Rejection:
		return fmt.Sprintf("&grammar.Sentence{Kind: grammar.Rejection, Inner: %s}", renderSentence(s.Inner))
	case String:
		return fmt.Sprintf("&grammar.Sentence{Kind: grammar.String, Bytes: %s}", goStringLiteral(s.Bytes))
	case CharRange:
		return fmt.Sprintf("&grammar.Sentence{Kind: grammar.CharRange, Low: %s, High: %s}",
			byteLiteral(s.Low), byteLiteral(s.High))
	case Rule:
		return fmt.Sprintf("&grammar.Sentence{Kind: grammar.Rule, RuleName: %q}", s.RuleName)
	case Exception:
		return "&grammar.Sentence{Kind: grammar.Exception}"
	case Eof:
		return "&grammar.Sentence{Kind: grammar.Eof}"
	default:
		return "nil"
	}
}

// goStringLiteral renders an arbitrary byte string as a Go string
// literal, using backquotes when the content is printable and contains
// neither a backquote nor a backslash, and a quoted/escaped literal
// (which also survives non-UTF-8 bytes) otherwise.
func goStringLiteral(s string) string {
	if isPlainASCII(s) && !strings.ContainsAny(s, "`\\") {
		return "`" + s + "`"
	}
	return strconv.Quote(s)
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

func byteLiteral(b byte) string {
	return strconv.Itoa(int(b))
}
