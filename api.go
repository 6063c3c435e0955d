package ebnfc

import (
	"github.com/go-ebnfc/ebnfc/engine"
	"github.com/go-ebnfc/ebnfc/grammar"
	"github.com/go-ebnfc/ebnfc/lexer"
)

// Grammar is a compiled grammar paired with the name of its entry
// rule, ready to parse input.
type Grammar struct {
	Model    *grammar.Model
	MainRule string
}

// Compile lexes, parses and cross-checks src, producing a Grammar
// whose MainRule is mainRule.
func Compile(src []byte, mainRule string) (*Grammar, error) {
	toks, err := lexer.Lex(src)
	if err != nil {
		return nil, err
	}
	raws, err := grammar.Parse(toks)
	if err != nil {
		return nil, err
	}
	model, err := grammar.Compile(raws, mainRule)
	if err != nil {
		return nil, err
	}
	return &Grammar{Model: model, MainRule: mainRule}, nil
}

// MustCompile is like Compile but panics on error. It is intended for
// grammars embedded as Go string constants, where a compile failure is
// a programmer error rather than something callers should recover from.
func MustCompile(src []byte, mainRule string) *Grammar {
	g, err := Compile(src, mainRule)
	if err != nil {
		panic(err)
	}
	return g
}

// Parse runs the grammar's backtracking matcher over data, starting at
// the synthetic @start rule built around MainRule.
func (g *Grammar) Parse(data []byte) (*engine.Result, error) {
	return engine.Parse(g.Model.Rules, data)
}

// Print renders the grammar back to EBNF source using the default
// style.
func (g *Grammar) Print() string {
	return grammar.Print(g.Model)
}
