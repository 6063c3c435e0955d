// Command ebnfc-print recompiles an EBNF grammar read from stdin and
// writes its canonical, fully-parenthesized form to stdout. It exists
// to help debugging: feeding a grammar's own printed form back through
// the compiler should reproduce an equivalent compiled model.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/go-ebnfc/ebnfc/grammar"
	"github.com/go-ebnfc/ebnfc/lexer"
)

var (
	rule      = kingpin.Arg("rule", "Name of the grammar's designated start rule.").Required().String()
	styleFile = kingpin.Flag("style", "TOML file describing print style.").Short('s').String()
)

func main() {
	kingpin.Version("dev")
	kingpin.Parse()

	style := grammar.DefaultStyle
	if *styleFile != "" {
		loaded, err := loadStyle(*styleFile)
		kingpin.FatalIfError(err, "reading style file")
		style = loaded
	}

	out, err := run(style)
	kingpin.FatalIfError(err, "ebnfc-print")
	fmt.Print(out)
}

func loadStyle(path string) (grammar.Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return grammar.Style{}, err
	}
	var s grammar.Style
	if err := toml.Unmarshal(data, &s); err != nil {
		return grammar.Style{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

func run(style grammar.Style) (string, error) {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading grammar source: %w", err)
	}

	toks, err := lexer.Lex(src)
	if err != nil {
		return "", err
	}
	raws, err := grammar.Parse(toks)
	if err != nil {
		return "", err
	}
	model, err := grammar.Compile(raws, *rule)
	if err != nil {
		return "", err
	}
	return grammar.PrintStyle(model, style), nil
}
