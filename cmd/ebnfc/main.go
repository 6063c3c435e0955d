// Command ebnfc compiles an EBNF grammar read from stdin into a Go
// source file declaring the grammar's compiled rule table, written to
// stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/go-ebnfc/ebnfc/grammar"
	"github.com/go-ebnfc/ebnfc/internal/diag"
	"github.com/go-ebnfc/ebnfc/lexer"
)

var version string = "dev"

var cli struct {
	Version kong.VersionFlag
	Package string `short:"p" default:"grammar" help:"Go package name for the generated rule table."`
	Rule    string `arg:"" help:"Name of the grammar's designated start rule."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Description("Compiles an EBNF grammar read from stdin into a Go rule table."),
		kong.Vars{"version": version},
	)
	err := run()
	kctx.FatalIfErrorf(err)
}

func run() error {
	src, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading grammar source: %w", err)
	}
	if len(src) == 0 {
		return fmt.Errorf("%s", diag.T(diag.NoInput))
	}

	toks, err := lexer.Lex(src)
	if err != nil {
		return fmt.Errorf("%s", diag.T(diag.CompileFailed, map[string]interface{}{"Err": err.Error()}))
	}

	raws, err := grammar.Parse(toks)
	if err != nil {
		return fmt.Errorf("%s", diag.T(diag.CompileFailed, map[string]interface{}{"Err": err.Error()}))
	}

	model, err := grammar.Compile(raws, cli.Rule)
	if err != nil {
		return fmt.Errorf("%s", diag.T(diag.CompileFailed, map[string]interface{}{"Err": err.Error()}))
	}

	out, err := grammar.GenerateGo(cli.Package, cli.Rule, model)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, diag.T(diag.CompileOK, map[string]interface{}{
		"RuleCount": len(model.Defined),
		"MainRule":  cli.Rule,
	}))

	_, err = os.Stdout.WriteString(out)
	return err
}
