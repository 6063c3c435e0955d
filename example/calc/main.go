// Command calc is a worked example of a client consuming package
// engine's parse trees: an arithmetic REPL built on a small grammar
// compiled with the same grammar/engine packages the rest of this
// module uses, not a hand-rolled expression evaluator. It is grounded
// in calc-example/calc.c from the original implementation, which this
// spec names as the motivating use case for the whole toolkit.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/go-ebnfc/ebnfc/internal/diag"
)

func main() {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := scanner.Bytes()
		result, err := calcGrammarCompiled.Parse(line)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		switch {
		case result.Root == nil:
			fmt.Fprintln(os.Stderr, diag.T(diag.ParseNoMatch))
		case result.Root.End != len(line):
			fmt.Fprintln(os.Stderr, diag.T(diag.ParseMismatch, map[string]interface{}{"Column": result.Root.End}))
		case !result.Clean:
			fmt.Fprintln(os.Stderr, diag.T(diag.ParsePremature))
		default:
			fmt.Println(Calculate(result.Root, line))
		}
	}
}
