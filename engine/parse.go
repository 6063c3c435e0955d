package engine

import (
	"fmt"

	"github.com/go-ebnfc/ebnfc/grammar"
)

// Result is the outcome of a Parse call.
type Result struct {
	// Root is the parse tree rooted at the grammar's @start rule, or nil
	// if the main rule could not match at all.
	Root *Unit

	// Clean reports whether input was consumed to exactly its end with
	// no unresolved exception (grammar.Exception, the `-` primitive)
	// left pending. A Parse that returns Root != nil and Clean == false
	// matched *something* but ran into a premature end of input that no
	// enclosing rejection absorbed.
	Clean bool
}

// Parse matches rules' @start rule (as built by grammar.BuildSyntheticRules)
// against data and returns the resulting tree.
//
// rules must already include the synthetic @start/@eof/@noeof entries;
// callers normally pass grammar.Model.Rules directly.
func Parse(rules []*grammar.RuleDef, data []byte) (*Result, error) {
	start, ok := grammar.Lookup(rules, grammar.RuleStart)
	if !ok {
		return nil, fmt.Errorf("engine: compiled rule table has no %s rule", grammar.RuleStart)
	}

	ctx := &context{rules: rules, data: data}
	root := ctx.tryMatch(start.Name, start.Body)

	return &Result{
		Root:  root,
		Clean: root != nil && !ctx.exception,
	}, nil
}
