package grammar

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Model is a fully compiled, cross-reference-checked grammar: the table
// of rules package engine parses against, plus the bookkeeping the
// compiler CLI and the codegen template report to the user.
type Model struct {
	Rules []*RuleDef

	// Defined and Referenced are sorted, de-duplicated rule-name vectors
	// (spec §4.D): every name appearing on the left of a '=', and every
	// name appearing inside an Ident operand anywhere in the grammar,
	// respectively. The synthetic rules (@eof, @noeof, @start) are
	// excluded from both: they are compiler machinery, not part of the
	// user's grammar surface.
	Defined    []string
	Referenced []string
}

// Compile turns a parsed token stream's rawRules into a checked Model
// rooted at mainRule, appending the synthetic @eof/@noeof/@start rules.
func Compile(raws []*rawRule, mainRule string) (*Model, error) {
	rules := make([]*RuleDef, 0, len(raws))
	for _, r := range raws {
		def, err := flattenRule(r)
		if err != nil {
			return nil, err
		}
		rules = append(rules, def)
	}

	defined := make([]string, 0, len(rules))
	for _, r := range rules {
		defined = append(defined, r.Name)
	}
	slices.Sort(defined)

	referenced := map[string]bool{}
	for _, r := range rules {
		collectReferences(r.Body, referenced)
	}
	refVec := make([]string, 0, len(referenced))
	for name := range referenced {
		refVec = append(refVec, name)
	}
	slices.Sort(refVec)

	if _, ok := Lookup(rules, mainRule); !ok {
		return nil, fmt.Errorf("main rule %q is not defined", mainRule)
	}

	// Cross-check defined against referenced (spec §4.D): every referenced
	// name must be defined, and every defined name must be either
	// referenced or the main rule. Either mismatch is fatal; both kinds are
	// collected and reported together rather than failing on the first,
	// matching libparser-generate.c's own two-pass "defined but not used" /
	// "used but not defined" report before it exits(1).
	var problems []string
	for _, name := range refVec {
		if _, ok := Lookup(rules, name); !ok {
			problems = append(problems, fmt.Sprintf("rule %q is referenced but never defined", name))
		}
	}
	for _, name := range unusedNames(defined, refVec, mainRule) {
		problems = append(problems, fmt.Sprintf("rule %q is defined but never referenced", name))
	}
	if len(problems) > 0 {
		return nil, fmt.Errorf("%s", strings.Join(problems, "; "))
	}

	full := BuildSyntheticRules(rules, mainRule)

	return &Model{
		Rules:      full,
		Defined:    defined,
		Referenced: refVec,
	}, nil
}

func collectReferences(s *Sentence, out map[string]bool) {
	if s == nil {
		return
	}
	switch s.Kind {
	case Rule:
		out[s.RuleName] = true
	case Concatenation, Alternation:
		collectReferences(s.Left, out)
		collectReferences(s.Right, out)
	case Optional, Repeated, Rejection:
		collectReferences(s.Inner, out)
	}
}

// unusedNames reports names in defined that are neither mainRule nor
// present in referenced — rules a grammar author defined but left dead.
// Compile treats a non-empty result as fatal (spec §4.D, §7).
func unusedNames(defined, referenced []string, mainRule string) []string {
	refSet := make(map[string]bool, len(referenced))
	for _, n := range referenced {
		refSet[n] = true
	}
	var out []string
	for _, n := range defined {
		if n == mainRule || refSet[n] {
			continue
		}
		out = append(out, n)
	}
	return out
}
