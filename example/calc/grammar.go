package main

import "github.com/go-ebnfc/ebnfc"

// calcGrammar is a small arithmetic grammar, grounded in the rule names
// the original calculator's tree-walker (calc-example/calc.c) switches
// on: DIGIT, sign, unsigned, number, value, hyper1 (+/-), hyper2 (*//),
// and the four operator tokens. A parenthesized sub-expression directly
// following a number is an implicit multiplication, e.g. "2(3+4)"
// evaluates to 14 — the original's "value" rule multiplies its optional
// second child into its first exactly this way.
const calcGrammar = `
DIGIT    = <"0", "9"> ;
ADD      = "+" ;
SUB      = "-" ;
MUL      = "*" ;
DIV      = "/" ;
sign     = ADD | SUB ;
unsigned = DIGIT, { DIGIT } ;
number   = [ sign ], unsigned ;
value    = number, [ "(", hyper1, ")" ] ;
hyper2   = value, { (MUL | DIV), value } ;
hyper1   = hyper2, { (ADD | SUB), hyper2 } ;
`

const calcMainRule = "hyper1"

var calcGrammarCompiled = ebnfc.MustCompile([]byte(calcGrammar), calcMainRule)
