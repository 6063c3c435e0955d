// Package ebnfc compiles EBNF grammar definitions into compact rule
// tables and runs a backtracking matcher over them.
//
// A grammar is a sequence of productions of the form:
//
//	name = expression ;
//
// where expression combines operands with concatenation (","),
// alternation ("|"), optionality ("[ ... ]"), repetition ("{ ... }"),
// grouping ("( ... )"), character ranges ("<low, high>"), the
// rejection operator ("!x", fail if x matches) and the exception
// primitive ("-", always match with zero width but mark the parse
// unclean). Rule names starting with "_" are inline: their match is
// spliced into the parent's children instead of appearing as a node
// of its own, which is how a grammar factors out shared fragments
// (whitespace, separators) without cluttering the parse tree.
//
// Compiling a grammar is a three-stage pipeline — lexer.Lex tokenizes
// the source, grammar.Parse builds a raw rule list of flat
// operand/operator sequences, and grammar.Compile applies operator
// precedence, cross-checks every rule reference and produces the
// []*grammar.RuleDef table that engine.Parse runs against. This
// package's Compile and MustCompile wrap that pipeline for the common
// case of holding a single compiled grammar alongside the parser it
// drives, the way package example/calc's REPL does.
package ebnfc
