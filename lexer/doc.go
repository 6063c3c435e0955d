// Package lexer splits EBNF grammar source into tokens for package grammar.
//
// It owns the single pass over the raw byte buffer: UTF-8 validation,
// illegal-byte rejection, tab-stop-aware position tracking, and
// `(* ... *)` comment stripping all happen here, so everything downstream
// sees a clean token sequence.
package lexer
