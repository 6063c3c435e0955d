// Package engine is the parse runtime: it matches a compiled grammar
// (package grammar) against an input byte slice and produces a parse
// tree of Units, following the backtracking recursive-descent algorithm
// and the tree-flattening rules that package grammar's compiled form
// was designed around.
package engine
