package main

import "github.com/go-ebnfc/ebnfc/engine"

// calculateWithLine walks a parsed expression tree, following
// calc-example/calc.c's own per-rule-name recursion: a node's meaning
// depends entirely on which named rule it was matched under, with
// anonymous nodes (synthetic @-rules, stray combinators) simply
// descending into their first child. line is the source text the tree
// was matched against, needed to read DIGIT's matched byte.
func calculateWithLine(u *engine.Unit, line []byte) int64 {
	switch u.Rule {
	case "DIGIT":
		return int64(line[u.Start] - '0')

	case "sign":
		if u.In != nil && u.In.Rule == "SUB" {
			return -1
		}
		return 1

	case "unsigned":
		var v int64
		for c := u.In; c != nil; c = c.Next {
			v = v*10 + calculateWithLine(c, line)
		}
		return v

	case "number":
		children := u.Children()
		v := calculateWithLine(children[0], line)
		for _, c := range children[1:] {
			v *= calculateWithLine(c, line)
		}
		return v

	case "value":
		children := u.Children()
		v := calculateWithLine(children[0], line)
		if len(children) > 1 {
			v *= calculateWithLine(children[1], line)
		}
		return v

	case "hyper1":
		children := u.Children()
		v := calculateWithLine(children[0], line)
		for i := 1; i+1 < len(children); i += 2 {
			rhs := calculateWithLine(children[i+1], line)
			if children[i].Rule == "SUB" {
				v -= rhs
			} else {
				v += rhs
			}
		}
		return v

	case "hyper2":
		children := u.Children()
		v := calculateWithLine(children[0], line)
		for i := 1; i+1 < len(children); i += 2 {
			rhs := calculateWithLine(children[i+1], line)
			if children[i].Rule == "DIV" {
				v /= rhs
			} else {
				v *= rhs
			}
		}
		return v

	default:
		if u.In != nil {
			return calculateWithLine(u.In, line)
		}
		return 0
	}
}

// Calculate evaluates the root of a tree engine.Parse returned for one
// input line.
func Calculate(root *engine.Unit, line []byte) int64 {
	return calculateWithLine(root, line)
}
