package engine

// Unit is one node of a parse tree: the span of input matched by one
// sentence, together with the child units its sub-sentences matched.
//
// Rule is the name the match was recorded under. The unit matched for a
// rule's body carries that rule's name, whatever kind of sentence the
// body is; every other unit is anonymous, with Rule "". An anonymous
// unit, or one whose Rule begins with '_' (spec's "inline rule"
// convention), is normally not kept as a node of its own: its In
// children are spliced directly into its parent's child list during
// matching. A Concatenation whose left operand sets the done flag
// returns without splicing, so an anonymous unit can remain there.
type Unit struct {
	Rule       string
	In, Next   *Unit
	Start, End int
}

func isInline(u *Unit) bool {
	return u.Rule == "" || u.Rule[0] == '_'
}

// allocUnit pulls a Unit off ctx's free list, or allocates a fresh one
// if the list is empty. Backtracking abandons far more units than it
// keeps, so reusing them avoids garbage thrashing on any grammar with
// heavy alternation.
func (ctx *context) allocUnit() *Unit {
	if ctx.cache == nil {
		return &Unit{}
	}
	u := ctx.cache
	ctx.cache = u.Next
	u.In, u.Next = nil, nil
	return u
}

// freeUnit returns unit, every sibling reachable from it through Next,
// and all of their descendants (recursively) to ctx's free list: the
// whole sibling chain starting at unit is consumed.
func (ctx *context) freeUnit(unit *Unit) {
	for unit != nil {
		ctx.freeUnit(unit.In)
		next := unit.Next
		unit.Next = ctx.cache
		ctx.cache = unit
		unit = next
	}
}
