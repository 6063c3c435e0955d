package engine

// Children returns u's immediate children as a slice, walking the
// In/Next linked chain this package's matcher builds. It is provided
// for consumers that want normal slice iteration instead of walking
// Next by hand.
func (u *Unit) Children() []*Unit {
	var out []*Unit
	for c := u.In; c != nil; c = c.Next {
		out = append(out, c)
	}
	return out
}

// Text returns the slice of data that u matched.
func (u *Unit) Text(data []byte) []byte {
	return data[u.Start:u.End]
}

// Find returns the first child directly under u whose Rule equals name,
// and reports whether one was found. It does not recurse.
func (u *Unit) Find(name string) (*Unit, bool) {
	for c := u.In; c != nil; c = c.Next {
		if c.Rule == name {
			return c, true
		}
	}
	return nil, false
}
