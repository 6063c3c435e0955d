package grammar

import (
	"fmt"

	"github.com/go-ebnfc/ebnfc/lexer"
)

// Error is a fatal grammar-source error: a lexical, structural, or
// cross-reference problem detected while compiling a grammar, annotated
// with the position at which it was detected.
type Error struct {
	Pos lexer.Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Msg)
}

func raise(pos lexer.Position, format string, args ...interface{}) {
	panic(&Error{Pos: pos, Msg: fmt.Sprintf(format, args...)})
}

// recoverError converts a panicked *Error into a normal return value. Any
// other panic value is a programmer error and is re-raised.
func recoverError(errp *error) {
	if r := recover(); r != nil {
		e, ok := r.(*Error)
		if !ok {
			panic(r)
		}
		*errp = e
	}
}
