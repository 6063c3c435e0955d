package lexer

import "fmt"

// Error is a fatal lexical error, annotated with the position in the
// grammar source where it was detected.
type Error struct {
	Pos Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s (character %d)", e.Pos, e.Msg, e.Pos.Character)
}

// Panic raises a lexical Error. Lexer internals use this instead of
// threading an error return through every state transition; Lex recovers
// it at the top level.
func Panic(pos Position, msg string) {
	panic(&Error{Pos: pos, Msg: msg})
}

// Panicf is Panic with a format string.
func Panicf(pos Position, format string, args ...interface{}) {
	Panic(pos, fmt.Sprintf(format, args...))
}
