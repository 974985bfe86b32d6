package lexer

import "github.com/BvHand487/shift/internal/token"

// LexicalError is raised on an unterminated string or an unrecognized
// character, per spec §4.1. The lexer fails fast: the first lexical
// error stops tokenization.
type LexicalError struct {
	Position token.Position
	Message  string
}

func (e *LexicalError) Error() string {
	return e.Position.String() + ": " + e.Message
}
