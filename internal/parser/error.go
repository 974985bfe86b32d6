package parser

import "github.com/BvHand487/shift/internal/token"

// ParseError is raised on the first unexpected token or missing
// terminator; the parser fails fast, per spec §4.2/§7.
type ParseError struct {
	Position token.Position
	Message  string
}

func (e *ParseError) Error() string {
	return e.Position.String() + ": " + e.Message
}
