package token

import "fmt"

// Position identifies a location in the source text by the line and
// column of the first character of the associated lexeme.
// Lines and columns are both 1-indexed.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// String renders the position as "line:column", the form used in every
// diagnostic message produced by the lexer, parser, and analyzer.
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
