package semantic

import "github.com/BvHand487/shift/internal/token"

// SemanticError is raised by the analyzer; it carries a human-readable
// description of the rule that failed plus, for undefined-name errors,
// an optional "did you mean" suggestion (§4.5 — presentational only,
// never changes accept/reject).
type SemanticError struct {
	Position   token.Position
	Message    string
	Suggestion string
}

func (e *SemanticError) Error() string {
	msg := e.Position.String() + ": " + e.Message
	if e.Suggestion != "" {
		msg += " (did you mean '" + e.Suggestion + "'?)"
	}
	return msg
}
