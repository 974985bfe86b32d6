// Package types defines the closed type system of the language: the
// Type enum (spec §3.2) and the static token↔type tables the parser
// and analyzer consult.
package types

import "github.com/BvHand487/shift/internal/token"

// Type is the closed enumeration of value types plus the pre-analysis
// sentinel Unknown. Every expression node carries one, set exactly
// once by the analyzer (spec §3.2 invariant).
type Type int

const (
	// Unknown is the sentinel every expression/parameter type starts
	// at before the analyzer resolves it. No reachable expression may
	// carry Unknown after a successful analysis pass.
	Unknown Type = iota - 1
	Int
	Bool
	String
	Void
)

var names = map[Type]string{
	Unknown: "???",
	Int:     "int",
	Bool:    "bool",
	String:  "str",
	Void:    "void",
}

// String renders the type's surface-syntax spelling, used in type
// error messages.
func (t Type) String() string {
	if s, ok := names[t]; ok {
		return s
	}
	return "???"
}

// fromTokenType maps the three type-keyword tokens to their Type,
// mirroring original_source's TYPE_TOKEN_MAPPINGS.
var fromTokenType = map[token.TokenType]Type{
	token.INT:  Int,
	token.BOOL: Bool,
	token.STR:  String,
}

// FromTokenType resolves a type-keyword token to its Type. ok is false
// if tt is not one of the three type keywords.
func FromTokenType(tt token.TokenType) (Type, bool) {
	t, ok := fromTokenType[tt]
	return t, ok
}
