// Package token defines the token vocabulary shared by the lexer and
// parser: token types, positions, and the keyword lookup table.
package token

// Token is a single lexeme together with its type and the position of
// its first character, per spec §3.1/§4.1.
type Token struct {
	Type     TokenType
	Lexeme   string
	Position Position
}

// NewToken constructs a Token. It is a thin constructor kept mainly so
// call sites read "NewToken(type, lexeme, pos)" rather than a bare
// struct literal, matching the rest of the front end's constructor
// style.
func NewToken(typ TokenType, lexeme string, pos Position) Token {
	return Token{Type: typ, Lexeme: lexeme, Position: pos}
}

// keywords maps the exact keyword spellings to their token type, per
// spec §4.1: "true, false, not, and, or, fn, return, if, else, while,
// extern, let, and the type keywords int, bool, str".
var keywords = map[string]TokenType{
	"true":   TRUE,
	"false":  FALSE,
	"not":    NOT,
	"and":    AND,
	"or":     OR,
	"fn":     FN,
	"return": RETURN,
	"if":     IF,
	"else":   ELSE,
	"while":  WHILE,
	"extern": EXTERN,
	"let":    LET,
	"int":    INT,
	"bool":   BOOL,
	"str":    STR,
}

// LookupIdent classifies an identifier lexeme as a keyword token or, if
// it matches no entry in the keyword table, as a plain IDENT.
func LookupIdent(ident string) TokenType {
	if typ, ok := keywords[ident]; ok {
		return typ
	}
	return IDENT
}

// IsKeyword reports whether ident is one of this language's reserved
// words.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}
