// Package operator defines the binary/unary operator enums and the
// static precedence table the parser's precedence-climbing loop reads,
// per spec §4.2.
package operator

import "github.com/BvHand487/shift/internal/token"

// Binary identifies a binary operator, independent of which token
// spelled it.
type Binary int

const (
	Add Binary = iota
	Sub
	Mul
	Div
	Mod
	Pow

	And
	Or

	BitAnd
	BitOr
	BitXor

	Gt
	GtEq
	Lt
	LtEq
	Eq
	NotEq
)

var binaryNames = map[Binary]string{
	Add: "+", Sub: "-", Mul: "*", Div: "/", Mod: "%", Pow: "**",
	And: "and", Or: "or",
	BitAnd: "&", BitOr: "|", BitXor: "^",
	Gt: ">", GtEq: ">=", Lt: "<", LtEq: "<=", Eq: "==", NotEq: "!=",
}

func (b Binary) String() string { return binaryNames[b] }

// Unary identifies a unary prefix operator.
type Unary int

const (
	Pos Unary = iota // +x, identity
	Neg              // -x
	Not              // not x / !x, logical negation
	BitNot           // ~x
)

var unaryNames = map[Unary]string{
	Pos: "+", Neg: "-", Not: "not", BitNot: "~",
}

func (u Unary) String() string { return unaryNames[u] }

// tokenToBinary maps every binary-operator token to its Binary. Note
// §9 open question 3: LESS_EQ and GREATER_EQ map to distinct operators
// (LtEq, GtEq) — the typo collision seen in one source revision is not
// reproduced here.
var tokenToBinary = map[token.TokenType]Binary{
	token.PLUS:       Add,
	token.MINUS:      Sub,
	token.ASTERISK:   Mul,
	token.SLASH:      Div,
	token.PERCENT:    Mod,
	token.POWER:      Pow,
	token.AND:        And,
	token.OR:         Or,
	token.AMP:        BitAnd,
	token.PIPE:       BitOr,
	token.CARET:      BitXor,
	token.GREATER:    Gt,
	token.GREATER_EQ: GtEq,
	token.LESS:       Lt,
	token.LESS_EQ:    LtEq,
	token.EQ:         Eq,
	token.NOT_EQ:     NotEq,
}

// BinaryFromToken resolves a binary-operator token. ok is false if tt
// is not a binary operator token.
func BinaryFromToken(tt token.TokenType) (Binary, bool) {
	b, ok := tokenToBinary[tt]
	return b, ok
}

// tokenToUnary maps every unary-prefix-operator token to its Unary.
// Both spellings of logical negation ("not" and "!") resolve to Not.
var tokenToUnary = map[token.TokenType]Unary{
	token.PLUS:  Pos,
	token.MINUS: Neg,
	token.NOT:   Not,
	token.EXCL:  Not,
	token.TILDE: BitNot,
}

// UnaryFromToken resolves a unary-prefix-operator token. ok is false
// if tt cannot start a unary expression.
func UnaryFromToken(tt token.TokenType) (Unary, bool) {
	u, ok := tokenToUnary[tt]
	return u, ok
}

// Precedence tiers, high binds tighter. Matches spec §4.2's table
// exactly; the gaps (5, 10, 13) are deliberate, reserving room the way
// the original table does, not an encoding accident.
const (
	Lowest = 0

	Or_        = 3
	And_       = 4
	Comparison = 6
	BitOr_     = 7
	BitXor_    = 8
	BitAnd_    = 9
	Sum        = 11
	Product    = 12
	Power      = 14
)

var precedences = map[Binary]int{
	Pow:    Power,
	Mul:    Product,
	Div:    Product,
	Mod:    Product,
	Add:    Sum,
	Sub:    Sum,
	BitAnd: BitAnd_,
	BitXor: BitXor_,
	BitOr:  BitOr_,
	Gt:     Comparison, GtEq: Comparison, Lt: Comparison, LtEq: Comparison,
	Eq: Comparison, NotEq: Comparison,
	And: And_,
	Or:  Or_,
}

// PrecedenceOf returns b's precedence tier.
func PrecedenceOf(b Binary) int { return precedences[b] }

// IsRightAssociative reports whether b's right-hand side is parsed at
// the same precedence as b itself (as opposed to precedence+1). Only
// exponentiation is right-associative, per spec §4.2: "`**` alone uses
// `prec` to obtain right associativity".
func IsRightAssociative(b Binary) bool { return b == Pow }

// TokenPrecedence returns the precedence tier of tt if it names a
// binary operator, or Lowest otherwise. This is what the parser's main
// loop consults to decide whether to keep climbing (spec §4.2: "the
// loop stops when the next token is not a binary operator or has
// precedence below the caller's threshold").
func TokenPrecedence(tt token.TokenType) int {
	b, ok := tokenToBinary[tt]
	if !ok {
		return Lowest
	}
	return PrecedenceOf(b)
}
