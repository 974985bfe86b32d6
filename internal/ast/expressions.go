package ast

import (
	"github.com/BvHand487/shift/internal/operator"
	"github.com/BvHand487/shift/internal/token"
)

// Number is an integer literal. Its resolved type is always Int.
type Number struct {
	exprBase
	Value int64
}

func NewNumber(tok token.Token, value int64) *Number {
	return &Number{exprBase: newExprBase(tok), Value: value}
}

func (n *Number) Accept(v Visitor) { v.VisitNumber(n) }

// Boolean is a true/false literal. Its resolved type is always Bool.
type Boolean struct {
	exprBase
	Value bool
}

func NewBoolean(tok token.Token, value bool) *Boolean {
	return &Boolean{exprBase: newExprBase(tok), Value: value}
}

func (b *Boolean) Accept(v Visitor) { v.VisitBoolean(b) }

// String is a string literal (quotes already stripped by the lexer).
// Its resolved type is always String.
type String struct {
	exprBase
	Value string
}

func NewString(tok token.Token, value string) *String {
	return &String{exprBase: newExprBase(tok), Value: value}
}

func (s *String) Accept(v Visitor) { v.VisitString(s) }

// Variable is a reference to a name resolved by the analyzer to a
// VarSymbol in the enclosing scope stack.
type Variable struct {
	exprBase
	Name string
}

func NewVariable(tok token.Token, name string) *Variable {
	return &Variable{exprBase: newExprBase(tok), Name: name}
}

func (va *Variable) Accept(v Visitor) { v.VisitVariable(va) }

// Call is a function call: a callee name and zero or more argument
// expressions. Disambiguated from Variable by the parser's one-token
// lookahead (spec §4.2 "Primary-expression disambiguation").
type Call struct {
	exprBase
	Callee string
	Args   []Expression
}

func NewCall(tok token.Token, callee string, args []Expression) *Call {
	return &Call{exprBase: newExprBase(tok), Callee: callee, Args: args}
}

func (c *Call) Accept(v Visitor) { v.VisitCall(c) }

// BinaryOp is a binary operation. Operator identifies which one,
// independent of which token spelled it.
type BinaryOp struct {
	exprBase
	Operator operator.Binary
	Left     Expression
	Right    Expression
}

func NewBinaryOp(tok token.Token, op operator.Binary, left, right Expression) *BinaryOp {
	return &BinaryOp{exprBase: newExprBase(tok), Operator: op, Left: left, Right: right}
}

func (b *BinaryOp) Accept(v Visitor) { v.VisitBinaryOp(b) }

// UnaryOp is a unary prefix operation.
type UnaryOp struct {
	exprBase
	Operator operator.Unary
	Right    Expression
}

func NewUnaryOp(tok token.Token, op operator.Unary, right Expression) *UnaryOp {
	return &UnaryOp{exprBase: newExprBase(tok), Operator: op, Right: right}
}

func (u *UnaryOp) Accept(v Visitor) { v.VisitUnaryOp(u) }
