package ast

import (
	"github.com/BvHand487/shift/internal/token"
	"github.com/BvHand487/shift/internal/types"
)

// stmtBase factors the token bookkeeping shared by every Statement.
type stmtBase struct {
	Token token.Token
}

func (s *stmtBase) Pos() token.Position { return s.Token.Position }
func (s *stmtBase) statementNode()      {}

// VariableDecl is a `let` declaration. Type is the declared annotation
// as parsed, or Unknown when there is none, in which case the analyzer
// infers it from Init; with an annotation, the analyzer checks Init
// against it.
type VariableDecl struct {
	stmtBase
	Name string
	Type types.Type
	Init Expression // never nil: initializer is mandatory (spec §6.1)
}

func NewVariableDecl(tok token.Token, name string, typ types.Type, init Expression) *VariableDecl {
	return &VariableDecl{stmtBase: stmtBase{Token: tok}, Name: name, Type: typ, Init: init}
}

func (vd *VariableDecl) Accept(v Visitor) { v.VisitVariableDecl(vd) }

// Assignment assigns Rhs to the variable named by Lhs.
type Assignment struct {
	stmtBase
	Lhs *Variable
	Rhs Expression
}

func NewAssignment(tok token.Token, lhs *Variable, rhs Expression) *Assignment {
	return &Assignment{stmtBase: stmtBase{Token: tok}, Lhs: lhs, Rhs: rhs}
}

func (a *Assignment) Accept(v Visitor) { v.VisitAssignment(a) }

// Block is a braced sequence of statements treated as a single
// statement.
type Block struct {
	stmtBase
	Statements []Statement
}

func NewBlock(tok token.Token, statements []Statement) *Block {
	return &Block{stmtBase: stmtBase{Token: tok}, Statements: statements}
}

func (b *Block) Accept(v Visitor) { v.VisitBlock(b) }

// If is a conditional with a mandatory Then branch and an optional
// Else branch.
type If struct {
	stmtBase
	Cond Expression
	Then *Block
	Else *Block // nil if no else clause
}

func NewIf(tok token.Token, cond Expression, then, els *Block) *If {
	return &If{stmtBase: stmtBase{Token: tok}, Cond: cond, Then: then, Else: els}
}

func (i *If) Accept(v Visitor) { v.VisitIf(i) }

// While is a pre-tested loop.
type While struct {
	stmtBase
	Cond Expression
	Body *Block
}

func NewWhile(tok token.Token, cond Expression, body *Block) *While {
	return &While{stmtBase: stmtBase{Token: tok}, Cond: cond, Body: body}
}

func (w *While) Accept(v Visitor) { v.VisitWhile(w) }

// Return is a return statement. Value is nil for a bare `return;` in a
// void function, or for the implicit `Return(none)` the analyzer
// inserts (spec §4.3.2).
type Return struct {
	stmtBase
	Value Expression // nil for a value-less return
}

func NewReturn(tok token.Token, value Expression) *Return {
	return &Return{stmtBase: stmtBase{Token: tok}, Value: value}
}

func (r *Return) Accept(v Visitor) { v.VisitReturn(r) }

// ExprStatement is an expression evaluated for its side effect; its
// value is discarded.
type ExprStatement struct {
	stmtBase
	Expr Expression
}

func NewExprStatement(tok token.Token, expr Expression) *ExprStatement {
	return &ExprStatement{stmtBase: stmtBase{Token: tok}, Expr: expr}
}

func (e *ExprStatement) Accept(v Visitor) { v.VisitExprStatement(e) }
