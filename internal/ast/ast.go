// Package ast defines the tagged AST node hierarchy of spec §3.3: three
// exclusive categories (Expression, Statement, Declaration), each
// supporting visitor dispatch. Every node owns its children outright;
// the tree is a forest of Declaration roots and no cycle is possible
// by construction (spec §9 "Ownership").
package ast

import (
	"github.com/BvHand487/shift/internal/token"
	"github.com/BvHand487/shift/internal/types"
)

// Node is the common interface every AST node implements.
type Node interface {
	Pos() token.Position
	Accept(v Visitor)
}

// Expression is a node that produces a value. Its Type is Unknown
// until the analyzer sets it exactly once (spec §3.2 invariant).
type Expression interface {
	Node
	ExprType() types.Type
	SetExprType(types.Type)
	expressionNode()
}

// Statement is a node that performs an action without producing a
// value.
type Statement interface {
	Node
	statementNode()
}

// Declaration is a top-level construct introducing a named function
// (a Prototype or a Definition).
type Declaration interface {
	Node
	declarationNode()
}

// exprBase factors the token/type bookkeeping shared by every
// Expression implementation.
type exprBase struct {
	Token token.Token
	Type  types.Type
}

func (e *exprBase) Pos() token.Position       { return e.Token.Position }
func (e *exprBase) ExprType() types.Type      { return e.Type }
func (e *exprBase) SetExprType(t types.Type)  { e.Type = t }
func (e *exprBase) expressionNode()           {}

func newExprBase(tok token.Token) exprBase {
	return exprBase{Token: tok, Type: types.Unknown}
}
