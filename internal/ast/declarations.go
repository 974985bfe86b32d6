package ast

import (
	"github.com/BvHand487/shift/internal/token"
	"github.com/BvHand487/shift/internal/types"
)

// declBase factors the token bookkeeping shared by every Declaration.
type declBase struct {
	Token token.Token
}

func (d *declBase) Pos() token.Position { return d.Token.Position }
func (d *declBase) declarationNode()    {}

// Parameter is one entry of a Prototype's parameter list. Type is the
// declared annotation as parsed, or Unknown when there is none; in that
// case the analyzer sets it from Init's type when a default is given.
type Parameter struct {
	declBase
	Name string
	Type types.Type
	Init Expression // nil if the parameter has no default value
}

func NewParameter(tok token.Token, name string, typ types.Type, init Expression) *Parameter {
	return &Parameter{declBase: declBase{Token: tok}, Name: name, Type: typ, Init: init}
}

func (p *Parameter) Accept(v Visitor) { v.VisitParameter(p) }

// Prototype is a function signature: a declaration without a body, or
// the signature half of a Definition. isExtern marks a bodyless
// `extern fn` declaration; isVarArg marks a trailing `...`.
type Prototype struct {
	declBase
	Name     string
	Params   []*Parameter
	RetType  types.Type
	IsExtern bool
	IsVarArg bool
}

func NewPrototype(tok token.Token, name string, params []*Parameter, retType types.Type, isExtern, isVarArg bool) *Prototype {
	return &Prototype{
		declBase: declBase{Token: tok},
		Name:     name,
		Params:   params,
		RetType:  retType,
		IsExtern: isExtern,
		IsVarArg: isVarArg,
	}
}

func (p *Prototype) Accept(v Visitor) { v.VisitPrototype(p) }

// Definition is a function declaration with a body.
type Definition struct {
	declBase
	Proto *Prototype
	Body  *Block
}

func NewDefinition(proto *Prototype, body *Block) *Definition {
	return &Definition{declBase: declBase{Token: proto.Token}, Proto: proto, Body: body}
}

func (d *Definition) Accept(v Visitor) { v.VisitDefinition(d) }
