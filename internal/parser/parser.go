// Package parser implements the recursive-descent, precedence-climbing
// parser of spec §4.2: one token of lookahead, fail-fast on the first
// unexpected token, producing a forest of ast.Declaration.
package parser

import (
	"github.com/BvHand487/shift/internal/ast"
	"github.com/BvHand487/shift/internal/operator"
	"github.com/BvHand487/shift/internal/token"
	"github.com/BvHand487/shift/internal/types"
)

// Parser consumes a token slice (produced in full by the lexer) and
// builds the AST. idx always names the not-yet-consumed "current"
// token, mirroring the cursor-based check/match/consume idiom used
// throughout the front end.
type Parser struct {
	tokens []token.Token
	idx    int
}

// New creates a Parser over the given token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

func (p *Parser) current() token.Token {
	if p.idx < len(p.tokens) {
		return p.tokens[p.idx]
	}
	return p.tokens[len(p.tokens)-1] // EOF
}

func (p *Parser) peekNext() token.Token {
	if p.idx+1 < len(p.tokens) {
		return p.tokens[p.idx+1]
	}
	return p.tokens[len(p.tokens)-1]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.idx-1]
}

// check peeks at the current token's type without consuming it.
func (p *Parser) check(tt token.TokenType) bool {
	return p.current().Type == tt
}

// advance consumes and returns the current token.
func (p *Parser) advance() token.Token {
	tok := p.current()
	if tok.Type != token.EOF {
		p.idx++
	}
	return tok
}

// match advances and returns true if the current token has type tt,
// otherwise leaves the cursor unchanged and returns false.
func (p *Parser) match(tt token.TokenType) bool {
	if p.check(tt) {
		p.advance()
		return true
	}
	return false
}

// consume advances past a token of type tt, or fails with msg at the
// current token's position.
func (p *Parser) consume(tt token.TokenType, msg string) (token.Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return token.Token{}, &ParseError{Position: p.current().Position, Message: msg}
}

// ParseProgram parses the entire token stream into a forest of
// declarations (spec grammar: "program := declaration*"), failing on
// the first error.
func ParseProgram(tokens []token.Token) (*ast.Program, error) {
	p := New(tokens)
	var decls []ast.Declaration
	for !p.check(token.EOF) {
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		decls = append(decls, decl)
	}
	return &ast.Program{Declarations: decls}, nil
}

// parseDeclaration := "extern" "fn" prototype ";" | "fn" (prototype ";" | prototype block)
func (p *Parser) parseDeclaration() (ast.Declaration, error) {
	if p.match(token.EXTERN) {
		if _, err := p.consume(token.FN, "expected 'fn' after 'extern'"); err != nil {
			return nil, err
		}
		proto, err := p.parsePrototype()
		if err != nil {
			return nil, err
		}
		proto.IsExtern = true
		if _, err := p.consume(token.SEMICOLON, "expected ';' after extern declaration"); err != nil {
			return nil, err
		}
		return proto, nil
	}

	if _, err := p.consume(token.FN, "expected declaration (e.g. 'fn')"); err != nil {
		return nil, err
	}
	proto, err := p.parsePrototype()
	if err != nil {
		return nil, err
	}

	if p.check(token.LBRACE) {
		body, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return ast.NewDefinition(proto, body), nil
	}

	if _, err := p.consume(token.SEMICOLON, "expected ';' after function prototype"); err != nil {
		return nil, err
	}
	return proto, nil
}

// parsePrototype := IDENT "(" paramList? ")" ("->" type)?
func (p *Parser) parsePrototype() (*ast.Prototype, error) {
	nameTok, err := p.consume(token.IDENT, "expected function name")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.LPAREN, "expected '(' after function name"); err != nil {
		return nil, err
	}

	params, isVarArg, err := p.parseParamList()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(token.RPAREN, "expected ')' after parameters"); err != nil {
		return nil, err
	}

	retType := types.Void
	if p.match(token.ARROW) {
		retType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	return ast.NewPrototype(nameTok, nameTok.Lexeme, params, retType, false, isVarArg), nil
}

// parseParamList := param ("," param)* ("," "...")? | "..."
func (p *Parser) parseParamList() ([]*ast.Parameter, bool, error) {
	if p.check(token.RPAREN) {
		return nil, false, nil
	}

	if p.match(token.ELLIPSIS) {
		return nil, true, nil
	}

	var params []*ast.Parameter
	for {
		param, err := p.parseParameter()
		if err != nil {
			return nil, false, err
		}
		params = append(params, param)

		if !p.match(token.COMMA) {
			break
		}

		if p.match(token.ELLIPSIS) {
			return params, true, nil
		}
	}

	return params, false, nil
}

// parseParameter := IDENT (":" type)? ("=" expression)?
func (p *Parser) parseParameter() (*ast.Parameter, error) {
	nameTok, err := p.consume(token.IDENT, "expected parameter name")
	if err != nil {
		return nil, err
	}

	paramType := types.Unknown
	if p.match(token.COLON) {
		paramType, err = p.parseType()
		if err != nil {
			return nil, err
		}
	}

	var init ast.Expression
	if p.match(token.ASSIGN) {
		init, err = p.parseExpression(operator.Lowest)
		if err != nil {
			return nil, err
		}
	}

	return ast.NewParameter(nameTok, nameTok.Lexeme, paramType, init), nil
}

// parseType := "int" | "bool" | "str"
func (p *Parser) parseType() (types.Type, error) {
	tok := p.current()
	if t, ok := types.FromTokenType(tok.Type); ok {
		p.advance()
		return t, nil
	}
	return types.Unknown, &ParseError{Position: tok.Position, Message: "expected a type ('int', 'bool', or 'str')"}
}

// parseBlock := "{" statement* "}"
func (p *Parser) parseBlock() (*ast.Block, error) {
	openTok, err := p.consume(token.LBRACE, "expected '{' before block")
	if err != nil {
		return nil, err
	}

	var statements []ast.Statement
	for !p.check(token.RBRACE) && !p.check(token.EOF) {
		// Stray ';' where a statement is expected produces no node
		// (spec §6.1: "consecutive ';' tokens are tolerated only
		// where a statement is expected and the parser would
		// otherwise produce no node").
		if p.match(token.SEMICOLON) {
			continue
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	if _, err := p.consume(token.RBRACE, "expected '}' after block"); err != nil {
		return nil, err
	}

	return ast.NewBlock(openTok, statements), nil
}
