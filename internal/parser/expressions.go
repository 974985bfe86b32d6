package parser

import (
	"strconv"
	"strings"

	"github.com/BvHand487/shift/internal/ast"
	"github.com/BvHand487/shift/internal/operator"
	"github.com/BvHand487/shift/internal/token"
)

// parseExpression implements precedence-climbing (spec §4.2): parse a
// unary operand, then repeatedly fold in a binary operator whose
// precedence is at least minPrec, recursing on the right-hand side at
// minPrec+1 (minPrec for right-associative operators, i.e. "**").
func (p *Parser) parseExpression(minPrec int) (ast.Expression, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}

	for {
		opTok := p.current()
		prec := operator.TokenPrecedence(opTok.Type)
		if prec < minPrec || prec == operator.Lowest {
			break
		}

		binOp, ok := operator.BinaryFromToken(opTok.Type)
		if !ok {
			break
		}
		p.advance()

		nextMinPrec := prec + 1
		if operator.IsRightAssociative(binOp) {
			nextMinPrec = prec
		}

		right, err := p.parseExpression(nextMinPrec)
		if err != nil {
			return nil, err
		}

		left = ast.NewBinaryOp(opTok, binOp, left, right)
	}

	return left, nil
}

// parseUnary := ("+" | "-" | "not" | "!" | "~") unary | primary
//
// Unary binds tighter than every binary operator including "**" (§9
// open question 4: "-a ** b" parses as "(-a) ** b"), so its operand is
// parsed by recursing into parseUnary rather than parseExpression.
func (p *Parser) parseUnary() (ast.Expression, error) {
	tok := p.current()
	if unOp, ok := operator.UnaryFromToken(tok.Type); ok {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryOp(tok, unOp, operand), nil
	}
	return p.parsePrimary()
}

// parsePrimary := NUMBER | STRING | "true" | "false"
//               | IDENT ( "(" argList? ")" )?
//               | "(" expression ")"
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.current()

	switch tok.Type {
	case token.NUMBER:
		p.advance()
		return parseNumberLiteral(tok)

	case token.STRING:
		p.advance()
		return ast.NewString(tok, tok.Lexeme), nil

	case token.TRUE:
		p.advance()
		return ast.NewBoolean(tok, true), nil

	case token.FALSE:
		p.advance()
		return ast.NewBoolean(tok, false), nil

	case token.IDENT:
		p.advance()
		if p.check(token.LPAREN) {
			return p.parseCall(tok)
		}
		return ast.NewVariable(tok, tok.Lexeme), nil

	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpression(operator.Lowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(token.RPAREN, "expected ')' after expression"); err != nil {
			return nil, err
		}
		return expr, nil
	}

	return nil, &ParseError{Position: tok.Position, Message: "expected an expression, got '" + tok.Lexeme + "'"}
}

// parseCall := IDENT "(" (expression ("," expression)*)? ")"
// The callee identifier has already been consumed; tok is its token.
func (p *Parser) parseCall(tok token.Token) (ast.Expression, error) {
	if _, err := p.consume(token.LPAREN, "expected '(' after function name"); err != nil {
		return nil, err
	}

	var args []ast.Expression
	if !p.check(token.RPAREN) {
		for {
			arg, err := p.parseExpression(operator.Lowest)
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
			if !p.match(token.COMMA) {
				break
			}
		}
	}

	if _, err := p.consume(token.RPAREN, "expected ')' after call arguments"); err != nil {
		return nil, err
	}

	return ast.NewCall(tok, tok.Lexeme, args), nil
}

// parseVariable consumes a bare identifier as a Variable reference,
// used by parseAssignment where the lookahead has already confirmed
// the identifier is not followed by "(".
func (p *Parser) parseVariable() (*ast.Variable, error) {
	tok, err := p.consume(token.IDENT, "expected identifier")
	if err != nil {
		return nil, err
	}
	return ast.NewVariable(tok, tok.Lexeme), nil
}

// parseNumberLiteral converts a NUMBER lexeme to its int64 value. The
// language has no floating-point type, so a lexeme with a fractional
// part (the lexer accepts "digit+ ('.' digit+)?") is truncated at the
// decimal point.
func parseNumberLiteral(tok token.Token) (ast.Expression, error) {
	lexeme := tok.Lexeme
	if i := strings.IndexByte(lexeme, '.'); i >= 0 {
		lexeme = lexeme[:i]
	}
	value, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return nil, &ParseError{Position: tok.Position, Message: "invalid integer literal '" + tok.Lexeme + "'"}
	}
	return ast.NewNumber(tok, value), nil
}
