// Package lexer implements the source-to-token-stream stage of the
// front end (spec §4.1): a cursor-driven scanner with longest-match
// operator recognition and UTF-8-aware position tracking, modeled on
// the teacher's cursor/readChar idiom.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/BvHand487/shift/internal/token"
)

// Lexer scans source text into a token stream. It is a single-use,
// forward-only cursor: there is no backtracking inside the lexer
// itself (the parser's one-token lookahead operates on the already-
// produced token slice).
type Lexer struct {
	input        string
	position     int // byte offset of ch
	readPosition int // byte offset of the next rune
	ch           rune
	line         int
	column       int // rune count from the start of the line
}

// New creates a Lexer over input, positioned at its first character.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPosition >= len(l.input) {
		l.ch = 0
		l.position = l.readPosition
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.readPosition:])
	l.ch = r
	l.position = l.readPosition
	l.readPosition += size
	l.column++
}

func (l *Lexer) peekChar() rune {
	if l.readPosition >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.readPosition:])
	return r
}

func (l *Lexer) currentPos() token.Position {
	return token.Position{Line: l.line, Column: l.column}
}

// Tokenize scans the entire input and returns its token stream,
// terminated by a single EOF token, or the first LexicalError
// encountered (an unterminated string or an unrecognized character),
// per spec §8.1 ("lexer totality").
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	for {
		tok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) skipWhitespaceAndComments() {
	for {
		switch l.ch {
		case ' ', '\t':
			l.readChar()
		case '\r':
			l.line++
			l.column = 0
			l.readChar()
			if l.ch == '\n' {
				l.readChar()
			}
		case '\n':
			l.line++
			l.column = 0
			l.readChar()
		case '/':
			if l.peekChar() == '/' {
				for l.ch != '\n' && l.ch != 0 {
					l.readChar()
				}
				continue
			}
			return
		default:
			return
		}
	}
}

func (l *Lexer) nextToken() (token.Token, error) {
	l.skipWhitespaceAndComments()
	pos := l.currentPos()

	switch {
	case l.ch == 0:
		return token.NewToken(token.EOF, "", pos), nil
	case l.ch == ';':
		l.readChar()
		return token.NewToken(token.SEMICOLON, ";", pos), nil
	case l.ch == ',':
		l.readChar()
		return token.NewToken(token.COMMA, ",", pos), nil
	case l.ch == '(':
		l.readChar()
		return token.NewToken(token.LPAREN, "(", pos), nil
	case l.ch == ')':
		l.readChar()
		return token.NewToken(token.RPAREN, ")", pos), nil
	case l.ch == '{':
		l.readChar()
		return token.NewToken(token.LBRACE, "{", pos), nil
	case l.ch == '}':
		l.readChar()
		return token.NewToken(token.RBRACE, "}", pos), nil
	case l.ch == '+':
		l.readChar()
		return token.NewToken(token.PLUS, "+", pos), nil
	case l.ch == '-':
		return l.lexMinusOrArrow(pos), nil
	case l.ch == '*':
		return l.lexAsteriskOrPower(pos), nil
	case l.ch == '/':
		l.readChar()
		return token.NewToken(token.SLASH, "/", pos), nil
	case l.ch == '%':
		l.readChar()
		return token.NewToken(token.PERCENT, "%", pos), nil
	case l.ch == '~':
		l.readChar()
		return token.NewToken(token.TILDE, "~", pos), nil
	case l.ch == '^':
		l.readChar()
		return token.NewToken(token.CARET, "^", pos), nil
	case l.ch == '&':
		l.readChar()
		return token.NewToken(token.AMP, "&", pos), nil
	case l.ch == '|':
		l.readChar()
		return token.NewToken(token.PIPE, "|", pos), nil
	case l.ch == '=':
		return l.lexEqualsOrAssign(pos), nil
	case l.ch == '!':
		return l.lexBangOrNotEq(pos), nil
	case l.ch == '<':
		return l.lexLessOrLessEq(pos), nil
	case l.ch == '>':
		return l.lexGreaterOrGreaterEq(pos), nil
	case l.ch == ':':
		l.readChar()
		return token.NewToken(token.COLON, ":", pos), nil
	case l.ch == '.':
		return l.lexEllipsis(pos)
	case l.ch == '"':
		return l.lexString(pos)
	case isDigit(l.ch):
		return l.lexNumber(pos), nil
	case isIdentStart(l.ch):
		return l.lexIdentifier(pos), nil
	default:
		ch := l.ch
		l.readChar()
		return token.Token{}, &LexicalError{Position: pos, Message: "unrecognized character " + string(ch)}
	}
}

func (l *Lexer) lexMinusOrArrow(pos token.Position) token.Token {
	l.readChar() // consume '-'
	if l.ch == '>' {
		l.readChar()
		return token.NewToken(token.ARROW, "->", pos)
	}
	return token.NewToken(token.MINUS, "-", pos)
}

func (l *Lexer) lexAsteriskOrPower(pos token.Position) token.Token {
	l.readChar() // consume '*'
	if l.ch == '*' {
		l.readChar()
		return token.NewToken(token.POWER, "**", pos)
	}
	return token.NewToken(token.ASTERISK, "*", pos)
}

func (l *Lexer) lexEqualsOrAssign(pos token.Position) token.Token {
	l.readChar() // consume '='
	if l.ch == '=' {
		l.readChar()
		return token.NewToken(token.EQ, "==", pos)
	}
	return token.NewToken(token.ASSIGN, "=", pos)
}

func (l *Lexer) lexBangOrNotEq(pos token.Position) token.Token {
	l.readChar() // consume '!'
	if l.ch == '=' {
		l.readChar()
		return token.NewToken(token.NOT_EQ, "!=", pos)
	}
	return token.NewToken(token.EXCL, "!", pos)
}

func (l *Lexer) lexLessOrLessEq(pos token.Position) token.Token {
	l.readChar() // consume '<'
	if l.ch == '=' {
		l.readChar()
		return token.NewToken(token.LESS_EQ, "<=", pos)
	}
	return token.NewToken(token.LESS, "<", pos)
}

func (l *Lexer) lexGreaterOrGreaterEq(pos token.Position) token.Token {
	l.readChar() // consume '>'
	if l.ch == '=' {
		l.readChar()
		return token.NewToken(token.GREATER_EQ, ">=", pos)
	}
	return token.NewToken(token.GREATER, ">", pos)
}

// lexEllipsis expects exactly "..."; a lone "." or ".." is a lexical
// error since this language has no other use for the dot.
func (l *Lexer) lexEllipsis(pos token.Position) (token.Token, error) {
	l.readChar() // consume first '.'
	if l.ch != '.' {
		return token.Token{}, &LexicalError{Position: pos, Message: "unrecognized character ."}
	}
	l.readChar() // second '.'
	if l.ch != '.' {
		return token.Token{}, &LexicalError{Position: pos, Message: "unrecognized character .."}
	}
	l.readChar() // third '.'
	return token.NewToken(token.ELLIPSIS, "...", pos), nil
}

func (l *Lexer) lexString(pos token.Position) (token.Token, error) {
	l.readChar() // consume opening quote
	var sb strings.Builder
	for l.ch != '"' {
		if l.ch == 0 {
			return token.Token{}, &LexicalError{Position: pos, Message: "unterminated string literal"}
		}
		if l.ch == '\n' {
			l.line++
			l.column = 0
		}
		sb.WriteRune(l.ch)
		l.readChar()
	}
	l.readChar() // consume closing quote
	return token.NewToken(token.STRING, sb.String(), pos), nil
}

func (l *Lexer) lexNumber(pos token.Position) token.Token {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	return token.NewToken(token.NUMBER, l.input[start:l.position], pos)
}

func (l *Lexer) lexIdentifier(pos token.Position) token.Token {
	start := l.position
	for isIdentBody(l.ch) {
		l.readChar()
	}
	lexeme := l.input[start:l.position]
	return token.NewToken(token.LookupIdent(lexeme), lexeme, pos)
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch)
}

func isIdentBody(ch rune) bool {
	return ch == '_' || unicode.IsLetter(ch) || unicode.IsDigit(ch)
}
