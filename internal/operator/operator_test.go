package operator

import (
	"testing"

	"github.com/BvHand487/shift/internal/token"
)

func TestBinaryFromToken(t *testing.T) {
	b, ok := BinaryFromToken(token.PLUS)
	if !ok || b != Add {
		t.Fatalf("BinaryFromToken(PLUS) = (%v, %v), want (Add, true)", b, ok)
	}

	if _, ok := BinaryFromToken(token.IDENT); ok {
		t.Error("BinaryFromToken(IDENT) ok = true, want false")
	}
}

func TestUnaryFromToken(t *testing.T) {
	tests := []struct {
		tt       token.TokenType
		expected Unary
	}{
		{token.PLUS, Pos},
		{token.MINUS, Neg},
		{token.NOT, Not},
		{token.EXCL, Not},
		{token.TILDE, BitNot},
	}

	for _, tt := range tests {
		got, ok := UnaryFromToken(tt.tt)
		if !ok || got != tt.expected {
			t.Errorf("UnaryFromToken(%v) = (%v, %v), want (%v, true)", tt.tt, got, ok, tt.expected)
		}
	}

	if _, ok := UnaryFromToken(token.ASTERISK); ok {
		t.Error("UnaryFromToken(ASTERISK) ok = true, want false")
	}
}

func TestPrecedenceOrdering(t *testing.T) {
	if !(TokenPrecedence(token.POWER) > TokenPrecedence(token.ASTERISK)) {
		t.Error("** should bind tighter than *")
	}
	if !(TokenPrecedence(token.ASTERISK) > TokenPrecedence(token.PLUS)) {
		t.Error("* should bind tighter than +")
	}
	if !(TokenPrecedence(token.PLUS) > TokenPrecedence(token.LESS)) {
		t.Error("+ should bind tighter than <")
	}
	if !(TokenPrecedence(token.LESS) > TokenPrecedence(token.AND)) {
		t.Error("< should bind tighter than and")
	}
	if !(TokenPrecedence(token.AND) > TokenPrecedence(token.OR)) {
		t.Error("and should bind tighter than or")
	}
}

func TestTokenPrecedenceNonOperator(t *testing.T) {
	if got := TokenPrecedence(token.SEMICOLON); got != Lowest {
		t.Errorf("TokenPrecedence(SEMICOLON) = %d, want Lowest", got)
	}
}

func TestIsRightAssociative(t *testing.T) {
	if !IsRightAssociative(Pow) {
		t.Error("Pow should be right-associative")
	}
	if IsRightAssociative(Add) {
		t.Error("Add should not be right-associative")
	}
}

func TestStringers(t *testing.T) {
	if Add.String() != "+" {
		t.Errorf("Add.String() = %q, want %q", Add.String(), "+")
	}
	if Not.String() != "not" {
		t.Errorf("Not.String() = %q, want %q", Not.String(), "not")
	}
}
