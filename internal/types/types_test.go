package types

import (
	"testing"

	"github.com/BvHand487/shift/internal/token"
)

func TestTypeString(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{Unknown, "???"},
		{Int, "int"},
		{Bool, "bool"},
		{String, "str"},
		{Void, "void"},
		{Type(99), "???"},
	}

	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.expected {
			t.Errorf("Type(%d).String() = %q, want %q", tt.typ, got, tt.expected)
		}
	}
}

func TestFromTokenType(t *testing.T) {
	tests := []struct {
		tt       token.TokenType
		expected Type
		ok       bool
	}{
		{token.INT, Int, true},
		{token.BOOL, Bool, true},
		{token.STR, String, true},
		{token.IDENT, Unknown, false},
		{token.FN, Unknown, false},
	}

	for _, tt := range tests {
		got, ok := FromTokenType(tt.tt)
		if ok != tt.ok {
			t.Fatalf("FromTokenType(%v) ok = %v, want %v", tt.tt, ok, tt.ok)
		}
		if ok && got != tt.expected {
			t.Errorf("FromTokenType(%v) = %v, want %v", tt.tt, got, tt.expected)
		}
	}
}
