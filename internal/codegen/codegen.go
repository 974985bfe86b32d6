// Package codegen documents the back end's contract (spec §4.4)
// without implementing emission. Binary emission is out of scope (see
// spec.md §1); Stub exists so the contract is a real, compiled,
// exercised interface rather than a comment.
package codegen

import (
	"errors"

	"github.com/BvHand487/shift/internal/ast"
)

// ErrNotImplemented is returned by Stub for every entry point. The
// driver surfaces it rather than silently no-op'ing, so a caller can't
// mistake "not implemented" for "nothing to generate".
var ErrNotImplemented = errors.New("codegen: emission is not implemented")

// Visitor is the back end's entry point: a lowering pass over an
// already-analyzed Program. Implementations may assume the four
// invariants of spec §4.4 hold (every expression's Type is resolved,
// every Definition body ends in Return, If's Then is always populated,
// and only analyzer-scoped identifiers are referenced) and need not
// re-check them.
type Visitor interface {
	// Generate lowers an analyzed program, returning the path to a
	// produced object file (or implementation-defined artifact) or an
	// error.
	Generate(prog *ast.Program) (objectPath string, err error)
}

// Stub is a Visitor that implements the contract's shape — it walks
// nothing and emits nothing — returning ErrNotImplemented from every
// call. It exists so §4.4's contract is backed by a real type the
// driver can depend on today, ready for a future emission backend to
// replace.
type Stub struct{}

// NewStub returns the documented no-op Visitor.
func NewStub() *Stub { return &Stub{} }

func (s *Stub) Generate(prog *ast.Program) (string, error) {
	return "", ErrNotImplemented
}
