// Package driver orchestrates the three core phases — lex, parse,
// analyze — into the single pipeline the CLI commands call, and hosts
// the build subcommand's object-file/linker plumbing (SPEC_FULL §4.7).
package driver

import (
	"github.com/BvHand487/shift/internal/ast"
	"github.com/BvHand487/shift/internal/errors"
	"github.com/BvHand487/shift/internal/lexer"
	"github.com/BvHand487/shift/internal/parser"
	"github.com/BvHand487/shift/internal/semantic"
	"github.com/BvHand487/shift/internal/token"
)

// Result is the outcome of running the pipeline: either a fully
// analyzed Program, or a single Diagnostic tagged with the phase that
// failed. The front end fails fast, so at most one of the two is set.
type Result struct {
	Program    *ast.Program
	Diagnostic *errors.Diagnostic
}

// Pipeline runs lex, parse, and analyze in order against one source
// file, stopping at the first failing phase (spec §4.7/§7: no
// recovery, no continuation after the first error).
type Pipeline struct {
	Source   string
	Filename string
}

// NewPipeline creates a Pipeline over the given source text.
func NewPipeline(source, filename string) *Pipeline {
	return &Pipeline{Source: source, Filename: filename}
}

// Run executes the three phases. On success, Result.Program is set and
// Result.Diagnostic is nil; on failure, the reverse.
func (p *Pipeline) Run() Result {
	tokens, err := lexer.New(p.Source).Tokenize()
	if err != nil {
		return Result{Diagnostic: p.diagnostic(err, errors.PhaseLex)}
	}

	prog, err := parser.ParseProgram(tokens)
	if err != nil {
		return Result{Diagnostic: p.diagnostic(err, errors.PhaseParse)}
	}

	if err := semantic.Analyze(prog); err != nil {
		return Result{Diagnostic: p.diagnostic(err, errors.PhaseSemantic)}
	}

	return Result{Program: prog}
}

// diagnostic converts one of the three phase-specific error kinds into
// a Diagnostic, attaching this pipeline's source/filename for the
// human-readable rendering path and the "did you mean" suggestion
// (§4.5) when the error carries one.
func (p *Pipeline) diagnostic(err error, phase errors.Phase) *errors.Diagnostic {
	var pos token.Position
	var message, suggestion string

	switch e := err.(type) {
	case *lexer.LexicalError:
		pos, message = e.Position, e.Message
	case *parser.ParseError:
		pos, message = e.Position, e.Message
	case *semantic.SemanticError:
		pos, message, suggestion = e.Position, e.Message, e.Suggestion
	default:
		message = err.Error()
	}

	compilerErr := errors.NewCompilerError(pos, message, p.Source, p.Filename)
	d := errors.NewDiagnostic(compilerErr, phase, suggestion)
	return &d
}
