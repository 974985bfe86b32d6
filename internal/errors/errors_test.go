package errors

import (
	"strings"
	"testing"

	"github.com/BvHand487/shift/internal/token"
)

func TestCompilerErrorFormatUncolored(t *testing.T) {
	source := "let x = 1\nlet y = 2;"
	err := NewCompilerError(token.Position{Line: 1, Column: 9}, "expected ';'", source, "script.sft")

	out := err.Format(false)
	if !strings.Contains(out, "script.sft:1:9") {
		t.Errorf("Format() = %q, want it to contain the file:line:col header", out)
	}
	if !strings.Contains(out, "let x = 1") {
		t.Errorf("Format() = %q, want it to contain the source line", out)
	}
	if !strings.Contains(out, "^") {
		t.Errorf("Format() = %q, want a caret", out)
	}
	if !strings.Contains(out, "expected ';'") {
		t.Errorf("Format() = %q, want the message", out)
	}
}

func TestCompilerErrorFormatColored(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 1, Column: 1}, "bad token", "x", "f.sft")
	out := err.Format(true)
	if !strings.Contains(out, "bad token") {
		t.Errorf("Format(true) should still contain the message, got %q", out)
	}
}

func TestCompilerErrorFormatOutOfRangeLine(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 99, Column: 1}, "oops", "only one line", "f.sft")
	out := err.Format(false)
	// no source line should be rendered, but the header and message must be.
	if !strings.Contains(out, "oops") {
		t.Errorf("Format() = %q, want the message even without a source line", out)
	}
}

func TestFormatErrorsEmpty(t *testing.T) {
	if got := FormatErrors(nil, false); got != "" {
		t.Errorf("FormatErrors(nil) = %q, want empty string", got)
	}
}

func TestFormatErrorsSingle(t *testing.T) {
	err := NewCompilerError(token.Position{Line: 1, Column: 1}, "oops", "x", "f.sft")
	got := FormatErrors([]*CompilerError{err}, false)
	if !strings.Contains(got, "oops") {
		t.Errorf("FormatErrors() = %q, want it to contain the single error's message", got)
	}
}

func TestFormatErrorsMultiple(t *testing.T) {
	e1 := NewCompilerError(token.Position{Line: 1, Column: 1}, "first", "x", "f.sft")
	e2 := NewCompilerError(token.Position{Line: 2, Column: 1}, "second", "x", "f.sft")
	got := FormatErrors([]*CompilerError{e1, e2}, false)

	if !strings.Contains(got, "2 error(s)") {
		t.Errorf("FormatErrors() = %q, want a count summary", got)
	}
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("FormatErrors() = %q, want both messages", got)
	}
}

func TestDiagnosticRoundTrip(t *testing.T) {
	src, file := "let x = 1;", "f.sft"
	err := NewCompilerError(token.Position{Line: 1, Column: 5}, "bad", src, file)

	d := NewDiagnostic(err, PhaseSemantic, "guess")
	if d.Position != err.Pos || d.Message != err.Message || d.Phase != PhaseSemantic || d.Suggestion != "guess" {
		t.Fatalf("NewDiagnostic() = %+v, unexpected fields", d)
	}

	back := d.CompilerError(src, file)
	if back.Pos != err.Pos || back.Message != err.Message || back.Source != src || back.File != file {
		t.Fatalf("CompilerError() round-trip = %+v, want matching fields", back)
	}
}

func TestFormatDiagnosticsJSON(t *testing.T) {
	d := NewDiagnostic(NewCompilerError(token.Position{Line: 2, Column: 3}, "bad token", "", "f.sft"), PhaseLex, "")
	out, err := FormatDiagnosticsJSON([]Diagnostic{d})
	if err != nil {
		t.Fatalf("FormatDiagnosticsJSON() error = %v", err)
	}
	for _, want := range []string{`"line": 2`, `"column": 3`, `"message": "bad token"`, `"phase": "lex"`, `"position"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output = %s, want it to contain %q", out, want)
		}
	}
	if strings.Contains(out, "suggestion") {
		t.Error("empty Suggestion should be omitted from JSON (omitempty)")
	}
}

func TestFormatDiagnosticsJSONEmpty(t *testing.T) {
	out, err := FormatDiagnosticsJSON(nil)
	if err != nil {
		t.Fatalf("FormatDiagnosticsJSON(nil) error = %v", err)
	}
	if strings.TrimSpace(out) != "[]" {
		t.Errorf("FormatDiagnosticsJSON(nil) = %q, want []", out)
	}
}
