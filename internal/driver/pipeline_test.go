package driver

import (
	"fmt"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/BvHand487/shift/internal/ast"
)

// summarize renders a Pipeline.Run() Result as a single deterministic
// string: either the diagnostic's phase/message/suggestion, or a
// structural digest of the analyzed program good enough to catch a
// regression in shape without being sensitive to exact positions.
func summarize(result Result) string {
	if result.Diagnostic != nil {
		d := result.Diagnostic
		s := fmt.Sprintf("phase=%s message=%q", d.Phase, d.Message)
		if d.Suggestion != "" {
			s += fmt.Sprintf(" suggestion=%q", d.Suggestion)
		}
		return s
	}
	return fmt.Sprintf("ok declarations=%d", len(result.Program.Declarations)) + "\n" + describeProgram(result.Program)
}

func describeProgram(prog *ast.Program) string {
	var out string
	for _, decl := range prog.Declarations {
		switch d := decl.(type) {
		case *ast.Prototype:
			out += fmt.Sprintf("prototype %s extern=%v vararg=%v ret=%s params=%d\n", d.Name, d.IsExtern, d.IsVarArg, d.RetType, len(d.Params))
		case *ast.Definition:
			out += fmt.Sprintf("definition %s ret=%s params=%d statements=%d\n", d.Proto.Name, d.Proto.RetType, len(d.Proto.Params), len(d.Body.Statements))
			if len(d.Body.Statements) > 0 {
				if ret, ok := d.Body.Statements[len(d.Body.Statements)-1].(*ast.Return); ok && ret.Value != nil {
					out += fmt.Sprintf("  last-return-type=%s\n", ret.Value.ExprType())
				}
			}
		}
	}
	return out
}

// TestPipelineScenarios exercises the eight end-to-end scenarios,
// snapshotting the pipeline's outcome for each.
func TestPipelineScenarios(t *testing.T) {
	scenarios := []struct {
		name   string
		source string
	}{
		{"arithmetic_precedence", `fn main() -> int { return 1 + 2 * 3; }`},
		{"call_type_resolution", `fn add(a: int, b: int) -> int { return a + b; } fn main() -> int { return add(2, 3); }`},
		{"vararg_call", `extern fn printf(fmt: str, ...) -> int; fn main() -> int { printf("%d\n", 42); return 0; }`},
		{"default_param_ordering", `fn f(a: int = 1, b: int) -> int { return a + b; }`},
		{"return_type_mismatch", `fn f() -> int { let x = true; return x; }`},
		{"if_condition_must_be_int_or_bool", `fn main() { if ("hi") { } }`},
		// spec.md's own grammar requires '=' unconditionally in a let
		// statement (mandatory initializer), matching original_source's
		// parser (base.cpp, parse_variable_decl: "mandatory
		// initializaton for now"). `let x;` therefore fails at parse,
		// not semantic analysis.
		{"let_without_initializer_is_a_parse_error", `fn main() -> int { let x; }`},
		{"missing_return_statement", `fn g() -> int { }`},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			result := NewPipeline(sc.source, "scenario.sft").Run()
			snaps.MatchSnapshot(t, summarize(result))
		})
	}
}
