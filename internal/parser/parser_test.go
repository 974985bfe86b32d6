package parser

import (
	"testing"

	"github.com/BvHand487/shift/internal/ast"
	"github.com/BvHand487/shift/internal/lexer"
	"github.com/BvHand487/shift/internal/operator"
	"github.com/BvHand487/shift/internal/types"
)

func parse(t *testing.T, source string) *ast.Program {
	t.Helper()
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	prog, err := ParseProgram(tokens)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	return prog
}

func TestParseExternPrototype(t *testing.T) {
	prog := parse(t, `extern fn puts(s: str) -> int;`)

	if len(prog.Declarations) != 1 {
		t.Fatalf("got %d declarations, want 1", len(prog.Declarations))
	}
	proto, ok := prog.Declarations[0].(*ast.Prototype)
	if !ok {
		t.Fatalf("declaration type = %T, want *ast.Prototype", prog.Declarations[0])
	}
	if !proto.IsExtern || proto.Name != "puts" || proto.RetType != types.Int {
		t.Errorf("proto = %+v, want IsExtern=true Name=puts RetType=Int", proto)
	}
	if len(proto.Params) != 1 || proto.Params[0].Type != types.String {
		t.Errorf("params = %+v, want one str param", proto.Params)
	}
}

func TestParseVarArgPrototype(t *testing.T) {
	prog := parse(t, `extern fn printf(fmt: str, ...) -> int;`)

	proto := prog.Declarations[0].(*ast.Prototype)
	if !proto.IsVarArg {
		t.Error("IsVarArg = false, want true")
	}
	if len(proto.Params) != 1 {
		t.Errorf("len(Params) = %d, want 1", len(proto.Params))
	}
}

func TestParseFunctionDefinitionWithDefaultParam(t *testing.T) {
	prog := parse(t, `fn add(a: int, b: int = 1) -> int { return a + b; }`)

	def, ok := prog.Declarations[0].(*ast.Definition)
	if !ok {
		t.Fatalf("declaration type = %T, want *ast.Definition", prog.Declarations[0])
	}
	if def.Proto.Name != "add" || len(def.Proto.Params) != 2 {
		t.Fatalf("proto = %+v", def.Proto)
	}
	if def.Proto.Params[1].Init == nil {
		t.Error("second parameter should have a default-value Init")
	}
	if len(def.Body.Statements) != 1 {
		t.Fatalf("body statements = %d, want 1", len(def.Body.Statements))
	}
	ret, ok := def.Body.Statements[0].(*ast.Return)
	if !ok {
		t.Fatalf("statement type = %T, want *ast.Return", def.Body.Statements[0])
	}
	bin, ok := ret.Value.(*ast.BinaryOp)
	if !ok || bin.Operator != operator.Add {
		t.Fatalf("return value = %+v, want BinaryOp(Add)", ret.Value)
	}
}

func TestParseVariableDeclAndAssignment(t *testing.T) {
	prog := parse(t, `fn main() -> int {
		let x: int = 5;
		x = x + 1;
		return x;
	}`)

	def := prog.Declarations[0].(*ast.Definition)
	stmts := def.Body.Statements
	if len(stmts) != 3 {
		t.Fatalf("got %d statements, want 3", len(stmts))
	}

	decl, ok := stmts[0].(*ast.VariableDecl)
	if !ok || decl.Name != "x" || decl.Type != types.Int {
		t.Fatalf("stmts[0] = %+v, want VariableDecl x:int", stmts[0])
	}

	assign, ok := stmts[1].(*ast.Assignment)
	if !ok || assign.Lhs.Name != "x" {
		t.Fatalf("stmts[1] = %+v, want Assignment to x", stmts[1])
	}
}

func TestParseIfElseWhile(t *testing.T) {
	prog := parse(t, `fn f() {
		if (1 < 2) {
			return;
		} else {
			return;
		}
		while (1 < 2) {
			return;
		}
	}`)

	def := prog.Declarations[0].(*ast.Definition)
	ifStmt, ok := def.Body.Statements[0].(*ast.If)
	if !ok {
		t.Fatalf("stmts[0] type = %T, want *ast.If", def.Body.Statements[0])
	}
	if ifStmt.Else == nil {
		t.Error("If.Else = nil, want non-nil else block")
	}

	whileStmt, ok := def.Body.Statements[1].(*ast.While)
	if !ok {
		t.Fatalf("stmts[1] type = %T, want *ast.While", def.Body.Statements[1])
	}
	_ = whileStmt
}

func TestParsePrecedenceClimbing(t *testing.T) {
	// 1 + 2 * 3 ** 2 should parse as 1 + (2 * (3 ** 2))
	prog := parse(t, `fn f() -> int { return 1 + 2 * 3 ** 2; }`)

	def := prog.Declarations[0].(*ast.Definition)
	ret := def.Body.Statements[0].(*ast.Return)

	top, ok := ret.Value.(*ast.BinaryOp)
	if !ok || top.Operator != operator.Add {
		t.Fatalf("top = %+v, want BinaryOp(Add)", ret.Value)
	}
	mul, ok := top.Right.(*ast.BinaryOp)
	if !ok || mul.Operator != operator.Mul {
		t.Fatalf("top.Right = %+v, want BinaryOp(Mul)", top.Right)
	}
	pow, ok := mul.Right.(*ast.BinaryOp)
	if !ok || pow.Operator != operator.Pow {
		t.Fatalf("mul.Right = %+v, want BinaryOp(Pow)", mul.Right)
	}
}

func TestParsePowerRightAssociative(t *testing.T) {
	// 2 ** 3 ** 2 should parse as 2 ** (3 ** 2)
	prog := parse(t, `fn f() -> int { return 2 ** 3 ** 2; }`)

	def := prog.Declarations[0].(*ast.Definition)
	ret := def.Body.Statements[0].(*ast.Return)

	top := ret.Value.(*ast.BinaryOp)
	if top.Operator != operator.Pow {
		t.Fatalf("top.Operator = %v, want Pow", top.Operator)
	}
	if _, ok := top.Right.(*ast.BinaryOp); !ok {
		t.Fatalf("top.Right = %T, want *ast.BinaryOp (nested power)", top.Right)
	}
	if _, ok := top.Left.(*ast.Number); !ok {
		t.Fatalf("top.Left = %T, want *ast.Number (flat, not nested)", top.Left)
	}
}

func TestParseUnaryBindsTighterThanPower(t *testing.T) {
	// -2 ** 2 parses as (-2) ** 2, per §9 decision 4.
	prog := parse(t, `fn f() -> int { return -2 ** 2; }`)

	def := prog.Declarations[0].(*ast.Definition)
	ret := def.Body.Statements[0].(*ast.Return)

	top, ok := ret.Value.(*ast.BinaryOp)
	if !ok || top.Operator != operator.Pow {
		t.Fatalf("top = %+v, want BinaryOp(Pow)", ret.Value)
	}
	if _, ok := top.Left.(*ast.UnaryOp); !ok {
		t.Fatalf("top.Left = %T, want *ast.UnaryOp", top.Left)
	}
}

func TestParseCallVsVariableDisambiguation(t *testing.T) {
	prog := parse(t, `fn f() -> int { return g(1, 2) + x; }`)

	def := prog.Declarations[0].(*ast.Definition)
	ret := def.Body.Statements[0].(*ast.Return)
	bin := ret.Value.(*ast.BinaryOp)

	call, ok := bin.Left.(*ast.Call)
	if !ok || call.Callee != "g" || len(call.Args) != 2 {
		t.Fatalf("bin.Left = %+v, want Call g(1, 2)", bin.Left)
	}
	if _, ok := bin.Right.(*ast.Variable); !ok {
		t.Fatalf("bin.Right = %T, want *ast.Variable", bin.Right)
	}
}

func TestParseErrorMissingSemicolon(t *testing.T) {
	tokens, err := lexer.New(`fn f() -> int { return 1 }`).Tokenize()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	_, err = ParseProgram(tokens)
	if err == nil {
		t.Fatal("ParseProgram() error = nil, want error for missing ';'")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Fatalf("error type = %T, want *ParseError", err)
	}
}

func TestParseErrorUnexpectedToken(t *testing.T) {
	tokens, err := lexer.New(`fn 5() -> int { return 1; }`).Tokenize()
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}
	_, err = ParseProgram(tokens)
	if err == nil {
		t.Fatal("ParseProgram() error = nil, want error for non-identifier function name")
	}
}

func TestParseStrayEmptyStatements(t *testing.T) {
	prog := parse(t, `fn f() { ;; return; ; }`)
	def := prog.Declarations[0].(*ast.Definition)
	if len(def.Body.Statements) != 1 {
		t.Fatalf("got %d statements, want 1 (stray ';' tolerated)", len(def.Body.Statements))
	}
}
