// Package semantic implements the single-pass, fail-fast semantic
// analyzer of spec §4.3: it walks the AST exactly once in program
// order, resolves and annotates every expression's Type, populates the
// symbol table, and performs the one tree rewrite described in §4.3.2.
package semantic

import (
	"github.com/samber/lo"

	"github.com/BvHand487/shift/internal/ast"
	"github.com/BvHand487/shift/internal/operator"
	"github.com/BvHand487/shift/internal/types"
)

// Analyzer implements ast.Visitor. Its Visit* methods are void, per
// the visitor contract, so a failed rule is recorded in err and every
// subsequent Visit call becomes a no-op until Analyze returns it —
// this is the Go idiom's equivalent of the original's exception-based
// abort-on-first-error traversal.
type Analyzer struct {
	symbols            *SymbolTable
	currentFuncRetType types.Type
	err                error
}

// NewAnalyzer returns an analyzer with an empty symbol table.
func NewAnalyzer() *Analyzer {
	return &Analyzer{symbols: NewSymbolTable()}
}

// Analyze runs the declaration pass over every top-level declaration in
// program order and returns the first SemanticError encountered, if
// any (spec §4.3: "fail fast, no recovery").
func Analyze(prog *ast.Program) error {
	a := NewAnalyzer()
	for _, decl := range prog.Declarations {
		if a.err != nil {
			break
		}
		decl.Accept(a)
	}
	return a.err
}

// fail records the first error seen; later calls are no-ops so the
// sticky err short-circuits the rest of the traversal.
func (a *Analyzer) fail(e *SemanticError) {
	if a.err == nil {
		a.err = e
	}
}

func (a *Analyzer) failing() bool { return a.err != nil }

// ----------------------------------------------------------------------
// Declarations
// ----------------------------------------------------------------------

func (a *Analyzer) VisitParameter(node *ast.Parameter) {
	if a.failing() {
		return
	}
	if node.Init == nil {
		return
	}

	node.Init.Accept(a)
	if a.failing() {
		return
	}

	if node.Type != types.Unknown {
		if node.Type != node.Init.ExprType() {
			a.fail(&SemanticError{Position: node.Pos(), Message: "Type mismatch when initializing a parameter"})
		}
		return
	}
	node.Type = node.Init.ExprType()
}

// VisitPrototype registers node as a FuncSymbol (§4.3.1). A bodyless
// extern prototype and a later matching Definition are both routed
// through here — the second visit keeps the same symbol (clearing its
// IsExtern flag) rather than re-registering it, and VisitDefinition
// then sets IsDefined (§9 open question 2).
func (a *Analyzer) VisitPrototype(node *ast.Prototype) {
	if a.failing() {
		return
	}

	seenInit := false
	for _, param := range node.Params {
		param.Accept(a)
		if a.failing() {
			return
		}

		if param.Init != nil {
			seenInit = true
		} else if seenInit {
			a.fail(&SemanticError{
				Position: param.Pos(),
				Message:  "Non-default parameter '" + param.Name + "' cannot follow a parameter with a default value",
			})
			return
		}
	}

	params := lo.Map(node.Params, func(param *ast.Parameter, _ int) ParamSymbol {
		return ParamSymbol{Name: param.Name, Type: param.Type, HasInit: param.Init != nil}
	})

	if existing := a.symbols.LookupFunction(node.Name); existing != nil {
		// §9 open question 2: an extern prototype followed by a matching
		// fn definition upgrades declared-only to defined in place,
		// rather than erroring as an ordinary redeclaration would.
		if existing.IsExtern && !existing.IsDefined && !node.IsExtern && sameSignature(existing, node.RetType, params, node.IsVarArg) {
			existing.IsExtern = false
			return
		}

		a.fail(&SemanticError{Position: node.Pos(), Message: "Function '" + node.Name + "' is already declared"})
		return
	}

	a.symbols.AddFunction(&FuncSymbol{
		Name:      node.Name,
		RetType:   node.RetType,
		Params:    params,
		IsExtern:  node.IsExtern,
		IsVarArg:  node.IsVarArg,
		IsDefined: false,
	})
}

// sameSignature reports whether a function's recorded signature
// matches a candidate prototype's return type, parameter types (in
// order), and variadic flag — names and default-value presence are not
// compared, per §9 open question 2.
func sameSignature(existing *FuncSymbol, retType types.Type, params []ParamSymbol, isVarArg bool) bool {
	if existing.RetType != retType || existing.IsVarArg != isVarArg || len(existing.Params) != len(params) {
		return false
	}
	for i, p := range params {
		if existing.Params[i].Type != p.Type {
			return false
		}
	}
	return true
}

// VisitDefinition implements §4.3.1's Definition rule plus the §4.3.2
// implicit-return rewrite, which runs after the prototype is
// registered but before the body is visited.
func (a *Analyzer) VisitDefinition(node *ast.Definition) {
	if a.failing() {
		return
	}

	node.Proto.Accept(a)
	if a.failing() {
		return
	}

	funcSym := a.symbols.LookupFunction(node.Proto.Name)
	if funcSym.IsDefined {
		a.fail(&SemanticError{Position: node.Pos(), Message: "Function '" + node.Proto.Name + "' is already defined"})
		return
	}

	a.insertImplicitReturn(node)
	if a.failing() {
		return
	}

	a.currentFuncRetType = funcSym.RetType

	a.symbols.EnterScope()
	for _, param := range funcSym.Params {
		a.symbols.AddVariable(&VarSymbol{Name: param.Name, Type: param.Type})
	}

	node.Body.Accept(a)

	a.symbols.ExitScope()

	if !a.failing() {
		funcSym.IsDefined = true
	}
}

// insertImplicitReturn is the only tree rewrite the analyzer performs
// (§4.3.2). An empty body is treated as missing a trailing Return,
// same as a body whose last statement is something else.
func (a *Analyzer) insertImplicitReturn(node *ast.Definition) {
	body := node.Body
	if len(body.Statements) > 0 {
		if _, ok := body.Statements[len(body.Statements)-1].(*ast.Return); ok {
			return
		}
	}

	retType := node.Proto.RetType
	switch {
	case retType == types.Void:
		body.Statements = append(body.Statements, ast.NewReturn(node.Proto.Token, nil))
	case node.Proto.Name == "main":
		body.Statements = append(body.Statements, ast.NewReturn(node.Proto.Token, ast.NewNumber(node.Proto.Token, 0)))
	default:
		a.fail(&SemanticError{Position: node.Pos(), Message: "Missing return statement in a non-void function"})
	}
}

// ----------------------------------------------------------------------
// Statements
// ----------------------------------------------------------------------

func (a *Analyzer) VisitVariableDecl(node *ast.VariableDecl) {
	if a.failing() {
		return
	}

	if node.Init == nil && node.Type == types.Unknown {
		a.fail(&SemanticError{Position: node.Pos(), Message: "Missing type annotation in variable declaration"})
		return
	}

	if node.Init != nil {
		node.Init.Accept(a)
		if a.failing() {
			return
		}

		if node.Type == types.Unknown {
			node.Type = node.Init.ExprType()
		} else if node.Type != node.Init.ExprType() {
			a.fail(&SemanticError{Position: node.Pos(), Message: "Type mismatch when declaring a variable"})
			return
		}
	}

	a.symbols.AddVariable(&VarSymbol{Name: node.Name, Type: node.Type})
}

func (a *Analyzer) VisitAssignment(node *ast.Assignment) {
	if a.failing() {
		return
	}

	node.Lhs.Accept(a)
	if a.failing() {
		return
	}
	node.Rhs.Accept(a)
	if a.failing() {
		return
	}

	if node.Lhs.ExprType() != node.Rhs.ExprType() {
		a.fail(&SemanticError{Position: node.Pos(), Message: "Type mismatch when assigning a variable"})
	}
}

func (a *Analyzer) VisitBlock(node *ast.Block) {
	for _, stmt := range node.Statements {
		if a.failing() {
			return
		}
		stmt.Accept(a)
	}
}

func (a *Analyzer) VisitIf(node *ast.If) {
	if a.failing() {
		return
	}

	node.Cond.Accept(a)
	if a.failing() {
		return
	}
	if node.Cond.ExprType() == types.String {
		a.fail(&SemanticError{Position: node.Pos(), Message: "If condition must be int or bool"})
		return
	}

	a.symbols.EnterScope()
	node.Then.Accept(a)
	a.symbols.ExitScope()
	if a.failing() {
		return
	}

	if node.Else != nil {
		a.symbols.EnterScope()
		node.Else.Accept(a)
		a.symbols.ExitScope()
	}
}

func (a *Analyzer) VisitWhile(node *ast.While) {
	if a.failing() {
		return
	}

	node.Cond.Accept(a)
	if a.failing() {
		return
	}
	if node.Cond.ExprType() == types.String {
		a.fail(&SemanticError{Position: node.Pos(), Message: "If condition must be int or bool"})
		return
	}

	a.symbols.EnterScope()
	node.Body.Accept(a)
	a.symbols.ExitScope()
}

func (a *Analyzer) VisitReturn(node *ast.Return) {
	if a.failing() {
		return
	}

	switch {
	case a.currentFuncRetType == types.Void && node.Value == nil:
		return
	case a.currentFuncRetType == types.Void && node.Value != nil:
		a.fail(&SemanticError{Position: node.Pos(), Message: "Tried to return a value from a void function"})
	case a.currentFuncRetType != types.Void && node.Value == nil:
		a.fail(&SemanticError{Position: node.Pos(), Message: "No return value from a non-void function"})
	default:
		node.Value.Accept(a)
		if a.failing() {
			return
		}
		if node.Value.ExprType() != a.currentFuncRetType {
			a.fail(&SemanticError{Position: node.Pos(), Message: "Return type mismatch: expected " + a.currentFuncRetType.String() + ", got " + node.Value.ExprType().String()})
		}
	}
}

func (a *Analyzer) VisitExprStatement(node *ast.ExprStatement) {
	if a.failing() {
		return
	}
	node.Expr.Accept(a)
}

// ----------------------------------------------------------------------
// Expressions
// ----------------------------------------------------------------------

func (a *Analyzer) VisitVariable(node *ast.Variable) {
	if a.failing() {
		return
	}

	sym := a.symbols.LookupVariable(node.Name)
	if sym == nil {
		e := &SemanticError{Position: node.Pos(), Message: "Referenced variable is undeclared"}
		if name, ok := nearestName(node.Name, a.symbols.VariableNames()); ok {
			e.Suggestion = name
		}
		a.fail(e)
		return
	}
	node.SetExprType(sym.Type)
}

func (a *Analyzer) VisitCall(node *ast.Call) {
	if a.failing() {
		return
	}

	funcSym := a.symbols.LookupFunction(node.Callee)
	if funcSym == nil {
		e := &SemanticError{Position: node.Pos(), Message: "Referenced function is undefined"}
		if name, ok := nearestName(node.Callee, a.symbols.FunctionNames()); ok {
			e.Suggestion = name
		}
		a.fail(e)
		return
	}

	minArgs := funcSym.RequiredParamCount()
	n := len(funcSym.Params)
	argc := len(node.Args)

	if argc < minArgs {
		a.fail(&SemanticError{Position: node.Pos(), Message: "Too few arguments in call to '" + node.Callee + "'"})
		return
	}
	if !funcSym.IsVarArg && argc > n {
		a.fail(&SemanticError{Position: node.Pos(), Message: "Too many arguments in call to '" + node.Callee + "'"})
		return
	}

	for _, arg := range node.Args {
		arg.Accept(a)
		if a.failing() {
			return
		}
	}

	checkCount := argc
	if n < checkCount {
		checkCount = n
	}
	for i := 0; i < checkCount; i++ {
		if funcSym.Params[i].Type != node.Args[i].ExprType() {
			a.fail(&SemanticError{
				Position: node.Pos(),
				Message:  "Type mismatch for parameter '" + funcSym.Params[i].Name + "' in call to '" + node.Callee + "'",
			})
			return
		}
	}

	for i := argc; i < n; i++ {
		if !funcSym.Params[i].HasInit {
			a.fail(&SemanticError{Position: node.Pos(), Message: "Missing argument '" + funcSym.Params[i].Name + "'"})
			return
		}
	}

	node.SetExprType(funcSym.RetType)
}

func (a *Analyzer) VisitBinaryOp(node *ast.BinaryOp) {
	if a.failing() {
		return
	}

	node.Left.Accept(a)
	if a.failing() {
		return
	}
	node.Right.Accept(a)
	if a.failing() {
		return
	}

	lt := node.Left.ExprType()
	rt := node.Right.ExprType()
	if lt != rt {
		a.fail(&SemanticError{Position: node.Pos(), Message: "Type mismatch in binary operation: " + lt.String() + " vs " + rt.String()})
		return
	}

	switch node.Operator {
	case operator.Add, operator.Sub, operator.Mul, operator.Div, operator.Mod, operator.Pow:
		if lt == types.String {
			a.fail(&SemanticError{Position: node.Pos(), Message: "Arithmetic operators require numeric operands"})
			return
		}
		node.SetExprType(lt)

	case operator.And, operator.Or:
		if lt != types.Bool {
			a.fail(&SemanticError{Position: node.Pos(), Message: "Logical operators require boolean operands"})
			return
		}
		node.SetExprType(types.Bool)

	case operator.BitAnd, operator.BitOr, operator.BitXor:
		if lt == types.String {
			a.fail(&SemanticError{Position: node.Pos(), Message: "Bitwise operators require numeric operands"})
			return
		}
		node.SetExprType(types.Int)

	case operator.Eq, operator.NotEq, operator.Lt, operator.LtEq, operator.Gt, operator.GtEq:
		if lt != types.Int && lt != types.Bool {
			a.fail(&SemanticError{Position: node.Pos(), Message: "Comparison operators require comparable operands"})
			return
		}
		node.SetExprType(types.Bool)
	}
}

func (a *Analyzer) VisitUnaryOp(node *ast.UnaryOp) {
	if a.failing() {
		return
	}

	node.Right.Accept(a)
	if a.failing() {
		return
	}
	operandType := node.Right.ExprType()

	switch node.Operator {
	case operator.Pos:
		// Identity: propagates the operand's type (spec §4.3.4), unlike
		// the source, whose switch has no case for unary '+' at all.
		node.SetExprType(operandType)

	case operator.Neg:
		if operandType == types.String {
			a.fail(&SemanticError{Position: node.Pos(), Message: "Unary '-' requires an int or bool operand"})
			return
		}
		node.SetExprType(types.Int)

	case operator.Not:
		if operandType == types.String {
			a.fail(&SemanticError{Position: node.Pos(), Message: "Unary '!' requires an int or bool operand"})
			return
		}
		node.SetExprType(types.Bool)

	case operator.BitNot:
		if operandType == types.String {
			a.fail(&SemanticError{Position: node.Pos(), Message: "Unary '~' requires int operand"})
			return
		}
		node.SetExprType(types.Int)
	}
}

// ----------------------------------------------------------------------
// Literals
// ----------------------------------------------------------------------

func (a *Analyzer) VisitNumber(node *ast.Number) {
	if a.failing() {
		return
	}
	node.SetExprType(types.Int)
}

func (a *Analyzer) VisitString(node *ast.String) {
	if a.failing() {
		return
	}
	node.SetExprType(types.String)
}

func (a *Analyzer) VisitBoolean(node *ast.Boolean) {
	if a.failing() {
		return
	}
	node.SetExprType(types.Bool)
}
