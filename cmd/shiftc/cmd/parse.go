package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/BvHand487/shift/internal/ast"
	"github.com/BvHand487/shift/internal/errors"
	"github.com/BvHand487/shift/internal/lexer"
	"github.com/BvHand487/shift/internal/parser"
	"github.com/BvHand487/shift/internal/token"
)

var parseDumpAST bool

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a shift file and display its declarations",
	Long: `Parse shift source into an AST and report the first parse error, if any.

Use --ast to dump the declaration tree.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVar(&parseDumpAST, "ast", false, "dump the parsed declaration tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	prog, diag := parseOnly(source, filename)
	if diag != nil {
		return reportDiagnostic(cmd, diag, source, filename)
	}

	if parseDumpAST {
		fmt.Println("Declarations:")
		for _, decl := range prog.Declarations {
			dumpASTNode(decl, 1)
		}
		return nil
	}

	fmt.Printf("Parsed %d top-level declaration(s)\n", len(prog.Declarations))
	return nil
}

// parseOnly runs lex+parse only, deliberately stopping short of
// semantic analysis: this command inspects the raw parse tree, not the
// analyzed one.
func parseOnly(source, filename string) (*ast.Program, *errors.Diagnostic) {
	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		pos := token.Position{}
		if le, ok := err.(*lexer.LexicalError); ok {
			pos = le.Position
		}
		d := errors.NewDiagnostic(errors.NewCompilerError(pos, err.Error(), source, filename), errors.PhaseLex, "")
		return nil, &d
	}

	prog, err := parser.ParseProgram(tokens)
	if err != nil {
		pos := token.Position{}
		if pe, ok := err.(*parser.ParseError); ok {
			pos = pe.Position
		}
		d := errors.NewDiagnostic(errors.NewCompilerError(pos, err.Error(), source, filename), errors.PhaseParse, "")
		return nil, &d
	}

	return prog, nil
}

func dumpASTNode(node any, indent int) {
	pad := strings.Repeat("  ", indent)

	switch n := node.(type) {
	case *ast.Prototype:
		fmt.Printf("%sPrototype %s(%d params) -> %s\n", pad, n.Name, len(n.Params), n.RetType)
	case *ast.Definition:
		fmt.Printf("%sDefinition %s\n", pad, n.Proto.Name)
		dumpASTNode(n.Proto, indent+1)
		dumpASTNode(n.Body, indent+1)
	case *ast.Block:
		fmt.Printf("%sBlock (%d statements)\n", pad, len(n.Statements))
		for _, stmt := range n.Statements {
			dumpASTNode(stmt, indent+1)
		}
	case *ast.VariableDecl:
		fmt.Printf("%sVariableDecl %s\n", pad, n.Name)
		dumpASTNode(n.Init, indent+1)
	case *ast.Assignment:
		fmt.Printf("%sAssignment %s\n", pad, n.Lhs.Name)
		dumpASTNode(n.Rhs, indent+1)
	case *ast.If:
		fmt.Printf("%sIf\n", pad)
		dumpASTNode(n.Cond, indent+1)
		dumpASTNode(n.Then, indent+1)
		if n.Else != nil {
			dumpASTNode(n.Else, indent+1)
		}
	case *ast.While:
		fmt.Printf("%sWhile\n", pad)
		dumpASTNode(n.Cond, indent+1)
		dumpASTNode(n.Body, indent+1)
	case *ast.Return:
		fmt.Printf("%sReturn\n", pad)
		if n.Value != nil {
			dumpASTNode(n.Value, indent+1)
		}
	case *ast.ExprStatement:
		fmt.Printf("%sExprStatement\n", pad)
		dumpASTNode(n.Expr, indent+1)
	case *ast.BinaryOp:
		fmt.Printf("%sBinaryOp (%s)\n", pad, n.Operator)
		dumpASTNode(n.Left, indent+1)
		dumpASTNode(n.Right, indent+1)
	case *ast.UnaryOp:
		fmt.Printf("%sUnaryOp (%s)\n", pad, n.Operator)
		dumpASTNode(n.Right, indent+1)
	case *ast.Call:
		fmt.Printf("%sCall %s(%d args)\n", pad, n.Callee, len(n.Args))
		for _, arg := range n.Args {
			dumpASTNode(arg, indent+1)
		}
	case *ast.Variable:
		fmt.Printf("%sVariable %s\n", pad, n.Name)
	case *ast.Number:
		fmt.Printf("%sNumber %d\n", pad, n.Value)
	case *ast.Boolean:
		fmt.Printf("%sBoolean %v\n", pad, n.Value)
	case *ast.String:
		fmt.Printf("%sString %q\n", pad, n.Value)
	default:
		fmt.Printf("%s%T\n", pad, node)
	}
}
