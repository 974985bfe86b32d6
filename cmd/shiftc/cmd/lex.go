package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BvHand487/shift/internal/errors"
	"github.com/BvHand487/shift/internal/lexer"
	"github.com/BvHand487/shift/internal/token"
)

var (
	showPos  bool
	showType bool
)

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a shift file and print the resulting tokens",
	Long: `Tokenize a shift program and print the resulting token stream.

This command is useful for debugging the lexer and understanding how
shift source is tokenized.

Examples:
  shiftc lex script.sft
  shiftc lex --show-type --show-pos script.sft`,
	Args: cobra.ExactArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
	lexCmd.Flags().BoolVar(&showType, "show-type", false, "show token type names")
}

func lexScript(cmd *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	tokens, err := lexer.New(source).Tokenize()
	if err != nil {
		d := errors.NewDiagnostic(errors.NewCompilerError(lexErrPosition(err), err.Error(), source, filename), errors.PhaseLex, "")
		return reportDiagnostic(cmd, &d, source, filename)
	}

	for _, tok := range tokens {
		printToken(tok)
	}

	return nil
}

func lexErrPosition(err error) token.Position {
	if le, ok := err.(*lexer.LexicalError); ok {
		return le.Position
	}
	return token.Position{}
}

func printToken(tok token.Token) {
	var output string

	if showType {
		output = fmt.Sprintf("[%-10s]", tok.Type.String())
	}

	if tok.Lexeme == "" {
		output += fmt.Sprintf(" %s", tok.Type)
	} else {
		output += fmt.Sprintf(" %q", tok.Lexeme)
	}

	if showPos {
		output += fmt.Sprintf(" @%s", tok.Position)
	}

	fmt.Println(output)
}
