package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BvHand487/shift/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Lex, parse, and semantically analyze a shift file",
	Long: `Run the full front end — lexer, parser, and semantic analyzer — over a
shift source file and report the first diagnostic, if any.

check does not emit any object code; use 'shiftc build' for that.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	source, filename, err := readSource(args)
	if err != nil {
		return err
	}

	result := driver.NewPipeline(source, filename).Run()
	if result.Diagnostic != nil {
		return reportDiagnostic(cmd, result.Diagnostic, source, filename)
	}

	fmt.Printf("%s: OK (%d top-level declaration(s))\n", filename, len(result.Program.Declarations))
	return nil
}
