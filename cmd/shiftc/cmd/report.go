package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/BvHand487/shift/internal/errors"
)

// reportDiagnostic prints a single pipeline failure per the command's
// --format/--color flags and returns the process exit error (spec §7:
// diagnostics go to stderr, exit code is non-zero on any phase
// failure).
func reportDiagnostic(cmd *cobra.Command, d *errors.Diagnostic, source, filename string) error {
	format, _ := cmd.Flags().GetString("format")
	if format == "json" {
		out, err := errors.FormatDiagnosticsJSON([]errors.Diagnostic{*d})
		if err != nil {
			return err
		}
		fmt.Fprintln(os.Stderr, out)
		return fmt.Errorf("%s failed", string(d.Phase))
	}

	useColor, _ := cmd.Flags().GetBool("color")
	fmt.Fprintln(os.Stderr, d.CompilerError(source, filename).Format(useColor))
	return fmt.Errorf("%s failed", string(d.Phase))
}
