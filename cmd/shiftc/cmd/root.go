package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "shiftc",
	Short: "shift compiler front end",
	Long: `shiftc lexes, parses, and semantically analyzes shift source files.

shift is a small statically-typed, C-like surface language: integers,
booleans, strings, functions with default parameters and variadics, and
no floating point. This front end stops at analysis — binary emission
is an explicit non-goal (run 'shiftc build' to see the documented
codegen contract fail with "not implemented").`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().Bool("color", true, "colorize diagnostic output")
	rootCmd.PersistentFlags().String("format", "text", "diagnostic output format: text|json")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}

func readSource(args []string) (source, filename string, err error) {
	if len(args) != 1 {
		return "", "", fmt.Errorf("expected exactly one source file")
	}
	filename = args[0]
	content, err := os.ReadFile(filename)
	if err != nil {
		return "", "", fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return string(content), filename, nil
}
