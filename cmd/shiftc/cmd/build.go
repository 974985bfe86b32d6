package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BvHand487/shift/internal/driver"
)

var (
	buildOutput string
	buildObject string
	buildWatch  bool
)

var buildCmd = &cobra.Command{
	Use:   "build [file]",
	Short: "Build a shift file into an executable",
	Long: `Run the full front end and hand the analyzed program to the code
generator.

Code generation is not implemented in this front end (spec §4.4): build
always fails with "not implemented" unless --obj supplies an already
assembled object file, in which case build skips emission and links
that object directly, exercising the linker step on its own.

Examples:
  shiftc build script.sft
  shiftc build script.sft --obj script.o -o script
  shiftc build script.sft --watch`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output executable path (default: input file without extension)")
	buildCmd.Flags().StringVar(&buildObject, "obj", "", "externally supplied object file to link, bypassing code generation")
	buildCmd.Flags().BoolVar(&buildWatch, "watch", false, "rebuild automatically whenever the input file changes")
}

func runBuild(cmd *cobra.Command, args []string) error {
	filename := args[0]

	build := func() error {
		source, filename, err := readSource(args)
		if err != nil {
			return err
		}

		opts := driver.BuildOptions{OutputPath: buildOutput, ObjectPath: buildObject}
		diag, err := driver.Build(source, filename, opts)
		if diag != nil {
			return reportDiagnostic(cmd, diag, source, filename)
		}
		if err != nil {
			return err
		}

		fmt.Printf("Built %s\n", filename)
		return nil
	}

	if buildWatch {
		return driver.Watch(filename, func() {
			if err := build(); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), err)
			}
		})
	}

	return build()
}
