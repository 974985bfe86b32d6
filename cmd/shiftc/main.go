// Command shiftc is the shift compiler front end: lexer, parser, and
// semantic analyzer, wired together behind a small cobra CLI.
package main

import (
	"fmt"
	"os"

	"github.com/BvHand487/shift/cmd/shiftc/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
