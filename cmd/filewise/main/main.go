package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/filewise/cmd/filewise"
)

func main() {
	rootCmd := filewise.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, filewise.RenderError(err))
		os.Exit(1)
	}
}
