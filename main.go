package main

import (
	"fmt"
	"os"

	"github.com/thenoetrevino/taskflow/cmd"
	"github.com/thenoetrevino/taskflow/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
