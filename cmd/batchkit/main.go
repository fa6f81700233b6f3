// Command batchkit is the CLI entry point for the batch dispatch toolkit.
package main

import (
	"fmt"
	"os"

	"github.com/sliceworks/batchkit/internal/cli"
	"github.com/sliceworks/batchkit/pkg/version"
)

// run executes the root command and returns the process exit code.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run())
}
