// Package cli wires the zentra-api command tree. Commands validate user
// input at this boundary and exit with the status codes the scaffold and
// codegen packages report.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var Version = "0.2.0"

// exit is swapped out in tests.
var exit = os.Exit

var rootCmd = &cobra.Command{
	Use:           "zentra-api",
	Short:         "Create FastAPI projects and generate CRUD route sets",
	Long:          "Welcome to Zentra API! Create a project with `init` or generate CRUD routes with `add-routeset`.",
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		exit(1)
	}
}
