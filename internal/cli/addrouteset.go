package cli

import (
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"

	"github.com/achronus/zentra-api/internal/codegen"
)

// Resource names are a single alphabetic token; everything else is rejected
// before the generator runs.
var resourceNamePattern = regexp.MustCompile(`^[a-zA-Z]+$`)

var addRouteSetRoot string

var addRouteSetCmd = &cobra.Command{
	Use:   "add-routeset <name> [option]",
	Short: "Generate a set of CRUD API routes for a resource",
	Long: "Generates router, response-model and schema files for <name> under app/api. " +
		"The option is a letter code selecting the operations to include, e.g. 'crud', 'cr' or 'rd'.",
	Args: cobra.RangeArgs(1, 2),
	RunE: runAddRouteSet,
}

func init() {
	addRouteSetCmd.Flags().StringVar(&addRouteSetRoot, "root", "", "the project root (defaults to the working directory)")
	rootCmd.AddCommand(addRouteSetCmd)
}

func runAddRouteSet(cmd *cobra.Command, args []string) error {
	if !resourceNamePattern.MatchString(args[0]) {
		return fmt.Errorf("invalid resource name %q: use a single alphabetic word", args[0])
	}

	option := codegen.OptionCRUD
	if len(args) == 2 {
		parsed, err := codegen.ParseRouteOption(args[1])
		if err != nil {
			return err
		}
		option = parsed
	}

	name, err := codegen.Normalize(args[0])
	if err != nil {
		return err
	}

	root := addRouteSetRoot
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		root = cwd
	}

	reporter := NewReporter(cmd.OutOrStdout())
	builder := codegen.NewRouteSetBuilder(name, option, root, reporter)

	code, err := builder.Build()
	if err != nil {
		return err
	}

	reporter.Outcome(code)
	exit(int(code))
	return nil
}
