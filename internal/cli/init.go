package cli

import (
	"fmt"
	"os"
	"regexp"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/achronus/zentra-api/internal/scaffold"
)

var projectNamePattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_-]*$`)

var (
	initAuthor string
	initRoot   string
)

var initCmd = &cobra.Command{
	Use:   "init <project_name>",
	Short: "Create a new FastAPI project in a folder called <project_name>",
	Args:  cobra.ExactArgs(1),
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVar(&initAuthor, "author", "", "the project author written into pyproject.toml")
	initCmd.Flags().StringVar(&initRoot, "root", "", "the folder to create the project in (defaults to the working directory)")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	projectName := args[0]
	if !projectNamePattern.MatchString(projectName) {
		return fmt.Errorf("invalid project name %q: use letters, digits, '-' or '_'", projectName)
	}

	root := initRoot
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		root = cwd
	}

	author := initAuthor
	if author == "" {
		prompt := &survey.Input{Message: "Who is the project author?"}
		if err := survey.AskOne(prompt, &author, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	reporter := NewReporter(cmd.OutOrStdout())
	setup := scaffold.New(projectName, author, root, reporter)

	code, err := setup.Build()
	if err != nil {
		return err
	}

	reporter.Outcome(code)
	exit(int(code))
	return nil
}
