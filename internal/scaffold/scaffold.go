// Package scaffold creates new FastAPI project skeletons for the init
// command: the embedded template tree, the pyproject file and the secret
// environment values.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/achronus/zentra-api/internal/config"
	"github.com/achronus/zentra-api/internal/keys"
	"github.com/achronus/zentra-api/internal/status"
)

// Reporter receives progress messages from the setup tasks.
type Reporter interface {
	Step(format string, args ...any)
}

// Setup performs project creation for the init command.
type Setup struct {
	Details config.ProjectDetails

	reporter Reporter
}

func New(projectName, author, root string, reporter Reporter) *Setup {
	return &Setup{
		Details: config.ProjectDetails{
			ProjectName: projectName,
			Author:      author,
			Root:        root,
		},
		reporter: reporter,
	}
}

// ProjectExists reports whether a non-empty folder already occupies the
// project path.
func (s *Setup) ProjectExists() bool {
	entries, err := os.ReadDir(s.Details.ProjectPath())
	return err == nil && len(entries) > 0
}

// Build scaffolds the project. A non-empty target folder terminates with
// SetupAlreadyConfigured before any filesystem mutation.
func (s *Setup) Build() (status.Code, error) {
	if s.ProjectExists() {
		return status.SetupAlreadyConfigured, nil
	}

	tasks := []struct {
		name string
		run  func() error
	}{
		{"Copying template assets", s.moveAssets},
		{"Creating pyproject.toml", s.makePyProject},
		{"Generating environment secrets", s.updateEnv},
		{"Saving project details", s.Details.Save},
	}

	for _, task := range tasks {
		s.reporter.Step("%s", task.name)
		if err := task.run(); err != nil {
			return 0, err
		}
	}

	return status.SetupComplete, nil
}

func (s *Setup) moveAssets() error {
	path := s.Details.ProjectPath()
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("create project folder %s: %w", path, err)
	}

	if err := writeTemplateTree(path, map[string]string{
		"PROJECT_NAME": s.Details.ProjectName,
		"AUTHOR":       s.Details.Author,
	}); err != nil {
		return fmt.Errorf("write template assets: %w", err)
	}

	if err := os.Rename(
		filepath.Join(path, EnvTemplateName),
		filepath.Join(path, EnvFileName),
	); err != nil {
		return fmt.Errorf("rename env template: %w", err)
	}
	return nil
}

func (s *Setup) makePyProject() error {
	path := filepath.Join(s.Details.ProjectPath(), "pyproject.toml")
	return writePyProject(path, s.Details.ProjectName, s.Details.Author)
}

func (s *Setup) updateEnv() error {
	secretKey, err := keys.Generate(256)
	if err != nil {
		return err
	}
	superuserPassword, err := keys.Generate(128)
	if err != nil {
		return err
	}

	return patchEnvFile(filepath.Join(s.Details.ProjectPath(), EnvFileName), map[string]string{
		"AUTH__SECRET_KEY":             secretKey,
		"DB__FIRST_SUPERUSER_PASSWORD": superuserPassword,
		"PROJECT_NAME":                 s.Details.ProjectName,
		"STACK_NAME":                   s.Details.ProjectName + "-stack",
	})
}
