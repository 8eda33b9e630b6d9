package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/achronus/zentra-api/internal/config"
	"github.com/achronus/zentra-api/internal/status"
)

type silentReporter struct{}

func (silentReporter) Step(format string, args ...any) {}

func newTestSetup(t *testing.T) *Setup {
	t.Helper()
	return New("test_project", "Jane Doe", t.TempDir(), silentReporter{})
}

func TestSetup_Build(t *testing.T) {
	setup := newTestSetup(t)
	require.False(t, setup.ProjectExists())

	code, err := setup.Build()
	require.NoError(t, err)
	assert.Equal(t, status.SetupComplete, code)
	assert.True(t, setup.ProjectExists())

	projectPath := setup.Details.ProjectPath()
	for _, file := range []string{
		"pyproject.toml",
		"README.md",
		EnvFileName,
		config.FileName,
		filepath.Join("app", "main.py"),
		filepath.Join("app", "core", "config.py"),
		filepath.Join("app", "core", "dependencies.py"),
		filepath.Join("app", "auth", "__init__.py"),
		filepath.Join("app", "api", "__init__.py"),
	} {
		_, err := os.Stat(filepath.Join(projectPath, file))
		assert.NoError(t, err, file)
	}

	// The template env file is renamed, never left behind.
	_, err = os.Stat(filepath.Join(projectPath, EnvTemplateName))
	assert.True(t, os.IsNotExist(err))
}

func TestSetup_EnvSecrets(t *testing.T) {
	setup := newTestSetup(t)

	_, err := setup.Build()
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(setup.Details.ProjectPath(), EnvFileName))
	require.NoError(t, err)
	env := parseEnv(string(data))

	assert.Len(t, env["AUTH__SECRET_KEY"], 43)
	assert.Len(t, env["DB__FIRST_SUPERUSER_PASSWORD"], 22)
	assert.Equal(t, "test_project", env["PROJECT_NAME"])
	assert.Equal(t, "test_project-stack", env["STACK_NAME"])

	// Untouched template values survive the patch.
	assert.Equal(t, "HS512", env["AUTH__ALGORITHM"])
}

func TestSetup_TemplateVars(t *testing.T) {
	setup := newTestSetup(t)

	_, err := setup.Build()
	require.NoError(t, err)

	readme, err := os.ReadFile(filepath.Join(setup.Details.ProjectPath(), "README.md"))
	require.NoError(t, err)

	assert.Contains(t, string(readme), "# test_project")
	assert.Contains(t, string(readme), "Jane Doe")
	assert.NotContains(t, string(readme), "{{")
}

func TestSetup_PyProject(t *testing.T) {
	setup := newTestSetup(t)

	_, err := setup.Build()
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(setup.Details.ProjectPath(), "pyproject.toml"))
	require.NoError(t, err)
	content := string(data)

	for _, pkg := range corePipPackages {
		assert.Contains(t, content, pkg)
	}
	for _, pkg := range devPipPackages {
		assert.Contains(t, content, pkg)
	}
	assert.Contains(t, content, `name = "test_project"`)
	assert.Contains(t, content, `authors = ["Jane Doe"]`)
}

func TestSetup_EnvRenameFailure(t *testing.T) {
	setup := newTestSetup(t)

	// A non-empty directory squatting on the env file name makes the rename
	// fail after the template assets are written.
	blocker := filepath.Join(setup.Details.ProjectPath(), EnvFileName)
	require.NoError(t, os.MkdirAll(filepath.Join(blocker, "nested"), 0755))

	err := setup.moveAssets()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rename env template")
}

func TestSetup_AlreadyConfigured(t *testing.T) {
	setup := newTestSetup(t)

	code, err := setup.Build()
	require.NoError(t, err)
	require.Equal(t, status.SetupComplete, code)

	code, err = setup.Build()
	require.NoError(t, err)
	assert.Equal(t, status.SetupAlreadyConfigured, code)
}

func parseEnv(content string) map[string]string {
	env := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		key, value, found := strings.Cut(strings.TrimSpace(line), "=")
		if found && !strings.HasPrefix(key, "#") {
			env[key] = value
		}
	}
	return env
}
