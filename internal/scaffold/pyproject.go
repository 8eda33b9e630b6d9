package scaffold

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Pip packages pinned into every generated pyproject.toml.
var (
	corePipPackages = []string{
		"fastapi",
		"sqlalchemy",
		"alembic",
		"pydantic-settings",
		"pyjwt",
		"bcrypt",
		"zentra_api",
	}

	devPipPackages = []string{
		"pytest",
		"pytest-cov",
	}
)

const pythonVersion = "^3.12"

type pyProject struct {
	Tool        pyProjectTool  `toml:"tool"`
	BuildSystem pyProjectBuild `toml:"build-system"`
}

type pyProjectTool struct {
	Poetry pyProjectPoetry `toml:"poetry"`
}

type pyProjectPoetry struct {
	Name         string            `toml:"name"`
	Version      string            `toml:"version"`
	Description  string            `toml:"description"`
	Authors      []string          `toml:"authors"`
	Dependencies map[string]string `toml:"dependencies"`
	Group        pyProjectGroups   `toml:"group"`
}

type pyProjectGroups struct {
	Dev pyProjectDevGroup `toml:"dev"`
}

type pyProjectDevGroup struct {
	Dependencies map[string]string `toml:"dependencies"`
}

type pyProjectBuild struct {
	Requires     []string `toml:"requires"`
	BuildBackend string   `toml:"build-backend"`
}

// writePyProject generates the project's pyproject.toml with the core and
// dev dependency groups.
func writePyProject(path, projectName, author string) error {
	deps := map[string]string{"python": pythonVersion}
	for _, pkg := range corePipPackages {
		deps[pkg] = "*"
	}
	devDeps := make(map[string]string, len(devPipPackages))
	for _, pkg := range devPipPackages {
		devDeps[pkg] = "*"
	}

	project := pyProject{
		Tool: pyProjectTool{
			Poetry: pyProjectPoetry{
				Name:         projectName,
				Version:      "0.1.0",
				Description:  fmt.Sprintf("A FastAPI backend for %s.", projectName),
				Authors:      []string{author},
				Dependencies: deps,
				Group: pyProjectGroups{
					Dev: pyProjectDevGroup{Dependencies: devDeps},
				},
			},
		},
		BuildSystem: pyProjectBuild{
			Requires:     []string{"poetry-core"},
			BuildBackend: "poetry.core.masonry.api",
		},
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(project); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
