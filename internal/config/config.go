// Package config reads and writes the zentra.toml file that records the
// details of a scaffolded project.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// FileName is the project details file written into every scaffolded project.
const FileName = "zentra.toml"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ProjectDetails describes one scaffolded project. Root is where the project
// folder lives; it is derived from the file location, never persisted.
type ProjectDetails struct {
	ProjectName string `toml:"project_name" validate:"required"`
	Author      string `toml:"author" validate:"required"`

	Root string `toml:"-"`
}

// ProjectPath is the project folder itself.
func (d ProjectDetails) ProjectPath() string {
	return filepath.Join(d.Root, d.ProjectName)
}

// Save writes the project details into the project folder.
func (d ProjectDetails) Save() error {
	path := filepath.Join(d.ProjectPath(), FileName)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(d); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

// Load reads and validates the project details from a project folder.
func Load(projectPath string) (*ProjectDetails, error) {
	path := filepath.Join(projectPath, FileName)

	var details ProjectDetails
	if _, err := toml.DecodeFile(path, &details); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := validate.Struct(details); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}

	details.Root = filepath.Dir(projectPath)
	return &details, nil
}
