package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Template files baked into the binary so `go install` works without
// external assets.
//
//go:embed all:templates
var templatesFS embed.FS

const templateRoot = "templates/project"

// EnvTemplateName is the environment file as it exists inside the template
// tree, before it is renamed into the project.
const EnvTemplateName = ".env.template"

// EnvFileName is the environment file written into every scaffolded project.
const EnvFileName = ".env.backend"

// writeTemplateTree copies the embedded project template into targetDir,
// substituting {{VAR}} placeholders in every file. Files are written in
// sorted order so repeated runs touch the filesystem identically.
func writeTemplateTree(targetDir string, vars map[string]string) error {
	var files []string
	err := fs.WalkDir(templatesFS, templateRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return err
	}
	sort.Strings(files)

	for _, src := range files {
		rel := strings.TrimPrefix(src, templateRoot+"/")
		outPath := filepath.Join(targetDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
			return fmt.Errorf("mkdir %s: %w", filepath.Dir(outPath), err)
		}
		data, err := templatesFS.ReadFile(src)
		if err != nil {
			return fmt.Errorf("read embedded file %s: %w", src, err)
		}
		content := applyTemplateVars(string(data), vars)
		if err := os.WriteFile(outPath, []byte(content), 0644); err != nil {
			return fmt.Errorf("write file %s: %w", outPath, err)
		}
	}

	return nil
}

func applyTemplateVars(content string, vars map[string]string) string {
	out := content
	for k, v := range vars {
		out = strings.ReplaceAll(out, "{{"+k+"}}", v)
	}
	return out
}
