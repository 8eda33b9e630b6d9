package codegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/achronus/zentra-api/internal/status"
)

// Reporter receives progress messages from the builder. The CLI passes a
// per-invocation reporter; tests pass a silent one.
type Reporter interface {
	Step(format string, args ...any)
}

// RouteFolder resolves the output directory for a resource's route set.
func RouteFolder(name Name, root string) string {
	return filepath.Join(root, "app", "api", name.Plural)
}

// RouteSetBuilder sequences the generation of one route set: the folder
// pre-existence check, content synthesis and the file writes.
type RouteSetBuilder struct {
	name     Name
	option   RouteOption
	root     string
	reporter Reporter
}

func NewRouteSetBuilder(name Name, option RouteOption, root string, reporter Reporter) *RouteSetBuilder {
	return &RouteSetBuilder{
		name:     name,
		option:   option,
		root:     root,
		reporter: reporter,
	}
}

// FolderExists reports whether the target route folder already exists.
func (b *RouteSetBuilder) FolderExists() bool {
	info, err := os.Stat(RouteFolder(b.name, b.root))
	return err == nil && info.IsDir()
}

// Build generates the route set. When the target folder already exists it
// returns RouteFolderExists without touching the filesystem; synthesis
// happens before any write, so a failed build never leaves partial files.
//
// The schema file is created but intentionally left empty this generation
// cycle: its stub content is synthesized and tested, but not yet written.
func (b *RouteSetBuilder) Build() (status.Code, error) {
	folder := RouteFolder(b.name, b.root)

	if b.FolderExists() {
		return status.RouteFolderExists, nil
	}

	routes := Resolve(b.name, b.option)

	// schema.py stays empty for now; SchemaContent is wired in once the
	// generated stubs settle.
	files := []struct {
		name    string
		content string
	}{
		{"__init__.py", RouterContent(b.name, routes)},
		{"responses.py", ResponsesContent(b.name, routes)},
		{"schema.py", ""},
	}

	if err := os.MkdirAll(folder, 0755); err != nil {
		return 0, fmt.Errorf("create route folder %s: %w", folder, err)
	}
	b.reporter.Step("Created folder %s", folder)

	for _, f := range files {
		path := filepath.Join(folder, f.name)
		if err := os.WriteFile(path, []byte(f.content), 0644); err != nil {
			return 0, fmt.Errorf("write %s: %w", path, err)
		}
		b.reporter.Step("Created file %s", path)
	}

	return status.RouteSetCreated, nil
}
