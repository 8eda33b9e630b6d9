package codegen

import (
	"strings"
)

// Import represents one "from X import Y, Z" statement group in a generated
// module. AddDot marks a folder-local relative import (from .schema import ...).
type Import struct {
	Root    string
	Modules []string
	Items   []string
	AddDot  bool
}

func (i Import) dotPath() string {
	parts := append([]string{i.Root}, i.Modules...)
	path := strings.Join(parts, ".")
	if i.AddDot {
		return "." + path
	}
	return path
}

func (i Import) render(items []string) string {
	return "from " + i.dotPath() + " import " + strings.Join(items, ", ")
}

// AggregateImports renders ordered groups of import statements as text.
// Lines within a group are newline-joined; groups are separated by one blank
// line. Statements targeting the same module path are merged into their first
// occurrence with items unioned in first-seen order, so no import line is
// ever emitted twice.
func AggregateImports(groups [][]Import) string {
	type statement struct {
		imp   Import
		items []string
	}

	merged := make([][]*statement, 0, len(groups))
	index := make(map[string]*statement)

	for _, group := range groups {
		var stmts []*statement
		for _, imp := range group {
			if len(imp.Items) == 0 {
				continue
			}
			path := imp.dotPath()
			if existing, ok := index[path]; ok {
				existing.items = unionItems(existing.items, imp.Items)
				continue
			}
			stmt := &statement{imp: imp, items: unionItems(nil, imp.Items)}
			index[path] = stmt
			stmts = append(stmts, stmt)
		}
		if len(stmts) > 0 {
			merged = append(merged, stmts)
		}
	}

	blocks := make([]string, 0, len(merged))
	for _, stmts := range merged {
		lines := make([]string, 0, len(stmts))
		for _, stmt := range stmts {
			lines = append(lines, stmt.imp.render(stmt.items))
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return strings.Join(blocks, "\n\n")
}

// unionItems appends the entries of items not already present in base,
// preserving first-seen order.
func unionItems(base, items []string) []string {
	for _, item := range items {
		seen := false
		for _, b := range base {
			if b == item {
				seen = true
				break
			}
		}
		if !seen {
			base = append(base, item)
		}
	}
	return base
}
