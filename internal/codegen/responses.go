package codegen

import (
	"strings"
)

// ResponsesContent assembles the generated responses module: the schema
// types the wrappers reference, the response wrapper base type, then one
// SuccessResponse subclass per non-DELETE route in canonical order.
func ResponsesContent(name Name, routes []Route) string {
	imports := AggregateImports([][]Import{
		{{Root: "schema", AddDot: true, Items: []string{
			Title(name.Singular),
			Title(name.Singular) + "ID",
		}}},
		{{Root: "zentra_api", Modules: []string{"responses"}, Items: []string{"SuccessResponse"}}},
	})

	sections := []string{imports}
	for _, r := range routes {
		if class := r.ResponseClass(name); class != "" {
			sections = append(sections, class)
		}
	}

	return strings.Join(sections, "\n\n") + "\n"
}
