package codegen

import (
	"fmt"
	"strings"
)

// SchemaContent assembles the generated schema-stub module. The Base, entity
// and ID models are always present; Create and Update stubs appear only when
// the route set includes the matching operations.
func SchemaContent(name Name, routes []Route) string {
	title := Title(name.Singular)

	classes := []string{
		stubClass(title+"Base", "BaseModel"),
		stubClass(title, title+"Base"),
		strings.Join([]string{
			fmt.Sprintf("class %sID(BaseModel):", title),
			indent(fmt.Sprintf(`id: int = Field(..., description="The ID of the %s.")`, name.Singular)),
		}, "\n"),
	}

	if hasMethod(routes, MethodPost) {
		classes = append(classes, stubClass(title+"Create", title+"Base"))
	}
	if hasMethod(routes, MethodPut) || hasMethod(routes, MethodPatch) {
		classes = append(classes, stubClass(title+"Update", title+"Base"))
	}

	sections := append([]string{"from pydantic import BaseModel, Field"}, classes...)
	return strings.Join(sections, "\n\n") + "\n"
}

func stubClass(name, base string) string {
	return fmt.Sprintf("class %s(%s):\n%s", name, base, indent("pass"))
}

func hasMethod(routes []Route, method Method) bool {
	for _, r := range routes {
		if r.Method == method {
			return true
		}
	}
	return false
}
