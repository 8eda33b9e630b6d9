package codegen

import (
	"fmt"
	"strings"
)

// Fixed boilerplate import groups for the generated router module.
var (
	importDBDepend   = Import{Root: "app", Modules: []string{"core", "dependencies"}, Items: []string{"DB_DEPEND"}}
	importActiveUser = Import{Root: "app", Modules: []string{"auth"}, Items: []string{"ACTIVE_USER_DEPEND"}}
	importZentra     = Import{Root: "zentra_api", Modules: []string{"responses"}, Items: []string{"SuccessMsgResponse", "get_response_models"}}
	importFastAPI    = Import{Root: "fastapi", Items: []string{"APIRouter", "HTTPException", "status"}}
)

// RouterImports collects the import groups for a router module: core
// dependencies plus the folder-local models each route actually references,
// then the zentra response helpers, then the framework import.
func RouterImports(routes []Route) [][]Import {
	base := []Import{importDBDepend}

	for _, r := range routes {
		if r.Auth {
			base = append(base, importActiveUser)
			break
		}
	}

	for _, r := range routes {
		if r.ResponseModel != "" {
			base = append(base, Import{Root: "responses", AddDot: true, Items: []string{r.ResponseModel}})
		}
		if r.SchemaModel != "" {
			base = append(base, Import{Root: "schema", AddDot: true, Items: []string{
				r.SchemaModel,
				Title(r.Name) + "ID",
			}})
		}
	}

	return [][]Import{base, {importZentra}, {importFastAPI}}
}

// CreateAPIRouter renders the router declaration line for a resource.
func CreateAPIRouter(name Name) string {
	return fmt.Sprintf("router = APIRouter(prefix=%q, tags=[%q])", "/"+name.Plural, Title(name.Plural))
}

// RouterContent assembles the full text of the generated router module:
// imports, the router declaration, then each route block separated by one
// blank line, with a trailing blank line at the end of the file.
func RouterContent(name Name, routes []Route) string {
	sections := []string{
		AggregateImports(RouterImports(routes)),
		CreateAPIRouter(name),
	}
	for _, r := range routes {
		sections = append(sections, r.Render(name))
	}
	return strings.Join(sections, "\n\n") + "\n\n"
}
