package codegen

import (
	"fmt"
	"sort"
	"strings"
)

// Method is a lower-cased HTTP verb, matching the FastAPI decorator name.
type Method string

const (
	MethodGet    Method = "get"
	MethodPost   Method = "post"
	MethodPut    Method = "put"
	MethodPatch  Method = "patch"
	MethodDelete Method = "delete"
)

// humanVerb maps an HTTP verb onto the word used in generated model names.
func (m Method) humanVerb() string {
	switch m {
	case MethodGet:
		return "Get"
	case MethodPost:
		return "Create"
	case MethodPut, MethodPatch:
		return "Update"
	}
	return ""
}

// statusNames covers every status code a generated endpoint declares.
var statusNames = map[int]string{
	200: "HTTP_200_OK",
	201: "HTTP_201_CREATED",
	202: "HTTP_202_ACCEPTED",
	400: "HTTP_400_BAD_REQUEST",
	401: "HTTP_401_UNAUTHORIZED",
}

// Param is one "name: type" entry in a generated handler signature.
type Param struct {
	Name string
	Type string
}

// Fixed dependency parameters shared by every generated handler.
var (
	paramID         = Param{Name: "id", Type: "int"}
	paramDB         = Param{Name: "db", Type: "DB_DEPEND"}
	paramActiveUser = Param{Name: "current_user", Type: "ACTIVE_USER_DEPEND"}
)

// RouteSpec carries the caller-supplied attributes of a route. Explicit
// ResponseCodes and Parameters are unioned with the derived defaults rather
// than replaced by them.
type RouteSpec struct {
	Name          string
	Method        Method
	Path          string
	StatusCode    int
	Multi         bool
	Auth          bool
	ResponseCodes []int
	Parameters    []Param
}

// Route is a fully derived representation of one generated endpoint. All
// fields are finalized by NewRoute; a Route is never mutated afterwards.
type Route struct {
	Name          string
	Method        Method
	Path          string
	StatusCode    int
	Multi         bool
	Auth          bool
	ResponseCodes []int
	Parameters    []Param
	FuncName      string
	ResponseModel string
	SchemaModel   string
}

// NewRoute derives every computed field of a route in one shot.
func NewRoute(spec RouteSpec) Route {
	r := Route{
		Name:       spec.Name,
		Method:     spec.Method,
		Path:       spec.Path,
		StatusCode: spec.StatusCode,
		Multi:      spec.Multi,
		Auth:       spec.Auth,
		FuncName:   fmt.Sprintf("%s_%s", spec.Method, spec.Name),
	}

	if spec.Method != MethodDelete {
		r.ResponseModel = fmt.Sprintf("%s%sResponse", spec.Method.humanVerb(), Title(spec.Name))
	}
	if spec.Method != MethodGet && spec.Method != MethodDelete {
		r.SchemaModel = fmt.Sprintf("%s%s", Title(spec.Name), spec.Method.humanVerb())
	}

	r.ResponseCodes = deriveResponseCodes(spec)
	r.Parameters = deriveParameters(spec, r.SchemaModel)

	return r
}

func deriveResponseCodes(spec RouteSpec) []int {
	codes := append([]int(nil), spec.ResponseCodes...)

	add := func(code int) {
		for _, c := range codes {
			if c == code {
				return
			}
		}
		codes = append(codes, code)
	}

	if spec.Auth {
		add(401)
		add(403)
	}
	if spec.Method != MethodGet {
		add(400)
	}

	sort.Ints(codes)
	return codes
}

func deriveParameters(spec RouteSpec, schemaModel string) []Param {
	var defaults []Param

	needsID := spec.Method == MethodPut || spec.Method == MethodPatch ||
		spec.Method == MethodDelete || (spec.Method == MethodGet && !spec.Multi)
	if needsID {
		defaults = append(defaults, paramID)
	}
	if schemaModel != "" {
		defaults = append(defaults, Param{Name: spec.Name, Type: schemaModel})
	}
	defaults = append(defaults, paramDB)
	if spec.Auth {
		defaults = append(defaults, paramActiveUser)
	}

	// Order-preserving union: explicit entries stay first, defaults are
	// appended only when absent.
	params := append([]Param(nil), spec.Parameters...)
	for _, d := range defaults {
		seen := false
		for _, p := range params {
			if p.Name == d.Name {
				seen = true
				break
			}
		}
		if !seen {
			params = append(params, d)
		}
	}

	return params
}

func (r Route) paramsString() string {
	parts := make([]string, 0, len(r.Parameters))
	for _, p := range r.Parameters {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Name, p.Type))
	}
	return strings.Join(parts, ", ")
}

func (r Route) codesString() string {
	parts := make([]string, 0, len(r.ResponseCodes))
	for _, c := range r.ResponseCodes {
		parts = append(parts, fmt.Sprintf("%d", c))
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Render produces the decorator, signature and body of the endpoint as it
// appears in the generated router module.
func (r Route) Render(name Name) string {
	lines := []string{
		fmt.Sprintf("@router.%s(", r.Method),
		indent(fmt.Sprintf("%q,", r.Path)),
		indent(fmt.Sprintf("status_code=status.%s,", statusNames[r.StatusCode])),
	}

	if len(r.ResponseCodes) > 0 {
		lines = append(lines, indent(fmt.Sprintf("responses=get_response_models(%s),", r.codesString())))
	}

	responseModel := r.ResponseModel
	if responseModel == "" {
		responseModel = "None"
	}

	lines = append(lines,
		indent(fmt.Sprintf("response_model=%s,", responseModel)),
		")",
		fmt.Sprintf("async def %s(%s):", r.FuncName, r.paramsString()),
		indentBlock(r.body(name)),
	)

	return strings.Join(lines, "\n")
}

// ResponseClass renders the SuccessResponse subclass for the route, or ""
// for DELETE routes, which have no response model.
func (r Route) ResponseClass(name Name) string {
	if r.ResponseModel == "" {
		return ""
	}

	var payload, phrase string
	switch {
	case r.Multi:
		payload = fmt.Sprintf("list[%s]", Title(name.Singular))
		phrase = fmt.Sprintf("retrieving a list of %s", name.Plural)
	case r.Method == MethodGet:
		payload = Title(name.Singular)
		phrase = fmt.Sprintf("retrieving %s %s", article(name.Singular), name.Singular)
	case r.Method == MethodPost:
		payload = Title(name.Singular) + "ID"
		phrase = fmt.Sprintf("creating %s %s", article(name.Singular), name.Singular)
	default:
		payload = Title(name.Singular) + "ID"
		phrase = fmt.Sprintf("updating %s %s", article(name.Singular), name.Singular)
	}

	return strings.Join([]string{
		fmt.Sprintf("class %s(SuccessResponse[%s]):", r.ResponseModel, payload),
		indent(fmt.Sprintf(`"""A response for %s."""`, phrase)),
		indent("pass"),
	}, "\n")
}

func indent(line string) string {
	return "    " + line
}

// indentBlock indents every non-empty line of a body snippet by one level.
func indentBlock(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ""
			continue
		}
		lines[i] = "    " + line
	}
	return strings.Join(lines, "\n")
}
