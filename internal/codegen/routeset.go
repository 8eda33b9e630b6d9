package codegen

import (
	"fmt"
	"strings"
)

// RouteOption selects which canonical routes a generated route set includes.
// Each letter maps onto canonical keys: c -> create, r -> both reads,
// u -> update, d -> delete.
type RouteOption string

const (
	OptionCRUD               RouteOption = "crud"
	OptionCreateRead         RouteOption = "cr"
	OptionCreateUpdate       RouteOption = "cu"
	OptionCreateDelete       RouteOption = "cd"
	OptionReadUpdate         RouteOption = "ru"
	OptionReadDelete         RouteOption = "rd"
	OptionUpdateDelete       RouteOption = "ud"
	OptionCreateReadUpdate   RouteOption = "cru"
	OptionCreateReadDelete   RouteOption = "crd"
	OptionCreateUpdateDelete RouteOption = "cud"
	OptionReadUpdateDelete   RouteOption = "rud"
)

var routeOptions = []RouteOption{
	OptionCRUD,
	OptionCreateRead,
	OptionCreateUpdate,
	OptionCreateDelete,
	OptionReadUpdate,
	OptionReadDelete,
	OptionUpdateDelete,
	OptionCreateReadUpdate,
	OptionCreateReadDelete,
	OptionCreateUpdateDelete,
	OptionReadUpdateDelete,
}

// ParseRouteOption validates a letter code from the CLI. Codes are
// case-insensitive.
func ParseRouteOption(s string) (RouteOption, error) {
	code := RouteOption(strings.ToLower(strings.TrimSpace(s)))
	for _, opt := range routeOptions {
		if code == opt {
			return opt, nil
		}
	}
	return "", fmt.Errorf("unknown route option %q (allowed: %s)", s, optionCodes())
}

func optionCodes() string {
	codes := make([]string, len(routeOptions))
	for i, opt := range routeOptions {
		codes[i] = string(opt)
	}
	return strings.Join(codes, ", ")
}

// matches reports whether the option includes a canonical key. A key is
// included when any of its letters appears in the option code.
func (o RouteOption) matches(key string) bool {
	for _, letter := range key {
		if strings.ContainsRune(string(o), letter) {
			return true
		}
	}
	return false
}

// CanonicalRoute pairs one of the five fixed operation templates with its
// canonical key.
type CanonicalRoute struct {
	Key   string
	Route Route
}

// Canonical keys in their fixed render order.
const (
	keyListGet   = "r1"
	keySingleGet = "r2"
	keyCreate    = "c"
	keyUpdate    = "u"
	keyDelete    = "d"
)

// RouteSet builds the five canonical routes for a resource, in their fixed
// order: list-GET, single-GET, create, update, delete.
func RouteSet(name Name) []CanonicalRoute {
	return []CanonicalRoute{
		{keyListGet, NewRoute(RouteSpec{
			Name:       name.Plural,
			Method:     MethodGet,
			Path:       "",
			StatusCode: 200,
			Multi:      true,
			Auth:       true,
		})},
		{keySingleGet, NewRoute(RouteSpec{
			Name:       name.Singular,
			Method:     MethodGet,
			Path:       "/{id}",
			StatusCode: 200,
			Auth:       true,
		})},
		{keyCreate, NewRoute(RouteSpec{
			Name:       name.Singular,
			Method:     MethodPost,
			Path:       "",
			StatusCode: 201,
			Auth:       true,
		})},
		{keyUpdate, NewRoute(RouteSpec{
			Name:       name.Singular,
			Method:     MethodPut,
			Path:       "/{id}",
			StatusCode: 202,
			Auth:       true,
		})},
		{keyDelete, NewRoute(RouteSpec{
			Name:       name.Singular,
			Method:     MethodDelete,
			Path:       "/{id}",
			StatusCode: 202,
			Auth:       true,
		})},
	}
}

// Resolve returns the canonical routes matched by the option, always in
// canonical order regardless of the order letters appear in the code.
func Resolve(name Name, option RouteOption) []Route {
	var routes []Route
	for _, cr := range RouteSet(name) {
		if option.matches(cr.Key) {
			routes = append(routes, cr.Route)
		}
	}
	return routes
}
