// Package status defines the CLI-observable outcome codes. The numeric
// values are the binding process exit-code contract for each command.
package status

// Code is one CLI-observable outcome.
type Code int

const (
	// Outcomes of the init command.
	SetupComplete          Code = 10
	SetupAlreadyConfigured Code = 11

	// Outcomes of the add-routeset command.
	RouteSetCreated   Code = 20
	RouteFolderExists Code = 21
)

// Success reports whether the outcome completed the requested work.
// Conflicts (a configured project, an existing route folder) are expected
// conditions signalled to the caller, not failures.
func (c Code) Success() bool {
	return c == SetupComplete || c == RouteSetCreated
}

func (c Code) String() string {
	switch c {
	case SetupComplete:
		return "COMPLETE"
	case SetupAlreadyConfigured:
		return "ALREADY_CONFIGURED"
	case RouteSetCreated:
		return "CREATED"
	case RouteFolderExists:
		return "FOLDER_EXISTS"
	}
	return "UNKNOWN"
}
