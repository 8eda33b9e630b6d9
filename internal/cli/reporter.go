package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/achronus/zentra-api/internal/status"
)

var (
	passMark = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
)

// Reporter writes command progress and outcome messages. One reporter is
// constructed per invocation and passed into whatever does the work; nothing
// in the repository writes through a shared console.
type Reporter struct {
	out io.Writer
}

func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Step prints one progress line for a build task.
func (r *Reporter) Step(format string, args ...any) {
	fmt.Fprintf(r.out, "  %s %s\n", passMark, fmt.Sprintf(format, args...))
}

// Outcome prints the closing message for a status code.
func (r *Reporter) Outcome(code status.Code) {
	mark := passMark
	if !code.Success() {
		mark = failMark
	}
	fmt.Fprintf(r.out, "%s %s\n", mark, outcomeMessages[code])
}

var outcomeMessages = map[status.Code]string{
	status.SetupComplete:          "Project created! Head into the folder and run `poetry install` to get started.",
	status.SetupAlreadyConfigured: "A non-empty project with this name already exists. Pick another name or remove the folder.",
	status.RouteSetCreated:        "Route set created!",
	status.RouteFolderExists:      "A route folder for this resource already exists. Nothing was written.",
}
