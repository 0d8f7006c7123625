package install

import (
	"fmt"

	"github.com/conn-castle/plinstall/internal/messages"
)

// UsageError reports invalid command-line input. Callers print the usage text
// after the message and exit 1.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

// StepError reports a build step that exited non-zero or could not be started.
type StepError struct {
	Step     string
	Command  string
	ExitCode int
	// Signal is the name of the signal that terminated the step, if any.
	Signal  string
	Package string
}

func (e *StepError) Error() string {
	return fmt.Sprintf(messages.InstallStepFailedFmt, e.Step, e.Command, e.ExitCode)
}
