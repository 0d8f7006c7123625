package install

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/conn-castle/plinstall/internal/messages"
	"github.com/conn-castle/plinstall/internal/target"
)

// reporter prints everything the installer itself says, as opposed to the
// pass-through output of the steps.
type reporter struct {
	stdout       io.Writer
	stderr       io.Writer
	header       *color.Color
	failed       *color.Color
	successColor *color.Color
	warn         *color.Color
}

func newReporter(stdout io.Writer, stderr io.Writer, colored bool) *reporter {
	r := &reporter{
		stdout:       stdout,
		stderr:       stderr,
		header:       color.New(color.FgCyan, color.Bold),
		failed:       color.New(color.FgRed, color.Bold),
		successColor: color.New(color.FgGreen, color.Bold),
		warn:         color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{r.header, r.failed, r.successColor, r.warn} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *reporter) warnf(format string, args ...any) {
	_, _ = r.warn.Fprintf(r.stderr, format, args...)
}

func (r *reporter) stepHeader(step Step) {
	_, _ = r.header.Fprintf(r.stdout, messages.InstallStepHeaderFmt, step.Name, step.CommandLine())
}

// failure prints the delimited error block for a failed step.
func (r *reporter) failure(stepErr *StepError, paths Paths, params target.Params) {
	out := r.stderr
	_, _ = fmt.Fprintln(out)
	_, _ = r.failed.Fprintln(out, messages.InstallSeparator)
	_, _ = r.failed.Fprintln(out, messages.InstallFailureTitle)
	_, _ = fmt.Fprintf(out, messages.InstallFailureCommandFmt, stepErr.Command)
	_, _ = fmt.Fprintf(out, messages.InstallFailureStepFmt, stepErr.Step)
	_, _ = fmt.Fprintf(out, messages.InstallFailureStatusFmt, stepErr.ExitCode)
	if stepErr.Signal != "" {
		_, _ = fmt.Fprintf(out, messages.InstallFailureSignalFmt, stepErr.Signal)
	}
	_, _ = fmt.Fprintf(out, messages.InstallFailurePackageFmt, stepErr.Package)
	_, _ = fmt.Fprintf(out, messages.InstallFailureDirFmt, paths.WorkDir)
	_, _ = fmt.Fprintln(out, messages.InstallHintsHeader)
	_, _ = fmt.Fprintln(out, messages.InstallHintDependencies)
	_, _ = fmt.Fprintf(out, messages.InstallHintPermissionsFmt+"\n", paths.Repository)
	_, _ = fmt.Fprintf(out, messages.InstallHintLibPathFmt+"\n", params.LibPath())
	_, _ = r.failed.Fprintln(out, messages.InstallSeparator)
}

// success prints the banner shown after all four steps exit 0.
func (r *reporter) success(pkg string, paths Paths, params target.Params) {
	out := r.stdout
	_, _ = fmt.Fprintln(out)
	_, _ = r.successColor.Fprintln(out, messages.InstallSeparator)
	_, _ = r.successColor.Fprintf(out, messages.InstallSuccessTitleFmt+"\n", pkg, paths.Repository)
	_, _ = r.successColor.Fprintln(out, messages.InstallSeparator)
	_, _ = fmt.Fprintf(out, messages.InstallSuccessLibFmt, params.LibPath())
}

func (r *reporter) dryRun(pkg string, paths Paths, vars []EnvVar, steps []Step) {
	out := r.stdout
	_, _ = r.header.Fprintln(out, messages.InstallDryRunHeader)
	_, _ = fmt.Fprintf(out, messages.InstallDryRunDirFmt, paths.WorkDir)
	_, _ = fmt.Fprintf(out, messages.InstallDryRunPackageFmt, pkg)
	for _, v := range vars {
		_, _ = fmt.Fprintf(out, messages.InstallDryRunEnvFmt, v.Key, v.Value)
	}
	for i, step := range steps {
		_, _ = fmt.Fprintf(out, messages.InstallDryRunStepFmt, i+1, step.Name, step.CommandLine())
	}
}
