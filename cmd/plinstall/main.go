package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/conn-castle/plinstall/internal/install"
	"github.com/conn-castle/plinstall/internal/messages"
)

var executeFunc = execute

// Version, Commit, and BuildDate are overridden at build time.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

func main() {
	runMain(os.Args, os.Stdout, os.Stderr, os.Exit)
}

// execute runs the CLI command with the provided args and output writers.
// An interrupt cancels the running build step.
func execute(args []string, stdout io.Writer, stderr io.Writer) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd()
	cmd.Version = versionString()
	cmd.SetVersionTemplate(messages.VersionTemplate)
	if len(args) > 1 {
		cmd.SetArgs(args[1:])
	} else {
		cmd.SetArgs([]string{})
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.ExecuteContext(ctx)
}

// runMain executes the CLI and maps its error to a process exit code:
// 1 with usage text for invalid arguments, the step's own status when a build
// step fails, and 1 for anything else.
func runMain(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) {
	err := executeFunc(args, stdout, stderr)
	if err == nil {
		return
	}
	var usageErr *install.UsageError
	if errors.As(err, &usageErr) {
		_, _ = fmt.Fprintf(stderr, messages.ErrorPrefixFmt, usageErr)
		_, _ = fmt.Fprintf(stderr, messages.UsageTextFmt, messages.RootUse)
		exit(1)
		return
	}
	var stepErr *install.StepError
	if errors.As(err, &stepErr) {
		// The failure block has already been printed.
		exit(exitCode(stepErr.ExitCode))
		return
	}
	_, _ = fmt.Fprintf(stderr, messages.ErrorPrefixFmt, err)
	exit(1)
}

func exitCode(code int) int {
	if code <= 0 {
		return 1
	}
	return code
}

// versionString formats Version with optional commit and build date metadata.
func versionString() string {
	meta := []string{}
	if Commit != "" && Commit != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionCommitFmt, Commit))
	}
	if BuildDate != "" && BuildDate != "unknown" {
		meta = append(meta, fmt.Sprintf(messages.VersionBuildFmt, BuildDate))
	}
	if len(meta) == 0 {
		return Version
	}
	return fmt.Sprintf(messages.VersionFullFmt, Version, strings.Join(meta, ", "))
}
