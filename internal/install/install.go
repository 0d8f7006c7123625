// Package install runs the MakeMaker configure, build, test and install steps
// for one module against a local repository, stopping at the first failure.
package install

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/conn-castle/plinstall/internal/config"
	"github.com/conn-castle/plinstall/internal/descriptor"
	"github.com/conn-castle/plinstall/internal/highlight"
	"github.com/conn-castle/plinstall/internal/messages"
	"github.com/conn-castle/plinstall/internal/target"
)

// Options controls installer behavior.
type Options struct {
	// Perl runs the build descriptor; defaults to config.DefaultPerl.
	Perl string
	// Make runs the build, test and install steps; defaults to config.DefaultMake.
	Make string
	Env  EnvOptions
	// Color wraps significant lines and the installer's own banners in colour.
	Color bool
	// TTY runs each step on a pseudo-terminal.
	TTY bool
	// DryRun validates and prints the plan without starting any process.
	DryRun bool
	// LogPath, when set, receives the raw output of every step.
	LogPath string
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *log.Logger
	System  System
}

// Run installs the module whose Makefile.PL is descriptorArg into repositoryArg.
// It returns a *UsageError for invalid arguments and a *StepError, after
// printing the failure block, when a step exits non-zero.
func Run(ctx context.Context, repositoryArg string, descriptorArg string, opts Options) error {
	sys := opts.System
	if sys == nil {
		return fmt.Errorf(messages.InstallSystemRequired)
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	perl := opts.Perl
	if perl == "" {
		perl = config.DefaultPerl
	}
	makeProgram := opts.Make
	if makeProgram == "" {
		makeProgram = config.DefaultMake
	}
	report := newReporter(stdout, stderr, opts.Color)

	paths, err := ResolvePaths(sys, repositoryArg, descriptorArg)
	if err != nil {
		return err
	}
	pkg := readPackageName(sys, paths.Descriptor, report)
	params := target.New(paths.Repository)
	vars, err := buildEnv(sys, opts.Env)
	if err != nil {
		return err
	}
	steps := Steps(perl, makeProgram, paths.DescriptorName, params)

	if opts.DryRun {
		report.dryRun(pkg, paths, vars, steps)
		return nil
	}

	if err := applyEnv(sys, vars); err != nil {
		return err
	}
	for _, v := range vars {
		logger.Debug(messages.VerboseEnvMsg, "key", v.Key, "value", v.Value)
	}
	logger.Debug(messages.VerboseParamsMsg, "package", pkg, "params", params.Blob())

	hl := highlight.NewWriter(stdout, opts.Color)
	var out io.Writer = hl
	if opts.LogPath != "" {
		logFile, err := sys.Create(opts.LogPath)
		if err != nil {
			return fmt.Errorf(messages.InstallOpenLogFmt, opts.LogPath, err)
		}
		defer func() { _ = logFile.Close() }()
		out = io.MultiWriter(hl, logFile)
	}

	env := sys.Environ()
	for _, step := range steps {
		report.stepHeader(step)
		logger.Debug(messages.VerboseStepMsg, "step", step.Name, "dir", paths.WorkDir, "argv", step.CommandLine())

		result := runStep(ctx, step, paths.WorkDir, env, out, opts.TTY)
		if result.StartErr != nil {
			_, _ = fmt.Fprintln(out, result.StartErr)
		}
		_ = hl.EndLine()
		logger.Debug(messages.VerboseStepDoneMsg,
			"step", step.Name,
			"status", result.ExitCode,
			"errors", hl.Count(highlight.LevelError),
			"warnings", hl.Count(highlight.LevelWarn))
		if result.ExitCode == 0 {
			if result.OutputErr != nil {
				return fmt.Errorf(messages.InstallWriteOutputFmt, step.Name, result.OutputErr)
			}
			continue
		}

		stepErr := &StepError{
			Step:     step.Name,
			Command:  step.CommandLine(),
			ExitCode: result.ExitCode,
			Signal:   result.Signal,
			Package:  pkg,
		}
		report.failure(stepErr, paths, params)
		return stepErr
	}

	report.success(pkg, paths, params)
	return nil
}

// readPackageName extracts the display name from the descriptor. A read
// failure is reported as a warning and yields "".
func readPackageName(sys System, path string, report *reporter) string {
	data, err := sys.ReadFile(path)
	if err != nil {
		report.warnf(messages.InstallDescriptorUnreadableFmt, path, err)
		return ""
	}
	name, err := descriptor.PackageName(bytes.NewReader(data))
	if err != nil {
		report.warnf(messages.InstallDescriptorUnreadableFmt, path, err)
	}
	return name
}
