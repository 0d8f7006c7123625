package install

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/creack/pty"

	"github.com/conn-castle/plinstall/internal/messages"
)

// Exit statuses for steps that never ran, following the shell convention.
const (
	statusNotFound      = 127
	statusNotExecutable = 126
)

// stepResult is the outcome of one step.
type stepResult struct {
	ExitCode int
	Signal   string
	// StartErr is set when the program could not be started.
	StartErr error
	// OutputErr is the first error writing the step's output. The child's
	// status is still read independently of it.
	OutputErr error
}

// outputGuard forwards writes until the first error and then discards the
// rest, so a broken sink neither blocks the child nor kills it with SIGPIPE.
type outputGuard struct {
	w   io.Writer
	err error
}

func (g *outputGuard) Write(p []byte) (int, error) {
	if g.err == nil {
		if _, err := g.w.Write(p); err != nil {
			g.err = err
		}
	}
	return len(p), nil
}

// runStep runs step in dir with stdout and stderr both connected to out and
// waits for it. The exit status is read from the child process itself.
func runStep(ctx context.Context, step Step, dir string, env []string, out io.Writer, tty bool) stepResult {
	cmd := exec.CommandContext(ctx, step.Program, step.Args...)
	cmd.Dir = dir
	cmd.Env = env

	guard := &outputGuard{w: out}
	var err error
	if tty {
		err = runOnPTY(cmd, guard)
	} else {
		cmd.Stdout = guard
		cmd.Stderr = guard
		err = cmd.Run()
	}
	result := resultFromError(cmd, err)
	result.OutputErr = guard.err
	return result
}

// runOnPTY starts cmd on a pseudo-terminal and copies everything it prints to out.
func runOnPTY(cmd *exec.Cmd, out io.Writer) error {
	f, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf(messages.InstallStartPTYFmt, cmd.Path, err)
	}
	defer func() { _ = f.Close() }()
	// Reading the master returns EIO once the child side is closed.
	_, _ = io.Copy(out, f)
	return cmd.Wait()
}

func resultFromError(cmd *exec.Cmd, err error) stepResult {
	if err == nil {
		return stepResult{}
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code, sig, ok := signalStatus(exitErr.ProcessState); ok {
			return stepResult{ExitCode: code, Signal: sig}
		}
		code := exitErr.ExitCode()
		if code <= 0 {
			code = 1
		}
		return stepResult{ExitCode: code}
	}
	if cmd.ProcessState != nil {
		// Started and finished but the output copy failed; trust the child.
		if code := cmd.ProcessState.ExitCode(); code > 0 {
			return stepResult{ExitCode: code}
		}
		return stepResult{}
	}
	code := statusNotExecutable
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		code = statusNotFound
	}
	return stepResult{ExitCode: code, StartErr: err}
}
