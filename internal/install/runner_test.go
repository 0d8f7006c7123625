package install

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/creack/pty"
	"github.com/stretchr/testify/require"

	"github.com/conn-castle/plinstall/internal/testutil"
)

func TestRunStepCombinesOutput(t *testing.T) {
	dir := t.TempDir()
	script := testutil.WriteScript(t, dir, "both", "echo out\necho err >&2\necho again\n")

	var out bytes.Buffer
	result := runStep(context.Background(), Step{Name: StepBuild, Program: script}, dir, nil, &out, false)
	require.Equal(t, stepResult{}, result)
	require.Equal(t, "out\nerr\nagain\n", out.String())
}

func TestRunStepExitStatus(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		code   int
		signal string
	}{
		{name: "success", body: "exit 0\n"},
		{name: "plain failure", body: "exit 7\n", code: 7},
		{name: "high status", body: "exit 255\n", code: 255},
		{name: "killed", body: "kill -KILL $$\n", code: 137, signal: "SIGKILL"},
		{name: "terminated", body: "kill -TERM $$\n", code: 143, signal: "SIGTERM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			script := testutil.WriteScript(t, dir, "step", tt.body)
			result := runStep(context.Background(), Step{Name: StepTest, Program: script}, dir, nil, &bytes.Buffer{}, false)
			require.Equal(t, tt.code, result.ExitCode)
			require.Equal(t, tt.signal, result.Signal)
			require.NoError(t, result.StartErr)
		})
	}
}

func TestRunStepStartFailures(t *testing.T) {
	dir := t.TempDir()

	result := runStep(context.Background(), Step{Program: filepath.Join(dir, "absent")}, dir, nil, &bytes.Buffer{}, false)
	require.Equal(t, statusNotFound, result.ExitCode)
	require.Error(t, result.StartErr)

	result = runStep(context.Background(), Step{Program: "plinstall-no-such-program"}, dir, nil, &bytes.Buffer{}, false)
	require.Equal(t, statusNotFound, result.ExitCode)

	result = runStep(context.Background(), Step{Program: dir}, dir, nil, &bytes.Buffer{}, false)
	require.Equal(t, statusNotExecutable, result.ExitCode)
}

func TestRunStepPassesEnvAndDir(t *testing.T) {
	dir := t.TempDir()
	script := testutil.WriteScript(t, t.TempDir(), "show", "pwd -P\necho \"$PLI_EXTRA\"\n")

	var out bytes.Buffer
	result := runStep(context.Background(), Step{Program: script}, dir, []string{"PLI_EXTRA=yes"}, &out, false)
	require.Zero(t, result.ExitCode)
	require.Equal(t, canonical(t, dir)+"\nyes\n", out.String())
}

func TestRunStepOnPTY(t *testing.T) {
	probe, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo-terminals unavailable: %v", err)
	}
	_ = probe.Close()
	_ = tty.Close()

	dir := t.TempDir()
	script := testutil.WriteScript(t, dir, "tty", "if [ -t 1 ]; then echo terminal; else echo pipe; fi\nexit 4\n")

	var out bytes.Buffer
	result := runStep(context.Background(), Step{Program: script}, dir, nil, &out, true)
	require.Equal(t, 4, result.ExitCode)
	require.Contains(t, out.String(), "terminal")
}

// chattyScript prints far more than a pipe or pty buffer holds.
const chattyScript = "i=0\nwhile [ $i -lt 20000 ]; do echo \"line $i\"; i=$((i+1)); done\nexit 0\n"

func TestRunStepBrokenOutputPipe(t *testing.T) {
	dir := t.TempDir()
	script := testutil.WriteScript(t, dir, "chatty", chattyScript)

	sink := failingWriter{err: errors.New("disk full")}
	result := runStep(context.Background(), Step{Program: script}, dir, nil, sink, false)
	require.Zero(t, result.ExitCode, "a broken sink must not kill the step")
	require.Empty(t, result.Signal)
	require.EqualError(t, result.OutputErr, "disk full")
}

func TestRunStepBrokenOutputPTY(t *testing.T) {
	probe, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pseudo-terminals unavailable: %v", err)
	}
	_ = probe.Close()
	_ = tty.Close()

	dir := t.TempDir()
	script := testutil.WriteScript(t, dir, "chatty", chattyScript)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	sink := failingWriter{err: errors.New("disk full")}
	result := runStep(ctx, Step{Program: script}, dir, nil, sink, true)
	require.NoError(t, ctx.Err(), "step must finish without being cancelled")
	require.Zero(t, result.ExitCode)
	require.EqualError(t, result.OutputErr, "disk full")
}

func TestOutputGuardStopsAfterFirstError(t *testing.T) {
	var calls int
	g := &outputGuard{w: writerFunc(func(p []byte) (int, error) {
		calls++
		return 0, errors.New("closed")
	})}
	for range 3 {
		n, err := g.Write([]byte("abc"))
		require.NoError(t, err)
		require.Equal(t, 3, n)
	}
	require.Equal(t, 1, calls)
	require.EqualError(t, g.err, "closed")
}

type writerFunc func([]byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }
