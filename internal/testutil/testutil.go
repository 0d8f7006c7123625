// Package testutil writes fake toolchain executables for tests.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteScript writes an executable /bin/sh script with the given body and returns its path.
// t is the active test; dir is the output directory; name is the executable file name.
func WriteScript(t *testing.T, dir string, name string, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := "#!/bin/sh\n" + body
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o755); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

// WriteStubWithExit writes an executable stub that exits with the provided code.
func WriteStubWithExit(t *testing.T, dir string, name string, exitCode int) string {
	t.Helper()
	return WriteScript(t, dir, name, fmt.Sprintf("exit %d\n", exitCode))
}

// RecordInvocation returns a shell line that appends one record per run to logPath:
// the program name, its arguments, the physical working directory, and the
// value of each env var in vars.
func RecordInvocation(logPath string, vars ...string) string {
	var b strings.Builder
	b.WriteString(`printf '%s' "$(basename "$0")"; for a in "$@"; do printf ' %s' "$a"; done; printf ' @ %s' "$(pwd -P)"`)
	for _, v := range vars {
		fmt.Fprintf(&b, `; printf ' %s=%%s' "${%s-<unset>}"`, v, v)
	}
	b.WriteString("; printf '\\n'")
	return "{ " + b.String() + "; } >> '" + logPath + "'\n"
}

// ReadLines returns the non-empty lines of path, or nil when it does not exist.
func ReadLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
