package install

import (
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"testing"

	"github.com/conn-castle/plinstall/internal/testutil"
)

// faultSystem is a test helper that allows deterministic error injection for the
// installer System interface, and records exported variables instead of
// changing the test process environment.
type faultSystem struct {
	base       System
	statErrs   map[string]error
	readErrs   map[string]error
	createErrs map[string]error
	writeErrs  map[string]error
	setenvErr  error
	exeErr     error
	env        map[string]string
}

func newFaultSystem(base System) *faultSystem {
	return &faultSystem{
		base:       base,
		statErrs:   map[string]error{},
		readErrs:   map[string]error{},
		createErrs: map[string]error{},
		writeErrs:  map[string]error{},
		env:        map[string]string{},
	}
}

func normalizePath(path string) string {
	return filepath.Clean(path)
}

func (f *faultSystem) Stat(name string) (os.FileInfo, error) {
	if err, ok := f.statErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.Stat(name)
}

func (f *faultSystem) ReadFile(name string) ([]byte, error) {
	if err, ok := f.readErrs[normalizePath(name)]; ok {
		return nil, err
	}
	return f.base.ReadFile(name)
}

func (f *faultSystem) EvalSymlinks(path string) (string, error) {
	return f.base.EvalSymlinks(path)
}

func (f *faultSystem) Setenv(key string, value string) error {
	if f.setenvErr != nil {
		return f.setenvErr
	}
	f.env[key] = value
	return nil
}

func (f *faultSystem) Environ() []string {
	env := f.base.Environ()
	keys := make([]string, 0, len(f.env))
	for key := range f.env {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		env = append(env, key+"="+f.env[key])
	}
	return env
}

func (f *faultSystem) Getpid() int {
	return 4242
}

func (f *faultSystem) Executable() (string, error) {
	if f.exeErr != nil {
		return "", f.exeErr
	}
	return "/usr/local/bin/plinstall", nil
}

func (f *faultSystem) Create(name string) (io.WriteCloser, error) {
	if err, ok := f.createErrs[normalizePath(name)]; ok {
		return nil, err
	}
	if err, ok := f.writeErrs[normalizePath(name)]; ok {
		return failingWriter{err: err}, nil
	}
	return f.base.Create(name)
}

// failingWriter rejects every write, like a file on a full disk.
type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func (w failingWriter) Close() error { return nil }

const fooBarDescriptor = `use ExtUtils::MakeMaker;
WriteMakefile(
    NAME         => 'Foo::Bar',
    VERSION_FROM => 'lib/Foo/Bar.pm',
);
`

// fixture is a module source tree, an empty local repository, and stub
// perl/make programs that append their invocations to calls.
type fixture struct {
	repo       string
	srcDir     string
	descriptor string
	binDir     string
	calls      string
	perl       string
	make       string
	sys        *faultSystem
}

// newFixture writes stubs whose behaviour is given as shell fragments run
// after the invocation is recorded.
func newFixture(t *testing.T, perlBody string, makeBody string) *fixture {
	t.Helper()
	f := &fixture{
		repo:   t.TempDir(),
		srcDir: t.TempDir(),
		binDir: t.TempDir(),
		sys:    newFaultSystem(RealSystem{}),
	}
	f.descriptor = filepath.Join(f.srcDir, "Makefile.PL")
	if err := os.WriteFile(f.descriptor, []byte(fooBarDescriptor), 0o644); err != nil {
		t.Fatalf("write descriptor: %v", err)
	}
	f.calls = filepath.Join(f.binDir, "calls.log")
	record := testutil.RecordInvocation(f.calls, EnvUseDefault, EnvPID, EnvPerlCore, "PLI_EXTRA")
	f.perl = testutil.WriteScript(t, f.binDir, "perl", record+perlBody)
	f.make = testutil.WriteScript(t, f.binDir, "make", record+makeBody)
	return f
}

// okMake mimics a passing MakeMaker build.
const okMake = `case "$1" in
  "") echo "cp lib/Foo/Bar.pm blib/lib/Foo/Bar.pm" ;;
  test) echo "t/basic.t .. ok"; echo "All tests successful."; echo "Result: PASS" ;;
  install) echo "Installing $(pwd -P)" ;;
esac
`

const okPerl = `echo "Checking if your kit is complete..."
echo "Writing Makefile for Foo::Bar"
`

func (f *fixture) options() Options {
	return Options{
		Perl:   f.perl,
		Make:   f.make,
		System: f.sys,
	}
}

func canonical(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		t.Fatalf("eval symlinks %s: %v", path, err)
	}
	return resolved
}

var ansiPattern = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}
