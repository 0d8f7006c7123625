package install

import (
	"io"
	"os"
	"path/filepath"
)

// System abstracts the OS operations needed by the installer so tests can
// observe environment changes without mutating the test process.
type System interface {
	Stat(name string) (os.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	EvalSymlinks(path string) (string, error)
	Setenv(key string, value string) error
	Environ() []string
	Getpid() int
	Executable() (string, error)
	Create(name string) (io.WriteCloser, error)
}

// RealSystem implements System using the OS.
type RealSystem struct{}

// Stat returns a FileInfo describing the named file.
func (RealSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile reads the named file and returns the contents.
func (RealSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// EvalSymlinks returns path with all symbolic links resolved.
func (RealSystem) EvalSymlinks(path string) (string, error) {
	return filepath.EvalSymlinks(path)
}

// Setenv sets an environment variable of the current process, and therefore
// of every child started afterwards.
func (RealSystem) Setenv(key string, value string) error {
	return os.Setenv(key, value)
}

// Environ returns a copy of strings representing the environment.
func (RealSystem) Environ() []string {
	return os.Environ()
}

// Getpid returns the process id of the caller.
func (RealSystem) Getpid() int {
	return os.Getpid()
}

// Executable returns the path of the running executable.
func (RealSystem) Executable() (string, error) {
	return os.Executable()
}

// Create creates or truncates the named file.
func (RealSystem) Create(name string) (io.WriteCloser, error) {
	return os.Create(name)
}
