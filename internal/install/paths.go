package install

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"github.com/conn-castle/plinstall/internal/messages"
)

// Paths are the canonical locations the install runs against.
type Paths struct {
	// Repository is the local repository the module is installed into.
	Repository string
	// Descriptor is the Makefile.PL of the module.
	Descriptor string
	// WorkDir is the directory holding Descriptor; every step runs there.
	WorkDir string
	// DescriptorName is the base name of Descriptor, used relative to WorkDir.
	DescriptorName string
}

// ResolvePaths validates both arguments and returns their canonical forms.
// A missing repository or descriptor is a *UsageError.
func ResolvePaths(sys System, repositoryArg string, descriptorArg string) (Paths, error) {
	repo, info, err := canonicalize(sys, repositoryArg)
	if errors.Is(err, os.ErrNotExist) {
		return Paths{}, &UsageError{Message: fmt.Sprintf(messages.InstallRepositoryMissingFmt, repositoryArg)}
	}
	if err != nil {
		return Paths{}, err
	}
	if !info.IsDir() {
		return Paths{}, &UsageError{Message: fmt.Sprintf(messages.InstallRepositoryNotDirFmt, repositoryArg)}
	}

	descriptor, info, err := canonicalize(sys, descriptorArg)
	if errors.Is(err, os.ErrNotExist) {
		return Paths{}, &UsageError{Message: fmt.Sprintf(messages.InstallDescriptorMissingFmt, descriptorArg)}
	}
	if err != nil {
		return Paths{}, err
	}
	if info.IsDir() {
		return Paths{}, &UsageError{Message: fmt.Sprintf(messages.InstallDescriptorIsDirFmt, descriptorArg)}
	}

	return Paths{
		Repository:     repo,
		Descriptor:     descriptor,
		WorkDir:        filepath.Dir(descriptor),
		DescriptorName: filepath.Base(descriptor),
	}, nil
}

// canonicalize expands a leading ~, makes path absolute, and resolves symlinks.
// Errors for missing paths wrap os.ErrNotExist.
func canonicalize(sys System, path string) (string, os.FileInfo, error) {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return "", nil, fmt.Errorf(messages.InstallExpandPathFmt, path, err)
	}
	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", nil, fmt.Errorf(messages.InstallResolvePathFmt, path, err)
	}
	info, err := sys.Stat(abs)
	if err != nil {
		return "", nil, err
	}
	resolved, err := sys.EvalSymlinks(abs)
	if err != nil {
		return "", nil, fmt.Errorf(messages.InstallResolvePathFmt, path, err)
	}
	return resolved, info, nil
}
