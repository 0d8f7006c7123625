package install

import (
	"strings"

	"github.com/conn-castle/plinstall/internal/target"
)

// Step names, in execution order.
const (
	StepConfigure = "configure"
	StepBuild     = "build"
	StepTest      = "test"
	StepInstall   = "install"
)

// Step is one external command of the install pipeline.
type Step struct {
	Name    string
	Program string
	Args    []string
}

// CommandLine renders the step for display.
func (s Step) CommandLine() string {
	return strings.Join(append([]string{s.Program}, s.Args...), " ")
}

// Steps returns the four MakeMaker steps: generate the Makefile with the
// install-path overrides, then make, make test, and make install.
func Steps(perl string, makeProgram string, descriptorName string, params target.Params) []Step {
	return []Step{
		{Name: StepConfigure, Program: perl, Args: append([]string{descriptorName}, params.Args()...)},
		{Name: StepBuild, Program: makeProgram},
		{Name: StepTest, Program: makeProgram, Args: []string{"test"}},
		{Name: StepInstall, Program: makeProgram, Args: []string{"install"}},
	}
}
