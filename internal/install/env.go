package install

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/conn-castle/plinstall/internal/config"
	"github.com/conn-castle/plinstall/internal/messages"
)

// Environment variables exported to every step.
const (
	EnvUseDefault = config.EnvUseDefault
	EnvPID        = "PLINSTALL_PID"
	EnvScript     = "PLINSTALL_SCRIPT"
	EnvPerlCore   = "PERL_CORE"
)

// EnvOptions selects the optional variables exported alongside PERL_MM_USE_DEFAULT.
type EnvOptions struct {
	ExportPID    bool
	ExportScript bool
	PerlCore     bool
	Extra        map[string]string
}

// EnvVar is a single exported variable.
type EnvVar struct {
	Key   string
	Value string
}

// buildEnv returns the variables to export, in a stable order: the mandatory
// non-interactive switch first, then the optional markers, then extras by name.
func buildEnv(sys System, opts EnvOptions) ([]EnvVar, error) {
	vars := []EnvVar{{Key: EnvUseDefault, Value: "1"}}
	if opts.ExportPID {
		vars = append(vars, EnvVar{Key: EnvPID, Value: strconv.Itoa(sys.Getpid())})
	}
	if opts.ExportScript {
		exe, err := sys.Executable()
		if err != nil {
			return nil, fmt.Errorf(messages.InstallResolveExecutableFmt, err)
		}
		vars = append(vars, EnvVar{Key: EnvScript, Value: exe})
	}
	if opts.PerlCore {
		vars = append(vars, EnvVar{Key: EnvPerlCore, Value: "1"})
	}

	keys := make([]string, 0, len(opts.Extra))
	for key := range opts.Extra {
		if key == EnvUseDefault {
			continue
		}
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		vars = append(vars, EnvVar{Key: key, Value: opts.Extra[key]})
	}
	return vars, nil
}

// applyEnv exports vars into the driver's own environment for the rest of
// the process lifetime.
func applyEnv(sys System, vars []EnvVar) error {
	for _, v := range vars {
		if err := sys.Setenv(v.Key, v.Value); err != nil {
			return fmt.Errorf(messages.InstallSetEnvFmt, v.Key, err)
		}
	}
	return nil
}
