package config

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/conn-castle/plinstall/internal/messages"
)

// EnvUseDefault is the MakeMaker switch that answers every prompt with its default.
const EnvUseDefault = "PERL_MM_USE_DEFAULT"

var validColorModes = map[string]struct{}{
	ColorAuto:   {},
	ColorAlways: {},
	ColorNever:  {},
}

var envNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate ensures the config is complete and consistent.
func (c *Config) Validate(path string) error {
	if _, ok := validColorModes[c.Output.Color]; !ok {
		return fmt.Errorf(messages.ConfigColorModeInvalidFmt, path, c.Output.Color)
	}
	if strings.TrimSpace(c.Toolchain.Perl) == "" {
		return fmt.Errorf(messages.ConfigToolchainEmptyFmt, path, "perl")
	}
	if strings.TrimSpace(c.Toolchain.Make) == "" {
		return fmt.Errorf(messages.ConfigToolchainEmptyFmt, path, "make")
	}

	keys := make([]string, 0, len(c.Env.Extra))
	for key := range c.Env.Extra {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if key == "" {
			return fmt.Errorf(messages.ConfigEnvExtraKeyEmptyFmt, path)
		}
		if !envNamePattern.MatchString(key) {
			return fmt.Errorf(messages.ConfigEnvExtraKeyInvalidFmt, path, key)
		}
		if key == EnvUseDefault {
			return fmt.Errorf(messages.ConfigEnvExtraReservedFmt, path, EnvUseDefault)
		}
	}
	return nil
}
