// Package config loads the optional plinstall TOML config file.
package config

// Output colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default toolchain binaries, resolved through PATH.
const (
	DefaultPerl = "perl"
	DefaultMake = "make"
)

// Config is the decoded config file.
type Config struct {
	Toolchain ToolchainConfig `toml:"toolchain"`
	Output    OutputConfig    `toml:"output"`
	Env       EnvConfig       `toml:"env"`
}

// ToolchainConfig names the programs that run the build steps.
type ToolchainConfig struct {
	Perl string `toml:"perl"`
	Make string `toml:"make"`
}

// OutputConfig controls how step output is presented.
type OutputConfig struct {
	Color string `toml:"color"`
}

// EnvConfig selects the optional variables exported to every step.
// PERL_MM_USE_DEFAULT is always exported and is not configurable.
type EnvConfig struct {
	ExportPID    bool              `toml:"export_pid"`
	ExportScript bool              `toml:"export_script"`
	PerlCore     bool              `toml:"perl_core"`
	Extra        map[string]string `toml:"extra"`
}

// Default returns the config used when no file is present.
func Default() *Config {
	return &Config{
		Toolchain: ToolchainConfig{
			Perl: DefaultPerl,
			Make: DefaultMake,
		},
		Output: OutputConfig{
			Color: ColorAuto,
		},
	}
}
