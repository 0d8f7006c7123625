package messages

// Config messages for loading and validating the optional TOML config file.
const (
	// ConfigMissingFileFmt formats missing config file errors.
	ConfigMissingFileFmt        = "missing config file %s: %w"
	ConfigReadFileFmt           = "read config file %s: %w"
	ConfigInvalidConfigFmt      = "invalid config %s: %w"
	ConfigUnrecognizedKeysFmt   = "%s: unrecognized config keys: %v"
	ConfigValidationGuidance    = "(see the [toolchain], [output] and [env] sections in the plinstall documentation)"
	ConfigResolveHomeFmt        = "resolve home dir: %w"
	ConfigColorModeInvalidFmt   = "%s: output.color must be one of auto, always, never (got %q)"
	ConfigToolchainEmptyFmt     = "%s: toolchain.%s must not be empty"
	ConfigEnvExtraKeyEmptyFmt   = "%s: env.extra contains an empty variable name"
	ConfigEnvExtraKeyInvalidFmt = "%s: env.extra key %q is not a valid environment variable name"
	ConfigEnvExtraReservedFmt   = "%s: env.extra must not set %s"
)
