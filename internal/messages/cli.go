package messages

// CLI messages for the root command, its flags, and exit handling.
const (
	// RootUse is the command line synopsis.
	RootUse = "plinstall <local_repository_dir> <build_descriptor_file>"
	// RootShort is the short description for the root command.
	RootShort = "Install a Perl module into a local repository"
	RootLong  = `plinstall builds and installs a Perl module from an unpacked source tree into
a non-default prefix. It runs, in the directory holding the build descriptor:

  perl Makefile.PL PREFIX=... INSTALLPRIVLIB=... (seven install-path overrides)
  make
  make test
  make install

and stops at the first step that exits non-zero, exiting with that status.`
	RootVersionFlag = "Print version and exit"
	RootExample     = `  plinstall ~/perl5 ./Foo-Bar-1.02/Makefile.PL
  plinstall --dry-run /opt/perl-local /src/Foo-Bar-1.02/Makefile.PL`

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	FlagConfig  = "Path to a TOML config file (default ~/.config/plinstall/config.toml)"
	FlagPerl    = "Perl interpreter used to run the build descriptor"
	FlagMake    = "Make program used for the build, test and install steps"
	FlagColor   = "Highlight significant output lines: auto, always or never"
	FlagLog     = "Also write the raw output of every step to this file"
	FlagTTY     = "Run each step on a pseudo-terminal"
	FlagDryRun  = "Validate arguments and print the steps without running them"
	FlagVerbose = "Log each step's command, directory and environment to stderr"

	// UsageArgCountFmt reports a wrong number of positional arguments.
	UsageArgCountFmt = "expected 2 arguments, got %d"
	UsageTextFmt     = "Usage: %s\n\n  local_repository_dir   existing directory to install into\n  build_descriptor_file  existing Makefile.PL of the module to install\n"

	ErrorPrefixFmt = "Error: %v\n"

	// VerboseStepMsg is the debug log message emitted before each step.
	VerboseStepMsg     = "running step"
	VerboseEnvMsg      = "exported"
	VerboseParamsMsg   = "target parameters"
	VerboseStepDoneMsg = "step finished"
	VerboseConfigMsg   = "loaded config"
)
