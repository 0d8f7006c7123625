package messages

// Install messages for argument validation, the build steps, and their outcome.
const (
	// InstallRepositoryMissingFmt reports a local repository that does not exist.
	InstallRepositoryMissingFmt    = "local repository %s does not exist"
	InstallRepositoryNotDirFmt     = "local repository %s is not a directory"
	InstallDescriptorMissingFmt    = "build descriptor %s does not exist"
	InstallDescriptorIsDirFmt      = "build descriptor %s is a directory"
	InstallExpandPathFmt           = "expand %s: %w"
	InstallResolvePathFmt          = "resolve %s: %w"
	InstallSystemRequired          = "install system is required"
	InstallSetEnvFmt               = "set %s: %w"
	InstallResolveExecutableFmt    = "resolve driver executable: %w"
	InstallOpenLogFmt              = "open log file %s: %w"
	InstallStartPTYFmt             = "start %s on a pseudo-terminal: %w"
	InstallDescriptorUnreadableFmt = "Warning: cannot read %s, package name unknown: %v\n"
	InstallStepFailedFmt           = "%s step failed: %s exited with status %d"
	InstallWriteOutputFmt          = "write output of %s step: %w"

	// InstallStepHeaderFmt introduces a step's output.
	InstallStepHeaderFmt = "==> %s: %s\n"

	InstallSeparator = "================================================================"

	InstallFailureTitle       = "INSTALLATION FAILED"
	InstallFailureCommandFmt  = "  command:     %s\n"
	InstallFailureStepFmt     = "  step:        %s\n"
	InstallFailureStatusFmt   = "  exit status: %d\n"
	InstallFailureSignalFmt   = "  signal:      %s\n"
	InstallFailurePackageFmt  = "  package:     %q\n"
	InstallFailureDirFmt      = "  directory:   %s\n"
	InstallHintsHeader        = "Possible causes:"
	InstallHintDependencies   = "  - missing prerequisites: look for \"Warning: prerequisite ... not found\" or \"Can't locate ... in @INC\" above and install them first"
	InstallHintPermissionsFmt = "  - permission problems: make sure you can write to %s"
	InstallHintLibPathFmt     = "  - modules already installed there are not visible: export PERL5LIB=%s"

	InstallSuccessTitleFmt = "Successfully installed %q into %s"
	InstallSuccessLibFmt   = "To use it, add the library directories to PERL5LIB:\n  export PERL5LIB=%s${PERL5LIB:+:$PERL5LIB}\n"

	InstallDryRunHeader     = "Dry run, nothing will be executed."
	InstallDryRunDirFmt     = "  work dir: %s\n"
	InstallDryRunPackageFmt = "  package:  %q\n"
	InstallDryRunEnvFmt     = "  env:      %s=%s\n"
	InstallDryRunStepFmt    = "  %d. %-9s %s\n"
)
