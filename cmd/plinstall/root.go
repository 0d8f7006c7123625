package main

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/conn-castle/plinstall/internal/config"
	"github.com/conn-castle/plinstall/internal/install"
	"github.com/conn-castle/plinstall/internal/messages"
	"github.com/conn-castle/plinstall/internal/terminal"
)

// configSourceFlags names the command line in config validation errors.
const configSourceFlags = "command line"

var installRun = install.Run
var newSystem = func() install.System { return install.RealSystem{} }

type rootFlags struct {
	configPath string
	perl       string
	make       string
	color      string
	logPath    string
	tty        bool
	dryRun     bool
	verbose    bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		Long:          messages.RootLong,
		Example:       messages.RootExample,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sys := newSystem()
			// Argument problems are reported before anything in the config file.
			if _, err := install.ResolvePaths(sys, args[0], args[1]); err != nil {
				return err
			}
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			stdout := cmd.OutOrStdout()
			stderr := cmd.ErrOrStderr()

			logger := log.NewWithOptions(stderr, log.Options{Prefix: "plinstall"})
			if flags.verbose {
				logger.SetLevel(log.DebugLevel)
			}
			logger.Debug(messages.VerboseConfigMsg,
				"perl", cfg.Toolchain.Perl,
				"make", cfg.Toolchain.Make,
				"color", cfg.Output.Color)

			return installRun(cmd.Context(), args[0], args[1], install.Options{
				Perl: cfg.Toolchain.Perl,
				Make: cfg.Toolchain.Make,
				Env: install.EnvOptions{
					ExportPID:    cfg.Env.ExportPID,
					ExportScript: cfg.Env.ExportScript,
					PerlCore:     cfg.Env.PerlCore,
					Extra:        cfg.Env.Extra,
				},
				Color:   terminal.ColorEnabled(cfg.Output.Color, stdout),
				TTY:     flags.tty,
				DryRun:  flags.dryRun,
				LogPath: flags.logPath,
				Stdout:  stdout,
				Stderr:  stderr,
				Logger:  logger,
				System:  sys,
			})
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &install.UsageError{Message: err.Error()}
	})

	f := cmd.Flags()
	f.StringVar(&flags.configPath, "config", "", messages.FlagConfig)
	f.StringVar(&flags.perl, "perl", config.DefaultPerl, messages.FlagPerl)
	f.StringVar(&flags.make, "make", config.DefaultMake, messages.FlagMake)
	f.StringVar(&flags.color, "color", config.ColorAuto, messages.FlagColor)
	f.StringVar(&flags.logPath, "log", "", messages.FlagLog)
	f.BoolVar(&flags.tty, "tty", false, messages.FlagTTY)
	f.BoolVar(&flags.dryRun, "dry-run", false, messages.FlagDryRun)
	f.BoolVarP(&flags.verbose, "verbose", "v", false, messages.FlagVerbose)
	f.Bool("version", false, messages.RootVersionFlag)
	return cmd
}

// exactArgs is cobra.ExactArgs returning a *install.UsageError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		if len(args) != n {
			return &install.UsageError{Message: fmt.Sprintf(messages.UsageArgCountFmt, len(args))}
		}
		return nil
	}
}

// loadConfig reads the config file and applies explicitly set flags over it.
// An explicit --config must exist; the default location is optional.
func loadConfig(cmd *cobra.Command, flags rootFlags) (*config.Config, error) {
	var cfg *config.Config
	var err error
	if cmd.Flags().Changed("config") {
		cfg, err = config.LoadConfig(flags.configPath)
	} else {
		var path string
		path, err = config.DefaultPath()
		if err != nil {
			return nil, err
		}
		cfg, err = config.LoadConfigOptional(path)
	}
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("perl") {
		cfg.Toolchain.Perl = flags.perl
	}
	if changed("make") {
		cfg.Toolchain.Make = flags.make
	}
	if changed("color") {
		cfg.Output.Color = flags.color
	}
	if err := cfg.Validate(configSourceFlags); err != nil {
		return nil, fmt.Errorf("%w: %w", config.ErrConfigValidation, err)
	}
	return cfg, nil
}
