package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/frontkit/js-imports-order/pkg/config"
	errs "github.com/frontkit/js-imports-order/pkg/errors"
	"github.com/frontkit/js-imports-order/pkg/lint"
	"github.com/frontkit/js-imports-order/pkg/report"
	"github.com/frontkit/js-imports-order/pkg/watch"
)

const (
	UseDescription   = "jio [flags] PATH"
	ShortDescription = "JavaScript import order - a linter that sorts import statements"
	LongDescription  = `jio is a command-line tool that checks and fixes the order of JavaScript
import statements.

Imports are grouped by module category (file-relative paths vs. package
names), ordered alphabetically within a group, with the groups themselves
placed by reverse-alphabetical comparison. Violations are reported with an
automatic rewrite available via --fix.

PATH can be either a single JavaScript file or a directory. When a directory
is specified, all JavaScript sources in the directory and subdirectories
(excluding node_modules) are processed recursively.

Configuration is read from jio.yaml, jio.yml or .jio.yaml, discovered
upward from PATH; command-line flags take priority.`
)

var (
	cfgFile     string
	fixMode     bool
	noColor     bool
	watchMode   bool
	verbose     bool
	showVersion bool
	versionStr  string
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to a config file (default: discovered jio.yaml)")
	rootCmd.PersistentFlags().BoolVar(&fixMode, "fix", false, "Rewrite files in place instead of only reporting")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&watchMode, "watch", false, "Keep running and re-lint on file changes")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version information")
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if showVersion {
		return nil
	}
	return cobra.ExactArgs(1)(cmd, args)
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		fmt.Printf("JavaScript Import Order (jio) version %s\n", versionStr)
		return nil
	}

	path := args[0]

	cfg, err := config.Load(cfgFile, path, cmd.Flags())
	if err != nil {
		return err
	}
	if noColor {
		cfg.Color = false
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	runner := lint.New(logger, cfg.Fix, cfg.Extensions, cfg.Exclude)
	printer := report.NewPrinter(cmd.OutOrStdout(), cfg.Color)

	ctx := cmd.Context()
	pass := func() (int, error) {
		results, err := runner.RunPath(ctx, path)
		if err != nil {
			return 0, err
		}
		printer.Results(results)
		return lint.Problems(results), nil
	}

	problems, err := pass()
	if err != nil {
		return err
	}

	if cfg.Watch {
		fmt.Fprintf(cmd.ErrOrStderr(), errs.InfoMsgWatching+"\n", path)
		return watch.Run(ctx, path, cfg.Extensions, logger, func() {
			if _, err := pass(); err != nil {
				logger.Warn("lint pass failed", "err", err)
			}
		})
	}

	if problems > 0 {
		return fmt.Errorf(errs.ErrMsgProblemsFound, problems)
	}
	return nil
}

func Execute(version string) error {
	versionStr = version
	return rootCmd.Execute()
}
