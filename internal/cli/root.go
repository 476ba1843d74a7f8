// Package cli implements the cobra-based CLI commands for zoopage.
//
// Each subcommand (build, report) is defined in its own file within this
// package. This file defines the root command that serves as the parent
// for all subcommands and handles global flags. Running the root command
// without a subcommand is the same as "zoopage build" with the default
// paths.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmr-tortoise/zoopage/internal/config"
	"github.com/mmr-tortoise/zoopage/internal/site"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command.
var (
	// configPath points at an explicit YAML config file. Empty means
	// "use zoopage.yaml if it exists".
	configPath string

	// verbose lowers the log level to DEBUG.
	verbose bool

	// pathFlags holds per-file overrides. Empty fields fall back to the
	// config file and then to the built-in defaults.
	pathFlags config.Paths
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zoopage",
		Short: "Generate the animal facts page from a JSON data file",
		Long: `zoopage reads a list of animal records and renders them as HTML cards,
splicing the cards into a static template to produce the finished page.

With no subcommand it runs "build" using animals_data.json,
animals_template.html and animals.html in the current directory.`,

		Args: cobra.NoArgs,

		// Usage is noise for the errors this tool can return; Execute
		// prints them itself.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file (default: zoopage.yaml if present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&pathFlags.Data, "data", "", "Animal data file (JSON or YAML)")
	// The bare root command builds the page, so it takes the page flags
	// too. They are local, not persistent: "report" has no use for them.
	addPageFlags(rootCmd)

	rootCmd.AddCommand(NewBuildCommand())
	rootCmd.AddCommand(NewReportCommand())

	return rootCmd
}

// Execute runs the root command. Data and template problems are logged by
// the pipeline and never reach here; only CLI misuse (unknown flags, an
// unreadable --config file) produces a non-zero exit code.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolvePaths layers flags over the config file over the defaults.
func resolvePaths() (config.Paths, error) {
	paths, err := config.Load(configPath)
	if err != nil {
		return config.Paths{}, err
	}
	return paths.Merge(pathFlags), nil
}

// newPipeline builds the pipeline for a command, logging to the command's
// stderr and printing to its stdout.
func newPipeline(cmd *cobra.Command) *site.Pipeline {
	return site.New(newLogger(cmd.ErrOrStderr()), cmd.OutOrStdout())
}

// logLevelEnv overrides the log level, e.g. ZOOPAGE_LOGLEVEL=warn.
const logLevelEnv = "ZOOPAGE_LOGLEVEL"

// newLogger creates the process-wide logger. --verbose wins over the
// environment variable; an unparsable value falls back to INFO.
func newLogger(w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	if env := os.Getenv(logLevelEnv); env != "" {
		if err := lvl.UnmarshalText([]byte(env)); err != nil {
			lvl = slog.LevelInfo
		}
	}
	if verbose {
		lvl = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
