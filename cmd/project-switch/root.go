package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/project-switch/project-switch/internal/log"
	"github.com/project-switch/project-switch/internal/output"
)

// settings binds the global flags to PROJECT_SWITCH_* environment variables.
// A flag set on the command line wins over the environment.
var settings = viper.New()

// Command group IDs for organizing help output
const (
	GroupCore    = "core"
	GroupProject = "project"
	GroupConfig  = "config"
)

// rootCmd represents the base command. Without a subcommand it opens the
// launcher prompt, the same as "list".
var rootCmd = &cobra.Command{
	Use:   "project-switch",
	Short: "Launch project commands, apps, paths and URLs from one prompt",
	Long: `project-switch keeps per-project commands in one YAML file and launches
them from a single prompt.

Type a command key, an installed application, a filesystem path or a URL.
Commands of the current project shadow global commands of the same key.`,
	Args:                       cobra.NoArgs,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger := log.New(os.Stderr, settings.GetBool("verbose"), settings.GetBool("quiet"))
		cmd.SetContext(log.WithLogger(cmd.Context(), logger))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd, nil, listOptions{})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Replaced in PersistentPreRunE once flags are parsed.
	ctx = log.WithLogger(ctx, log.New(os.Stderr, false, false))

	// stdout carries primary data, the TUI and diagnostics use stderr
	ctx = output.WithPrinter(ctx, os.Stdout)

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'project-switch -h' for help")
		cancel()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Config file (default ~/.project-switch.yml)")
	flags.BoolP("verbose", "v", false, "Show debug logs and external commands being executed")
	flags.BoolP("quiet", "q", false, "Suppress all log output except errors")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	settings.SetEnvPrefix("PROJECT_SWITCH")
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()
	if err := settings.BindPFlags(flags); err != nil {
		panic(err)
	}

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupProject, Title: "Project Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newOpenCmd())

	// Project commands
	rootCmd.AddCommand(newSwitchCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newCurrentCmd())

	// Config commands
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newShortcutsCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newVersionCmd())
}
