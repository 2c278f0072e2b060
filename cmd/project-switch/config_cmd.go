package main

import (
	"github.com/spf13/cobra"

	"github.com/project-switch/project-switch/internal/config"
	"github.com/project-switch/project-switch/internal/log"
	"github.com/project-switch/project-switch/internal/output"
	"github.com/project-switch/project-switch/internal/storage"
	"github.com/project-switch/project-switch/internal/ui/prompt"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage project-switch configuration.

Config file: ~/.project-switch.yml, or --config / PROJECT_SWITCH_CONFIG.
An "include" key names a shared base file (YAML or TOML) that the local
file is merged over.`,
		Example: `  project-switch config init          # Create the default config
  project-switch config show          # Show the merged config
  project-switch config show --local  # Show only the local file
  project-switch config path          # Print the config file path`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l := log.FromContext(cmd.Context())

			path, err := configPath(cmd)
			if err != nil {
				return err
			}

			if !force && storage.Exists(path) && isTerminal(cmd.InOrStdin()) {
				res, err := prompt.Confirm("Overwrite " + path + "?")
				if err != nil {
					return err
				}
				if !res.Confirmed {
					return nil
				}
				force = true
			}

			written, err := config.Init(path, force)
			if err != nil {
				return err
			}
			l.Printf("Created config file: %s\n", written)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func newConfigShowCmd() *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective config",
		Args:  cobra.NoArgs,
		Long: `Print the effective config as YAML.

The effective config is the include file with the local file merged over it.
With --local only the local file is printed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			if local {
				return out.YAML(store.Local())
			}
			return out.YAML(store.Merged())
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Print only the local file, without the include")

	return cmd
}

func newConfigPathCmd() *cobra.Command {
	var include bool

	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			if !include {
				path, err := configPath(cmd)
				if err != nil {
					return err
				}
				out.Println(path)
				return nil
			}

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			if store.IncludePath() != "" {
				out.Println(store.IncludePath())
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&include, "include", false, "Print the resolved include file path instead")

	return cmd
}
