package main

import (
	"github.com/spf13/cobra"

	"github.com/project-switch/project-switch/internal/log"
	"github.com/project-switch/project-switch/internal/output"
	"github.com/project-switch/project-switch/internal/shortcut"
	"github.com/project-switch/project-switch/internal/ui/static"
)

func newShortcutsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "shortcuts",
		Short:   "Inspect and toggle application shortcuts",
		Aliases: []string{"apps"},
		GroupID: GroupConfig,
		Long: `Inspect and toggle application shortcuts.

Shortcuts are installed applications found in the platform's launcher
directories (Start Menu, /Applications, XDG data dirs) plus any
shortcuts.extraPaths. They appear in the prompt tagged [app].`,
	}

	cmd.AddCommand(newShortcutsListCmd())
	cmd.AddCommand(newShortcutsToggleCmd())
	cmd.AddCommand(newShortcutsSetCmd("enable", true))
	cmd.AddCommand(newShortcutsSetCmd("disable", false))

	return cmd
}

func newShortcutsListCmd() *cobra.Command {
	var names bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered shortcuts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			sc := store.ShortcutsConfig()
			if !sc.IsEnabled() {
				log.FromContext(ctx).Warn("shortcuts are disabled, they will not appear in the prompt",
					"hint", "run 'project-switch shortcuts enable'")
			}

			entries := shortcut.Collect(ctx, sc.ExtraPaths, sc.Exclude)
			if names {
				for _, e := range entries {
					out.Println(e.Name)
				}
				return nil
			}
			out.Print(static.RenderTable(static.ShortcutHeaders, static.ShortcutRows(entries)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&names, "names", false, "Print names only")

	return cmd
}

func newShortcutsToggleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle",
		Short: "Flip shortcuts on or off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			enabled, err := store.ToggleShortcuts()
			if err != nil {
				return err
			}
			printShortcutsState(cmd, enabled)
			return nil
		},
	}
}

func newShortcutsSetCmd(use string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: use + " shortcuts in the prompt",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			if err := store.SetShortcutsEnabled(enabled); err != nil {
				return err
			}
			printShortcutsState(cmd, enabled)
			return nil
		},
	}
}

func printShortcutsState(cmd *cobra.Command, enabled bool) {
	l := log.FromContext(cmd.Context())
	if enabled {
		l.Printf("Shortcuts enabled\n")
	} else {
		l.Printf("Shortcuts disabled\n")
	}
}
