package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/project-switch/project-switch/internal/config"
	"github.com/project-switch/project-switch/internal/log"
	"github.com/project-switch/project-switch/internal/ui/prompt"
)

func newSwitchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "switch [name]",
		Short:             "Change the current project",
		Aliases:           []string{"sw"},
		GroupID:           GroupProject,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completeProjects,
		Long: `Change the current project.

Without a name, pick one from a fuzzy-filtered list.`,
		Example: `  project-switch switch           # pick interactively
  project-switch switch backend   # switch directly`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			names := projectNames(store.Merged())

			var name string
			if len(args) == 1 {
				name = strings.TrimSpace(args[0])
			} else {
				if len(names) == 0 {
					l.Warn("no projects configured", "hint", "create one with 'project-switch add'")
					return nil
				}
				if !isTerminal(cmd.InOrStdin()) {
					return errors.New("project name required when stdin is not a terminal")
				}
				res, err := prompt.Select("Switch project", names, store.Merged().CurrentProject)
				if err != nil {
					return err
				}
				if res.Cancelled {
					return nil
				}
				name = res.Value
			}

			if err := store.SetCurrentProject(name); err != nil {
				if errors.Is(err, config.ErrUnknownProject) {
					if m := fuzzy.Find(name, names); len(m) > 0 {
						return fmt.Errorf("%w (did you mean %s?)", err, m[0].Str)
					}
				}
				return err
			}
			l.Printf("Switched to project %s\n", name)
			return nil
		},
	}

	return cmd
}

func projectNames(cfg *config.Config) []string {
	names := make([]string, 0, len(cfg.Projects))
	for _, p := range cfg.Projects {
		names = append(names, p.Name)
	}
	return names
}

// completeProjects provides project name completion.
func completeProjects(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	store, err := loadStore(cmd)
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var matches []string
	for _, name := range projectNames(store.Merged()) {
		if strings.HasPrefix(name, toComplete) {
			matches = append(matches, name)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}
