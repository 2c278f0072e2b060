package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/project-switch/project-switch/internal/config"
	"github.com/project-switch/project-switch/internal/log"
	"github.com/project-switch/project-switch/internal/ui/prompt"
)

func newAddCmd() *cobra.Command {
	var (
		path        string
		here        bool
		description string
		browser     string
		switchTo    bool
	)

	cmd := &cobra.Command{
		Use:     "add [name]",
		Short:   "Add a project",
		GroupID: GroupProject,
		Args:    cobra.MaximumNArgs(1),
		Long: `Add a project to the local config file.

Without a name, prompt for one. The first project added becomes the
current project.`,
		Example: `  project-switch add backend
  project-switch add backend --here --switch
  project-switch add docs --path ~/src/docs --browser "firefox -P work"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}

			var name string
			if len(args) == 1 {
				name = args[0]
			} else {
				if !isTerminal(cmd.InOrStdin()) {
					return errors.New("project name required when stdin is not a terminal")
				}
				res, err := prompt.TextInput("Project name", "my-project", "", true)
				if err != nil {
					return err
				}
				if res.Cancelled {
					return nil
				}
				name = res.Value
			}

			if here {
				wd, err := os.Getwd()
				if err != nil {
					return err
				}
				path = wd
			} else if path != "" && !filepath.IsAbs(path) && path[0] != '~' {
				abs, err := filepath.Abs(path)
				if err != nil {
					return err
				}
				path = abs
			}

			p := config.Project{
				Name:        strings.TrimSpace(name),
				Path:        path,
				Description: description,
				Browser:     browser,
			}
			if err := store.AddProject(p); err != nil {
				return err
			}
			l.Printf("Added project %s\n", p.Name)

			if switchTo && store.Merged().CurrentProject != p.Name {
				if err := store.SetCurrentProject(p.Name); err != nil {
					return err
				}
				l.Printf("Switched to project %s\n", p.Name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Project directory")
	cmd.Flags().BoolVar(&here, "here", false, "Use the current directory as project directory")
	cmd.Flags().StringVarP(&description, "description", "d", "", "Project description")
	cmd.Flags().StringVarP(&browser, "browser", "b", "", "Browser for this project's URLs")
	cmd.Flags().BoolVarP(&switchTo, "switch", "s", false, "Make the new project current")
	cmd.MarkFlagsMutuallyExclusive("path", "here")

	return cmd
}
