package main

import (
	"github.com/spf13/cobra"

	"github.com/project-switch/project-switch/internal/config"
	"github.com/project-switch/project-switch/internal/log"
	"github.com/project-switch/project-switch/internal/output"
)

func newCurrentCmd() *cobra.Command {
	var printPath bool

	cmd := &cobra.Command{
		Use:     "current",
		Short:   "Print the current project",
		GroupID: GroupProject,
		Args:    cobra.NoArgs,
		Example: `  project-switch current
  cd "$(project-switch current --path)"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			name, project := currentProject(ctx, store)
			if project == nil {
				if store.Merged().CurrentProject == "" {
					log.FromContext(ctx).Warn("no current project selected",
						"hint", "select one with 'project-switch switch'")
				}
				return nil
			}

			if printPath {
				if project.Path == "" {
					log.FromContext(ctx).Warn("project has no path", "project", name)
					return nil
				}
				path, err := config.ExpandPath(project.Path)
				if err != nil {
					return err
				}
				out.Println(path)
				return nil
			}
			out.Println(name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&printPath, "path", false, "Print the project directory instead of its name")

	return cmd
}
