package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/project-switch/project-switch/internal/gitsync"
	"github.com/project-switch/project-switch/internal/log"
)

func newSyncCmd() *cobra.Command {
	var (
		watch    bool
		interval time.Duration
	)

	cmd := &cobra.Command{
		Use:     "sync",
		Short:   "Sync the shared config through git",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Sync the shared config through git.

Pulls, then commits and pushes local changes in the git repository that
holds the include file (or the config file when there is no include).
With --watch the sync repeats until interrupted.`,
		Example: `  project-switch sync
  project-switch sync --watch --interval 1m`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)

			store, err := loadStore(cmd)
			if err != nil {
				return err
			}
			target := store.IncludePath()
			if target == "" {
				target = store.Path()
			}

			repo, err := gitsync.Find(target)
			if err != nil {
				return err
			}
			l.Debug("syncing", "repo", repo.Path)

			if watch {
				l.Printf("Watching %s every %s, press ctrl+c to stop\n", repo.Path, interval)
				return repo.Watch(ctx, interval)
			}

			res, err := repo.Sync(ctx)
			if err != nil {
				return err
			}
			switch {
			case res.Pushed:
				l.Printf("Committed and pushed changes in %s\n", repo.Path)
			case res.Committed:
				l.Printf("Committed changes in %s\n", repo.Path)
			default:
				l.Printf("Nothing to commit in %s\n", repo.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Keep syncing until interrupted")
	cmd.Flags().DurationVar(&interval, "interval", gitsync.DefaultInterval, "Time between syncs with --watch")

	return cmd
}
