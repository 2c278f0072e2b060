package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/project-switch/project-switch/internal/config"
	"github.com/project-switch/project-switch/internal/log"
	"github.com/project-switch/project-switch/internal/namespace"
	"github.com/project-switch/project-switch/internal/shortcut"
	"github.com/project-switch/project-switch/internal/storage"
)

// loadStore returns the Store attached to the command context, or opens the
// config file named by --config / PROJECT_SWITCH_CONFIG.
func loadStore(cmd *cobra.Command) (*config.Store, error) {
	ctx := cmd.Context()
	if s := config.StoreFromContext(ctx); s != nil {
		return s, nil
	}
	return config.Open(ctx, settings.GetString("config"))
}

// configPath returns the config file path without loading it.
func configPath(cmd *cobra.Command) (string, error) {
	if s := config.StoreFromContext(cmd.Context()); s != nil {
		return s.Path(), nil
	}
	p := settings.GetString("config")
	if p == "" {
		return config.DefaultPath()
	}
	return config.ExpandPath(p)
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// pathExists expands ~ before checking path.
func pathExists(path string) bool {
	expanded, err := config.ExpandPath(path)
	return err == nil && storage.Exists(expanded)
}

// buildItems returns the namespace for project, scanning shortcuts when
// they are enabled.
func buildItems(ctx context.Context, cfg *config.Config, project *config.Project) []namespace.Item {
	sc := cfg.ShortcutSettings()
	var entries []shortcut.Entry
	if sc.IsEnabled() {
		entries = shortcut.Collect(ctx, sc.ExtraPaths, sc.Exclude)
		log.FromContext(ctx).Debug("scanned shortcuts", "count", len(entries))
	}
	return namespace.Build(cfg, project, entries, sc.IsEnabled())
}

// currentProject resolves the current project, warning when the configured
// one no longer exists.
func currentProject(ctx context.Context, store *config.Store) (string, *config.Project) {
	name, project, ok := store.ResolveCurrentProject()
	if !ok {
		if configured := store.Merged().CurrentProject; configured != "" {
			log.FromContext(ctx).Warn("current project not found", "project", configured)
		}
		return "", nil
	}
	return name, project
}

// warnResolution reports resolution errors as warnings. It returns false for
// errors that are not resolution errors and must be returned to the caller.
func warnResolution(ctx context.Context, err error) bool {
	l := log.FromContext(ctx)

	var notFound *namespace.NotFoundError
	switch {
	case errors.Is(err, namespace.ErrEmptyInput):
	case errors.Is(err, namespace.ErrNoCurrentProject):
		l.Warn(err.Error(), "hint", "select one with 'project-switch switch' or create one with 'project-switch add'")
	case errors.As(err, &notFound):
		l.Warn(err.Error(), "hint", "add the key to the project or to global commands")
	case errors.Is(err, namespace.ErrNoURL):
		l.Warn(err.Error(), "hint", "set url for this command in the config file")
	default:
		return false
	}
	return true
}
