// Package gitsync keeps the shared include file in step with its git remote.
//
// The repository is the one containing the include file. A sync pulls,
// then stages every change, commits, and pushes. Status, staging, and
// commits go through go-git; pull and push shell out to git so the user's
// credential helpers and SSH agent apply.
package gitsync

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/project-switch/project-switch/internal/cmd"
	"github.com/project-switch/project-switch/internal/log"
)

// CommitMessage is used for every automatic commit.
const CommitMessage = "auto-sync project-switch config"

// DefaultInterval is the pause between syncs in watch mode.
const DefaultInterval = 30 * time.Second

// ErrNotRepository is returned when the file is not inside a git work tree.
var ErrNotRepository = errors.New("not inside a git repository")

// Repo is the git work tree holding the include file.
type Repo struct {
	Path string
	repo *git.Repository
}

// Result reports what a sync did.
type Result struct {
	Pulled    bool
	Committed bool
	Pushed    bool
}

// Find opens the repository containing file, searching parent directories.
func Find(file string) (*Repo, error) {
	repo, err := git.PlainOpenWithOptions(filepath.Dir(file), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotRepository, file)
		}
		return nil, fmt.Errorf("failed to open repository for %s: %w", file, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotRepository, file)
	}
	return &Repo{Path: wt.Filesystem.Root(), repo: repo}, nil
}

// HasRemote reports whether any remote is configured.
func (r *Repo) HasRemote() bool {
	remotes, err := r.repo.Remotes()
	return err == nil && len(remotes) > 0
}

// HasChanges reports whether the work tree differs from HEAD.
func (r *Repo) HasChanges() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, err
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("failed to read status: %w", err)
	}
	return !status.IsClean(), nil
}

// CommitAll stages every change and commits it. Returns false when there
// was nothing to commit.
func (r *Repo) CommitAll(message string) (bool, error) {
	changed, err := r.HasChanges()
	if err != nil || !changed {
		return false, err
	}

	wt, err := r.repo.Worktree()
	if err != nil {
		return false, err
	}
	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return false, fmt.Errorf("failed to stage changes: %w", err)
	}
	if _, err := wt.Commit(message, &git.CommitOptions{Author: r.signature()}); err != nil {
		return false, fmt.Errorf("failed to commit: %w", err)
	}
	return true, nil
}

// Pull runs git pull.
func (r *Repo) Pull(ctx context.Context) error {
	if err := cmd.RunContext(ctx, "", "git", "-C", r.Path, "pull"); err != nil {
		return fmt.Errorf("pull failed: %w", err)
	}
	return nil
}

// Push runs git push.
func (r *Repo) Push(ctx context.Context) error {
	if err := cmd.RunContext(ctx, "", "git", "-C", r.Path, "push"); err != nil {
		return fmt.Errorf("push failed: %w", err)
	}
	return nil
}

// Sync pulls, then commits and pushes local changes. Without a remote only
// the commit happens. A failed pull is logged and the commit still runs.
func (r *Repo) Sync(ctx context.Context) (Result, error) {
	l := log.FromContext(ctx)
	var res Result

	remote := r.HasRemote()
	if remote {
		if err := r.Pull(ctx); err != nil {
			if ctx.Err() != nil {
				return res, ctx.Err()
			}
			l.Warn("git pull failed", "repo", r.Path, "error", err)
		} else {
			res.Pulled = true
		}
	}

	committed, err := r.CommitAll(CommitMessage)
	if err != nil {
		return res, err
	}
	res.Committed = committed
	if !committed || !remote {
		return res, nil
	}

	if err := r.Push(ctx); err != nil {
		return res, err
	}
	res.Pushed = true
	return res, nil
}

// Watch syncs immediately and then every interval until ctx is cancelled.
// Errors are logged and do not stop the loop.
func (r *Repo) Watch(ctx context.Context, interval time.Duration) error {
	l := log.FromContext(ctx)
	if interval <= 0 {
		interval = DefaultInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		res, err := r.Sync(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			l.Warn("sync failed", "repo", r.Path, "error", err)
		} else if res.Committed {
			l.Info("synced config", "repo", r.Path, "pushed", res.Pushed)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// signature uses the configured git identity, falling back to a fixed one.
func (r *Repo) signature() *object.Signature {
	sig := &object.Signature{Name: "project-switch", Email: "project-switch@localhost", When: time.Now()}

	cfg, err := r.repo.ConfigScoped(gitconfig.GlobalScope)
	if err != nil {
		return sig
	}
	if cfg.User.Name != "" {
		sig.Name = cfg.User.Name
	}
	if cfg.User.Email != "" {
		sig.Email = cfg.User.Email
	}
	return sig
}
