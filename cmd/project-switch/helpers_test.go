package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/project-switch/project-switch/internal/config"
	"github.com/project-switch/project-switch/internal/launch"
	"github.com/project-switch/project-switch/internal/log"
	"github.com/project-switch/project-switch/internal/output"
)

const testConfig = `defaultBrowser: firefox
currentProject: alpha
shortcuts:
  enabled: false
global:
  - key: wiki
    url: https://wiki.local/
projects:
  - name: alpha
    commands:
      - key: mail
        url: https://mail.example.com/search?q=
        url_encode: true
      - key: build
        url: make build
      - key: empty
  - name: beta
    browser: chromium
    commands:
      - key: docs
        url: https://docs.example.com/
`

// recorder is a launch.Launcher that records what it was asked to do.
type recorder struct {
	calls []string
}

func (r *recorder) OpenURL(_ context.Context, url, browser string) error {
	r.calls = append(r.calls, "url "+url+" "+browser)
	return nil
}

func (r *recorder) RunShell(_ context.Context, command, args string) error {
	r.calls = append(r.calls, strings.TrimSpace("shell "+command+" "+args))
	return nil
}

func (r *recorder) LaunchPath(_ context.Context, path string) error {
	r.calls = append(r.calls, "path "+path)
	return nil
}

type testEnv struct {
	ctx      context.Context
	path     string
	out      *bytes.Buffer
	logs     *bytes.Buffer
	launcher *recorder
}

// newTestEnv writes content to a temp config file and returns a context
// carrying its store, a captured printer and logger, and a recording launcher.
func newTestEnv(t *testing.T, content string) *testEnv {
	t.Helper()

	path := filepath.Join(t.TempDir(), config.FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	env := &testEnv{
		path:     path,
		out:      &bytes.Buffer{},
		logs:     &bytes.Buffer{},
		launcher: &recorder{},
	}
	ctx := log.WithLogger(context.Background(), log.New(env.logs, false, false))
	ctx = output.WithPrinter(ctx, env.out)
	ctx = launch.WithLauncher(ctx, env.launcher)

	store, err := config.Open(ctx, path)
	if err != nil {
		t.Fatalf("config.Open() error = %v", err)
	}
	env.ctx = config.WithStore(ctx, store)
	return env
}

// run executes cmd with args and stdin.
func (e *testEnv) run(t *testing.T, cmd *cobra.Command, stdin string, args ...string) error {
	t.Helper()
	cmd.SetContext(e.ctx)
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	return cmd.Execute()
}

// reload reads the config file from disk again.
func (e *testEnv) reload(t *testing.T) *config.Store {
	t.Helper()
	store, err := config.Open(context.Background(), e.path)
	if err != nil {
		t.Fatalf("config.Open() error = %v", err)
	}
	return store
}
