package launch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"mvdan.cc/sh/v3/shell"
	"mvdan.cc/sh/v3/syntax"

	"github.com/project-switch/project-switch/internal/cmd"
	"github.com/project-switch/project-switch/internal/config"
	"github.com/project-switch/project-switch/internal/log"
	"github.com/project-switch/project-switch/internal/namespace"
)

// DefaultBrowser names the system URL handler.
const DefaultBrowser = "default"

// ErrEmptyBrowser is returned for a blank browser string.
var ErrEmptyBrowser = errors.New("browser is empty")

// Launcher performs resolved actions.
type Launcher interface {
	OpenURL(ctx context.Context, url, browser string) error
	RunShell(ctx context.Context, command, args string) error
	LaunchPath(ctx context.Context, path string) error
}

// StartFunc runs a process.
type StartFunc func(ctx context.Context, name string, args ...string) error

// System launches through the programs of one operating system.
type System struct {
	goos string
	// wait runs openers to completion so a failing exit is reported.
	wait StartFunc
	// start spawns shell commands and returns once they are running.
	start StartFunc
}

// New returns a launcher for the running OS.
func New() *System {
	return NewFor(runtime.GOOS, waitFor, cmd.Start)
}

// NewFor returns a launcher that builds command lines for goos. URL and
// path openers run through wait, shell commands through start.
func NewFor(goos string, wait, start StartFunc) *System {
	return &System{goos: goos, wait: wait, start: start}
}

func waitFor(ctx context.Context, name string, args ...string) error {
	return cmd.RunContext(ctx, "", name, args...)
}

// OpenURL opens url in browser. "default" uses the system handler.
func (s *System) OpenURL(ctx context.Context, url, browser string) error {
	log.FromContext(ctx).Debug("opening url", "url", url, "browser", browser)

	if browser == "" {
		return ErrEmptyBrowser
	}

	if strings.EqualFold(browser, DefaultBrowser) {
		switch s.goos {
		case "windows":
			return s.run(ctx, "powershell", "-Command", `Set-Location C:\; Start-Process `+psQuote(url))
		case "darwin":
			return s.run(ctx, "open", url)
		default:
			return s.run(ctx, "xdg-open", url)
		}
	}

	fields, err := shell.Fields(browser, nil)
	if err != nil {
		return fmt.Errorf("invalid browser %q: %w", browser, err)
	}
	if len(fields) == 0 {
		return ErrEmptyBrowser
	}
	bin, extra := fields[0], fields[1:]

	switch s.goos {
	case "windows":
		argList := strings.TrimSpace(strings.Join(extra, " ") + " " + url)
		return s.run(ctx, "powershell", "-Command",
			`Set-Location C:\; Start-Process `+psQuote(bin)+" "+psQuote(argList))
	case "darwin":
		args := []string{"-a", bin}
		if len(extra) > 0 {
			args = append(args, "--args")
			args = append(args, extra...)
		}
		return s.run(ctx, "open", append(args, url)...)
	default:
		return s.run(ctx, bin, append(extra, url)...)
	}
}

// RunShell starts command with args appended through the platform shell
// and returns once it is running.
func (s *System) RunShell(ctx context.Context, command, args string) error {
	log.FromContext(ctx).Debug("running shell command", "command", command, "args", args)

	if s.goos == "windows" {
		argv := []string{"-Command", command}
		if args != "" {
			argv = append(argv, args)
		}
		return s.spawn(ctx, "powershell", argv...)
	}

	full := command
	if args != "" {
		full += " " + args
	}
	if _, err := syntax.NewParser().Parse(strings.NewReader(full), ""); err != nil {
		return fmt.Errorf("shell syntax error: %w", err)
	}
	return s.spawn(ctx, "sh", "-c", full)
}

// LaunchPath opens path with the platform opener. Freedesktop entries are
// started through gio.
func (s *System) LaunchPath(ctx context.Context, path string) error {
	log.FromContext(ctx).Debug("launching path", "path", path)

	path, err := config.ExpandPath(path)
	if err != nil {
		return err
	}

	switch s.goos {
	case "windows":
		return s.run(ctx, "powershell", "-Command", "Start-Process "+psQuote(path))
	case "darwin":
		return s.run(ctx, "open", path)
	default:
		if strings.EqualFold(filepath.Ext(path), ".desktop") {
			return s.run(ctx, "gio", "launch", path)
		}
		return s.run(ctx, "xdg-open", path)
	}
}

func (s *System) run(ctx context.Context, name string, args ...string) error {
	if err := s.wait(ctx, name, args...); err != nil {
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}
	return nil
}

func (s *System) spawn(ctx context.Context, name string, args ...string) error {
	if err := s.start(ctx, name, args...); err != nil {
		return fmt.Errorf("failed to launch %s: %w", name, err)
	}
	return nil
}

// psQuote wraps s in single quotes for PowerShell.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// Dispatch performs a planned action.
func Dispatch(ctx context.Context, l Launcher, a namespace.Action) error {
	switch a := a.(type) {
	case namespace.OpenURL:
		return l.OpenURL(ctx, a.URL, a.Browser)
	case namespace.RunShell:
		return l.RunShell(ctx, a.Command, a.Args)
	case namespace.LaunchPath:
		return l.LaunchPath(ctx, a.Path)
	default:
		return fmt.Errorf("unsupported action %T", a)
	}
}
