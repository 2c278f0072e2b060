package namespace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/project-switch/project-switch/internal/config"
)

// Action is what a resolved input asks the launcher to do.
type Action interface {
	fmt.Stringer
	action()
}

// OpenURL opens URL in Browser.
type OpenURL struct {
	URL     string
	Browser string
}

// RunShell runs Command through the platform shell with Args appended.
type RunShell struct {
	Command string
	Args    string
}

// LaunchPath opens a file, directory, or shortcut with the OS handler.
type LaunchPath struct {
	Path string
}

func (OpenURL) action()    {}
func (RunShell) action()   {}
func (LaunchPath) action() {}

func (a OpenURL) String() string { return fmt.Sprintf("open %s in %s", a.URL, a.Browser) }

func (a RunShell) String() string {
	if a.Args == "" {
		return "run " + a.Command
	}
	return "run " + a.Command + " " + a.Args
}

func (a LaunchPath) String() string { return "launch " + a.Path }

// BrowserFor returns the browser for cmd: the command's own, then the
// project's, then the config default.
func BrowserFor(cmd *config.Command, project *config.Project, cfg *config.Config) string {
	if cmd != nil && cmd.Browser != "" {
		return cmd.Browser
	}
	if project != nil && project.Browser != "" {
		return project.Browser
	}
	return cfg.Browser()
}

// ArgsFor joins the command's configured args with the user's.
func ArgsFor(cmd *config.Command, userArgs string) string {
	switch {
	case cmd.Args != "" && userArgs != "":
		return cmd.Args + " " + userArgs
	case cmd.Args != "":
		return cmd.Args
	default:
		return userArgs
	}
}

// SplitInput splits input on the first space into a keyword and trimmed args.
func SplitInput(input string) (keyword, args string) {
	input = strings.TrimSpace(input)
	keyword, args, _ = strings.Cut(input, " ")
	return keyword, strings.TrimSpace(args)
}

// Plan resolves input ("keyword [args...]") to an Action. project may be nil.
func Plan(items []Item, input string, project *config.Project, cfg *config.Config) (Action, error) {
	keyword, userArgs := SplitInput(input)
	if keyword == "" {
		return nil, ErrEmptyInput
	}

	item, err := Resolve(items, keyword)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		if IsURL(keyword) {
			return OpenURL{URL: NormalizeURL(keyword), Browser: BrowserFor(nil, project, cfg)}, nil
		}
		if project == nil {
			return nil, fmt.Errorf("%w: %w", ErrNoCurrentProject, err)
		}
		return nil, err
	}

	if item.Kind == KindShortcut {
		return LaunchPath{Path: item.Shortcut.Path}, nil
	}
	return planCommand(item.Command, userArgs, project, cfg)
}

func planCommand(cmd *config.Command, userArgs string, project *config.Project, cfg *config.Config) (Action, error) {
	if cmd.URL == "" {
		return nil, fmt.Errorf("%w: %s", ErrNoURL, cmd.Key)
	}

	args := ArgsFor(cmd, userArgs)
	if !cmd.IsURL() {
		return RunShell{Command: cmd.URL, Args: args}, nil
	}

	u := cmd.URL
	if args != "" {
		if cmd.URLEncode {
			args = encodeArgs(args)
		}
		u += args
	}
	return OpenURL{URL: u, Browser: BrowserFor(cmd, project, cfg)}, nil
}
