package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/project-switch/project-switch/internal/config"
	"github.com/project-switch/project-switch/internal/launch"
	"github.com/project-switch/project-switch/internal/log"
	"github.com/project-switch/project-switch/internal/match"
	"github.com/project-switch/project-switch/internal/namespace"
	"github.com/project-switch/project-switch/internal/output"
	"github.com/project-switch/project-switch/internal/ui/prompt"
	"github.com/project-switch/project-switch/internal/ui/static"
)

type listOptions struct {
	print bool
	copy  bool
	items bool
	table bool
}

func newListCmd() *cobra.Command {
	var opts listOptions

	cmd := &cobra.Command{
		Use:     "list [keyword [args...]]",
		Short:   "Pick a command, app, path or URL and launch it",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Long: `Pick a command, app, path or URL and launch it.

Without arguments an interactive prompt suggests commands of the current
project, global commands and installed applications. Typing a path browses
the filesystem. Anything else that looks like a URL is opened in the browser.

When stdin is not a terminal, the first line of stdin is used as input.
Decorations printed by --items ("[cmd]", URL hints) are stripped, so the
output of an external picker such as rofi or dmenu can be piped back in.`,
		Example: `  project-switch list                        # interactive prompt
  project-switch list mail hello world       # launch "mail" with arguments
  project-switch list --print jira 1234      # show what would be launched
  project-switch list --copy docs            # copy the URL instead of opening it
  project-switch list --items | rofi -dmenu | project-switch list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.print, "print", "p", false, "Print the planned action instead of launching it")
	cmd.Flags().BoolVarP(&opts.copy, "copy", "c", false, "Copy the resolved URL to the clipboard instead of opening it")
	cmd.Flags().BoolVar(&opts.items, "items", false, "Print the selectable items, one per line, and exit")
	cmd.Flags().BoolVar(&opts.table, "table", false, "With --items, print a table with scope and target")
	cmd.MarkFlagsMutuallyExclusive("print", "copy", "items")

	return cmd
}

func runList(cmd *cobra.Command, args []string, opts listOptions) error {
	ctx := cmd.Context()
	out := output.FromContext(ctx)

	store, err := loadStore(cmd)
	if err != nil {
		return err
	}
	cfg := store.Merged()
	name, project := currentProject(ctx, store)
	items := buildItems(ctx, cfg, project)

	if opts.items {
		if opts.table {
			out.Print(static.RenderTable(static.ItemHeaders, static.ItemRows(items)))
			return nil
		}
		for _, it := range items {
			out.Println(match.FormatSuggestion(match.Suggestion{Kind: match.SuggestItem, Item: it}))
		}
		return nil
	}

	input, err := readInput(cmd, args, items, name)
	if err != nil {
		return err
	}
	if strings.TrimSpace(input) == "" {
		return nil
	}

	action, err := planInput(items, input, project, cfg)
	if err != nil {
		if warnResolution(ctx, err) {
			return nil
		}
		return err
	}
	return perform(cmd, action, opts)
}

// readInput returns the joined args, the first line of a non-terminal stdin,
// or the result of the interactive prompt. A cancelled prompt yields "".
func readInput(cmd *cobra.Command, args []string, items []namespace.Item, project string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	if !isTerminal(in) {
		scanner := bufio.NewScanner(in)
		if !scanner.Scan() {
			return "", scanner.Err()
		}
		return match.StripDecoration(scanner.Text()), nil
	}

	title := "No project selected"
	if project != "" {
		title = "Project: " + project
	}
	res, err := prompt.Keyword(match.NewEngine(items), title)
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", nil
	}
	return res.Input, nil
}

// planInput launches existing paths directly and plans everything else
// against the namespace.
func planInput(items []namespace.Item, input string, project *config.Project, cfg *config.Config) (namespace.Action, error) {
	submit := match.ParseSubmit(input, pathExists)
	if submit.IsPath() {
		return namespace.LaunchPath{Path: submit.Path}, nil
	}
	return namespace.Plan(items, input, project, cfg)
}

func perform(cmd *cobra.Command, action namespace.Action, opts listOptions) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)
	out := output.FromContext(ctx)

	switch {
	case opts.print:
		out.Println(action.String())
		return nil

	case opts.copy:
		open, ok := action.(namespace.OpenURL)
		if !ok {
			l.Warn("only URLs can be copied", "action", action.String())
			return nil
		}
		if err := clipboard.WriteAll(open.URL); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		l.Info("copied to clipboard", "url", open.URL)
		return nil
	}

	l.Debug("dispatching", "action", action.String())
	return launch.Dispatch(ctx, launch.FromContext(ctx), action)
}
