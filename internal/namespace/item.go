package namespace

import (
	"github.com/project-switch/project-switch/internal/config"
	"github.com/project-switch/project-switch/internal/shortcut"
)

// Kind distinguishes the two item variants.
type Kind int

const (
	KindCommand Kind = iota
	KindShortcut
)

// Scope records where a command was declared.
type Scope int

const (
	ScopeProject Scope = iota
	ScopeGlobal
)

// Item is one selectable entry. Exactly one of Command and Shortcut is set,
// according to Kind.
type Item struct {
	Kind     Kind
	Scope    Scope
	Command  *config.Command
	Shortcut *shortcut.Entry
}

// CommandItem wraps a command declared in scope.
func CommandItem(c config.Command, scope Scope) Item {
	return Item{Kind: KindCommand, Scope: scope, Command: &c}
}

// ShortcutItem wraps a discovered shortcut.
func ShortcutItem(e shortcut.Entry) Item {
	return Item{Kind: KindShortcut, Shortcut: &e}
}

// Key returns the command key or the shortcut name.
func (i Item) Key() string {
	if i.Kind == KindShortcut {
		return i.Shortcut.Name
	}
	return i.Command.Key
}

// Build returns project commands, then global commands, then shortcuts when
// enabled. Commands are deduplicated by exact key, first one wins.
// project may be nil.
func Build(cfg *config.Config, project *config.Project, shortcuts []shortcut.Entry, enabled bool) []Item {
	var items []Item
	seen := make(map[string]bool)

	addCommands := func(cmds []config.Command, scope Scope) {
		for _, c := range cmds {
			if seen[c.Key] {
				continue
			}
			seen[c.Key] = true
			items = append(items, CommandItem(c, scope))
		}
	}

	if project != nil {
		addCommands(project.Commands, ScopeProject)
	}
	addCommands(cfg.Global, ScopeGlobal)

	if enabled {
		for _, e := range shortcuts {
			items = append(items, ShortcutItem(e))
		}
	}
	return items
}
