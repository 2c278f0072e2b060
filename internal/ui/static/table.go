// Package static provides non-interactive terminal output components.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/project-switch/project-switch/internal/namespace"
	"github.com/project-switch/project-switch/internal/shortcut"
)

// RenderTable creates a borderless table with aligned columns.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return lipgloss.NewStyle().Bold(true).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

// ShortcutHeaders are the columns of [ShortcutRows].
var ShortcutHeaders = []string{"NAME", "PATH"}

// ShortcutRows returns one row per discovered shortcut.
func ShortcutRows(entries []shortcut.Entry) [][]string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.Name, e.Path})
	}
	return rows
}

// ItemHeaders are the columns of [ItemRows].
var ItemHeaders = []string{"KEY", "SCOPE", "TARGET"}

// ItemRows returns one row per namespace item. The target is the command
// URL or shell line, or the shortcut path.
func ItemRows(items []namespace.Item) [][]string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		switch it.Kind {
		case namespace.KindShortcut:
			rows = append(rows, []string{it.Key(), "app", it.Shortcut.Path})
		default:
			scope := "project"
			if it.Scope == namespace.ScopeGlobal {
				scope = "global"
			}
			rows = append(rows, []string{it.Key(), scope, it.Command.URL})
		}
	}
	return rows
}
