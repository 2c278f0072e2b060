package static

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/project-switch/project-switch/internal/config"
	"github.com/project-switch/project-switch/internal/namespace"
	"github.com/project-switch/project-switch/internal/shortcut"
)

func TestRenderTable_Empty(t *testing.T) {
	t.Parallel()

	if got := RenderTable(ShortcutHeaders, nil); got != "" {
		t.Errorf("RenderTable(no rows) = %q, want empty", got)
	}
}

func TestRenderTable_Columns(t *testing.T) {
	t.Parallel()

	rows := ShortcutRows([]shortcut.Entry{
		{Name: "Firefox", Path: "/usr/share/applications/firefox.desktop"},
		{Name: "Visual Studio Code", Path: "/usr/share/applications/code.desktop"},
	})
	out := ansi.Strip(RenderTable(ShortcutHeaders, rows))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "NAME") {
		t.Errorf("header = %q", lines[0])
	}
	// PATH column is aligned on every row.
	col := strings.Index(lines[0], "PATH")
	for _, line := range lines[1:] {
		if !strings.HasPrefix(line[col:], "/usr/share/applications/") {
			t.Errorf("row %q not aligned at column %d", line, col)
		}
	}
}

func TestItemRows(t *testing.T) {
	t.Parallel()

	items := []namespace.Item{
		namespace.CommandItem(config.Command{Key: "mail", URL: "https://mail.example.com"}, namespace.ScopeProject),
		namespace.CommandItem(config.Command{Key: "wiki", URL: "https://wiki.local"}, namespace.ScopeGlobal),
		namespace.ShortcutItem(shortcut.Entry{Name: "Firefox", Path: "/apps/firefox.desktop"}),
	}
	want := [][]string{
		{"mail", "project", "https://mail.example.com"},
		{"wiki", "global", "https://wiki.local"},
		{"Firefox", "app", "/apps/firefox.desktop"},
	}

	got := ItemRows(items)
	for i := range want {
		if strings.Join(got[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("row %d = %v, want %v", i, got[i], want[i])
		}
	}
}
