package match

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/project-switch/project-switch/internal/namespace"
)

// Tags appended to rendered suggestions.
const (
	TagCommand = "[cmd]"
	TagGlobal  = "[global]"
	TagApp     = "[app]"
	TagDir     = "[dir]"
	TagFile    = "[file]"
)

// HintSeparator introduces the URL hint after the tag.
const HintSeparator = " → "

// maxHint is the longest URL hint shown before truncation.
const maxHint = 60

var tags = []string{TagCommand, TagGlobal, TagApp, TagDir, TagFile}

// Tag returns the bracket tag for s.
func Tag(s Suggestion) string {
	switch s.Kind {
	case SuggestDir:
		return TagDir
	case SuggestFile:
		return TagFile
	}
	if s.Item.Kind == namespace.KindShortcut {
		return TagApp
	}
	if s.Item.Scope == namespace.ScopeGlobal {
		return TagGlobal
	}
	return TagCommand
}

// Hint returns the truncated URL of a command suggestion, or "".
func Hint(s Suggestion) string {
	if s.Kind != SuggestItem || s.Item.Kind != namespace.KindCommand {
		return ""
	}
	return ansi.Truncate(s.Item.Command.URL, maxHint, "...")
}

// FormatSuggestion renders s as "text [tag]" followed by the URL hint.
func FormatSuggestion(s Suggestion) string {
	out := s.Text() + " " + Tag(s)
	if hint := Hint(s); hint != "" {
		out += HintSeparator + hint
	}
	return out
}

// StripDecoration removes ANSI styling, the bracket tag, and the hint from
// rendered text. Text without a tag is returned trimmed.
func StripDecoration(text string) string {
	plain := ansi.Strip(text)

	// The first tag followed by the hint or the end of the text ends the
	// key; hints may themselves contain tag-like text.
	for i := strings.IndexByte(plain, ' '); i >= 0; {
		for _, tag := range tags {
			rest, ok := strings.CutPrefix(plain[i:], " "+tag)
			if ok && (rest == "" || strings.HasPrefix(rest, HintSeparator)) {
				return plain[:i]
			}
		}
		next := strings.IndexByte(plain[i+1:], ' ')
		if next < 0 {
			break
		}
		i += next + 1
	}
	return strings.TrimSpace(plain)
}
