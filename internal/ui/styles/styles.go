// Package styles provides shared lipgloss styles for UI components.
//
// Colors are ANSI 256 indexes so the palette degrades cleanly on terminals
// that colorprofile reports as limited.
package styles

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/project-switch/project-switch/internal/match"
)

// Palette
var (
	// Primary is the main accent color (cyan/teal)
	Primary color.Color = lipgloss.Color("62")

	// Accent is the highlight color for the selected suggestion (pink)
	Accent color.Color = lipgloss.Color("212")

	Success color.Color = lipgloss.Color("82")
	Error   color.Color = lipgloss.Color("196")
	Warning color.Color = lipgloss.Color("214")

	// Muted is used for hints and help text (gray)
	Muted  color.Color = lipgloss.Color("240")
	Normal color.Color = lipgloss.Color("252")
	Info   color.Color = lipgloss.Color("244")
)

// Common styles
var (
	Bold         = lipgloss.NewStyle().Bold(true)
	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)
	AccentStyle  = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
	NormalStyle  = lipgloss.NewStyle().Foreground(Normal)
	InfoStyle    = lipgloss.NewStyle().Foreground(Info).Italic(true)

	// HighlightStyle marks fuzzy-matched characters.
	HighlightStyle = lipgloss.NewStyle().Foreground(Accent).Bold(true).Underline(true)
)

// Suggestion tag styles
var (
	CommandTagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	GlobalTagStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("141"))
	AppTagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	DirTagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("179"))
	FileTagStyle    = lipgloss.NewStyle().Foreground(Info)
)

// TagStyle returns the style used for a suggestion tag.
func TagStyle(tag string) lipgloss.Style {
	switch tag {
	case match.TagCommand:
		return CommandTagStyle
	case match.TagGlobal:
		return GlobalTagStyle
	case match.TagApp:
		return AppTagStyle
	case match.TagDir:
		return DirTagStyle
	case match.TagFile:
		return FileTagStyle
	}
	return MutedStyle
}

// Suggestion renders s with a styled tag and a muted URL hint. selected
// switches the text to the accent style. Stripping the result with
// match.StripDecoration yields s.Text().
func Suggestion(s match.Suggestion, selected bool) string {
	text := NormalStyle.Render(s.Text())
	if selected {
		text = AccentStyle.Render(s.Text())
	}
	tag := match.Tag(s)
	out := text + " " + TagStyle(tag).Render(tag)
	if hint := match.Hint(s); hint != "" {
		out += MutedStyle.Render(match.HintSeparator + hint)
	}
	return out
}
