package prompt

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/sahilm/fuzzy"

	"github.com/project-switch/project-switch/internal/ui/styles"
)

// SelectResult holds the result of a selection prompt.
type SelectResult struct {
	Value     string
	Index     int
	Cancelled bool
}

// optionSource implements fuzzy.Source over the options.
type optionSource []string

func (s optionSource) String(i int) string { return s[i] }
func (s optionSource) Len() int            { return len(s) }

type selectModel struct {
	prompt    string
	options   []string
	filter    textinput.Model
	filtered  []fuzzy.Match
	cursor    int
	maxHeight int
	selected  int
	done      bool
	cancelled bool
}

// newSelectModel starts with the cursor on the option named current, if any.
func newSelectModel(prompt string, options []string, current string) selectModel {
	ti := textinput.New()
	ti.Placeholder = "Type to filter..."
	ti.Focus()
	ti.CharLimit = 100
	ti.SetWidth(40)

	m := selectModel{
		prompt:    prompt,
		options:   options,
		filter:    ti,
		maxHeight: 10,
		selected:  -1,
	}
	m.applyFilter()
	for i, fm := range m.filtered {
		if options[fm.Index] == current {
			m.cursor = i
			break
		}
	}
	return m
}

func (m selectModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit

		case "enter":
			if m.cursor < len(m.filtered) {
				m.selected = m.filtered[m.cursor].Index
			}
			m.done = true
			return m, tea.Quit

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		m.applyFilter()
		m.cursor = 0
	}
	return m, cmd
}

// applyFilter ranks options with fuzzy matching. An empty filter keeps the
// original order.
func (m *selectModel) applyFilter() {
	query := m.filter.Value()
	if query == "" {
		m.filtered = make([]fuzzy.Match, len(m.options))
		for i, opt := range m.options {
			m.filtered[i] = fuzzy.Match{Str: opt, Index: i}
		}
		return
	}
	m.filtered = fuzzy.FindFrom(query, optionSource(m.options))
}

func (m selectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}

	var sb strings.Builder
	sb.WriteString(m.prompt)
	sb.WriteString("\n")
	sb.WriteString(m.filter.View())
	sb.WriteString("\n\n")

	if len(m.filtered) == 0 {
		sb.WriteString(styles.MutedStyle.Render("  No matches found"))
		sb.WriteString("\n")
	} else {
		start, end := window(m.cursor, len(m.filtered), m.maxHeight)
		for i := start; i < end; i++ {
			fm := m.filtered[i]
			if i == m.cursor {
				sb.WriteString(styles.AccentStyle.Render("> "))
			} else {
				sb.WriteString("  ")
			}
			sb.WriteString(highlight(fm, i == m.cursor))
			sb.WriteString("\n")
		}
		if len(m.filtered) > m.maxHeight {
			sb.WriteString(styles.MutedStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.filtered))))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(styles.MutedStyle.Render("↑/↓ navigate • enter select • esc cancel"))
	return tea.NewView(sb.String())
}

// highlight renders a match with its matched characters emphasized.
func highlight(fm fuzzy.Match, selected bool) string {
	base := styles.NormalStyle
	if selected {
		base = styles.AccentStyle
	}
	if len(fm.MatchedIndexes) == 0 {
		return base.Render(fm.Str)
	}

	matched := make(map[int]bool, len(fm.MatchedIndexes))
	for _, idx := range fm.MatchedIndexes {
		matched[idx] = true
	}
	var sb strings.Builder
	for i, r := range fm.Str {
		if matched[i] {
			sb.WriteString(styles.HighlightStyle.Render(string(r)))
		} else {
			sb.WriteString(base.Render(string(r)))
		}
	}
	return sb.String()
}

// Select shows a fuzzy-filtered list and returns the chosen option. The
// cursor starts on current when it is one of the options.
func Select(prompt string, options []string, current string) (SelectResult, error) {
	if len(options) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	finalModel, err := run(newSelectModel(prompt, options, current))
	if err != nil {
		return SelectResult{}, err
	}
	m := finalModel.(selectModel)
	if m.cancelled || m.selected < 0 || m.selected >= len(options) {
		return SelectResult{Cancelled: true}, nil
	}
	return SelectResult{Value: options[m.selected], Index: m.selected}, nil
}
