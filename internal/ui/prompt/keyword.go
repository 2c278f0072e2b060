package prompt

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/project-switch/project-switch/internal/match"
	"github.com/project-switch/project-switch/internal/ui/styles"
)

// KeywordResult holds the submitted launcher input.
type KeywordResult struct {
	Input     string
	Cancelled bool
}

type keywordModel struct {
	engine      *match.Engine
	title       string
	input       textinput.Model
	suggestions []match.Suggestion
	cursor      int
	// chosen is set once the user moves the highlight; until then enter
	// submits the text as typed.
	chosen    bool
	maxHeight int
	value     string
	done      bool
	cancelled bool
}

func newKeywordModel(engine *match.Engine, title string) keywordModel {
	ti := textinput.New()
	ti.Placeholder = "command, app, path or URL"
	ti.Focus()
	ti.CharLimit = 512
	ti.SetWidth(60)

	m := keywordModel{
		engine:    engine,
		title:     title,
		input:     ti,
		maxHeight: 10,
	}
	m.refresh()
	return m
}

func (m keywordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m keywordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit

		case "enter":
			m.value = m.submitValue()
			m.done = true
			return m, tea.Quit

		case "tab":
			if s, ok := m.highlighted(); ok {
				m.input.SetValue(match.Accept(m.input.Value(), s))
				m.input.CursorEnd()
				m.refresh()
			}
			return m, nil

		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			m.chosen = len(m.suggestions) > 0
			return m, nil

		case "down", "ctrl+n":
			if m.cursor < len(m.suggestions)-1 {
				m.cursor++
			}
			m.chosen = len(m.suggestions) > 0
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.refresh()
	}
	return m, cmd
}

func (m *keywordModel) refresh() {
	m.suggestions = m.engine.Suggest(m.input.Value())
	m.cursor = 0
	m.chosen = false
}

func (m keywordModel) highlighted() (match.Suggestion, bool) {
	if m.cursor < 0 || m.cursor >= len(m.suggestions) {
		return match.Suggestion{}, false
	}
	return m.suggestions[m.cursor], true
}

// submitValue returns the input with the highlighted suggestion accepted
// when the user picked a row, otherwise the input as typed.
func (m keywordModel) submitValue() string {
	input := m.input.Value()
	if !m.chosen || m.engine.Locked(input) {
		return input
	}
	if s, ok := m.highlighted(); ok {
		return match.Accept(input, s)
	}
	return input
}

func (m keywordModel) View() tea.View {
	return tea.NewView(m.render())
}

func (m keywordModel) render() string {
	if m.done {
		return ""
	}

	var sb strings.Builder
	if m.title != "" {
		sb.WriteString(styles.PrimaryStyle.Render(m.title))
		sb.WriteString("\n")
	}
	sb.WriteString(m.input.View())
	sb.WriteString("\n\n")

	if len(m.suggestions) == 0 {
		if strings.TrimSpace(m.input.Value()) != "" {
			sb.WriteString(styles.MutedStyle.Render("  No matches, enter opens it as typed"))
			sb.WriteString("\n")
		}
	} else {
		start, end := window(m.cursor, len(m.suggestions), m.maxHeight)
		for i := start; i < end; i++ {
			if i == m.cursor {
				sb.WriteString(styles.AccentStyle.Render("> "))
			} else {
				sb.WriteString("  ")
			}
			sb.WriteString(styles.Suggestion(m.suggestions[i], i == m.cursor))
			sb.WriteString("\n")
		}
		if len(m.suggestions) > m.maxHeight {
			sb.WriteString(styles.MutedStyle.Render(fmt.Sprintf("\n  %d/%d", m.cursor+1, len(m.suggestions))))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n")
	sb.WriteString(styles.MutedStyle.Render("↑/↓ select • tab complete • enter launch • esc cancel"))
	return sb.String()
}

// window returns the visible range of n rows that keeps cursor centered.
func window(cursor, n, height int) (start, end int) {
	if n <= height {
		return 0, n
	}
	start = max(0, cursor-height/2)
	end = start + height
	if end > n {
		end = n
		start = end - height
	}
	return start, end
}

// Keyword shows the launcher prompt over engine's namespace. title is shown
// above the input, typically the current project.
func Keyword(engine *match.Engine, title string) (KeywordResult, error) {
	finalModel, err := run(newKeywordModel(engine, title))
	if err != nil {
		return KeywordResult{}, err
	}
	m := finalModel.(keywordModel)
	if m.cancelled {
		return KeywordResult{Cancelled: true}, nil
	}
	return KeywordResult{Input: m.value}, nil
}
