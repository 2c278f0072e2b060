package prompt

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/project-switch/project-switch/internal/ui/styles"
)

// TextInputResult holds the result of a text input prompt.
type TextInputResult struct {
	Value     string
	Cancelled bool
}

type textInputModel struct {
	textInput textinput.Model
	prompt    string
	required  bool
	invalid   bool
	done      bool
	cancelled bool
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		switch msg.String() {
		case "enter":
			if m.required && strings.TrimSpace(m.textInput.Value()) == "" {
				m.invalid = true
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}
	m.invalid = false
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m textInputModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	view := fmt.Sprintf("%s\n%s", m.prompt, m.textInput.View())
	if m.invalid {
		view += "\n" + styles.ErrorStyle.Render("a value is required")
	}
	return tea.NewView(view)
}

func newTextInputModel(prompt, placeholder, initial string, required bool) textInputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 156
	ti.SetWidth(50)
	ti.SetValue(initial)
	ti.CursorEnd()

	return textInputModel{
		textInput: ti,
		prompt:    prompt,
		required:  required,
	}
}

// TextInput shows a text input prompt and returns the user's input.
// initial pre-fills the input. When required, enter is refused until the
// input holds non-blank text.
func TextInput(prompt, placeholder, initial string, required bool) (TextInputResult, error) {
	finalModel, err := run(newTextInputModel(prompt, placeholder, initial, required))
	if err != nil {
		return TextInputResult{}, err
	}
	m := finalModel.(textInputModel)
	return TextInputResult{
		Value:     strings.TrimSpace(m.textInput.Value()),
		Cancelled: m.cancelled,
	}, nil
}
