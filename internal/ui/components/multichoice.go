package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// ChoiceMsg reports the option the user picked.
type ChoiceMsg struct {
	Index int
}

// MultiChoice is a lettered multiple-choice selector. Picking an option
// emits a ChoiceMsg; the owner calls Reveal once the answer is scored.
type MultiChoice struct {
	Question     string
	Options      []string
	Selected     int
	Revealed     bool
	CorrectIndex int
	ChosenIndex  int
}

// NewMultiChoice creates a new multiple-choice component.
func NewMultiChoice(question string, options []string) MultiChoice {
	return MultiChoice{
		Question:     question,
		Options:      options,
		CorrectIndex: -1,
		ChosenIndex:  -1,
	}
}

// Init returns nil.
func (m MultiChoice) Init() tea.Cmd {
	return nil
}

// Update handles arrows, Enter, number keys 1-9 and letter keys a-z.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Revealed {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
		return m, nil
	case "down", "j":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		}
		return m, nil
	case "enter":
		return m, m.pick(m.Selected)
	}

	if len(key) == 1 {
		switch c := key[0]; {
		case c >= '1' && c <= '9':
			return m, m.pick(int(c - '1'))
		case c >= 'a' && c <= 'z' && c != 'j' && c != 'k':
			return m, m.pick(int(c - 'a'))
		}
	}
	return m, nil
}

func (m *MultiChoice) pick(i int) tea.Cmd {
	if i < 0 || i >= len(m.Options) {
		return nil
	}
	m.Selected = i
	return func() tea.Msg { return ChoiceMsg{Index: i} }
}

// Reveal locks the selector and highlights the chosen and correct options.
func (m *MultiChoice) Reveal(chosen, correct int) {
	m.Revealed = true
	m.ChosenIndex = chosen
	m.CorrectIndex = correct
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Selected && !m.Revealed {
			prefix = "▸ "
		}
		line := prefix + bank.ChoiceLabel(i) + ". " + opt

		var style lipgloss.Style
		switch {
		case m.Revealed && i == m.CorrectIndex:
			style = theme.Correct
		case m.Revealed && i == m.ChosenIndex:
			style = theme.Incorrect
		case m.Revealed:
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		case i == m.Selected:
			style = theme.Selected
		default:
			style = theme.Unselected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return b.String()
}
