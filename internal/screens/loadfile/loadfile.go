package loadfile

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// LoadFileScreen prompts for a bank file path and loads it.
type LoadFileScreen struct {
	engine *quiz.Engine
	input  components.TextInput
	errMsg string
}

var _ screen.Screen = (*LoadFileScreen)(nil)
var _ screen.KeyHintProvider = (*LoadFileScreen)(nil)

// New creates a LoadFileScreen that loads into engine.
func New(engine *quiz.Engine) *LoadFileScreen {
	return &LoadFileScreen{
		engine: engine,
		input:  components.NewTextInput("question_bank.csv", 48),
	}
}

func (s *LoadFileScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *LoadFileScreen) Title() string {
	return "Load File"
}

func (s *LoadFileScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Load"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *LoadFileScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return s.submit()
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	if s.input.Value() != before {
		s.errMsg = ""
	}
	return s, cmd
}

func (s *LoadFileScreen) submit() (screen.Screen, tea.Cmd) {
	path := s.input.Value()
	if path == "" {
		return s, nil
	}

	n, err := s.engine.LoadFile(path)
	if err != nil {
		s.input.Submit(false)
		s.errMsg = screen.Describe(err)
		return s, nil
	}

	s.input.Submit(true)
	s.errMsg = ""
	return s, tea.Sequence(
		func() tea.Msg { return router.PopScreenMsg{} },
		screen.Status(fmt.Sprintf("Loaded %d questions from %s.", n, path), false),
	)
}

func (s *LoadFileScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Question bank file"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("CSV with a header row, or a JSON export"))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.StatusErr.Render(s.errMsg))
	}

	card := components.Card(b.String(), cw, theme.Border)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
