// Package results shows the final score of a quiz with an end animation
// matched to the score tier.
package results

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/effects"
	"github.com/abhisek/quizdeck/internal/ui/layout"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// bandHeight is the number of rows given to the end animation.
const bandHeight = 6

// ResultsScreen displays the outcome of a finished quiz.
type ResultsScreen struct {
	engine *qz.Engine
	snap   qz.Snapshot
	field  *effects.Field
	retry  components.Button
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates a ResultsScreen for the finished quiz in snap.
func New(engine *qz.Engine, snap qz.Snapshot) *ResultsScreen {
	s := &ResultsScreen{
		engine: engine,
		snap:   snap,
		field:  effects.NewField(nil),
	}
	s.retry = components.NewButton("RETRY", "r", true, s.doRetry)
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	return s.field.Loop(ModeFor(s.snap.Tier))
}

func (s *ResultsScreen) Title() string {
	return "Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "R/Enter", Description: "Retry"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case effects.FrameMsg:
		return s, s.field.Advance(msg)
	case tea.KeyPressMsg:
		// The press handler disables the button, so the copy is not stored.
		_, cmd := s.retry.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *ResultsScreen) doRetry() tea.Cmd {
	s.engine.Retry()
	s.field.Stop()
	s.retry.Active = false
	return tea.Sequence(
		func() tea.Msg { return router.PopScreenMsg{} },
		screen.Status("Ready for another round.", false),
	)
}

func (s *ResultsScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(s.field.Render(cw, bandHeight))
	b.WriteString("\n")

	var card strings.Builder
	card.WriteString(lipgloss.NewStyle().
		Width(cw - 4).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render(fmt.Sprintf("%d / %d", s.snap.Score, s.snap.Total)))
	card.WriteString("\n\n")
	card.WriteString(centered(cw-4, theme.Text,
		fmt.Sprintf("Quiz complete! Score: %d/%d", s.snap.Score, s.snap.Total)))
	card.WriteString("\n")
	card.WriteString(centered(cw-4, tierColor(s.snap.Tier), Message(s.snap.Tier)))
	card.WriteString("\n\n")
	card.WriteString(lipgloss.PlaceHorizontal(cw-4, lipgloss.Center, s.retry.View()))

	b.WriteString(components.Card(card.String(), cw, tierColor(s.snap.Tier)))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

// ModeFor picks the end animation for a tier.
func ModeFor(t qz.Tier) effects.Mode {
	switch t {
	case qz.TierPraise:
		return effects.ModeFireworks
	case qz.TierEncourage:
		return effects.ModeBalloons
	case qz.TierDiscouraged:
		return effects.ModeSparks
	}
	return effects.ModeNone
}

// Message is the line shown under the score for a tier.
func Message(t qz.Tier) string {
	switch t {
	case qz.TierPraise:
		return "Excellent! You really know your stuff."
	case qz.TierEncourage:
		return "Not bad, keep it up."
	case qz.TierDiscouraged:
		return "Don't give up. Try again and you'll improve."
	}
	return ""
}

func tierColor(t qz.Tier) color.Color {
	switch t {
	case qz.TierPraise:
		return theme.Success
	case qz.TierEncourage:
		return theme.ArcadeCyan
	}
	return theme.Secondary
}

func centered(width int, fg color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Render(text)
}
