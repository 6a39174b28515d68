package quiz

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// burstHeight is the number of rows reserved for the selection effect.
const burstHeight = 3

func (s *QuizScreen) View(width, height int) string {
	if s.snap.Current == nil {
		return renderCentered(width, theme.TextDim, "\n\n  No question to show.")
	}

	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString(s.renderProgress(cw))
	b.WriteString("\n\n")
	b.WriteString(components.Card(s.choices.View(), cw, theme.Border))
	b.WriteString("\n")
	b.WriteString(s.burst.Render(cw, burstHeight))
	b.WriteString("\n")
	if s.outcome != nil {
		b.WriteString(renderFeedback(s.outcome.Correct, s.outcome.Question, cw))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func (s *QuizScreen) renderProgress(cw int) string {
	label := fmt.Sprintf("Question %d of %d", s.snap.Position+1, s.snap.Total)
	done := s.snap.Position
	score := s.snap.Score
	if s.outcome != nil {
		done = s.outcome.Position
		score = s.outcome.Score
	}

	bar := components.NewProgressBar(label, done, s.snap.Total, true, cw)
	scoreLine := lipgloss.NewStyle().
		Foreground(theme.Success).
		Render(fmt.Sprintf("Score: %d", score))
	return bar.View() + "\n" + scoreLine
}

// renderFeedback shows the verdict and, for a wrong answer, the correct
// option before the explanation.
func renderFeedback(correct bool, q bank.Question, cw int) string {
	var b strings.Builder
	if correct {
		b.WriteString(theme.Correct.Render("Correct!"))
	} else {
		b.WriteString(theme.Incorrect.Render("Not quite"))
		if q.CorrectIndex >= 0 && q.CorrectIndex < len(q.Choices) {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(
				fmt.Sprintf("Correct answer: %s. %s", bank.ChoiceLabel(q.CorrectIndex), q.CorrectChoice())))
		}
	}

	if q.Explanation != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(cw).
			Foreground(theme.TextDim).
			Render(q.Explanation))
	}

	return lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(b.String())
}

func renderCentered(width int, fg color.Color, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(fg).
		Render(text)
}
