package quiz

import (
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizdeck/internal/bank"
	qz "github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screens/results"
	"github.com/abhisek/quizdeck/internal/ui/components"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// newRunningScreen starts a two-question quiz where "A" is always right.
// Both questions share an explanation so the draw order does not matter.
func newRunningScreen(t *testing.T) (*QuizScreen, *qz.Engine) {
	t.Helper()
	b := bank.Bank{
		{ID: "1", Text: "First?", Choices: []string{"yes", "no"}, CorrectIndex: 0, Explanation: "It is."},
		{ID: "2", Text: "Second?", Choices: []string{"yes", "no"}, CorrectIndex: 0, Explanation: "It is."},
	}
	e := qz.NewEngine(qz.Options{Bank: b, DrawSize: 2})
	snap, err := e.Start()
	require.NoError(t, err)
	return New(e, snap, time.Millisecond), e
}

func choose(t *testing.T, s *QuizScreen, key rune) {
	t.Helper()
	_, cmd := s.Update(keyPress(key))
	require.NotNil(t, cmd)
	msg, ok := cmd().(components.ChoiceMsg)
	require.True(t, ok)
	_, cmd = s.Update(msg)
	require.NotNil(t, cmd)
}

func TestAnswer_ShowsFeedbackAndLocksInput(t *testing.T) {
	s, e := newRunningScreen(t)

	choose(t, s, 'b')
	require.NotNil(t, s.outcome)
	assert.False(t, s.outcome.Correct)

	view := s.View(80, 30)
	assert.Contains(t, view, "Not quite")
	assert.Contains(t, view, "Correct answer: A. yes")
	assert.Contains(t, view, "It is.")

	_, cmd := s.Update(keyPress('a'))
	assert.Nil(t, cmd, "input locked during feedback")

	_, cmd = s.Update(components.ChoiceMsg{Index: 0})
	assert.Nil(t, cmd)
	assert.Equal(t, 1, e.Snapshot().Position, "second answer not applied")
}

func TestAdvance_MovesToNextQuestion(t *testing.T) {
	s, e := newRunningScreen(t)

	choose(t, s, 'a')
	_, cmd := s.Update(advanceMsg{Generation: e.Generation(), Position: 1})
	assert.Nil(t, cmd)
	assert.Nil(t, s.outcome)
	assert.Equal(t, 1, s.snap.Position)
	assert.Equal(t, 1, s.snap.Score)
}

func TestAdvance_DropsStaleMessages(t *testing.T) {
	s, e := newRunningScreen(t)
	choose(t, s, 'a')

	_, cmd := s.Update(advanceMsg{Generation: e.Generation() + 1, Position: 1})
	assert.Nil(t, cmd)
	assert.NotNil(t, s.outcome, "foreign generation ignored")

	_, cmd = s.Update(advanceMsg{Generation: e.Generation(), Position: 5})
	assert.Nil(t, cmd)
	assert.NotNil(t, s.outcome, "foreign position ignored")

	gen := e.Generation()
	_, err := e.Start()
	require.NoError(t, err)
	_, cmd = s.Update(advanceMsg{Generation: gen, Position: 1})
	assert.Nil(t, cmd)
	assert.NotNil(t, s.outcome, "restarted quiz invalidates pending advance")
}

func TestAdvance_FinishReplacesWithResults(t *testing.T) {
	s, e := newRunningScreen(t)

	choose(t, s, 'a')
	s.Update(advanceMsg{Generation: e.Generation(), Position: 1})
	choose(t, s, 'a')
	require.True(t, s.outcome.Finished)

	_, cmd := s.Update(advanceMsg{Generation: e.Generation(), Position: 2})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	_, ok = msg.Screen.(*results.ResultsScreen)
	assert.True(t, ok)
}

func TestView_ShowsProgress(t *testing.T) {
	s, _ := newRunningScreen(t)
	view := s.View(80, 30)
	assert.Contains(t, view, "Question 1 of 2")
	assert.Contains(t, view, "Score: 0")
}

func TestRenderFeedback_CorrectAnswerLine(t *testing.T) {
	tests := []struct {
		name string
		q    bank.Question
		want string
	}{
		{"text choice", bank.Question{Choices: []string{"x", "y"}, CorrectIndex: 1}, "Correct answer: B. y"},
		{"empty padded choice", bank.Question{Choices: []string{"x", ""}, CorrectIndex: 1}, "Correct answer: B."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, renderFeedback(false, tt.q, 60), tt.want)
		})
	}

	outOfRange := bank.Question{Choices: []string{"x"}, CorrectIndex: 3}
	assert.NotContains(t, renderFeedback(false, outOfRange, 60), "Correct answer")
	assert.NotContains(t, renderFeedback(true, bank.Question{Choices: []string{"x"}}, 60), "Correct answer")
}
