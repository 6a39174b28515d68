package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/results"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/effects"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// QuizScreen shows one question at a time, scores answers through the
// engine and hands off to the results screen when the quiz finishes.
type QuizScreen struct {
	engine  *qz.Engine
	delay   time.Duration
	snap    qz.Snapshot
	choices components.MultiChoice
	outcome *qz.Outcome
	burst   *effects.Field
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a QuizScreen for the quiz described by snap, which must come
// from a successful engine Start.
func New(engine *qz.Engine, snap qz.Snapshot, delay time.Duration) *QuizScreen {
	if delay <= 0 {
		delay = DefaultFeedbackDelay
	}
	s := &QuizScreen{
		engine: engine,
		delay:  delay,
		burst:  effects.NewField(nil),
	}
	s.show(snap)
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	if s.outcome != nil {
		return []layout.KeyHint{
			{Key: "…", Description: "Next question coming up"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4/A-D", Description: "Answer"},
		{Key: "↑↓ Enter", Description: "Pick"},
		{Key: "Esc", Description: "Leave quiz"},
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case components.ChoiceMsg:
		return s.answer(msg.Index)

	case advanceMsg:
		return s.advance(msg)

	case effects.FrameMsg:
		return s, s.burst.Advance(msg)

	case tea.KeyPressMsg:
		// Input is locked while feedback is showing.
		if s.outcome != nil {
			return s, nil
		}
		var cmd tea.Cmd
		s.choices, cmd = s.choices.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *QuizScreen) show(snap qz.Snapshot) {
	s.snap = snap
	s.outcome = nil
	if snap.Current != nil {
		s.choices = components.NewMultiChoice(snap.Current.Text, snap.Current.Choices)
	}
}

func (s *QuizScreen) answer(choice int) (screen.Screen, tea.Cmd) {
	if s.outcome != nil {
		return s, nil
	}

	out, ok := s.engine.Answer(choice)
	if !ok {
		return s, nil
	}

	s.outcome = &out
	s.choices.Reveal(choice, out.Question.CorrectIndex)
	s.burst.Select(out.Correct)

	return s, tea.Batch(
		s.burst.Animate(),
		advanceAfter(s.delay, s.engine.Generation(), out.Position),
	)
}

func (s *QuizScreen) advance(msg advanceMsg) (screen.Screen, tea.Cmd) {
	if msg.Generation != s.engine.Generation() {
		return s, nil
	}

	snap := s.engine.Snapshot()
	if snap.Position != msg.Position {
		return s, nil
	}

	switch snap.Phase {
	case qz.PhaseFinished:
		rs := results.New(s.engine, snap)
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: rs}
		}
	case qz.PhaseRunning:
		s.show(snap)
	}
	return s, nil
}
