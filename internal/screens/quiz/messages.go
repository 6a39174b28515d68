package quiz

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

// DefaultFeedbackDelay is how long answer feedback stays up before the next
// question.
const DefaultFeedbackDelay = 900 * time.Millisecond

// advanceMsg moves past the feedback for the answer at Position. It is
// dropped if the engine generation or position has moved on.
type advanceMsg struct {
	Generation uint64
	Position   int
}

func advanceAfter(d time.Duration, generation uint64, position int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return advanceMsg{Generation: generation, Position: position}
	})
}
