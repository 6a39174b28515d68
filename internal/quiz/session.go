package quiz

import (
	"math/rand/v2"

	"github.com/abhisek/quizdeck/internal/bank"

	"github.com/google/uuid"
)

// DefaultDrawSize is the number of questions drawn per quiz.
const DefaultDrawSize = 4

// Session tracks one quiz from start to finish. It is not safe for
// concurrent use; Engine adds locking.
type Session struct {
	drawSize   int
	thresholds Thresholds

	id         string
	generation uint64
	phase      Phase
	drawn      []bank.Question
	position   int
	score      int
	tier       Tier
}

// NewSession creates an idle session. A drawSize below 1 uses DefaultDrawSize.
func NewSession(drawSize int, th Thresholds) *Session {
	if drawSize < 1 {
		drawSize = DefaultDrawSize
	}
	return &Session{drawSize: drawSize, thresholds: th}
}

// Start draws min(drawSize, len(b)) questions without replacement and
// enters the running phase. Any previous session is superseded.
func (s *Session) Start(b bank.Bank, rng *rand.Rand) error {
	if len(b) == 0 {
		return ErrEmptyBank
	}

	s.drawn = draw(b, min(s.drawSize, len(b)), rng)
	s.position = 0
	s.score = 0
	s.tier = TierNone
	s.phase = PhaseRunning
	s.id = uuid.New().String()
	s.generation++
	return nil
}

// Answer scores choice against the current question and advances. It
// returns false without changing anything unless the session is running.
func (s *Session) Answer(choice int) (Outcome, bool) {
	if s.phase != PhaseRunning {
		return Outcome{}, false
	}

	q := s.drawn[s.position]
	correct := q.IsCorrect(choice)
	if correct {
		s.score++
	}
	s.position++

	if s.position == len(s.drawn) {
		s.phase = PhaseFinished
		s.tier = Classify(s.score, len(s.drawn), s.thresholds)
	}

	return Outcome{
		Question: q,
		Choice:   choice,
		Correct:  correct,
		Position: s.position,
		Score:    s.score,
		Total:    len(s.drawn),
		Finished: s.phase == PhaseFinished,
		Tier:     s.tier,
	}, true
}

// Retry returns to idle and clears the score. The drawn set is kept until
// the next Start.
func (s *Session) Retry() {
	s.score = 0
	s.tier = TierNone
	s.phase = PhaseIdle
	s.generation++
}

// Phase returns the current lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Generation changes on every Start and Retry. Deferred work captures it
// and compares before acting so it cannot touch a superseded session.
func (s *Session) Generation() uint64 {
	return s.generation
}

// Snapshot returns a copy of the session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:  s.id,
		Generation: s.generation,
		Phase:      s.phase,
		Position:   s.position,
		Total:      len(s.drawn),
		Score:      s.score,
		Tier:       s.tier,
	}
	if s.phase == PhaseRunning && s.position < len(s.drawn) {
		q := s.drawn[s.position]
		q.Choices = append([]string(nil), q.Choices...)
		snap.Current = &q
	}
	return snap
}

// Drawn returns a copy of the questions drawn for this session.
func (s *Session) Drawn() bank.Bank {
	return bank.Bank(s.drawn).Clone()
}

// draw picks k distinct questions using a partial Fisher-Yates shuffle.
func draw(b bank.Bank, k int, rng *rand.Rand) []bank.Question {
	idx := make([]int, len(b))
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + intN(rng, len(idx)-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	out := make([]bank.Question, k)
	for i := 0; i < k; i++ {
		q := b[idx[i]]
		q.Choices = append([]string(nil), q.Choices...)
		out[i] = q
	}
	return out
}

func intN(rng *rand.Rand, n int) int {
	if rng == nil {
		return rand.IntN(n)
	}
	return rng.IntN(n)
}
