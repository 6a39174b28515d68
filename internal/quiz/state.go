// Package quiz runs the quiz lifecycle: draw questions from a bank, score
// answers, and classify the final result.
package quiz

import (
	"errors"
	"math"

	"github.com/abhisek/quizdeck/internal/bank"
)

// ErrEmptyBank is returned when a quiz is started with no questions loaded.
var ErrEmptyBank = errors.New("question bank is empty")

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle     Phase = iota // No quiz in progress
	PhaseRunning               // Waiting for answers
	PhaseFinished              // All drawn questions answered
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseFinished:
		return "finished"
	}
	return "unknown"
}

// Tier is the end-of-quiz classification.
type Tier string

const (
	TierNone        Tier = ""
	TierPraise      Tier = "praise"
	TierEncourage   Tier = "encourage"
	TierDiscouraged Tier = "discouraged"
)

// Thresholds are the score fractions separating the tiers.
type Thresholds struct {
	Praise    float64
	Encourage float64
}

// DefaultThresholds returns 75% for praise and 40% for encourage.
func DefaultThresholds() Thresholds {
	return Thresholds{Praise: 0.75, Encourage: 0.4}
}

// Classify maps a score to a tier. Each cut-off is rounded up to a whole
// question, so a 4-question quiz needs 3 for praise and 2 for encourage.
func Classify(score, total int, th Thresholds) Tier {
	if total <= 0 {
		return TierNone
	}
	switch {
	case score >= cutoff(th.Praise, total):
		return TierPraise
	case score >= cutoff(th.Encourage, total):
		return TierEncourage
	default:
		return TierDiscouraged
	}
}

// cutoff is ceil(ratio*total). The product is rounded to 9 decimals first
// so float noise such as 2.0000000000000004 does not push it up a question.
func cutoff(ratio float64, total int) int {
	v := math.Round(ratio*float64(total)*1e9) / 1e9
	return int(math.Ceil(v))
}

// Outcome describes the effect of one answer.
type Outcome struct {
	Question bank.Question
	Choice   int
	Correct  bool

	// Position and Score are the values after the answer was applied.
	Position int
	Score    int
	Total    int

	Finished bool
	Tier     Tier
}

// Snapshot is a read-only view of a session for rendering.
type Snapshot struct {
	SessionID  string
	Generation uint64
	Phase      Phase
	Position   int
	Total      int
	Score      int
	Tier       Tier

	// Current is the question awaiting an answer; nil unless running.
	Current *bank.Question
}
