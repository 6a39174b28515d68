// Package bank builds question banks from tabular text, JSON, and the
// bundled sample set.
package bank

import "errors"

var (
	// ErrParseEmpty means the input held no data rows below the header.
	ErrParseEmpty = errors.New("no data rows")

	// ErrNoValidRows means rows were present but none produced a question.
	ErrNoValidRows = errors.New("no valid question rows")

	// ErrInvalidFile means no file was supplied or its content was unreadable.
	ErrInvalidFile = errors.New("invalid question bank file")
)

// Question is a single multiple-choice question.
type Question struct {
	ID           string   `json:"id"`
	Text         string   `json:"question"`
	Choices      []string `json:"choices"`
	CorrectIndex int      `json:"answer"`
	Explanation  string   `json:"explanation,omitempty"`
}

// IsCorrect reports whether choice matches the correct index. An
// out-of-range CorrectIndex never matches a rendered choice.
func (q Question) IsCorrect(choice int) bool {
	return choice == q.CorrectIndex
}

// CorrectChoice returns the text of the correct choice, or "" when the
// index is out of range.
func (q Question) CorrectChoice() string {
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
		return ""
	}
	return q.Choices[q.CorrectIndex]
}

// Bank is an ordered question collection in source order.
type Bank []Question

// Clone returns a deep copy so callers can't mutate a shared bank.
func (b Bank) Clone() Bank {
	if b == nil {
		return nil
	}
	out := make(Bank, len(b))
	for i, q := range b {
		q.Choices = append([]string(nil), q.Choices...)
		out[i] = q
	}
	return out
}

// ChoiceLabel returns the letter shown for choice i ("A", "B", ...).
func ChoiceLabel(i int) string {
	if i < 0 || i >= 26 {
		return "?"
	}
	return string(rune('A' + i))
}
