package screen

import (
	"errors"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/quiz"
)

// Describe turns a load or start error into status text for the player.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, quiz.ErrEmptyBank):
		return "The question bank is empty. Load a file or the sample set first."
	case errors.Is(err, bank.ErrParseEmpty):
		return "That file has a header but no questions."
	case errors.Is(err, bank.ErrNoValidRows):
		return "No usable questions found. Every row needs question text."
	case errors.Is(err, bank.ErrInvalidFile):
		return "Could not read that file. Pick a CSV or JSON question bank."
	default:
		return err.Error()
	}
}
