package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/quiz"
)

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Play one quiz as plain text (no TUI)",
	Long: `Run a single quiz on standard input and output.

Answers are choice letters (A, B, ...) or numbers (1, 2, ...). Handy for
checking a new question bank without starting the full interface.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		return runDrill(engine, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runDrill(engine *quiz.Engine, in io.Reader, out io.Writer) error {
	snap, err := engine.Start()
	if err != nil {
		return err
	}
	scanner := bufio.NewScanner(in)

	for snap.Phase == quiz.PhaseRunning {
		q := snap.Current
		fmt.Fprintf(out, "── Question %d/%d ──\n", snap.Position+1, snap.Total)
		fmt.Fprintln(out, q.Text)
		for i, c := range q.Choices {
			fmt.Fprintf(out, "  %s) %s\n", bank.ChoiceLabel(i), c)
		}

		choice := -1
		for choice < 0 {
			fmt.Fprint(out, "\nYour answer: ")
			if !scanner.Scan() {
				fmt.Fprintln(out, "\n(input closed)")
				return scanner.Err()
			}
			choice = parseChoice(scanner.Text(), len(q.Choices))
			if choice < 0 {
				fmt.Fprintf(out, "Pick A-%s or 1-%d.", bank.ChoiceLabel(len(q.Choices)-1), len(q.Choices))
			}
		}

		res, _ := engine.Answer(choice)
		if res.Correct {
			fmt.Fprintln(out, "\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Fprintf(out, "\033[31m✗ Wrong.\033[0m Answer: %s. %s\n",
				bank.ChoiceLabel(res.Question.CorrectIndex), res.Question.CorrectChoice())
		}
		if res.Question.Explanation != "" {
			fmt.Fprintf(out, "Explanation: %s\n", res.Question.Explanation)
		}
		fmt.Fprintln(out)

		snap = engine.Snapshot()
	}

	fmt.Fprintf(out, "── Quiz complete! Score: %d/%d (%s) ──\n", snap.Score, snap.Total, snap.Tier)
	return nil
}

// parseChoice accepts a letter or a 1-based number. It returns -1 for
// anything outside the n options.
func parseChoice(s string, n int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return -1
	}
	if i, err := strconv.Atoi(s); err == nil {
		if i >= 1 && i <= n {
			return i - 1
		}
		return -1
	}
	if len(s) == 1 {
		c := strings.ToUpper(s)[0]
		if i := int(c - 'A'); c >= 'A' && i < n {
			return i
		}
	}
	return -1
}
