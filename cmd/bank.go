package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/bank"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the question bank",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the questions in the bank (the sample set unless --bank is given)",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		printBank(cmd, engine.Bank())
		return nil
	},
}

func printBank(cmd *cobra.Command, b bank.Bank) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-8s  %-50s  %7s  %s\n", "ID", "Question", "Choices", "Answer")
	fmt.Fprintln(out, strings.Repeat("─", 84))

	for _, q := range b {
		text := truncate(q.Text, 50)
		answer := bank.ChoiceLabel(q.CorrectIndex)
		if q.CorrectChoice() == "" {
			answer = "?"
		}
		fmt.Fprintf(out, "%-8s  %-50s  %7d  %s\n", q.ID, text, len(q.Choices), answer)
	}

	fmt.Fprintf(out, "\n%d questions\n", len(b))
}

// truncate shortens s to at most width terminal cells, ending in "...".
func truncate(s string, width int) string {
	return ansi.Truncate(s, width, "...")
}

func init() {
	bankCmd.AddCommand(bankListCmd)
}
