package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/bank"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check that a question bank file loads",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := bank.ReadFile(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		unanswerable := 0
		for _, q := range b {
			if q.CorrectChoice() == "" {
				unanswerable++
				fmt.Fprintf(out, "warning: question %s has no choice matching its answer\n", q.ID)
			}
		}
		fmt.Fprintf(out, "%s: %d questions", args[0], len(b))
		if unanswerable > 0 {
			fmt.Fprintf(out, ", %d without a valid answer", unanswerable)
		}
		fmt.Fprintln(out)
		return nil
	},
}
