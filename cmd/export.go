package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/bank"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the question bank as CSV or JSON",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		outPath, _ := cmd.Flags().GetString("out")

		var write func(io.Writer, bank.Bank) error
		switch format {
		case "csv":
			write = bank.Export
		case "json":
			write = bank.ExportJSON
		default:
			return fmt.Errorf("invalid format %q: must be csv or json", format)
		}

		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}
		b := engine.Bank()

		if outPath == "" || outPath == "-" {
			return write(cmd.OutOrStdout(), b)
		}

		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		if err := write(f, b); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d questions to %s\n", len(b), outPath)
		return nil
	},
}

func init() {
	exportCmd.Flags().String("format", "csv", "Output format: csv or json")
	exportCmd.Flags().String("out", "", "Output file (default stdout)")
}
