package cmd

import (
	"flag"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/config"
)

// cfg is loaded once per invocation before any subcommand runs.
var cfg = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "quizdeck",
	Short: "Multiple-choice quiz in the terminal",
	Long:  "Quizdeck draws a short quiz from a question bank (CSV or JSON) and scores it as you play.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// glog reads its settings from the standard flag set.
		_ = flag.CommandLine.Parse(nil)

		path, _ := cmd.Flags().GetString("config")
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides QUIZDECK_CONFIG env var)")
	rootCmd.PersistentFlags().String("bank", "", "Question bank file (CSV or JSON) to load at start")
	rootCmd.PersistentFlags().String("bank-url", "", "URL or path fetched in the background at start (overrides default_bank)")
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
