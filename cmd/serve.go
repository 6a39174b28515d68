package cmd

import (
	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/bankserver"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the question bank over HTTP",
	Long: `Serve the active bank at /question_bank.csv and /question_bank.json.

Another quizdeck can pick it up with --bank-url http://host:port/question_bank.csv.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := newEngine(cmd)
		if err != nil {
			return err
		}

		addr, _ := cmd.Flags().GetString("addr")
		if addr == "" {
			addr = cfg.ServeAddr
		}
		glog.Infof("serving %d questions on %s", engine.BankSize(), addr)
		defer glog.Flush()
		return bankserver.ListenAndServe(addr, engine)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides serve_addr)")
}
