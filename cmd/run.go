package cmd

import (
	"fmt"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/abhisek/quizdeck/internal/app"
	"github.com/abhisek/quizdeck/internal/fetch"
	"github.com/abhisek/quizdeck/internal/quiz"
)

// newEngine builds an engine from the loaded config and the --bank flag.
// Without --bank the engine starts on the bundled sample.
func newEngine(cmd *cobra.Command) (*quiz.Engine, error) {
	e := quiz.NewEngine(quiz.Options{
		DrawSize: cfg.DrawSize,
		Thresholds: quiz.Thresholds{
			Praise:    cfg.PraiseRatio,
			Encourage: cfg.EncourageRatio,
		},
	})

	path, _ := cmd.Flags().GetString("bank")
	if path == "" {
		return e, nil
	}
	if _, err := e.LoadFile(path); err != nil {
		return nil, fmt.Errorf("load bank: %w", err)
	}
	return e, nil
}

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	engine, err := newEngine(cmd)
	if err != nil {
		return err
	}

	opts := app.Options{
		Engine: engine,
		Config: cfg,
	}

	// An explicit --bank wins over the background fetch.
	bankPath, _ := cmd.Flags().GetString("bank")
	source, _ := cmd.Flags().GetString("bank-url")
	if source == "" && bankPath == "" {
		source = cfg.DefaultBank
	}
	if source != "" {
		opts.Fetcher = fetch.New(fetch.WithTimeout(cfg.FetchTimeout))
		opts.FetchSource = source
	}
	if skip, err := cmd.Flags().GetBool("no-splash"); err == nil {
		opts.SkipSplash = skip
	}

	defer glog.Flush()
	return app.Run(opts)
}
