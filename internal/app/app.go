// Package app wires the screens into the root Bubble Tea model.
package app

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/golang/glog"

	"github.com/abhisek/quizdeck/internal/config"
	"github.com/abhisek/quizdeck/internal/fetch"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/home"
	"github.com/abhisek/quizdeck/internal/screens/welcome"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// minBankText is the shortest fetched text worth parsing. Anything shorter
// is treated as a missing bank.
const minBankText = 10

// Options holds dependencies for the app.
type Options struct {
	Engine *quiz.Engine
	Config config.Config

	// Fetcher and FetchSource enable the startup bank fetch. An empty
	// source skips it.
	Fetcher     *fetch.Fetcher
	FetchSource string

	// SkipSplash starts on the home screen.
	SkipSplash bool
}

// bankFetchedMsg carries the result of the startup fetch.
type bankFetchedMsg struct {
	Source string
	Text   string
	Err    error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(home.Options{
			Engine:        opts.Engine,
			DrawSize:      opts.Config.DrawSize,
			FeedbackDelay: opts.Config.FeedbackDelay,
		})
	}

	var initial screen.Screen
	if opts.SkipSplash {
		initial = homeFactory()
	} else {
		initial = welcome.New(homeFactory)
	}

	return AppModel{
		opts:   opts,
		router: router.New(initial),
	}
}

func (m AppModel) Init() tea.Cmd {
	var cmds []tea.Cmd
	if active := m.router.Active(); active != nil {
		cmds = append(cmds, active.Init())
	}
	if m.opts.Fetcher != nil && m.opts.FetchSource != "" {
		cmds = append(cmds, fetchBank(m.opts.Fetcher, m.opts.FetchSource))
	}
	return tea.Batch(cmds...)
}

func fetchBank(f *fetch.Fetcher, src string) tea.Cmd {
	return func() tea.Msg {
		text, err := f.Fetch(context.Background(), src)
		return bankFetchedMsg{Source: src, Text: text, Err: err}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case bankFetchedMsg:
		return m, m.applyFetched(msg)

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// applyFetched loads fetched bank text. A failed or empty fetch keeps the
// current bank without telling the player.
func (m AppModel) applyFetched(msg bankFetchedMsg) tea.Cmd {
	if msg.Err != nil {
		glog.V(2).Infof("startup bank fetch from %s skipped: %v", msg.Source, msg.Err)
		return nil
	}
	if len(msg.Text) <= minBankText {
		glog.V(2).Infof("startup bank fetch from %s returned no usable text", msg.Source)
		return nil
	}

	n, err := m.opts.Engine.LoadText(msg.Text)
	if err != nil {
		glog.Warningf("startup bank from %s rejected: %v", msg.Source, err)
		return nil
	}
	return m.router.Update(screen.StatusMsg{
		Text: fmt.Sprintf("Loaded %d questions from %s.", n, msg.Source),
	})
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.opts.Engine.BankSize(), m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	if p, ok := active.(screen.KeyHintProvider); ok {
		return p.KeyHints()
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "Any key", Description: "Continue"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Engine == nil {
		opts.Engine = quiz.NewEngine(quiz.Options{})
	}
	if opts.Config == (config.Config{}) {
		opts.Config = config.DefaultConfig()
	}

	start := time.Now()
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	glog.V(1).Infof("session ended after %s", time.Since(start).Round(time.Second))
	return nil
}
