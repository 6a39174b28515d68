package home

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizdeck/internal/bank"
	"github.com/abhisek/quizdeck/internal/quiz"
	"github.com/abhisek/quizdeck/internal/router"
	"github.com/abhisek/quizdeck/internal/screen"
	"github.com/abhisek/quizdeck/internal/screens/loadfile"
	quizscreen "github.com/abhisek/quizdeck/internal/screens/quiz"
	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/layout"
)

// DefaultExportPath is where Export Bank writes when no path is configured.
const DefaultExportPath = "question_bank.csv"

// Options configures the home screen.
type Options struct {
	Engine        *quiz.Engine
	DrawSize      int
	FeedbackDelay time.Duration
	ExportPath    string
}

// HomeScreen is the idle screen: start a quiz or manage the bank.
type HomeScreen struct {
	opts      Options
	menu      components.Menu
	status    string
	statusErr bool
	mascot    MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	if opts.DrawSize < 1 {
		opts.DrawSize = quiz.DefaultDrawSize
	}
	if opts.ExportPath == "" {
		opts.ExportPath = DefaultExportPath
	}

	h := &HomeScreen{opts: opts}
	h.menu = components.NewMenu([]components.MenuItem{
		{Label: "START QUIZ", Action: h.startQuiz},
		{Label: "LOAD SAMPLE", Action: h.loadSample},
		{Label: "LOAD FILE", Action: h.loadFile},
		{Label: "EXPORT BANK", Action: h.exportBank},
		{Label: "EXIT", Action: func() tea.Cmd { return tea.Quit }},
	})
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(screen.StatusMsg); ok {
		h.setStatus(msg.Text, msg.IsError)
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header and footer
	termHeight := height + layout.HeaderHeight + layout.FooterHeight
	compact := layout.IsCompactHeight(termHeight) || layout.IsCompactWidth(width)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascot, cw))
	}
	sections = append(sections, renderStatsBar(h.opts.Engine.BankSize(), h.opts.DrawSize, cw, compact))
	if compact {
		sections = append(sections, renderArcadeMenuCompact(h.menu.Labels(), h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(h.menu.Labels(), h.menu.Selected, cw))
	}
	if h.status != "" {
		sections = append(sections, renderStatus(h.status, h.statusErr, cw))
	}

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) setStatus(text string, isError bool) {
	h.status = text
	h.statusErr = isError
	switch {
	case isError:
		h.mascot = MascotAlert
	case text != "":
		h.mascot = MascotHappy
	default:
		h.mascot = MascotIdle
	}
}

func (h *HomeScreen) startQuiz() tea.Cmd {
	snap, err := h.opts.Engine.Start()
	if err != nil {
		h.setStatus(screen.Describe(err), true)
		return nil
	}
	h.setStatus("", false)

	qs := quizscreen.New(h.opts.Engine, snap, h.opts.FeedbackDelay)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: qs}
	}
}

func (h *HomeScreen) loadSample() tea.Cmd {
	n := h.opts.Engine.LoadSample()
	h.setStatus(fmt.Sprintf("Loaded the sample set (%d questions).", n), false)
	return nil
}

func (h *HomeScreen) loadFile() tea.Cmd {
	lf := loadfile.New(h.opts.Engine)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: lf}
	}
}

func (h *HomeScreen) exportBank() tea.Cmd {
	b := h.opts.Engine.Bank()
	var buf bytes.Buffer
	if err := bank.Export(&buf, b); err != nil {
		h.setStatus(fmt.Sprintf("Export failed: %v", err), true)
		return nil
	}
	if err := os.WriteFile(h.opts.ExportPath, buf.Bytes(), 0o644); err != nil {
		h.setStatus(fmt.Sprintf("Export failed: %v", err), true)
		return nil
	}
	h.setStatus(fmt.Sprintf("Exported %d questions to %s.", len(b), h.opts.ExportPath), false)
	return nil
}
