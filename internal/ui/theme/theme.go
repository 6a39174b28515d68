package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette: deep blue backdrop, bright accents
var (
	Primary   = lipgloss.Color("#3B82F6") // Quiz Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Particle palettes for end-of-quiz animations.
var (
	Fireworks = []color.Color{
		lipgloss.Color("#F43F5E"),
		lipgloss.Color("#FACC15"),
		lipgloss.Color("#22D3EE"),
		lipgloss.Color("#A855F7"),
		lipgloss.Color("#22C55E"),
		lipgloss.Color("#F97316"),
	}

	Balloons = []color.Color{
		lipgloss.Color("#F472B6"),
		lipgloss.Color("#C084FC"),
		lipgloss.Color("#FB7185"),
		lipgloss.Color("#FBBF24"),
	}

	SoftSparks = []color.Color{
		lipgloss.Color("#C8C8FF"),
		lipgloss.Color("#A5B4FC"),
	}
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	StatusOK = lipgloss.NewStyle().
			Foreground(Secondary)

	StatusErr = lipgloss.NewStyle().
			Foreground(Error)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(Text).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
