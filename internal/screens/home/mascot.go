package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle  MascotVariant = iota // default blue
	MascotHappy                      // gold, star eyes: a bank just loaded
	MascotAlert                      // orange, exclamation: last action failed
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ? ? │
└─────┘`

const mascotHappy = `┌─────┐
│ ★ ★ │
│  ▿  │
│ A B │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  △  │
│ ? ? │
└─────┘`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotHappy:
		art = mascotHappy
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
