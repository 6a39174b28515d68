package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/components"
	"github.com/abhisek/quizdeck/internal/ui/theme"
)

const arcadeTitleFull = ` ██████╗ ██╗   ██╗██╗███████╗
██╔═══██╗██║   ██║██║╚══███╔╝
██║   ██║██║   ██║██║  ███╔╝
██║▄▄ ██║██║   ██║██║ ███╔╝
╚██████╔╝╚██████╔╝██║███████╗
 ╚══▀▀═╝  ╚═════╝ ╚═╝╚══════╝`

const arcadeTitleCompact = "Q · U · I · Z · D · E · C · K"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	art := arcadeTitleFull
	if compact {
		art = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar shows the bank size and how many questions a quiz draws.
func renderStatsBar(bankSize, drawSize, cw int, compact bool) string {
	bankStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	drawStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	perQuiz := min(drawSize, bankSize)
	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s",
			bankStyle.Render(fmt.Sprintf("▤%d", bankSize)),
			drawStyle.Render(fmt.Sprintf("?%d", perQuiz)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s",
			bankStyle.Render(fmt.Sprintf("▤ %d IN BANK", bankSize)),
			drawStyle.Render(fmt.Sprintf("? %d PER QUIZ", perQuiz)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderArcadeMenu renders each menu item as a fixed-width button.
func renderArcadeMenu(items []string, selected int, cw int) string {
	buttons := make([]string, len(items))
	for i, label := range items {
		buttons[i] = components.ArcadeButton(label, i == selected, buttonWidth)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderArcadeMenuCompact renders menu items as plain lines for terminals
// where bordered buttons would overflow.
func renderArcadeMenuCompact(items []string, selected int, cw int) string {
	lines := make([]string, len(items))
	for i, label := range items {
		if i == selected {
			lines[i] = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.ArcadeYellow).
				Bold(true).
				Render(" ▸ " + label + " ")
			continue
		}
		lines[i] = lipgloss.NewStyle().
			Foreground(theme.Text).
			Render("   " + label)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderStatus renders the one-line status under the menu.
func renderStatus(text string, isError bool, cw int) string {
	style := theme.StatusOK
	if isError {
		style = theme.StatusErr
	}
	return style.
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderMascotBox renders the mascot centered at content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
