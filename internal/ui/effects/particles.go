// Package effects renders small particle animations in the terminal: the
// burst shown when an answer is picked and the end-of-quiz celebrations.
package effects

import (
	"image/color"
	"math"
	"math/rand/v2"
	"strings"
	"sync/atomic"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizdeck/internal/ui/theme"
)

// FrameInterval is the animation tick rate.
const FrameInterval = 80 * time.Millisecond

// Drag is applied to particle velocity every frame.
const Drag = 0.96

// Mode selects an end-of-quiz animation.
type Mode int

const (
	ModeNone Mode = iota
	ModeFireworks
	ModeBalloons
	ModeSparks
)

// Particle is one animated glyph. Positions are normalized to [0,1] on both
// axes and mapped onto the render grid.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   color.Color
	Glyph   string
}

// FrameMsg advances the field with the matching ID.
type FrameMsg struct {
	Field uint64
}

var fieldIDs atomic.Uint64

// Field owns a set of particles and its frame loop.
type Field struct {
	id        uint64
	rng       *rand.Rand
	particles []Particle
	pending   bool
	loop      Mode
}

// NewField creates an empty field. A nil rng uses the global source.
func NewField(rng *rand.Rand) *Field {
	return &Field{id: fieldIDs.Add(1), rng: rng}
}

// ID identifies the field's frame messages.
func (f *Field) ID() uint64 {
	return f.id
}

// Alive returns the number of live particles.
func (f *Field) Alive() int {
	return len(f.particles)
}

// Particles returns a copy of the live particles.
func (f *Field) Particles() []Particle {
	return append([]Particle(nil), f.particles...)
}

// Burst spawns n particles around (x, y) flying outward.
func (f *Field) Burst(x, y float64, n int, palette []color.Color, speed float64, life int) {
	for i := 0; i < n; i++ {
		angle := f.float() * 2 * math.Pi
		v := speed * (0.2 + 0.8*f.float())
		f.particles = append(f.particles, Particle{
			X:       x + (f.float()-0.5)*0.05,
			Y:       y + (f.float()-0.5)*0.05,
			VX:      math.Cos(angle) * v,
			VY:      math.Sin(angle) * v,
			Life:    life,
			MaxLife: life,
			Color:   f.pick(palette),
		})
	}
}

// Rise spawns n particles below the bottom edge drifting upward.
func (f *Field) Rise(n int, palette []color.Color, glyph string, speed float64, life int) {
	for i := 0; i < n; i++ {
		f.particles = append(f.particles, Particle{
			X:       0.05 + 0.9*f.float(),
			Y:       1 + 0.3*f.float(),
			VX:      (f.float() - 0.5) * speed * 0.3,
			VY:      -speed * (0.6 + 0.4*f.float()),
			Life:    life,
			MaxLife: life,
			Color:   f.pick(palette),
			Glyph:   glyph,
		})
	}
}

// Select spawns the short burst shown when an answer is picked.
func (f *Field) Select(correct bool) {
	c := theme.Error
	if correct {
		c = theme.Success
	}
	f.Burst(0.5, 0.5, 18, []color.Color{c}, 0.09, 10)
}

// Celebrate spawns one wave of the given end animation.
func (f *Field) Celebrate(mode Mode) {
	switch mode {
	case ModeFireworks:
		for i := 0; i < 3; i++ {
			x := 0.2 + 0.6*f.float()
			y := 0.2 + 0.4*f.float()
			f.Burst(x, y, 40, theme.Fireworks, 0.08, 16)
		}
	case ModeBalloons:
		// Balloons drift slower than sparks travel, so they live longer.
		f.Rise(20, theme.Balloons, "●", 0.05, 36)
	case ModeSparks:
		f.Rise(16, theme.SoftSparks, "✧", 0.03, 44)
	}
}

// Loop celebrates with mode and respawns a new wave whenever the field
// empties, until Stop is called.
func (f *Field) Loop(mode Mode) tea.Cmd {
	f.loop = mode
	f.Celebrate(mode)
	return f.Animate()
}

// Stop ends looping; live particles finish their course.
func (f *Field) Stop() {
	f.loop = ModeNone
}

// Step moves every particle one frame and drops dead ones.
func (f *Field) Step() {
	live := f.particles[:0]
	for _, p := range f.particles {
		p.X += p.VX
		p.Y += p.VY
		p.VX *= Drag
		if p.Glyph == "" {
			p.VY *= Drag
		}
		p.Life--
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	f.particles = live
}

// Animate schedules the next frame unless one is already pending.
func (f *Field) Animate() tea.Cmd {
	if f.pending || (len(f.particles) == 0 && f.loop == ModeNone) {
		return nil
	}
	f.pending = true
	id := f.id
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{Field: id}
	})
}

// Advance handles a frame message. Messages for other fields are ignored.
func (f *Field) Advance(msg FrameMsg) tea.Cmd {
	if msg.Field != f.id {
		return nil
	}
	f.pending = false
	f.Step()
	if len(f.particles) == 0 && f.loop != ModeNone {
		f.Celebrate(f.loop)
	}
	return f.Animate()
}

// Render draws the particles onto a width x height grid of cells.
func (f *Field) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	cells := make([][]string, height)
	for y := range cells {
		cells[y] = make([]string, width)
	}

	for _, p := range f.particles {
		cx := int(p.X * float64(width))
		cy := int(p.Y * float64(height))
		if p.X < 0 || p.Y < 0 || cx >= width || cy >= height {
			continue
		}
		cells[cy][cx] = lipgloss.NewStyle().Foreground(p.Color).Render(glyphFor(p))
	}

	lines := make([]string, height)
	for y, row := range cells {
		var b strings.Builder
		for _, c := range row {
			if c == "" {
				b.WriteByte(' ')
				continue
			}
			b.WriteString(c)
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func glyphFor(p Particle) string {
	if p.Glyph != "" {
		return p.Glyph
	}
	frac := float64(p.Life) / float64(max(p.MaxLife, 1))
	switch {
	case frac > 0.66:
		return "✦"
	case frac > 0.33:
		return "*"
	default:
		return "·"
	}
}

func (f *Field) float() float64 {
	if f.rng == nil {
		return rand.Float64()
	}
	return f.rng.Float64()
}

func (f *Field) pick(palette []color.Color) color.Color {
	if len(palette) == 0 {
		return theme.Text
	}
	if f.rng == nil {
		return palette[rand.IntN(len(palette))]
	}
	return palette[f.rng.IntN(len(palette))]
}
