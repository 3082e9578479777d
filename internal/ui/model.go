package ui

import (
	"fmt"
	"image/color"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/olivier-w/ringbar/internal/render"
	"github.com/olivier-w/ringbar/internal/ring"
)

// Options configures a Model.
type Options struct {
	Style      ring.Style
	Progress   int
	Animate    bool
	Processing bool // hand over to processing after the opening sweep
	Step       int  // charge added per processing cycle, in percent
	FPS        int
	Profile    termenv.Profile
	Logger     *slog.Logger
}

// frameCache holds the last rendered ring. It is shared between copies of
// Model so the ring's invalidate callback can reach it.
type frameCache struct {
	dirty      bool
	cols, rows int
	view       string
}

// charger is the demo angle supplier: every processing cycle adds step
// percent, starting over once full.
type charger struct {
	level int
	step  int
}

func (c *charger) next() float32 {
	c.level += c.step
	if c.level > 100 {
		c.level = c.step
	}
	return ring.PercentToAngle(c.level)
}

// Model is the Bubbletea model hosting one progress ring.
type Model struct {
	bar     *ring.Bar
	cache   *frameCache
	charge  *charger
	fps     int
	profile termenv.Profile

	animate    bool
	ticking    bool
	paletteIdx int
	errMsg     string

	width    int
	height   int
	linear   progress.Model
	help     help.Model
	quitting bool
}

// New creates a Model and applies the initial progress.
func New(opts Options) Model {
	cache := &frameCache{dirty: true}
	ringOpts := []ring.Option{ring.WithInvalidate(func() { cache.dirty = true })}
	if opts.Logger != nil {
		ringOpts = append(ringOpts, ring.WithLogger(opts.Logger))
	}
	bar := ring.New(opts.Style, ringOpts...)

	m := Model{
		bar:     bar,
		cache:   cache,
		charge:  &charger{level: opts.Progress, step: max(opts.Step, 1)},
		fps:     max(opts.FPS, 1),
		profile: opts.Profile,
		animate: opts.Animate,
		linear:  progress.New(progress.WithSolidFill(hexOf(opts.Style.ProgressColor)), progress.WithoutPercentage()),
		help:    help.New(),
	}
	if opts.Processing {
		if err := bar.SetProcessingAnimation(true, m.charge.next); err != nil {
			m.errMsg = err.Error()
		}
	}
	bar.SetProgress(opts.Progress, opts.Animate)
	m.ticking = bar.Animating()
	return m
}

// Bar exposes the hosted ring.
func (m Model) Bar() *ring.Bar { return m.bar }

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle("ringbar")}
	if m.ticking {
		cmds = append(cmds, frameCmd(m.fps))
	}
	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case frameMsg:
		if m.bar.Advance(time.Time(msg)) {
			return m, frameCmd(m.fps)
		}
		m.ticking = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.linear.Width = min(max(msg.Width-12, 10), 60)
		m.help.Width = msg.Width
		m.cache.dirty = true
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		m.bar.StopProcessingAnimation()
		return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
	case key.Matches(msg, keys.Up):
		m.setProgress(percentOf(m.bar.State().End) + 5)
	case key.Matches(msg, keys.Down):
		m.setProgress(percentOf(m.bar.State().End) - 5)
	case key.Matches(msg, keys.Jump):
		m.setProgress(jumpPercent(msg.String()))
	case key.Matches(msg, keys.Animate):
		m.animate = !m.animate
	case key.Matches(msg, keys.Process):
		m.errMsg = ""
		if err := m.bar.ShowProcessingAnimation(m.charge.next); err != nil {
			m.errMsg = err.Error()
		}
	case key.Matches(msg, keys.Stop):
		m.bar.StopProcessingAnimation()
	case key.Matches(msg, keys.Color):
		m.paletteIdx = (m.paletteIdx + 1) % len(progressPalette)
		c := progressPalette[m.paletteIdx]
		m.bar.SetProgressColor(c)
		m.linear = progress.New(progress.WithSolidFill(hexOf(c)), progress.WithoutPercentage())
		m.linear.Width = min(max(m.width-12, 10), 60)
	default:
		return m, nil
	}
	cmd := m.ensureFrames()
	return m, cmd
}

func (m *Model) setProgress(percent int) {
	percent = min(max(percent, 0), 100)
	m.charge.level = percent
	m.bar.SetProgress(percent, m.animate)
}

// ensureFrames starts the frame loop when an animation is running and no
// loop is scheduled yet.
func (m *Model) ensureFrames() tea.Cmd {
	if !m.bar.Animating() || m.ticking {
		return nil
	}
	m.ticking = true
	return frameCmd(m.fps)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	w, h := m.width, m.height
	if w < 30 {
		w = 50
	}
	if h < 12 {
		h = 24
	}
	cols, rows := w-4, h-9

	if m.cache.dirty || m.cache.cols != cols || m.cache.rows != rows {
		canvas := render.NewBraille(cols, rows, render.WithProfile(m.profile))
		m.bar.Draw(canvas, canvas.Width(), canvas.Height())
		m.cache.view = canvas.Render()
		m.cache.cols, m.cache.rows = cols, rows
		m.cache.dirty = false
	}

	state := m.bar.State()
	shown := percentOf(state.MarkerAngle())

	var b strings.Builder
	b.WriteString("\n  ")
	b.WriteString(headerStyle.Render("ringbar"))
	b.WriteString("\n\n")
	b.WriteString(indentBlock(m.cache.view, "  "))
	b.WriteString("\n\n  ")
	b.WriteString(m.linear.ViewAs(float64(shown) / 100))
	b.WriteString("  ")
	b.WriteString(percentStyle.Render(ring.Label(state.MarkerAngle())))
	b.WriteString("\n  ")
	b.WriteString(statusStyle.Render(renderStatus(state, m.animate)))
	b.WriteString("\n")
	if m.errMsg != "" {
		b.WriteString("  ")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}
	b.WriteString("\n  ")
	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}

func hexOf(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
