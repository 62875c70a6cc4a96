package tui

import (
	"fmt"
	"image/color"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mad-life/internal/core"
	"mad-life/internal/sim"
)

// footerHeight is the number of terminal lines below the grid.
const footerHeight = 2

// Options configures a terminal session.
type Options struct {
	FPS        int // frames per second
	TPS        int // generations per second while running
	Background color.Color
	Renderer   *lipgloss.Renderer // nil = default terminal renderer
}

// Model is the Bubble Tea model driving one Life. Input is queued as it
// arrives and applied at the start of the next frame, before the generation
// step, so every frame follows input → update → draw.
type Model struct {
	life   *sim.Life
	screen *Screen
	keys   KeyMap
	help   help.Model
	pacer  *core.FixedStep
	fps    int
	events []sim.Event

	status lipgloss.Style
	stats  atomic.Pointer[sim.Stats]

	quitting bool
}

// NewModel creates a model for life. The screen is sized to the grid since
// one character is one cell.
func NewModel(life *sim.Life, opts Options) *Model {
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Background == nil {
		opts.Background = color.Black
	}
	lg := opts.Renderer
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	size := life.Size()
	m := &Model{
		life:   life,
		screen: NewScreen(size.W*life.CellSize(), size.H*life.CellSize(), opts.Background, lg),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		pacer:  core.NewFixedStep(opts.TPS),
		fps:    opts.FPS,
		status: lg.NewStyle().Bold(true),
	}
	m.publish()
	return m
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.fps)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		// The terminal may have been cleared; repaint everything.
		m.life.Invalidate()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Pause):
		m.queueKey(sim.KeySpace)
	case key.Matches(msg, m.keys.Step):
		if msg.String() == "left" {
			m.queueKey(sim.KeyLeft)
		} else {
			m.queueKey(sim.KeyRight)
		}
	case key.Matches(msg, m.keys.Clear):
		m.queueKey(sim.KeyClear)
	case key.Matches(msg, m.keys.Random):
		m.queueKey(sim.KeyRandom)
	}
	return m, nil
}

// Terminals only report key presses, so each press stands in for a release.
func (m *Model) queueKey(k sim.Key) {
	m.events = append(m.events, sim.Event{Type: sim.KeyUp, Key: k})
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	ev := sim.Event{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		ev.Type = sim.PointerDown
	case tea.MouseActionRelease:
		ev.Type = sim.PointerUp
	case tea.MouseActionMotion:
		ev.Type = sim.PointerMove
	default:
		return
	}
	m.events = append(m.events, ev)
}

func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	for _, ev := range m.events {
		m.life.HandleEvent(ev)
	}
	m.events = m.events[:0]

	if m.pacer.ShouldStep() {
		m.life.Update()
	}
	m.publish()
	return m, tickCmd(m.fps)
}

func (m *Model) publish() {
	st := m.life.Stats()
	m.stats.Store(&st)
}

// Summary returns the statistics as of the last frame. It is safe to call
// from another goroutine.
func (m *Model) Summary() sim.Stats {
	if st := m.stats.Load(); st != nil {
		return *st
	}
	return sim.Stats{}
}

// View renders the grid followed by a status line and the key help.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	m.life.Draw(m.screen)

	st := m.life.Stats()
	state := "running"
	if m.life.Paused() {
		state = "paused"
	}
	status := m.status.Render(fmt.Sprintf("gen %d  pop %d  peak %d  [%s]", st.Generation, st.Population, st.Peak, state))
	return m.screen.String() + "\n" + status + "\n" + m.help.View(m.keys)
}

// Run starts a local Bubble Tea program for life and returns the final
// statistics once the user quits.
func Run(life *sim.Life, opts Options) (sim.Stats, error) {
	m := NewModel(life, opts)
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return m.Summary(), err
}

// GridSize returns the pixel size available for the grid in a terminal of
// the given size, leaving room for the footer.
func GridSize(termW, termH int) (w, h int) {
	return termW, termH - footerHeight
}
