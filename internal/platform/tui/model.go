package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blightgrid/internal/core"
	"github.com/vovakirdan/blightgrid/internal/sim"
	"github.com/vovakirdan/blightgrid/internal/storage"
	"github.com/vovakirdan/blightgrid/internal/world"
)

// Model is the Bubble Tea model for exploring one world.
type Model struct {
	world      *sim.Simulation
	sched      *sim.Scheduler
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	logger     *log.Logger

	lastFrame time.Time
	started   time.Time
	actions   int // Player actions since the world was created
	quitting  bool
}

// NewModel creates a world view around an existing simulation. store and
// logger may be nil.
func NewModel(w *sim.Simulation, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	h := help.New()
	h.ShowAll = false
	h.Width = cfg.ScreenW

	return &Model{
		world:      w,
		sched:      w.NewScheduler(),
		screen:     core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-1)),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       h,
		inputFrame: core.NewInputFrame(),
		logger:     logger,
		started:    time.Now(),
	}
}

// World returns the simulation shown by the model.
func (m *Model) World() *sim.Simulation {
	return m.world
}

// Init starts the frame loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
			m.quit()
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(0, msg.Height-1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		m.frame(time.Time(msg))
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// frame applies queued input and advances the world by the elapsed time.
func (m *Model) frame(now time.Time) {
	m.apply(m.inputFrame)
	m.inputFrame.Clear()

	m.sched.Advance(frameStep(m.lastFrame, now))
	m.lastFrame = now
}

// apply performs the actions of one input frame. Moves are applied before
// cell actions so a quick move-then-grow lands on the new cell.
func (m *Model) apply(f core.InputFrame) {
	if f.Empty() {
		return
	}
	w := m.world

	moves := []struct {
		move, pan core.Action
		o         sim.Orientation
	}{
		{core.ActionUp, core.ActionPanUp, sim.North},
		{core.ActionRight, core.ActionPanRight, sim.East},
		{core.ActionDown, core.ActionPanDown, sim.South},
		{core.ActionLeft, core.ActionPanLeft, sim.West},
	}
	for _, mv := range moves {
		for range f.Count(mv.move) {
			w.MoveCursorToward(mv.o)
		}
		v, _ := mv.o.Vector()
		for range f.Count(mv.pan) {
			w.Pan(v.X, v.Y)
		}
	}

	cursor := w.View().Cursor
	if f.Has(core.ActionPromote) {
		w.Promote(cursor)
		m.actions++
	}
	if f.Has(core.ActionFlag) {
		w.ToggleFlag(cursor)
		m.actions++
	}
	if f.Has(core.ActionRecenter) {
		b := w.InterestBounds()
		mid := world.G((b.Min.X+b.Max.X)/2, (b.Min.Y+b.Max.Y)/2)
		w.SetCursor(mid)
		w.SetOrigin(mid)
	}
	if f.Has(core.ActionHelp) {
		m.help.ShowAll = !m.help.ShowAll
	}

	switch {
	case f.Has(core.ActionReset):
		m.restart(true)
	case f.Has(core.ActionNextWorld):
		m.restart(false)
	}
}

// restart records the current run and moves to a new world.
func (m *Model) restart(scramble bool) {
	m.saveRun()
	m.world.Reset(true, scramble)
	m.sched = m.world.NewScheduler()
	m.started = time.Now()
	m.actions = 0
}

func (m *Model) quit() {
	m.saveRun()
	m.quitting = true
}

// saveRun records the run if the player did anything. Failures are logged
// and otherwise ignored.
func (m *Model) saveRun() {
	if m.store == nil || m.actions == 0 {
		return
	}
	rec := RunRecord(m.world.Stats(), m.config, time.Since(m.started))
	if _, err := m.store.SaveRun(rec); err != nil {
		m.logger.Warn("could not save run", "seed", rec.Seed, "error", err)
	}
}

// RunRecord converts world statistics into a run log entry.
func RunRecord(st sim.Stats, cfg core.RuntimeConfig, d time.Duration) storage.RunRecord {
	return storage.RunRecord{
		Seed:      st.Seed,
		Source:    cfg.Source,
		Player:    cfg.Player,
		Revealed:  st.Revealed,
		Grown:     st.Grown,
		Corrupted: st.Corrupted,
		Tiles:     st.Tiles,
		Regions:   st.RegionsSpawned,
		Duration:  d,
	}
}

// projection centers the world area on the viewport origin.
func (m *Model) projection() core.Projection {
	origin := m.world.View().Origin
	area := m.screen.Bounds()
	area.Y++
	area.H = max(0, area.H-1)
	return core.Projection{Area: area, AnchorX: origin.X, AnchorY: origin.Y}
}

// Smallest screen the world view is drawn on.
const (
	minScreenW = 24
	minScreenH = 4
)

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	if m.screen.Width() < minScreenW || m.screen.Height() < minScreenH {
		m.screen.DrawTextCentered(m.screen.Height()/2, "terminal too small", core.ColorStatus)
		return RenderScreen(m.screen)
	}
	st := m.world.Stats()
	m.screen.DrawText(0, 0, StatusLine(st, m.world.View().Cursor), core.ColorStatus)
	DrawWorld(m.screen, m.world, m.projection())

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// Run starts a local Bubble Tea program for the given world.
func Run(w *sim.Simulation, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(w, store, cfg, nil)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
