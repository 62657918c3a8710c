package viz

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkovar/fieldsim/internal/entity"
	"github.com/mkovar/fieldsim/internal/geom"
	"github.com/mkovar/fieldsim/internal/metrics"
	"github.com/mkovar/fieldsim/internal/phys"
	"github.com/mkovar/fieldsim/internal/scene"
	"github.com/mkovar/fieldsim/internal/world"
)

const (
	canvasWidth  = 100
	canvasHeight = 30
)

type TickMsg time.Time

// LiveConfig carries the parameters the live view needs from the run config.
type LiveConfig struct {
	SceneName string
	Dt        float64
	Size      float64
	TimeScale float64
}

// Model is the interactive simulation view. The spawn keys mirror the
// original layout: 1-3 single particles, 4 rings, 5 burst, 6 beam, 7 proton
// burst, r clears dynamic bodies.
type Model struct {
	world    *world.World
	sources  entity.SourceProvider
	renderer *Renderer
	rng      *rand.Rand
	cfg      LiveConfig
	metrics  []metrics.Metric
	cursor   geom.Point
	running  bool
	showHelp bool
	t        float64
}

func NewLive(w *world.World, sources entity.SourceProvider, rng *rand.Rand, cfg LiveConfig) Model {
	return Model{
		world:    w,
		sources:  sources,
		renderer: NewRenderer(canvasWidth, canvasHeight, cfg.Size),
		rng:      rng,
		cfg:      cfg,
		metrics: []metrics.Metric{
			metrics.NewKineticEnergy(),
			metrics.NewMaxSpeed(),
			metrics.NewPopulation(),
		},
		cursor:  geom.Point{X: cfg.Size / 2, Y: cfg.Size / 2},
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.world.ClearDynamic()
		case "?":
			m.showHelp = !m.showHelp
		case "left", "h":
			m.moveCursor(-1, 0)
		case "right", "l":
			m.moveCursor(1, 0)
		case "up", "k":
			m.moveCursor(0, -1)
		case "down", "j":
			m.moveCursor(0, 1)
		case "1":
			m.spawn(scene.Single(phys.Electron, m.cursor))
		case "2":
			m.spawn(scene.Single(phys.Proton, m.cursor))
		case "3":
			m.spawn(scene.Single(phys.Neutron, m.cursor))
		case "4":
			m.spawn(scene.Rings(phys.Electron, m.cursor))
		case "5":
			m.spawn(scene.Burst(phys.Electron, m.cursor, scene.BurstSpeed, m.rng))
		case "6":
			m.spawn(scene.Beam(phys.Electron, m.cursor, scene.BeamSpeed))
		case "7":
			m.spawn(scene.Burst(phys.Proton, m.cursor, scene.BurstSpeed, m.rng))
		}
	case TickMsg:
		if m.running {
			m.world.Step(m.cfg.Dt)
			m.t += m.cfg.Dt
			snaps := m.world.Snapshots()
			for _, metric := range m.metrics {
				metric.Observe(snaps, m.t)
			}
		}
		return m, tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func (m *Model) moveCursor(dx, dy float64) {
	step := m.cfg.Size / 40
	m.cursor.X += dx * step
	m.cursor.Y += dy * step
	if m.cursor.X < 0 {
		m.cursor.X = 0
	}
	if m.cursor.X > m.cfg.Size {
		m.cursor.X = m.cfg.Size
	}
	if m.cursor.Y < 0 {
		m.cursor.Y = 0
	}
	if m.cursor.Y > m.cfg.Size {
		m.cursor.Y = m.cfg.Size
	}
}

func (m *Model) spawn(bodies []phys.Body) {
	scene.SpawnBodies(m.world, m.sources, m.cfg.TimeScale, bodies)
}

func (m Model) View() string {
	canvas := m.renderer.Frame(m.world)
	col, row := m.renderer.toCell(m.cursor)
	canvas.SetGlyph(col, row, 'x')
	canvasView := canvasStyle.Render(strings.TrimRight(canvas.String(), "\n"))

	var stats strings.Builder
	status := statusRunning.Render("RUNNING")
	if !m.running {
		status = statusPaused.Render("PAUSED")
	}
	stats.WriteString(status + "\n\n")
	stats.WriteString(labelStyle.Render("scene") + valueStyle.Render(m.cfg.SceneName) + "\n")
	stats.WriteString(labelStyle.Render("time") + valueStyle.Render(fmt.Sprintf("%.2fs", m.t)) + "\n")
	stats.WriteString(labelStyle.Render("static") + valueStyle.Render(fmt.Sprintf("%d", m.world.StaticCount())) + "\n")
	stats.WriteString(labelStyle.Render("dynamic") + valueStyle.Render(fmt.Sprintf("%d", m.world.DynamicCount())) + "\n\n")
	for _, metric := range m.metrics {
		stats.WriteString(labelStyle.Render(metric.Name()) + valueStyle.Render(fmt.Sprintf("%.3g", metric.Value())) + "\n")
	}

	view := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsStyle.Render(stats.String()))
	out := headerStyle.Render("FIELDSIM") + "\n" + view

	if m.showHelp {
		out += helpStyle.Render("\n1/2/3 spawn e-/p+/n   4 rings   5 burst   6 beam   7 p+ burst\narrows move cursor   space pause   r clear   q quit")
	} else {
		out += helpStyle.Render("\n? help   q quit")
	}
	return out
}

// RunLive starts the interactive view and blocks until it exits.
func RunLive(w *world.World, sources entity.SourceProvider, rng *rand.Rand, cfg LiveConfig) error {
	p := tea.NewProgram(NewLive(w, sources, rng, cfg))
	_, err := p.Run()
	return err
}
