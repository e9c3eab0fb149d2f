package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/agentviz/internal/config"
	"github.com/san-kum/agentviz/internal/portray"
	"github.com/san-kum/agentviz/internal/wealth"
)

const (
	chartWidth   = 44
	chartHeight  = 8
	chartWindow  = 120
	histogramMax = 10
)

type TickMsg time.Time

// Model is the live view: it owns a wealth model and steps it on a
// frame tick, deriving every agent's appearance through the resolver.
type Model struct {
	cfg      *config.Config
	sim      *wealth.Model
	resolver *portray.Resolver
	gini     *wealth.Gini
	mean     *wealth.MeanWealth
	theme    Theme

	step    int
	seed    int64
	running bool
	done    bool

	params   []config.Param
	values   map[string]float64
	selected int

	width int
	err   error
}

// NewModel builds the live view around a fresh wealth model.
func NewModel(cfg *config.Config) (Model, error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := Model{
		cfg:      cfg,
		resolver: portray.NewWealthResolver(),
		theme:    GetTheme(cfg.Theme),
		seed:     seed,
		running:  true,
		params:   config.Schema(),
		values:   make(map[string]float64),
	}
	m.values["agents"] = float64(cfg.Agents)
	m.values["width"] = float64(cfg.Width)
	m.values["height"] = float64(cfg.Height)
	m.values["steps"] = float64(cfg.Steps)

	if err := m.rebuild(seed); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) rebuild(seed int64) error {
	sim, err := wealth.NewModel(m.cfg.Agents, m.cfg.Width, m.cfg.Height, seed)
	if err != nil {
		return err
	}
	m.sim = sim
	m.seed = seed
	m.gini = wealth.NewGini(sim)
	m.mean = wealth.NewMeanWealth(sim)
	m.gini.Observe(sim)
	m.mean.Observe(sim)
	m.step = 0
	m.done = false
	return nil
}

func (m Model) fps() int {
	if m.cfg.FPS > 0 {
		return m.cfg.FPS
	}
	return config.DefaultFPS
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps()), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if !m.done {
				m.running = !m.running
			}
		case "r":
			m.err = m.rebuild(m.seed)
			m.running = m.err == nil
		case "n":
			m.err = m.rebuild(time.Now().UnixNano())
			m.running = m.err == nil
		case "t":
			m.theme = NextTheme(m.theme.Name)
		case "tab":
			m.selected = (m.selected + 1) % len(m.params)
		case "up", "k":
			m.adjustParam(1)
		case "down", "j":
			m.adjustParam(-1)
		case "enter":
			m.applyParams()
		}
		return m, nil

	case TickMsg:
		if m.running && !m.done && m.err == nil {
			m.sim.Step()
			m.step++
			m.gini.Observe(m.sim)
			m.mean.Observe(m.sim)
			if m.step >= m.cfg.Steps {
				m.done = true
				m.running = false
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) adjustParam(direction float64) {
	p := m.params[m.selected]
	v := m.values[p.Name] + direction*p.Step
	m.values[p.Name] = p.Clamp(v)
}

func (m *Model) applyParams() {
	m.cfg.Agents = int(m.values["agents"])
	m.cfg.Width = int(m.values["width"])
	m.cfg.Height = int(m.values["height"])
	m.cfg.Steps = int(m.values["steps"])
	m.err = m.rebuild(m.seed)
	m.running = m.err == nil
}

func (m Model) View() string {
	if m.err != nil {
		return lipgloss.NewStyle().Foreground(m.theme.Error).Render(
			fmt.Sprintf("error: %v\n\npress q to quit", m.err))
	}

	header := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).
		Render("agentviz — wealth exchange")

	gridPanel, err := RenderGrid(m.sim, m.resolver)
	if err != nil {
		gridPanel = lipgloss.NewStyle().Foreground(m.theme.Error).Render(err.Error())
	}

	left := gridStyle.Render(gridPanel)
	right := statsStyle.Render(m.statsView())

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	help := helpStyle.Render("space pause · r reset · n reseed · tab/↑/↓/enter params · t theme · q quit")

	return header + "\n" + body + "\n" + help
}

func (m Model) statsView() string {
	var b strings.Builder

	status := "running"
	if m.done {
		status = "done"
	} else if !m.running {
		status = "paused"
	}

	row := func(label, value string) {
		b.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}

	row("status", status)
	row("step", fmt.Sprintf("%d / %d", m.step, m.cfg.Steps))
	b.WriteString(ProgressBar(float64(m.step)/float64(m.cfg.Steps), 30, m.theme) + "\n")
	row("agents", fmt.Sprintf("%d on %dx%d", m.cfg.Agents, m.cfg.Width, m.cfg.Height))
	row("seed", fmt.Sprintf("%d", m.seed))
	row("gini", fmt.Sprintf("%.4f", m.gini.Value()))
	row("mean", fmt.Sprintf("%.2f", m.mean.Value()))
	row("theme", m.theme.Name)

	b.WriteString(graphStyle.Render(m.chartView()) + "\n")

	b.WriteString("\n" + labelStyle.Render("wealth") + "\n")
	bins := wealth.Histogram(m.sim.Wealths())
	rows := HistogramRows(bins, 24)
	for i, r := range rows {
		if i >= histogramMax {
			b.WriteString(valueStyle.Render(fmt.Sprintf("… %d more levels", len(rows)-i)) + "\n")
			break
		}
		b.WriteString(r + "\n")
	}

	b.WriteString("\n" + m.paramsView())
	return b.String()
}

func (m Model) chartView() string {
	series := m.gini.Series()
	if len(series) > chartWindow {
		series = series[len(series)-chartWindow:]
	}
	return asciigraph.Plot(series,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("gini"),
	)
}

func (m Model) paramsView() string {
	var b strings.Builder
	for i, p := range m.params {
		line := fmt.Sprintf("%-18s %.0f", p.Label, m.values[p.Name])
		if i == m.selected {
			b.WriteString(activeParamStyle.Render("▸ " + line))
		} else {
			b.WriteString(valueStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
