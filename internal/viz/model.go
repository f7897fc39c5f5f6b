package viz

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/sortlab/internal/chart"
	"github.com/san-kum/sortlab/internal/config"
	"github.com/san-kum/sortlab/internal/dataset"
	"github.com/san-kum/sortlab/internal/export"
	"github.com/san-kum/sortlab/internal/logging"
	"github.com/san-kum/sortlab/internal/metrics"
	"github.com/san-kum/sortlab/internal/scheduler"
	"github.com/san-kum/sortlab/internal/sorting"
)

const (
	historyCapacity = 240
	panelWidth      = 36
	// each chart takes its height plus a title line and a blank line
	chartChrome  = 2
	headerLines  = 3
	footerLines  = 2
	barStep      = 5
	svgWidth     = 640
	svgHeight    = 200
	minChartCols = 20
)

type StepMsg time.Time

type FrameMsg time.Time

// Options configures a Model beyond what Config holds.
type Options struct {
	Registry  *sorting.Registry
	Logger    *log.Logger
	ExportDir string
}

// Model hosts one chart per algorithm in a scrollable column.
type Model struct {
	cfg       *config.Config
	sched     *scheduler.Scheduler
	rng       *rand.Rand
	logger    *log.Logger
	theme     Theme
	styles    styles
	help      help.Model
	exportDir string

	width, height int
	vp            *viewport
	running       bool
	showHelp      bool
	notice        string

	history map[int][]float64
	initial map[int]int
}

// NewModel builds the scheduler for cfg.Algorithms and deals the first
// dataset. cfg is normalised in place.
func NewModel(cfg *config.Config, opts Options) (Model, error) {
	for _, w := range cfg.Normalize() {
		if opts.Logger != nil {
			opts.Logger.Warn(w)
		}
	}
	if opts.Registry == nil {
		opts.Registry = sorting.NewRegistry()
	}
	if opts.ExportDir == "" {
		opts.ExportDir = "."
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	if cfg.Seed == 0 {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	sched := scheduler.New(cfg.IntervalDuration(), opts.Logger)
	sched.RunOffScreen = cfg.RunOffScreen
	chartOpts := chart.Options{Width: cfg.Chart.Width, Height: cfg.Chart.Height, FPS: chart.DefaultFPS}
	if err := sched.AddAlgorithms(opts.Registry, cfg.Algorithms, rng, chartOpts); err != nil {
		return Model{}, err
	}

	theme := GetTheme(cfg.Theme)
	m := Model{
		cfg:       cfg,
		sched:     sched,
		rng:       rng,
		logger:    opts.Logger,
		theme:     theme,
		styles:    newStyles(theme),
		help:      help.New(),
		exportDir: opts.ExportDir,
		width:     cfg.Chart.Width + panelWidth,
		height:    headerLines + footerLines + len(cfg.Algorithms)*(cfg.Chart.Height+chartChrome),
		vp:        &viewport{},
		running:   true,
		history:   make(map[int][]float64),
		initial:   make(map[int]int),
	}
	if m.logger == nil {
		m.logger = logging.Discard()
	}
	m.vp.count = m.perPage()
	sched.Visible = m.vp.contains
	m.deal(dataset.Shape(cfg.Shape))
	return m, nil
}

func (m Model) Scheduler() *scheduler.Scheduler { return m.sched }

func stepTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return StepMsg(t) })
}

func frameTick() tea.Cmd {
	return tea.Tick(time.Second/chart.DefaultFPS, func(t time.Time) tea.Msg { return FrameMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(stepTick(m.sched.Interval()), frameTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		m.vp.count = m.perPage()
		m.clampOffset()
	case tea.KeyMsg:
		return m.handleKey(msg)
	case StepMsg:
		if m.running {
			m.sched.Step()
			m.record()
		}
		return m, stepTick(m.sched.Interval())
	case FrameMsg:
		m.sched.Advance()
		return m, frameTick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""
	switch {
	case key.Matches(msg, keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Pause):
		m.running = !m.running
	case key.Matches(msg, keys.Random):
		m.deal(dataset.Random)
	case key.Matches(msg, keys.Reversed):
		m.deal(dataset.Reversed)
	case key.Matches(msg, keys.MostlyOrdered):
		m.deal(dataset.MostlyOrdered)
	case key.Matches(msg, keys.MoreBars):
		m.setBars(m.cfg.Bars + barStep)
	case key.Matches(msg, keys.FewerBars):
		m.setBars(m.cfg.Bars - barStep)
	case key.Matches(msg, keys.Faster):
		m.setInterval(m.sched.Interval() * 2 / 3)
	case key.Matches(msg, keys.Slower):
		m.setInterval(m.sched.Interval() * 3 / 2)
	case key.Matches(msg, keys.Rainbow):
		m.cfg.RainbowColors = !m.cfg.RainbowColors
	case key.Matches(msg, keys.OffScreen):
		m.cfg.RunOffScreen = !m.cfg.RunOffScreen
		m.sched.RunOffScreen = m.cfg.RunOffScreen
	case key.Matches(msg, keys.Theme):
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)
		m.cfg.Theme = m.theme.Name
	case key.Matches(msg, keys.Export):
		path, err := m.exportSVG()
		if err != nil {
			m.logger.Error("svg export failed", "err", err)
			m.notice = "export failed: " + err.Error()
		} else {
			m.logger.Info("svg exported", "path", path)
			m.notice = "exported " + path
		}
	case key.Matches(msg, keys.Up):
		m.scroll(-1)
	case key.Matches(msg, keys.Down):
		m.scroll(1)
	case key.Matches(msg, keys.PageUp):
		m.scroll(-m.perPage())
	case key.Matches(msg, keys.PageDown):
		m.scroll(m.perPage())
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
	}
	return m, nil
}

// deal generates a new dataset of the configured size and hands it to
// every slot.
func (m *Model) deal(shape dataset.Shape) {
	m.cfg.Shape = string(shape)
	data := dataset.Generate(m.cfg.Bars, shape, m.rng)
	m.sched.Replace(data)
	for k := range m.history {
		delete(m.history, k)
	}
	inv := metrics.Count(data)
	for _, sl := range m.sched.Slots() {
		m.initial[sl.Index] = inv
	}
	m.logger.Debug("new dataset", "shape", shape, "bars", len(data))
}

func (m *Model) setBars(n int) {
	n = min(max(n, config.MinBars), config.MaxBars)
	if n == m.cfg.Bars {
		return
	}
	m.cfg.Bars = n
	m.deal(dataset.Shape(m.cfg.Shape))
}

func (m *Model) setInterval(d time.Duration) {
	m.sched.SetInterval(d)
	m.cfg.Interval = int(m.sched.Interval() / time.Millisecond)
}

func (m *Model) record() {
	for _, sl := range m.sched.Slots() {
		h := append(m.history[sl.Index], sl.Snapshot()["inversions"])
		if len(h) > historyCapacity {
			h = h[1:]
		}
		m.history[sl.Index] = h
	}
}

func (m *Model) chartWidth() int {
	return max(m.width-panelWidth-2, minChartCols)
}

func (m *Model) resize() {
	for _, sl := range m.sched.Slots() {
		sl.Renderer.Resize(m.chartWidth(), m.cfg.Chart.Height)
		sl.Renderer.Render(sl.Stepper.Project(sl.Data), sl.Stepper.Classify(sl.Data), false)
	}
}

// perPage is how many charts fit on screen at once.
func (m *Model) perPage() int {
	usable := m.height - headerLines - footerLines
	return max(usable/(m.cfg.Chart.Height+chartChrome), 1)
}

func (m *Model) scroll(delta int) {
	m.vp.first += delta
	m.clampOffset()
}

func (m *Model) clampOffset() {
	maxFirst := max(len(m.sched.Slots())-m.vp.count, 0)
	m.vp.first = min(max(m.vp.first, 0), maxFirst)
}

// viewport is the window of chart slots on screen. Model is copied by
// value on every update, so the scheduler's visibility check reads this
// shared window instead of a Model.
type viewport struct {
	first, count int
}

func (v *viewport) contains(sl *scheduler.Slot) bool {
	return sl.Index >= v.first && sl.Index < v.first+v.count
}

func (m Model) exportSVG() (string, error) {
	charts := make([]export.Chart, 0, len(m.sched.Slots()))
	for _, sl := range m.sched.Slots() {
		charts = append(charts, export.Snapshot(sl.Name, sl.Stepper, sl.Data, svgWidth, svgHeight))
	}
	svg := export.SheetSVG(charts, svgWidth, svgHeight, m.theme.Palette(m.cfg.RainbowColors, m.cfg.Bars))

	if err := os.MkdirAll(m.exportDir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(m.exportDir, fmt.Sprintf("sortlab-%s.svg", time.Now().Format("20060102-150405")))
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the chart column beside the status panel.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.header() + "\n")
	b.WriteString(Separator(m.width, m.theme.Muted) + "\n")

	column := m.charts()
	panel := m.styles.panel.Render(m.panel())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, column, panel) + "\n")

	b.WriteString(m.help.View(keys))
	return b.String()
}

func (m Model) header() string {
	status := m.styles.running.Render("RUNNING")
	switch {
	case m.sched.Done():
		status = m.styles.finished.Render("DONE")
	case !m.running:
		status = m.styles.paused.Render("PAUSED")
	}

	flags := ""
	if m.cfg.RainbowColors {
		flags += " rainbow"
	}
	if m.cfg.RunOffScreen {
		flags += " off-screen"
	}
	info := fmt.Sprintf("interval %s  bars %d  shape %s  theme %s%s",
		m.sched.Interval(), m.cfg.Bars, m.cfg.Shape, m.theme.Name, flags)

	return GradientText("sortlab", m.theme.Primary, m.theme.Secondary) + "  " + status + "  " + m.styles.subtle.Render(info)
}

func (m Model) charts() string {
	slots := m.sched.Slots()
	end := min(m.vp.first+m.vp.count, len(slots))
	palette := m.theme.Palette(m.cfg.RainbowColors, m.cfg.Bars)
	width := m.chartWidth()

	var b strings.Builder
	for _, sl := range slots[m.vp.first:end] {
		title := m.styles.chartTitle.Render(sl.Name) + " " + m.styles.subtle.Render(sorting.Describe(sl.Name))
		if sl.Done() {
			title += " " + m.styles.finished.Render("✓")
		}
		b.WriteString(title + "\n")
		b.WriteString(chart.Raster(sl.Renderer.Frame(), width, m.cfg.Chart.Height, palette) + "\n\n")
	}
	if hidden := len(slots) - end; hidden > 0 {
		b.WriteString(m.styles.subtle.Render(fmt.Sprintf("↓ %d more", hidden)))
	}
	return lipgloss.NewStyle().Width(width).Render(b.String())
}

func (m Model) panel() string {
	var b strings.Builder
	for _, sl := range m.sched.Slots() {
		snap := sl.Snapshot()
		progress := 1.0
		if start := m.initial[sl.Index]; start > 0 && snap["iterations"] > 0 {
			progress = 1 - snap["inversions"]/float64(start)
		} else if start > 0 {
			progress = 0
		}
		name := sl.Name
		if m.vp.contains(sl) {
			name = "▸ " + name
		} else {
			name = "  " + name
		}
		b.WriteString(m.styles.metricLabel.Render(name) +
			ProgressBar(progress, 10, m.theme.Completed, m.theme.Inactive) + " " +
			m.styles.metricValue.Render(fmt.Sprintf("%6.0f", snap["iterations"])) + "\n")
	}

	slots := m.sched.Slots()
	if m.vp.first < len(slots) {
		focus := slots[m.vp.first]
		snap := focus.Snapshot()
		b.WriteString("\n")
		b.WriteString(m.styles.metricLabel.Render("writes") + m.styles.metricValue.Render(fmt.Sprintf("%.0f", snap["writes"])) + "\n")
		b.WriteString(m.styles.metricLabel.Render("inversions") + m.styles.metricValue.Render(fmt.Sprintf("%.0f", snap["inversions"])) + "\n")
		if h := m.history[focus.Index]; len(h) > 1 {
			graph := asciigraph.Plot(h,
				asciigraph.Height(5),
				asciigraph.Width(panelWidth-12),
				asciigraph.Caption("inversions: "+focus.Name))
			b.WriteString("\n" + m.styles.graph.Render(graph) + "\n")
		}
	}

	if m.notice != "" {
		b.WriteString("\n" + m.styles.notice.Render(m.notice) + "\n")
	}
	return b.String()
}

// Run starts the interactive program on the alternate screen.
func Run(cfg *config.Config, opts Options) error {
	m, err := NewModel(cfg, opts)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
