package tui

import (
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-maze/internal/config"
	"github.com/vovakirdan/tui-maze/internal/core"
	"github.com/vovakirdan/tui-maze/internal/maze"
	"github.com/vovakirdan/tui-maze/internal/storage"
)

// Viewer layout constants
const (
	headerRows  = 2 // Title line and a gap
	footerRows  = 3 // Stats, status and help lines
	minCellWide = 2 // Preferred characters per maze cell
)

// Options configures a viewer.
type Options struct {
	Preset config.DifficultyPreset // Empty keeps the config's own ratios
	Source string         // Label written to the run log
	Store  *storage.Store // Nil disables the run log and history
	Logger *log.Logger

	// Clipboard receives copied mazes. Nil disables copying.
	Clipboard func(string) error
}

// SystemClipboard writes to the local system clipboard.
func SystemClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// Model is the Bubble Tea model of the interactive maze viewer.
type Model struct {
	base   config.MazeConfig
	preset config.DifficultyPreset
	gen    *maze.Generator
	walls  *maze.Collection
	result maze.Result

	screen *core.Screen
	keys   *KeyMapper
	help   help.Model
	config core.RuntimeConfig

	store     *storage.Store
	source    string
	logger    *log.Logger
	clipboard func(string) error

	showPath bool
	status   string
	statusID int
	history  *HistoryModel
	quitting bool
}

// NewModel creates a viewer and generates the first maze. A non-zero
// rc.Seed overrides the configured seed for that first maze.
func NewModel(cfg config.MazeConfig, rc core.RuntimeConfig, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if rc.Seed != 0 {
		cfg.Seed = config.SeedConfig{Value: rc.Seed}
	}

	m := Model{
		base:      cfg.Clone(),
		preset:    opts.Preset,
		walls:     &maze.Collection{},
		screen:    core.NewScreen(rc.ScreenW, rc.ScreenH),
		keys:      NewKeyMapper(),
		help:      help.New(),
		config:    rc,
		store:     opts.Store,
		source:    opts.Source,
		logger:    opts.Logger,
		clipboard: opts.Clipboard,
		showPath:  true,
	}
	m.help.Width = rc.ScreenW
	m.rebuildGenerator()
	m.show(m.gen.Generate())
	return m
}

// rebuildGenerator applies the current preset to the base config.
func (m *Model) rebuildGenerator() {
	cfg := m.base.Clone()
	if m.preset != "" {
		config.ApplyMazePreset(&cfg, m.preset)
	}
	m.gen = maze.NewGenerator(cfg, maze.BoxPrefab{Width: cfg.Prefab.Width, Height: cfg.Prefab.Height}, m.walls, m.logger)
}

// replay regenerates a recorded run with its preset and grid size.
// Runs recorded as "custom" use the base config's ratios.
func (m *Model) replay(run storage.Run) {
	m.preset, _ = config.ParsePreset(run.Preset)
	if run.Columns > 0 && run.Rows > 0 {
		m.base.Grid = config.GridConfig{Columns: run.Columns, Rows: run.Rows}
	}
	m.rebuildGenerator()
	m.show(m.gen.GenerateSeed(run.Seed))
}

// show adopts a finished run and records it.
func (m *Model) show(res maze.Result) {
	m.result = res
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveRun(storage.NewRun(res, m.presetName(), m.source)); err != nil {
		m.logger.Warn("could not record run", "error", err)
	}
}

// presetName labels the active preset; "custom" means the config's ratios.
func (m Model) presetName() string {
	if m.preset == "" {
		return "custom"
	}
	return string(m.preset)
}

// setStatus shows msg on the status line until it expires.
func (m *Model) setStatus(msg string) tea.Cmd {
	m.statusID++
	m.status = msg
	return expireStatusCmd(m.statusID, statusTTL)
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.screen.Resize(wsm.Width, wsm.Height)
		m.help.Width = wsm.Width
	}

	if m.history != nil {
		return m.updateHistory(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case StatusExpiredMsg:
		if msg.ID == m.statusID {
			m.status = ""
		}
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionReseed:
		m.show(m.gen.GenerateSeed(maze.NewSeed()))
		return m, m.setStatus(fmt.Sprintf("new seed %d", m.result.Seed))

	case core.ActionRegenerate:
		m.show(m.gen.GenerateSeed(m.result.Seed))
		return m, m.setStatus(fmt.Sprintf("rebuilt seed %d", m.result.Seed))

	case core.ActionNextPreset:
		m.preset = config.NextPreset(m.preset)
		m.rebuildGenerator()
		m.show(m.gen.GenerateSeed(m.result.Seed))
		return m, m.setStatus(fmt.Sprintf("preset %s", m.presetName()))

	case core.ActionTogglePath:
		m.showPath = !m.showPath
		return m, nil

	case core.ActionCopy:
		return m, m.setStatus(m.copyToClipboard())

	case core.ActionHistory:
		if m.store == nil {
			return m, m.setStatus("run history is disabled")
		}
		h := NewHistoryModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.history = &h
		return m, m.history.Init()
	}

	return m, nil
}

// copyToClipboard copies the plain grid and returns a status message.
func (m Model) copyToClipboard() string {
	if m.clipboard == nil {
		return "clipboard not available"
	}
	if err := m.clipboard(m.result.Snapshot().String()); err != nil {
		m.logger.Warn("clipboard write failed", "error", err)
		return "copy failed"
	}
	return fmt.Sprintf("copied seed %d", m.result.Seed)
}

// updateHistory forwards messages to the open history table.
func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.history.Update(msg)
	h := next.(HistoryModel)

	switch {
	case h.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case h.Selected() != nil:
		run := *h.Selected()
		m.history = nil
		m.replay(run)
		return m, m.setStatus(fmt.Sprintf("replayed seed %d (%s)", run.Seed, m.presetName()))

	case h.IsGoingBack():
		m.history = nil
		return m, nil
	}

	m.history = &h
	return m, cmd
}

// Result returns the run currently on screen.
func (m Model) Result() maze.Result {
	return m.result
}

// Preset returns the active difficulty preset.
func (m Model) Preset() config.DifficultyPreset {
	return m.preset
}

// ShowPath reports whether the forced route is drawn.
func (m Model) ShowPath() bool {
	return m.showPath
}

// Status returns the current status line text.
func (m Model) Status() string {
	return m.status
}

// InHistory reports whether the history table is open.
func (m Model) InHistory() bool {
	return m.history != nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.history != nil {
		return m.history.View()
	}

	m.drawViewer()
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// drawViewer draws everything except the help line into the screen buffer.
func (m Model) drawViewer() {
	s := m.screen
	s.Clear()
	res := m.result
	snap := res.Snapshot()

	title := fmt.Sprintf("MAZE  seed %d  %dx%d  preset %s", res.Seed, res.Columns, res.Rows, m.presetName())
	s.DrawTextColored(max(0, (s.Width()-len([]rune(title)))/2), 0, title, core.ColorYellow)

	// The last screen row is left for the help line.
	areaW := s.Width() - 2
	areaH := s.Height() - headerRows - footerRows - 2
	opts := maze.PreviewOptions{ShowPath: m.showPath, CellWidth: minCellWide}
	if w, _ := maze.PreviewSize(snap, opts); w > areaW {
		opts.CellWidth = 1
	}
	w, h := maze.PreviewSize(snap, opts)
	w, h = min(w, max(0, areaW)), min(h, max(0, areaH))

	x0 := max(1, (s.Width()-w)/2)
	y0 := headerRows + 1
	s.DrawBox(core.NewRect(x0-1, y0-1, w+2, h+2), core.ColorGray)
	drawClipped(s, x0, y0, w, h, snap, opts)

	statsY := y0 + h + 1
	stats := fmt.Sprintf("route %d  walls %d  placed %d  isolated %d  dead ends %d",
		res.PathLength(), res.ExtraWalls, res.Placed, res.Stats.Isolated, res.Stats.DeadEnds)
	s.DrawTextCentered(statsY, stats)
	if m.status != "" {
		s.DrawTextColored(max(0, (s.Width()-len([]rune(m.status)))/2), statsY+1, m.status, core.ColorCyan)
	}
}

// drawClipped draws the preview through a w x h window, keeping the
// bottom-left of the maze (the player's corner) in view.
func drawClipped(dst *core.Screen, x0, y0, w, h int, snap maze.Snapshot, opts maze.PreviewOptions) {
	fw, fh := maze.PreviewSize(snap, opts)
	if fw == w && fh == h {
		maze.DrawPreview(dst, x0, y0, snap, opts)
		return
	}

	buf := core.NewScreen(fw, fh)
	maze.DrawPreview(buf, 0, 0, snap, opts)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetCell(x0+x, y0+y, buf.GetCell(x, fh-h+y))
		}
	}
}

// Run starts the interactive viewer.
func Run(cfg config.MazeConfig, rc core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, rc, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
