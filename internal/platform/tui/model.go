package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// helpHeight is the number of lines reserved under the game for key help.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	player     string
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	termW      int
	termH      int
	best       int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// player names the owner of saved runs.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		player:     player,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.relayout(cfg.ScreenW, cfg.ScreenH)
	m.loadBest()

	// Initialize the game here: Init has a value receiver, so state set there is lost.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if ev, ok := MapMouse(msg); ok {
			m.inputFrame.AddPointer(ev)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout(m.termW, m.termH)
		m.resizeGame()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		// Step once more so the game reports the run it is ending.
		result := m.game.Step(m.inputFrame)
		m.saveRun(result.Ended)
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.relayout(msg.Width, msg.Height)
	m.resizeGame()
	return m, nil
}

// relayout splits the terminal between the game screen and the help footer.
func (m *Model) relayout(w, h int) {
	m.termW, m.termH = w, h
	m.config.ScreenW = w
	m.config.ScreenH = max(h-m.helpLines(), 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = w
}

// resizeGame tells the game about the new screen. Games that can relayout keep
// their state; the rest start over.
func (m *Model) resizeGame() {
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
		return
	}
	m.game.Reset(m.config)
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.saveRun(result.Ended)

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRun stores a finished run. Empty runs are not recorded.
func (m *Model) saveRun(run *core.RunResult) {
	if run == nil || run.Score <= 0 || m.store == nil {
		return
	}
	//nolint:errcheck // Best-effort save, game continues regardless
	m.store.SaveRun(storage.Run{
		GameID:   m.game.ID(),
		Player:   m.player,
		Score:    run.Score,
		Swaps:    run.Swaps,
		MaxChain: run.MaxChain,
	})
	m.best = max(m.best, run.Score)
}

func (m *Model) loadBest() {
	if m.store == nil {
		return
	}
	if best, err := m.store.PlayerBest(m.game.ID(), m.playerName()); err == nil {
		m.best = best
	}
}

func (m Model) playerName() string {
	if m.player == "" {
		return "local"
	}
	return m.player
}

func (m Model) helpLines() int {
	if !m.help.ShowAll {
		return helpHeight
	}
	// Full help lays groups out as columns.
	rows := 0
	for _, group := range m.keyMapper.Keys().FullHelp() {
		rows = max(rows, len(group))
	}
	return rows
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	// Create screenshots directory
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	// Save screenshot
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	footer := m.help.View(m.keyMapper.Keys())
	if m.best > 0 {
		footer = fmt.Sprintf("best %d  •  %s", m.best, footer)
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(footer)
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, player string) error {
	model := NewModel(game, store, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks and drags
	)

	_, err := p.Run()
	return err
}
