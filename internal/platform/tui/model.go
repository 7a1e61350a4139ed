package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-driller/internal/core"
	"github.com/vovakirdan/tui-driller/internal/leaderboard"
	"github.com/vovakirdan/tui-driller/internal/platform/audio"
	"github.com/vovakirdan/tui-driller/internal/registry"
	"github.com/vovakirdan/tui-driller/internal/storage"
)

// syncTimeout bounds a single score upload.
const syncTimeout = 5 * time.Second

// Deps are the collaborators a running game reports to. Every field is
// optional.
type Deps struct {
	Store  *storage.Store
	Audio  audio.Player
	Scores *leaderboard.Client
	Player string
	Logger *log.Logger

	// Spectate disables score saving and upload, for replays.
	Spectate bool
}

func (d Deps) withDefaults() Deps {
	if d.Audio == nil {
		d.Audio = audio.Nop{}
	}
	if d.Logger == nil {
		d.Logger = log.New(io.Discard)
	}
	return d
}

// scoreSyncedMsg reports the result of a leaderboard upload.
type scoreSyncedMsg struct {
	id  string
	err error
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	deps       Deps
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	embedded   bool // back returns to a parent model instead of quitting
	quitting   bool
	backToMenu bool
	lastSaved  string
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, deps Deps, cfg core.RuntimeConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		deps:       deps.withDefaults(),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case scoreSyncedMsg:
		if msg.err != nil {
			m.deps.Logger.Warn("score upload failed", "game", m.game.ID(), "error", msg.err)
		} else {
			m.deps.Logger.Debug("score uploaded", "game", m.game.ID(), "id", msg.id)
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}

	// Back leaves a finished or paused game
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if !m.embedded {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleResize only resizes the screen; the board does not depend on it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	audio.PlayAll(m.deps.Audio, result.Sounds)

	// Clear input for next frame
	m.inputFrame.Clear()

	cmds := []tea.Cmd{tickCmd(m.config.TickRate)}
	if m.gameState.GameOver && !wasOver {
		if cmd := m.finishRun(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, tea.Batch(cmds...)
}

// finishRun saves the run that just ended and returns the upload command,
// if a leaderboard is configured.
func (m *Model) finishRun() tea.Cmd {
	if m.deps.Spectate || m.gameState.Score <= 0 {
		return nil
	}

	entry := storage.ScoreEntry{
		GameID: m.game.ID(),
		Player: m.deps.Player,
		Depth:  m.gameState.Score,
		Stage:  m.gameState.Level,
	}
	if r, ok := m.game.(registry.Reporter); ok {
		info := r.RunInfo()
		entry.Outcome = info.Outcome
		entry.Frames = info.Frames
		entry.Seed = info.Seed
	}

	if m.deps.Store != nil {
		id, err := m.deps.Store.SaveScore(entry)
		if err != nil {
			m.deps.Logger.Warn("could not save score", "game", entry.GameID, "error", err)
		} else {
			m.lastSaved = id
			m.deps.Logger.Debug("score saved", "game", entry.GameID, "depth", entry.Depth, "id", id)
		}
	}

	if m.deps.Scores == nil {
		return nil
	}
	return submitScore(m.deps.Scores, entry)
}

func submitScore(c *leaderboard.Client, e storage.ScoreEntry) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()

		name := e.Player
		if name == "" {
			name = "anonymous"
		}
		id, err := c.Submit(ctx, e.GameID, leaderboard.Entry{Name: name, Depth: e.Depth, Stage: e.Stage})
		return scoreSyncedMsg{id: id, err: err}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.deps.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".driller", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.deps.Logger.Warn("could not save screenshot", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.deps.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.deps.Logger.Debug("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// State returns the game state seen at the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, deps Deps, cfg core.RuntimeConfig) error {
	model := NewModel(game, deps, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
