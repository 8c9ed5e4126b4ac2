package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/replay"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// PlayModel is the Bubble Tea model for live play sessions.
type PlayModel struct {
	gm      *game.Game
	screen  *core.Screen
	store   *storage.Store
	cfg     config.SnakeConfig
	runtime core.RuntimeConfig
	keys    *KeyMapper

	inputFrame core.InputFrame
	ticks      int

	paused    bool
	quitting  bool
	saved     bool // whether this session's result has been persisted
	savedID   int64
	saveErr   error
	highScore int
}

// NewPlayModel creates a play session model. A zero runtime seed is
// replaced with the current time so every session gets a fresh board.
func NewPlayModel(store *storage.Store, cfg config.SnakeConfig, runtime core.RuntimeConfig) (PlayModel, error) {
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	gm, err := game.New(cfg.Map.Width, cfg.Map.Height, uint32(runtime.Seed))
	if err != nil {
		return PlayModel{}, err
	}

	m := PlayModel{
		gm:         gm,
		screen:     core.NewScreen(runtime.ScreenW, runtime.ScreenH),
		store:      store,
		cfg:        cfg,
		runtime:    runtime,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
	if store != nil {
		if hs, err := store.HighScore(); err == nil {
			m.highScore = hs
		}
	}
	return m, nil
}

// Init starts the tick loop.
func (m PlayModel) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		if !m.gm.Over() {
			m.gm.Quit()
		}
		m = m.persistResult()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight:
		m.inputFrame.Set(action)
	case core.ActionPause:
		if !m.gm.Over() {
			m.paused = !m.paused
		}
	case core.ActionRestart:
		if m.gm.Over() {
			return m.restart()
		}
	}

	return m, nil
}

// restart begins a fresh session with a new time-based seed.
func (m PlayModel) restart() (tea.Model, tea.Cmd) {
	m.runtime.Seed = time.Now().UnixNano()
	gm, err := game.New(m.cfg.Map.Width, m.cfg.Map.Height, uint32(m.runtime.Seed))
	if err != nil {
		// The config was already validated, so this should not happen;
		// keep the finished game on screen rather than crash.
		return m, nil
	}
	m.gm = gm
	m.inputFrame.Clear()
	m.ticks = 0
	m.paused = false
	m.saved = false
	m.savedID = 0
	m.saveErr = nil
	return m, nil
}

// handleTick advances the simulation. The snake only moves every
// Speed.MoveEveryTicks ticks, so input stays responsive at the full
// tick rate while the board advances at a playable pace.
func (m PlayModel) handleTick() (tea.Model, tea.Cmd) {
	if m.paused || m.gm.Over() {
		if m.gm.Over() && !m.saved {
			m = m.persistResult()
		}
		return m, tickCmd(m.runtime.TickRate)
	}

	m.ticks++
	if m.ticks >= m.cfg.Speed.MoveEveryTicks {
		m.ticks = 0

		m.gm.Step(m.frameDirection())
		m.inputFrame.Clear()

		if score := m.gm.Score(); score > m.highScore {
			m.highScore = score
		}
	}

	return m, tickCmd(m.runtime.TickRate)
}

// frameDirection resolves the accumulated input frame into a heading.
// With no direction pressed the snake keeps going straight.
func (m PlayModel) frameDirection() game.Direction {
	switch {
	case m.inputFrame.Has(core.ActionUp):
		return game.DirUp
	case m.inputFrame.Has(core.ActionDown):
		return game.DirDown
	case m.inputFrame.Has(core.ActionLeft):
		return game.DirLeft
	case m.inputFrame.Has(core.ActionRight):
		return game.DirRight
	default:
		return m.gm.Heading()
	}
}

// persistResult saves the score and the replay once per session.
func (m PlayModel) persistResult() PlayModel {
	if m.saved || m.store == nil {
		return m
	}
	m.saved = true

	if m.gm.Score() > 0 {
		//nolint:errcheck // best-effort, the replay save below matters more
		m.store.SaveScore(m.gm.Score())
	}

	id, err := m.store.SaveReplay(m.gm.Record())
	if err != nil {
		m.saveErr = err
		return m
	}
	m.savedID = id
	return m
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()

	if !boardFits(m.screen, m.gm) {
		m.screen.DrawTextCentered(m.screen.Height()/2, "Terminal too small")
		m.screen.DrawTextCentered(m.screen.Height()/2+1,
			fmt.Sprintf("need at least %dx%d", m.gm.Width()+2, m.gm.Height()+2+hudHeight))
		return RenderScreen(m.screen)
	}

	drawHUD(m.screen, fmt.Sprintf(" Snake | Score: %d | Best: %d ", m.gm.Score(), m.highScore))
	drawBoard(m.screen, m.gm)

	switch {
	case m.gm.Over():
		line2 := "r: restart, q: quit"
		if m.savedID > 0 {
			line2 = fmt.Sprintf("replay #%d saved | r: restart, q: quit", m.savedID)
		} else if m.saveErr != nil {
			line2 = "replay not saved | r: restart, q: quit"
		}
		drawOverlay(m.screen,
			fmt.Sprintf("%s! Score: %d", endTitle(m.gm), m.gm.Score()),
			line2)
	case m.paused:
		drawOverlay(m.screen, "Paused", "p: resume, q: quit")
	}

	return RenderScreen(m.screen)
}

// endTitle condenses the end reason into an overlay headline.
func endTitle(g *game.Game) string {
	if g.Reason() == replay.ReasonWin {
		return "You win"
	}
	return "Game over"
}

// Run starts the Bubble Tea program for a live play session.
func Run(store *storage.Store, cfg config.SnakeConfig, runtime core.RuntimeConfig) error {
	model, err := NewPlayModel(store, cfg, runtime)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
