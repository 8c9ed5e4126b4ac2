package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/game"
	"github.com/vovakirdan/tui-snake/internal/replay"
)

// Playback speed bounds in moves per second.
const (
	minPlaybackSpeed = 1
	maxPlaybackSpeed = 60
)

// playbackMsg drives replay playback independent of the input loop.
type playbackMsg time.Time

func playbackCmd(movesPerSecond int) tea.Cmd {
	if movesPerSecond < 1 {
		movesPerSecond = 1
	}
	interval := time.Second / time.Duration(movesPerSecond)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return playbackMsg(t)
	})
}

// ViewerModel is the Bubble Tea model for watching a recorded session.
// It re-simulates the game move by move from the record.
type ViewerModel struct {
	rec    *replay.Record
	rp     *game.Replayer
	screen *core.Screen

	speed    int // moves per second
	paused   bool
	quitting bool
}

// NewViewerModel creates a viewer for the given record.
func NewViewerModel(rec *replay.Record, screenW, screenH, movesPerSecond int) (ViewerModel, error) {
	rp, err := game.NewReplayer(rec)
	if err != nil {
		return ViewerModel{}, err
	}
	if movesPerSecond < 1 {
		movesPerSecond = 1
	}
	return ViewerModel{
		rec:    rec,
		rp:     rp,
		screen: core.NewScreen(screenW, screenH),
		speed:  movesPerSecond,
	}, nil
}

// Init starts the playback loop.
func (m ViewerModel) Init() tea.Cmd {
	return playbackCmd(m.speed)
}

// Update handles messages and updates the model state.
func (m ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case playbackMsg:
		if !m.paused && !m.rp.Done() {
			m.rp.StepOnce()
		}
		return m, playbackCmd(m.speed)
	}

	return m, nil
}

// handleKey processes playback controls.
func (m ViewerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit

	case " ", "p":
		m.paused = !m.paused

	case "n", "right", "l":
		// single-step, implies pause
		m.paused = true
		m.rp.StepOnce()

	case "+", "=", "up", "k":
		m.speed = core.Clamp(m.speed+1, minPlaybackSpeed, maxPlaybackSpeed)

	case "-", "down", "j":
		m.speed = core.Clamp(m.speed-1, minPlaybackSpeed, maxPlaybackSpeed)

	case "r":
		rp, err := game.NewReplayer(m.rec)
		if err == nil {
			m.rp = rp
			m.paused = false
		}
	}

	return m, nil
}

// View renders the replayed board plus a playback HUD.
func (m ViewerModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	g := m.rp.Game()

	if !boardFits(m.screen, g) {
		m.screen.DrawTextCentered(m.screen.Height()/2, "Terminal too small")
		return RenderScreen(m.screen)
	}

	applied, total := m.rp.Progress()
	status := fmt.Sprintf(" Replay %s | Score: %d | %d moves/s ",
		formatProgress(applied, total), g.Score(), m.speed)
	if m.paused {
		status += "| paused "
	}
	drawHUD(m.screen, status)
	drawBoard(m.screen, g)

	if m.rp.Done() {
		drawOverlay(m.screen,
			fmt.Sprintf("%s: %d (%s)", endTitle(g), g.Score(), g.Reason()),
			"r: replay again, q: quit")
	}

	return RenderScreen(m.screen)
}

// RunViewer starts the Bubble Tea program for replay playback.
func RunViewer(rec *replay.Record, screenW, screenH, movesPerSecond int) error {
	model, err := NewViewerModel(rec, screenW, screenH, movesPerSecond)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
