package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// hudHeight is the number of rows above the board (title + separator).
const hudHeight = 2

// Options configures a terminal game session.
type Options struct {
	Game    snake.Config
	Display config.DisplayConfig
	ScreenW int
	ScreenH int
}

// Model is the Bubble Tea model driving one game session. The game is
// strictly turn-synchronous: each key press applies exactly one turn,
// and nothing moves while the player thinks.
type Model struct {
	opts    Options
	sim     *snake.Simulation
	screen  *core.Screen
	store   *storage.Store
	keys    *KeyMapper
	status  string
	saved   bool // Whether this session's result has been recorded
	quitting bool
}

// NewModel creates a model with a fresh simulation.
func NewModel(opts Options, store *storage.Store) (Model, error) {
	if opts.Game.Seed == 0 {
		opts.Game.Seed = time.Now().UnixNano()
	}

	sim, err := snake.New(opts.Game)
	if err != nil {
		return Model{}, err
	}

	return Model{
		opts:   opts,
		sim:    sim,
		screen: core.NewScreen(opts.ScreenW, opts.ScreenH),
		store:  store,
		keys:   NewKeyMapper(),
	}, nil
}

// Init implements tea.Model. There is no tick loop; the model only
// reacts to input.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and applies turns.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.opts.ScreenW = msg.Width
		m.opts.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	}

	return m, nil
}

// handleKey maps one key press to one turn.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if !m.sim.Running() {
		return m.handleTerminatedKey(msg)
	}

	switch m.sim.ApplyTurn(m.keys.MapKey(msg)) {
	case snake.TurnContinued:
		m.status = ""
	case snake.TurnGrew:
		m.status = fmt.Sprintf("Snake grew to %d!", m.sim.Length())
	case snake.TurnInvalid:
		m.status = "Invalid input! Use WASD, arrows, or Q to quit."
	case snake.TurnTerminated:
		m.status = ""
		m.saveSession()
	}

	return m, nil
}

// handleTerminatedKey processes input after the session ended. The
// terminated simulation is discarded; restart constructs a fresh one.
func (m Model) handleTerminatedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.keys.IsRestart(msg):
		opts := m.opts
		opts.Game.Seed = time.Now().UnixNano()
		sim, err := snake.New(opts.Game)
		if err != nil {
			// Parameters already drove a session once; this is unreachable.
			m.quitting = true
			return m, tea.Quit
		}
		m.opts = opts
		m.sim = sim
		m.saved = false
		m.status = ""
		return m, nil

	case m.keys.MapKey(msg) == snake.InputQuit, msg.String() == "esc":
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// saveSession records the finished session, best-effort.
func (m *Model) saveSession() {
	if m.store == nil || m.saved {
		return
	}

	snap := m.sim.Snapshot()
	//nolint:errcheck // Best-effort save, the session result is still shown
	m.store.SaveSession(storage.SessionEntry{
		BoardSize:   snap.Size,
		FinalLength: snap.Length,
		Turns:       snap.Turns,
		EndReason:   snap.Reason.String(),
	})
	m.saved = true
}

// View renders the current state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	snap := m.sim.Snapshot()

	m.renderHUD(snap)

	requiredW := snap.Size + 2
	requiredH := snap.Size + 2 + hudHeight + 1
	if m.screen.Width() < requiredW || m.screen.Height() < requiredH {
		m.screen.DrawTextCentered(m.screen.Height()/2, "Window too small")
		return RenderScreen(m.screen)
	}

	offsetX := (m.screen.Width() - snap.Size) / 2
	offsetY := hudHeight + 1
	DrawSnapshot(m.screen, snap, m.opts.Display, offsetX, offsetY)

	if m.status != "" {
		m.screen.DrawTextCentered(m.screen.Height()-1, m.status)
	}

	if snap.State == snake.StateTerminated {
		m.renderGameOver(snap)
	}

	return RenderScreen(m.screen)
}

// renderHUD draws the top status bar.
func (m Model) renderHUD(snap snake.Snapshot) {
	hud := fmt.Sprintf(" Snake — Board: %dx%d  Length: %d  Turns: %d",
		snap.Size, snap.Size, snap.Length, snap.Turns)
	m.screen.DrawText(0, 0, hud)

	for x := 0; x < m.screen.Width(); x++ {
		m.screen.Set(x, 1, '─')
	}
}

// renderGameOver draws the terminal overlay, distinguishing the reason.
func (m Model) renderGameOver(snap snake.Snapshot) {
	reason := "You quit the game."
	if snap.Reason == snake.EndSelfCollision {
		reason = "Snake hit its own tail!"
	}

	lines := []string{
		"Game Over: " + reason,
		fmt.Sprintf("Final length: %d in %d turns", snap.Length, snap.Turns),
		"Press R to restart, Q to quit",
	}

	boxW := 0
	for _, line := range lines {
		if len(line) > boxW {
			boxW = len(line)
		}
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (m.screen.Width() - boxW) / 2
	boxY := (m.screen.Height() - boxH) / 2

	m.screen.FillRect(core.NewRect(boxX+1, boxY+1, boxW-2, boxH-2), ' ')
	m.screen.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	for i, line := range lines {
		m.screen.DrawTextCentered(boxY+2+i, line)
	}
}

// Run starts a Bubble Tea program for one game session.
func Run(opts Options, store *storage.Store) error {
	model, err := NewModel(opts, store)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
