package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/engine"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/input"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

// Options configures a game model.
type Options struct {
	// Initial terminal size, updated by WindowSizeMsg, and the food seed.
	core.RuntimeConfig

	Config config.Config
	Player string
	Store  *storage.Store // nil disables score saving
	Logger *log.Logger    // nil discards
}

// Model is the Bubble Tea model for one Snake session. Key presses are
// latched onto the input lines and picked up by the next loop step.
type Model struct {
	loop   *engine.Loop
	latch  *input.Latch
	board  *BoardRenderer
	keys   KeyMap
	help   help.Model
	logger *log.Logger
	player string

	width    int
	height   int
	quitting bool
}

// NewModel creates a model with a fresh idle game.
func NewModel(opts Options) Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenW <= 0 || opts.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.ScreenW, opts.ScreenH = def.ScreenW, def.ScreenH
	}

	cfg := opts.Config
	player := opts.Player
	if player == "" {
		player = cfg.Player
	}

	latch := input.NewLatch()
	board := NewBoardRenderer(opts.ScreenW, opts.ScreenH, player)
	game := snake.New(cfg.GameSettings(), opts.Seed)
	loop := engine.New(game, input.NewSampler(latch, cfg.Debounce()), board, engine.Options{
		IdlePoll: cfg.IdlePoll(),
		Logger:   opts.Logger,
	})
	if opts.Store != nil {
		loop.OnGameOver(engine.RecordScores(opts.Store, player, opts.Logger))
	}

	h := help.New()
	h.Width = opts.ScreenW

	m := Model{
		loop:   loop,
		latch:  latch,
		board:  board,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: opts.Logger,
		player: player,
		width:  opts.ScreenW,
		height: opts.ScreenH,
	}
	m.fit()
	return m
}

// fit sizes the board to the terminal minus the help footer.
func (m Model) fit() {
	footer := lipgloss.Height(m.help.View(m.keys))
	m.loop.Do(func() {
		m.board.Resize(m.width, max(m.height-footer, 1))
	})
}

// Loop returns the engine loop driving this model.
func (m Model) Loop() *engine.Loop {
	return m.loop
}

// Init draws the first frame and starts the tick loop.
func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return TickMsg(time.Now())
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.fit()
		return m, nil

	case TickMsg:
		if m.quitting {
			return m, nil
		}
		delay := m.loop.Step(time.Time(msg))
		return m, tickCmd(delay)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fit()
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if line, ok := m.keys.Line(msg); ok {
		m.latch.Press(line)
	}
	return m, nil
}

// saveScreenshot writes the last drawn frame as plain text to
// ~/.snake/screenshots.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	var text string
	m.loop.Do(func() {
		text = m.board.Screen().String()
	})

	name := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// View renders the last drawn frame and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var frame string
	m.loop.Do(func() {
		frame = RenderScreen(m.board.Screen())
	})

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	return frame + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local game.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
