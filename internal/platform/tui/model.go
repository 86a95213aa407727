package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/vania/internal/core"
	"github.com/vovakirdan/vania/internal/registry"
)

// moveHoldMS is how long a movement key stays held after its last repeat.
const moveHoldMS = 250

// footerRows is the number of rows used by the help line.
const footerRows = 1

// loader is implemented by games that show a loading screen.
type loader interface {
	LoadProgress() (float64, bool)
}

// resizer is implemented by games that can adapt to a new size mid-run.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	progress   progress.Model
	latch      *holdLatch
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenH is the full terminal height; the help footer is taken from it.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg.ScreenH = max(cfg.ScreenH-footerRows, 1)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth(cfg.ScreenW))),
		latch:      newHoldLatch(cfg.TicksFor(moveHoldMS)),
		inputFrame: core.NewInputFrame(),
		logger:     logger,
	}
}

func progressWidth(screenW int) int {
	return max(min(screenW-8, 50), 10)
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Debug("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	actions := m.keys.Actions(msg)
	run := false
	for _, a := range actions {
		switch {
		case a == core.ActionQuit:
			m.quitting = true
			m.logger.Debug("quit", "game", m.game.ID())
			return m, tea.Quit
		case a == core.ActionRun:
			run = true
			m.latch.Press(a)
		case latched(a):
			m.latch.Press(a)
		default:
			m.inputFrame.Set(a)
		}
	}

	// A plain direction key stops running
	if len(actions) > 0 && latched(actions[0]) && !run {
		m.latch.Release(core.ActionRun)
	}

	return m, nil
}

// handleMouse fires at the clicked cell.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.Y >= m.config.ScreenH {
		return m, nil // click on the help footer
	}
	m.inputFrame.SetAim(msg.X, msg.Y)
	m.inputFrame.Set(core.ActionFire)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-footerRows, 1)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	m.progress.Width = progressWidth(msg.Width)
	m.logger.Debug("resize", "width", msg.Width, "height", msg.Height)

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.config.ScreenW, m.config.ScreenH)
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.latch.Apply(&m.inputFrame)

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.gameState.GameOver {
		m.latch.Reset()
	}

	m.inputFrame.Clear()
	m.latch.Tick()

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	if l, ok := m.game.(loader); ok {
		if p, loading := l.LoadProgress(); loading {
			content := lipgloss.JoinVertical(lipgloss.Center,
				titleStyle.Render(m.game.Title()),
				"",
				"generating level",
				"",
				m.progress.ViewAs(p),
			)
			body = lipgloss.Place(m.config.ScreenW, m.config.ScreenH, lipgloss.Center, lipgloss.Center, content)
		}
	}

	if body == "" {
		m.screen.Clear()
		m.game.Render(m.screen)
		body = RenderScreen(m.screen)
	}

	return body + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program for game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
