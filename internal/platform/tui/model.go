package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// chromeHeight is the number of lines around the board: HUD above, help below.
const chromeHeight = 2

// pausedText is drawn across the middle of the board while paused.
const pausedText = " PAUSED "

// styles holds every style a Model draws with, all bound to one renderer.
type styles struct {
	hud    lipgloss.Style
	notice lipgloss.Style
	screen *screenRenderer
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		hud:    r.NewStyle().Bold(true),
		notice: r.NewStyle().Foreground(lipgloss.Color("245")),
		screen: newScreenRenderer(r),
	}
}

// newHelp builds the help line with the bubbles default colours on r.
func newHelp(r *lipgloss.Renderer, width int) help.Model {
	h := help.New()
	h.Width = width

	keyStyle := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#909090", Dark: "#626262"})
	descStyle := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#B2B2B2", Dark: "#4A4A4A"})
	sepStyle := r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#DDDADA", Dark: "#3C3C3C"})
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = descStyle
	h.Styles.ShortSeparator = sepStyle
	h.Styles.Ellipsis = sepStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = descStyle
	h.Styles.FullSeparator = sepStyle
	return h
}

// Options configures a Model beyond the game's runtime config.
type Options struct {
	Width  int         // Initial terminal width; updated by resize messages
	Height int         // Initial terminal height
	Logger *log.Logger // Nil discards log output

	// Renderer decides the colour profile. SSH sessions pass one bound to
	// the session; nil uses lipgloss's default renderer on stdout.
	Renderer *lipgloss.Renderer
}

// Model is the Bubble Tea model that drives one game.
type Model struct {
	game       core.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	renderer   *lipgloss.Renderer
	styles     styles
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	quitting   bool
}

// NewModel resets game with cfg and wraps it in a Bubble Tea model.
func NewModel(game core.Game, cfg core.RuntimeConfig, opts Options) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return Model{}, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	boardW, boardH := boardSize(cfg)
	return Model{
		game:       game,
		screen:     core.NewScreen(boardW, boardH),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       newHelp(renderer, opts.Width),
		renderer:   renderer,
		styles:     newStyles(renderer),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		width:      opts.Width,
		height:     opts.Height,
	}, nil
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

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the key's action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score, "best", m.gameState.Best)
		return m, tea.Quit
	}
	m.inputFrame.Set(action)
	return m, nil
}

// handleTick runs one simulation step with the input gathered since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if result.Has(core.EventAte) {
		m.logger.Debug("apple eaten", "score", result.State.Score, "length", result.State.Length)
	}
	if result.Has(core.EventCollided) {
		m.logger.Info("snake collided, resetting", "best", result.State.Best)
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// tooSmall reports whether the terminal cannot show the board and HUD.
func (m Model) tooSmall() bool {
	if m.width == 0 && m.height == 0 {
		return false // size not known yet
	}
	return m.width < m.screen.Width() || m.height < m.screen.Height()+chromeHeight
}

// View renders the HUD, the board and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.tooSmall() {
		msg := fmt.Sprintf("Terminal too small\nneed %dx%d, have %dx%d",
			m.screen.Width(), m.screen.Height()+chromeHeight, m.width, m.height)
		return m.renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.styles.notice.Render(msg))
	}

	m.screen.Clear()
	m.game.Render(newBoardSurface(m.screen, m.config, core.Point{}))
	if m.gameState.Paused {
		p := m.config.Palette
		m.screen.DrawTextCentered(m.screen.Height()/2, pausedText, p.Border, p.Background)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.hudView(),
		m.styles.screen.render(m.screen),
		m.help.ShortHelpView(m.keys.ShortHelp()),
	)
	if m.width == 0 {
		return content
	}
	return m.renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// hudView renders the status line.
func (m Model) hudView() string {
	return m.styles.hud.Render(fmt.Sprintf("%s  Score %d  Best %d", m.game.Title(), m.gameState.Score, m.gameState.Best))
}

// Run starts a full-screen Bubble Tea program for game and blocks until quit.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	model, err := NewModel(game, cfg, opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
