// Package window runs a core.Game in a desktop window with ebiten.
// One ebiten tick is one game step: the tick rate is handed to ebiten.SetTPS
// and every Update call steps the game once.
package window

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Options configures the window beyond the game's runtime config.
type Options struct {
	Title  string      // Window title; the game title when empty
	Scale  int         // Window size multiplier; 1 when not positive
	Logger *log.Logger // Nil discards log output
}

// Adapter implements ebiten.Game on top of a core.Game.
type Adapter struct {
	game   core.Game
	config core.RuntimeConfig
	logger *log.Logger

	width, height int // logical screen size in pixels

	keys  []ebiten.Key
	frame core.InputFrame
	state core.GameState
}

// NewAdapter resets game with cfg and wraps it for ebiten.
func NewAdapter(game core.Game, cfg core.RuntimeConfig, logger *log.Logger) (*Adapter, error) {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if err := game.Reset(cfg); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	// Grid-aligned extent; a board that is not a multiple of the cell size
	// leaves no unused strip at the edges.
	return &Adapter{
		game:   game,
		config: cfg,
		logger: logger,
		width:  cfg.BoardW / cfg.CellSize * cfg.CellSize,
		height: cfg.BoardH / cfg.CellSize * cfg.CellSize,
		keys:   make([]ebiten.Key, 0, 8),
		frame:  core.NewInputFrame(),
		state:  game.State(),
	}, nil
}

// Update reads the keys pressed this tick and steps the game once.
func (a *Adapter) Update() error {
	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	return a.step(a.keys)
}

// step maps keys to actions and advances the game. It returns
// ebiten.Termination when a quit key is among them.
func (a *Adapter) step(keys []ebiten.Key) error {
	for _, k := range keys {
		action := actionForKey(k)
		if action == core.ActionQuit {
			a.logger.Info("quit", "score", a.state.Score, "best", a.state.Best)
			return ebiten.Termination
		}
		a.frame.Set(action)
	}

	result := a.game.Step(a.frame)
	a.state = result.State
	a.frame.Clear()

	if result.Has(core.EventAte) {
		a.logger.Debug("apple eaten", "score", result.State.Score, "length", result.State.Length)
	}
	if result.Has(core.EventCollided) {
		a.logger.Info("snake collided, resetting", "best", result.State.Best)
	}
	return nil
}

// Draw renders the board and the HUD.
func (a *Adapter) Draw(screen *ebiten.Image) {
	a.game.Render(imageSurface{img: screen})
	ebitenutil.DebugPrintAt(screen, a.hudText(), 4, 4)
}

// hudText is the status line printed in the top-left corner.
func (a *Adapter) hudText() string {
	hud := fmt.Sprintf("Score %d  Best %d", a.state.Score, a.state.Best)
	if a.state.Paused {
		hud += "  PAUSED"
	}
	return hud
}

// Layout keeps the logical screen at board size; ebiten scales it to the window.
func (a *Adapter) Layout(_, _ int) (int, int) {
	return a.width, a.height
}

// State returns the state after the last step.
func (a *Adapter) State() core.GameState {
	return a.state
}

// Run opens the window and blocks until it is closed or a quit key is pressed.
func Run(game core.Game, cfg core.RuntimeConfig, opts Options) error {
	adapter, err := NewAdapter(game, cfg, opts.Logger)
	if err != nil {
		return err
	}

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	title := opts.Title
	if title == "" {
		title = game.Title()
	}

	ebiten.SetWindowSize(adapter.width*scale, adapter.height*scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(cfg.TickRate)

	// RunGame returns nil for ebiten.Termination and a closed window
	return ebiten.RunGame(adapter)
}
