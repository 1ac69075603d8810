package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// actionForKey maps a keyboard key to a game action.
func actionForKey(k ebiten.Key) core.Action {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return core.ActionUp
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return core.ActionDown
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return core.ActionLeft
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return core.ActionRight
	case ebiten.KeyP, ebiten.KeySpace:
		return core.ActionPause
	case ebiten.KeyQ, ebiten.KeyEscape:
		return core.ActionQuit
	default:
		return core.ActionNone
	}
}
