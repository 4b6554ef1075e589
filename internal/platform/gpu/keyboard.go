package gpu

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/bombjack/internal/core"
)

// Keyboard reads true key state from ebiten. Unlike a terminal, a window
// reports releases, so a direction is held exactly while its key is down.
type Keyboard struct{}

var (
	upKeys    = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace}
	downKeys  = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
)

// Snapshot reports the held directions. The time is unused.
func (Keyboard) Snapshot(time.Time) core.InputSnapshot {
	return core.InputSnapshot{
		Up:    anyPressed(upKeys),
		Down:  anyPressed(downKeys),
		Left:  anyPressed(leftKeys),
		Right: anyPressed(rightKeys),
	}
}

// Actions returns the one-shot actions pressed this frame.
func (Keyboard) Actions() core.InputFrame {
	frame := core.NewInputFrame()
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		frame.Set(core.ActionPause)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		frame.Set(core.ActionRestart)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		frame.Set(core.ActionQuit)
	}
	return frame
}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

var _ core.InputSource = Keyboard{}
