package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/turret/ui"
)

// Update processes one frame of window input.
func (g *Game) Update() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	// Keyboard mirrors the buttons
	if rl.IsKeyPressed(rl.KeyLeft) {
		g.shared.SelectPrev()
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		g.shared.SelectNext()
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		g.shared.ToggleRealTime()
	}

	g.controls.Update(ui.ReadPointer())
}

// handleResize propagates a new window size to the shared viewport.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.syncWindowSize()
}

// syncWindowSize copies the window size into the shared viewport, which
// re-centers every turret.
func (g *Game) syncWindowSize() {
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if d := g.shared.Dims(); d.Width == w && d.Height == h {
		return
	}
	g.shared.Resize(w, h)
}
