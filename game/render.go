package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/turret/config"
	"github.com/pthm-cable/turret/renderer"
	"github.com/pthm-cable/turret/ui"
)

// Draw renders the selected candidate's arena, the controls and the HUD.
func (g *Game) Draw() {
	if g.headless {
		return
	}
	snap := g.shared.Snapshot(g.shared.Selected())
	dims := g.shared.Dims()

	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	g.controls.Draw()

	g.sprites = renderer.Sprites(g.sprites[:0], snap.Turret, snap.Entities)
	renderer.DrawAll(g.sprites)

	data := ui.HUDData{
		Candidate:    snap.Index,
		Population:   g.shared.Size(),
		Elapsed:      snap.Elapsed,
		TrainingTime: config.Cfg().Derived.TrainingTime32,
		Score:        snap.Score,
		Generation:   g.Generation(),
		ScreenWidth:  dims.Width,
		ScreenHeight: dims.Height,
	}
	data.Last, data.HasLast = g.scheduler.LastStats()
	g.hud.Draw(data)

	rl.EndDrawing()
}
