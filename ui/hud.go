package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/turret/telemetry"
)

// HUDData holds what the HUD shows for the displayed candidate.
type HUDData struct {
	Candidate    int
	Population   int
	Elapsed      float32
	TrainingTime float32
	Score        float32
	Generation   int
	Last         telemetry.GenerationStats
	HasLast      bool
	ScreenWidth  float32
	ScreenHeight float32
}

// HUD renders the elapsed-time banner, a status line and, once a generation
// has finished, its stats panel.
type HUD struct {
	panel *StatsPanel
}

// NewHUD creates a HUD.
func NewHUD() *HUD { return &HUD{panel: NewStatsPanel()} }

// ElapsedText formats the banner, truncating both times to whole seconds.
func ElapsedText(elapsed, training float32) string {
	return fmt.Sprintf("Elapsed time: %d/%ds", int(elapsed), int(training))
}

// StatusText formats the status line under the banner.
func StatusText(d HUDData) string {
	s := fmt.Sprintf("Candidate %d/%d | Generation %d | Score %.2f",
		d.Candidate+1, d.Population, d.Generation, d.Score)
	if d.HasLast {
		s += fmt.Sprintf(" | Last best %.2f", d.Last.ScoreMax)
	}
	return s
}

// Draw renders the HUD.
func (h *HUD) Draw(d HUDData) {
	centerX := d.ScreenWidth / 2
	rl.DrawText(ElapsedText(d.Elapsed, d.TrainingTime), int32(centerX-200), 50, 40, rl.Black)

	if d.HasLast {
		h.panel.Draw(d.Last, d.ScreenWidth)
	}
	gui.Label(rl.Rectangle{X: 5, Y: d.ScreenHeight - 25, Width: d.ScreenWidth - 10, Height: 20}, StatusText(d))
}
