package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/turret/telemetry"
)

// Row is one label/value line of a panel.
type Row struct {
	Label string
	Value string
}

// StatsRows lists the figures shown for a completed generation.
func StatsRows(s telemetry.GenerationStats) []Row {
	return []Row{
		{"Best", fmt.Sprintf("%.2f (#%d)", s.ScoreMax, s.BestIndex+1)},
		{"Mean", fmt.Sprintf("%.2f", s.ScoreMean)},
		{"Median", fmt.Sprintf("%.2f", s.ScoreP50)},
		{"Kills", fmt.Sprintf("%d", s.Kills)},
		{"Shots", fmt.Sprintf("%d", s.Shots)},
		{"Breaches", fmt.Sprintf("%d", s.Breaches)},
	}
}

// StatsPanel draws the last generation's summary in the top-right corner.
type StatsPanel struct {
	Theme Theme
}

// NewStatsPanel creates a panel with the default theme.
func NewStatsPanel() *StatsPanel {
	return &StatsPanel{Theme: DefaultTheme()}
}

// Height returns the panel height for the given number of rows plus the
// header and hit-rate bar.
func (p *StatsPanel) Height(rows int) int32 {
	t := p.Theme
	return 2*t.Padding + int32(rows+2)*t.LineHeight + 2
}

// Draw renders the panel anchored to the right edge of the screen.
func (p *StatsPanel) Draw(s telemetry.GenerationStats, screenWidth float32) {
	t := p.Theme
	rows := StatsRows(s)
	x := int32(screenWidth) - t.PanelWidth - t.Padding
	y := int32(t.Padding)

	rl.DrawRectangle(x, y, t.PanelWidth, p.Height(len(rows)), t.PanelBg)
	rl.DrawRectangleLines(x, y, t.PanelWidth, p.Height(len(rows)), t.PanelBorder)

	x += t.Padding
	y += t.Padding
	rl.DrawText(fmt.Sprintf("Generation %d", s.Generation), x, y, t.HeaderSize, t.SectionHeader)
	y += t.LineHeight

	for _, r := range rows {
		rl.DrawText(r.Label+":", x, y, t.FontSize, t.LabelColor)
		rl.DrawText(r.Value, x+t.LabelWidth, y, t.FontSize, t.ValueColor)
		y += t.LineHeight
	}
	p.drawBar(x, y, "Hit rate", float32(s.HitRate), t.PanelWidth-2*t.Padding)
}

func (p *StatsPanel) drawBar(x, y int32, label string, value float32, width int32) {
	t := p.Theme
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	barX := x + t.LabelWidth
	barWidth := width - t.LabelWidth - 35

	rl.DrawText(label+":", x, y, t.FontSize, t.LabelColor)
	rl.DrawRectangle(barX, y+2, barWidth, t.BarHeight, t.BarBg)
	rl.DrawRectangle(barX, y+2, int32(float32(barWidth)*value), t.BarHeight, t.BarFill)
	rl.DrawText(fmt.Sprintf("%.2f", value), barX+barWidth+5, y, t.FontSize, t.ValueColor)
}
