package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg       rl.Color
	PanelBorder   rl.Color
	SectionHeader rl.Color
	LabelColor    rl.Color
	ValueColor    rl.Color
	BarBg         rl.Color
	BarFill       rl.Color
	Padding       int32
	LineHeight    int32
	LabelWidth    int32
	BarHeight     int32
	FontSize      int32
	HeaderSize    int32
	PanelWidth    int32
}

// DefaultTheme returns a theme readable on the light arena background.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:       rl.Color{R: 235, G: 235, B: 235, A: 230},
		PanelBorder:   rl.Color{R: 80, G: 80, B: 80, A: 255},
		SectionHeader: rl.Black,
		LabelColor:    rl.DarkGray,
		ValueColor:    rl.Black,
		BarBg:         rl.Color{R: 200, G: 200, B: 200, A: 255},
		BarFill:       rl.Color{R: 80, G: 80, B: 80, A: 255},
		Padding:       8,
		LineHeight:    16,
		LabelWidth:    70,
		BarHeight:     10,
		FontSize:      12,
		HeaderSize:    14,
		PanelWidth:    190,
	}
}
