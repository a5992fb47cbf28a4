package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/turret/geom"
)

// Button colors for the idle, hovered and pressed states.
var (
	ButtonIdle    = rl.Black
	ButtonHover   = rl.Color{R: 80, G: 80, B: 80, A: 255}
	ButtonPressed = rl.Color{R: 50, G: 50, B: 50, A: 255}
)

const buttonFontSize = 24

// Pointer is the mouse state for one frame.
type Pointer struct {
	Pos      geom.Vec2
	Down     bool // left button held
	Released bool // left button released this frame
}

// ReadPointer samples the mouse from raylib.
func ReadPointer() Pointer {
	m := rl.GetMousePosition()
	return Pointer{
		Pos:      geom.Vec2{X: m.X, Y: m.Y},
		Down:     rl.IsMouseButtonDown(rl.MouseButtonLeft),
		Released: rl.IsMouseButtonReleased(rl.MouseButtonLeft),
	}
}

// Handler reacts to a button transition.
type Handler func(b *Button)

// Button is a text label that reacts to the mouse. OnEnter and OnExit fire on
// the hover edges; OnHover, OnDown and OnUp fire on frames the pointer is over it.
type Button struct {
	Position geom.Vec2
	Text     string
	FontSize int32
	Color    rl.Color

	OnEnter Handler
	OnHover Handler
	OnExit  Handler
	OnDown  Handler
	OnUp    Handler

	hovering bool
	measure  func(text string, fontSize int32) geom.Vec2
}

// NewButton creates a button that darkens while hovered and pressed, and runs
// onClick when the mouse is released over it.
func NewButton(text string, pos geom.Vec2, onClick Handler) *Button {
	return &Button{
		Position: pos,
		Text:     text,
		FontSize: buttonFontSize,
		Color:    ButtonIdle,
		OnHover:  func(b *Button) { b.Color = ButtonHover },
		OnDown:   func(b *Button) { b.Color = ButtonPressed },
		OnExit:   func(b *Button) { b.Color = ButtonIdle },
		OnUp:     onClick,
		measure:  measureText,
	}
}

func measureText(text string, fontSize int32) geom.Vec2 {
	size := float32(fontSize)
	v := rl.MeasureTextEx(rl.GetFontDefault(), text, size, size/10)
	return geom.Vec2{X: v.X, Y: v.Y}
}

// Size returns the rendered text extent.
func (b *Button) Size() geom.Vec2 {
	return b.measure(b.Text, b.FontSize)
}

// Contains reports whether p lies on the button, edges included.
func (b *Button) Contains(p geom.Vec2) bool {
	size := b.Size()
	return p.X >= b.Position.X && p.X <= b.Position.X+size.X &&
		p.Y >= b.Position.Y && p.Y <= b.Position.Y+size.Y
}

// Hovering reports whether the pointer was over the button on the last update.
func (b *Button) Hovering() bool { return b.hovering }

// Update fires the handlers for this frame's pointer state.
func (b *Button) Update(p Pointer) {
	if !b.Contains(p.Pos) {
		if b.hovering {
			b.hovering = false
			b.fire(b.OnExit)
		}
		return
	}

	if !b.hovering {
		b.hovering = true
		b.fire(b.OnEnter)
	}
	b.fire(b.OnHover)

	switch {
	case p.Down:
		b.fire(b.OnDown)
	case p.Released:
		b.fire(b.OnUp)
	}
}

func (b *Button) fire(h Handler) {
	if h != nil {
		h(b)
	}
}

// Pos implements renderer.Sprite.
func (b *Button) Pos() geom.Vec2 { return b.Position }

// Draw implements renderer.Sprite.
func (b *Button) Draw() {
	rl.DrawText(b.Text, int32(b.Position.X), int32(b.Position.Y), b.FontSize, b.Color)
}
