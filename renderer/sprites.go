// Package renderer draws the arena of one candidate with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/turret/components"
	"github.com/pthm-cable/turret/config"
	"github.com/pthm-cable/turret/geom"
	"github.com/pthm-cable/turret/systems"
)

const radToDeg = 180 / math.Pi

// Ink is the color every arena shape is drawn with.
var Ink = rl.Black

// Sprite is anything drawn at a position on screen.
type Sprite interface {
	Pos() geom.Vec2
	Draw()
}

// TurretSprite draws the turret body and its barrel.
type TurretSprite struct {
	Turret       components.Turret
	Radius       float32
	BarrelLength float32
	BarrelWidth  float32
	Color        rl.Color
}

// NewTurretSprite sizes a turret sprite from the config.
func NewTurretSprite(t components.Turret) TurretSprite {
	d := config.Cfg().Derived
	return TurretSprite{
		Turret:       t,
		Radius:       d.TurretRadius,
		BarrelLength: d.BarrelLength,
		BarrelWidth:  d.BarrelWidth,
		Color:        Ink,
	}
}

func (s TurretSprite) Pos() geom.Vec2 { return s.Turret.Position }

func (s TurretSprite) Draw() {
	p := s.Turret.Position
	// Barrel starts at the center and reaches past the rim.
	rl.DrawRectanglePro(
		rl.Rectangle{X: p.X, Y: p.Y, Width: s.Radius + s.BarrelLength, Height: s.BarrelWidth},
		rl.Vector2{X: 0, Y: s.BarrelWidth / 2},
		s.Turret.Facing*radToDeg,
		s.Color,
	)
	rl.DrawCircleV(rl.Vector2{X: p.X, Y: p.Y}, s.Radius, s.Color)
}

// EntitySprite draws a projectile as a rotated rectangle or an enemy as a
// triangle pointing along its heading.
type EntitySprite struct {
	State systems.EntityState
}

func (s EntitySprite) Pos() geom.Vec2 { return s.State.Position }

func (s EntitySprite) Draw() {
	st := s.State
	switch st.Kind {
	case components.KindProjectile:
		// Height runs along the direction of travel.
		rl.DrawRectanglePro(
			rl.Rectangle{X: st.Position.X, Y: st.Position.Y, Width: st.Height, Height: st.Width},
			rl.Vector2{X: st.Height / 2, Y: st.Width / 2},
			st.Heading*radToDeg,
			Ink,
		)
	case components.KindEnemy:
		drawOrientedTriangle(st.Position, st.Heading, st.Width, st.Height, Ink)
	}
}

// drawOrientedTriangle draws an isosceles triangle of the given base and
// height centered on pos, apex pointing along heading.
func drawOrientedTriangle(pos geom.Vec2, heading, base, height float32, color rl.Color) {
	front := pos.Add(geom.FromAngle(heading, height/2))
	back := pos.Sub(geom.FromAngle(heading, height/2))
	side := geom.FromAngle(heading+math.Pi/2, base/2)

	v1 := rl.Vector2{X: front.X, Y: front.Y}
	v2 := rl.Vector2{X: back.X + side.X, Y: back.Y + side.Y}
	v3 := rl.Vector2{X: back.X - side.X, Y: back.Y - side.Y}

	// DrawTriangle requires counter-clockwise winding on screen
	rl.DrawTriangle(v1, v3, v2, color)
}

// Sprites builds the draw list for one arena: entities first, turret last.
func Sprites(dst []Sprite, turret components.Turret, entities []systems.EntityState) []Sprite {
	for _, e := range entities {
		dst = append(dst, EntitySprite{State: e})
	}
	return append(dst, NewTurretSprite(turret))
}

// DrawAll draws every sprite in order.
func DrawAll(sprites []Sprite) {
	for _, s := range sprites {
		s.Draw()
	}
}
