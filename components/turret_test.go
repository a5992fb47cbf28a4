package components

import (
	"math"
	"testing"

	"github.com/pthm-cable/turret/geom"
)

func TestTurretRotateWraps(t *testing.T) {
	tur := NewTurret(geom.Vec2{X: 400, Y: 300})

	if got := tur.Rotate(-0.5); got != 0.5 {
		t.Errorf("Rotate(-0.5) returned %v, want 0.5", got)
	}
	want := float32(geom.TwoPi - 0.5)
	if math.Abs(float64(tur.Facing-want)) > 1e-5 {
		t.Errorf("Facing = %v, want %v", tur.Facing, want)
	}

	tur.Rotate(1)
	if math.Abs(float64(tur.Facing-0.5)) > 1e-5 {
		t.Errorf("Facing after wrap = %v, want 0.5", tur.Facing)
	}
}

func TestTurretMuzzle(t *testing.T) {
	tur := NewTurret(geom.Vec2{X: 400, Y: 300})
	tur.Facing = math.Pi / 2

	m := tur.Muzzle(90)
	if math.Abs(float64(m.X-400)) > 1e-3 || math.Abs(float64(m.Y-390)) > 1e-3 {
		t.Errorf("Muzzle = %v, want {400 390}", m)
	}
}

func TestTurretReset(t *testing.T) {
	tur := NewTurret(geom.Vec2{X: 1, Y: 1})
	tur.Rotate(2)
	tur.Reset(geom.Vec2{X: 500, Y: 200})

	if tur.Facing != 0 || tur.Position != (geom.Vec2{X: 500, Y: 200}) {
		t.Errorf("after Reset turret = %+v", tur)
	}
}

func TestIntegrate(t *testing.T) {
	pos := Position{geom.Vec2{X: 10, Y: 10}}
	vel := Velocity{geom.Vec2{X: 100, Y: -50}}

	Integrate(&pos, &vel, 0.5)
	if pos.Vec2 != (geom.Vec2{X: 60, Y: -15}) {
		t.Errorf("Integrate = %v, want {60 -15}", pos.Vec2)
	}
}
