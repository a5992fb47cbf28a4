package components

import "github.com/pthm-cable/turret/geom"

// Turret is the rotating cannon at the center of an arena.
// Facing stays in [0, 2π).
type Turret struct {
	Position geom.Vec2
	Facing   float32
}

// NewTurret places a turret facing along +X at center.
func NewTurret(center geom.Vec2) Turret {
	return Turret{Position: center}
}

// Rotate turns the turret by delta radians and returns the absolute amount turned.
func (t *Turret) Rotate(delta float32) float32 {
	t.Facing = geom.WrapAngle(t.Facing + delta)
	if delta < 0 {
		return -delta
	}
	return delta
}

// Muzzle returns the point at distance reach from the turret along its facing.
func (t *Turret) Muzzle(reach float32) geom.Vec2 {
	return t.Position.Add(geom.FromAngle(t.Facing, reach))
}

// Reset points the turret back along +X and moves it to center.
func (t *Turret) Reset(center geom.Vec2) {
	t.Position = center
	t.Facing = 0
}
