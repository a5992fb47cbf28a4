package components

import "github.com/pthm-cable/turret/geom"

// Position represents an entity's world position.
type Position struct {
	geom.Vec2
}

// Velocity represents an entity's velocity in units per second.
type Velocity struct {
	geom.Vec2
}

// Rotation holds the heading an entity was spawned with. Entities fly straight,
// so the heading only orients the sprite.
type Rotation struct {
	Heading float32 // radians
}

// Integrate advances pos by vel over dt seconds.
func Integrate(pos *Position, vel *Velocity, dt float32) {
	pos.AddInPlace(vel.Scale(dt))
}
