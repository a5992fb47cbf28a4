package systems

import (
	"math"

	"github.com/pthm-cable/turret/config"
	"github.com/pthm-cable/turret/geom"
)

// RaySensor samples enemy presence along rays spread evenly around the turret.
// Ray 0 points directly behind the turret and ray NumRays/2 along its facing.
type RaySensor struct {
	NumRays   int
	RayLength float32 // enemies farther than this are invisible
	HalfWidth float32 // half the enemy's drawn width
}

// NewRaySensor builds a sensor from the loaded config.
func NewRaySensor(cfg *config.Config) RaySensor {
	return RaySensor{
		NumRays:   cfg.Sensors.NumRays,
		RayLength: cfg.Derived.ViewRayLength,
		HalfWidth: cfg.Derived.EnemyWidth / 2,
	}
}

// RayAngle returns the world angle of ray i for a turret facing the given way.
func (s RaySensor) RayAngle(i int, facing float32) float32 {
	return geom.WrapAngle(facing + float32(geom.TwoPi)*float32(i)/float32(s.NumRays) - math.Pi)
}

// Sense fills out with 1 for every ray that an enemy occludes and 0 otherwise.
// out must hold NumRays values. Positions are measured from center.
//
// The ray/bearing difference is not wrapped, so an enemy just
// across the 0/2π seam from a ray is not seen by it.
func (s RaySensor) Sense(out []float64, facing float32, center geom.Vec2, enemies []geom.Vec2) {
	for i := range out[:s.NumRays] {
		out[i] = 0
		ray := s.RayAngle(i, facing)

		for _, e := range enemies {
			rel := e.Sub(center)
			dist := rel.Len()
			if dist > s.RayLength {
				continue
			}

			delta := float64(ray - rel.Angle())
			if math.Abs(delta) < math.Pi/2 && float64(dist)*math.Abs(math.Sin(delta)) <= float64(s.HalfWidth) {
				out[i] = 1
				break
			}
		}
	}
}
