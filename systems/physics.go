package systems

import "github.com/pthm-cable/turret/components"

// Advance moves every projectile and enemy by velocity * dt.
// Entities fly in straight lines; there is no drag or bounds wrapping.
func (a *Arena) Advance(dt float32) {
	query := a.filter.Query()
	for query.Next() {
		pos, vel, _, _ := query.Get()
		components.Integrate(pos, vel, dt)
	}
}
